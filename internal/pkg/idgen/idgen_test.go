package idgen_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/cultivation-api/internal/pkg/idgen"
)

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("trib")
	assert.Equal(t, "trib_1", gen.Generate())
	assert.Equal(t, "trib_2", gen.Generate())

	bare := idgen.NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}

func TestUUIDGenerator(t *testing.T) {
	gen := idgen.NewUUID("trib")
	id := gen.Generate()
	require.True(t, strings.HasPrefix(id, "trib_"))

	_, err := uuid.Parse(strings.TrimPrefix(id, "trib_"))
	assert.NoError(t, err)
	assert.NotEqual(t, id, gen.Generate())
}
