package realm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/cultivation-api/internal/errors"
)

func TestValidateTableRejectsBrokenLadders(t *testing.T) {
	good := Realm{Index: 0, ID: QiRefining, Thresholds: [LevelsPerRealm]int64{1, 2, 3, 4}}

	testCases := []struct {
		name   string
		realms []Realm
	}{
		{name: "empty", realms: nil},
		{name: "gap in indices", realms: []Realm{good, {Index: 2, ID: GoldenCore, Thresholds: [LevelsPerRealm]int64{5, 6, 7, 8}}}},
		{name: "duplicate id", realms: []Realm{good, {Index: 1, ID: QiRefining, Thresholds: [LevelsPerRealm]int64{5, 6, 7, 8}}}},
		{name: "flat thresholds", realms: []Realm{{Index: 0, ID: QiRefining, Thresholds: [LevelsPerRealm]int64{1, 2, 2, 4}}}},
		{name: "zero threshold", realms: []Realm{{Index: 0, ID: QiRefining, Thresholds: [LevelsPerRealm]int64{0, 2, 3, 4}}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateTable(tc.realms)
			require.Error(t, err)
			assert.True(t, errors.IsInternal(err))
		})
	}

	assert.NoError(t, validateTable([]Realm{good}))
}
