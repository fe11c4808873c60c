package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/cultivation-api/internal/errors"
)

func TestDescribeError(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		contains string
	}{
		{
			name:     "cooldown",
			err:      errors.ToGRPCError(errors.CooldownNotReady("p1", 40*time.Minute)),
			contains: "try again in 40m0s",
		},
		{
			name:     "version conflict",
			err:      errors.ToGRPCError(errors.VersionConflict("p1", 3, 4)),
			contains: "safe to retry",
		},
		{
			name:     "not found",
			err:      errors.ToGRPCError(errors.NotFound("player not found")),
			contains: "Cultivate failed: NOT_FOUND: player not found",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := describeError("Cultivate", tc.err)
			assert.Contains(t, got.Error(), tc.contains)
		})
	}
}
