package errors

import (
	"context"
	"math"
	"time"
)

// VersionConflict reports that a player's stored version no longer matches
// the snapshot the caller read. actual is -1 when the store saw the record
// change but could not read the competing version.
func VersionConflict(playerID string, expected, actual int64) *Error {
	return Abortedf("player %s was modified concurrently", playerID).
		WithMeta(MetaPlayerID, playerID).
		WithMeta(MetaExpectedVersion, expected).
		WithMeta(MetaActualVersion, actual)
}

// CooldownNotReady reports that a player must wait before cultivating again
func CooldownNotReady(playerID string, remaining time.Duration) *Error {
	return FailedPreconditionf("cultivation is on cooldown for another %s", remaining.Round(time.Second)).
		WithMeta(MetaPlayerID, playerID).
		WithMeta(MetaRemainingSeconds, int64(remaining.Seconds()))
}

// LockWait converts the context failure that ended a wait on key
func LockWait(ctx context.Context, key string) *Error {
	if ctx.Err() == context.DeadlineExceeded {
		return WrapWithCodef(ctx.Err(), CodeDeadlineExceeded, "timed out waiting for lock %s", key).
			WithMeta(MetaLockKey, key)
	}
	return WrapWithCodef(ctx.Err(), CodeCanceled, "canceled waiting for lock %s", key).
		WithMeta(MetaLockKey, key)
}

// RemainingCooldown reads the cooldown left on a CooldownNotReady error.
// It accepts errors decoded by FromGRPCError, whose numbers arrive as float64.
func RemainingCooldown(err error) (time.Duration, bool) {
	if !IsFailedPrecondition(err) {
		return 0, false
	}

	var secs float64
	switch v := GetMeta(err)[MetaRemainingSeconds].(type) {
	case int64:
		secs = float64(v)
	case float64:
		secs = v
	default:
		return 0, false
	}
	return time.Duration(math.Round(secs)) * time.Second, true
}

// IsVersionConflict reports whether err is an optimistic version conflict
func IsVersionConflict(err error) bool {
	if !IsAborted(err) {
		return false
	}
	_, ok := GetMeta(err)[MetaExpectedVersion]
	return ok
}
