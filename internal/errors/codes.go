package errors

// Code classifies an error. Values mirror the gRPC status codes the service
// actually returns so handlers never need a lookup table of their own.
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded   Code = "DEADLINE_EXCEEDED"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeAborted            Code = "ABORTED"
	CodeUnimplemented      Code = "UNIMPLEMENTED"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
)

// Metadata keys shared between the layers that set them and the callers
// that read them back, including after a gRPC round trip.
const (
	MetaPlayerID           = "player_id"
	MetaExpectedVersion    = "expected_version"
	MetaActualVersion      = "actual_version"
	MetaRemainingSeconds   = "remaining_seconds"
	MetaLockKey            = "lock_key"
	MetaRealm              = "realm"
	MetaTargetRealm        = "target_realm"
	MetaPendingChallengeID = "pending_challenge_id"
	MetaValidationErrors   = "validation_errors"
)

func (c Code) String() string {
	return string(c)
}

// Retryable reports whether the same request may succeed if sent again
// unchanged. Version conflicts and lock timeouts qualify; bad input does not.
func (c Code) Retryable() bool {
	switch c {
	case CodeAborted, CodeDeadlineExceeded, CodeUnavailable:
		return true
	default:
		return false
	}
}
