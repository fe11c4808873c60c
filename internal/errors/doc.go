// Package errors provides the structured error type shared by every layer of
// the cultivation API.
//
// An Error carries a Code, a user-facing Message, an optional Cause and a
// metadata map. Codes mirror gRPC status codes so handlers can convert with
// ToGRPCError without a translation table of their own.
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFoundf("player %s not found", playerID)
//	err := errors.CooldownNotReady(playerID, remaining)
//	err := errors.VersionConflict(playerID, expected, actual)
//
// Adding metadata under the shared Meta* keys:
//
//	err := errors.FailedPreconditionf("realm %s has no tribulation", target).
//	    WithMeta(errors.MetaTargetRealm, string(target))
//
// Wrapping errors keeps the original code:
//
//	if _, err := repo.Get(ctx, player.GetInput{ID: id}); err != nil {
//	    return errors.Wrap(err, "failed to load player")
//	}
//
// # Error Checking
//
//	if errors.IsNotFound(err) {
//	    // the player does not exist
//	}
//
//	if remaining, ok := errors.RemainingCooldown(err); ok {
//	    // tell the player how long to wait
//	}
//
//	if errors.GetCode(err).Retryable() {
//	    // a fresh attempt may succeed
//	}
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("player_id", input.PlayerID, vb)
//	errors.ValidateMaxRunes("name", name, 32, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer-Specific Guidelines
//
// Repository layer:
//   - Return NotFound, AlreadyExists and VersionConflict
//   - Wrap driver errors with context
//
// Orchestrator layer:
//   - Expected gameplay outcomes (not enough cultivation, tribulation
//     pending) are result values, not errors
//   - Wrap repository errors with business context
//
// Handler layer:
//   - Convert with ToGRPCError; metadata travels as a structpb.Struct detail
package errors
