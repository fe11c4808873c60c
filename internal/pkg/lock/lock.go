// Package lock provides per-key exclusive scopes. A holder keeps the scope
// for a whole read-modify-write so concurrent operations on the same player
// run one after another.
package lock

import (
	"context"
)

// Release ends an exclusive scope. Calling it more than once is a no-op.
type Release func(ctx context.Context) error

// Locker grants exclusive scopes keyed by string
type Locker interface {
	// Acquire blocks until the scope for key is held or ctx ends
	Acquire(ctx context.Context, key string) (Release, error)
}

// PlayerKey is the scope key guarding a player's record
func PlayerKey(playerID string) string {
	return "player:" + playerID
}
