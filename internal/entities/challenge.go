package entities

import "github.com/KirkDiggler/cultivation-api/internal/realm"

// TribulationKind is the flavor of heavenly tribulation
type TribulationKind string

// Tribulation kinds
const (
	TribulationThunder    TribulationKind = "thunder"
	TribulationFire       TribulationKind = "fire"
	TribulationHeartDemon TribulationKind = "heart_demon"
	TribulationWind       TribulationKind = "wind"
	TribulationIce        TribulationKind = "ice"
	TribulationMixed      TribulationKind = "mixed"
)

// Difficulty scales tribulation damage
type Difficulty string

// Difficulties
const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
	DifficultyHell   Difficulty = "hell"
)

// ChallengeStatus is the lifecycle state of a challenge
type ChallengeStatus string

// Challenge statuses
const (
	ChallengePending ChallengeStatus = "pending"
	ChallengePassed  ChallengeStatus = "passed"
	ChallengeFailed  ChallengeStatus = "failed"
)

// Challenge is a tribulation that gates a major-realm breakthrough
type Challenge struct {
	ID               string
	PlayerID         string
	TargetRealm      realm.ID
	Kind             TribulationKind
	TribulationLevel int
	Difficulty       Difficulty
	Waves            int
	DamagePerWave    int64
	Status           ChallengeStatus
	CreatedAt        int64
	ExpiresAt        int64
}

// IsPending reports whether the challenge is still unresolved
func (c *Challenge) IsPending() bool {
	return c != nil && c.Status == ChallengePending
}
