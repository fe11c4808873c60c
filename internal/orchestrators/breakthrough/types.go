package breakthrough

import (
	"github.com/KirkDiggler/cultivation-api/internal/combat"
	"github.com/KirkDiggler/cultivation-api/internal/entities"
	"github.com/KirkDiggler/cultivation-api/internal/realm"
)

// State is the result of a breakthrough attempt
type State string

// Attempt results. Only succeeded and failed change the player.
const (
	StateSucceeded          State = "succeeded"
	StateFailed             State = "failed"
	StateIneligible         State = "ineligible"
	StateTribulationPending State = "tribulation_pending"
)

// IneligibleReason explains why an attempt did not roll
type IneligibleReason string

// Ineligible reasons
const (
	ReasonMaxRealm                IneligibleReason = "max_realm_reached"
	ReasonInsufficientCultivation IneligibleReason = "insufficient_cultivation"
)

// Position is a realm and sub-level with display helpers filled in
type Position struct {
	Realm realm.ID
	Level int
	Label string
	Stage realm.Stage
}

func positionOf(id realm.ID, level int) Position {
	r := realm.Get(id)
	level = realm.ClampLevel(level)
	return Position{
		Realm: r.ID,
		Level: level,
		Label: realm.Label(r.ID, level),
		Stage: r.Stage,
	}
}

// Ineligibility describes a blocked attempt
type Ineligibility struct {
	Reason   IneligibleReason
	Required int64
	Current  int64
	Deficit  int64
}

// TribulationGating reports the gate's verdict on a major-realm entry
type TribulationGating struct {
	Required bool
	// Created is true when this attempt opened the challenge, false when
	// one was already pending
	Created   bool
	Challenge *entities.Challenge
}

// AttemptBreakthroughInput is the request for AttemptBreakthrough
type AttemptBreakthroughInput struct {
	PlayerID string
	// SkipTribulation is set by the tribulation resolver after the player
	// passed the challenge, so the gate is not consulted again
	SkipTribulation bool
}

// AttemptBreakthroughOutput is the outcome of one attempt
type AttemptBreakthroughOutput struct {
	State   State
	Success bool
	Message string

	From Position
	To   Position

	Rate    float64
	Factors combat.RateFactors

	Ineligibility *Ineligibility
	Tribulation   *TribulationGating

	AttributeGain    realm.Bonus
	CultivationSpent int64
	CultivationBonus int64
	CultivationLost  int64

	// Player is the stored player after the attempt
	Player *entities.Player
}

// GetBreakthroughInfoInput is the request for GetBreakthroughInfo
type GetBreakthroughInfoInput struct {
	PlayerID string
}

// GetBreakthroughInfoOutput previews the next attempt without changing anything
type GetBreakthroughInfoOutput struct {
	Player *entities.Player

	Current Position
	Next    Position

	AtMaxRealm      bool
	MajorTransition bool

	Required    int64
	Cultivation int64
	Deficit     int64
	CanAttempt  bool

	Rate    float64
	Factors combat.RateFactors

	// Gain is the bonus a success would add
	Gain realm.Bonus

	TribulationRequired bool
	PendingChallenge    *entities.Challenge
}
