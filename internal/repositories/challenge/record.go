package challenge

import (
	"time"

	"github.com/KirkDiggler/cultivation-api/internal/entities"
	"github.com/KirkDiggler/cultivation-api/internal/errors"
	"github.com/KirkDiggler/cultivation-api/internal/realm"
)

const (
	// DefaultTTL is how long a challenge stays pending when no TTL is given
	DefaultTTL = 24 * time.Hour

	// Error messages
	errChallengeNil     = "challenge cannot be nil"
	errPlayerIDEmpty    = "player ID cannot be empty"
	errChallengeIDEmpty = "challenge ID cannot be empty"
)

type record struct {
	ID               string `json:"id"`
	PlayerID         string `json:"player_id"`
	TargetRealm      string `json:"target_realm"`
	Kind             string `json:"kind"`
	TribulationLevel int    `json:"tribulation_level"`
	Difficulty       string `json:"difficulty"`
	Waves            int    `json:"waves"`
	DamagePerWave    int64  `json:"damage_per_wave"`
	Status           string `json:"status"`
	CreatedAt        int64  `json:"created_at"`
	ExpiresAt        int64  `json:"expires_at"`
}

func toRecord(c *entities.Challenge) *record {
	return &record{
		ID:               c.ID,
		PlayerID:         c.PlayerID,
		TargetRealm:      string(c.TargetRealm),
		Kind:             string(c.Kind),
		TribulationLevel: c.TribulationLevel,
		Difficulty:       string(c.Difficulty),
		Waves:            c.Waves,
		DamagePerWave:    c.DamagePerWave,
		Status:           string(c.Status),
		CreatedAt:        c.CreatedAt,
		ExpiresAt:        c.ExpiresAt,
	}
}

func (r *record) toEntity() *entities.Challenge {
	return &entities.Challenge{
		ID:               r.ID,
		PlayerID:         r.PlayerID,
		TargetRealm:      realm.ID(r.TargetRealm),
		Kind:             entities.TribulationKind(r.Kind),
		TribulationLevel: r.TribulationLevel,
		Difficulty:       entities.Difficulty(r.Difficulty),
		Waves:            r.Waves,
		DamagePerWave:    r.DamagePerWave,
		Status:           entities.ChallengeStatus(r.Status),
		CreatedAt:        r.CreatedAt,
		ExpiresAt:        r.ExpiresAt,
	}
}

func validateChallenge(c *entities.Challenge) error {
	if c == nil {
		return errors.InvalidArgument(errChallengeNil)
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", c.ID, vb)
	errors.ValidateRequired("player_id", c.PlayerID, vb)
	errors.ValidateRequired("target_realm", string(c.TargetRealm), vb)
	if c.Waves <= 0 {
		vb.InvalidField("waves", "must be positive")
	}
	return vb.Build()
}

func validateClose(input CloseInput) error {
	if input.PlayerID == "" {
		return errors.InvalidArgument(errPlayerIDEmpty)
	}
	if input.ChallengeID == "" {
		return errors.InvalidArgument(errChallengeIDEmpty)
	}
	switch input.Status {
	case entities.ChallengePassed, entities.ChallengeFailed:
		return nil
	default:
		return errors.InvalidArgumentf("cannot close challenge with status %q", input.Status)
	}
}

// stamp fills the lifecycle fields of a newly created challenge
func stamp(c *entities.Challenge, now time.Time, ttl time.Duration) *entities.Challenge {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	out := *c
	out.Status = entities.ChallengePending
	out.CreatedAt = now.Unix()
	out.ExpiresAt = now.Add(ttl).Unix()
	return &out
}
