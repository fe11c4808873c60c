package breakthrough

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"
)

// Event types published on the bus
const (
	EventSucceeded           = "breakthrough.succeeded"
	EventFailed              = "breakthrough.failed"
	EventTribulationRequired = "breakthrough.tribulation_required"
)

// Event context keys
const (
	EventKeyFromRealm   = "from_realm"
	EventKeyFromLevel   = "from_level"
	EventKeyToRealm     = "to_realm"
	EventKeyToLevel     = "to_level"
	EventKeyRate        = "rate"
	EventKeyChallengeID = "challenge_id"
	EventKeyCreated     = "created"
	EventKeyLost        = "cultivation_lost"
)

// PlayerEntity adapts a player id to core.Entity for event sources
type PlayerEntity struct {
	ID string
}

// GetID returns the player id
func (e *PlayerEntity) GetID() string {
	return e.ID
}

// GetType returns the entity type
func (e *PlayerEntity) GetType() string {
	return "player"
}

var _ core.Entity = (*PlayerEntity)(nil)

func (o *orchestrator) publish(ctx context.Context, out *AttemptBreakthroughOutput, playerID string) {
	if o.eventBus == nil {
		return
	}

	var eventType string
	switch out.State {
	case StateSucceeded:
		eventType = EventSucceeded
	case StateFailed:
		eventType = EventFailed
	case StateTribulationPending:
		eventType = EventTribulationRequired
	default:
		return
	}

	event := events.NewGameEvent(eventType, &PlayerEntity{ID: playerID}, nil)
	event.Context().Set(EventKeyFromRealm, string(out.From.Realm))
	event.Context().Set(EventKeyFromLevel, out.From.Level)
	event.Context().Set(EventKeyToRealm, string(out.To.Realm))
	event.Context().Set(EventKeyToLevel, out.To.Level)

	switch out.State {
	case StateSucceeded, StateFailed:
		event.Context().Set(EventKeyRate, out.Rate)
		event.Context().Set(EventKeyLost, out.CultivationLost)
	case StateTribulationPending:
		event.Context().Set(EventKeyCreated, out.Tribulation.Created)
		if out.Tribulation.Challenge != nil {
			event.Context().Set(EventKeyChallengeID, out.Tribulation.Challenge.ID)
		}
	}

	// The outcome is already persisted; a failed publish is only logged
	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish breakthrough event",
			"player_id", playerID,
			"event_type", eventType,
			"error", err)
	}
}
