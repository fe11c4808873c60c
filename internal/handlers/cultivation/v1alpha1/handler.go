// Package v1alpha1 handles the cultivation grpc service interface
package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/cultivation-api/internal/errors"
	"github.com/KirkDiggler/cultivation-api/internal/orchestrators/breakthrough"
	"github.com/KirkDiggler/cultivation-api/internal/orchestrators/cultivation"
	"github.com/KirkDiggler/cultivation-api/internal/orchestrators/player"
	"github.com/KirkDiggler/cultivation-api/internal/orchestrators/tribulation"
)

// HandlerConfig holds dependencies for the cultivation handler
type HandlerConfig struct {
	BreakthroughService breakthrough.Service
	CultivationService  cultivation.Service
	PlayerService       player.Service
	// TribulationService is optional; tribulation RPCs are unimplemented
	// without it
	TribulationService tribulation.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.BreakthroughService == nil {
		vb.RequiredField("BreakthroughService")
	}
	if c.CultivationService == nil {
		vb.RequiredField("CultivationService")
	}
	if c.PlayerService == nil {
		vb.RequiredField("PlayerService")
	}
	return vb.Build()
}

// Handler implements the cultivation gRPC service
type Handler struct {
	breakthroughService breakthrough.Service
	cultivationService  cultivation.Service
	playerService       player.Service
	tribulationService  tribulation.Service
}

var _ CultivationServiceServer = (*Handler)(nil)

// NewHandler creates a new cultivation handler
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		breakthroughService: cfg.BreakthroughService,
		cultivationService:  cfg.CultivationService,
		playerService:       cfg.PlayerService,
		tribulationService:  cfg.TribulationService,
	}, nil
}

func requirePlayerID(req *structpb.Struct) (string, error) {
	id := stringField(req, "player_id")
	if id == "" {
		return "", errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}
	return id, nil
}

func respond(m map[string]any) (*structpb.Struct, error) {
	out, err := toStruct(m)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}

// AttemptBreakthrough tries to advance the player one step
func (h *Handler) AttemptBreakthrough(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	playerID, err := requirePlayerID(req)
	if err != nil {
		return nil, err
	}

	out, err := h.breakthroughService.AttemptBreakthrough(ctx, &breakthrough.AttemptBreakthroughInput{
		PlayerID: playerID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(attemptToMap(out))
}

// GetBreakthroughInfo previews the next breakthrough
func (h *Handler) GetBreakthroughInfo(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	playerID, err := requirePlayerID(req)
	if err != nil {
		return nil, err
	}

	out, err := h.breakthroughService.GetBreakthroughInfo(ctx, &breakthrough.GetBreakthroughInfoInput{
		PlayerID: playerID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	m := map[string]any{
		"player":               playerToMap(out.Player),
		"current":              positionToMap(out.Current),
		"next":                 positionToMap(out.Next),
		"at_max_realm":         out.AtMaxRealm,
		"major_transition":     out.MajorTransition,
		"required":             out.Required,
		"cultivation":          out.Cultivation,
		"deficit":              out.Deficit,
		"can_attempt":          out.CanAttempt,
		"rate":                 out.Rate,
		"factors":              factorsToMap(out.Factors),
		"gain":                 bonusToMap(out.Gain),
		"tribulation_required": out.TribulationRequired,
	}
	if out.PendingChallenge != nil {
		m["pending_challenge"] = challengeToMap(out.PendingChallenge)
	}

	return respond(m)
}

// Cultivate runs one cultivation session
func (h *Handler) Cultivate(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	playerID, err := requirePlayerID(req)
	if err != nil {
		return nil, err
	}

	out, err := h.cultivationService.Cultivate(ctx, &cultivation.CultivateInput{PlayerID: playerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{
		"player":            playerToMap(out.Player),
		"gain":              out.Gain,
		"next_realm":        out.NextRealm,
		"required":          out.Required,
		"can_breakthrough":  out.CanBreakthrough,
		"next_available_at": unixOrZero(out.NextAvailableAt),
	})
}

// GetCultivationInfo reports cooldown and next gain
func (h *Handler) GetCultivationInfo(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	playerID, err := requirePlayerID(req)
	if err != nil {
		return nil, err
	}

	out, err := h.cultivationService.GetCultivationInfo(ctx, &cultivation.GetCultivationInfoInput{PlayerID: playerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{
		"player":                     playerToMap(out.Player),
		"cooldown_remaining_seconds": int64(out.CooldownRemaining.Seconds()),
		"can_cultivate":              out.CanCultivate,
		"next_gain":                  out.NextGain,
		"next_realm":                 out.NextRealm,
		"required":                   out.Required,
		"can_breakthrough":           out.CanBreakthrough,
	})
}

// CreatePlayer rolls a new cultivator
func (h *Handler) CreatePlayer(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	name := stringField(req, "name")
	if name == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("name is required"))
	}

	out, err := h.playerService.CreatePlayer(ctx, &player.CreatePlayerInput{
		PlayerID: stringField(req, "player_id"),
		Name:     name,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{
		"player":                  playerToMap(out.Player),
		"spirit_root_description": out.SpiritRootDescription,
	})
}

// GetPlayer returns the player with derived figures
func (h *Handler) GetPlayer(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	playerID, err := requirePlayerID(req)
	if err != nil {
		return nil, err
	}

	out, err := h.playerService.GetPlayer(ctx, &player.GetPlayerInput{PlayerID: playerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{
		"player":      playerToMap(out.Player),
		"realm_label": out.RealmLabel,
		"stage":       string(out.Stage),
		"power":       out.Power,
		"bonuses":     bonusesToMap(out.Bonuses),
		"description": out.Description,
	})
}

// GetTribulation returns the pending tribulation, if any
func (h *Handler) GetTribulation(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if h.tribulationService == nil {
		return nil, errors.ToGRPCError(errors.Unimplemented("tribulations are disabled"))
	}

	playerID, err := requirePlayerID(req)
	if err != nil {
		return nil, err
	}

	out, err := h.tribulationService.GetTribulation(ctx, &tribulation.GetTribulationInput{PlayerID: playerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	m := map[string]any{"pending": out.Challenge != nil}
	if out.Challenge != nil {
		m["challenge"] = challengeToMap(out.Challenge)
	}
	if out.Spec != nil {
		m["spec"] = tribulationSpecToMap(out.Spec)
	}

	return respond(m)
}

// ResolveTribulation applies the verdict of an externally run tribulation
func (h *Handler) ResolveTribulation(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if h.tribulationService == nil {
		return nil, errors.ToGRPCError(errors.Unimplemented("tribulations are disabled"))
	}

	playerID, err := requirePlayerID(req)
	if err != nil {
		return nil, err
	}

	out, err := h.tribulationService.Resolve(ctx, &tribulation.ResolveInput{
		PlayerID:    playerID,
		ChallengeID: stringField(req, "challenge_id"),
		Passed:      boolField(req, "passed"),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	m := map[string]any{"challenge": challengeToMap(out.Challenge)}
	if out.Breakthrough != nil {
		m["breakthrough"] = attemptToMap(out.Breakthrough)
	}

	return respond(m)
}
