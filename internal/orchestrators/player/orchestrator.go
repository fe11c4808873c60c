// Package player implements character creation and lookup
package player

//go:generate mockgen -destination=mock/mock_service.go -package=playermock github.com/KirkDiggler/cultivation-api/internal/orchestrators/player Service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/cultivation-api/internal/combat"
	"github.com/KirkDiggler/cultivation-api/internal/entities"
	"github.com/KirkDiggler/cultivation-api/internal/errors"
	"github.com/KirkDiggler/cultivation-api/internal/pkg/idgen"
	"github.com/KirkDiggler/cultivation-api/internal/pkg/rng"
	"github.com/KirkDiggler/cultivation-api/internal/realm"
	playerrepo "github.com/KirkDiggler/cultivation-api/internal/repositories/player"
	"github.com/KirkDiggler/cultivation-api/internal/spiritroot"
)

const (
	// MaxNameLength is the longest accepted player name, in runes
	MaxNameLength = 32

	startingStat         = 100
	startingAttack       = 10
	startingDefense      = 10
	startingSpiritStones = 1000
)

// Core attribute roll ranges, inclusive
var (
	constitutionRange   = [2]int{10, 20}
	spiritualPowerRange = [2]int{10, 20}
	minorAttributeRange = [2]int{5, 15}
)

// Service defines player operations
type Service interface {
	// CreatePlayer rolls a new cultivator at the bottom of the ladder
	// Returns errors.InvalidArgument for a bad name
	// Returns errors.AlreadyExists if the ID is taken
	CreatePlayer(ctx context.Context, input *CreatePlayerInput) (*CreatePlayerOutput, error)

	// GetPlayer returns the player with derived combat figures
	// Returns errors.NotFound if the player doesn't exist
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*GetPlayerOutput, error)
}

// CreatePlayerInput is the request for CreatePlayer
type CreatePlayerInput struct {
	// PlayerID is optional; one is generated when empty
	PlayerID string
	Name     string
}

// CreatePlayerOutput is the response for CreatePlayer
type CreatePlayerOutput struct {
	Player *entities.Player
	// SpiritRootDescription is a display summary of the rolled root
	SpiritRootDescription string
}

// GetPlayerInput is the request for GetPlayer
type GetPlayerInput struct {
	PlayerID string
}

// GetPlayerOutput is the response for GetPlayer
type GetPlayerOutput struct {
	Player      *entities.Player
	RealmLabel  string
	Stage       realm.Stage
	Power       int64
	Bonuses     spiritroot.Bonuses
	Description string
}

// Config holds the dependencies for the player orchestrator
type Config struct {
	PlayerRepo  playerrepo.Repository
	Random      rng.Source
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.PlayerRepo == nil {
		vb.RequiredField("PlayerRepo")
	}
	if c.Random == nil {
		vb.RequiredField("Random")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	playerRepo playerrepo.Repository
	random     rng.Source
	roots      *spiritroot.Factory
	idGen      idgen.Generator
}

// NewOrchestrator creates a new player orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		playerRepo: cfg.PlayerRepo,
		random:     cfg.Random,
		roots:      spiritroot.NewFactory(cfg.Random),
		idGen:      cfg.IDGenerator,
	}, nil
}

func (o *orchestrator) CreatePlayer(ctx context.Context, input *CreatePlayerInput) (*CreatePlayerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	name := strings.TrimSpace(input.Name)
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", name, vb)
	errors.ValidateMaxRunes("name", name, MaxNameLength, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	id := input.PlayerID
	if id == "" {
		id = o.idGen.Generate()
	}

	root := o.roots.Generate()
	p := &entities.Player{
		ID:         id,
		Name:       name,
		Realm:      realm.First().ID,
		Level:      realm.MinLevel,
		SpiritRoot: root,
		Attributes: entities.CoreAttributes{
			Constitution:   rng.Range(o.random, constitutionRange[0], constitutionRange[1]),
			SpiritualPower: rng.Range(o.random, spiritualPowerRange[0], spiritualPowerRange[1]),
			Comprehension:  rng.Range(o.random, minorAttributeRange[0], minorAttributeRange[1]),
			Luck:           rng.Range(o.random, minorAttributeRange[0], minorAttributeRange[1]),
			RootBone:       rng.Range(o.random, minorAttributeRange[0], minorAttributeRange[1]),
		},
		Stats: entities.CombatStats{
			HP:      startingStat,
			MaxHP:   startingStat,
			MP:      startingStat,
			MaxMP:   startingStat,
			Attack:  startingAttack,
			Defense: startingDefense,
		},
		SpiritStones: startingSpiritStones,
	}

	created, err := o.playerRepo.Create(ctx, playerrepo.CreateInput{Player: p})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create player")
	}

	slog.InfoContext(ctx, "player created",
		"player_id", id,
		"spirit_root", root.Type(),
		"quality", root.Quality.String(),
		"purity", root.Purity)

	return &CreatePlayerOutput{
		Player:                created.Player,
		SpiritRootDescription: spiritroot.Describe(root),
	}, nil
}

func (o *orchestrator) GetPlayer(ctx context.Context, input *GetPlayerInput) (*GetPlayerOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	got, err := o.playerRepo.Get(ctx, playerrepo.GetInput{ID: input.PlayerID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get player")
	}
	p := got.Player

	return &GetPlayerOutput{
		Player:      p,
		RealmLabel:  p.RealmLabel(),
		Stage:       realm.StageOf(p.Realm),
		Power:       combat.Power(p, 0),
		Bonuses:     spiritroot.CalculateBonuses(p.SpiritRoot),
		Description: spiritroot.Describe(p.SpiritRoot),
	}, nil
}
