package player

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	stderrors "errors"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/KirkDiggler/cultivation-api/internal/entities"
	"github.com/KirkDiggler/cultivation-api/internal/errors"
	"github.com/KirkDiggler/cultivation-api/internal/pkg/clock"
	"github.com/KirkDiggler/cultivation-api/internal/pkg/sqlitemigrate"
	"github.com/KirkDiggler/cultivation-api/internal/realm"
	"github.com/KirkDiggler/cultivation-api/internal/repositories/player/migrations"
	"github.com/KirkDiggler/cultivation-api/internal/spiritroot"
)

const playerColumns = `id, name, realm, level, cultivation,
    spirit_root_quality, spirit_root_elements, spirit_root_value, spirit_root_purity,
    constitution, spiritual_power, comprehension, luck, root_bone,
    hp, max_hp, mp, max_mp, attack, defense,
    spirit_stones, last_cultivated_at, version, created_at, updated_at`

// SQLiteRepository stores players in a SQLite database file
type SQLiteRepository struct {
	db    *sql.DB
	clock clock.Clock
}

// SQLiteConfig contains configuration for the SQLite player repository.
type SQLiteConfig struct {
	Path  string
	Clock clock.Clock
}

// Validate validates the SQLiteConfig.
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("path", strings.TrimSpace(cfg.Path), vb)
	return vb.Build()
}

// NewSQLite opens the database at cfg.Path and applies pending migrations
func NewSQLite(ctx context.Context, cfg *SQLiteConfig) (*SQLiteRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cleanPath := filepath.Clean(cfg.Path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open sqlite store")
	}
	// SQLite allows one writer; a single connection turns lock contention into queueing
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Unavailablef("failed to ping sqlite store: %v", err)
	}
	if err := sqlitemigrate.ApplyMigrations(ctx, db, migrations.FS, ""); err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(err, "failed to apply player migrations")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &SQLiteRepository{db: db, clock: c}, nil
}

// Ensure SQLiteRepository implements Repository
var _ Repository = (*SQLiteRepository)(nil)

// Close closes the underlying database handle
func (r *SQLiteRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

func (r *SQLiteRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validatePlayer(input.Player); err != nil {
		return nil, err
	}

	created := input.Player.Clone()
	now := r.clock.Now().Unix()
	created.Version = 1
	created.CreatedAt = now
	created.UpdatedAt = now

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", 25), ", ")
	query := fmt.Sprintf("INSERT INTO players (%s) VALUES (%s)", playerColumns, placeholders)
	if _, err := r.db.ExecContext(ctx, query, rowArgs(created)...); err != nil {
		if isUniqueViolation(err) {
			return nil, errors.AlreadyExistsf("player with ID %s already exists", created.ID)
		}
		return nil, errors.Wrapf(err, "failed to create player")
	}

	return &CreateOutput{Player: created}, nil
}

func (r *SQLiteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	row := r.db.QueryRowContext(ctx, "SELECT "+playerColumns+" FROM players WHERE id = ?", input.ID)
	p, err := scanPlayer(row)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundf("player with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get player")
	}

	return &GetOutput{Player: p}, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validatePlayer(input.Player); err != nil {
		return nil, err
	}

	id := input.Player.ID
	updated := input.Player.Clone()
	updated.Version = input.Player.Version + 1
	updated.UpdatedAt = r.clock.Now().Unix()

	res, err := r.db.ExecContext(ctx, `
UPDATE players SET
    name = ?, realm = ?, level = ?, cultivation = ?,
    spirit_root_quality = ?, spirit_root_elements = ?, spirit_root_value = ?, spirit_root_purity = ?,
    constitution = ?, spiritual_power = ?, comprehension = ?, luck = ?, root_bone = ?,
    hp = ?, max_hp = ?, mp = ?, max_mp = ?, attack = ?, defense = ?,
    spirit_stones = ?, last_cultivated_at = ?, version = ?, updated_at = ?
WHERE id = ? AND version = ?`,
		updated.Name, string(updated.Realm), updated.Level, updated.Cultivation,
		updated.SpiritRoot.Quality.String(), updated.SpiritRoot.Type(), updated.SpiritRoot.Value, updated.SpiritRoot.Purity,
		updated.Attributes.Constitution, updated.Attributes.SpiritualPower, updated.Attributes.Comprehension,
		updated.Attributes.Luck, updated.Attributes.RootBone,
		updated.Stats.HP, updated.Stats.MaxHP, updated.Stats.MP, updated.Stats.MaxMP,
		updated.Stats.Attack, updated.Stats.Defense,
		updated.SpiritStones, updated.LastCultivatedAt, updated.Version, updated.UpdatedAt,
		id, input.Player.Version,
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update player")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read update result")
	}
	if affected == 0 {
		var actual int64
		err := r.db.QueryRowContext(ctx, "SELECT version FROM players WHERE id = ?", id).Scan(&actual)
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundf("player with ID %s not found", id)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to check player version")
		}
		return nil, errors.VersionConflict(id, input.Player.Version, actual)
	}

	return &UpdateOutput{Player: updated}, nil
}

func rowArgs(p *entities.Player) []any {
	return []any{
		p.ID, p.Name, string(p.Realm), p.Level, p.Cultivation,
		p.SpiritRoot.Quality.String(), p.SpiritRoot.Type(), p.SpiritRoot.Value, p.SpiritRoot.Purity,
		p.Attributes.Constitution, p.Attributes.SpiritualPower, p.Attributes.Comprehension,
		p.Attributes.Luck, p.Attributes.RootBone,
		p.Stats.HP, p.Stats.MaxHP, p.Stats.MP, p.Stats.MaxMP, p.Stats.Attack, p.Stats.Defense,
		p.SpiritStones, p.LastCultivatedAt, p.Version, p.CreatedAt, p.UpdatedAt,
	}
}

func scanPlayer(row *sql.Row) (*entities.Player, error) {
	var (
		p                entities.Player
		realmID, quality string
		elements         string
		value, purity    int
	)
	err := row.Scan(
		&p.ID, &p.Name, &realmID, &p.Level, &p.Cultivation,
		&quality, &elements, &value, &purity,
		&p.Attributes.Constitution, &p.Attributes.SpiritualPower, &p.Attributes.Comprehension,
		&p.Attributes.Luck, &p.Attributes.RootBone,
		&p.Stats.HP, &p.Stats.MaxHP, &p.Stats.MP, &p.Stats.MaxMP, &p.Stats.Attack, &p.Stats.Defense,
		&p.SpiritStones, &p.LastCultivatedAt, &p.Version, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Realm = realm.ID(realmID)
	p.SpiritRoot = spiritroot.SpiritRoot{
		Quality:  spiritroot.ParseQuality(quality),
		Elements: spiritroot.ParseElements(elements),
		Value:    value,
		Purity:   purity,
	}
	return &p, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if !stderrors.As(err, &sqliteErr) {
		return false
	}
	switch sqliteErr.Code() {
	case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
		return true
	default:
		return false
	}
}
