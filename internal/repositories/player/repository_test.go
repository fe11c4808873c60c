package player_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/cultivation-api/internal/entities"
	"github.com/KirkDiggler/cultivation-api/internal/errors"
	"github.com/KirkDiggler/cultivation-api/internal/pkg/clock"
	"github.com/KirkDiggler/cultivation-api/internal/realm"
	"github.com/KirkDiggler/cultivation-api/internal/repositories/player"
	"github.com/KirkDiggler/cultivation-api/internal/spiritroot"
	"github.com/KirkDiggler/cultivation-api/internal/testutils"
)

var testEpoch = time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

// RepositoryContractSuite runs the same behavior checks against every backend
type RepositoryContractSuite struct {
	suite.Suite
	newRepo func(t *testing.T, c clock.Clock) player.Repository
	clock   *clock.Fake
	repo    player.Repository
	ctx     context.Context
}

func (s *RepositoryContractSuite) SetupTest() {
	s.clock = clock.NewFake(testEpoch)
	s.repo = s.newRepo(s.T(), s.clock)
	s.ctx = context.Background()
}

func testPlayer(id string) *entities.Player {
	return &entities.Player{
		ID:          id,
		Name:        "Han Li",
		Realm:       realm.QiRefining,
		Level:       2,
		Cultivation: 40,
		SpiritRoot: spiritroot.SpiritRoot{
			Quality:  spiritroot.QualityDual,
			Elements: []spiritroot.Element{spiritroot.ElementWood, spiritroot.ElementWater},
			Value:    72,
			Purity:   64,
		},
		Attributes: entities.CoreAttributes{
			Constitution:   14,
			SpiritualPower: 17,
			Comprehension:  9,
			Luck:           6,
			RootBone:       11,
		},
		Stats: entities.CombatStats{
			HP: 100, MaxHP: 100, MP: 100, MaxMP: 100, Attack: 10, Defense: 10,
		},
		SpiritStones: 1000,
	}
}

func (s *RepositoryContractSuite) TestCreateAndGet() {
	out, err := s.repo.Create(s.ctx, player.CreateInput{Player: testPlayer("p1")})
	s.Require().NoError(err)
	s.Equal(int64(1), out.Player.Version)
	s.Equal(testEpoch.Unix(), out.Player.CreatedAt)
	s.Equal(testEpoch.Unix(), out.Player.UpdatedAt)

	got, err := s.repo.Get(s.ctx, player.GetInput{ID: "p1"})
	s.Require().NoError(err)
	s.Equal(out.Player, got.Player)
	s.Equal("wood+water", got.Player.SpiritRoot.Type())
	s.Equal(spiritroot.QualityDual, got.Player.SpiritRoot.Quality)
}

func (s *RepositoryContractSuite) TestCreateDuplicate() {
	_, err := s.repo.Create(s.ctx, player.CreateInput{Player: testPlayer("p1")})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, player.CreateInput{Player: testPlayer("p1")})
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))
}

func (s *RepositoryContractSuite) TestCreateValidation() {
	s.Run("nil player", func() {
		_, err := s.repo.Create(s.ctx, player.CreateInput{})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("empty id", func() {
		_, err := s.repo.Create(s.ctx, player.CreateInput{Player: testPlayer("")})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("level out of range", func() {
		p := testPlayer("p2")
		p.Level = 5
		_, err := s.repo.Create(s.ctx, player.CreateInput{Player: p})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("negative cultivation", func() {
		p := testPlayer("p3")
		p.Cultivation = -1
		_, err := s.repo.Create(s.ctx, player.CreateInput{Player: p})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *RepositoryContractSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, player.GetInput{ID: "ghost"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Get(s.ctx, player.GetInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RepositoryContractSuite) TestUpdateBumpsVersion() {
	created, err := s.repo.Create(s.ctx, player.CreateInput{Player: testPlayer("p1")})
	s.Require().NoError(err)

	s.clock.Advance(time.Minute)
	next := created.Player.Clone()
	next.Realm = realm.FoundationEstablishment
	next.Level = 1
	next.Cultivation = 0

	updated, err := s.repo.Update(s.ctx, player.UpdateInput{Player: next})
	s.Require().NoError(err)
	s.Equal(int64(2), updated.Player.Version)
	s.Equal(testEpoch.Add(time.Minute).Unix(), updated.Player.UpdatedAt)

	got, err := s.repo.Get(s.ctx, player.GetInput{ID: "p1"})
	s.Require().NoError(err)
	s.Equal(realm.FoundationEstablishment, got.Player.Realm)
	s.Equal(1, got.Player.Level)
	s.Equal(int64(2), got.Player.Version)
}

func (s *RepositoryContractSuite) TestUpdateStaleVersion() {
	created, err := s.repo.Create(s.ctx, player.CreateInput{Player: testPlayer("p1")})
	s.Require().NoError(err)

	first := created.Player.Clone()
	first.Cultivation = 50
	_, err = s.repo.Update(s.ctx, player.UpdateInput{Player: first})
	s.Require().NoError(err)

	stale := created.Player.Clone()
	stale.Cultivation = 99
	_, err = s.repo.Update(s.ctx, player.UpdateInput{Player: stale})
	s.Require().Error(err)
	s.True(errors.IsAborted(err))

	got, err := s.repo.Get(s.ctx, player.GetInput{ID: "p1"})
	s.Require().NoError(err)
	s.Equal(int64(50), got.Player.Cultivation)
}

func (s *RepositoryContractSuite) TestUpdateMissing() {
	p := testPlayer("ghost")
	p.Version = 1
	_, err := s.repo.Update(s.ctx, player.UpdateInput{Player: p})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RepositoryContractSuite) TestReturnedPlayerIsDetached() {
	created, err := s.repo.Create(s.ctx, player.CreateInput{Player: testPlayer("p1")})
	s.Require().NoError(err)
	created.Player.SpiritRoot.Elements[0] = spiritroot.ElementFire
	created.Player.Cultivation = 1

	got, err := s.repo.Get(s.ctx, player.GetInput{ID: "p1"})
	s.Require().NoError(err)
	s.Equal(spiritroot.ElementWood, got.Player.SpiritRoot.Elements[0])
	s.Equal(int64(40), got.Player.Cultivation)
}

func (s *RepositoryContractSuite) TestUpdatedPlayerIsDetached() {
	created, err := s.repo.Create(s.ctx, player.CreateInput{Player: testPlayer("p1")})
	s.Require().NoError(err)

	updated, err := s.repo.Update(s.ctx, player.UpdateInput{Player: created.Player})
	s.Require().NoError(err)
	updated.Player.SpiritRoot.Elements[0] = spiritroot.ElementWater
	created.Player.SpiritRoot.Elements[0] = spiritroot.ElementFire

	got, err := s.repo.Get(s.ctx, player.GetInput{ID: "p1"})
	s.Require().NoError(err)
	s.Equal(spiritroot.ElementWood, got.Player.SpiritRoot.Elements[0])
}

func (s *RepositoryContractSuite) TestConcurrentUpdatesOneWins() {
	created, err := s.repo.Create(s.ctx, player.CreateInput{Player: testPlayer("p1")})
	s.Require().NoError(err)

	const writers = 8
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		wins     int
		conflict int
	)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			p := created.Player.Clone()
			p.Cultivation = int64(100 + n)
			_, err := s.repo.Update(s.ctx, player.UpdateInput{Player: p})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				wins++
			case errors.IsAborted(err):
				conflict++
			}
		}(i)
	}
	wg.Wait()

	s.Equal(1, wins)
	s.Equal(writers-1, conflict)

	got, err := s.repo.Get(s.ctx, player.GetInput{ID: "p1"})
	s.Require().NoError(err)
	s.Equal(int64(2), got.Player.Version)
}

func TestInMemoryRepository(t *testing.T) {
	suite.Run(t, &RepositoryContractSuite{
		newRepo: func(_ *testing.T, c clock.Clock) player.Repository {
			return player.NewInMemory(c)
		},
	})
}

func TestRedisRepository(t *testing.T) {
	suite.Run(t, &RepositoryContractSuite{
		newRepo: func(t *testing.T, c clock.Clock) player.Repository {
			client, cleanup := testutils.CreateTestRedisClient(t)
			t.Cleanup(cleanup)
			repo, err := player.NewRedis(&player.RedisConfig{Client: client, Clock: c})
			if err != nil {
				t.Fatalf("failed to create redis repository: %v", err)
			}
			return repo
		},
	})
}

func TestSQLiteRepository(t *testing.T) {
	suite.Run(t, &RepositoryContractSuite{
		newRepo: func(t *testing.T, c clock.Clock) player.Repository {
			repo, err := player.NewSQLite(context.Background(), &player.SQLiteConfig{
				Path:  filepath.Join(t.TempDir(), "players.db"),
				Clock: c,
			})
			if err != nil {
				t.Fatalf("failed to create sqlite repository: %v", err)
			}
			t.Cleanup(func() { _ = repo.Close() })
			return repo
		},
	})
}

func TestSQLiteReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "players.db")

	repo, err := player.NewSQLite(ctx, &player.SQLiteConfig{Path: path})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := repo.Create(ctx, player.CreateInput{Player: testPlayer("p1")}); err != nil {
		t.Fatalf("create: %v", err)
	}
	_ = repo.Close()

	reopened, err := player.NewSQLite(ctx, &player.SQLiteConfig{Path: path})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = reopened.Close() }()

	got, err := reopened.Get(ctx, player.GetInput{ID: "p1"})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Player.SpiritRoot.Type() != "wood+water" {
		t.Fatalf("unexpected root %q", got.Player.SpiritRoot.Type())
	}
}

func TestConfigValidation(t *testing.T) {
	if _, err := player.NewRedis(nil); !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
	if _, err := player.NewRedis(&player.RedisConfig{}); !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
	if _, err := player.NewSQLite(context.Background(), &player.SQLiteConfig{Path: " "}); !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}
