package challenge_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/cultivation-api/internal/entities"
	"github.com/KirkDiggler/cultivation-api/internal/errors"
	"github.com/KirkDiggler/cultivation-api/internal/pkg/clock"
	"github.com/KirkDiggler/cultivation-api/internal/realm"
	"github.com/KirkDiggler/cultivation-api/internal/repositories/challenge"
	"github.com/KirkDiggler/cultivation-api/internal/testutils"
)

var testEpoch = time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

type RepositoryContractSuite struct {
	suite.Suite
	newRepo func(t *testing.T, c clock.Clock) challenge.Repository
	clock   *clock.Fake
	repo    challenge.Repository
	ctx     context.Context
}

func (s *RepositoryContractSuite) SetupTest() {
	s.clock = clock.NewFake(testEpoch)
	s.repo = s.newRepo(s.T(), s.clock)
	s.ctx = context.Background()
}

func testChallenge(id, playerID string) *entities.Challenge {
	return &entities.Challenge{
		ID:               id,
		PlayerID:         playerID,
		TargetRealm:      realm.GoldenCore,
		Kind:             entities.TribulationThunder,
		TribulationLevel: 2,
		Difficulty:       entities.DifficultyNormal,
		Waves:            4,
		DamagePerWave:    200,
	}
}

func (s *RepositoryContractSuite) TestCreateAndGetPending() {
	out, err := s.repo.Create(s.ctx, challenge.CreateInput{
		Challenge: testChallenge("trib_1", "p1"),
		TTL:       time.Hour,
	})
	s.Require().NoError(err)
	s.Equal(entities.ChallengePending, out.Challenge.Status)
	s.Equal(testEpoch.Unix(), out.Challenge.CreatedAt)
	s.Equal(testEpoch.Add(time.Hour).Unix(), out.Challenge.ExpiresAt)

	got, err := s.repo.GetPending(s.ctx, challenge.GetPendingInput{PlayerID: "p1"})
	s.Require().NoError(err)
	s.Equal(out.Challenge, got.Challenge)
}

func (s *RepositoryContractSuite) TestCreateDefaultTTL() {
	out, err := s.repo.Create(s.ctx, challenge.CreateInput{Challenge: testChallenge("trib_1", "p1")})
	s.Require().NoError(err)
	s.Equal(testEpoch.Add(challenge.DefaultTTL).Unix(), out.Challenge.ExpiresAt)
}

func (s *RepositoryContractSuite) TestOnePendingPerPlayer() {
	_, err := s.repo.Create(s.ctx, challenge.CreateInput{Challenge: testChallenge("trib_1", "p1")})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, challenge.CreateInput{Challenge: testChallenge("trib_2", "p1")})
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))

	// other players are independent
	_, err = s.repo.Create(s.ctx, challenge.CreateInput{Challenge: testChallenge("trib_3", "p2")})
	s.NoError(err)

	got, err := s.repo.GetPending(s.ctx, challenge.GetPendingInput{PlayerID: "p1"})
	s.Require().NoError(err)
	s.Equal("trib_1", got.Challenge.ID)
}

func (s *RepositoryContractSuite) TestConcurrentCreateOneWins() {
	const racers = 6
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
		dups int
	)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			c := testChallenge("trib_"+string(rune('a'+n)), "p1")
			_, err := s.repo.Create(s.ctx, challenge.CreateInput{Challenge: c})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				wins++
			} else if errors.IsAlreadyExists(err) {
				dups++
			}
		}(i)
	}
	wg.Wait()

	s.Equal(1, wins)
	s.Equal(racers-1, dups)
}

func (s *RepositoryContractSuite) TestGetPendingMissing() {
	_, err := s.repo.GetPending(s.ctx, challenge.GetPendingInput{PlayerID: "p1"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.GetPending(s.ctx, challenge.GetPendingInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RepositoryContractSuite) TestExpiredChallengeIsGone() {
	_, err := s.repo.Create(s.ctx, challenge.CreateInput{
		Challenge: testChallenge("trib_1", "p1"),
		TTL:       time.Minute,
	})
	s.Require().NoError(err)

	s.clock.Advance(2 * time.Minute)

	_, err = s.repo.GetPending(s.ctx, challenge.GetPendingInput{PlayerID: "p1"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Create(s.ctx, challenge.CreateInput{Challenge: testChallenge("trib_2", "p1")})
	s.NoError(err)
}

func (s *RepositoryContractSuite) TestClose() {
	_, err := s.repo.Create(s.ctx, challenge.CreateInput{Challenge: testChallenge("trib_1", "p1")})
	s.Require().NoError(err)

	s.Run("wrong id", func() {
		_, err := s.repo.Close(s.ctx, challenge.CloseInput{
			PlayerID: "p1", ChallengeID: "trib_9", Status: entities.ChallengePassed,
		})
		s.True(errors.IsNotFound(err))
	})

	s.Run("pending is not a final status", func() {
		_, err := s.repo.Close(s.ctx, challenge.CloseInput{
			PlayerID: "p1", ChallengeID: "trib_1", Status: entities.ChallengePending,
		})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("closes", func() {
		out, err := s.repo.Close(s.ctx, challenge.CloseInput{
			PlayerID: "p1", ChallengeID: "trib_1", Status: entities.ChallengeFailed,
		})
		s.Require().NoError(err)
		s.Equal(entities.ChallengeFailed, out.Challenge.Status)
		s.Equal("trib_1", out.Challenge.ID)

		_, err = s.repo.GetPending(s.ctx, challenge.GetPendingInput{PlayerID: "p1"})
		s.True(errors.IsNotFound(err))
	})

	s.Run("already closed", func() {
		_, err := s.repo.Close(s.ctx, challenge.CloseInput{
			PlayerID: "p1", ChallengeID: "trib_1", Status: entities.ChallengePassed,
		})
		s.True(errors.IsNotFound(err))
	})
}

func (s *RepositoryContractSuite) TestCreateValidation() {
	_, err := s.repo.Create(s.ctx, challenge.CreateInput{})
	s.True(errors.IsInvalidArgument(err))

	c := testChallenge("trib_1", "p1")
	c.Waves = 0
	_, err = s.repo.Create(s.ctx, challenge.CreateInput{Challenge: c})
	s.True(errors.IsInvalidArgument(err))
}

func TestInMemoryRepository(t *testing.T) {
	suite.Run(t, &RepositoryContractSuite{
		newRepo: func(_ *testing.T, c clock.Clock) challenge.Repository {
			return challenge.NewInMemory(c)
		},
	})
}

func TestRedisRepository(t *testing.T) {
	suite.Run(t, &RepositoryContractSuite{
		newRepo: func(t *testing.T, c clock.Clock) challenge.Repository {
			client, cleanup := testutils.CreateTestRedisClient(t)
			t.Cleanup(cleanup)
			repo, err := challenge.NewRedis(&challenge.RedisConfig{Client: client, Clock: c})
			if err != nil {
				t.Fatalf("failed to create redis repository: %v", err)
			}
			return repo
		},
	})
}

func TestRedisTTLEvictsChallenge(t *testing.T) {
	client, mr, cleanup := testutils.CreateTestRedisServer(t)
	defer cleanup()
	ctx := context.Background()

	repo, err := challenge.NewRedis(&challenge.RedisConfig{Client: client})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := repo.Create(ctx, challenge.CreateInput{
		Challenge: testChallenge("trib_1", "p1"),
		TTL:       30 * time.Second,
	}); err != nil {
		t.Fatal(err)
	}
	assertTTL(t, mr, "tribulation:pending:p1", 30*time.Second)

	mr.FastForward(31 * time.Second)
	if _, err := repo.GetPending(ctx, challenge.GetPendingInput{PlayerID: "p1"}); !errors.IsNotFound(err) {
		t.Fatalf("expected not found after ttl, got %v", err)
	}
}

func assertTTL(t *testing.T, mr *miniredis.Miniredis, key string, want time.Duration) {
	t.Helper()
	if got := mr.TTL(key); got != want {
		t.Fatalf("ttl of %s = %v, want %v", key, got, want)
	}
}
