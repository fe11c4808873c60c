package breakthrough_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/cultivation-api/internal/entities"
	"github.com/KirkDiggler/cultivation-api/internal/errors"
	"github.com/KirkDiggler/cultivation-api/internal/orchestrators/breakthrough"
	breakthroughmock "github.com/KirkDiggler/cultivation-api/internal/orchestrators/breakthrough/mock"
	"github.com/KirkDiggler/cultivation-api/internal/pkg/lock"
	"github.com/KirkDiggler/cultivation-api/internal/pkg/rng"
	"github.com/KirkDiggler/cultivation-api/internal/realm"
	"github.com/KirkDiggler/cultivation-api/internal/repositories/player"
	"github.com/KirkDiggler/cultivation-api/internal/spiritroot"
	"github.com/KirkDiggler/cultivation-api/internal/testutils"
)

const testPlayerID = "player_1"

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockGate *breakthroughmock.MockTribulationGate
	repo     *player.InMemoryRepository
	random   *rng.Scripted
	ctx      context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockGate = breakthroughmock.NewMockTribulationGate(s.ctrl)
	s.repo = player.NewInMemory(nil)
	s.random = rng.Fixed(0.0)
	s.ctx = context.Background()
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// newService builds an orchestrator; gate may be nil
func (s *OrchestratorTestSuite) newService(gate breakthrough.TribulationGate) breakthrough.Service {
	cfg := &breakthrough.Config{
		PlayerRepo: s.repo,
		Locker:     lock.NewLocal(),
		Random:     s.random,
	}
	if gate != nil {
		cfg.Gate = gate
	}
	svc, err := breakthrough.NewOrchestrator(cfg)
	s.Require().NoError(err)
	return svc
}

func (s *OrchestratorTestSuite) seed(id realm.ID, level int, cultivation int64) *entities.Player {
	p := &entities.Player{
		ID:          testPlayerID,
		Name:        "Wang Lin",
		Realm:       id,
		Level:       level,
		Cultivation: cultivation,
		SpiritRoot: spiritroot.SpiritRoot{
			Quality:  spiritroot.QualitySingle,
			Elements: []spiritroot.Element{spiritroot.ElementFire},
			Value:    85,
			Purity:   72,
		},
		Attributes: entities.CoreAttributes{
			Constitution: 15, SpiritualPower: 15, Comprehension: 10, Luck: 10, RootBone: 10,
		},
		Stats: entities.CombatStats{
			HP: 40, MaxHP: 100, MP: 30, MaxMP: 100, Attack: 10, Defense: 10,
		},
	}
	out, err := s.repo.Create(s.ctx, player.CreateInput{Player: p})
	s.Require().NoError(err)
	return out.Player
}

func (s *OrchestratorTestSuite) stored() *entities.Player {
	out, err := s.repo.Get(s.ctx, player.GetInput{ID: testPlayerID})
	s.Require().NoError(err)
	return out.Player
}

func (s *OrchestratorTestSuite) TestConfigValidation() {
	_, err := breakthrough.NewOrchestrator(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = breakthrough.NewOrchestrator(&breakthrough.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "PlayerRepo")
}

func (s *OrchestratorTestSuite) TestInputValidation() {
	svc := s.newService(nil)

	_, err := svc.AttemptBreakthrough(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = svc.AttemptBreakthrough(s.ctx, &breakthrough.AttemptBreakthroughInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = svc.GetBreakthroughInfo(s.ctx, &breakthrough.GetBreakthroughInfoInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestPlayerNotFound() {
	svc := s.newService(nil)

	_, err := svc.AttemptBreakthrough(s.ctx, &breakthrough.AttemptBreakthroughInput{PlayerID: "ghost"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))

	_, err = svc.GetBreakthroughInfo(s.ctx, &breakthrough.GetBreakthroughInfoInput{PlayerID: "ghost"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestMajorRealmSuccessAppliesFullBundle() {
	threshold := realm.CultivationRequired(realm.FoundationEstablishment, 1)
	s.seed(realm.QiRefining, 4, threshold)
	svc := s.newService(nil)

	out, err := svc.AttemptBreakthrough(s.ctx, &breakthrough.AttemptBreakthroughInput{PlayerID: testPlayerID})
	s.Require().NoError(err)

	s.Equal(breakthrough.StateSucceeded, out.State)
	s.True(out.Success)
	s.Equal(realm.QiRefining, out.From.Realm)
	s.Equal(4, out.From.Level)
	s.Equal("Qi Refining Peak", out.From.Label)
	s.Equal(realm.FoundationEstablishment, out.To.Realm)
	s.Equal(1, out.To.Level)
	s.Equal("Foundation Establishment Early", out.To.Label)

	full := realm.Get(realm.FoundationEstablishment).Bonus
	s.Equal(full, out.AttributeGain)
	s.Equal(threshold, out.CultivationSpent)
	s.Equal(threshold/10, out.CultivationBonus)

	p := s.stored()
	s.Equal(realm.FoundationEstablishment, p.Realm)
	s.Equal(1, p.Level)
	s.Equal(threshold/10, p.Cultivation)
	s.Equal(int64(100)+full.MaxHP, p.Stats.MaxHP)
	s.Equal(int64(100)+full.MaxMP, p.Stats.MaxMP)
	s.Equal(int64(10)+full.Attack, p.Stats.Attack)
	s.Equal(int64(10)+full.Defense, p.Stats.Defense)
	s.Equal(p.Stats.MaxHP, p.Stats.HP)
	s.Equal(p.Stats.MaxMP, p.Stats.MP)
	s.Equal(int64(2), p.Version)
	s.Equal(p, out.Player)
}

func (s *OrchestratorTestSuite) TestSublevelSuccessAppliesQuarterBundle() {
	threshold := realm.CultivationRequired(realm.QiRefining, 2)
	s.seed(realm.QiRefining, 1, threshold+5)
	svc := s.newService(nil)

	out, err := svc.AttemptBreakthrough(s.ctx, &breakthrough.AttemptBreakthroughInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.Equal(breakthrough.StateSucceeded, out.State)

	// Qi Refining grants 50/50/5/5; a quarter truncates to 12/12/1/1
	s.Equal(realm.Bonus{MaxHP: 12, MaxMP: 12, Attack: 1, Defense: 1}, out.AttributeGain)

	p := s.stored()
	s.Equal(realm.QiRefining, p.Realm)
	s.Equal(2, p.Level)
	s.Equal(int64(112), p.Stats.MaxHP)
	s.Equal(int64(112), p.Stats.HP)
	s.Equal(int64(11), p.Stats.Attack)
	s.Equal(int64(5)+threshold/10, p.Cultivation)
}

func (s *OrchestratorTestSuite) TestFailureDeductsTwentyPercent() {
	s.random = rng.Fixed(0.99)
	s.seed(realm.QiRefining, 3, 1000)
	svc := s.newService(nil)

	out, err := svc.AttemptBreakthrough(s.ctx, &breakthrough.AttemptBreakthroughInput{PlayerID: testPlayerID})
	s.Require().NoError(err)

	s.Equal(breakthrough.StateFailed, out.State)
	s.False(out.Success)
	s.Equal(int64(200), out.CultivationLost)
	s.True(out.AttributeGain.IsZero())

	p := s.stored()
	s.Equal(int64(800), p.Cultivation)
	s.Equal(realm.QiRefining, p.Realm)
	s.Equal(3, p.Level)
	s.Equal(int64(100), p.Stats.MaxHP)
	s.Equal(int64(40), p.Stats.HP)
	s.Equal(int64(2), p.Version)
}

func (s *OrchestratorTestSuite) TestFailurePenaltyFloors() {
	s.random = rng.Fixed(0.99)
	s.seed(realm.QiRefining, 3, 1004)
	svc := s.newService(nil)

	out, err := svc.AttemptBreakthrough(s.ctx, &breakthrough.AttemptBreakthroughInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.Equal(int64(200), out.CultivationLost)
	s.Equal(int64(804), s.stored().Cultivation)
}

func (s *OrchestratorTestSuite) TestIneligibleInsufficientCultivation() {
	s.seed(realm.QiRefining, 1, 50)
	svc := s.newService(nil)

	out, err := svc.AttemptBreakthrough(s.ctx, &breakthrough.AttemptBreakthroughInput{PlayerID: testPlayerID})
	s.Require().NoError(err)

	s.Equal(breakthrough.StateIneligible, out.State)
	s.Require().NotNil(out.Ineligibility)
	s.Equal(breakthrough.ReasonInsufficientCultivation, out.Ineligibility.Reason)
	s.Equal(int64(300), out.Ineligibility.Required)
	s.Equal(int64(50), out.Ineligibility.Current)
	s.Equal(int64(250), out.Ineligibility.Deficit)
	s.Equal(0, s.random.Calls())

	p := s.stored()
	s.Equal(int64(1), p.Version)
	s.Equal(int64(50), p.Cultivation)
}

func (s *OrchestratorTestSuite) TestIneligibleAtMaxRealm() {
	last := realm.Last()
	s.seed(last.ID, realm.MaxLevel, 1<<60)
	svc := s.newService(nil)

	out, err := svc.AttemptBreakthrough(s.ctx, &breakthrough.AttemptBreakthroughInput{PlayerID: testPlayerID})
	s.Require().NoError(err)

	s.Equal(breakthrough.StateIneligible, out.State)
	s.Equal(breakthrough.ReasonMaxRealm, out.Ineligibility.Reason)
	s.Equal(out.From, out.To)
	s.Equal(0, s.random.Calls())
	s.Equal(int64(1), s.stored().Version)
}

func (s *OrchestratorTestSuite) TestTribulationCreatedThenPending() {
	threshold := realm.CultivationRequired(realm.FoundationEstablishment, 1)
	s.seed(realm.QiRefining, 4, threshold)
	svc := s.newService(s.mockGate)

	challenge := &entities.Challenge{
		ID:          "trib_1",
		PlayerID:    testPlayerID,
		TargetRealm: realm.FoundationEstablishment,
		Status:      entities.ChallengePending,
	}

	gomock.InOrder(
		s.mockGate.EXPECT().IsRequired(gomock.Any(), realm.FoundationEstablishment).Return(true, nil),
		s.mockGate.EXPECT().GetPending(gomock.Any(), testPlayerID).Return(nil, nil),
		s.mockGate.EXPECT().Create(gomock.Any(), testPlayerID, realm.FoundationEstablishment).Return(challenge, nil),
		s.mockGate.EXPECT().IsRequired(gomock.Any(), realm.FoundationEstablishment).Return(true, nil),
		s.mockGate.EXPECT().GetPending(gomock.Any(), testPlayerID).Return(challenge, nil),
	)

	first, err := svc.AttemptBreakthrough(s.ctx, &breakthrough.AttemptBreakthroughInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.Equal(breakthrough.StateTribulationPending, first.State)
	s.Require().NotNil(first.Tribulation)
	s.True(first.Tribulation.Required)
	s.True(first.Tribulation.Created)
	s.Equal("trib_1", first.Tribulation.Challenge.ID)

	second, err := svc.AttemptBreakthrough(s.ctx, &breakthrough.AttemptBreakthroughInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.Equal(breakthrough.StateTribulationPending, second.State)
	s.False(second.Tribulation.Created)
	s.Equal("trib_1", second.Tribulation.Challenge.ID)

	p := s.stored()
	s.Equal(threshold, p.Cultivation)
	s.Equal(realm.QiRefining, p.Realm)
	s.Equal(4, p.Level)
	s.Equal(int64(1), p.Version)
	s.Equal(0, s.random.Calls())
}

func (s *OrchestratorTestSuite) TestTribulationCreateRace() {
	s.seed(realm.QiRefining, 4, 5000)
	svc := s.newService(s.mockGate)

	existing := &entities.Challenge{ID: "trib_other", PlayerID: testPlayerID}
	gomock.InOrder(
		s.mockGate.EXPECT().IsRequired(gomock.Any(), gomock.Any()).Return(true, nil),
		s.mockGate.EXPECT().GetPending(gomock.Any(), testPlayerID).Return(nil, nil),
		s.mockGate.EXPECT().Create(gomock.Any(), testPlayerID, gomock.Any()).
			Return(nil, errors.AlreadyExists("pending")),
		s.mockGate.EXPECT().GetPending(gomock.Any(), testPlayerID).Return(existing, nil),
	)

	out, err := svc.AttemptBreakthrough(s.ctx, &breakthrough.AttemptBreakthroughInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.Equal(breakthrough.StateTribulationPending, out.State)
	s.False(out.Tribulation.Created)
	s.Equal("trib_other", out.Tribulation.Challenge.ID)
}

func (s *OrchestratorTestSuite) TestTribulationStoreFailureIsError() {
	s.seed(realm.QiRefining, 4, 5000)
	svc := s.newService(s.mockGate)

	s.mockGate.EXPECT().IsRequired(gomock.Any(), gomock.Any()).Return(true, nil)
	s.mockGate.EXPECT().GetPending(gomock.Any(), testPlayerID).Return(nil, errors.Unavailable("redis down"))

	_, err := svc.AttemptBreakthrough(s.ctx, &breakthrough.AttemptBreakthroughInput{PlayerID: testPlayerID})
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
	s.Equal(int64(1), s.stored().Version)
}

func (s *OrchestratorTestSuite) TestGateErrorTreatedAsAbsent() {
	s.seed(realm.QiRefining, 4, 5000)
	svc := s.newService(s.mockGate)

	s.mockGate.EXPECT().IsRequired(gomock.Any(), realm.FoundationEstablishment).
		Return(false, errors.Unavailable("gate misconfigured"))

	out, err := svc.AttemptBreakthrough(s.ctx, &breakthrough.AttemptBreakthroughInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.Equal(breakthrough.StateSucceeded, out.State)
	s.Nil(out.Tribulation)
}

func (s *OrchestratorTestSuite) TestGateNotRequired() {
	s.seed(realm.QiRefining, 4, 5000)
	svc := s.newService(s.mockGate)

	s.mockGate.EXPECT().IsRequired(gomock.Any(), realm.FoundationEstablishment).Return(false, nil)

	out, err := svc.AttemptBreakthrough(s.ctx, &breakthrough.AttemptBreakthroughInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.Equal(breakthrough.StateSucceeded, out.State)
}

func (s *OrchestratorTestSuite) TestSkipTribulationBypassesGate() {
	s.seed(realm.QiRefining, 4, 5000)
	// no expectations: any gate call fails the test
	svc := s.newService(s.mockGate)

	out, err := svc.AttemptBreakthrough(s.ctx, &breakthrough.AttemptBreakthroughInput{
		PlayerID:        testPlayerID,
		SkipTribulation: true,
	})
	s.Require().NoError(err)
	s.Equal(breakthrough.StateSucceeded, out.State)
	s.Equal(realm.FoundationEstablishment, s.stored().Realm)
}

func (s *OrchestratorTestSuite) TestSublevelStepNeverGated() {
	s.seed(realm.QiRefining, 1, 300)
	svc := s.newService(s.mockGate)

	out, err := svc.AttemptBreakthrough(s.ctx, &breakthrough.AttemptBreakthroughInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.Equal(breakthrough.StateSucceeded, out.State)
}

func (s *OrchestratorTestSuite) TestInfoIsReadOnlyAndRepeatable() {
	s.seed(realm.QiRefining, 2, 450)
	svc := s.newService(nil)

	first, err := svc.GetBreakthroughInfo(s.ctx, &breakthrough.GetBreakthroughInfoInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	second, err := svc.GetBreakthroughInfo(s.ctx, &breakthrough.GetBreakthroughInfoInput{PlayerID: testPlayerID})
	s.Require().NoError(err)

	s.Equal(first, second)
	s.Equal(0, s.random.Calls())
	s.Equal(int64(1), s.stored().Version)

	s.Equal(realm.QiRefining, first.Next.Realm)
	s.Equal(3, first.Next.Level)
	s.Equal(int64(600), first.Required)
	s.Equal(int64(150), first.Deficit)
	s.False(first.CanAttempt)
	s.False(first.MajorTransition)
	s.GreaterOrEqual(first.Rate, 0.05)
	s.LessOrEqual(first.Rate, 0.95)
	s.Equal(realm.Bonus{MaxHP: 12, MaxMP: 12, Attack: 1, Defense: 1}, first.Gain)
}

func (s *OrchestratorTestSuite) TestInfoReportsTribulation() {
	s.seed(realm.QiRefining, 4, 5000)
	svc := s.newService(s.mockGate)

	pending := &entities.Challenge{ID: "trib_1", PlayerID: testPlayerID}
	s.mockGate.EXPECT().IsRequired(gomock.Any(), realm.FoundationEstablishment).Return(true, nil)
	s.mockGate.EXPECT().GetPending(gomock.Any(), testPlayerID).Return(pending, nil)

	info, err := svc.GetBreakthroughInfo(s.ctx, &breakthrough.GetBreakthroughInfoInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.True(info.MajorTransition)
	s.True(info.CanAttempt)
	s.True(info.TribulationRequired)
	s.Equal(pending, info.PendingChallenge)
	s.Equal(realm.Get(realm.FoundationEstablishment).Bonus, info.Gain)
}

func (s *OrchestratorTestSuite) TestInfoAtMaxRealm() {
	s.seed(realm.Last().ID, realm.MaxLevel, 0)
	svc := s.newService(nil)

	info, err := svc.GetBreakthroughInfo(s.ctx, &breakthrough.GetBreakthroughInfoInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.True(info.AtMaxRealm)
	s.False(info.CanAttempt)
	s.Equal(info.Current, info.Next)
}

func (s *OrchestratorTestSuite) TestPublishesEvents() {
	s.seed(realm.QiRefining, 1, 300)

	bus := events.NewBus()
	var seen []string
	var sources []string
	record := func(_ context.Context, e events.Event) error {
		seen = append(seen, e.Type())
		sources = append(sources, e.Source().GetID())
		return nil
	}
	bus.SubscribeFunc(breakthrough.EventSucceeded, 0, record)
	bus.SubscribeFunc(breakthrough.EventFailed, 0, record)

	svc, err := breakthrough.NewOrchestrator(&breakthrough.Config{
		PlayerRepo: s.repo,
		Locker:     lock.NewLocal(),
		Random:     rng.NewScripted(0.0, 0.99),
		EventBus:   bus,
	})
	s.Require().NoError(err)

	_, err = svc.AttemptBreakthrough(s.ctx, &breakthrough.AttemptBreakthroughInput{PlayerID: testPlayerID})
	s.Require().NoError(err)

	// give the player enough for the next step, then fail it
	p := s.stored()
	p.Cultivation = 600
	_, err = s.repo.Update(s.ctx, player.UpdateInput{Player: p})
	s.Require().NoError(err)

	_, err = svc.AttemptBreakthrough(s.ctx, &breakthrough.AttemptBreakthroughInput{PlayerID: testPlayerID})
	s.Require().NoError(err)

	s.Equal([]string{breakthrough.EventSucceeded, breakthrough.EventFailed}, seen)
	s.Equal([]string{testPlayerID, testPlayerID}, sources)
}

func (s *OrchestratorTestSuite) TestLockTimeout() {
	s.seed(realm.QiRefining, 1, 300)
	locker := lock.NewLocal()
	svc, err := breakthrough.NewOrchestrator(&breakthrough.Config{
		PlayerRepo: s.repo,
		Locker:     locker,
		Random:     s.random,
	})
	s.Require().NoError(err)

	release, err := locker.Acquire(s.ctx, lock.PlayerKey(testPlayerID))
	s.Require().NoError(err)
	defer func() { _ = release(s.ctx) }()

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err = svc.AttemptBreakthrough(ctx, &breakthrough.AttemptBreakthroughInput{PlayerID: testPlayerID})
	s.Require().Error(err)
	s.True(errors.IsCanceled(err))
	s.Equal(int64(1), s.stored().Version)
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) TestLadderStages() {
	testCases := []struct {
		stage string
		state breakthrough.State
		to    realm.ID
	}{
		{stage: testutils.StageReadyForSublevel, state: breakthrough.StateSucceeded, to: realm.QiRefining},
		{stage: testutils.StageReadyForMajor, state: breakthrough.StateSucceeded, to: realm.FoundationEstablishment},
		{stage: testutils.StagePeak, state: breakthrough.StateIneligible, to: realm.HunyuanSage},
		{stage: testutils.StageFresh, state: breakthrough.StateIneligible, to: realm.QiRefining},
	}

	for _, tc := range testCases {
		s.Run(tc.stage, func() {
			repo := player.NewInMemory(nil)
			_, err := repo.Create(s.ctx, player.CreateInput{Player: testutils.CreateTestPlayerAtStage(testPlayerID, tc.stage)})
			s.Require().NoError(err)

			svc, err := breakthrough.NewOrchestrator(&breakthrough.Config{
				PlayerRepo: repo,
				Locker:     lock.NewLocal(),
				Random:     rng.Fixed(0.0),
			})
			s.Require().NoError(err)

			out, err := svc.AttemptBreakthrough(s.ctx, &breakthrough.AttemptBreakthroughInput{PlayerID: testPlayerID})
			s.Require().NoError(err)
			s.Equal(tc.state, out.State)
			s.Equal(tc.to, out.To.Realm)
		})
	}
}
