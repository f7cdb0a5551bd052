package encounter_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-casino/internal/engine/diceboss"
	"github.com/KirkDiggler/rpg-casino/internal/entities"
	"github.com/KirkDiggler/rpg-casino/internal/errors"
	dicemock "github.com/KirkDiggler/rpg-casino/internal/orchestrators/dice/mock"
	"github.com/KirkDiggler/rpg-casino/internal/orchestrators/encounter"
	"github.com/KirkDiggler/rpg-casino/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-casino/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-casino/internal/pkg/roller"
	"github.com/KirkDiggler/rpg-casino/internal/repositories/encounters"
	encountermock "github.com/KirkDiggler/rpg-casino/internal/repositories/encounters/mock"
	"github.com/KirkDiggler/rpg-casino/internal/repositories/progress"
	"github.com/KirkDiggler/rpg-casino/internal/testutils"
	"github.com/KirkDiggler/rpg-casino/internal/testutils/mocks"
)

type OrchestratorTestSuite struct {
	suite.Suite

	ctrl            *gomock.Controller
	mockDiceService *dicemock.MockService
	encounterRepo   *encounters.InMemoryRepository
	progressRepo    *progress.InMemoryRepository
	roller          *roller.Scripted
	eventBus        events.EventBus
	orchestrator    encounter.Service
	ctx             context.Context

	mu        sync.Mutex
	published []string
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockDiceService = dicemock.NewMockService(s.ctrl)
	s.encounterRepo = encounters.NewInMemory(clock.NewFixed(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)))
	s.progressRepo = progress.NewInMemory()
	s.roller = roller.NewScripted()
	s.eventBus = events.NewBus()
	s.ctx = context.Background()
	s.published = nil

	for _, eventType := range []string{
		encounter.EventPlayerTurnEnded,
		encounter.EventBossTurnEnded,
		encounter.EventVictory,
		encounter.EventDefeat,
	} {
		s.eventBus.SubscribeFunc(eventType, 0, func(_ context.Context, _ events.Event) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.published = append(s.published, eventType)
			return nil
		})
	}

	s.orchestrator = s.newOrchestrator(s.encounterRepo, 0)

	mocks.AllowStatRolls(s.mockDiceService, testutils.CreateTestStats())
	mocks.AllowRecordedRolls(s.mockDiceService)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) newOrchestrator(repo encounters.Repository, bossHP int) encounter.Service {
	svc, err := encounter.NewOrchestrator(&encounter.Config{
		EncounterRepo: repo,
		ProgressRepo:  s.progressRepo,
		DiceService:   s.mockDiceService,
		IDGenerator:   idgen.NewSequential("enc"),
		Roller:        s.roller,
		EventBus:      s.eventBus,
		BossHP:        bossHP,
	})
	s.Require().NoError(err)
	return svc
}

func (s *OrchestratorTestSuite) events() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.published...)
}

// start opens an encounter whose opening roll is [1,5,2,3,4,6]
func (s *OrchestratorTestSuite) start() *entities.Encounter {
	s.roller.Push(1, 5, 2, 3, 4, 6)
	output, err := s.orchestrator.StartEncounter(s.ctx, &encounter.StartEncounterInput{
		PlayerID:   testutils.TestPlayerID,
		PlayerName: testutils.TestPlayerName,
	})
	s.Require().NoError(err)
	return output.Encounter
}

func (s *OrchestratorTestSuite) hold(encounterID string, dieIDs ...int) {
	for _, id := range dieIDs {
		output, err := s.orchestrator.ToggleDie(s.ctx, &encounter.ToggleDieInput{
			EncounterID: encounterID,
			DieID:       id,
		})
		s.Require().NoError(err)
		s.Require().True(output.Changed)
	}
}

func (s *OrchestratorTestSuite) TestNewOrchestratorValidation() {
	_, err := encounter.NewOrchestrator(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = encounter.NewOrchestrator(&encounter.Config{BossHP: -1})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "EncounterRepo")
	s.Contains(err.Error(), "BossHP")
}

func (s *OrchestratorTestSuite) TestStartEncounter() {
	s.roller.Push(1, 5, 2, 3, 4, 6)

	output, err := s.orchestrator.StartEncounter(s.ctx, &encounter.StartEncounterInput{
		PlayerID:   testutils.TestPlayerID,
		PlayerName: testutils.TestPlayerName,
	})
	s.Require().NoError(err)

	enc := output.Encounter
	s.Equal("enc_1", enc.ID)
	s.Equal(entities.EncounterStatusActive, enc.Status)
	s.Equal(1, enc.Turn)
	s.Equal(testutils.TestPlayerName, enc.Player.Name)
	s.Equal(120, enc.Player.HP)
	s.Equal(100, enc.Player.Shield)
	s.Equal(entities.DiceMasterHP, enc.Boss.HP)
	s.Equal(diceboss.PhaseAwaitingSelection, enc.Engine.Phase)
	s.Equal([diceboss.DiceCount]int{1, 5, 2, 3, 4, 6}, enc.Engine.Values())

	s.Require().NotNil(output.Opening)
	s.False(output.Opening.Busted)
	s.Len(output.Opening.Rolled, diceboss.DiceCount)

	stored, err := s.orchestrator.GetEncounter(s.ctx, &encounter.GetEncounterInput{EncounterID: enc.ID})
	s.Require().NoError(err)
	s.Equal(enc.Engine, stored.Encounter.Engine)
}

func (s *OrchestratorTestSuite) TestStartEncounterRequiresPlayer() {
	_, err := s.orchestrator.StartEncounter(s.ctx, &encounter.StartEncounterInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.StartEncounter(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestStartEncounterOpeningBust() {
	s.roller.Push(2, 3, 4, 6, 2, 3)

	output, err := s.orchestrator.StartEncounter(s.ctx, &encounter.StartEncounterInput{
		PlayerID: testutils.TestPlayerID,
	})
	s.Require().NoError(err)

	s.True(output.Opening.Busted)
	s.Equal(testutils.TestPlayerID, output.Encounter.Player.Name)
	s.Equal(diceboss.PhaseTurnEnded, output.Encounter.Engine.Phase)
	s.Require().NotNil(output.Encounter.LastPlayerTurn)
	s.True(output.Encounter.LastPlayerTurn.Busted)
	s.Equal(0, output.Encounter.LastPlayerTurn.Damage)
	s.Equal(entities.DiceMasterHP, output.Encounter.Boss.HP)
	s.Equal([]string{encounter.EventPlayerTurnEnded}, s.events())
}

func (s *OrchestratorTestSuite) TestFullRound() {
	enc := s.start()

	s.hold(enc.ID, 0, 1)

	passOutput, err := s.orchestrator.Pass(s.ctx, &encounter.PassInput{EncounterID: enc.ID})
	s.Require().NoError(err)
	s.Equal(150, passOutput.Turn.Score)
	s.Equal(15, passOutput.Turn.Damage)
	s.Equal(285, passOutput.Encounter.Boss.HP)
	s.Equal(diceboss.PhaseTurnEnded, passOutput.Encounter.Engine.Phase)

	s.roller.Push(5, 2, 3, 4, 6, 6)
	s.roller.Push(1, 1, 1, 2, 3, 4)

	bossOutput, err := s.orchestrator.BossTurn(s.ctx, &encounter.BossTurnInput{EncounterID: enc.ID})
	s.Require().NoError(err)
	s.Equal(50, bossOutput.Turn.Score)
	s.Equal(5, bossOutput.Turn.Damage)
	s.Equal(95, bossOutput.Encounter.Player.Shield)
	s.Equal(120, bossOutput.Encounter.Player.HP)

	s.Equal(2, bossOutput.Encounter.Turn)
	s.Require().NotNil(bossOutput.NextOpening)
	s.False(bossOutput.NextOpening.Busted)
	s.Equal(diceboss.PhaseAwaitingSelection, bossOutput.Encounter.Engine.Phase)
	s.Equal([diceboss.DiceCount]int{1, 1, 1, 2, 3, 4}, bossOutput.Encounter.Engine.Values())

	s.Equal([]string{encounter.EventPlayerTurnEnded, encounter.EventBossTurnEnded}, s.events())
	s.Equal(0, s.roller.Remaining())
}

func (s *OrchestratorTestSuite) TestRollMoreBust() {
	enc := s.start()
	s.hold(enc.ID, 0)

	s.roller.Push(2, 3, 4, 6, 2)

	output, err := s.orchestrator.RollMore(s.ctx, &encounter.RollMoreInput{EncounterID: enc.ID})
	s.Require().NoError(err)
	s.True(output.Outcome.Busted)
	s.Equal(100, output.Outcome.BankedScore)
	s.Require().NotNil(output.Turn)
	s.True(output.Turn.Busted)
	s.Equal(0, output.Turn.Score)
	s.Equal(entities.DiceMasterHP, output.Encounter.Boss.HP)
	s.Equal(diceboss.PhaseTurnEnded, output.Encounter.Engine.Phase)
}

func (s *OrchestratorTestSuite) TestRollMoreKeepsTurnGoing() {
	enc := s.start()
	s.hold(enc.ID, 0)

	s.roller.Push(5, 2, 3, 4, 6)

	output, err := s.orchestrator.RollMore(s.ctx, &encounter.RollMoreInput{EncounterID: enc.ID})
	s.Require().NoError(err)
	s.False(output.Outcome.Busted)
	s.Equal(100, output.Outcome.Pot)
	s.Nil(output.Turn)
	s.Equal(diceboss.PhaseAwaitingSelection, output.Encounter.Engine.Phase)
	s.Equal(100, output.Encounter.Engine.Pot)
}

func (s *OrchestratorTestSuite) TestRejectedActionLeavesEncounterUnchanged() {
	enc := s.start()

	_, err := s.orchestrator.Pass(s.ctx, &encounter.PassInput{EncounterID: enc.ID})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
	s.Equal(diceboss.ReasonUnclaimedDice, diceboss.RejectionReason(err))

	_, err = s.orchestrator.BossTurn(s.ctx, &encounter.BossTurnInput{EncounterID: enc.ID})
	s.Require().Error(err)
	s.NotEmpty(diceboss.RejectionReason(err))

	stored, err := s.orchestrator.GetEncounter(s.ctx, &encounter.GetEncounterInput{EncounterID: enc.ID})
	s.Require().NoError(err)
	s.Equal(enc.Engine, stored.Encounter.Engine)
	s.Empty(s.events())
}

func (s *OrchestratorTestSuite) TestToggleIgnoredForBadDie() {
	enc := s.start()

	output, err := s.orchestrator.ToggleDie(s.ctx, &encounter.ToggleDieInput{EncounterID: enc.ID, DieID: 9})
	s.Require().NoError(err)
	s.False(output.Changed)
}

func (s *OrchestratorTestSuite) TestVictory() {
	s.orchestrator = s.newOrchestrator(s.encounterRepo, 10)
	enc := s.start()
	s.hold(enc.ID, 0, 1)

	output, err := s.orchestrator.Pass(s.ctx, &encounter.PassInput{EncounterID: enc.ID})
	s.Require().NoError(err)
	s.Equal(entities.EncounterStatusVictory, output.Encounter.Status)
	s.Equal(0, output.Encounter.Boss.HP)
	s.Equal([]string{encounter.EventPlayerTurnEnded, encounter.EventVictory}, s.events())

	beaten, err := s.orchestrator.ListBeatenBosses(s.ctx, &encounter.ListBeatenBossesInput{
		PlayerID: testutils.TestPlayerID,
	})
	s.Require().NoError(err)
	s.Equal([]string{entities.DiceMasterID}, beaten.BossIDs)

	_, err = s.orchestrator.BossTurn(s.ctx, &encounter.BossTurnInput{EncounterID: enc.ID})
	s.True(errors.IsFailedPrecondition(err))
	s.Empty(diceboss.RejectionReason(err))
}

func (s *OrchestratorTestSuite) TestDefeat() {
	enc := s.start()
	s.hold(enc.ID, 0, 1)

	_, err := s.orchestrator.Pass(s.ctx, &encounter.PassInput{EncounterID: enc.ID})
	s.Require().NoError(err)

	stored, err := s.encounterRepo.Get(s.ctx, &encounters.GetInput{EncounterID: enc.ID})
	s.Require().NoError(err)
	stored.Encounter.Player.HP = 3
	stored.Encounter.Player.Shield = 0
	_, err = s.encounterRepo.Update(s.ctx, &encounters.UpdateInput{Encounter: stored.Encounter})
	s.Require().NoError(err)

	s.roller.Push(5, 2, 3, 4, 6, 6)

	output, err := s.orchestrator.BossTurn(s.ctx, &encounter.BossTurnInput{EncounterID: enc.ID})
	s.Require().NoError(err)
	s.Equal(entities.EncounterStatusDefeat, output.Encounter.Status)
	s.Equal(0, output.Encounter.Player.HP)
	s.Nil(output.NextOpening)
	s.Equal(1, output.Encounter.Turn)
	s.Equal(encounter.EventDefeat, s.events()[len(s.events())-1])

	beaten, err := s.orchestrator.ListBeatenBosses(s.ctx, &encounter.ListBeatenBossesInput{
		PlayerID: testutils.TestPlayerID,
	})
	s.Require().NoError(err)
	s.Empty(beaten.BossIDs)
}

func (s *OrchestratorTestSuite) TestEncounterNotFound() {
	_, err := s.orchestrator.RollMore(s.ctx, &encounter.RollMoreInput{EncounterID: "enc_missing"})
	s.True(errors.IsNotFound(err))

	_, err = s.orchestrator.GetEncounter(s.ctx, &encounter.GetEncounterInput{EncounterID: "enc_missing"})
	s.True(errors.IsNotFound(err))

	_, err = s.orchestrator.Pass(s.ctx, &encounter.PassInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestRecordRollFailureDoesNotStopPlay() {
	ctrl := gomock.NewController(s.T())
	diceService := dicemock.NewMockService(ctrl)
	mocks.ExpectStatRoll(diceService, "enc_1", testutils.CreateTestStats(), nil)
	diceService.EXPECT().
		RecordRoll(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("redis down")).
		Times(1)

	svc, err := encounter.NewOrchestrator(&encounter.Config{
		EncounterRepo: s.encounterRepo,
		ProgressRepo:  s.progressRepo,
		DiceService:   diceService,
		IDGenerator:   idgen.NewSequential("enc"),
		Roller:        s.roller,
		EventBus:      s.eventBus,
	})
	s.Require().NoError(err)

	s.roller.Push(1, 5, 2, 3, 4, 6)
	output, err := svc.StartEncounter(s.ctx, &encounter.StartEncounterInput{PlayerID: testutils.TestPlayerID})
	s.Require().NoError(err)
	s.Equal(diceboss.PhaseAwaitingSelection, output.Encounter.Engine.Phase)
}

func (s *OrchestratorTestSuite) TestStatRollFailure() {
	ctrl := gomock.NewController(s.T())
	diceService := dicemock.NewMockService(ctrl)
	mocks.ExpectStatRoll(diceService, "enc_1", entities.CharacterStats{}, errors.Internal("roller broke"))

	svc, err := encounter.NewOrchestrator(&encounter.Config{
		EncounterRepo: s.encounterRepo,
		ProgressRepo:  s.progressRepo,
		DiceService:   diceService,
		IDGenerator:   idgen.NewSequential("enc"),
		Roller:        s.roller,
		EventBus:      s.eventBus,
	})
	s.Require().NoError(err)

	_, err = svc.StartEncounter(s.ctx, &encounter.StartEncounterInput{PlayerID: testutils.TestPlayerID})
	s.True(errors.IsInternal(err))
}

func (s *OrchestratorTestSuite) TestConcurrentActionIsBusy() {
	mockRepo := encountermock.NewMockRepository(s.ctrl)
	svc := s.newOrchestrator(mockRepo, 0)

	entered := make(chan struct{})
	release := make(chan struct{})
	enc := testutils.CreateTestEncounter("enc_busy")

	mockRepo.EXPECT().
		Get(gomock.Any(), &encounters.GetInput{EncounterID: "enc_busy"}).
		DoAndReturn(func(_ context.Context, _ *encounters.GetInput) (*encounters.GetOutput, error) {
			close(entered)
			<-release
			return &encounters.GetOutput{Encounter: enc.Clone()}, nil
		})
	mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *encounters.UpdateInput) (*encounters.UpdateOutput, error) {
			return &encounters.UpdateOutput{Encounter: input.Encounter}, nil
		})

	done := make(chan error, 1)
	go func() {
		_, err := svc.ToggleDie(s.ctx, &encounter.ToggleDieInput{EncounterID: "enc_busy", DieID: 0})
		done <- err
	}()
	<-entered

	_, err := svc.ToggleDie(s.ctx, &encounter.ToggleDieInput{EncounterID: "enc_busy", DieID: 1})
	s.Require().Error(err)
	s.True(errors.IsAborted(err))

	close(release)
	s.NoError(<-done)
}

func (s *OrchestratorTestSuite) TestTurnContext() {
	s.Equal("turn_3", encounter.TurnContext(3))
}

func (s *OrchestratorTestSuite) TestRollsAreRecordedPerTurn() {
	ctrl := gomock.NewController(s.T())
	diceService := dicemock.NewMockService(ctrl)
	mocks.ExpectStatRoll(diceService, "enc_1", testutils.CreateTestStats(), nil)
	gomock.InOrder(
		mocks.ExpectRecordedRoll(diceService, "enc_1", "turn_1", "opening roll", []int{1, 5, 2, 3, 4, 6}),
		mocks.ExpectRecordedRoll(diceService, "enc_1", "turn_1", "boss roll", []int{5, 2, 3, 4, 6, 6}),
		mocks.ExpectRecordedRoll(diceService, "enc_1", "turn_2", "opening roll", []int{2, 3, 4, 6, 2, 3}),
	)

	svc, err := encounter.NewOrchestrator(&encounter.Config{
		EncounterRepo: s.encounterRepo,
		ProgressRepo:  s.progressRepo,
		DiceService:   diceService,
		IDGenerator:   idgen.NewSequential("enc"),
		Roller:        s.roller,
		EventBus:      s.eventBus,
	})
	s.Require().NoError(err)

	s.roller.Push(1, 5, 2, 3, 4, 6)
	_, err = svc.StartEncounter(s.ctx, &encounter.StartEncounterInput{PlayerID: testutils.TestPlayerID})
	s.Require().NoError(err)

	_, err = svc.ToggleDie(s.ctx, &encounter.ToggleDieInput{EncounterID: "enc_1", DieID: 0})
	s.Require().NoError(err)
	_, err = svc.Pass(s.ctx, &encounter.PassInput{EncounterID: "enc_1"})
	s.Require().NoError(err)

	s.roller.Push(5, 2, 3, 4, 6, 6)
	s.roller.Push(2, 3, 4, 6, 2, 3)
	_, err = svc.BossTurn(s.ctx, &encounter.BossTurnInput{EncounterID: "enc_1"})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TestFailedStoreLeavesNoRollHistory() {
	enc := s.start()
	s.hold(enc.ID, 0)
	stored, err := s.encounterRepo.Get(s.ctx, &encounters.GetInput{EncounterID: enc.ID})
	s.Require().NoError(err)

	ctrl := gomock.NewController(s.T())
	diceService := dicemock.NewMockService(ctrl)
	diceService.EXPECT().RecordRoll(gomock.Any(), gomock.Any()).Times(0)

	mockRepo := encountermock.NewMockRepository(ctrl)
	mockRepo.EXPECT().
		Get(gomock.Any(), &encounters.GetInput{EncounterID: enc.ID}).
		Return(&encounters.GetOutput{Encounter: stored.Encounter.Clone()}, nil)
	mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("redis down"))

	svc, err := encounter.NewOrchestrator(&encounter.Config{
		EncounterRepo: mockRepo,
		ProgressRepo:  s.progressRepo,
		DiceService:   diceService,
		IDGenerator:   idgen.NewSequential("enc"),
		Roller:        s.roller,
		EventBus:      s.eventBus,
	})
	s.Require().NoError(err)

	s.roller.Push(2, 3, 4, 6, 5)
	_, err = svc.RollMore(s.ctx, &encounter.RollMoreInput{EncounterID: enc.ID})
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
}

func (s *OrchestratorTestSuite) TestFailedCreateLeavesNoRollHistory() {
	ctrl := gomock.NewController(s.T())
	diceService := dicemock.NewMockService(ctrl)
	mocks.ExpectStatRoll(diceService, "enc_1", testutils.CreateTestStats(), nil)
	diceService.EXPECT().RecordRoll(gomock.Any(), gomock.Any()).Times(0)

	mockRepo := encountermock.NewMockRepository(ctrl)
	mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("redis down"))

	svc, err := encounter.NewOrchestrator(&encounter.Config{
		EncounterRepo: mockRepo,
		ProgressRepo:  s.progressRepo,
		DiceService:   diceService,
		IDGenerator:   idgen.NewSequential("enc"),
		Roller:        s.roller,
		EventBus:      s.eventBus,
	})
	s.Require().NoError(err)

	s.roller.Push(1, 5, 2, 3, 4, 6)
	_, err = svc.StartEncounter(s.ctx, &encounter.StartEncounterInput{PlayerID: testutils.TestPlayerID})
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
}
