package v1alpha1_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	casinov1alpha1 "github.com/KirkDiggler/rpg-casino/internal/api/casino/v1alpha1"
	"github.com/KirkDiggler/rpg-casino/internal/engine/diceboss"
	"github.com/KirkDiggler/rpg-casino/internal/entities"
	"github.com/KirkDiggler/rpg-casino/internal/errors"
	"github.com/KirkDiggler/rpg-casino/internal/handlers/casino/v1alpha1"
	"github.com/KirkDiggler/rpg-casino/internal/orchestrators/encounter"
	encountermock "github.com/KirkDiggler/rpg-casino/internal/orchestrators/encounter/mock"
	"github.com/KirkDiggler/rpg-casino/internal/testutils"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockEncounter *encountermock.MockService
	handler       *v1alpha1.Handler
	ctx           context.Context
	testEncounter *entities.Encounter
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockEncounter = encountermock.NewMockService(s.ctrl)
	s.ctx = context.Background()
	s.testEncounter = testutils.CreateTestEncounter("enc_1")

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		EncounterService: s.mockEncounter,
	})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) TestNewHandlerRequiresService() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.True(errors.IsInvalidArgument(err))

	_, err = v1alpha1.NewHandler(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestStartEncounter() {
	s.mockEncounter.EXPECT().
		StartEncounter(s.ctx, &encounter.StartEncounterInput{
			PlayerID:   testutils.TestPlayerID,
			PlayerName: testutils.TestPlayerName,
		}).
		Return(&encounter.StartEncounterOutput{
			Encounter: s.testEncounter,
			Opening: &diceboss.RollOutcome{
				Values: [diceboss.DiceCount]int{1, 5, 2, 3, 4, 6},
				Rolled: []int{0, 1, 2, 3, 4, 5},
			},
		}, nil)

	resp, err := s.handler.StartEncounter(s.ctx, &casinov1alpha1.StartEncounterRequest{
		PlayerId:   testutils.TestPlayerID,
		PlayerName: testutils.TestPlayerName,
	})
	s.Require().NoError(err)

	enc := resp.Encounter
	s.Equal("enc_1", enc.GetId())
	s.Equal("active", enc.Status)
	s.Equal(int32(120), enc.Player.GetHp())
	s.Equal(int32(100), enc.Player.Shield)
	s.Equal("boss", enc.Boss.Kind)
	s.Equal(int32(entities.DiceMasterHP), enc.Boss.GetHp())
	s.Equal(int32(11), enc.GetStats().GetAttack())
	s.Equal(int32(10), enc.GetStats().GetDefense())
	s.Equal(int32(12), enc.Stats.HitPoints)
	s.Equal("awaiting_selection", enc.Pool.Phase)
	s.Require().Len(enc.Pool.Dice, diceboss.DiceCount)
	s.Equal(int32(5), enc.Pool.Dice[1].Value)
	s.Equal([]int32{1, 5, 2, 3, 4, 6}, resp.Opening.Values)
	s.Len(resp.Opening.Rolled, 6)
}

func (s *HandlerTestSuite) TestStartEncounterRequiresPlayer() {
	_, err := s.handler.StartEncounter(s.ctx, &casinov1alpha1.StartEncounterRequest{})
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestRequestsRequireEncounterID() {
	_, err := s.handler.GetEncounter(s.ctx, &casinov1alpha1.GetEncounterRequest{})
	s.Equal(codes.InvalidArgument, status.Code(err))

	_, err = s.handler.ToggleDie(s.ctx, &casinov1alpha1.ToggleDieRequest{})
	s.Equal(codes.InvalidArgument, status.Code(err))

	_, err = s.handler.RollMore(s.ctx, &casinov1alpha1.RollMoreRequest{})
	s.Equal(codes.InvalidArgument, status.Code(err))

	_, err = s.handler.Pass(s.ctx, &casinov1alpha1.PassRequest{})
	s.Equal(codes.InvalidArgument, status.Code(err))

	_, err = s.handler.BossTurn(s.ctx, &casinov1alpha1.BossTurnRequest{})
	s.Equal(codes.InvalidArgument, status.Code(err))

	_, err = s.handler.ListBeatenBosses(s.ctx, &casinov1alpha1.ListBeatenBossesRequest{})
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestToggleDie() {
	held := s.testEncounter.Clone()
	held.Engine.Dice[0].Held = true
	held.Engine.SelectionScore = 100

	s.mockEncounter.EXPECT().
		ToggleDie(s.ctx, &encounter.ToggleDieInput{EncounterID: "enc_1", DieID: 0}).
		Return(&encounter.ToggleDieOutput{Encounter: held, Changed: true}, nil)

	resp, err := s.handler.ToggleDie(s.ctx, &casinov1alpha1.ToggleDieRequest{EncounterId: "enc_1", DieId: 0})
	s.Require().NoError(err)
	s.True(resp.Changed)
	s.True(resp.Encounter.Pool.Dice[0].Held)
	s.Equal(int32(100), resp.Encounter.Pool.SelectionScore)
}

func (s *HandlerTestSuite) TestPassRejectionIsReported() {
	s.mockEncounter.EXPECT().
		Pass(s.ctx, &encounter.PassInput{EncounterID: "enc_1"}).
		Return(nil, errors.FailedPrecondition("select scoring dice from this roll before passing").
			WithMeta(diceboss.MetaReason, string(diceboss.ReasonUnclaimedDice)))
	s.mockEncounter.EXPECT().
		GetEncounter(s.ctx, &encounter.GetEncounterInput{EncounterID: "enc_1"}).
		Return(&encounter.GetEncounterOutput{Encounter: s.testEncounter}, nil)

	resp, err := s.handler.Pass(s.ctx, &casinov1alpha1.PassRequest{EncounterId: "enc_1"})
	s.Require().NoError(err)
	s.Require().NotNil(resp.Rejection)
	s.Equal("unclaimed_dice", resp.Rejection.Reason)
	s.Equal("select scoring dice from this roll before passing", resp.Rejection.Message)
	s.Equal("enc_1", resp.Encounter.GetId())
	s.Nil(resp.Turn)
}

func (s *HandlerTestSuite) TestFinishedEncounterIsAnError() {
	s.mockEncounter.EXPECT().
		RollMore(s.ctx, gomock.Any()).
		Return(nil, errors.FailedPrecondition("encounter already ended in victory"))

	_, err := s.handler.RollMore(s.ctx, &casinov1alpha1.RollMoreRequest{EncounterId: "enc_1"})
	s.Equal(codes.FailedPrecondition, status.Code(err))
}

func (s *HandlerTestSuite) TestBusyEncounterIsAborted() {
	s.mockEncounter.EXPECT().
		BossTurn(s.ctx, gomock.Any()).
		Return(nil, errors.Aborted("encounter is busy"))

	_, err := s.handler.BossTurn(s.ctx, &casinov1alpha1.BossTurnRequest{EncounterId: "enc_1"})
	s.Equal(codes.Aborted, status.Code(err))
}

func (s *HandlerTestSuite) TestRollMoreBust() {
	busted := s.testEncounter.Clone()
	busted.Engine.Phase = diceboss.PhaseTurnEnded
	busted.LastPlayerTurn = &entities.TurnSummary{Busted: true, Values: []int{1, 2, 3, 4, 6, 2}}

	s.mockEncounter.EXPECT().
		RollMore(s.ctx, &encounter.RollMoreInput{EncounterID: "enc_1"}).
		Return(&encounter.RollMoreOutput{
			Encounter: busted,
			Outcome: &diceboss.RollOutcome{
				Values:    [diceboss.DiceCount]int{1, 2, 3, 4, 6, 2},
				Rolled:    []int{1, 2, 3, 4, 5},
				Busted:    true,
				TurnEnded: true,
			},
			Turn: busted.LastPlayerTurn,
		}, nil)

	resp, err := s.handler.RollMore(s.ctx, &casinov1alpha1.RollMoreRequest{EncounterId: "enc_1"})
	s.Require().NoError(err)
	s.Nil(resp.Rejection)
	s.True(resp.Outcome.Busted)
	s.True(resp.Turn.Busted)
	s.Equal([]int32{1, 2, 3, 4, 6, 2}, resp.Encounter.LastPlayerTurn.Values)
}

func (s *HandlerTestSuite) TestBossTurn() {
	next := s.testEncounter.Clone()
	next.Turn = 2
	next.LastBossTurn = &entities.TurnSummary{Score: 50, Damage: 5, Values: []int{5, 2, 3, 4, 6, 6}}

	s.mockEncounter.EXPECT().
		BossTurn(s.ctx, &encounter.BossTurnInput{EncounterID: "enc_1"}).
		Return(&encounter.BossTurnOutput{
			Encounter:   next,
			Turn:        next.LastBossTurn,
			NextOpening: &diceboss.RollOutcome{Values: [diceboss.DiceCount]int{1, 5, 2, 3, 4, 6}},
		}, nil)

	resp, err := s.handler.BossTurn(s.ctx, &casinov1alpha1.BossTurnRequest{EncounterId: "enc_1"})
	s.Require().NoError(err)
	s.Equal(int32(50), resp.Turn.Score)
	s.Equal(int32(5), resp.Turn.Damage)
	s.Equal(int32(2), resp.Encounter.Turn)
	s.NotNil(resp.NextOpening)
}

func (s *HandlerTestSuite) TestGetEncounterNotFound() {
	s.mockEncounter.EXPECT().
		GetEncounter(s.ctx, gomock.Any()).
		Return(nil, errors.NotFound("encounter not found"))

	_, err := s.handler.GetEncounter(s.ctx, &casinov1alpha1.GetEncounterRequest{EncounterId: "enc_missing"})
	s.Equal(codes.NotFound, status.Code(err))
}

func (s *HandlerTestSuite) TestListBeatenBosses() {
	s.mockEncounter.EXPECT().
		ListBeatenBosses(s.ctx, &encounter.ListBeatenBossesInput{PlayerID: testutils.TestPlayerID}).
		Return(&encounter.ListBeatenBossesOutput{BossIDs: []string{entities.DiceMasterID}}, nil)

	resp, err := s.handler.ListBeatenBosses(s.ctx, &casinov1alpha1.ListBeatenBossesRequest{
		PlayerId: testutils.TestPlayerID,
	})
	s.Require().NoError(err)
	s.Equal([]string{"dice_master"}, resp.GetBossIds())
}
