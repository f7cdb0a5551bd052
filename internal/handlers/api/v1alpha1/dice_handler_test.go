package v1alpha1_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	apiv1alpha1 "github.com/KirkDiggler/rpg-api-protos/gen/go/clients/api/v1alpha1"
	"github.com/KirkDiggler/rpg-casino/internal/errors"
	"github.com/KirkDiggler/rpg-casino/internal/handlers/api/v1alpha1"
	"github.com/KirkDiggler/rpg-casino/internal/orchestrators/dice"
	dicemock "github.com/KirkDiggler/rpg-casino/internal/orchestrators/dice/mock"
	dicesession "github.com/KirkDiggler/rpg-casino/internal/repositories/dice_session"
)

type DiceHandlerTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockDice *dicemock.MockService
	handler  *v1alpha1.DiceHandler
	ctx      context.Context
}

func TestDiceHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DiceHandlerTestSuite))
}

func (s *DiceHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockDice = dicemock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewDiceHandler(&v1alpha1.DiceHandlerConfig{
		DiceService: s.mockDice,
	})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *DiceHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DiceHandlerTestSuite) TestNewDiceHandlerRequiresService() {
	_, err := v1alpha1.NewDiceHandler(&v1alpha1.DiceHandlerConfig{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "DiceService")

	_, err = v1alpha1.NewDiceHandler(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *DiceHandlerTestSuite) TestRollDice_Success() {
	roll := &dicesession.DiceRoll{
		RollID:      "roll_abc",
		Notation:    "4d6dl1",
		Dice:        []int32{6, 5, 4},
		Total:       15,
		Dropped:     []int32{2},
		Description: "Attack",
		DiceTotal:   15,
	}
	session := &dicesession.DiceSession{
		EntityID:  "enc_1",
		Context:   "character_stats",
		Rolls:     []dicesession.DiceRoll{*roll},
		ExpiresAt: time.Now().Add(15 * time.Minute),
		CreatedAt: time.Now(),
	}

	s.mockDice.EXPECT().
		RollDice(s.ctx, &dice.RollDiceInput{
			EntityID:    "enc_1",
			Context:     "character_stats",
			Notation:    "4d6dl1",
			Description: "Attack",
		}).
		Return(&dice.RollDiceOutput{Roll: roll, Session: session}, nil)

	resp, err := s.handler.RollDice(s.ctx, &apiv1alpha1.RollDiceRequest{
		EntityId:            "enc_1",
		Context:             "character_stats",
		Notation:            "4d6dl1",
		ModifierDescription: "Attack",
	})
	s.Require().NoError(err)
	s.Require().Len(resp.Rolls, 1)

	got := resp.Rolls[0]
	s.Equal("roll_abc", got.RollId)
	s.Equal("4d6dl1", got.Notation)
	s.Equal([]int32{6, 5, 4}, got.Dice)
	s.Equal(int32(15), got.Total)
	s.Equal([]int32{2}, got.Dropped)
	s.Equal("Attack", got.Description)
	s.Equal(session.ExpiresAt.Unix(), resp.ExpiresAt)
}

func (s *DiceHandlerTestSuite) TestRollDice_ValidationErrors() {
	testCases := []struct {
		name   string
		req    *apiv1alpha1.RollDiceRequest
		errMsg string
	}{
		{
			name:   "missing entity_id",
			req:    &apiv1alpha1.RollDiceRequest{Context: "turn_1", Notation: "6d6"},
			errMsg: "entity_id is required",
		},
		{
			name:   "missing context",
			req:    &apiv1alpha1.RollDiceRequest{EntityId: "enc_1", Notation: "6d6"},
			errMsg: "context is required",
		},
		{
			name:   "missing notation",
			req:    &apiv1alpha1.RollDiceRequest{EntityId: "enc_1", Context: "turn_1"},
			errMsg: "notation is required",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			resp, err := s.handler.RollDice(s.ctx, tc.req)
			s.Require().Error(err)
			s.Nil(resp)

			st, ok := status.FromError(err)
			s.Require().True(ok)
			s.Equal(codes.InvalidArgument, st.Code())
			s.Contains(st.Message(), tc.errMsg)
		})
	}
}

func (s *DiceHandlerTestSuite) TestRollDice_BadNotation() {
	s.mockDice.EXPECT().
		RollDice(s.ctx, gomock.Any()).
		Return(nil, errors.InvalidArgument("invalid dice notation: 6x6"))

	_, err := s.handler.RollDice(s.ctx, &apiv1alpha1.RollDiceRequest{
		EntityId: "enc_1",
		Context:  "turn_1",
		Notation: "6x6",
	})
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *DiceHandlerTestSuite) TestGetRollSession_EncounterHistory() {
	session := &dicesession.DiceSession{
		EntityID: "enc_1",
		Context:  "turn_1",
		Rolls: []dicesession.DiceRoll{
			{RollID: "roll_1", Notation: "6d6", Dice: []int32{1, 5, 2, 3, 4, 6}, Total: 21, DiceTotal: 21, Description: "opening roll"},
			{RollID: "roll_2", Notation: "6d6", Dice: []int32{5, 2, 3, 4, 6, 6}, Total: 26, DiceTotal: 26, Description: "boss roll"},
		},
		ExpiresAt: time.Now().Add(10 * time.Minute),
		CreatedAt: time.Now().Add(-5 * time.Minute),
	}

	s.mockDice.EXPECT().
		GetRollSession(s.ctx, &dice.GetRollSessionInput{EntityID: "enc_1", Context: "turn_1"}).
		Return(&dice.GetRollSessionOutput{Session: session}, nil)

	resp, err := s.handler.GetRollSession(s.ctx, &apiv1alpha1.GetRollSessionRequest{
		EntityId: "enc_1",
		Context:  "turn_1",
	})
	s.Require().NoError(err)
	s.Require().Len(resp.Rolls, 2)
	s.Equal("opening roll", resp.Rolls[0].Description)
	s.Equal("boss roll", resp.Rolls[1].Description)
	s.Equal(session.CreatedAt.Unix(), resp.CreatedAt)
}

func (s *DiceHandlerTestSuite) TestGetRollSession_NotFound() {
	s.mockDice.EXPECT().
		GetRollSession(s.ctx, gomock.Any()).
		Return(nil, errors.NotFound("session not found"))

	resp, err := s.handler.GetRollSession(s.ctx, &apiv1alpha1.GetRollSessionRequest{
		EntityId: "enc_1",
		Context:  "turn_9",
	})
	s.Require().Error(err)
	s.Nil(resp)
	s.Equal(codes.NotFound, status.Code(err))
}

func (s *DiceHandlerTestSuite) TestClearRollSession_Success() {
	s.mockDice.EXPECT().
		ClearRollSession(s.ctx, &dice.ClearRollSessionInput{EntityID: "enc_1", Context: "turn_1"}).
		Return(&dice.ClearRollSessionOutput{RollsDeleted: 3}, nil)

	resp, err := s.handler.ClearRollSession(s.ctx, &apiv1alpha1.ClearRollSessionRequest{
		EntityId: "enc_1",
		Context:  "turn_1",
	})
	s.Require().NoError(err)
	s.Equal("Roll session cleared successfully", resp.Message)
	s.Equal(int32(3), resp.RollsCleared)
}

func (s *DiceHandlerTestSuite) TestClearRollSession_ValidationErrors() {
	testCases := []struct {
		name   string
		req    *apiv1alpha1.ClearRollSessionRequest
		errMsg string
	}{
		{
			name:   "missing entity_id",
			req:    &apiv1alpha1.ClearRollSessionRequest{Context: "turn_1"},
			errMsg: "entity_id is required",
		},
		{
			name:   "missing context",
			req:    &apiv1alpha1.ClearRollSessionRequest{EntityId: "enc_1"},
			errMsg: "context is required",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			resp, err := s.handler.ClearRollSession(s.ctx, tc.req)
			s.Require().Error(err)
			s.Nil(resp)

			st, ok := status.FromError(err)
			s.Require().True(ok)
			s.Equal(codes.InvalidArgument, st.Code())
			s.Contains(st.Message(), tc.errMsg)
		})
	}
}
