package dice_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-casino/internal/errors"
	"github.com/KirkDiggler/rpg-casino/internal/orchestrators/dice"
	"github.com/KirkDiggler/rpg-casino/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-casino/internal/pkg/roller"
	dicesession "github.com/KirkDiggler/rpg-casino/internal/repositories/dice_session"
	dicesessionmock "github.com/KirkDiggler/rpg-casino/internal/repositories/dice_session/mock"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *dicesessionmock.MockRepository
	roller   *roller.Scripted
	orch     dice.Service
	ctx      context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = dicesessionmock.NewMockRepository(s.ctrl)
	s.roller = roller.NewScripted()
	s.ctx = context.Background()

	orch, err := dice.NewOrchestrator(&dice.Config{
		DiceSessionRepo: s.mockRepo,
		IDGenerator:     idgen.NewSequential("roll"),
		Roller:          s.roller,
	})
	s.Require().NoError(err)
	s.orch = orch
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) expectNoSession(entityID, rollContext string) {
	s.mockRepo.EXPECT().
		Get(s.ctx, dicesession.GetInput{EntityID: entityID, Context: rollContext}).
		Return(nil, errors.NotFound("dice session not found"))
}

func echoAppend(_ context.Context, input dicesession.AppendInput) (*dicesession.AppendOutput, error) {
	return &dicesession.AppendOutput{
		Session: &dicesession.DiceSession{
			EntityID: input.EntityID,
			Context:  input.Context,
			Rolls:    []dicesession.DiceRoll{*input.Roll},
		},
		Created: true,
	}, nil
}

func echoCreate(_ context.Context, input dicesession.CreateInput) (*dicesession.CreateOutput, error) {
	return &dicesession.CreateOutput{
		Session: &dicesession.DiceSession{
			EntityID: input.EntityID,
			Context:  input.Context,
			Rolls:    input.Rolls,
		},
	}, nil
}

func (s *OrchestratorTestSuite) TestNewOrchestratorValidation() {
	_, err := dice.NewOrchestrator(&dice.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "DiceSessionRepo: is required")
	s.Contains(err.Error(), "Roller: is required")

	_, err = dice.NewOrchestrator(nil)
	s.Error(err)
}

func (s *OrchestratorTestSuite) TestRollDiceCreatesSession() {
	s.roller.Push(3, 5)
	s.mockRepo.EXPECT().
		Append(s.ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, input dicesession.AppendInput) (*dicesession.AppendOutput, error) {
			s.Equal(dice.DefaultSessionTTL, input.TTL)
			s.Equal("damage", input.Context)
			return echoAppend(ctx, input)
		})

	out, err := s.orch.RollDice(s.ctx, &dice.RollDiceInput{
		EntityID: "enc_1",
		Context:  "damage",
		Notation: "2d6",
	})
	s.Require().NoError(err)
	s.Equal("roll_1", out.Roll.RollID)
	s.Equal([]int32{3, 5}, out.Roll.Dice)
	s.Equal(int32(8), out.Roll.Total)
	s.Empty(out.Roll.Dropped)
	s.Len(out.Session.Rolls, 1)
}

func (s *OrchestratorTestSuite) TestRollDiceAppendsToSession() {
	s.roller.Push(6)
	existing := &dicesession.DiceSession{
		EntityID:  "enc_1",
		Context:   "damage",
		Rolls:     []dicesession.DiceRoll{{RollID: "roll_0", Notation: "1d6", Dice: []int32{2}, Total: 2}},
		ExpiresAt: time.Now().Add(time.Minute),
	}
	s.mockRepo.EXPECT().
		Append(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input dicesession.AppendInput) (*dicesession.AppendOutput, error) {
			s.Equal("enc_1", input.EntityID)
			existing.Rolls = append(existing.Rolls, *input.Roll)
			return &dicesession.AppendOutput{Session: existing}, nil
		})

	out, err := s.orch.RollDice(s.ctx, &dice.RollDiceInput{
		EntityID: "enc_1",
		Context:  "damage",
		Notation: "1d6",
	})
	s.Require().NoError(err)
	s.Equal(int32(6), out.Roll.Total)
	s.Len(out.Session.Rolls, 2)
}

func (s *OrchestratorTestSuite) TestRollDiceDropLowest() {
	s.roller.Push(3, 1, 4, 1)
	s.mockRepo.EXPECT().Append(s.ctx, gomock.Any()).DoAndReturn(echoAppend)

	out, err := s.orch.RollDice(s.ctx, &dice.RollDiceInput{
		EntityID: "enc_1",
		Context:  "stats",
		Notation: "4d6dl1",
	})
	s.Require().NoError(err)
	s.Equal([]int32{3, 4, 1}, out.Roll.Dice)
	s.Equal([]int32{1}, out.Roll.Dropped)
	s.Equal(int32(8), out.Roll.Total)
}

func (s *OrchestratorTestSuite) TestRollDiceInvalidNotation() {
	testCases := []string{"d6", "2x6", "0d6", "2d0", "101d6", "2d6dl2", "abc"}

	for _, notation := range testCases {
		s.Run(notation, func() {
			_, err := s.orch.RollDice(s.ctx, &dice.RollDiceInput{
				EntityID: "enc_1",
				Context:  "damage",
				Notation: notation,
			})
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *OrchestratorTestSuite) TestRollDiceRequiredFields() {
	_, err := s.orch.RollDice(s.ctx, &dice.RollDiceInput{Context: "c", Notation: "1d6"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orch.RollDice(s.ctx, &dice.RollDiceInput{EntityID: "e", Notation: "1d6"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orch.RollDice(s.ctx, &dice.RollDiceInput{EntityID: "e", Context: "c"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestRollDiceRepositoryFailure() {
	s.roller.Push(4)
	s.mockRepo.EXPECT().
		Append(s.ctx, gomock.Any()).
		Return(nil, errors.Unavailable("redis down"))

	_, err := s.orch.RollDice(s.ctx, &dice.RollDiceInput{
		EntityID: "enc_1",
		Context:  "damage",
		Notation: "1d6",
	})
	s.Require().Error(err)
	s.Equal(errors.CodeUnavailable, errors.GetCode(err))
}

func (s *OrchestratorTestSuite) TestRollCharacterStats() {
	s.roller.Push(
		6, 5, 1, 4, // attack 15
		2, 2, 3, 3, // defense 8
		6, 6, 6, 6, // hit points 18
	)
	s.mockRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, input dicesession.CreateInput) (*dicesession.CreateOutput, error) {
			s.Equal(dice.ContextCharacterStats, input.Context)
			s.Len(input.Rolls, 3)
			return echoCreate(ctx, input)
		})

	out, err := s.orch.RollCharacterStats(s.ctx, &dice.RollCharacterStatsInput{EntityID: "player_1"})
	s.Require().NoError(err)
	s.Equal(15, out.Stats.Attack)
	s.Equal(8, out.Stats.Defense)
	s.Equal(18, out.Stats.HitPoints)
	s.Equal("Attack", out.Rolls[0].Description)
	s.Equal([]int32{1}, out.Rolls[0].Dropped)
	s.Equal(dice.CharacterStatNotation, out.Rolls[2].Notation)
}

func (s *OrchestratorTestSuite) TestRollCharacterStatsRollerFailure() {
	s.roller.Push(6, 5)

	_, err := s.orch.RollCharacterStats(s.ctx, &dice.RollCharacterStatsInput{EntityID: "player_1"})
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
}

func (s *OrchestratorTestSuite) TestRecordRoll() {
	s.mockRepo.EXPECT().Append(s.ctx, gomock.Any()).DoAndReturn(echoAppend)

	out, err := s.orch.RecordRoll(s.ctx, &dice.RecordRollInput{
		EntityID:    "enc_1",
		Context:     "turn_1",
		Dice:        []int{1, 5, 2, 3, 4, 6},
		Description: "opening roll",
	})
	s.Require().NoError(err)
	s.Equal("6d6", out.Roll.Notation)
	s.Equal([]int32{1, 5, 2, 3, 4, 6}, out.Roll.Dice)
	s.Equal(int32(21), out.Roll.Total)
	s.Equal("opening roll", out.Roll.Description)
	s.Equal(0, s.roller.Remaining())
}

func (s *OrchestratorTestSuite) TestRecordRollValidation() {
	_, err := s.orch.RecordRoll(s.ctx, &dice.RecordRollInput{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "dice: is required")
	s.Contains(err.Error(), "entity_id: is required")
}

func (s *OrchestratorTestSuite) TestGetRollSession() {
	session := &dicesession.DiceSession{EntityID: "enc_1", Context: "turn_1"}
	s.mockRepo.EXPECT().
		Get(s.ctx, dicesession.GetInput{EntityID: "enc_1", Context: "turn_1"}).
		Return(&dicesession.GetOutput{Session: session}, nil)

	out, err := s.orch.GetRollSession(s.ctx, &dice.GetRollSessionInput{EntityID: "enc_1", Context: "turn_1"})
	s.Require().NoError(err)
	s.Same(session, out.Session)
}

func (s *OrchestratorTestSuite) TestGetRollSessionNotFound() {
	s.expectNoSession("enc_1", "turn_9")

	_, err := s.orch.GetRollSession(s.ctx, &dice.GetRollSessionInput{EntityID: "enc_1", Context: "turn_9"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestClearRollSession() {
	s.mockRepo.EXPECT().
		Delete(s.ctx, dicesession.DeleteInput{EntityID: "enc_1", Context: "turn_1"}).
		Return(&dicesession.DeleteOutput{RollsDeleted: 3}, nil)

	out, err := s.orch.ClearRollSession(s.ctx, &dice.ClearRollSessionInput{EntityID: "enc_1", Context: "turn_1"})
	s.Require().NoError(err)
	s.Equal(int32(3), out.RollsDeleted)
}

// TestWithInMemoryRepository runs a full history cycle against a real store
func TestWithInMemoryRepository(t *testing.T) {
	ctx := context.Background()
	orch, err := dice.NewOrchestrator(&dice.Config{
		DiceSessionRepo: dicesession.NewInMemory(nil),
		IDGenerator:     idgen.NewSequential("roll"),
		Roller:          roller.NewSeeded(1),
	})
	require.NoError(t, err)

	for range 3 {
		_, err := orch.RollDice(ctx, &dice.RollDiceInput{EntityID: "enc_1", Context: "turn_1", Notation: "6d6"})
		require.NoError(t, err)
	}

	out, err := orch.GetRollSession(ctx, &dice.GetRollSessionInput{EntityID: "enc_1", Context: "turn_1"})
	require.NoError(t, err)
	assert.Len(t, out.Session.Rolls, 3)

	cleared, err := orch.ClearRollSession(ctx, &dice.ClearRollSessionInput{EntityID: "enc_1", Context: "turn_1"})
	require.NoError(t, err)
	assert.Equal(t, int32(3), cleared.RollsDeleted)
}
