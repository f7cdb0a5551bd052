package dicesession_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-casino/internal/errors"
	"github.com/KirkDiggler/rpg-casino/internal/pkg/clock"
	dicesession "github.com/KirkDiggler/rpg-casino/internal/repositories/dice_session"
	"github.com/KirkDiggler/rpg-casino/internal/testutils"
)

var testNow = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

type RepositoryTestSuite struct {
	suite.Suite
	newRepo func(s *RepositoryTestSuite) dicesession.Repository

	ctx     context.Context
	clock   *clock.Fixed
	repo    dicesession.Repository
	mr      *miniredis.Miniredis
	cleanup func()
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func(s *RepositoryTestSuite) dicesession.Repository {
			client, mr, cleanup := testutils.CreateTestRedis(s.T())
			s.mr = mr
			s.cleanup = cleanup

			repo, err := dicesession.NewRedisRepository(&dicesession.Config{
				Client: client,
				Clock:  s.clock,
			})
			s.Require().NoError(err)
			return repo
		},
	})
}

func TestInMemoryRepositorySuite(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func(s *RepositoryTestSuite) dicesession.Repository {
			return dicesession.NewInMemory(s.clock)
		},
	})
}

func (s *RepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewFixed(testNow)
	s.mr = nil
	s.cleanup = func() {}
	s.repo = s.newRepo(s)
}

func (s *RepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func testRoll(id string, dice ...int32) dicesession.DiceRoll {
	var total int32
	for _, d := range dice {
		total += d
	}
	return dicesession.DiceRoll{
		RollID:      id,
		Notation:    "6d6",
		Dice:        dice,
		Total:       total,
		Description: "opening roll",
		DiceTotal:   total,
	}
}

func (s *RepositoryTestSuite) TestCreateGetUpdate() {
	created, err := s.repo.Create(s.ctx, dicesession.CreateInput{
		EntityID: "enc_1",
		Context:  "turn_1",
		Rolls:    []dicesession.DiceRoll{testRoll("roll_1", 1, 5, 2, 3, 4, 6)},
		TTL:      5 * time.Minute,
	})
	s.Require().NoError(err)
	s.Equal(testNow.Add(5*time.Minute), created.Session.ExpiresAt)

	got, err := s.repo.Get(s.ctx, dicesession.GetInput{EntityID: "enc_1", Context: "turn_1"})
	s.Require().NoError(err)
	s.Require().Len(got.Session.Rolls, 1)
	s.Equal([]int32{1, 5, 2, 3, 4, 6}, got.Session.Rolls[0].Dice)
	s.Equal(int32(21), got.Session.Rolls[0].Total)

	session := got.Session
	session.Rolls = append(session.Rolls, testRoll("roll_2", 2, 2, 2, 6))
	s.Require().NoError(s.repo.Update(s.ctx, session))

	got, err = s.repo.Get(s.ctx, dicesession.GetInput{EntityID: "enc_1", Context: "turn_1"})
	s.Require().NoError(err)
	s.Len(got.Session.Rolls, 2)
	s.Equal("roll_2", got.Session.Rolls[1].RollID)
}

func (s *RepositoryTestSuite) TestAppendCreatesThenExtends() {
	first := testRoll("roll_1", 1, 5, 2, 3, 4, 6)
	out, err := s.repo.Append(s.ctx, dicesession.AppendInput{
		EntityID: "enc_1",
		Context:  "turn_1",
		Roll:     &first,
		TTL:      5 * time.Minute,
	})
	s.Require().NoError(err)
	s.True(out.Created)
	s.Equal(testNow.Add(5*time.Minute), out.Session.ExpiresAt)

	s.clock.Advance(time.Minute)

	second := testRoll("roll_2", 5, 5)
	out, err = s.repo.Append(s.ctx, dicesession.AppendInput{
		EntityID: "enc_1",
		Context:  "turn_1",
		Roll:     &second,
		TTL:      time.Hour,
	})
	s.Require().NoError(err)
	s.False(out.Created)
	s.Equal(testNow.Add(5*time.Minute), out.Session.ExpiresAt)

	got, err := s.repo.Get(s.ctx, dicesession.GetInput{EntityID: "enc_1", Context: "turn_1"})
	s.Require().NoError(err)
	s.Require().Len(got.Session.Rolls, 2)
	s.Equal("roll_1", got.Session.Rolls[0].RollID)
	s.Equal([]int32{5, 5}, got.Session.Rolls[1].Dice)
}

func (s *RepositoryTestSuite) TestAppendAfterExpiryStartsOver() {
	roll := testRoll("roll_1", 1)
	_, err := s.repo.Append(s.ctx, dicesession.AppendInput{EntityID: "enc_1", Context: "turn_1", Roll: &roll, TTL: time.Minute})
	s.Require().NoError(err)

	s.clock.Advance(2 * time.Minute)

	out, err := s.repo.Append(s.ctx, dicesession.AppendInput{EntityID: "enc_1", Context: "turn_1", Roll: &roll})
	s.Require().NoError(err)
	s.True(out.Created)
	s.Len(out.Session.Rolls, 1)
	s.Equal(testNow.Add(2*time.Minute+dicesession.DefaultTTL), out.Session.ExpiresAt)
}

func (s *RepositoryTestSuite) TestUpdateMissingSession() {
	err := s.repo.Update(s.ctx, &dicesession.DiceSession{
		EntityID:  "enc_1",
		Context:   "turn_9",
		ExpiresAt: testNow.Add(time.Minute),
	})
	s.True(errors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestDefaultTTL() {
	created, err := s.repo.Create(s.ctx, dicesession.CreateInput{EntityID: "enc_1", Context: "turn_1"})
	s.Require().NoError(err)
	s.Equal(testNow.Add(dicesession.DefaultTTL), created.Session.ExpiresAt)
}

func (s *RepositoryTestSuite) TestExpiredSessionIsNotFound() {
	_, err := s.repo.Create(s.ctx, dicesession.CreateInput{
		EntityID: "enc_1",
		Context:  "turn_1",
		TTL:      time.Minute,
	})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, dicesession.GetInput{EntityID: "enc_1", Context: "turn_1"})
	s.Require().NoError(err)

	s.clock.Advance(2 * time.Minute)

	_, err = s.repo.Get(s.ctx, dicesession.GetInput{EntityID: "enc_1", Context: "turn_1"})
	s.True(errors.IsNotFound(err))

	err = s.repo.Update(s.ctx, got.Session)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RepositoryTestSuite) TestDeleteCountsRolls() {
	_, err := s.repo.Create(s.ctx, dicesession.CreateInput{
		EntityID: "enc_1",
		Context:  "turn_1",
		Rolls: []dicesession.DiceRoll{
			testRoll("roll_1", 1, 1, 1, 2, 3, 4),
			testRoll("roll_2", 2, 3, 4),
		},
	})
	s.Require().NoError(err)

	out, err := s.repo.Delete(s.ctx, dicesession.DeleteInput{EntityID: "enc_1", Context: "turn_1"})
	s.Require().NoError(err)
	s.Equal(int32(2), out.RollsDeleted)

	_, err = s.repo.Get(s.ctx, dicesession.GetInput{EntityID: "enc_1", Context: "turn_1"})
	s.True(errors.IsNotFound(err))

	out, err = s.repo.Delete(s.ctx, dicesession.DeleteInput{EntityID: "enc_1", Context: "turn_1"})
	s.Require().NoError(err)
	s.Equal(int32(0), out.RollsDeleted)
}

func (s *RepositoryTestSuite) TestContextsAreSeparate() {
	_, err := s.repo.Create(s.ctx, dicesession.CreateInput{
		EntityID: "enc_1",
		Context:  "turn_1",
		Rolls:    []dicesession.DiceRoll{testRoll("roll_1", 5)},
	})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, dicesession.GetInput{EntityID: "enc_1", Context: "turn_2"})
	s.True(errors.IsNotFound(err))
	_, err = s.repo.Get(s.ctx, dicesession.GetInput{EntityID: "enc_2", Context: "turn_1"})
	s.True(errors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestValidation() {
	testCases := []struct {
		name string
		call func() error
	}{
		{
			name: "create without entity",
			call: func() error {
				_, err := s.repo.Create(s.ctx, dicesession.CreateInput{Context: "turn_1"})
				return err
			},
		},
		{
			name: "create without context",
			call: func() error {
				_, err := s.repo.Create(s.ctx, dicesession.CreateInput{EntityID: "enc_1"})
				return err
			},
		},
		{
			name: "get without entity",
			call: func() error {
				_, err := s.repo.Get(s.ctx, dicesession.GetInput{Context: "turn_1"})
				return err
			},
		},
		{
			name: "delete without context",
			call: func() error {
				_, err := s.repo.Delete(s.ctx, dicesession.DeleteInput{EntityID: "enc_1"})
				return err
			},
		},
		{
			name: "append nil roll",
			call: func() error {
				_, err := s.repo.Append(s.ctx, dicesession.AppendInput{EntityID: "enc_1", Context: "turn_1"})
				return err
			},
		},
		{
			name: "append without context",
			call: func() error {
				roll := testRoll("roll_1", 1)
				_, err := s.repo.Append(s.ctx, dicesession.AppendInput{EntityID: "enc_1", Roll: &roll})
				return err
			},
		},
		{
			name: "update nil session",
			call: func() error {
				return s.repo.Update(s.ctx, nil)
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.call()
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *RepositoryTestSuite) TestRedisKeyLayout() {
	if s.mr == nil {
		s.T().Skip("redis only")
	}

	_, err := s.repo.Create(s.ctx, dicesession.CreateInput{
		EntityID: "enc_1",
		Context:  "turn_1",
		TTL:      time.Minute,
	})
	s.Require().NoError(err)

	s.True(s.mr.Exists("dice_session:enc_1:turn_1"))
	s.Equal(time.Minute, s.mr.TTL("dice_session:enc_1:turn_1"))
}

func (s *RepositoryTestSuite) TestRedisUpdateKeepsTTL() {
	if s.mr == nil {
		s.T().Skip("redis only")
	}

	created, err := s.repo.Create(s.ctx, dicesession.CreateInput{
		EntityID: "enc_1",
		Context:  "turn_1",
		TTL:      time.Minute,
	})
	s.Require().NoError(err)

	s.mr.FastForward(20 * time.Second)
	created.Session.Rolls = []dicesession.DiceRoll{testRoll("roll_1", 6)}
	s.Require().NoError(s.repo.Update(s.ctx, created.Session))
	s.Equal(40*time.Second, s.mr.TTL("dice_session:enc_1:turn_1"))

	s.mr.FastForward(time.Minute)
	err = s.repo.Update(s.ctx, created.Session)
	s.True(errors.IsNotFound(err))
	s.False(s.mr.Exists("dice_session:enc_1:turn_1"))
}
