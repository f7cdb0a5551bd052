package encounters_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-casino/internal/entities"
	"github.com/KirkDiggler/rpg-casino/internal/errors"
	"github.com/KirkDiggler/rpg-casino/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-casino/internal/repositories/encounters"
	"github.com/KirkDiggler/rpg-casino/internal/testutils"
)

var testNow = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// RepositoryTestSuite runs the same behaviour checks against every
// implementation
type RepositoryTestSuite struct {
	suite.Suite
	newRepo func(s *RepositoryTestSuite) encounters.Repository

	ctx     context.Context
	clock   *clock.Fixed
	repo    encounters.Repository
	mr      *miniredis.Miniredis
	cleanup func()
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func(s *RepositoryTestSuite) encounters.Repository {
			client, mr, cleanup := testutils.CreateTestRedis(s.T())
			s.mr = mr
			s.cleanup = cleanup

			repo, err := encounters.NewRedisRepository(&encounters.Config{
				Client: client,
				Clock:  s.clock,
				TTL:    10 * time.Minute,
			})
			s.Require().NoError(err)
			return repo
		},
	})
}

func TestInMemoryRepositorySuite(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func(s *RepositoryTestSuite) encounters.Repository {
			return encounters.NewInMemory(s.clock)
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

func (s *RepositoryTestSuite) TestCreateAndGet() {
	encounter := testutils.CreateTestEncounter("enc_1")

	created, err := s.repo.Create(s.ctx, &encounters.CreateInput{Encounter: encounter})
	s.Require().NoError(err)
	s.Equal(testNow.Unix(), created.Encounter.CreatedAt)
	s.Equal(testNow.Unix(), created.Encounter.UpdatedAt)

	got, err := s.repo.Get(s.ctx, &encounters.GetInput{EncounterID: "enc_1"})
	s.Require().NoError(err)
	s.Equal(created.Encounter, got.Encounter)
	s.Equal(encounter.Engine, got.Encounter.Engine)
	s.Equal(entities.DiceMasterName, got.Encounter.Boss.Name)
}

func (s *RepositoryTestSuite) TestCreateDuplicate() {
	encounter := testutils.CreateTestEncounter("enc_1")

	_, err := s.repo.Create(s.ctx, &encounters.CreateInput{Encounter: encounter})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, &encounters.CreateInput{Encounter: encounter})
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))
}

func (s *RepositoryTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, &encounters.GetInput{EncounterID: "missing"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestUpdate() {
	encounter := testutils.CreateTestEncounter("enc_1")
	_, err := s.repo.Create(s.ctx, &encounters.CreateInput{Encounter: encounter})
	s.Require().NoError(err)

	s.clock.Advance(time.Minute)
	encounter.Boss.HP = 265
	encounter.LastPlayerTurn = &entities.TurnSummary{Score: 350, Damage: 35, Values: []int{1, 5, 2, 2, 2, 6}}

	updated, err := s.repo.Update(s.ctx, &encounters.UpdateInput{Encounter: encounter})
	s.Require().NoError(err)
	s.Equal(testNow.Add(time.Minute).Unix(), updated.Encounter.UpdatedAt)

	got, err := s.repo.Get(s.ctx, &encounters.GetInput{EncounterID: "enc_1"})
	s.Require().NoError(err)
	s.Equal(265, got.Encounter.Boss.HP)
	s.Equal(35, got.Encounter.LastPlayerTurn.Damage)
}

func (s *RepositoryTestSuite) TestUpdateNotFound() {
	_, err := s.repo.Update(s.ctx, &encounters.UpdateInput{
		Encounter: testutils.CreateTestEncounter("missing"),
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestReturnedEncounterIsACopy() {
	encounter := testutils.CreateTestEncounter("enc_1")
	_, err := s.repo.Create(s.ctx, &encounters.CreateInput{Encounter: encounter})
	s.Require().NoError(err)

	encounter.Boss.HP = 1

	got, err := s.repo.Get(s.ctx, &encounters.GetInput{EncounterID: "enc_1"})
	s.Require().NoError(err)
	got.Encounter.Player.HP = 1

	again, err := s.repo.Get(s.ctx, &encounters.GetInput{EncounterID: "enc_1"})
	s.Require().NoError(err)
	s.Equal(entities.DiceMasterHP, again.Encounter.Boss.HP)
	s.Equal(120, again.Encounter.Player.HP)
}

func (s *RepositoryTestSuite) TestDelete() {
	_, err := s.repo.Create(s.ctx, &encounters.CreateInput{Encounter: testutils.CreateTestEncounter("enc_1")})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, &encounters.DeleteInput{EncounterID: "enc_1"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, &encounters.GetInput{EncounterID: "enc_1"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, &encounters.DeleteInput{EncounterID: "enc_1"})
	s.True(errors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestValidation() {
	_, err := s.repo.Create(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, &encounters.CreateInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, &encounters.CreateInput{Encounter: &entities.Encounter{}})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, &encounters.GetInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Delete(s.ctx, &encounters.DeleteInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RepositoryTestSuite) TestRedisKeyAndTTL() {
	if s.mr == nil {
		s.T().Skip("redis only")
	}

	_, err := s.repo.Create(s.ctx, &encounters.CreateInput{Encounter: testutils.CreateTestEncounter("enc_1")})
	s.Require().NoError(err)

	s.True(s.mr.Exists("encounter:enc_1"))
	s.Equal(10*time.Minute, s.mr.TTL("encounter:enc_1"))

	s.mr.FastForward(11 * time.Minute)

	_, err = s.repo.Get(s.ctx, &encounters.GetInput{EncounterID: "enc_1"})
	s.True(errors.IsNotFound(err))
}

func TestNewRedisRepositoryValidation(t *testing.T) {
	_, err := encounters.NewRedisRepository(nil)
	require.Error(t, err)

	_, err = encounters.NewRedisRepository(&encounters.Config{})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "Client: is required")
}
