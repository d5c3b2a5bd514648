package crewlist_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/breachside/crew-api/internal/entities/malifaux"
	"github.com/breachside/crew-api/internal/errors"
	mockclock "github.com/breachside/crew-api/internal/pkg/clock/mock"
	"github.com/breachside/crew-api/internal/redis"
	"github.com/breachside/crew-api/internal/repositories/crewlist"
	"github.com/breachside/crew-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	ctx     context.Context
	ctrl    *gomock.Controller
	client  redis.Client
	cleanup func()
	now     time.Time
	repo    crewlist.Repository
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.client, s.cleanup = testutils.CreateTestRedisClient(s.T())
	s.now = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

	mockClock := mockclock.NewMockClock(s.ctrl)
	mockClock.EXPECT().Now().DoAndReturn(func() time.Time {
		return s.now
	}).AnyTimes()

	repo, err := crewlist.NewRedis(&crewlist.RedisConfig{
		Client: s.client,
		Clock:  mockClock,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
	s.ctrl.Finish()
}

func (s *RedisRepositoryTestSuite) newSnapshot(id, playerID string) *malifaux.CrewSnapshot {
	return &malifaux.CrewSnapshot{
		ID:            id,
		PlayerID:      playerID,
		LeaderID:      "card_seamus",
		Budget:        50,
		RosterCardIDs: []string{"card_sybelle", "card_belle", "card_belle"},
		StrategyID:    "plant_explosives",
		SchemePoolIDs: []string{"breakthrough", "assassinate"},
	}
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	snapshot := s.newSnapshot("crew_1", "player_1")

	createOutput, err := s.repo.Create(s.ctx, crewlist.CreateInput{Snapshot: snapshot})
	s.Require().NoError(err)
	s.Equal(s.now.Unix(), createOutput.Snapshot.CreatedAt)
	s.Equal(s.now.Unix(), createOutput.Snapshot.UpdatedAt)

	getOutput, err := s.repo.Get(s.ctx, crewlist.GetInput{ID: "crew_1"})
	s.Require().NoError(err)
	s.Equal("crew_1", getOutput.Snapshot.ID)
	s.Equal("player_1", getOutput.Snapshot.PlayerID)
	s.Equal("card_seamus", getOutput.Snapshot.LeaderID)
	s.Equal([]string{"card_sybelle", "card_belle", "card_belle"}, getOutput.Snapshot.RosterCardIDs)
	s.Equal("plant_explosives", getOutput.Snapshot.StrategyID)
	s.Equal(s.now.Unix(), getOutput.Snapshot.CreatedAt)
}

func (s *RedisRepositoryTestSuite) TestCreateValidation() {
	_, err := s.repo.Create(s.ctx, crewlist.CreateInput{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, crewlist.CreateInput{Snapshot: &malifaux.CrewSnapshot{PlayerID: "player_1"}})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, crewlist.CreateInput{Snapshot: &malifaux.CrewSnapshot{ID: "crew_1"}})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestCreateDuplicate() {
	snapshot := s.newSnapshot("crew_1", "player_1")
	_, err := s.repo.Create(s.ctx, crewlist.CreateInput{Snapshot: snapshot})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, crewlist.CreateInput{Snapshot: s.newSnapshot("crew_1", "player_2")})
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))
}

func (s *RedisRepositoryTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, crewlist.GetInput{ID: "crew_missing"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Get(s.ctx, crewlist.GetInput{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestUpdatePreservesCreatedAt() {
	snapshot := s.newSnapshot("crew_1", "player_1")
	_, err := s.repo.Create(s.ctx, crewlist.CreateInput{Snapshot: snapshot})
	s.Require().NoError(err)
	createdAt := s.now.Unix()

	s.now = s.now.Add(time.Hour)

	updated := s.newSnapshot("crew_1", "player_1")
	updated.RosterCardIDs = []string{"card_sybelle"}
	updateOutput, err := s.repo.Update(s.ctx, crewlist.UpdateInput{Snapshot: updated})
	s.Require().NoError(err)
	s.Equal(createdAt, updateOutput.Snapshot.CreatedAt)
	s.Equal(s.now.Unix(), updateOutput.Snapshot.UpdatedAt)

	getOutput, err := s.repo.Get(s.ctx, crewlist.GetInput{ID: "crew_1"})
	s.Require().NoError(err)
	s.Equal([]string{"card_sybelle"}, getOutput.Snapshot.RosterCardIDs)
	s.Equal(createdAt, getOutput.Snapshot.CreatedAt)
}

func (s *RedisRepositoryTestSuite) TestUpdateNotFound() {
	_, err := s.repo.Update(s.ctx, crewlist.UpdateInput{Snapshot: s.newSnapshot("crew_ghost", "player_1")})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestUpdateMovesPlayerIndex() {
	snapshot := s.newSnapshot("crew_1", "player_1")
	_, err := s.repo.Create(s.ctx, crewlist.CreateInput{Snapshot: snapshot})
	s.Require().NoError(err)

	moved := s.newSnapshot("crew_1", "player_2")
	_, err = s.repo.Update(s.ctx, crewlist.UpdateInput{Snapshot: moved})
	s.Require().NoError(err)

	oldList, err := s.repo.ListByPlayer(s.ctx, crewlist.ListByPlayerInput{PlayerID: "player_1"})
	s.Require().NoError(err)
	s.Empty(oldList.Snapshots)

	newList, err := s.repo.ListByPlayer(s.ctx, crewlist.ListByPlayerInput{PlayerID: "player_2"})
	s.Require().NoError(err)
	s.Require().Len(newList.Snapshots, 1)
	s.Equal("crew_1", newList.Snapshots[0].ID)
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	snapshot := s.newSnapshot("crew_1", "player_1")
	_, err := s.repo.Create(s.ctx, crewlist.CreateInput{Snapshot: snapshot})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, crewlist.DeleteInput{ID: "crew_1"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, crewlist.GetInput{ID: "crew_1"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))

	list, err := s.repo.ListByPlayer(s.ctx, crewlist.ListByPlayerInput{PlayerID: "player_1"})
	s.Require().NoError(err)
	s.Empty(list.Snapshots)
}

func (s *RedisRepositoryTestSuite) TestDeleteNotFound() {
	_, err := s.repo.Delete(s.ctx, crewlist.DeleteInput{ID: "crew_ghost"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestListByPlayerSortsNewestFirst() {
	_, err := s.repo.Create(s.ctx, crewlist.CreateInput{Snapshot: s.newSnapshot("crew_old", "player_1")})
	s.Require().NoError(err)

	s.now = s.now.Add(time.Hour)
	_, err = s.repo.Create(s.ctx, crewlist.CreateInput{Snapshot: s.newSnapshot("crew_new", "player_1")})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, crewlist.CreateInput{Snapshot: s.newSnapshot("crew_other", "player_2")})
	s.Require().NoError(err)

	list, err := s.repo.ListByPlayer(s.ctx, crewlist.ListByPlayerInput{PlayerID: "player_1"})
	s.Require().NoError(err)
	s.Require().Len(list.Snapshots, 2)
	s.Equal("crew_new", list.Snapshots[0].ID)
	s.Equal("crew_old", list.Snapshots[1].ID)
}

func (s *RedisRepositoryTestSuite) TestListByPlayerEmpty() {
	list, err := s.repo.ListByPlayer(s.ctx, crewlist.ListByPlayerInput{PlayerID: "player_unknown"})
	s.Require().NoError(err)
	s.Empty(list.Snapshots)

	_, err = s.repo.ListByPlayer(s.ctx, crewlist.ListByPlayerInput{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestListByPlayerCleansStaleIndexEntries() {
	_, err := s.repo.Create(s.ctx, crewlist.CreateInput{Snapshot: s.newSnapshot("crew_1", "player_1")})
	s.Require().NoError(err)
	_, err = s.repo.Create(s.ctx, crewlist.CreateInput{Snapshot: s.newSnapshot("crew_2", "player_1")})
	s.Require().NoError(err)

	// Simulate a crew key expiring out from under the index
	s.Require().NoError(s.client.Del(s.ctx, "crew:crew_1").Err())

	list, err := s.repo.ListByPlayer(s.ctx, crewlist.ListByPlayerInput{PlayerID: "player_1"})
	s.Require().NoError(err)
	s.Require().Len(list.Snapshots, 1)
	s.Equal("crew_2", list.Snapshots[0].ID)

	members, err := s.client.SMembers(s.ctx, "crew:player:player_1").Result()
	s.Require().NoError(err)
	s.Equal([]string{"crew_2"}, members)
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
