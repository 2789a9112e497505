package savegame_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-wilds/internal/errors"
	"github.com/KirkDiggler/rpg-wilds/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-wilds/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-wilds/internal/redis"
	"github.com/KirkDiggler/rpg-wilds/internal/repositories/savegame"
	"github.com/KirkDiggler/rpg-wilds/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	repositoryContract
	client redis.Client
	server *miniredis.Miniredis
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.client, s.server = testutils.NewTestRedis(s.T())
	s.clock = clock.NewFixed(testStart)

	repo, err := savegame.NewRedis(&savegame.RedisConfig{
		Client:      s.client,
		Clock:       s.clock,
		IDGenerator: idgen.NewSequential("save"),
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TestMissingClient() {
	_, err := savegame.NewRedis(&savegame.RedisConfig{})
	s.Require().Error(err)
	s.Contains(err.Error(), "Client")

	_, err = savegame.NewRedis(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestListSkipsDanglingIndexEntries() {
	_, err := s.repo.Save(s.ctx, &savegame.SaveInput{Sim: newTestSim()})
	s.Require().NoError(err)
	s.Require().NoError(s.client.Del(s.ctx, "save:save_1").Err())

	out, err := s.repo.List(s.ctx, &savegame.ListInput{})
	s.Require().NoError(err)
	s.Empty(out.Saves)
}

func (s *RedisRepositoryTestSuite) TestCorruptSaveIsDataLoss() {
	s.Require().NoError(s.server.Set("save:bad", "{not json"))

	_, err := s.repo.Get(s.ctx, &savegame.GetInput{ID: "bad"})
	s.Require().Error(err)
	s.True(errors.IsDataLoss(err))
}

func (s *RedisRepositoryTestSuite) TestServerDownIsInternal() {
	s.server.Close()

	_, err := s.repo.Save(s.ctx, &savegame.SaveInput{Sim: newTestSim()})
	s.Require().Error(err)
	s.True(errors.IsInternal(err))

	_, err = s.repo.Get(s.ctx, &savegame.GetInput{ID: "save_1"})
	s.Require().Error(err)
	s.False(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestSaveIndexesByUpdateTime() {
	_, err := s.repo.Save(s.ctx, &savegame.SaveInput{Sim: newTestSim()})
	s.Require().NoError(err)

	members, err := s.server.ZMembers("save_index")
	s.Require().NoError(err)
	s.Equal([]string{"save_1"}, members)

	score, err := s.server.ZScore("save_index", "save_1")
	s.Require().NoError(err)
	s.Equal(float64(testStart.UnixMilli()), score)
}

func (s *RedisRepositoryTestSuite) TestRepairRemovesCorruptAndDangling() {
	_, err := s.repo.Save(s.ctx, &savegame.SaveInput{Sim: newTestSim()})
	s.Require().NoError(err)
	s.Require().NoError(s.server.Set("save:bad", "{not json"))
	_, err = s.server.ZAdd("save_index", 1, "bad")
	s.Require().NoError(err)
	_, err = s.server.ZAdd("save_index", 2, "ghost")
	s.Require().NoError(err)

	dry, err := s.repo.Repair(s.ctx, &savegame.RepairInput{DryRun: true})
	s.Require().NoError(err)
	s.Equal(2, dry.Checked)
	s.Equal([]string{"bad"}, dry.Corrupt)
	s.Equal([]string{"ghost"}, dry.Dangling)
	s.Zero(dry.Removed)
	s.True(s.server.Exists("save:bad"))

	out, err := s.repo.Repair(s.ctx, &savegame.RepairInput{})
	s.Require().NoError(err)
	s.Equal(2, out.Removed)
	s.False(s.server.Exists("save:bad"))

	members, err := s.server.ZMembers("save_index")
	s.Require().NoError(err)
	s.Equal([]string{"save_1"}, members)
}
