package savegame_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-wilds/internal/entities/wilds"
	"github.com/KirkDiggler/rpg-wilds/internal/errors"
	"github.com/KirkDiggler/rpg-wilds/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-wilds/internal/repositories/savegame"
	"github.com/KirkDiggler/rpg-wilds/internal/testutils"
)

var testStart = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

// repositoryContract holds the behaviour both backends share.
// Backend suites embed it and assign repo and clock in SetupTest.
type repositoryContract struct {
	suite.Suite
	ctx   context.Context
	clock *clock.Fixed
	repo  savegame.Repository
}

func newTestSim() *wilds.SimulationContext {
	sim := testutils.NewTestSimulation([]string{"S.F", ".~E"}, wilds.Position{X: 0, Y: 0})
	sim.Steps = 42
	sim.Time = wilds.NewGameTime(3, 14, 5)
	sim.Player.Inventory["herb"] = 2
	sim.Flags.Add("met_hermit")
	sim.History.Record("old_shrine", true)
	sim.VisitedRefuges.Add(wilds.Position{X: 2, Y: 1})
	sim.Log(wilds.JournalSystem, "saved for the test")
	return sim
}

func (s *repositoryContract) TestSaveAssignsIDAndRoundTrips() {
	sim := newTestSim()

	saved, err := s.repo.Save(s.ctx, &savegame.SaveInput{Sim: sim})
	s.Require().NoError(err)
	s.Equal("save_1", saved.Record.ID)
	s.True(testStart.Equal(saved.Record.CreatedAt))

	got, err := s.repo.Get(s.ctx, &savegame.GetInput{ID: "save_1"})
	s.Require().NoError(err)

	loaded := got.Record.Sim
	s.Equal(42, loaded.Steps)
	s.Equal(sim.Time, loaded.Time)
	s.Equal(sim.Position, loaded.Position)
	s.Equal(sim.Map.Rows, loaded.Map.Rows)
	s.Equal(2, loaded.Player.Inventory["herb"])
	s.Equal(testutils.TestPlayerName, loaded.Player.Name)
	s.True(loaded.Flags.Has("met_hermit"))
	s.True(loaded.History.Has("old_shrine"))
	s.True(loaded.VisitedRefuges.Has(wilds.Position{X: 2, Y: 1}))
	s.Require().Len(loaded.Journal, 1)
	s.Equal("saved for the test", loaded.Journal[0].Text)
	s.True(testStart.Equal(got.Record.CreatedAt))
	s.True(testStart.Equal(got.Record.UpdatedAt))
}

func (s *repositoryContract) TestOverwriteKeepsCreatedAt() {
	sim := newTestSim()
	saved, err := s.repo.Save(s.ctx, &savegame.SaveInput{Sim: sim})
	s.Require().NoError(err)

	s.clock.Advance(time.Hour)
	sim.Steps = 50
	again, err := s.repo.Save(s.ctx, &savegame.SaveInput{ID: saved.Record.ID, Sim: sim})
	s.Require().NoError(err)
	s.Equal(saved.Record.ID, again.Record.ID)
	s.True(testStart.Equal(again.Record.CreatedAt))
	s.True(testStart.Add(time.Hour).Equal(again.Record.UpdatedAt))

	got, err := s.repo.Get(s.ctx, &savegame.GetInput{ID: saved.Record.ID})
	s.Require().NoError(err)
	s.Equal(50, got.Record.Sim.Steps)
}

func (s *repositoryContract) TestListNewestFirst() {
	for i := 0; i < 3; i++ {
		sim := newTestSim()
		sim.Steps = i
		_, err := s.repo.Save(s.ctx, &savegame.SaveInput{Sim: sim})
		s.Require().NoError(err)
		s.clock.Advance(time.Minute)
	}

	all, err := s.repo.List(s.ctx, &savegame.ListInput{})
	s.Require().NoError(err)
	s.Require().Len(all.Saves, 3)
	s.Equal("save_3", all.Saves[0].ID)
	s.Equal("save_1", all.Saves[2].ID)
	s.Equal(2, all.Saves[0].Steps)
	s.Equal(3, all.Saves[0].Day)
	s.Equal(testutils.TestPlayerName, all.Saves[0].PlayerName)
	s.Equal(wilds.ModeExploration, all.Saves[0].Mode)

	limited, err := s.repo.List(s.ctx, &savegame.ListInput{Limit: 2})
	s.Require().NoError(err)
	s.Require().Len(limited.Saves, 2)
	s.Equal("save_3", limited.Saves[0].ID)
	s.Equal("save_2", limited.Saves[1].ID)
}

func (s *repositoryContract) TestListEmpty() {
	out, err := s.repo.List(s.ctx, &savegame.ListInput{})
	s.Require().NoError(err)
	s.Empty(out.Saves)
}

func (s *repositoryContract) TestDelete() {
	saved, err := s.repo.Save(s.ctx, &savegame.SaveInput{Sim: newTestSim()})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, &savegame.DeleteInput{ID: saved.Record.ID})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, &savegame.GetInput{ID: saved.Record.ID})
	s.True(errors.IsNotFound(err))

	out, err := s.repo.List(s.ctx, &savegame.ListInput{})
	s.Require().NoError(err)
	s.Empty(out.Saves)

	_, err = s.repo.Delete(s.ctx, &savegame.DeleteInput{ID: saved.Record.ID})
	s.True(errors.IsNotFound(err))
}

func (s *repositoryContract) TestGetUnknown() {
	_, err := s.repo.Get(s.ctx, &savegame.GetInput{ID: "nope"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *repositoryContract) TestInvalidInputs() {
	_, err := s.repo.Save(s.ctx, &savegame.SaveInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Save(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, &savegame.GetInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Delete(s.ctx, &savegame.DeleteInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Repair(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *repositoryContract) TestRepairOnHealthySaves() {
	for i := 0; i < 2; i++ {
		_, err := s.repo.Save(s.ctx, &savegame.SaveInput{Sim: newTestSim()})
		s.Require().NoError(err)
	}

	out, err := s.repo.Repair(s.ctx, &savegame.RepairInput{})
	s.Require().NoError(err)
	s.Equal(2, out.Checked)
	s.Empty(out.Corrupt)
	s.Empty(out.Dangling)
	s.Zero(out.Removed)
}
