package savegame_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-wilds/internal/errors"
	"github.com/KirkDiggler/rpg-wilds/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-wilds/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-wilds/internal/repositories/savegame"
)

type SQLiteRepositoryTestSuite struct {
	repositoryContract
	path   string
	sqlite *savegame.SQLiteRepository
}

func TestSQLiteRepositorySuite(t *testing.T) {
	suite.Run(t, new(SQLiteRepositoryTestSuite))
}

func (s *SQLiteRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewFixed(testStart)
	s.path = filepath.Join(s.T().TempDir(), "saves.db")
	s.sqlite = s.open()
	s.repo = s.sqlite
}

func (s *SQLiteRepositoryTestSuite) TearDownTest() {
	s.Require().NoError(s.sqlite.Close())
}

func (s *SQLiteRepositoryTestSuite) open() *savegame.SQLiteRepository {
	repo, err := savegame.OpenSQLite(s.ctx, &savegame.SQLiteConfig{
		Path:        s.path,
		Clock:       s.clock,
		IDGenerator: idgen.NewSequential("save"),
	})
	s.Require().NoError(err)
	return repo
}

func (s *SQLiteRepositoryTestSuite) TestMissingPath() {
	_, err := savegame.OpenSQLite(s.ctx, &savegame.SQLiteConfig{})
	s.Require().Error(err)
	s.Contains(err.Error(), "Path")
}

func (s *SQLiteRepositoryTestSuite) TestReopenKeepsSavesAndSkipsAppliedMigrations() {
	_, err := s.repo.Save(s.ctx, &savegame.SaveInput{Sim: newTestSim()})
	s.Require().NoError(err)
	s.Require().NoError(s.sqlite.Close())

	s.sqlite = s.open()
	got, err := s.sqlite.Get(s.ctx, &savegame.GetInput{ID: "save_1"})
	s.Require().NoError(err)
	s.Equal(42, got.Record.Sim.Steps)
}

func (s *SQLiteRepositoryTestSuite) TestRepairRemovesUndecodableRows() {
	_, err := s.repo.Save(s.ctx, &savegame.SaveInput{Sim: newTestSim()})
	s.Require().NoError(err)

	db, err := sql.Open("sqlite", s.path)
	s.Require().NoError(err)
	defer func() { _ = db.Close() }()
	_, err = db.ExecContext(s.ctx,
		`INSERT INTO saves (id, sim_json, created_at, updated_at) VALUES ('bad', '{not json', 1, 1)`)
	s.Require().NoError(err)

	dry, err := s.repo.Repair(s.ctx, &savegame.RepairInput{DryRun: true})
	s.Require().NoError(err)
	s.Equal(2, dry.Checked)
	s.Equal([]string{"bad"}, dry.Corrupt)
	s.Zero(dry.Removed)

	out, err := s.repo.Repair(s.ctx, &savegame.RepairInput{})
	s.Require().NoError(err)
	s.Equal(1, out.Removed)

	_, err = s.repo.Get(s.ctx, &savegame.GetInput{ID: "bad"})
	s.True(errors.IsNotFound(err))
	_, err = s.repo.Get(s.ctx, &savegame.GetInput{ID: "save_1"})
	s.NoError(err)
}

func TestSQLiteInMemory(t *testing.T) {
	ctx := context.Background()
	repo, err := savegame.OpenSQLite(ctx, &savegame.SQLiteConfig{
		Path:        savegame.MemoryPath,
		Clock:       clock.NewFixed(testStart),
		IDGenerator: idgen.NewSequential("mem"),
	})
	require.NoError(t, err)
	defer func() { _ = repo.Close() }()

	saved, err := repo.Save(ctx, &savegame.SaveInput{Sim: newTestSim()})
	require.NoError(t, err)
	assert.Equal(t, "mem_1", saved.Record.ID)

	got, err := repo.Get(ctx, &savegame.GetInput{ID: saved.Record.ID})
	require.NoError(t, err)
	assert.Equal(t, 42, got.Record.Sim.Steps)
}
