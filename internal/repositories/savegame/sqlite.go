package savegame

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"time"

	// registers the "sqlite" driver
	_ "modernc.org/sqlite"

	"github.com/KirkDiggler/rpg-wilds/internal/entities/wilds"
	"github.com/KirkDiggler/rpg-wilds/internal/errors"
	"github.com/KirkDiggler/rpg-wilds/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-wilds/internal/pkg/idgen"
)

// MemoryPath opens a throwaway database that lives as long as the repository
const MemoryPath = ":memory:"

// SQLiteRepository stores saves in a single SQLite file
type SQLiteRepository struct {
	db    *sql.DB
	clock clock.Clock
	ids   idgen.Generator
}

// SQLiteConfig contains configuration for the SQLite save repository
type SQLiteConfig struct {
	Path        string
	Clock       clock.Clock
	IDGenerator idgen.Generator
}

// Validate validates the SQLiteConfig
func (cfg *SQLiteConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("Path", cfg.Path, vb)

	return vb.Build()
}

// OpenSQLite opens (creating if needed) the database at cfg.Path and applies migrations
func OpenSQLite(ctx context.Context, cfg *SQLiteConfig) (*SQLiteRepository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	ids := cfg.IDGenerator
	if ids == nil {
		ids = idgen.NewUUID("save")
	}

	dsn := cfg.Path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to open sqlite").
			WithMeta("path", cfg.Path)
	}
	if cfg.Path == MemoryPath {
		// every connection would otherwise get its own empty database
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to reach sqlite").
			WithMeta("path", cfg.Path)
	}
	if err := applyMigrations(ctx, db, c.Now().UnixMilli()); err != nil {
		_ = db.Close()
		return nil, err
	}

	slog.Info("sqlite save store ready", "path", cfg.Path)
	return &SQLiteRepository{db: db, clock: c, ids: ids}, nil
}

// Close releases the database handle
func (r *SQLiteRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Save implements Repository
func (r *SQLiteRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	now := r.clock.Now().UTC()
	rec := &Record{ID: input.ID, CreatedAt: now, UpdatedAt: now, Sim: input.Sim}
	if rec.ID == "" {
		rec.ID = r.ids.Generate()
	}

	data, err := json.Marshal(rec.Sim)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode save %s", rec.ID)
	}
	sum := Summarize(rec)

	_, err = r.db.ExecContext(ctx, `
INSERT INTO saves (id, player_name, level, day, steps, mode, sim_json, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    player_name = excluded.player_name,
    level = excluded.level,
    day = excluded.day,
    steps = excluded.steps,
    mode = excluded.mode,
    sim_json = excluded.sim_json,
    updated_at = excluded.updated_at`,
		rec.ID, sum.PlayerName, sum.Level, sum.Day, sum.Steps, string(sum.Mode), data,
		toMillis(rec.CreatedAt), toMillis(rec.UpdatedAt),
	)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to write save").
			WithMeta("save_id", rec.ID)
	}

	// created_at survives overwrites
	var created int64
	if err := r.db.QueryRowContext(ctx, `SELECT created_at FROM saves WHERE id = ?`, rec.ID).Scan(&created); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to read save").
			WithMeta("save_id", rec.ID)
	}
	rec.CreatedAt = fromMillis(created)

	slog.Info("game saved", "save_id", rec.ID, "backend", "sqlite")
	return &SaveOutput{Record: rec}, nil
}

// Get implements Repository
func (r *SQLiteRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if err := validateID(input.ID); err != nil {
		return nil, err
	}

	var (
		data             []byte
		created, updated int64
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT sim_json, created_at, updated_at FROM saves WHERE id = ?`, input.ID,
	).Scan(&data, &created, &updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundf("save %s not found", input.ID)
		}
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to read save").
			WithMeta("save_id", input.ID)
	}

	var sim wilds.SimulationContext
	if err := json.Unmarshal(data, &sim); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to decode save").
			WithMeta("save_id", input.ID)
	}
	sim.EnsureCollections()
	rec := &Record{ID: input.ID, Sim: &sim}
	rec.CreatedAt = fromMillis(created)
	rec.UpdatedAt = fromMillis(updated)

	return &GetOutput{Record: rec}, nil
}

// List implements Repository
func (r *SQLiteRepository) List(ctx context.Context, input *ListInput) (*ListOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}

	limit := input.Limit
	if limit <= 0 {
		limit = -1
	}
	rows, err := r.db.QueryContext(ctx, `
SELECT id, player_name, level, day, steps, mode, updated_at
FROM saves
ORDER BY updated_at DESC, id
LIMIT ?`, limit)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to list saves")
	}
	defer func() { _ = rows.Close() }()

	out := &ListOutput{}
	for rows.Next() {
		var (
			s       Summary
			mode    string
			updated int64
		)
		if err := rows.Scan(&s.ID, &s.PlayerName, &s.Level, &s.Day, &s.Steps, &mode, &updated); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to scan save")
		}
		s.Mode = wilds.Mode(mode)
		s.UpdatedAt = fromMillis(updated)
		out.Saves = append(out.Saves, s)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to list saves")
	}
	return out, nil
}

// Delete implements Repository
func (r *SQLiteRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if err := validateID(input.ID); err != nil {
		return nil, err
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM saves WHERE id = ?`, input.ID)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to delete save").
			WithMeta("save_id", input.ID)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to delete save")
	}
	if n == 0 {
		return nil, errors.NotFoundf("save %s not found", input.ID)
	}

	slog.Info("save deleted", "save_id", input.ID, "backend", "sqlite")
	return &DeleteOutput{}, nil
}

func toMillis(t time.Time) int64 {
	return t.UTC().UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// Repair implements Repository. SQLite has no separate index, so only
// undecodable rows are reported.
func (r *SQLiteRepository) Repair(ctx context.Context, input *RepairInput) (*RepairOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}

	rows, err := r.db.QueryContext(ctx, `SELECT id, sim_json FROM saves ORDER BY id`)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to scan saves")
	}
	defer func() { _ = rows.Close() }()

	out := &RepairOutput{}
	for rows.Next() {
		var (
			id   string
			data []byte
		)
		if err := rows.Scan(&id, &data); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to scan save")
		}
		out.Checked++

		var sim wilds.SimulationContext
		if err := json.Unmarshal(data, &sim); err != nil || sim.Map == nil || sim.Player == nil {
			slog.Warn("corrupt save found", "save_id", id, "error", err)
			out.Corrupt = append(out.Corrupt, id)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to scan saves")
	}
	if err := rows.Close(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to scan saves")
	}

	if input.DryRun || len(out.Corrupt) == 0 {
		return out, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to begin repair")
	}
	for _, id := range out.Corrupt {
		if _, err := tx.ExecContext(ctx, `DELETE FROM saves WHERE id = ?`, id); err != nil {
			_ = tx.Rollback()
			return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to remove corrupt save").
				WithMeta("save_id", id)
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to commit repair")
	}
	out.Removed = len(out.Corrupt)

	slog.Info("saves repaired", "backend", "sqlite", "corrupt", len(out.Corrupt))
	return out, nil
}
