// Package app wires the content, dice, resolvers and save backend into a
// ready-to-play game service
package app

import (
	"context"
	"log/slog"
	"os"

	"github.com/KirkDiggler/rpg-wilds/internal/config"
	"github.com/KirkDiggler/rpg-wilds/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/rpg-wilds/internal/errors"
	"github.com/KirkDiggler/rpg-wilds/internal/orchestrators/combat"
	"github.com/KirkDiggler/rpg-wilds/internal/orchestrators/encounter"
	"github.com/KirkDiggler/rpg-wilds/internal/orchestrators/event"
	"github.com/KirkDiggler/rpg-wilds/internal/orchestrators/game"
	"github.com/KirkDiggler/rpg-wilds/internal/orchestrators/movement"
	"github.com/KirkDiggler/rpg-wilds/internal/orchestrators/wanderer"
	"github.com/KirkDiggler/rpg-wilds/internal/orchestrators/weather"
	"github.com/KirkDiggler/rpg-wilds/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-wilds/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-wilds/internal/pkg/rng"
	"github.com/KirkDiggler/rpg-wilds/internal/redis"
	"github.com/KirkDiggler/rpg-wilds/internal/repositories/content"
	"github.com/KirkDiggler/rpg-wilds/internal/repositories/savegame"
	"github.com/KirkDiggler/rpg-wilds/internal/services/progression"
)

// App is a wired game. Close releases the save backend.
type App struct {
	Game    *game.Orchestrator
	Content content.Repository
	Saves   savegame.Repository
	Seed    uint64

	closers []func() error
}

// LoadContent opens the content directory, or the embedded tables when dir is empty
func LoadContent(dir string) (content.Repository, error) {
	fsys := content.DefaultFS()
	if dir != "" {
		fsys = os.DirFS(dir)
	}
	return content.NewYAMLRepository(&content.Config{FS: fsys})
}

// Build wires every component for one seed
func Build(ctx context.Context, cfg *config.Config) (*App, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	a := &App{Seed: cfg.Seed}

	repo, err := LoadContent(cfg.ContentDir)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load content")
	}
	a.Content = repo

	saves, err := a.openSaves(ctx, cfg)
	if err != nil {
		return nil, err
	}
	a.Saves = saves

	g, err := a.wire(rng.New(cfg.Seed))
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	a.Game = g

	slog.Info("game wired", "seed", cfg.Seed, "backend", cfg.SaveBackend, "content_dir", cfg.ContentDir)
	return a, nil
}

func (a *App) openSaves(ctx context.Context, cfg *config.Config) (savegame.Repository, error) {
	ids := idgen.NewUUID("save")
	clk := clock.New()

	switch cfg.SaveBackend {
	case config.BackendRedis:
		client, err := redis.NewClient(cfg.RedisAddr, nil)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create redis client")
		}
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "redis is unreachable").
				WithMeta("addr", cfg.RedisAddr)
		}
		a.closers = append(a.closers, client.Close)
		return savegame.NewRedis(&savegame.RedisConfig{Client: client, Clock: clk, IDGenerator: ids})

	case config.BackendMemory:
		return a.openSQLite(ctx, savegame.MemoryPath, clk, ids)

	default:
		return a.openSQLite(ctx, cfg.SQLitePath, clk, ids)
	}
}

func (a *App) openSQLite(ctx context.Context, path string, clk clock.Clock, ids idgen.Generator) (savegame.Repository, error) {
	repo, err := savegame.OpenSQLite(ctx, &savegame.SQLiteConfig{Path: path, Clock: clk, IDGenerator: ids})
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, repo.Close)
	return repo, nil
}

func (a *App) wire(roller *rng.Roller) (*game.Orchestrator, error) {
	eng, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{DiceRoller: roller})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create engine")
	}

	prog, err := progression.NewService(&progression.Config{})
	if err != nil {
		return nil, err
	}

	combatSvc, err := combat.New(&combat.Config{
		Engine:      eng,
		Content:     a.Content,
		Progression: prog,
		IDGenerator: idgen.NewSequential("combat"),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create combat orchestrator")
	}

	encounterSvc, err := encounter.NewOrchestrator(&encounter.Config{Engine: eng, Content: a.Content, Combat: combatSvc})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create encounter orchestrator")
	}

	wandererSvc, err := wanderer.New(&wanderer.Config{Engine: eng})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create wanderer orchestrator")
	}

	movementSvc, err := movement.New(&movement.Config{
		Engine:    eng,
		Content:   a.Content,
		Encounter: encounterSvc,
		Wanderer:  wandererSvc,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create movement orchestrator")
	}

	eventSvc, err := event.New(&event.Config{Engine: eng, Content: a.Content, Progression: prog})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create event orchestrator")
	}

	weatherSvc, err := weather.New(&weather.Config{Engine: eng})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create weather orchestrator")
	}

	g, err := game.New(&game.Config{
		Content:     a.Content,
		Movement:    movementSvc,
		Event:       eventSvc,
		Combat:      combatSvc,
		Weather:     weatherSvc,
		Progression: prog,
		Saves:       a.Saves,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create game orchestrator")
	}
	return g, nil
}

// Close releases the save backend
func (a *App) Close() error {
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}
