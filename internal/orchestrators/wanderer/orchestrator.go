package wanderer

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-wilds/internal/engine"
	"github.com/KirkDiggler/rpg-wilds/internal/entities/wilds"
	"github.com/KirkDiggler/rpg-wilds/internal/errors"
)

var cardinals = [4]wilds.Position{
	{X: 0, Y: -1},
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
}

// Config holds the dependencies for the wanderer orchestrator
type Config struct {
	Engine engine.Engine
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Engine == nil {
		vb.RequiredField("Engine")
	}

	return vb.Build()
}

// Orchestrator implements Service
type Orchestrator struct {
	engine engine.Engine
}

// New creates a new wanderer orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{engine: cfg.Engine}, nil
}

var _ Service = (*Orchestrator)(nil)

// Tick runs one scheduler step for every agent in order
func (o *Orchestrator) Tick(_ context.Context, input *TickInput) (*TickOutput, error) {
	if input == nil || input.Sim == nil {
		return nil, errors.InvalidArgument("simulation is required")
	}

	output := &TickOutput{}
	if len(input.Sim.Agents) == 0 {
		return output, nil
	}

	area, err := wilds.NewArea(input.Sim)
	if err != nil {
		return nil, errors.Wrap(err, "failed to place agents")
	}

	for _, agent := range input.Sim.Agents {
		if agent.TurnsUntilMove > 1 {
			agent.TurnsUntilMove--
			continue
		}

		moved, err := o.step(input.Sim.Map, area, agent)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to move agent %s", agent.ID)
		}
		if moved {
			agent.TurnsUntilMove = agent.MoveInterval
			output.Moved = append(output.Moved, agent.ID)
			continue
		}

		// Stalled; try again next tick
		if agent.TurnsUntilMove > 0 {
			agent.TurnsUntilMove--
		}
		slog.Debug("Wandering agent has nowhere to go",
			"agent_id", agent.ID,
			"position", agent.Position.String())
	}

	return output, nil
}

func (o *Orchestrator) step(m *wilds.Map, area *wilds.Area, agent *wilds.WanderingAgent) (bool, error) {
	dirs := cardinals
	err := o.engine.Shuffle(len(dirs), func(i, j int) {
		dirs[i], dirs[j] = dirs[j], dirs[i]
	})
	if err != nil {
		return false, err
	}

	for _, d := range dirs {
		next := agent.Position.Add(d.X, d.Y)
		if !area.InBounds(next) || area.Occupied(next) {
			continue
		}
		if tile, _ := m.TileAt(next); !agent.CanEnter(tile) {
			continue
		}

		if err := area.MoveAgent(agent, next); err != nil {
			return false, err
		}
		return true, nil
	}

	return false, nil
}
