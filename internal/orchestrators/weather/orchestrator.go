package weather

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-wilds/internal/engine"
	"github.com/KirkDiggler/rpg-wilds/internal/entities/wilds"
	"github.com/KirkDiggler/rpg-wilds/internal/errors"
)

const (
	// RerollAfterMinutes is how long a weather state lasts at minimum
	RerollAfterMinutes = 6 * wilds.MinutesPerHour

	clearThreshold = 60
	rainThreshold  = 90
)

var changeMessages = map[wilds.WeatherType]string{
	wilds.WeatherClear: "The clouds part and the sky clears.",
	wilds.WeatherRain:  "A steady rain begins to fall.",
	wilds.WeatherStorm: "Thunder rolls in as a storm breaks overhead.",
}

// Config holds the dependencies for the weather orchestrator
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

// New creates a new weather orchestrator
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

// Update re-rolls the weather once RerollAfterMinutes have passed since the last change.
// Clear 60%, rain 30%, storm 10%.
func (o *Orchestrator) Update(_ context.Context, input *UpdateInput) (*UpdateOutput, error) {
	if input == nil || input.Sim == nil {
		return nil, errors.InvalidArgument("simulation is required")
	}

	sim := input.Sim
	now := sim.Time.TotalMinutes()
	output := &UpdateOutput{Weather: sim.Weather.Type}

	if now-sim.Weather.ChangedAt < RerollAfterMinutes {
		return output, nil
	}

	roll, err := o.engine.Pick(100)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll weather")
	}

	next := wilds.WeatherStorm
	switch {
	case roll < clearThreshold:
		next = wilds.WeatherClear
	case roll < rainThreshold:
		next = wilds.WeatherRain
	}

	previous := sim.Weather.Type
	sim.Weather = wilds.Weather{Type: next, ChangedAt: now}
	output.Rolled = true
	output.Weather = next

	if next != previous {
		output.Changed = true
		sim.Log(wilds.JournalWeather, changeMessages[next])
		slog.Debug("Weather changed",
			"from", previous,
			"to", next,
			"time", sim.Time.String())
	}

	return output, nil
}
