// Package weather re-rolls the sky as in-game time passes
package weather

//go:generate mockgen -destination=mock/mock_service.go -package=weathermock github.com/KirkDiggler/rpg-wilds/internal/orchestrators/weather Service

import (
	"context"

	"github.com/KirkDiggler/rpg-wilds/internal/entities/wilds"
)

// Service updates the simulation's weather
type Service interface {
	Update(ctx context.Context, input *UpdateInput) (*UpdateOutput, error)
}

// UpdateInput defines the request for a weather update
type UpdateInput struct {
	Sim *wilds.SimulationContext
}

// UpdateOutput reports whether the weather was re-rolled and whether it changed
type UpdateOutput struct {
	Rolled  bool
	Changed bool
	Weather wilds.WeatherType
}
