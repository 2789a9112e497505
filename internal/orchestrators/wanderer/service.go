// Package wanderer moves the autonomous NPCs that roam the map
package wanderer

//go:generate mockgen -destination=mock/mock_service.go -package=wanderermock github.com/KirkDiggler/rpg-wilds/internal/orchestrators/wanderer Service

import (
	"context"

	"github.com/KirkDiggler/rpg-wilds/internal/entities/wilds"
)

// Service advances wandering agents by one scheduler tick
type Service interface {
	Tick(ctx context.Context, input *TickInput) (*TickOutput, error)
}

// TickInput defines the request for a scheduler tick
type TickInput struct {
	Sim *wilds.SimulationContext
}

// TickOutput lists the agents that changed tile this tick
type TickOutput struct {
	Moved []string
}
