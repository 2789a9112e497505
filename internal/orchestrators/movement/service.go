// Package movement resolves a single step of the player across the map
package movement

//go:generate mockgen -destination=mock/mock_service.go -package=movementmock github.com/KirkDiggler/rpg-wilds/internal/orchestrators/movement Service

import (
	"context"

	"github.com/KirkDiggler/rpg-wilds/internal/entities/wilds"
	"github.com/KirkDiggler/rpg-wilds/internal/orchestrators/encounter"
)

// Service defines player movement
type Service interface {
	AttemptMove(ctx context.Context, input *AttemptMoveInput) (*AttemptMoveOutput, error)
}

// Kind classifies how a move attempt was resolved
type Kind string

const (
	KindRejected        Kind = "rejected"
	KindMoved           Kind = "moved"
	KindRiverSecondTurn Kind = "river_second_turn"
	KindInteraction     Kind = "interaction"
	KindRefuge          Kind = "refuge"
	KindSiteTrigger     Kind = "site_trigger"
)

// AttemptMoveInput defines the request for a move; DX and DY form a unit cardinal vector
type AttemptMoveInput struct {
	Sim *wilds.SimulationContext
	DX  int
	DY  int
}

// AttemptMoveOutput describes what the move did
type AttemptMoveOutput struct {
	Kind         Kind
	Message      string
	MinutesSpent int
	Damage       int
	Check        *wilds.SkillCheckResult
	Encounter    *encounter.TryTriggerOutput
	Ambient      string
}

// Rejected reports whether the move was refused without changing anything
func (o *AttemptMoveOutput) Rejected() bool {
	return o.Kind == KindRejected
}
