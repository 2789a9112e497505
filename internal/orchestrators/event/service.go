// Package event resolves the player's choice in an open event and closes it
package event

//go:generate mockgen -destination=mock/mock_service.go -package=eventmock github.com/KirkDiggler/rpg-wilds/internal/orchestrators/event Service

import (
	"context"

	"github.com/KirkDiggler/rpg-wilds/internal/entities/wilds"
)

// Service defines event resolution
type Service interface {
	// ResolveChoice applies every outcome of the chosen option, then dismisses the event
	ResolveChoice(ctx context.Context, input *ResolveChoiceInput) (*ResolveChoiceOutput, error)

	// Dismiss closes the active event without applying anything
	Dismiss(ctx context.Context, input *DismissInput) (*DismissOutput, error)
}

// ResolveChoiceInput defines the request for resolving a choice
type ResolveChoiceInput struct {
	Sim         *wilds.SimulationContext
	ChoiceIndex int
}

// CheckRecord is a skill check made while resolving a choice
type CheckRecord struct {
	Skill  string
	Result *wilds.SkillCheckResult
}

// ResolveChoiceOutput defines the result of resolving a choice.
// Rejected choices leave the simulation untouched.
type ResolveChoiceOutput struct {
	Rejected     bool
	Message      string
	Summary      string
	Consequences []string
	Checks       []CheckRecord
}

// DismissInput defines the request for closing the active event
type DismissInput struct {
	Sim *wilds.SimulationContext
}

// DismissOutput reports whether an event was open
type DismissOutput struct {
	Dismissed bool
	EventID   string
}
