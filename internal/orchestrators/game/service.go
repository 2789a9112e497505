// Package game runs whole player turns: it sequences the resolvers, drains the
// follow-up commands they queue and persists games through the save repository
package game

//go:generate mockgen -destination=mock/mock_service.go -package=gamemock github.com/KirkDiggler/rpg-wilds/internal/orchestrators/game Service

import (
	"context"

	"github.com/KirkDiggler/rpg-wilds/internal/entities/wilds"
	"github.com/KirkDiggler/rpg-wilds/internal/orchestrators/combat"
	"github.com/KirkDiggler/rpg-wilds/internal/orchestrators/event"
	"github.com/KirkDiggler/rpg-wilds/internal/orchestrators/movement"
	"github.com/KirkDiggler/rpg-wilds/internal/orchestrators/weather"
	"github.com/KirkDiggler/rpg-wilds/internal/repositories/savegame"
)

// Service defines the operations a front end drives
type Service interface {
	// Lifecycle
	NewGame(ctx context.Context, input *NewGameInput) (*NewGameOutput, error)

	// Turns
	Move(ctx context.Context, input *MoveInput) (*MoveOutput, error)
	ChooseOption(ctx context.Context, input *ChooseOptionInput) (*ChooseOptionOutput, error)
	DismissEvent(ctx context.Context, input *DismissEventInput) (*DismissEventOutput, error)
	CombatAction(ctx context.Context, input *CombatActionInput) (*CombatActionOutput, error)

	// Persistence
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)
	Load(ctx context.Context, input *LoadInput) (*LoadOutput, error)
	ListSaves(ctx context.Context, input *ListSavesInput) (*ListSavesOutput, error)
}

// Action is a combat action chosen by the player
type Action string

const (
	ActionAttack    Action = "attack"
	ActionDefend    Action = "defend"
	ActionFlee      Action = "flee"
	ActionInventory Action = "inventory"
)

// NewGameInput defines the request for starting a game
type NewGameInput struct {
	PlayerName string
	// Seed is recorded on the context so a run can be replayed
	Seed uint64
}

// NewGameOutput defines the response for starting a game
type NewGameOutput struct {
	Sim *wilds.SimulationContext
}

// MoveInput defines the request for a step; DX and DY form a unit cardinal vector
type MoveInput struct {
	Sim *wilds.SimulationContext
	DX  int
	DY  int
}

// MoveOutput describes a full exploration turn
type MoveOutput struct {
	Rejected  bool
	Message   string
	Move      *movement.AttemptMoveOutput
	Weather   *weather.UpdateOutput
	Followups []string
}

// ChooseOptionInput defines the request for answering the active event
type ChooseOptionInput struct {
	Sim         *wilds.SimulationContext
	ChoiceIndex int
}

// ChooseOptionOutput defines the response for answering the active event
type ChooseOptionOutput struct {
	Result    *event.ResolveChoiceOutput
	Followups []string
}

// DismissEventInput defines the request for closing the active event
type DismissEventInput struct {
	Sim *wilds.SimulationContext
}

// DismissEventOutput defines the response for closing the active event
type DismissEventOutput struct {
	Dismissed bool
	EventID   string
}

// CombatActionInput defines one player action in a fight.
// TargetIndex is used by attack, ItemID by inventory.
type CombatActionInput struct {
	Sim         *wilds.SimulationContext
	Action      Action
	TargetIndex int
	ItemID      string
}

// CombatActionOutput collects every step the action triggered.
// EnemyTurn is nil when the player's action ended the fight; Finish is set
// once the fight is settled.
type CombatActionOutput struct {
	Rejected  bool
	Message   string
	Attack    *combat.AttackOutput
	EnemyTurn *combat.EnemyTurnOutput
	Finish    *combat.FinishOutput
}

// SaveInput defines the request for saving; an empty SaveID creates a new save
type SaveInput struct {
	Sim    *wilds.SimulationContext
	SaveID string
}

// SaveOutput defines the response for saving
type SaveOutput struct {
	SaveID string
}

// LoadInput defines the request for loading a save
type LoadInput struct {
	SaveID string
}

// LoadOutput defines the response for loading a save
type LoadOutput struct {
	Sim *wilds.SimulationContext
}

// ListSavesInput defines the request for listing saves
type ListSavesInput struct {
	Limit int
}

// ListSavesOutput defines the response for listing saves
type ListSavesOutput struct {
	Saves []savegame.Summary
}
