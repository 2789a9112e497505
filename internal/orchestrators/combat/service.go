// Package combat runs the turn-based fight between the player and enemies
package combat

//go:generate mockgen -destination=mock/mock_service.go -package=combatmock github.com/KirkDiggler/rpg-wilds/internal/orchestrators/combat Service

import (
	"context"

	"github.com/KirkDiggler/rpg-wilds/internal/entities/wilds"
)

// Service defines the combat state machine. Player actions move the fight to
// the enemy phase; EnemyTurn is the explicit step that lets enemies act.
type Service interface {
	// Lifecycle
	Initiate(ctx context.Context, input *InitiateInput) (*InitiateOutput, error)
	Finish(ctx context.Context, input *FinishInput) (*FinishOutput, error)

	// Player actions
	Attack(ctx context.Context, input *AttackInput) (*AttackOutput, error)
	Defend(ctx context.Context, input *DefendInput) (*DefendOutput, error)
	Flee(ctx context.Context, input *FleeInput) (*FleeOutput, error)
	UseInventory(ctx context.Context, input *UseInventoryInput) (*UseInventoryOutput, error)

	// Enemy phase
	EnemyTurn(ctx context.Context, input *EnemyTurnInput) (*EnemyTurnOutput, error)
}

// InitiateInput defines the request for starting a fight
type InitiateInput struct {
	Sim       *wilds.SimulationContext
	Encounter wilds.CombatEncounter
}

// InitiateOutput defines the response for starting a fight
type InitiateOutput struct {
	Combat *wilds.CombatState
}

// AttackInput defines the request for a player attack
type AttackInput struct {
	Sim         *wilds.SimulationContext
	TargetIndex int
}

// AttackOutput defines the result of a player attack.
// Rejected attacks leave the combat untouched.
type AttackOutput struct {
	Rejected bool
	Message  string
	Roll     int
	Total    int
	Hit      bool
	Damage   int
	Killed   bool
	Outcome  wilds.CombatOutcome
}

// DefendInput defines the request for the defend action
type DefendInput struct {
	Sim *wilds.SimulationContext
}

// DefendOutput defines the result of the defend action
type DefendOutput struct {
	Rejected bool
	Message  string
}

// FleeInput defines the request for the flee action
type FleeInput struct {
	Sim *wilds.SimulationContext
}

// FleeOutput defines the result of the flee action
type FleeOutput struct {
	Rejected bool
	Message  string
}

// UseInventoryInput defines the request for the inventory action
type UseInventoryInput struct {
	Sim    *wilds.SimulationContext
	ItemID string
}

// UseInventoryOutput defines the result of the inventory action
type UseInventoryOutput struct {
	Rejected bool
	Message  string
}

// EnemyTurnInput defines the request for running the enemy phase
type EnemyTurnInput struct {
	Sim *wilds.SimulationContext
}

// EnemyAttack records one enemy's attack
type EnemyAttack struct {
	EnemyID string
	Roll    int
	Total   int
	Hit     bool
	Damage  int
}

// EnemyTurnOutput defines the result of the enemy phase
type EnemyTurnOutput struct {
	Rejected bool
	Message  string
	Attacks  []EnemyAttack
	Outcome  wilds.CombatOutcome
}

// FinishInput defines the request for settling a finished fight
type FinishInput struct {
	Sim *wilds.SimulationContext
}

// LootAward is an item granted after victory
type LootAward struct {
	ItemID   string
	Name     string
	Quantity int
}

// FinishOutput defines the rewards of a finished fight; defeat carries none
type FinishOutput struct {
	Outcome   wilds.CombatOutcome
	XP        int
	Loot      []LootAward
	Level     int
	LeveledUp bool
}
