// Package engine defines the rules and randomness the simulation resolves against
package engine

import (
	"context"
)

// Engine provides dice-driven game mechanics. Every random decision in the
// simulation goes through it so a seeded roller reproduces a whole game.
type Engine interface {
	// Checks and attacks
	PerformCheck(ctx context.Context, input *PerformCheckInput) (*PerformCheckOutput, error)
	RollAttack(ctx context.Context, input *RollAttackInput) (*RollAttackOutput, error)
	RollDamage(ctx context.Context, input *RollDamageInput) (*RollDamageOutput, error)

	// Random primitives
	RollD20() (int, error)
	// Chance succeeds when a d100 roll is at or below percent
	Chance(percent int) (bool, error)
	// Pick returns a uniform index in [0, n)
	Pick(n int) (int, error)
	// Shuffle permutes n elements in place through swap
	Shuffle(n int, swap func(i, j int)) error

	// Utility methods
	CalculateAbilityModifier(score int) int
}
