package engine

import (
	"github.com/KirkDiggler/rpg-wilds/internal/entities/wilds"
)

// PerformCheckInput contains the stat and difficulty for a d20 check
type PerformCheckInput struct {
	StatValue int
	DC        int
}

// PerformCheckOutput contains the check result
type PerformCheckOutput struct {
	Result *wilds.SkillCheckResult
}

// RollAttackInput contains the attacker's bonus and the defender's AC
type RollAttackInput struct {
	Modifier int
	TargetAC int
}

// RollAttackOutput contains the attack roll breakdown
type RollAttackOutput struct {
	Roll     int
	Modifier int
	Total    int
	Hit      bool
}

// RollDamageInput contains dice notation such as "1d6", "2d4+1" or "1d8-1"
type RollDamageInput struct {
	Notation string
}

// RollDamageOutput contains the individual dice and the total, never below zero
type RollDamageOutput struct {
	Dice     []int
	Modifier int
	Total    int
}
