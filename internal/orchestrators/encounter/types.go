package encounter

import "github.com/KirkDiggler/rpg-wilds/internal/entities/wilds"

// Kind is what a trigger attempt produced
type Kind string

const (
	KindNone   Kind = "none"
	KindEvent  Kind = "event"
	KindCombat Kind = "combat"
)

// Reasons reported when nothing was triggered
const (
	ReasonCooldown   = "cooldown"
	ReasonQuiet      = "quiet"
	ReasonSafeBiome  = "safe_biome"
	ReasonNoEnemies  = "no_enemies"
	ReasonNoEvents   = "no_events"
	ReasonNoAmbience = "no_ambience"
)

// TryTriggerInput defines the request for an encounter roll
type TryTriggerInput struct {
	Sim *wilds.SimulationContext
	// ForceBiomeEvent skips the cooldown and chance gates and opens a biome event
	ForceBiomeEvent bool
}

// TryTriggerOutput defines what, if anything, interrupted exploration
type TryTriggerOutput struct {
	Triggered bool
	Kind      Kind
	Event     *wilds.EventDefinition
	Combat    *wilds.CombatState
	Reason    string
}

// RollAmbientInput defines the request for an ambient flavor roll
type RollAmbientInput struct {
	Sim *wilds.SimulationContext
}

// RollAmbientOutput carries the ambient line, empty when none was rolled
type RollAmbientOutput struct {
	Message string
	Reason  string
}
