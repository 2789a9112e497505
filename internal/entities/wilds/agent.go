package wilds

import "strings"

// EntityTypeWanderingAgent is the core.Entity type of wandering NPCs
const EntityTypeWanderingAgent = "wandering_agent"

// WanderingAgent is an NPC that moves on its own tick
type WanderingAgent struct {
	ID             string   `json:"id" yaml:"id"`
	Name           string   `json:"name" yaml:"name"`
	Position       Position `json:"position" yaml:"position"`
	TurnsUntilMove int      `json:"turns_until_move" yaml:"turns_until_move"`
	MoveInterval   int      `json:"move_interval" yaml:"move_interval"`
	// ValidTiles holds the tile codes the agent may stand on, e.g. ".F"
	ValidTiles string `json:"valid_tiles" yaml:"valid_tiles"`
	DialogueID string `json:"dialogue_id" yaml:"dialogue_id"`
}

// GetID implements core.Entity
func (a *WanderingAgent) GetID() string {
	return a.ID
}

// GetType implements core.Entity
func (a *WanderingAgent) GetType() string {
	return EntityTypeWanderingAgent
}

// CanEnter reports whether the tile is in the agent's valid terrain set
func (a *WanderingAgent) CanEnter(t Tile) bool {
	return strings.ContainsRune(a.ValidTiles, rune(t))
}
