// Package content provides read-only access to the static world tables:
// map, agents, events, enemies, items and ambient messages
package content

//go:generate mockgen -destination=mock/mock_repository.go -package=contentmock github.com/KirkDiggler/rpg-wilds/internal/repositories/content Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-wilds/internal/entities/wilds"
)

// Repository defines lookups over the content tables.
// Get methods return errors.NotFound for unknown ids; List methods return
// results in table order so seeded games replay identically.
type Repository interface {
	// GetWorld returns the map, starting player and agents
	GetWorld(ctx context.Context, input *GetWorldInput) (*GetWorldOutput, error)

	// GetEvent retrieves an event definition by ID
	GetEvent(ctx context.Context, input *GetEventInput) (*GetEventOutput, error)

	// ListEvents returns events of a category valid in a biome
	ListEvents(ctx context.Context, input *ListEventsInput) (*ListEventsOutput, error)

	// GetEnemy retrieves an enemy template by ID
	GetEnemy(ctx context.Context, input *GetEnemyInput) (*GetEnemyOutput, error)

	// ListEnemies returns enemy templates valid in a biome
	ListEnemies(ctx context.Context, input *ListEnemiesInput) (*ListEnemiesOutput, error)

	// GetItem retrieves an item by ID
	GetItem(ctx context.Context, input *GetItemInput) (*GetItemOutput, error)

	// ListAmbient returns ambient messages matching biome, time of day and weather
	ListAmbient(ctx context.Context, input *ListAmbientInput) (*ListAmbientOutput, error)
}

// Tables is the full content set
type Tables struct {
	World   World
	Events  []wilds.EventDefinition
	Enemies []wilds.EnemyTemplate
	Items   []wilds.Item
	Ambient []wilds.AmbientMessage
}

// World describes the playable map and what starts on it
type World struct {
	Name   string                 `yaml:"name"`
	Map    []string               `yaml:"map"`
	Player PlayerTemplate         `yaml:"player"`
	Agents []wilds.WanderingAgent `yaml:"agents"`
	Sites  []Site                 `yaml:"sites"`
}

// PlayerTemplate is the starting character
type PlayerTemplate struct {
	HP     int          `yaml:"hp"`
	AC     int          `yaml:"ac"`
	Stats  wilds.Stats  `yaml:"stats"`
	Weapon wilds.Weapon `yaml:"weapon"`
}

// Site maps an outpost or landmark tile to the event it opens
type Site struct {
	X       int    `yaml:"x"`
	Y       int    `yaml:"y"`
	EventID string `yaml:"event_id"`
}

// Position returns the site's map position
func (s Site) Position() wilds.Position {
	return wilds.Position{X: s.X, Y: s.Y}
}

// GetWorldInput defines the request for the world
type GetWorldInput struct{}

// GetWorldOutput defines the response for the world
type GetWorldOutput struct {
	World *World
}

// GetEventInput defines the request for retrieving an event
type GetEventInput struct {
	EventID string
}

// GetEventOutput defines the response for retrieving an event
type GetEventOutput struct {
	Event *wilds.EventDefinition
}

// ListEventsInput filters events. An empty Biome matches every event.
type ListEventsInput struct {
	Category wilds.EventCategory
	Biome    wilds.Biome
}

// ListEventsOutput defines the response for listing events
type ListEventsOutput struct {
	Events []*wilds.EventDefinition
}

// GetEnemyInput defines the request for retrieving an enemy template
type GetEnemyInput struct {
	EnemyID string
}

// GetEnemyOutput defines the response for retrieving an enemy template
type GetEnemyOutput struct {
	Enemy *wilds.EnemyTemplate
}

// ListEnemiesInput filters enemy templates. An empty Biome matches every template.
type ListEnemiesInput struct {
	Biome wilds.Biome
}

// ListEnemiesOutput defines the response for listing enemy templates
type ListEnemiesOutput struct {
	Enemies []*wilds.EnemyTemplate
}

// GetItemInput defines the request for retrieving an item
type GetItemInput struct {
	ItemID string
}

// GetItemOutput defines the response for retrieving an item
type GetItemOutput struct {
	Item *wilds.Item
}

// ListAmbientInput filters ambient messages
type ListAmbientInput struct {
	Biome   wilds.Biome
	Night   bool
	Weather wilds.WeatherType
}

// ListAmbientOutput defines the response for listing ambient messages
type ListAmbientOutput struct {
	Messages []*wilds.AmbientMessage
}
