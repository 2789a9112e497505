package content

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-wilds/internal/entities/wilds"
	"github.com/KirkDiggler/rpg-wilds/internal/errors"
)

// InMemoryRepository implements Repository over loaded tables
type InMemoryRepository struct {
	mu      sync.RWMutex
	tables  *Tables
	events  map[string]int
	enemies map[string]int
	items   map[string]int
}

var _ Repository = (*InMemoryRepository)(nil)

// NewInMemory indexes the tables. The tables must not be mutated afterwards.
func NewInMemory(tables *Tables) *InMemoryRepository {
	if tables == nil {
		tables = &Tables{}
	}

	r := &InMemoryRepository{
		tables:  tables,
		events:  make(map[string]int, len(tables.Events)),
		enemies: make(map[string]int, len(tables.Enemies)),
		items:   make(map[string]int, len(tables.Items)),
	}
	for i, e := range tables.Events {
		r.events[e.ID] = i
	}
	for i, e := range tables.Enemies {
		r.enemies[e.ID] = i
	}
	for i, it := range tables.Items {
		r.items[it.ID] = i
	}
	return r
}

// Tables returns the underlying content set
func (r *InMemoryRepository) Tables() *Tables {
	return r.tables
}

// GetWorld returns the map, starting player and agents
func (r *InMemoryRepository) GetWorld(_ context.Context, input *GetWorldInput) (*GetWorldOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.tables.World.Map) == 0 {
		return nil, errors.NotFound("world not found")
	}

	// Agents are copied since a new game mutates them
	world := r.tables.World
	world.Agents = append([]wilds.WanderingAgent(nil), r.tables.World.Agents...)

	return &GetWorldOutput{World: &world}, nil
}

// GetEvent retrieves an event definition by ID
func (r *InMemoryRepository) GetEvent(_ context.Context, input *GetEventInput) (*GetEventOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.EventID == "" {
		return nil, errors.InvalidArgument("event ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.events[input.EventID]
	if !ok {
		return nil, errors.NotFound("event not found").WithMeta("event_id", input.EventID)
	}

	event := r.tables.Events[idx]
	return &GetEventOutput{Event: &event}, nil
}

// ListEvents returns events of a category valid in a biome
func (r *InMemoryRepository) ListEvents(_ context.Context, input *ListEventsInput) (*ListEventsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var events []*wilds.EventDefinition
	for i := range r.tables.Events {
		e := r.tables.Events[i]
		if input.Category != "" && e.EffectiveCategory() != input.Category {
			continue
		}
		if input.Biome != "" && !e.ValidIn(input.Biome) {
			continue
		}
		events = append(events, &e)
	}

	return &ListEventsOutput{Events: events}, nil
}

// GetEnemy retrieves an enemy template by ID
func (r *InMemoryRepository) GetEnemy(_ context.Context, input *GetEnemyInput) (*GetEnemyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.EnemyID == "" {
		return nil, errors.InvalidArgument("enemy ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.enemies[input.EnemyID]
	if !ok {
		return nil, errors.NotFound("enemy not found").WithMeta("enemy_id", input.EnemyID)
	}

	enemy := r.tables.Enemies[idx]
	return &GetEnemyOutput{Enemy: &enemy}, nil
}

// ListEnemies returns enemy templates valid in a biome
func (r *InMemoryRepository) ListEnemies(_ context.Context, input *ListEnemiesInput) (*ListEnemiesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var enemies []*wilds.EnemyTemplate
	for i := range r.tables.Enemies {
		e := r.tables.Enemies[i]
		if input.Biome != "" && !e.ValidIn(input.Biome) {
			continue
		}
		enemies = append(enemies, &e)
	}

	return &ListEnemiesOutput{Enemies: enemies}, nil
}

// GetItem retrieves an item by ID
func (r *InMemoryRepository) GetItem(_ context.Context, input *GetItemInput) (*GetItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ItemID == "" {
		return nil, errors.InvalidArgument("item ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.items[input.ItemID]
	if !ok {
		return nil, errors.NotFound("item not found").WithMeta("item_id", input.ItemID)
	}

	item := r.tables.Items[idx]
	return &GetItemOutput{Item: &item}, nil
}

// ListAmbient returns ambient messages matching biome, time of day and weather
func (r *InMemoryRepository) ListAmbient(_ context.Context, input *ListAmbientInput) (*ListAmbientOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var messages []*wilds.AmbientMessage
	for i := range r.tables.Ambient {
		m := r.tables.Ambient[i]
		if m.Matches(input.Biome, input.Night, input.Weather) {
			messages = append(messages, &m)
		}
	}

	return &ListAmbientOutput{Messages: messages}, nil
}
