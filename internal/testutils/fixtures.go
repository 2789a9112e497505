package testutils

import (
	"github.com/KirkDiggler/rpg-wilds/internal/entities/wilds"
	"github.com/KirkDiggler/rpg-wilds/internal/repositories/content"
)

// TestPlayerName is the default player name for fixtures
const TestPlayerName = "Ash"

// NewTestPlayer creates a level 1 player with STR 14 and DEX 12
func NewTestPlayer() *wilds.Player {
	p := &wilds.Player{
		Name:  TestPlayerName,
		HP:    20,
		MaxHP: 20,
		AC:    12,
		Level: 1,
		Stats: wilds.Stats{
			Strength:     14,
			Dexterity:    12,
			Constitution: 13,
			Intelligence: 10,
			Wisdom:       12,
			Charisma:     10,
		},
		Weapon: wilds.Weapon{Name: "Short Sword", Damage: "1d6", Class: wilds.WeaponClassMelee},
	}
	p.EnsureCollections()
	return p
}

// NewTestSimulation creates a context on the given rows with the player at start,
// daytime clear weather and no encounter history
func NewTestSimulation(rows []string, start wilds.Position) *wilds.SimulationContext {
	m, err := wilds.NewMap(rows)
	if err != nil {
		panic(err)
	}

	sim := wilds.NewSimulationContext(m, NewTestPlayer(), start)
	sim.Time = wilds.NewGameTime(1, 8, 0)
	sim.Weather = wilds.Weather{Type: wilds.WeatherClear, ChangedAt: sim.Time.TotalMinutes()}
	return sim
}

// NewTestEnemyTemplate creates a template with the given hp and AC 10
func NewTestEnemyTemplate(id string, hp int) wilds.EnemyTemplate {
	return wilds.EnemyTemplate{
		ID:          id,
		Name:        "Test " + id,
		HP:          hp,
		AC:          10,
		Damage:      "1d4",
		AttackBonus: 2,
		XP:          25,
	}
}

// NewTestEvent creates a single-choice event with a direct outcome
func NewTestEvent(id string, category wilds.EventCategory, unique bool, biomes ...string) wilds.EventDefinition {
	return wilds.EventDefinition{
		ID:       id,
		Title:    "Test " + id,
		Category: category,
		Biomes:   biomes,
		IsUnique: unique,
		Choices: []wilds.Choice{
			{
				Text: "Continue",
				Outcomes: []wilds.Outcome{
					{Type: wilds.OutcomeDirect},
				},
			},
		},
	}
}

// NewTestContent wraps tables in an in-memory content repository
func NewTestContent(tables *content.Tables) *content.InMemoryRepository {
	return content.NewInMemory(tables)
}
