// Package encounter decides when events, combat or ambient flavor interrupt exploration
package encounter

//go:generate mockgen -destination=mock/mock_service.go -package=encountermock github.com/KirkDiggler/rpg-wilds/internal/orchestrators/encounter Service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-wilds/internal/engine"
	"github.com/KirkDiggler/rpg-wilds/internal/entities/wilds"
	"github.com/KirkDiggler/rpg-wilds/internal/errors"
	"github.com/KirkDiggler/rpg-wilds/internal/orchestrators/combat"
	"github.com/KirkDiggler/rpg-wilds/internal/repositories/content"
)

// Tuned probabilities, in percent
const (
	EasterEggChance = 7
	EncounterChance = 20
	CombatChance    = 35
	AmbientChance   = 10
)

// Cooldowns between encounters, in in-game minutes
const (
	PlainsCooldownMinutes  = 60
	DefaultCooldownMinutes = 30
)

// Service defines the interface for encounter selection
type Service interface {
	// TryTrigger may open an event or start combat for the current tile
	TryTrigger(ctx context.Context, input *TryTriggerInput) (*TryTriggerOutput, error)

	// RollAmbient may append an ambient line to the journal
	RollAmbient(ctx context.Context, input *RollAmbientInput) (*RollAmbientOutput, error)
}

// Config holds the dependencies for the encounter orchestrator
type Config struct {
	Engine  engine.Engine
	Content content.Repository
	Combat  combat.Service
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Content == nil {
		vb.RequiredField("Content")
	}
	if c.Combat == nil {
		vb.RequiredField("Combat")
	}

	return vb.Build()
}

type orchestrator struct {
	engine  engine.Engine
	content content.Repository
	combat  combat.Service
}

// NewOrchestrator creates a new encounter orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		engine:  cfg.Engine,
		content: cfg.Content,
		combat:  cfg.Combat,
	}, nil
}

// CooldownFor returns the minimum minutes between encounters in a biome
func CooldownFor(biome wilds.Biome) int {
	if biome == wilds.BiomePlains {
		return PlainsCooldownMinutes
	}
	return DefaultCooldownMinutes
}

// IsSafeBiome reports whether combat can never start in the biome
func IsSafeBiome(biome wilds.Biome) bool {
	return biome == wilds.BiomeStart || biome == wilds.BiomeRefuge
}

// TryTrigger runs the encounter priority chain for the player's current biome
func (o *orchestrator) TryTrigger(ctx context.Context, input *TryTriggerInput) (*TryTriggerOutput, error) {
	if input == nil || input.Sim == nil {
		return nil, errors.InvalidArgument("simulation is required")
	}

	sim := input.Sim
	if input.ForceBiomeEvent {
		return o.forcedBiomeEvent(ctx, sim)
	}

	if since := sim.MinutesSinceEncounter(); since >= 0 && since < CooldownFor(sim.CurrentBiome) {
		return nothing(ReasonCooldown), nil
	}

	egg, err := o.engine.Chance(EasterEggChance)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll easter egg chance")
	}
	if egg {
		out, err := o.easterEgg(ctx, sim)
		if err != nil || out != nil {
			return out, err
		}
	}

	hit, err := o.engine.Chance(EncounterChance)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll encounter chance")
	}
	if !hit {
		return nothing(ReasonQuiet), nil
	}

	fight, err := o.engine.Chance(CombatChance)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll combat chance")
	}
	if fight {
		return o.startCombat(ctx, sim)
	}

	return o.narrative(ctx, sim, true)
}

func (o *orchestrator) forcedBiomeEvent(ctx context.Context, sim *wilds.SimulationContext) (*TryTriggerOutput, error) {
	pool, err := o.listEvents(ctx, wilds.EventCategoryBiome, sim.CurrentBiome)
	if err != nil {
		return nil, err
	}

	event, err := o.pickNarrative(sim, pool)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return o.narrative(ctx, sim, false)
	}

	return o.openEvent(sim, event), nil
}

func (o *orchestrator) easterEgg(ctx context.Context, sim *wilds.SimulationContext) (*TryTriggerOutput, error) {
	pool, err := o.listEvents(ctx, wilds.EventCategoryEasterEgg, sim.CurrentBiome)
	if err != nil {
		return nil, err
	}

	unseen := make([]*wilds.EventDefinition, 0, len(pool))
	for _, e := range pool {
		if !sim.History.Has(e.ID) {
			unseen = append(unseen, e)
		}
	}
	if len(unseen) == 0 {
		return nil, nil
	}

	idx, err := o.engine.Pick(len(unseen))
	if err != nil {
		return nil, errors.Wrap(err, "failed to pick easter egg")
	}

	event := unseen[idx]
	sim.History.Record(event.ID, true)
	return o.openEvent(sim, event), nil
}

func (o *orchestrator) startCombat(ctx context.Context, sim *wilds.SimulationContext) (*TryTriggerOutput, error) {
	if IsSafeBiome(sim.CurrentBiome) {
		return nothing(ReasonSafeBiome), nil
	}

	enemies, err := o.content.ListEnemies(ctx, &content.ListEnemiesInput{Biome: sim.CurrentBiome})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list enemies")
	}
	if len(enemies.Enemies) == 0 {
		slog.Warn("No enemies for biome", "biome", sim.CurrentBiome)
		return nothing(ReasonNoEnemies), nil
	}

	idx, err := o.engine.Pick(len(enemies.Enemies))
	if err != nil {
		return nil, errors.Wrap(err, "failed to pick enemy")
	}
	tmpl := enemies.Enemies[idx]

	started, err := o.combat.Initiate(ctx, &combat.InitiateInput{
		Sim: sim,
		Encounter: wilds.CombatEncounter{
			ID:       fmt.Sprintf("%s:%s", sim.CurrentBiome, tmpl.ID),
			EnemyIDs: []string{tmpl.ID},
		},
	})
	if err != nil {
		if errors.IsNotFound(err) {
			slog.Warn("Combat could not start", "enemy_id", tmpl.ID, "error", err)
			return nothing(ReasonNoEnemies), nil
		}
		return nil, errors.Wrap(err, "failed to start combat")
	}

	sim.LastEncounterAt = sim.Time.TotalMinutes()
	slog.Debug("Encounter started combat",
		"biome", sim.CurrentBiome,
		"enemy_id", tmpl.ID,
		"time", sim.Time.String())

	return &TryTriggerOutput{
		Triggered: true,
		Kind:      KindCombat,
		Combat:    started.Combat,
	}, nil
}

// narrative opens a lore event when one is due, otherwise a standard event
func (o *orchestrator) narrative(ctx context.Context, sim *wilds.SimulationContext, allowLore bool) (*TryTriggerOutput, error) {
	if allowLore && sim.Time.Day > sim.LastLoreEventDay {
		lore, err := o.listEvents(ctx, wilds.EventCategoryLore, sim.CurrentBiome)
		if err != nil {
			return nil, err
		}

		unseen := make([]*wilds.EventDefinition, 0, len(lore))
		for _, e := range lore {
			if !sim.History.Has(e.ID) {
				unseen = append(unseen, e)
			}
		}
		if len(unseen) > 0 {
			idx, err := o.engine.Pick(len(unseen))
			if err != nil {
				return nil, errors.Wrap(err, "failed to pick lore event")
			}
			sim.LastLoreEventDay = sim.Time.Day
			return o.openEvent(sim, unseen[idx]), nil
		}
	}

	pool, err := o.listEvents(ctx, wilds.EventCategoryStandard, sim.CurrentBiome)
	if err != nil {
		return nil, err
	}

	event, err := o.pickNarrative(sim, pool)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nothing(ReasonNoEvents), nil
	}

	return o.openEvent(sim, event), nil
}

// pickNarrative prefers unseen unique events over repeatable ones.
// Unique events already in history are never candidates.
func (o *orchestrator) pickNarrative(sim *wilds.SimulationContext, pool []*wilds.EventDefinition) (*wilds.EventDefinition, error) {
	var uniques, repeatables []*wilds.EventDefinition
	for _, e := range pool {
		switch {
		case !e.IsUnique:
			repeatables = append(repeatables, e)
		case !sim.History.Has(e.ID):
			uniques = append(uniques, e)
		}
	}

	candidates := uniques
	if len(candidates) == 0 {
		candidates = repeatables
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	idx, err := o.engine.Pick(len(candidates))
	if err != nil {
		return nil, errors.Wrap(err, "failed to pick event")
	}
	return candidates[idx], nil
}

func (o *orchestrator) openEvent(sim *wilds.SimulationContext, event *wilds.EventDefinition) *TryTriggerOutput {
	sim.ActiveEvent = event
	sim.Mode = wilds.ModeEvent
	sim.LastEncounterAt = sim.Time.TotalMinutes()
	sim.Logf(wilds.JournalEvent, "Event: %s", event.Title)

	slog.Debug("Encounter opened event",
		"event_id", event.ID,
		"category", event.EffectiveCategory(),
		"biome", sim.CurrentBiome)

	return &TryTriggerOutput{
		Triggered: true,
		Kind:      KindEvent,
		Event:     event,
	}
}

func (o *orchestrator) listEvents(ctx context.Context, category wilds.EventCategory, biome wilds.Biome) ([]*wilds.EventDefinition, error) {
	out, err := o.content.ListEvents(ctx, &content.ListEventsInput{Category: category, Biome: biome})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s events", category)
	}
	return out.Events, nil
}

// RollAmbient has a small chance to log a flavor line matching biome, time of day and weather
func (o *orchestrator) RollAmbient(ctx context.Context, input *RollAmbientInput) (*RollAmbientOutput, error) {
	if input == nil || input.Sim == nil {
		return nil, errors.InvalidArgument("simulation is required")
	}

	sim := input.Sim
	hit, err := o.engine.Chance(AmbientChance)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll ambient chance")
	}
	if !hit {
		return &RollAmbientOutput{Reason: ReasonQuiet}, nil
	}

	out, err := o.content.ListAmbient(ctx, &content.ListAmbientInput{
		Biome:   sim.CurrentBiome,
		Night:   sim.Time.IsNight(),
		Weather: sim.Weather.Type,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ambient messages")
	}
	if len(out.Messages) == 0 {
		return &RollAmbientOutput{Reason: ReasonNoAmbience}, nil
	}

	idx, err := o.engine.Pick(len(out.Messages))
	if err != nil {
		return nil, errors.Wrap(err, "failed to pick ambient message")
	}

	text := out.Messages[idx].Text
	sim.Log(wilds.JournalAmbient, text)
	return &RollAmbientOutput{Message: text}, nil
}

func nothing(reason string) *TryTriggerOutput {
	return &TryTriggerOutput{Kind: KindNone, Reason: reason}
}
