package movement

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-wilds/internal/engine"
	"github.com/KirkDiggler/rpg-wilds/internal/entities/wilds"
	"github.com/KirkDiggler/rpg-wilds/internal/errors"
	"github.com/KirkDiggler/rpg-wilds/internal/orchestrators/encounter"
	"github.com/KirkDiggler/rpg-wilds/internal/orchestrators/wanderer"
	"github.com/KirkDiggler/rpg-wilds/internal/repositories/content"
)

// Time costs in minutes
const (
	BaseMoveMinutes    = 10
	ForestExtraMinutes = 10
	RainExtraMinutes   = 5
	StormExtraMinutes  = 10
	RestMinutes        = 8 * wilds.MinutesPerHour
)

// River crossing
const (
	RiverDC     = 10
	RiverDamage = 2
)

// Hazard chances in percent; each hit deals HazardDamage
const (
	NightHazardChance = 5
	StormHazardChance = 10
	RainHazardChance  = 3
	HazardDamage      = 1
)

// Trophy ids
const (
	TrophyAllBiomes = "all_biomes"
)

// StepTrophies are the step counts that award a trophy
var StepTrophies = []int{100, 500, 1000}

// TrophyBiomes must all be visited for TrophyAllBiomes
var TrophyBiomes = []wilds.Biome{
	wilds.BiomePlains,
	wilds.BiomeForest,
	wilds.BiomeWater,
	wilds.BiomeCity,
	wilds.BiomeVillage,
}

var mountainMessages = []string{
	"The mountain face is too steep to climb.",
	"Sheer rock blocks the way.",
	"There is no path over these peaks.",
}

// Config holds the dependencies for the movement orchestrator
type Config struct {
	Engine    engine.Engine
	Content   content.Repository
	Encounter encounter.Service
	Wanderer  wanderer.Service
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
	if c.Encounter == nil {
		vb.RequiredField("Encounter")
	}
	if c.Wanderer == nil {
		vb.RequiredField("Wanderer")
	}

	return vb.Build()
}

// Orchestrator implements Service
type Orchestrator struct {
	engine    engine.Engine
	content   content.Repository
	encounter encounter.Service
	wanderer  wanderer.Service
}

// New creates a new movement orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		engine:    cfg.Engine,
		content:   cfg.Content,
		encounter: cfg.Encounter,
		wanderer:  cfg.Wanderer,
	}, nil
}

var _ Service = (*Orchestrator)(nil)

// AttemptMove runs the movement pipeline for one step
func (o *Orchestrator) AttemptMove(ctx context.Context, input *AttemptMoveInput) (*AttemptMoveOutput, error) {
	if input == nil || input.Sim == nil {
		return nil, errors.InvalidArgument("simulation is required")
	}

	sim := input.Sim
	if sim.Mode != wilds.ModeExploration {
		return rejected("You cannot travel right now."), nil
	}
	if !isCardinal(input.DX, input.DY) {
		return rejected("You can only move north, south, east or west."), nil
	}

	if sim.Status.IsExitingWater {
		return o.finishRiverCrossing(sim), nil
	}

	target := sim.Position.Add(input.DX, input.DY)
	tile, ok := sim.Map.TileAt(target)
	if !ok {
		return rejected(""), nil
	}

	area, err := wilds.NewArea(sim)
	if err != nil {
		return nil, errors.Wrap(err, "failed to place agents")
	}
	if agent := area.AgentAt(target); agent != nil {
		return o.interact(ctx, sim, agent)
	}

	if tile.IsImpassable() {
		idx, err := o.engine.Pick(len(mountainMessages))
		if err != nil {
			return nil, errors.Wrap(err, "failed to pick rejection message")
		}
		return rejected(mountainMessages[idx]), nil
	}

	if tile == wilds.TileRefuge {
		if sim.VisitedRefuges.Has(target) {
			return rejected("You have already rested at this refuge. It offers nothing more."), nil
		}
		return o.enterRefuge(sim, target), nil
	}

	if tile.IsSite() && !sim.Flags.Has(wilds.SiteFlag(target)) {
		return o.triggerSite(ctx, sim, target, tile)
	}

	return o.travel(ctx, sim, target, tile)
}

func (o *Orchestrator) finishRiverCrossing(sim *wilds.SimulationContext) *AttemptMoveOutput {
	minutes := 2 * BaseMoveMinutes
	sim.Status.IsExitingWater = false
	sim.Time.Advance(minutes)

	msg := "You haul yourself out of the river, soaked to the bone."
	sim.Log(wilds.JournalMovement, msg)

	return &AttemptMoveOutput{
		Kind:         KindRiverSecondTurn,
		Message:      msg,
		MinutesSpent: minutes,
	}
}

func (o *Orchestrator) interact(ctx context.Context, sim *wilds.SimulationContext, agent *wilds.WanderingAgent) (*AttemptMoveOutput, error) {
	sim.Time.Advance(BaseMoveMinutes)

	msg := fmt.Sprintf("You cross paths with %s.", agent.Name)
	sim.Log(wilds.JournalMovement, msg)
	sim.Enqueue(wilds.Command{Type: wilds.CommandStartDialogue, TargetID: agent.DialogueID})

	if _, err := o.wanderer.Tick(ctx, &wanderer.TickInput{Sim: sim}); err != nil {
		return nil, errors.Wrap(err, "failed to advance wandering agents")
	}

	return &AttemptMoveOutput{
		Kind:         KindInteraction,
		Message:      msg,
		MinutesSpent: BaseMoveMinutes,
	}, nil
}

func (o *Orchestrator) enterRefuge(sim *wilds.SimulationContext, target wilds.Position) *AttemptMoveOutput {
	sim.Position = target
	sim.CurrentBiome = wilds.BiomeRefuge
	sim.VisitedRefuges.Add(target)

	healed := sim.Player.Heal(sim.Player.MaxHP)
	sim.Time.Advance(RestMinutes)

	msg := fmt.Sprintf("You find shelter in a refuge and sleep soundly, recovering %d HP.", healed)
	sim.Log(wilds.JournalMovement, msg)

	slog.Debug("Player rested at refuge",
		"position", target.String(),
		"healed", healed)

	return &AttemptMoveOutput{
		Kind:         KindRefuge,
		Message:      msg,
		MinutesSpent: RestMinutes,
	}
}

func (o *Orchestrator) triggerSite(ctx context.Context, sim *wilds.SimulationContext, target wilds.Position, tile wilds.Tile) (*AttemptMoveOutput, error) {
	sim.Position = target
	sim.CurrentBiome = wilds.BiomeOf(tile)
	sim.Time.Advance(BaseMoveMinutes)
	sim.Flags.Add(wilds.SiteFlag(target))

	output := &AttemptMoveOutput{
		Kind:         KindSiteTrigger,
		MinutesSpent: BaseMoveMinutes,
	}

	eventID := sim.Sites[target.Key()]
	if eventID == "" {
		output.Message = "You pause at a weathered marker, but find nothing of note."
		sim.Log(wilds.JournalMovement, output.Message)
		return output, nil
	}

	got, err := o.content.GetEvent(ctx, &content.GetEventInput{EventID: eventID})
	if err != nil {
		if !errors.IsNotFound(err) {
			return nil, errors.Wrapf(err, "failed to load site event %s", eventID)
		}
		slog.Warn("Site event missing", "event_id", eventID, "position", target.String())
		output.Message = "You pause at a weathered marker, but find nothing of note."
		sim.Log(wilds.JournalMovement, output.Message)
		return output, nil
	}

	ev := got.Event
	sim.ActiveEvent = ev
	sim.Mode = wilds.ModeEvent
	sim.Logf(wilds.JournalEvent, "Event: %s", ev.Title)
	output.Message = ev.Title
	output.Encounter = &encounter.TryTriggerOutput{
		Triggered: true,
		Kind:      encounter.KindEvent,
		Event:     ev,
	}

	return output, nil
}

func (o *Orchestrator) travel(ctx context.Context, sim *wilds.SimulationContext, target wilds.Position, tile wilds.Tile) (*AttemptMoveOutput, error) {
	output := &AttemptMoveOutput{Kind: KindMoved}
	p := sim.Player

	biome := wilds.BiomeOf(tile)
	forceBiomeEvent := false
	if biome != sim.CurrentBiome {
		output.Message = fmt.Sprintf("You enter the %s.", biome)
		sim.Log(wilds.JournalMovement, output.Message)
		sim.VisitedBiomes.Add(string(biome))
		o.checkBiomeTrophy(sim)
		forceBiomeEvent = biome == wilds.BiomeCity || biome == wilds.BiomeVillage
	}

	if tile == wilds.TileWater {
		out, err := o.engine.PerformCheck(ctx, &engine.PerformCheckInput{
			StatValue: p.Stats.Strength,
			DC:        RiverDC,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to perform river check")
		}
		output.Check = out.Result

		if out.Result.Success {
			output.Message = "You wade into the river, keeping your footing against the current."
		} else {
			output.Damage += p.TakeDamage(RiverDamage)
			output.Message = fmt.Sprintf("The current drags you under. You take %d damage.", RiverDamage)
		}
		sim.Log(wilds.JournalMovement, output.Message)
		sim.Status.IsExitingWater = true
	}

	minutes := BaseMoveMinutes
	if tile == wilds.TileForest {
		minutes += ForestExtraMinutes
	}
	switch sim.Weather.Type {
	case wilds.WeatherRain:
		minutes += RainExtraMinutes
	case wilds.WeatherStorm:
		minutes += StormExtraMinutes
	}
	sim.Time.Advance(minutes)
	output.MinutesSpent = minutes

	damage, err := o.rollHazards(sim)
	if err != nil {
		return nil, err
	}
	output.Damage += damage

	sim.Position = target
	sim.CurrentBiome = biome
	sim.Steps++
	o.checkStepTrophies(sim)

	if p.IsDead() {
		sim.Mode = wilds.ModeGameOver
		sim.Log(wilds.JournalSystem, "You collapse and do not rise again. Your journey ends here.")
		return output, nil
	}

	if tile == wilds.TileDestination {
		sim.Mode = wilds.ModeJourneyComplete
		output.Message = "You have reached your destination. The journey is complete."
		sim.Log(wilds.JournalSystem, output.Message)
		slog.Info("Journey complete",
			"steps", sim.Steps,
			"time", sim.Time.String())
		return output, nil
	}

	enc, err := o.encounter.TryTrigger(ctx, &encounter.TryTriggerInput{Sim: sim, ForceBiomeEvent: forceBiomeEvent})
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll encounter")
	}
	output.Encounter = enc

	if enc == nil || !enc.Triggered {
		amb, err := o.encounter.RollAmbient(ctx, &encounter.RollAmbientInput{Sim: sim})
		if err != nil {
			return nil, errors.Wrap(err, "failed to roll ambience")
		}
		output.Ambient = amb.Message
	}

	if _, err := o.wanderer.Tick(ctx, &wanderer.TickInput{Sim: sim}); err != nil {
		return nil, errors.Wrap(err, "failed to advance wandering agents")
	}

	return output, nil
}

// rollHazards applies the independent night, storm and rain hazards
func (o *Orchestrator) rollHazards(sim *wilds.SimulationContext) (int, error) {
	type hazard struct {
		active  bool
		chance  int
		message string
	}
	hazards := []hazard{
		{sim.Time.IsNight(), NightHazardChance, "You stumble in the dark."},
		{sim.Weather.Type == wilds.WeatherStorm, StormHazardChance, "A falling branch strikes you in the storm."},
		{sim.Weather.Type == wilds.WeatherRain, RainHazardChance, "You slip on the rain-slick ground."},
	}

	total := 0
	for _, h := range hazards {
		if !h.active {
			continue
		}
		hit, err := o.engine.Chance(h.chance)
		if err != nil {
			return 0, errors.Wrap(err, "failed to roll hazard")
		}
		if !hit {
			continue
		}
		taken := sim.Player.TakeDamage(HazardDamage)
		total += taken
		sim.Logf(wilds.JournalMovement, "%s You take %d damage.", h.message, taken)
	}
	return total, nil
}

func (o *Orchestrator) checkBiomeTrophy(sim *wilds.SimulationContext) {
	if sim.Trophies.Has(TrophyAllBiomes) {
		return
	}
	for _, b := range TrophyBiomes {
		if !sim.VisitedBiomes.Has(string(b)) {
			return
		}
	}
	sim.Trophies.Add(TrophyAllBiomes)
	sim.Log(wilds.JournalTrophy, "Trophy earned: Wanderer of Every Land.")
}

func (o *Orchestrator) checkStepTrophies(sim *wilds.SimulationContext) {
	for _, n := range StepTrophies {
		if sim.Steps != n {
			continue
		}
		id := fmt.Sprintf("steps_%d", n)
		if sim.Trophies.Add(id) {
			sim.Logf(wilds.JournalTrophy, "Trophy earned: %d steps taken.", n)
		}
	}
}

func isCardinal(dx, dy int) bool {
	return (dx == 0 && (dy == 1 || dy == -1)) || (dy == 0 && (dx == 1 || dx == -1))
}

func rejected(msg string) *AttemptMoveOutput {
	return &AttemptMoveOutput{Kind: KindRejected, Message: msg}
}
