package game

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-wilds/internal/entities/wilds"
	"github.com/KirkDiggler/rpg-wilds/internal/errors"
	"github.com/KirkDiggler/rpg-wilds/internal/orchestrators/combat"
	"github.com/KirkDiggler/rpg-wilds/internal/orchestrators/event"
	"github.com/KirkDiggler/rpg-wilds/internal/orchestrators/movement"
	"github.com/KirkDiggler/rpg-wilds/internal/orchestrators/weather"
	"github.com/KirkDiggler/rpg-wilds/internal/repositories/content"
	"github.com/KirkDiggler/rpg-wilds/internal/repositories/savegame"
	"github.com/KirkDiggler/rpg-wilds/internal/services/progression"
)

const (
	// DefaultPlayerName is used when a new game is started without a name
	DefaultPlayerName = "Wanderer"

	startHour = 8
)

var modeRejections = map[wilds.Mode]string{
	wilds.ModeEvent:           "Something demands your attention first.",
	wilds.ModeCombat:          "You are in the middle of a fight.",
	wilds.ModeGameOver:        "Your journey has ended.",
	wilds.ModeJourneyComplete: "You have already reached your destination.",
}

// Config holds the dependencies for the game orchestrator
type Config struct {
	Content     content.Repository
	Movement    movement.Service
	Event       event.Service
	Combat      combat.Service
	Weather     weather.Service
	Progression progression.Service
	Saves       savegame.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Content == nil {
		vb.RequiredField("Content")
	}
	if c.Movement == nil {
		vb.RequiredField("Movement")
	}
	if c.Event == nil {
		vb.RequiredField("Event")
	}
	if c.Combat == nil {
		vb.RequiredField("Combat")
	}
	if c.Weather == nil {
		vb.RequiredField("Weather")
	}
	if c.Progression == nil {
		vb.RequiredField("Progression")
	}
	if c.Saves == nil {
		vb.RequiredField("Saves")
	}

	return vb.Build()
}

// Orchestrator implements Service
type Orchestrator struct {
	content     content.Repository
	movement    movement.Service
	event       event.Service
	combat      combat.Service
	weather     weather.Service
	progression progression.Service
	saves       savegame.Repository
}

// New creates a new game orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		content:     cfg.Content,
		movement:    cfg.Movement,
		event:       cfg.Event,
		combat:      cfg.Combat,
		weather:     cfg.Weather,
		progression: cfg.Progression,
		saves:       cfg.Saves,
	}, nil
}

var _ Service = (*Orchestrator)(nil)

// NewGame builds a fresh context from the world content
func (o *Orchestrator) NewGame(ctx context.Context, input *NewGameInput) (*NewGameOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	worldOut, err := o.content.GetWorld(ctx, &content.GetWorldInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load world")
	}
	world := worldOut.World

	m, err := wilds.NewMap(world.Map)
	if err != nil {
		return nil, errors.Wrap(err, "invalid world map")
	}
	start, ok := m.Find(wilds.TileStart)
	if !ok {
		return nil, errors.FailedPrecondition("world map has no start tile")
	}

	name := strings.TrimSpace(input.PlayerName)
	if name == "" {
		name = DefaultPlayerName
	}
	player := &wilds.Player{
		Name:   name,
		HP:     world.Player.HP,
		MaxHP:  world.Player.HP,
		AC:     world.Player.AC,
		Level:  1,
		Stats:  world.Player.Stats,
		Weapon: world.Player.Weapon,
	}

	sim := wilds.NewSimulationContext(m, player, start)
	sim.Seed = input.Seed
	sim.Time = wilds.NewGameTime(1, startHour, 0)
	sim.Weather = wilds.Weather{Type: wilds.WeatherClear, ChangedAt: sim.Time.TotalMinutes()}

	for _, site := range world.Sites {
		sim.Sites[site.Position().Key()] = site.EventID
	}
	for i := range world.Agents {
		agent := world.Agents[i]
		if agent.TurnsUntilMove == 0 {
			agent.TurnsUntilMove = agent.MoveInterval
		}
		sim.Agents = append(sim.Agents, &agent)
	}

	sim.Logf(wilds.JournalSystem, "%s sets out into %s.", name, worldName(world))
	slog.Info("new game started", "player", name, "seed", input.Seed, "start", start.String())

	return &NewGameOutput{Sim: sim}, nil
}

func worldName(w *content.World) string {
	if w.Name == "" {
		return "the wilds"
	}
	return w.Name
}

// Move runs one exploration turn: the step itself, the weather and any follow-ups
func (o *Orchestrator) Move(ctx context.Context, input *MoveInput) (*MoveOutput, error) {
	if input == nil || input.Sim == nil {
		return nil, errors.InvalidArgument("simulation is required")
	}
	sim := input.Sim

	if sim.Mode != wilds.ModeExploration {
		return &MoveOutput{Rejected: true, Message: modeRejections[sim.Mode]}, nil
	}

	moveOut, err := o.movement.AttemptMove(ctx, &movement.AttemptMoveInput{Sim: sim, DX: input.DX, DY: input.DY})
	if err != nil {
		return nil, errors.Wrap(err, "failed to move")
	}
	out := &MoveOutput{Move: moveOut, Message: moveOut.Message}
	if moveOut.Rejected() {
		out.Rejected = true
		return out, nil
	}

	weatherOut, err := o.weather.Update(ctx, &weather.UpdateInput{Sim: sim})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update weather")
	}
	out.Weather = weatherOut

	followups, err := o.drainCommands(ctx, sim)
	if err != nil {
		return nil, err
	}
	out.Followups = followups

	return out, nil
}

// ChooseOption resolves a choice of the active event and runs its follow-ups
func (o *Orchestrator) ChooseOption(ctx context.Context, input *ChooseOptionInput) (*ChooseOptionOutput, error) {
	if input == nil || input.Sim == nil {
		return nil, errors.InvalidArgument("simulation is required")
	}

	result, err := o.event.ResolveChoice(ctx, &event.ResolveChoiceInput{Sim: input.Sim, ChoiceIndex: input.ChoiceIndex})
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve choice")
	}
	out := &ChooseOptionOutput{Result: result}
	if result.Rejected {
		return out, nil
	}

	followups, err := o.drainCommands(ctx, input.Sim)
	if err != nil {
		return nil, err
	}
	out.Followups = followups

	return out, nil
}

// DismissEvent closes the active event without choosing
func (o *Orchestrator) DismissEvent(ctx context.Context, input *DismissEventInput) (*DismissEventOutput, error) {
	if input == nil || input.Sim == nil {
		return nil, errors.InvalidArgument("simulation is required")
	}

	res, err := o.event.Dismiss(ctx, &event.DismissInput{Sim: input.Sim})
	if err != nil {
		return nil, errors.Wrap(err, "failed to dismiss event")
	}
	return &DismissEventOutput{Dismissed: res.Dismissed, EventID: res.EventID}, nil
}

// CombatAction runs the player's action, then the enemy phase unless the fight
// ended, then settles the fight once it is over
func (o *Orchestrator) CombatAction(ctx context.Context, input *CombatActionInput) (*CombatActionOutput, error) {
	if input == nil || input.Sim == nil {
		return nil, errors.InvalidArgument("simulation is required")
	}
	sim := input.Sim

	if sim.Mode != wilds.ModeCombat || sim.Combat == nil {
		return &CombatActionOutput{Rejected: true, Message: "There is nothing to fight."}, nil
	}

	out := &CombatActionOutput{}
	switch input.Action {
	case ActionAttack:
		res, err := o.combat.Attack(ctx, &combat.AttackInput{Sim: sim, TargetIndex: input.TargetIndex})
		if err != nil {
			return nil, errors.Wrap(err, "failed to attack")
		}
		out.Attack = res
		out.Rejected, out.Message = res.Rejected, res.Message
	case ActionDefend:
		res, err := o.combat.Defend(ctx, &combat.DefendInput{Sim: sim})
		if err != nil {
			return nil, errors.Wrap(err, "failed to defend")
		}
		out.Rejected, out.Message = res.Rejected, res.Message
	case ActionFlee:
		res, err := o.combat.Flee(ctx, &combat.FleeInput{Sim: sim})
		if err != nil {
			return nil, errors.Wrap(err, "failed to flee")
		}
		out.Rejected, out.Message = res.Rejected, res.Message
	case ActionInventory:
		res, err := o.combat.UseInventory(ctx, &combat.UseInventoryInput{Sim: sim, ItemID: input.ItemID})
		if err != nil {
			return nil, errors.Wrap(err, "failed to use item")
		}
		out.Rejected, out.Message = res.Rejected, res.Message
	default:
		return &CombatActionOutput{Rejected: true, Message: "You hesitate, unsure what to do."}, nil
	}
	if out.Rejected {
		return out, nil
	}

	if !sim.Combat.IsOver() {
		enemyOut, err := o.combat.EnemyTurn(ctx, &combat.EnemyTurnInput{Sim: sim})
		if err != nil {
			return nil, errors.Wrap(err, "failed to run enemy turn")
		}
		out.EnemyTurn = enemyOut
	}

	if sim.Combat.IsOver() {
		finish, err := o.combat.Finish(ctx, &combat.FinishInput{Sim: sim})
		if err != nil {
			return nil, errors.Wrap(err, "failed to finish combat")
		}
		out.Finish = finish
	}

	return out, nil
}

// drainCommands executes the follow-ups queued during the turn, in order.
// Commands that cannot run are logged and skipped; once the game is over
// the rest of the queue is dropped.
func (o *Orchestrator) drainCommands(ctx context.Context, sim *wilds.SimulationContext) ([]string, error) {
	var messages []string

	for _, cmd := range sim.DrainCommands() {
		if sim.Mode == wilds.ModeGameOver {
			slog.Debug("dropping command after game over", "type", string(cmd.Type))
			continue
		}

		switch cmd.Type {
		case wilds.CommandStartCombat:
			msg, err := o.startCombat(ctx, sim, cmd)
			if err != nil {
				return nil, err
			}
			if msg != "" {
				messages = append(messages, msg)
			}

		case wilds.CommandStartDialogue:
			res, err := o.progression.StartDialogue(ctx, &progression.StartDialogueInput{
				Player:     sim.Player,
				DialogueID: cmd.TargetID,
			})
			if err != nil {
				if errors.IsInvalidArgument(err) {
					slog.Warn("skipping dialogue command", "target_id", cmd.TargetID, "error", err)
					continue
				}
				return nil, errors.Wrap(err, "failed to start dialogue")
			}
			sim.Log(wilds.JournalEvent, res.Message)
			messages = append(messages, res.Message)

		case wilds.CommandStartTrading:
			res, err := o.progression.StartTrading(ctx, &progression.StartTradingInput{
				Player:     sim.Player,
				MerchantID: cmd.TargetID,
			})
			if err != nil {
				if errors.IsInvalidArgument(err) {
					slog.Warn("skipping trading command", "target_id", cmd.TargetID, "error", err)
					continue
				}
				return nil, errors.Wrap(err, "failed to start trading")
			}
			sim.Log(wilds.JournalEvent, res.Message)
			messages = append(messages, res.Message)

		default:
			slog.Warn("unknown command type", "type", string(cmd.Type))
		}
	}

	return messages, nil
}

func (o *Orchestrator) startCombat(ctx context.Context, sim *wilds.SimulationContext, cmd wilds.Command) (string, error) {
	if len(cmd.EnemyIDs) == 0 {
		slog.Warn("combat command without enemies", "target_id", cmd.TargetID)
		return "", nil
	}

	encounterID := "event"
	if cmd.TargetID != "" {
		encounterID = "event:" + cmd.TargetID
	}

	res, err := o.combat.Initiate(ctx, &combat.InitiateInput{
		Sim:       sim,
		Encounter: wilds.CombatEncounter{ID: encounterID, EnemyIDs: cmd.EnemyIDs},
	})
	if err != nil {
		if errors.IsNotFound(err) || errors.IsFailedPrecondition(err) {
			slog.Warn("combat command could not start", "encounter_id", encounterID, "error", err)
			return "", nil
		}
		return "", errors.Wrap(err, "failed to start combat")
	}

	names := make([]string, 0, len(res.Combat.Enemies))
	for _, e := range res.Combat.Enemies {
		names = append(names, e.Name)
	}
	return "You are attacked: " + strings.Join(names, ", ") + ".", nil
}

// Save persists the context; an empty SaveID creates a new save
func (o *Orchestrator) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil || input.Sim == nil {
		return nil, errors.InvalidArgument("simulation is required")
	}

	res, err := o.saves.Save(ctx, &savegame.SaveInput{ID: input.SaveID, Sim: input.Sim})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save game")
	}
	return &SaveOutput{SaveID: res.Record.ID}, nil
}

// Load restores a saved context
func (o *Orchestrator) Load(ctx context.Context, input *LoadInput) (*LoadOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("saveID", input.SaveID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	res, err := o.saves.Get(ctx, &savegame.GetInput{ID: input.SaveID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load game").WithMeta("save_id", input.SaveID)
	}

	slog.Info("game loaded", "save_id", input.SaveID, "day", res.Record.Sim.Time.Day)
	return &LoadOutput{Sim: res.Record.Sim}, nil
}

// ListSaves returns save summaries, newest first
func (o *Orchestrator) ListSaves(ctx context.Context, input *ListSavesInput) (*ListSavesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	res, err := o.saves.List(ctx, &savegame.ListInput{Limit: input.Limit})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list saves")
	}
	return &ListSavesOutput{Saves: res.Saves}, nil
}
