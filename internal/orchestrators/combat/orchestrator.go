package combat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-wilds/internal/engine"
	"github.com/KirkDiggler/rpg-wilds/internal/entities/wilds"
	"github.com/KirkDiggler/rpg-wilds/internal/errors"
	"github.com/KirkDiggler/rpg-wilds/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-wilds/internal/repositories/content"
	"github.com/KirkDiggler/rpg-wilds/internal/services/progression"
)

const (
	actorPlayer = "player"
	actorSystem = "system"

	unknownItemName = "something of value"
)

// Config holds the dependencies for the combat orchestrator
type Config struct {
	Engine      engine.Engine
	Content     content.Repository
	Progression progression.Service
	IDGenerator idgen.Generator
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
	if c.Progression == nil {
		vb.RequiredField("Progression")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// Orchestrator implements Service
type Orchestrator struct {
	engine      engine.Engine
	content     content.Repository
	progression progression.Service
	idGen       idgen.Generator
}

// New creates a new combat orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		engine:      cfg.Engine,
		content:     cfg.Content,
		progression: cfg.Progression,
		idGen:       cfg.IDGenerator,
	}, nil
}

var _ Service = (*Orchestrator)(nil)

// defaultStatValue stands in for an attack stat the player does not have
const defaultStatValue = 10

// Initiate snapshots the player and spawns enemies from their templates
func (o *Orchestrator) Initiate(ctx context.Context, input *InitiateInput) (*InitiateOutput, error) {
	if input == nil || input.Sim == nil {
		return nil, errors.InvalidArgument("simulation is required")
	}

	sim := input.Sim
	if sim.Player == nil || sim.Player.IsDead() {
		return nil, errors.FailedPrecondition("a dead player cannot enter combat")
	}
	if sim.Combat != nil && !sim.Combat.IsOver() {
		return nil, errors.FailedPrecondition("combat already in progress").
			WithMeta("combat_id", sim.Combat.ID)
	}

	enemies := make([]*wilds.EnemyCombatState, 0, len(input.Encounter.EnemyIDs))
	for _, templateID := range input.Encounter.EnemyIDs {
		out, err := o.content.GetEnemy(ctx, &content.GetEnemyInput{EnemyID: templateID})
		if err != nil {
			if errors.IsNotFound(err) || errors.IsInvalidArgument(err) {
				slog.Warn("Skipping unknown enemy template",
					"enemy_id", templateID,
					"error", err)
				continue
			}
			return nil, errors.Wrapf(err, "failed to load enemy %s", templateID)
		}

		id := fmt.Sprintf("%s-%d", templateID, len(enemies)+1)
		enemies = append(enemies, wilds.NewEnemyCombatState(id, out.Enemy))
	}

	if len(enemies) == 0 {
		return nil, errors.NotFound("no valid enemies for encounter").
			WithMeta("encounter_id", input.Encounter.ID)
	}

	state := &wilds.CombatState{
		ID:        o.idGen.Generate(),
		Phase:     wilds.PhasePlayerTurn,
		Outcome:   wilds.OutcomeOngoing,
		Player:    wilds.SnapshotPlayer(sim.Player),
		Enemies:   enemies,
		Encounter: input.Encounter,
		Round:     1,
	}

	names := make([]string, len(enemies))
	for i, e := range enemies {
		names[i] = e.Name
	}
	state.AddLog(actorSystem, "Combat begins against "+strings.Join(names, ", ")+".")

	sim.Combat = state
	sim.Mode = wilds.ModeCombat
	sim.Logf(wilds.JournalCombat, "You are attacked: %s!", strings.Join(names, ", "))

	slog.Info("Combat initiated",
		"combat_id", state.ID,
		"encounter_id", input.Encounter.ID,
		"enemy_count", len(enemies))

	return &InitiateOutput{Combat: state}, nil
}

// Attack resolves the player's weapon attack against one enemy
func (o *Orchestrator) Attack(ctx context.Context, input *AttackInput) (*AttackOutput, error) {
	state, msg := playerTurnState(input.simulation())
	if state == nil {
		return &AttackOutput{Rejected: true, Message: msg}, nil
	}

	if input.TargetIndex < 0 || input.TargetIndex >= len(state.Enemies) {
		return &AttackOutput{Rejected: true, Message: "There is no such target."}, nil
	}
	target := state.Enemies[input.TargetIndex]
	if !target.IsAlive() {
		return &AttackOutput{Rejected: true, Message: target.Name + " is already dead."}, nil
	}

	weapon := state.Player.Weapon
	stat, ok := state.Player.Stats.Value(weapon.Class.AttackAbility())
	if !ok {
		slog.Warn("Player has no attack stat, using default",
			"stat", weapon.Class.AttackAbility(),
			"weapon", weapon.Name)
		stat = defaultStatValue
	}
	attack, err := o.engine.RollAttack(ctx, &engine.RollAttackInput{
		Modifier: o.engine.CalculateAbilityModifier(stat),
		TargetAC: target.AC,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll attack")
	}

	output := &AttackOutput{
		Roll:    attack.Roll,
		Total:   attack.Total,
		Hit:     attack.Hit,
		Outcome: wilds.OutcomeOngoing,
	}

	if attack.Hit {
		damage, err := o.engine.RollDamage(ctx, &engine.RollDamageInput{Notation: weapon.Damage})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll damage for %s", weapon.Name)
		}
		output.Damage = damage.Total
		output.Killed = target.TakeDamage(damage.Total)

		output.Message = fmt.Sprintf("You hit %s with your %s for %d damage (%d vs AC %d).",
			target.Name, weapon.Name, damage.Total, attack.Total, target.AC)
		if output.Killed {
			output.Message += " " + target.Name + " falls."
		}
	} else {
		output.Message = fmt.Sprintf("You miss %s (%d vs AC %d).", target.Name, attack.Total, target.AC)
	}
	state.AddLog(actorPlayer, output.Message)

	if state.AllEnemiesDead() {
		state.Outcome = wilds.OutcomeVictory
		state.AddLog(actorSystem, "Victory!")
	} else {
		state.Phase = wilds.PhaseEnemyTurn
	}
	output.Outcome = state.Outcome

	return output, nil
}

// Defend consumes the player's turn.
// TODO: grant an AC bonus until the next player turn once defend has a defined effect.
func (o *Orchestrator) Defend(_ context.Context, input *DefendInput) (*DefendOutput, error) {
	state, msg := playerTurnState(input.simulation())
	if state == nil {
		return &DefendOutput{Rejected: true, Message: msg}, nil
	}

	msg = "You raise your guard."
	o.passTurn(state, msg)
	return &DefendOutput{Message: msg}, nil
}

// Flee consumes the player's turn without leaving the fight.
// TODO: resolve an escape check against the enemies once flee has a defined effect.
func (o *Orchestrator) Flee(_ context.Context, input *FleeInput) (*FleeOutput, error) {
	state, msg := playerTurnState(input.simulation())
	if state == nil {
		return &FleeOutput{Rejected: true, Message: msg}, nil
	}

	msg = "You look for a way out, but there is none."
	o.passTurn(state, msg)
	return &FleeOutput{Message: msg}, nil
}

// UseInventory consumes the player's turn.
// TODO: apply consumable item effects through progression once items carry effects.
func (o *Orchestrator) UseInventory(_ context.Context, input *UseInventoryInput) (*UseInventoryOutput, error) {
	state, msg := playerTurnState(input.simulation())
	if state == nil {
		return &UseInventoryOutput{Rejected: true, Message: msg}, nil
	}

	msg = "You rummage through your pack."
	o.passTurn(state, msg)
	return &UseInventoryOutput{Message: msg}, nil
}

func (o *Orchestrator) passTurn(state *wilds.CombatState, msg string) {
	state.AddLog(actorPlayer, msg)
	state.Phase = wilds.PhaseEnemyTurn
}

// EnemyTurn lets each living enemy attack the player in order.
// The phase returns to the player and the round advances unless the player falls.
func (o *Orchestrator) EnemyTurn(ctx context.Context, input *EnemyTurnInput) (*EnemyTurnOutput, error) {
	var sim *wilds.SimulationContext
	if input != nil {
		sim = input.Sim
	}
	if sim == nil || sim.Combat == nil || sim.Combat.IsOver() {
		return &EnemyTurnOutput{Rejected: true, Message: "There is no fight to continue."}, nil
	}

	state := sim.Combat
	if state.Phase != wilds.PhaseEnemyTurn {
		return &EnemyTurnOutput{Rejected: true, Message: "It is not the enemies' turn."}, nil
	}

	output := &EnemyTurnOutput{}
	for _, enemy := range state.LivingEnemies() {
		attack, err := o.engine.RollAttack(ctx, &engine.RollAttackInput{
			Modifier: enemy.AttackBonus,
			TargetAC: state.Player.AC,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll attack for %s", enemy.ID)
		}

		record := EnemyAttack{EnemyID: enemy.ID, Roll: attack.Roll, Total: attack.Total, Hit: attack.Hit}
		if !attack.Hit {
			state.AddLog(enemy.ID, fmt.Sprintf("%s misses you (%d vs AC %d).", enemy.Name, attack.Total, state.Player.AC))
			output.Attacks = append(output.Attacks, record)
			continue
		}

		damage, err := o.engine.RollDamage(ctx, &engine.RollDamageInput{Notation: enemy.Damage})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll damage for %s", enemy.ID)
		}
		record.Damage = damage.Total
		output.Attacks = append(output.Attacks, record)

		state.Player.HP -= damage.Total
		if state.Player.HP < 0 {
			state.Player.HP = 0
		}
		state.AddLog(enemy.ID, fmt.Sprintf("%s hits you for %d damage.", enemy.Name, damage.Total))

		if state.Player.HP == 0 {
			state.Outcome = wilds.OutcomeDefeat
			state.AddLog(actorSystem, "You fall.")
			break
		}
	}

	if state.Outcome == wilds.OutcomeOngoing {
		state.Phase = wilds.PhasePlayerTurn
		state.Round++
	}
	output.Outcome = state.Outcome

	return output, nil
}

// Finish applies the result of a terminal fight to the player and clears the combat
func (o *Orchestrator) Finish(ctx context.Context, input *FinishInput) (*FinishOutput, error) {
	if input == nil || input.Sim == nil {
		return nil, errors.InvalidArgument("simulation is required")
	}

	sim := input.Sim
	state := sim.Combat
	if state == nil {
		return nil, errors.FailedPrecondition("no combat to finish")
	}
	if !state.IsOver() {
		return nil, errors.FailedPrecondition("combat is still in progress").
			WithMeta("combat_id", state.ID)
	}

	sim.Player.SetHP(state.Player.HP)
	output := &FinishOutput{Outcome: state.Outcome, Level: sim.Player.Level}

	if state.Outcome == wilds.OutcomeDefeat {
		sim.Combat = nil
		sim.Mode = wilds.ModeGameOver
		sim.Log(wilds.JournalCombat, "You were defeated. Your journey ends here.")
		slog.Info("Combat lost", "combat_id", state.ID, "rounds", state.Round)
		return output, nil
	}

	for _, enemy := range state.Enemies {
		output.XP += enemy.XP
	}
	if output.XP > 0 {
		xp, err := o.progression.AddXP(ctx, &progression.AddXPInput{Player: sim.Player, Amount: output.XP})
		if err != nil {
			return nil, errors.Wrap(err, "failed to award experience")
		}
		output.Level = xp.Level
		output.LeveledUp = xp.LeveledUp
	}

	for _, enemy := range state.Enemies {
		for _, drop := range enemy.Loot {
			dropped, err := o.engine.Chance(drop.Chance)
			if err != nil {
				return nil, errors.Wrap(err, "failed to roll loot")
			}
			if !dropped {
				continue
			}

			if _, err := o.progression.AddItem(ctx, &progression.AddItemInput{
				Player:   sim.Player,
				ItemID:   drop.ItemID,
				Quantity: drop.Quantity,
			}); err != nil {
				return nil, errors.Wrapf(err, "failed to add loot %s", drop.ItemID)
			}
			output.Loot = append(output.Loot, LootAward{
				ItemID:   drop.ItemID,
				Name:     o.itemName(ctx, drop.ItemID),
				Quantity: drop.Quantity,
			})
		}
	}

	sim.Combat = nil
	sim.Mode = wilds.ModeExploration
	sim.Logf(wilds.JournalCombat, "Victory! You gain %d XP.", output.XP)
	for _, award := range output.Loot {
		sim.Logf(wilds.JournalCombat, "Looted %s x%d.", award.Name, award.Quantity)
	}
	if output.LeveledUp {
		sim.Logf(wilds.JournalCombat, "You reached level %d.", output.Level)
	}

	slog.Info("Combat won",
		"combat_id", state.ID,
		"rounds", state.Round,
		"xp", output.XP,
		"loot", len(output.Loot))

	return output, nil
}

func (o *Orchestrator) itemName(ctx context.Context, itemID string) string {
	out, err := o.content.GetItem(ctx, &content.GetItemInput{ItemID: itemID})
	if err != nil {
		slog.Warn("Unknown loot item", "item_id", itemID, "error", err)
		return unknownItemName
	}
	return out.Item.Name
}

// playerTurnState returns the combat when the player may act, or a rejection message
func playerTurnState(sim *wilds.SimulationContext) (*wilds.CombatState, string) {
	switch {
	case sim == nil || sim.Combat == nil:
		return nil, "You are not in combat."
	case sim.Combat.IsOver():
		return nil, "The fight is already over."
	case sim.Combat.Phase != wilds.PhasePlayerTurn:
		return nil, "Wait for your turn."
	}
	return sim.Combat, ""
}

func (i *AttackInput) simulation() *wilds.SimulationContext {
	if i == nil {
		return nil
	}
	return i.Sim
}

func (i *DefendInput) simulation() *wilds.SimulationContext {
	if i == nil {
		return nil
	}
	return i.Sim
}

func (i *FleeInput) simulation() *wilds.SimulationContext {
	if i == nil {
		return nil
	}
	return i.Sim
}

func (i *UseInventoryInput) simulation() *wilds.SimulationContext {
	if i == nil {
		return nil
	}
	return i.Sim
}
