// Package session holds one player's running game and turns parsed commands
// into game calls, rendering the results as display lines
package session

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/KirkDiggler/rpg-wilds/internal/entities/wilds"
	"github.com/KirkDiggler/rpg-wilds/internal/errors"
	"github.com/KirkDiggler/rpg-wilds/internal/orchestrators/combat"
	"github.com/KirkDiggler/rpg-wilds/internal/orchestrators/game"
	"github.com/KirkDiggler/rpg-wilds/internal/parser"
)

// HelpText lists the commands a player can type
const HelpText = "Commands: north/south/east/west (n/s/e/w), <number> to choose, dismiss, " +
	"attack [n], defend, flee, use <item>, inventory, journal, save [id], load <id>, saves, quit"

// Result is what a command produced
type Result struct {
	Lines []string
	Quit  bool
}

func (r *Result) add(lines ...string) {
	for _, l := range lines {
		if l != "" {
			r.Lines = append(r.Lines, l)
		}
	}
}

// Session is a single running game
type Session struct {
	game   game.Service
	Sim    *wilds.SimulationContext
	SaveID string
}

// New starts a session on an existing context
func New(g game.Service, sim *wilds.SimulationContext) *Session {
	return &Session{game: g, Sim: sim}
}

// Start begins a new game
func Start(ctx context.Context, g game.Service, playerName string, seed uint64) (*Session, error) {
	out, err := g.NewGame(ctx, &game.NewGameInput{PlayerName: playerName, Seed: seed})
	if err != nil {
		return nil, err
	}
	return New(g, out.Sim), nil
}

// Over reports whether the game can no longer continue
func (s *Session) Over() bool {
	return s.Sim.Mode == wilds.ModeGameOver || s.Sim.Mode == wilds.ModeJourneyComplete
}

// Execute runs one parsed command
func (s *Session) Execute(ctx context.Context, cmd *parser.Command) (*Result, error) {
	if cmd == nil {
		return nil, errors.InvalidArgument("command is required")
	}
	res := &Result{}

	switch cmd.Verb {
	case parser.VerbMove:
		out, err := s.game.Move(ctx, &game.MoveInput{Sim: s.Sim, DX: cmd.DX, DY: cmd.DY})
		if err != nil {
			return nil, err
		}
		res.add(out.Message)
		if out.Move != nil {
			res.add(out.Move.Ambient)
		}
		if out.Weather != nil && out.Weather.Changed {
			res.add(fmt.Sprintf("The weather turns: %s.", out.Weather.Weather))
		}
		res.add(out.Followups...)
		s.describeMode(res)
		if !out.Rejected && s.Sim.Mode == wilds.ModeGameOver {
			res.add("You collapse and do not rise again.")
		}

	case parser.VerbChoose:
		out, err := s.game.ChooseOption(ctx, &game.ChooseOptionInput{Sim: s.Sim, ChoiceIndex: cmd.Index})
		if err != nil {
			return nil, err
		}
		if out.Result.Rejected {
			res.add(out.Result.Message)
			break
		}
		for _, c := range out.Result.Checks {
			res.add(fmt.Sprintf("(%s check: rolled %d, total %d)", c.Skill, c.Result.Roll, c.Result.Total))
		}
		res.add(out.Result.Summary)
		res.add(out.Result.Consequences...)
		res.add(out.Followups...)
		s.describeMode(res)

	case parser.VerbDismiss:
		out, err := s.game.DismissEvent(ctx, &game.DismissEventInput{Sim: s.Sim})
		if err != nil {
			return nil, err
		}
		if out.Dismissed {
			res.add("You move on.")
		} else {
			res.add("There is nothing to dismiss.")
		}

	case parser.VerbAttack, parser.VerbDefend, parser.VerbFlee:
		if err := s.combatAction(ctx, res, combatActions[cmd.Verb], cmd.Index, ""); err != nil {
			return nil, err
		}

	case parser.VerbInventory:
		if s.Sim.Mode == wilds.ModeCombat && cmd.Arg != "" {
			if err := s.combatAction(ctx, res, game.ActionInventory, 0, cmd.Arg); err != nil {
				return nil, err
			}
			break
		}
		res.add(DescribeInventory(s.Sim.Player))

	case parser.VerbJournal:
		start := len(s.Sim.Journal) - 10
		if start < 0 {
			start = 0
		}
		for _, e := range s.Sim.Journal[start:] {
			res.add(e.String())
		}

	case parser.VerbSave:
		id := cmd.Arg
		if id == "" {
			id = s.SaveID
		}
		out, err := s.game.Save(ctx, &game.SaveInput{Sim: s.Sim, SaveID: id})
		if err != nil {
			return nil, err
		}
		s.SaveID = out.SaveID
		res.add("Game saved as " + out.SaveID + ".")

	case parser.VerbLoad:
		out, err := s.game.Load(ctx, &game.LoadInput{SaveID: cmd.Arg})
		if err != nil {
			if errors.IsNotFound(err) {
				res.add("No save named " + cmd.Arg + ".")
				break
			}
			return nil, err
		}
		s.Sim = out.Sim
		s.SaveID = cmd.Arg
		res.add(fmt.Sprintf("Loaded %s: %s, day %d.", cmd.Arg, s.Sim.Player.Name, s.Sim.Time.Day))

	case parser.VerbSaves:
		out, err := s.game.ListSaves(ctx, &game.ListSavesInput{Limit: 10})
		if err != nil {
			return nil, err
		}
		if len(out.Saves) == 0 {
			res.add("No saves yet.")
		}
		for _, sv := range out.Saves {
			res.add(fmt.Sprintf("%s  %s (lvl %d) day %d, %d steps, %s", sv.ID, sv.PlayerName, sv.Level, sv.Day, sv.Steps, sv.Mode))
		}

	case parser.VerbHelp:
		res.add(HelpText)

	case parser.VerbQuit:
		res.Quit = true

	default:
		res.add("Nothing happens.")
	}

	return res, nil
}

// describeMode shows what the player must deal with next
func (s *Session) describeMode(res *Result) {
	switch {
	case s.Sim.Mode == wilds.ModeEvent && s.Sim.ActiveEvent != nil:
		res.add(DescribeEvent(s.Sim.ActiveEvent)...)
	case s.Sim.Mode == wilds.ModeCombat && s.Sim.Combat != nil:
		res.add(DescribeCombat(s.Sim.Combat)...)
	}
}

var combatActions = map[parser.Verb]game.Action{
	parser.VerbAttack: game.ActionAttack,
	parser.VerbDefend: game.ActionDefend,
	parser.VerbFlee:   game.ActionFlee,
}

func (s *Session) combatAction(ctx context.Context, res *Result, action game.Action, target int, itemID string) error {
	names := map[string]string{}
	if s.Sim.Combat != nil {
		for _, e := range s.Sim.Combat.Enemies {
			names[e.ID] = e.Name
		}
	}

	out, err := s.game.CombatAction(ctx, &game.CombatActionInput{
		Sim:         s.Sim,
		Action:      action,
		TargetIndex: target,
		ItemID:      itemID,
	})
	if err != nil {
		return err
	}

	if out.Attack != nil && !out.Attack.Rejected {
		res.add(describeAttack(out.Attack))
	} else {
		res.add(out.Message)
	}
	if out.Rejected {
		return nil
	}

	if out.EnemyTurn != nil {
		for _, a := range out.EnemyTurn.Attacks {
			name := names[a.EnemyID]
			if name == "" {
				name = a.EnemyID
			}
			if a.Hit {
				res.add(fmt.Sprintf("%s hits you for %d.", name, a.Damage))
			} else {
				res.add(fmt.Sprintf("%s misses.", name))
			}
		}
	}

	if out.Finish != nil {
		res.add(describeFinish(out.Finish)...)
	} else if s.Sim.Combat != nil {
		res.add(DescribeCombat(s.Sim.Combat)...)
	}
	return nil
}

func describeAttack(a *combat.AttackOutput) string {
	switch {
	case a.Killed:
		return fmt.Sprintf("You strike (%d) for %d damage. Your foe falls!", a.Total, a.Damage)
	case a.Hit:
		return fmt.Sprintf("You strike (%d) for %d damage.", a.Total, a.Damage)
	default:
		return fmt.Sprintf("You swing (%d) and miss.", a.Total)
	}
}

func describeFinish(f *combat.FinishOutput) []string {
	if f.Outcome == wilds.OutcomeDefeat {
		return []string{"You fall. Your journey ends here."}
	}

	lines := []string{fmt.Sprintf("Victory! You gain %d XP.", f.XP)}
	for _, l := range f.Loot {
		lines = append(lines, fmt.Sprintf("You find %s x%d.", l.Name, l.Quantity))
	}
	if f.LeveledUp {
		lines = append(lines, fmt.Sprintf("You reach level %d!", f.Level))
	}
	return lines
}

// DescribeEvent renders an event and its numbered choices
func DescribeEvent(e *wilds.EventDefinition) []string {
	lines := []string{strings.ToUpper(e.Title)}
	if e.Description != "" {
		lines = append(lines, e.Description)
	}
	for i, c := range e.Choices {
		lines = append(lines, fmt.Sprintf("  %d) %s", i+1, c.Text))
	}
	return lines
}

// DescribeCombat renders the enemies with their coarse health
func DescribeCombat(c *wilds.CombatState) []string {
	lines := []string{fmt.Sprintf("Round %d. You have %d/%d HP.", c.Round, c.Player.HP, c.Player.MaxHP)}
	for i, e := range c.Enemies {
		state := string(e.Status)
		if e.IsAlive() {
			state = strings.ReplaceAll(string(wilds.DescribeHealth(e.HP, e.MaxHP)), "_", " ")
		}
		lines = append(lines, fmt.Sprintf("  %d) %s (%s)", i+1, e.Name, state))
	}
	return lines
}

// DescribeInventory lists the pack in name order
func DescribeInventory(p *wilds.Player) string {
	if len(p.Inventory) == 0 {
		return "Your pack is empty."
	}
	ids := make([]string, 0, len(p.Inventory))
	for id := range p.Inventory {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%s x%d", strings.ReplaceAll(id, "_", " "), p.Inventory[id])
	}
	return "You carry: " + strings.Join(parts, ", ") + "."
}
