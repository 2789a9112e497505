package session

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-wilds/internal/entities/wilds"
	"github.com/KirkDiggler/rpg-wilds/internal/errors"
	"github.com/KirkDiggler/rpg-wilds/internal/parser"
)

var cardinals = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Autopilot picks commands for headless runs: it answers events with a
// random choice, attacks the first living enemy and otherwise wanders
type Autopilot struct {
	roller dice.Roller
}

// NewAutopilot creates an autopilot drawing from its own roller so the game's
// dice sequence is independent of the driver
func NewAutopilot(roller dice.Roller) *Autopilot {
	return &Autopilot{roller: roller}
}

// Next returns the command to run for the current mode, or nil when the game is over
func (a *Autopilot) Next(sim *wilds.SimulationContext) (*parser.Command, error) {
	switch sim.Mode {
	case wilds.ModeEvent:
		if sim.ActiveEvent == nil || len(sim.ActiveEvent.Choices) == 0 {
			return &parser.Command{Verb: parser.VerbDismiss}, nil
		}
		n, err := a.roller.Roll(len(sim.ActiveEvent.Choices))
		if err != nil {
			return nil, errors.Wrap(err, "failed to pick a choice")
		}
		return &parser.Command{Verb: parser.VerbChoose, Index: n - 1}, nil

	case wilds.ModeCombat:
		target := 0
		if sim.Combat != nil {
			for i, e := range sim.Combat.Enemies {
				if e.IsAlive() {
					target = i
					break
				}
			}
		}
		return &parser.Command{Verb: parser.VerbAttack, Index: target}, nil

	case wilds.ModeExploration:
		n, err := a.roller.Roll(len(cardinals))
		if err != nil {
			return nil, errors.Wrap(err, "failed to pick a direction")
		}
		d := cardinals[n-1]
		return &parser.Command{Verb: parser.VerbMove, DX: d[0], DY: d[1]}, nil
	}

	return nil, nil
}
