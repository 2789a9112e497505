// Package rpgtoolkit provides the concrete implementation of the engine interface using rpg-toolkit modules.
package rpgtoolkit

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-wilds/internal/engine"
	"github.com/KirkDiggler/rpg-wilds/internal/entities/wilds"
	"github.com/KirkDiggler/rpg-wilds/internal/errors"
)

var (
	// Dice notation like "2d6", "1d20+5", "1d8-1" or a flat "3"
	damageNotationRegex = regexp.MustCompile(`^(\d+)d(\d+)([+-]\d+)?$`)
	flatDamageRegex     = regexp.MustCompile(`^\d+$`)
)

// Adapter implements the engine.Engine interface using rpg-toolkit
type Adapter struct {
	diceRoller dice.Roller
}

// AdapterConfig contains configuration for creating a new Adapter
type AdapterConfig struct {
	DiceRoller dice.Roller
}

// Validate checks that all required dependencies are provided
func (c *AdapterConfig) Validate() error {
	if c.DiceRoller == nil {
		return errors.InvalidArgument("dice roller is required")
	}
	return nil
}

// NewAdapter creates a new rpg-toolkit engine adapter
func NewAdapter(cfg *AdapterConfig) (*Adapter, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Adapter{
		diceRoller: cfg.DiceRoller,
	}, nil
}

// Verify that Adapter implements engine.Engine interface
var _ engine.Engine = (*Adapter)(nil)

// CalculateAbilityModifier calculates the ability modifier for a given score
func (a *Adapter) CalculateAbilityModifier(score int) int {
	// floor((score - 10) / 2); Go truncates toward zero, so odd negatives need one more step down
	modifier := (score - 10) / 2
	if score < 10 && (score-10)%2 != 0 {
		modifier--
	}
	return modifier
}

// PerformCheck rolls a d20, adds the stat modifier and compares against the DC
func (a *Adapter) PerformCheck(_ context.Context, input *engine.PerformCheckInput) (*engine.PerformCheckOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	roll, err := a.RollD20()
	if err != nil {
		return nil, err
	}

	modifier := a.CalculateAbilityModifier(input.StatValue)
	total := roll + modifier

	return &engine.PerformCheckOutput{
		Result: &wilds.SkillCheckResult{
			Roll:     roll,
			Modifier: modifier,
			Total:    total,
			DC:       input.DC,
			Success:  total >= input.DC,
		},
	}, nil
}

// RollAttack rolls a d20 plus modifier against the target's armor class
func (a *Adapter) RollAttack(_ context.Context, input *engine.RollAttackInput) (*engine.RollAttackOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	roll, err := a.RollD20()
	if err != nil {
		return nil, err
	}

	total := roll + input.Modifier
	return &engine.RollAttackOutput{
		Roll:     roll,
		Modifier: input.Modifier,
		Total:    total,
		Hit:      total >= input.TargetAC,
	}, nil
}

// RollDamage rolls dice notation and returns the total floored at zero
func (a *Adapter) RollDamage(_ context.Context, input *engine.RollDamageInput) (*engine.RollDamageOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	notation := strings.ToLower(strings.ReplaceAll(input.Notation, " ", ""))
	if flatDamageRegex.MatchString(notation) {
		flat, err := strconv.Atoi(notation)
		if err != nil {
			return nil, errors.InvalidArgumentf("invalid damage notation: %s", input.Notation)
		}
		return &engine.RollDamageOutput{Modifier: flat, Total: flat}, nil
	}

	count, size, modifier, err := parseDamageNotation(notation)
	if err != nil {
		return nil, err
	}

	rolls, err := a.diceRoller.RollN(count, size)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll %s", input.Notation)
	}

	total := modifier
	for _, r := range rolls {
		total += r
	}
	if total < 0 {
		total = 0
	}

	return &engine.RollDamageOutput{
		Dice:     rolls,
		Modifier: modifier,
		Total:    total,
	}, nil
}

// RollD20 rolls a single twenty-sided die
func (a *Adapter) RollD20() (int, error) {
	roll, err := a.diceRoller.Roll(20)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll d20")
	}
	return roll, nil
}

// Chance succeeds when a d100 roll is at or below percent
func (a *Adapter) Chance(percent int) (bool, error) {
	if percent <= 0 {
		return false, nil
	}

	roll, err := a.diceRoller.Roll(100)
	if err != nil {
		return false, errors.Wrap(err, "failed to roll d100")
	}
	return roll <= percent, nil
}

// Pick returns a uniform index in [0, n)
func (a *Adapter) Pick(n int) (int, error) {
	if n <= 0 {
		return 0, errors.InvalidArgumentf("cannot pick from %d options", n)
	}
	if n == 1 {
		return 0, nil
	}

	roll, err := a.diceRoller.Roll(n)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to roll d%d", n)
	}
	return roll - 1, nil
}

// Shuffle is a Fisher-Yates shuffle driven by the dice roller
func (a *Adapter) Shuffle(n int, swap func(i, j int)) error {
	for i := n - 1; i > 0; i-- {
		roll, err := a.diceRoller.Roll(i + 1)
		if err != nil {
			return errors.Wrap(err, "failed to shuffle")
		}
		swap(i, roll-1)
	}
	return nil
}

// parseDamageNotation parses "XdY", "XdY+Z" and "XdY-Z"
func parseDamageNotation(notation string) (count, size, modifier int, err error) {
	matches := damageNotationRegex.FindStringSubmatch(notation)
	if len(matches) != 4 {
		return 0, 0, 0, errors.InvalidArgumentf("invalid damage notation: %s (expected format: XdY+Z)", notation)
	}

	count, err = strconv.Atoi(matches[1])
	if err != nil {
		return 0, 0, 0, errors.InvalidArgumentf("invalid dice count in notation: %s", notation)
	}

	size, err = strconv.Atoi(matches[2])
	if err != nil {
		return 0, 0, 0, errors.InvalidArgumentf("invalid die size in notation: %s", notation)
	}

	if matches[3] != "" {
		modifier, err = strconv.Atoi(matches[3])
		if err != nil {
			return 0, 0, 0, errors.InvalidArgumentf("invalid modifier in notation: %s", notation)
		}
	}

	if count <= 0 || size <= 0 {
		return 0, 0, 0, errors.InvalidArgumentf("dice count and size must be positive: %s", notation)
	}

	return count, size, modifier, nil
}

// ValidateDamageNotation reports whether notation can be rolled
func ValidateDamageNotation(notation string) error {
	n := strings.ToLower(strings.ReplaceAll(notation, " ", ""))
	if flatDamageRegex.MatchString(n) {
		return nil
	}
	_, _, _, err := parseDamageNotation(n)
	return err
}
