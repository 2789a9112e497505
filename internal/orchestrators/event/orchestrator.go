package event

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-wilds/internal/engine"
	"github.com/KirkDiggler/rpg-wilds/internal/entities/wilds"
	"github.com/KirkDiggler/rpg-wilds/internal/errors"
	"github.com/KirkDiggler/rpg-wilds/internal/repositories/content"
	"github.com/KirkDiggler/rpg-wilds/internal/services/progression"
)

// FallbackMessage is shown for effects that cannot be applied
const FallbackMessage = "Something happened."

// defaultStatValue is used when an event asks for a stat the player does not have
const defaultStatValue = 10

// Config holds the dependencies for the event orchestrator
type Config struct {
	Engine      engine.Engine
	Content     content.Repository
	Progression progression.Service
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

	return vb.Build()
}

// Orchestrator implements Service
type Orchestrator struct {
	engine      engine.Engine
	content     content.Repository
	progression progression.Service
}

// New creates a new event orchestrator
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
	}, nil
}

var _ Service = (*Orchestrator)(nil)

// ResolveChoice applies the chosen option's outcomes in order
func (o *Orchestrator) ResolveChoice(ctx context.Context, input *ResolveChoiceInput) (*ResolveChoiceOutput, error) {
	if input == nil || input.Sim == nil {
		return nil, errors.InvalidArgument("simulation is required")
	}

	sim := input.Sim
	ev := sim.ActiveEvent
	if ev == nil || sim.Mode != wilds.ModeEvent {
		return &ResolveChoiceOutput{Rejected: true, Message: "There is nothing to respond to."}, nil
	}
	if input.ChoiceIndex < 0 || input.ChoiceIndex >= len(ev.Choices) {
		return &ResolveChoiceOutput{Rejected: true, Message: "That is not an option."}, nil
	}
	choice := ev.Choices[input.ChoiceIndex]
	if len(choice.Outcomes) == 0 {
		return &ResolveChoiceOutput{Rejected: true, Message: "Nothing comes of that."}, nil
	}

	output := &ResolveChoiceOutput{}
	for _, outcome := range choice.Outcomes {
		switch outcome.Type {
		case wilds.OutcomeDirect:
			output.Consequences = append(output.Consequences, o.applyAll(ctx, sim, outcome.Results)...)

		case wilds.OutcomeSkillCheck:
			record, err := o.check(ctx, sim.Player, outcome)
			if err != nil {
				return nil, err
			}
			output.Checks = append(output.Checks, record)

			r := record.Result
			verdict, text, results := "failure", outcome.FailureText, outcome.Failure
			if r.Success {
				verdict, text, results = "success", outcome.SuccessText, outcome.Success
			}
			output.Consequences = append(output.Consequences,
				fmt.Sprintf("%s check: %d %+d = %d vs DC %d (%s)",
					capitalize(record.Skill), r.Roll, r.Modifier, r.Total, r.DC, verdict))
			if text != "" {
				output.Consequences = append(output.Consequences, text)
			}
			output.Consequences = append(output.Consequences, o.applyAll(ctx, sim, results)...)

		default:
			slog.Warn("Unknown outcome type", "event_id", ev.ID, "type", outcome.Type)
			output.Consequences = append(output.Consequences, FallbackMessage)
		}
	}

	output.Summary = strings.Join(output.Consequences, "\n")
	for _, line := range output.Consequences {
		sim.Log(wilds.JournalEvent, line)
	}

	slog.Info("Event resolved",
		"event_id", ev.ID,
		"choice", input.ChoiceIndex,
		"consequences", len(output.Consequences))

	closeEvent(sim)
	return output, nil
}

// Dismiss closes the active event, recording it in the history
func (o *Orchestrator) Dismiss(_ context.Context, input *DismissInput) (*DismissOutput, error) {
	if input == nil || input.Sim == nil {
		return nil, errors.InvalidArgument("simulation is required")
	}

	ev := input.Sim.ActiveEvent
	if ev == nil {
		return &DismissOutput{}, nil
	}

	closeEvent(input.Sim)
	return &DismissOutput{Dismissed: true, EventID: ev.ID}, nil
}

func (o *Orchestrator) check(ctx context.Context, player *wilds.Player, outcome wilds.Outcome) (CheckRecord, error) {
	skill := wilds.NormalizeAbility(outcome.Skill)
	stat, ok := player.Stats.Value(skill)
	if !ok {
		slog.Warn("Unknown skill in event check", "skill", outcome.Skill)
		stat = defaultStatValue
	}

	out, err := o.engine.PerformCheck(ctx, &engine.PerformCheckInput{StatValue: stat, DC: outcome.DC})
	if err != nil {
		return CheckRecord{}, errors.Wrapf(err, "failed to perform %s check", skill)
	}

	return CheckRecord{Skill: skill, Result: out.Result}, nil
}

// closeEvent records the event in the history and returns control to exploration
func closeEvent(sim *wilds.SimulationContext) {
	ev := sim.ActiveEvent
	sim.History.Record(ev.ID, ev.IsUnique)
	sim.ActiveEvent = nil

	if sim.Player.IsDead() {
		sim.Mode = wilds.ModeGameOver
		sim.Log(wilds.JournalSystem, "Your wounds overcome you. Your journey ends here.")
		return
	}
	if sim.Mode == wilds.ModeEvent {
		sim.Mode = wilds.ModeExploration
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
