package event

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-wilds/internal/entities/wilds"
	"github.com/KirkDiggler/rpg-wilds/internal/repositories/content"
	"github.com/KirkDiggler/rpg-wilds/internal/services/progression"
)

const unknownItemName = "something"

func (o *Orchestrator) applyAll(ctx context.Context, sim *wilds.SimulationContext, results []wilds.EventResult) []string {
	lines := make([]string, 0, len(results))
	for _, r := range results {
		line := o.apply(ctx, sim, r)
		if r.Text != "" && line != FallbackMessage {
			line = r.Text
		}
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// apply dispatches one result and returns its consequence line
func (o *Orchestrator) apply(ctx context.Context, sim *wilds.SimulationContext, r wilds.EventResult) string {
	p := sim.Player

	switch r.Type {
	case wilds.ResultAddItem:
		qty := quantity(r.Quantity)
		if _, err := o.progression.AddItem(ctx, &progression.AddItemInput{Player: p, ItemID: r.ItemID, Quantity: qty}); err != nil {
			return degrade(r, err)
		}
		return fmt.Sprintf("You receive %s x%d.", o.itemName(ctx, r.ItemID), qty)

	case wilds.ResultRemoveItem:
		out, err := o.progression.RemoveItem(ctx, &progression.RemoveItemInput{Player: p, ItemID: r.ItemID, Quantity: quantity(r.Quantity)})
		if err != nil {
			return degrade(r, err)
		}
		if out.Removed == 0 {
			return fmt.Sprintf("You have no %s to give.", o.itemName(ctx, r.ItemID))
		}
		return fmt.Sprintf("You lose %s x%d.", o.itemName(ctx, r.ItemID), out.Removed)

	case wilds.ResultAddXP:
		out, err := o.progression.AddXP(ctx, &progression.AddXPInput{Player: p, Amount: r.Amount})
		if err != nil {
			return degrade(r, err)
		}
		if out.LeveledUp {
			return fmt.Sprintf("You gain %d XP and reach level %d.", r.Amount, out.Level)
		}
		return fmt.Sprintf("You gain %d XP.", r.Amount)

	case wilds.ResultTakeDamage:
		return fmt.Sprintf("You take %d damage.", p.TakeDamage(r.Amount))

	case wilds.ResultHeal:
		return fmt.Sprintf("You recover %d HP.", p.Heal(r.Amount))

	case wilds.ResultAdvanceTime:
		sim.Time.Advance(r.Minutes)
		return fmt.Sprintf("%d minutes pass.", r.Minutes)

	case wilds.ResultAlignmentChange:
		if r.Axis == "" {
			return degrade(r, nil)
		}
		p.Alignment[r.Axis] += r.Amount
		return fmt.Sprintf("Your %s shifts by %+d.", r.Axis, r.Amount)

	case wilds.ResultStatusChange:
		if r.Status == "" {
			return degrade(r, nil)
		}
		p.Statuses.Add(r.Status)
		return fmt.Sprintf("You are now %s.", r.Status)

	case wilds.ResultStatBoost:
		stat := wilds.NormalizeAbility(r.Stat)
		if !p.Stats.Boost(stat, r.Amount) {
			return degrade(r, nil)
		}
		return fmt.Sprintf("Your %s changes by %+d.", stat, r.Amount)

	case wilds.ResultStartQuest:
		if _, err := o.progression.StartQuest(ctx, &progression.StartQuestInput{Player: p, QuestID: r.QuestID}); err != nil {
			return degrade(r, err)
		}
		return fmt.Sprintf("New quest: %s.", humanize(r.QuestID))

	case wilds.ResultSpecial:
		return o.applySpecial(ctx, sim, r)
	}

	return degrade(r, nil)
}

func (o *Orchestrator) applySpecial(ctx context.Context, sim *wilds.SimulationContext, r wilds.EventResult) string {
	p := sim.Player

	switch r.Effect {
	case wilds.EffectSetFlag:
		if r.Flag == "" {
			return degrade(r, nil)
		}
		sim.Flags.Add(r.Flag)
		return ""

	case wilds.EffectStartDialogue:
		sim.Enqueue(wilds.Command{Type: wilds.CommandStartDialogue, TargetID: r.TargetID})
		return ""

	case wilds.EffectStartTrading:
		sim.Enqueue(wilds.Command{Type: wilds.CommandStartTrading, TargetID: r.TargetID})
		return ""

	case wilds.EffectStartCombat:
		sim.Enqueue(wilds.Command{Type: wilds.CommandStartCombat, TargetID: r.TargetID, EnemyIDs: r.EnemyIDs})
		return ""

	case wilds.EffectActivateObject:
		sim.WorldObjects.Add(r.TargetID)
		return ""

	case wilds.EffectDeactivateObject:
		sim.WorldObjects.Remove(r.TargetID)
		return ""

	case wilds.EffectAdvanceQuest:
		if _, err := o.progression.AdvanceQuest(ctx, &progression.AdvanceQuestInput{Player: p, QuestID: r.QuestID}); err != nil {
			return degrade(r, err)
		}
		return fmt.Sprintf("Quest updated: %s.", humanize(r.QuestID))

	case wilds.EffectCompleteQuest:
		if _, err := o.progression.CompleteQuest(ctx, &progression.CompleteQuestInput{Player: p, QuestID: r.QuestID}); err != nil {
			return degrade(r, err)
		}
		return fmt.Sprintf("Quest complete: %s.", humanize(r.QuestID))

	case wilds.EffectFailQuest:
		if _, err := o.progression.FailQuest(ctx, &progression.FailQuestInput{Player: p, QuestID: r.QuestID}); err != nil {
			return degrade(r, err)
		}
		return fmt.Sprintf("Quest failed: %s.", humanize(r.QuestID))
	}

	return degrade(r, nil)
}

func (o *Orchestrator) itemName(ctx context.Context, itemID string) string {
	out, err := o.content.GetItem(ctx, &content.GetItemInput{ItemID: itemID})
	if err != nil {
		slog.Warn("Unknown item in event result", "item_id", itemID, "error", err)
		return unknownItemName
	}
	return out.Item.Name
}

// degrade logs a result that could not be applied and returns the fallback line
func degrade(r wilds.EventResult, err error) string {
	slog.Warn("Event result could not be applied",
		"type", r.Type,
		"effect", r.Effect,
		"error", err)
	return FallbackMessage
}

func quantity(q int) int {
	if q <= 0 {
		return 1
	}
	return q
}

func humanize(id string) string {
	return strings.ReplaceAll(id, "_", " ")
}
