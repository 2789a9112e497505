package content

import (
	"fmt"

	"github.com/KirkDiggler/rpg-wilds/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/rpg-wilds/internal/entities/wilds"
	"github.com/KirkDiggler/rpg-wilds/internal/errors"
)

const (
	minDC = 1
	maxDC = 30
)

var (
	outcomeTypes = []string{string(wilds.OutcomeDirect), string(wilds.OutcomeSkillCheck)}

	resultTypes = map[wilds.ResultType]bool{
		wilds.ResultAddItem:         true,
		wilds.ResultRemoveItem:      true,
		wilds.ResultAddXP:           true,
		wilds.ResultTakeDamage:      true,
		wilds.ResultAdvanceTime:     true,
		wilds.ResultAlignmentChange: true,
		wilds.ResultStatusChange:    true,
		wilds.ResultStatBoost:       true,
		wilds.ResultHeal:            true,
		wilds.ResultStartQuest:      true,
		wilds.ResultSpecial:         true,
	}

	specialEffects = map[wilds.SpecialEffect]bool{
		wilds.EffectSetFlag:          true,
		wilds.EffectStartDialogue:    true,
		wilds.EffectStartTrading:     true,
		wilds.EffectActivateObject:   true,
		wilds.EffectDeactivateObject: true,
		wilds.EffectAdvanceQuest:     true,
		wilds.EffectCompleteQuest:    true,
		wilds.EffectFailQuest:        true,
		wilds.EffectStartCombat:      true,
	}

	weaponClasses = []string{
		string(wilds.WeaponClassMelee),
		string(wilds.WeaponClassFinesse),
		string(wilds.WeaponClassRanged),
	}
)

// Validate checks the tables for structural problems and dangling references.
// Unknown result tags and effects are reported here even though the simulation
// tolerates them at runtime.
func Validate(t *Tables) error {
	vb := errors.NewValidationBuilder()

	items := make(map[string]bool, len(t.Items))
	for i, it := range t.Items {
		field := fmt.Sprintf("items[%d]", i)
		if it.ID == "" {
			vb.RequiredField(field + ".id")
			continue
		}
		if items[it.ID] {
			vb.Fieldf(field+".id", "duplicate item id %q", it.ID)
		}
		items[it.ID] = true
		errors.ValidateRequired(field+".name", it.Name, vb)
	}

	enemies := make(map[string]bool, len(t.Enemies))
	for i, e := range t.Enemies {
		field := fmt.Sprintf("enemies[%d]", i)
		if e.ID == "" {
			vb.RequiredField(field + ".id")
			continue
		}
		if enemies[e.ID] {
			vb.Fieldf(field+".id", "duplicate enemy id %q", e.ID)
		}
		enemies[e.ID] = true
		validateEnemy(vb, field, &e, items)
	}

	events := make(map[string]bool, len(t.Events))
	for i, e := range t.Events {
		field := fmt.Sprintf("events[%d]", i)
		if e.ID == "" {
			vb.RequiredField(field + ".id")
			continue
		}
		if events[e.ID] {
			vb.Fieldf(field+".id", "duplicate event id %q", e.ID)
		}
		events[e.ID] = true
	}
	for i, e := range t.Events {
		validateEvent(vb, fmt.Sprintf("events[%d]", i), &e, items, enemies)
	}

	validateWorld(vb, &t.World, events)

	for i, m := range t.Ambient {
		errors.ValidateRequired(fmt.Sprintf("ambient[%d].text", i), m.Text, vb)
		if m.Time != wilds.AmbientAnyTime {
			errors.ValidateEnum(fmt.Sprintf("ambient[%d].time", i), m.Time,
				[]string{wilds.AmbientDay, wilds.AmbientNight}, vb)
		}
	}

	return vb.Build()
}

func validateEnemy(vb *errors.ValidationBuilder, field string, e *wilds.EnemyTemplate, items map[string]bool) {
	errors.ValidateRequired(field+".name", e.Name, vb)
	if e.HP <= 0 {
		vb.Field(field+".hp", "must be positive")
	}
	if err := rpgtoolkit.ValidateDamageNotation(e.Damage); err != nil {
		vb.InvalidField(field+".damage", errors.GetMessage(err))
	}
	for j, drop := range e.Loot {
		dropField := fmt.Sprintf("%s.loot[%d]", field, j)
		if !items[drop.ItemID] {
			vb.Fieldf(dropField+".item_id", "unknown item %q", drop.ItemID)
		}
		errors.ValidateRange(dropField+".chance", drop.Chance, 0, 100, vb)
	}
}

func validateEvent(vb *errors.ValidationBuilder, field string, e *wilds.EventDefinition, items, enemies map[string]bool) {
	errors.ValidateRequired(field+".title", e.Title, vb)
	errors.ValidateEnum(field+".category", string(e.EffectiveCategory()), wilds.EventCategories, vb)
	if len(e.Choices) == 0 {
		vb.RequiredField(field + ".choices")
	}

	for c, choice := range e.Choices {
		choiceField := fmt.Sprintf("%s.choices[%d]", field, c)
		errors.ValidateRequired(choiceField+".text", choice.Text, vb)

		for o, outcome := range choice.Outcomes {
			outcomeField := fmt.Sprintf("%s.outcomes[%d]", choiceField, o)
			errors.ValidateEnum(outcomeField+".type", string(outcome.Type), outcomeTypes, vb)

			if outcome.Type == wilds.OutcomeSkillCheck {
				errors.ValidateRange(outcomeField+".dc", outcome.DC, minDC, maxDC, vb)
				if _, ok := (wilds.Stats{}).Value(outcome.Skill); !ok {
					vb.Fieldf(outcomeField+".skill", "unknown ability %q", outcome.Skill)
				}
			}

			validateResults(vb, outcomeField+".results", outcome.Results, items, enemies)
			validateResults(vb, outcomeField+".success", outcome.Success, items, enemies)
			validateResults(vb, outcomeField+".failure", outcome.Failure, items, enemies)
		}
	}
}

func validateResults(vb *errors.ValidationBuilder, field string, results []wilds.EventResult, items, enemies map[string]bool) {
	for i, r := range results {
		resultField := fmt.Sprintf("%s[%d]", field, i)
		if !resultTypes[r.Type] {
			vb.Fieldf(resultField+".type", "unknown result type %q", r.Type)
			continue
		}

		switch r.Type {
		case wilds.ResultAddItem, wilds.ResultRemoveItem:
			if !items[r.ItemID] {
				vb.Fieldf(resultField+".item_id", "unknown item %q", r.ItemID)
			}
		case wilds.ResultStatBoost:
			if _, ok := (wilds.Stats{}).Value(r.Stat); !ok {
				vb.Fieldf(resultField+".stat", "unknown ability %q", r.Stat)
			}
		case wilds.ResultSpecial:
			if !specialEffects[r.Effect] {
				vb.Fieldf(resultField+".effect", "unknown special effect %q", r.Effect)
			}
			if r.Effect == wilds.EffectStartCombat {
				if len(r.EnemyIDs) == 0 {
					vb.RequiredField(resultField + ".enemy_ids")
				}
				for _, id := range r.EnemyIDs {
					if !enemies[id] {
						vb.Fieldf(resultField+".enemy_ids", "unknown enemy %q", id)
					}
				}
			}
		}
	}
}

func validateWorld(vb *errors.ValidationBuilder, w *World, events map[string]bool) {
	m, err := wilds.NewMap(w.Map)
	if err != nil {
		vb.InvalidField("world.map", errors.GetMessage(err))
		return
	}

	starts := 0
	for y, row := range m.Rows {
		for x, r := range []rune(row) {
			tile := wilds.Tile(r)
			if !wilds.IsKnownTile(tile) {
				vb.Fieldf("world.map", "unknown tile %q at %d,%d", string(r), x, y)
			}
			if tile == wilds.TileStart {
				starts++
			}
		}
	}
	if starts != 1 {
		vb.Fieldf("world.map", "must contain exactly one start tile, found %d", starts)
	}

	if w.Player.HP <= 0 {
		vb.Field("world.player.hp", "must be positive")
	}
	if err := rpgtoolkit.ValidateDamageNotation(w.Player.Weapon.Damage); err != nil {
		vb.InvalidField("world.player.weapon.damage", errors.GetMessage(err))
	}
	errors.ValidateEnum("world.player.weapon.class", string(w.Player.Weapon.Class), weaponClasses, vb)

	for i, s := range w.Sites {
		field := fmt.Sprintf("world.sites[%d]", i)
		tile, ok := m.TileAt(s.Position())
		if !ok || !tile.IsSite() {
			vb.Fieldf(field, "position %d,%d is not an outpost or landmark tile", s.X, s.Y)
		}
		if !events[s.EventID] {
			vb.Fieldf(field+".event_id", "unknown event %q", s.EventID)
		}
	}

	agentIDs := make(map[string]bool, len(w.Agents))
	for i, a := range w.Agents {
		field := fmt.Sprintf("world.agents[%d]", i)
		errors.ValidateRequired(field+".id", a.ID, vb)
		switch {
		case a.ID == wilds.PlayerEntityID:
			vb.Fieldf(field+".id", "%q is reserved", a.ID)
		case agentIDs[a.ID]:
			vb.Fieldf(field+".id", "duplicate agent id %q", a.ID)
		}
		agentIDs[a.ID] = true
		errors.ValidateRequired(field+".dialogue_id", a.DialogueID, vb)
		if a.MoveInterval <= 0 {
			vb.Field(field+".move_interval", "must be positive")
		}
		tile, ok := m.TileAt(a.Position)
		if !ok || !a.CanEnter(tile) {
			vb.Fieldf(field+".position", "agent cannot stand at %d,%d", a.Position.X, a.Position.Y)
		}
	}
}
