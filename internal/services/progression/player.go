package progression

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-wilds/internal/entities/wilds"
	"github.com/KirkDiggler/rpg-wilds/internal/errors"
)

// HPPerLevel is the max HP gained on each level up
const HPPerLevel = 5

// LevelThresholds holds the total XP needed to reach level index+1
var LevelThresholds = []int{0, 300, 900, 2700, 6500, 14000}

// LevelForXP returns the level reached with the given total XP
func LevelForXP(xp int) int {
	level := 1
	for i, threshold := range LevelThresholds {
		if xp >= threshold {
			level = i + 1
		}
	}
	return level
}

// Config holds the dependencies for the progression service
type Config struct{}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	return nil
}

// playerService keeps all progression state on the Player so saves carry it
type playerService struct{}

// NewService creates a progression service that records state on the player
func NewService(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &playerService{}, nil
}

// AddItem adds items to the player's pack
func (s *playerService) AddItem(_ context.Context, input *AddItemInput) (*AddItemOutput, error) {
	if input == nil || input.Player == nil {
		return nil, errors.InvalidArgument("player is required")
	}
	if input.ItemID == "" {
		return nil, errors.InvalidArgument("item ID is required")
	}

	qty := input.Quantity
	if qty <= 0 {
		qty = 1
	}

	input.Player.EnsureCollections()
	input.Player.Inventory[input.ItemID] += qty

	return &AddItemOutput{Total: input.Player.Inventory[input.ItemID]}, nil
}

// RemoveItem removes up to Quantity items from the player's pack
func (s *playerService) RemoveItem(_ context.Context, input *RemoveItemInput) (*RemoveItemOutput, error) {
	if input == nil || input.Player == nil {
		return nil, errors.InvalidArgument("player is required")
	}
	if input.ItemID == "" {
		return nil, errors.InvalidArgument("item ID is required")
	}

	qty := input.Quantity
	if qty <= 0 {
		qty = 1
	}

	input.Player.EnsureCollections()
	have := input.Player.Inventory[input.ItemID]
	if qty > have {
		qty = have
	}

	remaining := have - qty
	if remaining == 0 {
		delete(input.Player.Inventory, input.ItemID)
	} else {
		input.Player.Inventory[input.ItemID] = remaining
	}

	return &RemoveItemOutput{Removed: qty, Remaining: remaining}, nil
}

// AddXP grants experience and applies any level ups
func (s *playerService) AddXP(_ context.Context, input *AddXPInput) (*AddXPOutput, error) {
	if input == nil || input.Player == nil {
		return nil, errors.InvalidArgument("player is required")
	}
	if input.Amount < 0 {
		return nil, errors.InvalidArgumentf("xp amount must not be negative, got %d", input.Amount)
	}

	p := input.Player
	p.XP += input.Amount

	newLevel := LevelForXP(p.XP)
	leveledUp := newLevel > p.Level
	if leveledUp {
		gained := newLevel - p.Level
		p.MaxHP += gained * HPPerLevel
		p.Heal(gained * HPPerLevel)
		p.Level = newLevel

		slog.Info("Player leveled up",
			"player", p.Name,
			"level", p.Level,
			"xp", p.XP,
		)
	}

	return &AddXPOutput{
		TotalXP:   p.XP,
		Level:     p.Level,
		LeveledUp: leveledUp,
	}, nil
}

// StartQuest opens a quest; starting an existing quest is a no-op
func (s *playerService) StartQuest(_ context.Context, input *StartQuestInput) (*StartQuestOutput, error) {
	if input == nil || input.Player == nil {
		return nil, errors.InvalidArgument("player is required")
	}
	if input.QuestID == "" {
		return nil, errors.InvalidArgument("quest ID is required")
	}

	input.Player.EnsureCollections()
	quest, ok := input.Player.Quests[input.QuestID]
	if !ok {
		quest = &wilds.Quest{ID: input.QuestID, Stage: 1, Status: wilds.QuestActive}
		input.Player.Quests[input.QuestID] = quest
	}

	return &StartQuestOutput{Quest: quest}, nil
}

// AdvanceQuest moves an active quest to its next stage
func (s *playerService) AdvanceQuest(_ context.Context, input *AdvanceQuestInput) (*AdvanceQuestOutput, error) {
	if input == nil || input.Player == nil {
		return nil, errors.InvalidArgument("player is required")
	}

	quest, err := activeQuest(input.Player.Quests, input.QuestID)
	if err != nil {
		return nil, err
	}
	quest.Stage++

	return &AdvanceQuestOutput{Quest: quest}, nil
}

// CompleteQuest marks an active quest completed
func (s *playerService) CompleteQuest(_ context.Context, input *CompleteQuestInput) (*CompleteQuestOutput, error) {
	if input == nil || input.Player == nil {
		return nil, errors.InvalidArgument("player is required")
	}

	quest, err := activeQuest(input.Player.Quests, input.QuestID)
	if err != nil {
		return nil, err
	}
	quest.Status = wilds.QuestCompleted

	return &CompleteQuestOutput{Quest: quest}, nil
}

// FailQuest marks an active quest failed
func (s *playerService) FailQuest(_ context.Context, input *FailQuestInput) (*FailQuestOutput, error) {
	if input == nil || input.Player == nil {
		return nil, errors.InvalidArgument("player is required")
	}

	quest, err := activeQuest(input.Player.Quests, input.QuestID)
	if err != nil {
		return nil, err
	}
	quest.Status = wilds.QuestFailed

	return &FailQuestOutput{Quest: quest}, nil
}

// StartDialogue records the conversation partner and returns an opening line
func (s *playerService) StartDialogue(_ context.Context, input *StartDialogueInput) (*StartDialogueOutput, error) {
	if input == nil || input.Player == nil {
		return nil, errors.InvalidArgument("player is required")
	}
	if input.DialogueID == "" {
		return nil, errors.InvalidArgument("dialogue ID is required")
	}

	input.Player.EnsureCollections()
	first := input.Player.Contacts.Add("dialogue:" + input.DialogueID)

	msg := fmt.Sprintf("You strike up a conversation (%s).", humanize(input.DialogueID))
	if !first {
		msg = fmt.Sprintf("You pick up where you left off (%s).", humanize(input.DialogueID))
	}

	return &StartDialogueOutput{Message: msg, FirstTime: first}, nil
}

// StartTrading records the merchant and returns an opening line
func (s *playerService) StartTrading(_ context.Context, input *StartTradingInput) (*StartTradingOutput, error) {
	if input == nil || input.Player == nil {
		return nil, errors.InvalidArgument("player is required")
	}
	if input.MerchantID == "" {
		return nil, errors.InvalidArgument("merchant ID is required")
	}

	input.Player.EnsureCollections()
	input.Player.Contacts.Add("merchant:" + input.MerchantID)

	return &StartTradingOutput{
		Message: fmt.Sprintf("You browse the wares (%s).", humanize(input.MerchantID)),
	}, nil
}

func activeQuest(quests map[string]*wilds.Quest, id string) (*wilds.Quest, error) {
	if id == "" {
		return nil, errors.InvalidArgument("quest ID is required")
	}

	quest, ok := quests[id]
	if !ok {
		return nil, errors.NotFound("quest not found").WithMeta("quest_id", id)
	}
	if quest.Status != wilds.QuestActive {
		return nil, errors.FailedPreconditionf("quest is %s", quest.Status).WithMeta("quest_id", id)
	}
	return quest, nil
}

func humanize(id string) string {
	return strings.ReplaceAll(id, "_", " ")
}
