// Package progression defines the player progression collaborator: inventory,
// experience, quests and the dialogue/trading sessions events can open
package progression

//go:generate mockgen -destination=mock/mock_service.go -package=progressionmock github.com/KirkDiggler/rpg-wilds/internal/services/progression Service

import (
	"context"

	"github.com/KirkDiggler/rpg-wilds/internal/entities/wilds"
)

// Service defines the interface for player progression operations
type Service interface {
	// Inventory
	AddItem(ctx context.Context, input *AddItemInput) (*AddItemOutput, error)
	RemoveItem(ctx context.Context, input *RemoveItemInput) (*RemoveItemOutput, error)

	// Experience
	AddXP(ctx context.Context, input *AddXPInput) (*AddXPOutput, error)

	// Quests
	StartQuest(ctx context.Context, input *StartQuestInput) (*StartQuestOutput, error)
	AdvanceQuest(ctx context.Context, input *AdvanceQuestInput) (*AdvanceQuestOutput, error)
	CompleteQuest(ctx context.Context, input *CompleteQuestInput) (*CompleteQuestOutput, error)
	FailQuest(ctx context.Context, input *FailQuestInput) (*FailQuestOutput, error)

	// Sessions
	StartDialogue(ctx context.Context, input *StartDialogueInput) (*StartDialogueOutput, error)
	StartTrading(ctx context.Context, input *StartTradingInput) (*StartTradingOutput, error)
}

// AddItemInput defines the request for adding items to the player's pack
type AddItemInput struct {
	Player   *wilds.Player
	ItemID   string
	Quantity int
}

// AddItemOutput defines the response for adding items
type AddItemOutput struct {
	Total int
}

// RemoveItemInput defines the request for removing items
type RemoveItemInput struct {
	Player   *wilds.Player
	ItemID   string
	Quantity int
}

// RemoveItemOutput defines the response for removing items.
// Removed may be less than requested when the pack holds fewer.
type RemoveItemOutput struct {
	Removed   int
	Remaining int
}

// AddXPInput defines the request for granting experience
type AddXPInput struct {
	Player *wilds.Player
	Amount int
}

// AddXPOutput defines the response for granting experience
type AddXPOutput struct {
	TotalXP   int
	Level     int
	LeveledUp bool
}

// StartQuestInput defines the request for starting a quest
type StartQuestInput struct {
	Player  *wilds.Player
	QuestID string
}

// StartQuestOutput defines the response for starting a quest
type StartQuestOutput struct {
	Quest *wilds.Quest
}

// AdvanceQuestInput defines the request for advancing a quest one stage
type AdvanceQuestInput struct {
	Player  *wilds.Player
	QuestID string
}

// AdvanceQuestOutput defines the response for advancing a quest
type AdvanceQuestOutput struct {
	Quest *wilds.Quest
}

// CompleteQuestInput defines the request for completing a quest
type CompleteQuestInput struct {
	Player  *wilds.Player
	QuestID string
}

// CompleteQuestOutput defines the response for completing a quest
type CompleteQuestOutput struct {
	Quest *wilds.Quest
}

// FailQuestInput defines the request for failing a quest
type FailQuestInput struct {
	Player  *wilds.Player
	QuestID string
}

// FailQuestOutput defines the response for failing a quest
type FailQuestOutput struct {
	Quest *wilds.Quest
}

// StartDialogueInput defines the request for opening a conversation
type StartDialogueInput struct {
	Player     *wilds.Player
	DialogueID string
}

// StartDialogueOutput defines the response for opening a conversation
type StartDialogueOutput struct {
	Message   string
	FirstTime bool
}

// StartTradingInput defines the request for opening a trade
type StartTradingInput struct {
	Player     *wilds.Player
	MerchantID string
}

// StartTradingOutput defines the response for opening a trade
type StartTradingOutput struct {
	Message string
}
