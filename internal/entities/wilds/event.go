package wilds

// EventCategory decides which selection path may pick an event
type EventCategory string

const (
	EventCategoryStandard  EventCategory = "standard"
	EventCategoryLore      EventCategory = "lore"
	EventCategoryEasterEgg EventCategory = "easter_egg"
	EventCategoryBiome     EventCategory = "biome"
	// EventCategorySite events are opened only by stepping on their outpost or landmark tile
	EventCategorySite EventCategory = "site"
)

// EventCategories lists every valid category
var EventCategories = []string{
	string(EventCategoryStandard),
	string(EventCategoryLore),
	string(EventCategoryEasterEgg),
	string(EventCategoryBiome),
	string(EventCategorySite),
}

// EventDefinition is a narrative event loaded from content
type EventDefinition struct {
	ID          string        `json:"id" yaml:"id"`
	Title       string        `json:"title" yaml:"title"`
	Description string        `json:"description" yaml:"description"`
	Category    EventCategory `json:"category" yaml:"category"`
	Biomes      []string      `json:"biomes,omitempty" yaml:"biomes"`
	IsUnique    bool          `json:"unique" yaml:"unique"`
	Choices     []Choice      `json:"choices" yaml:"choices"`
}

// EffectiveCategory treats an empty category as standard
func (e *EventDefinition) EffectiveCategory() EventCategory {
	if e.Category == "" {
		return EventCategoryStandard
	}
	return e.Category
}

// ValidIn reports whether the event may fire in the biome
func (e *EventDefinition) ValidIn(biome Biome) bool {
	return MatchesBiome(e.Biomes, biome)
}

// Choice is one selectable branch of an event
type Choice struct {
	Text     string    `json:"text" yaml:"text"`
	Outcomes []Outcome `json:"outcomes" yaml:"outcomes"`
}

// OutcomeType tags an Outcome
type OutcomeType string

const (
	OutcomeDirect     OutcomeType = "direct"
	OutcomeSkillCheck OutcomeType = "skill_check"
)

// Outcome is either a direct result list or a skill check with success and failure lists
type Outcome struct {
	Type OutcomeType `json:"type" yaml:"type"`

	// direct
	Results []EventResult `json:"results,omitempty" yaml:"results"`

	// skill_check
	Skill       string        `json:"skill,omitempty" yaml:"skill"`
	DC          int           `json:"dc,omitempty" yaml:"dc"`
	Success     []EventResult `json:"success,omitempty" yaml:"success"`
	Failure     []EventResult `json:"failure,omitempty" yaml:"failure"`
	SuccessText string        `json:"success_text,omitempty" yaml:"success_text"`
	FailureText string        `json:"failure_text,omitempty" yaml:"failure_text"`
}

// ResultType tags an EventResult
type ResultType string

const (
	ResultAddItem         ResultType = "add_item"
	ResultRemoveItem      ResultType = "remove_item"
	ResultAddXP           ResultType = "add_xp"
	ResultTakeDamage      ResultType = "take_damage"
	ResultAdvanceTime     ResultType = "advance_time"
	ResultAlignmentChange ResultType = "alignment_change"
	ResultStatusChange    ResultType = "status_change"
	ResultStatBoost       ResultType = "stat_boost"
	ResultHeal            ResultType = "heal"
	ResultStartQuest      ResultType = "start_quest"
	ResultSpecial         ResultType = "special"
)

// SpecialEffect is the payload tag of a special result
type SpecialEffect string

const (
	EffectSetFlag          SpecialEffect = "set_flag"
	EffectStartDialogue    SpecialEffect = "start_dialogue"
	EffectStartTrading     SpecialEffect = "start_trading"
	EffectActivateObject   SpecialEffect = "activate_object"
	EffectDeactivateObject SpecialEffect = "deactivate_object"
	EffectAdvanceQuest     SpecialEffect = "advance_quest"
	EffectCompleteQuest    SpecialEffect = "complete_quest"
	EffectFailQuest        SpecialEffect = "fail_quest"
	EffectStartCombat      SpecialEffect = "start_combat"
)

// EventResult is a tagged effect. Only the fields relevant to Type are read.
type EventResult struct {
	Type ResultType `json:"type" yaml:"type"`

	ItemID   string `json:"item_id,omitempty" yaml:"item_id"`
	Quantity int    `json:"quantity,omitempty" yaml:"quantity"`
	Amount   int    `json:"amount,omitempty" yaml:"amount"`
	Minutes  int    `json:"minutes,omitempty" yaml:"minutes"`
	Axis     string `json:"axis,omitempty" yaml:"axis"`
	Status   string `json:"status,omitempty" yaml:"status"`
	Stat     string `json:"stat,omitempty" yaml:"stat"`
	QuestID  string `json:"quest_id,omitempty" yaml:"quest_id"`

	Effect   SpecialEffect `json:"effect,omitempty" yaml:"effect"`
	Flag     string        `json:"flag,omitempty" yaml:"flag"`
	TargetID string        `json:"target_id,omitempty" yaml:"target_id"`
	EnemyIDs []string      `json:"enemy_ids,omitempty" yaml:"enemy_ids"`

	// Text replaces the generated consequence line when set
	Text string `json:"text,omitempty" yaml:"text"`
}

// Item is a static item table entry
type Item struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// AmbientMessage is a flavor line shown while exploring
type AmbientMessage struct {
	Text    string   `json:"text" yaml:"text"`
	Biomes  []string `json:"biomes,omitempty" yaml:"biomes"`
	Time    string   `json:"time,omitempty" yaml:"time"`
	Weather []string `json:"weather,omitempty" yaml:"weather"`
}

// Ambient time filters
const (
	AmbientAnyTime = ""
	AmbientDay     = "day"
	AmbientNight   = "night"
)

// Matches reports whether the message fits the biome, time of day and weather
func (a *AmbientMessage) Matches(biome Biome, night bool, weather WeatherType) bool {
	if !MatchesBiome(a.Biomes, biome) {
		return false
	}
	switch a.Time {
	case AmbientDay:
		if night {
			return false
		}
	case AmbientNight:
		if !night {
			return false
		}
	}
	if len(a.Weather) == 0 {
		return true
	}
	for _, w := range a.Weather {
		if WeatherType(w) == weather {
			return true
		}
	}
	return false
}
