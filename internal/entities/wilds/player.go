package wilds

import "strings"

// Ability names used by skill checks and stat boosts
const (
	AbilityStrength     = "strength"
	AbilityDexterity    = "dexterity"
	AbilityConstitution = "constitution"
	AbilityIntelligence = "intelligence"
	AbilityWisdom       = "wisdom"
	AbilityCharisma     = "charisma"
)

var abilityAliases = map[string]string{
	"str": AbilityStrength,
	"dex": AbilityDexterity,
	"con": AbilityConstitution,
	"int": AbilityIntelligence,
	"wis": AbilityWisdom,
	"cha": AbilityCharisma,
}

// NormalizeAbility resolves short names ("str") and case to the canonical ability name
func NormalizeAbility(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if full, ok := abilityAliases[n]; ok {
		return full
	}
	return n
}

// Stats holds the six ability scores
type Stats struct {
	Strength     int `json:"strength" yaml:"strength"`
	Dexterity    int `json:"dexterity" yaml:"dexterity"`
	Constitution int `json:"constitution" yaml:"constitution"`
	Intelligence int `json:"intelligence" yaml:"intelligence"`
	Wisdom       int `json:"wisdom" yaml:"wisdom"`
	Charisma     int `json:"charisma" yaml:"charisma"`
}

func (s *Stats) field(name string) *int {
	switch NormalizeAbility(name) {
	case AbilityStrength:
		return &s.Strength
	case AbilityDexterity:
		return &s.Dexterity
	case AbilityConstitution:
		return &s.Constitution
	case AbilityIntelligence:
		return &s.Intelligence
	case AbilityWisdom:
		return &s.Wisdom
	case AbilityCharisma:
		return &s.Charisma
	}
	return nil
}

// Value returns the named ability score
func (s Stats) Value(name string) (int, bool) {
	f := s.field(name)
	if f == nil {
		return 0, false
	}
	return *f, true
}

// Boost adds amount to the named ability score
func (s *Stats) Boost(name string, amount int) bool {
	f := s.field(name)
	if f == nil {
		return false
	}
	*f += amount
	return true
}

// WeaponClass decides which ability drives attack rolls
type WeaponClass string

const (
	WeaponClassMelee   WeaponClass = "melee"
	WeaponClassFinesse WeaponClass = "finesse"
	WeaponClassRanged  WeaponClass = "ranged"
)

// AttackAbility returns STR for melee weapons and DEX for finesse and ranged
func (c WeaponClass) AttackAbility() string {
	switch c {
	case WeaponClassFinesse, WeaponClassRanged:
		return AbilityDexterity
	default:
		return AbilityStrength
	}
}

// Weapon is the player's equipped weapon
type Weapon struct {
	Name   string      `json:"name" yaml:"name"`
	Damage string      `json:"damage" yaml:"damage"`
	Class  WeaponClass `json:"class" yaml:"class"`
}

// QuestStatus tracks a quest's lifecycle
type QuestStatus string

const (
	QuestActive    QuestStatus = "active"
	QuestCompleted QuestStatus = "completed"
	QuestFailed    QuestStatus = "failed"
)

// Quest is a player's progress through a quest
type Quest struct {
	ID     string      `json:"id"`
	Stage  int         `json:"stage"`
	Status QuestStatus `json:"status"`
}

// Player is the persistent player state
type Player struct {
	Name      string            `json:"name"`
	HP        int               `json:"hp"`
	MaxHP     int               `json:"max_hp"`
	AC        int               `json:"ac"`
	Level     int               `json:"level"`
	XP        int               `json:"xp"`
	Stats     Stats             `json:"stats"`
	Weapon    Weapon            `json:"weapon"`
	Alignment map[string]int    `json:"alignment"`
	Statuses  FlagSet           `json:"statuses"`
	Inventory map[string]int    `json:"inventory"`
	Quests    map[string]*Quest `json:"quests"`

	// Contacts records dialogue and trading partners the player has met
	Contacts FlagSet `json:"contacts"`
}

// EnsureCollections initializes nil maps, e.g. after decoding an older save
func (p *Player) EnsureCollections() {
	if p.Alignment == nil {
		p.Alignment = make(map[string]int)
	}
	if p.Statuses == nil {
		p.Statuses = NewFlagSet()
	}
	if p.Inventory == nil {
		p.Inventory = make(map[string]int)
	}
	if p.Quests == nil {
		p.Quests = make(map[string]*Quest)
	}
	if p.Contacts == nil {
		p.Contacts = NewFlagSet()
	}
}

// TakeDamage lowers HP without going below zero and returns the damage actually taken
func (p *Player) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	if amount > p.HP {
		amount = p.HP
	}
	p.HP -= amount
	return amount
}

// Heal raises HP without exceeding MaxHP and returns the amount restored
func (p *Player) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	if p.HP+amount > p.MaxHP {
		amount = p.MaxHP - p.HP
	}
	p.HP += amount
	return amount
}

// SetHP assigns HP clamped to [0, MaxHP]
func (p *Player) SetHP(hp int) {
	switch {
	case hp < 0:
		p.HP = 0
	case hp > p.MaxHP:
		p.HP = p.MaxHP
	default:
		p.HP = hp
	}
}

// IsDead reports whether the player has no HP left
func (p *Player) IsDead() bool {
	return p.HP <= 0
}
