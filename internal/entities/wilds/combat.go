package wilds

// LootDrop is an independent chance for an enemy to drop an item
type LootDrop struct {
	ItemID   string `json:"item_id" yaml:"item_id"`
	Quantity int    `json:"quantity" yaml:"quantity"`
	// Chance is a percentage in [0, 100]
	Chance int `json:"chance" yaml:"chance"`
}

// EnemyTemplate is a static enemy table entry
type EnemyTemplate struct {
	ID          string     `json:"id" yaml:"id"`
	Name        string     `json:"name" yaml:"name"`
	HP          int        `json:"hp" yaml:"hp"`
	AC          int        `json:"ac" yaml:"ac"`
	Damage      string     `json:"damage" yaml:"damage"`
	AttackBonus int        `json:"attack_bonus" yaml:"attack_bonus"`
	XP          int        `json:"xp" yaml:"xp"`
	Biomes      []string   `json:"biomes,omitempty" yaml:"biomes"`
	Loot        []LootDrop `json:"loot,omitempty" yaml:"loot"`
}

// ValidIn reports whether the enemy may appear in the biome
func (t *EnemyTemplate) ValidIn(biome Biome) bool {
	return MatchesBiome(t.Biomes, biome)
}

// CombatPhase is whose turn it is
type CombatPhase string

const (
	PhasePlayerTurn CombatPhase = "player_turn"
	PhaseEnemyTurn  CombatPhase = "enemy_turn"
)

// CombatOutcome is ongoing until one side is out
type CombatOutcome string

const (
	OutcomeOngoing CombatOutcome = "ongoing"
	OutcomeVictory CombatOutcome = "victory"
	OutcomeDefeat  CombatOutcome = "defeat"
)

// EnemyStatus is alive or dead
type EnemyStatus string

const (
	EnemyAlive EnemyStatus = "alive"
	EnemyDead  EnemyStatus = "dead"
)

// HealthDescription is a coarse label derived from hp/maxHP
type HealthDescription string

const (
	HealthUnharmed        HealthDescription = "unharmed"
	HealthWounded         HealthDescription = "wounded"
	HealthSeverelyWounded HealthDescription = "severely_wounded"
	HealthDying           HealthDescription = "dying"
	HealthDead            HealthDescription = "dead"
)

// DescribeHealth buckets hp/maxHP: <30% dying, <60% severely wounded, <90% wounded.
// Zero or negative hp is dead.
func DescribeHealth(hp, maxHP int) HealthDescription {
	if hp <= 0 {
		return HealthDead
	}
	if maxHP <= 0 {
		return HealthUnharmed
	}

	ratio := float64(hp) / float64(maxHP)
	switch {
	case ratio < 0.3:
		return HealthDying
	case ratio < 0.6:
		return HealthSeverelyWounded
	case ratio < 0.9:
		return HealthWounded
	default:
		return HealthUnharmed
	}
}

// EnemyCombatState is a live enemy instance. HP may go negative.
type EnemyCombatState struct {
	ID          string            `json:"id"`
	TemplateID  string            `json:"template_id"`
	Name        string            `json:"name"`
	HP          int               `json:"hp"`
	MaxHP       int               `json:"max_hp"`
	AC          int               `json:"ac"`
	Damage      string            `json:"damage"`
	AttackBonus int               `json:"attack_bonus"`
	XP          int               `json:"xp"`
	Loot        []LootDrop        `json:"loot,omitempty"`
	Status      EnemyStatus       `json:"status"`
	Health      HealthDescription `json:"health"`
}

// EntityTypeEnemy is the core.Entity type of combat enemies
const EntityTypeEnemy = "enemy"

// NewEnemyCombatState instantiates a template
func NewEnemyCombatState(id string, tmpl *EnemyTemplate) *EnemyCombatState {
	loot := make([]LootDrop, len(tmpl.Loot))
	copy(loot, tmpl.Loot)

	return &EnemyCombatState{
		ID:          id,
		TemplateID:  tmpl.ID,
		Name:        tmpl.Name,
		HP:          tmpl.HP,
		MaxHP:       tmpl.HP,
		AC:          tmpl.AC,
		Damage:      tmpl.Damage,
		AttackBonus: tmpl.AttackBonus,
		XP:          tmpl.XP,
		Loot:        loot,
		Status:      EnemyAlive,
		Health:      DescribeHealth(tmpl.HP, tmpl.HP),
	}
}

// GetID implements core.Entity
func (e *EnemyCombatState) GetID() string {
	return e.ID
}

// GetType implements core.Entity
func (e *EnemyCombatState) GetType() string {
	return EntityTypeEnemy
}

// IsAlive reports whether the enemy can act and be targeted
func (e *EnemyCombatState) IsAlive() bool {
	return e.Status == EnemyAlive
}

// TakeDamage subtracts damage, marks the enemy dead at hp <= 0 and recomputes Health.
// It returns true only on the hit that killed the enemy.
func (e *EnemyCombatState) TakeDamage(amount int) bool {
	if amount > 0 {
		e.HP -= amount
	}

	killed := false
	if e.HP <= 0 && e.Status == EnemyAlive {
		e.Status = EnemyDead
		killed = true
	}
	e.Health = DescribeHealth(e.HP, e.MaxHP)
	return killed
}

// ClampedHP returns HP limited to [0, MaxHP]
func (e *EnemyCombatState) ClampedHP() int {
	switch {
	case e.HP < 0:
		return 0
	case e.HP > e.MaxHP:
		return e.MaxHP
	}
	return e.HP
}

// PlayerCombatSnapshot is the player's combat-relevant state, written back on finish
type PlayerCombatSnapshot struct {
	Name   string `json:"name"`
	HP     int    `json:"hp"`
	MaxHP  int    `json:"max_hp"`
	AC     int    `json:"ac"`
	Stats  Stats  `json:"stats"`
	Weapon Weapon `json:"weapon"`
}

// SnapshotPlayer copies the combat-relevant fields of p
func SnapshotPlayer(p *Player) PlayerCombatSnapshot {
	return PlayerCombatSnapshot{
		Name:   p.Name,
		HP:     p.HP,
		MaxHP:  p.MaxHP,
		AC:     p.AC,
		Stats:  p.Stats,
		Weapon: p.Weapon,
	}
}

// CombatEncounter identifies what started the fight
type CombatEncounter struct {
	ID       string   `json:"id"`
	EnemyIDs []string `json:"enemy_ids"`
}

// CombatLogEntry is one line of the combat log
type CombatLogEntry struct {
	Round int    `json:"round"`
	Actor string `json:"actor"`
	Text  string `json:"text"`
}

// CombatState exists from initiation until the fight is finished
type CombatState struct {
	ID        string               `json:"id"`
	Phase     CombatPhase          `json:"phase"`
	Outcome   CombatOutcome        `json:"outcome"`
	Player    PlayerCombatSnapshot `json:"player"`
	Enemies   []*EnemyCombatState  `json:"enemies"`
	Log       []CombatLogEntry     `json:"log"`
	Encounter CombatEncounter      `json:"encounter"`
	Round     int                  `json:"round"`
}

// AddLog appends a log line for the current round
func (c *CombatState) AddLog(actor, text string) {
	c.Log = append(c.Log, CombatLogEntry{Round: c.Round, Actor: actor, Text: text})
}

// LivingEnemies returns enemies that can still act
func (c *CombatState) LivingEnemies() []*EnemyCombatState {
	var living []*EnemyCombatState
	for _, e := range c.Enemies {
		if e.IsAlive() {
			living = append(living, e)
		}
	}
	return living
}

// AllEnemiesDead reports whether the player has won
func (c *CombatState) AllEnemiesDead() bool {
	return len(c.LivingEnemies()) == 0
}

// IsOver reports whether the fight reached a terminal outcome
func (c *CombatState) IsOver() bool {
	return c.Outcome != OutcomeOngoing
}

// SkillCheckResult is the immutable record of a d20 check
type SkillCheckResult struct {
	Roll     int  `json:"roll"`
	Modifier int  `json:"modifier"`
	Total    int  `json:"total"`
	DC       int  `json:"dc"`
	Success  bool `json:"success"`
}
