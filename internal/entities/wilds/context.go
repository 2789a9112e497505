package wilds

import "fmt"

// Mode is the top-level state of a running game
type Mode string

const (
	ModeExploration     Mode = "exploration"
	ModeEvent           Mode = "event"
	ModeCombat          Mode = "combat"
	ModeGameOver        Mode = "game_over"
	ModeJourneyComplete Mode = "journey_complete"
)

// PlayerStatus holds transient movement flags
type PlayerStatus struct {
	// IsExitingWater means the next move finishes a river crossing
	IsExitingWater bool `json:"is_exiting_water"`
}

// CommandType is a follow-up action requested during a resolution
type CommandType string

const (
	CommandStartDialogue CommandType = "start_dialogue"
	CommandStartTrading  CommandType = "start_trading"
	CommandStartCombat   CommandType = "start_combat"
)

// Command is queued during a resolution and executed by the owner loop afterwards
type Command struct {
	Type     CommandType `json:"type"`
	TargetID string      `json:"target_id,omitempty"`
	EnemyIDs []string    `json:"enemy_ids,omitempty"`
}

// JournalKind groups journal lines for display
type JournalKind string

const (
	JournalMovement JournalKind = "movement"
	JournalEvent    JournalKind = "event"
	JournalCombat   JournalKind = "combat"
	JournalAmbient  JournalKind = "ambient"
	JournalWeather  JournalKind = "weather"
	JournalTrophy   JournalKind = "trophy"
	JournalSystem   JournalKind = "system"
)

// MaxJournalEntries bounds the journal; the oldest lines are dropped first
const MaxJournalEntries = 500

// JournalEntry is a timestamped line of the player's journal
type JournalEntry struct {
	Day    int         `json:"day"`
	Hour   int         `json:"hour"`
	Minute int         `json:"minute"`
	Kind   JournalKind `json:"kind"`
	Text   string      `json:"text"`
}

func (j JournalEntry) String() string {
	return fmt.Sprintf("[Day %d %02d:%02d] %s", j.Day, j.Hour, j.Minute, j.Text)
}

// NeverEncountered is the LastEncounterAt value before the first encounter
const NeverEncountered = -1

// SimulationContext owns every piece of mutable game state.
// Resolvers receive it explicitly; nothing is kept in package globals.
type SimulationContext struct {
	Seed uint64 `json:"seed"`

	Map      *Map              `json:"map"`
	Sites    map[string]string `json:"sites,omitempty"`
	Time     GameTime          `json:"time"`
	Weather  Weather           `json:"weather"`
	Player   *Player           `json:"player"`
	Position Position          `json:"position"`
	Status   PlayerStatus      `json:"status"`

	VisitedRefuges PositionSet  `json:"visited_refuges"`
	Flags          FlagSet      `json:"flags"`
	History        EventHistory `json:"history"`

	// LastEncounterAt is in GameTime.TotalMinutes, NeverEncountered until the first one
	LastEncounterAt  int     `json:"last_encounter_at"`
	LastLoreEventDay int     `json:"last_lore_event_day"`
	CurrentBiome     Biome   `json:"current_biome"`
	VisitedBiomes    FlagSet `json:"visited_biomes"`
	Steps            int     `json:"steps"`
	Trophies         FlagSet `json:"trophies"`

	Journal []JournalEntry `json:"journal"`

	Mode         Mode              `json:"mode"`
	ActiveEvent  *EventDefinition  `json:"active_event,omitempty"`
	Combat       *CombatState      `json:"combat,omitempty"`
	Agents       []*WanderingAgent `json:"agents"`
	WorldObjects FlagSet           `json:"world_objects"`
	Pending      []Command         `json:"pending,omitempty"`
}

// NewSimulationContext creates a fresh context with the player standing on start
func NewSimulationContext(m *Map, player *Player, start Position) *SimulationContext {
	player.EnsureCollections()

	sim := &SimulationContext{
		Map:              m,
		Sites:            make(map[string]string),
		Time:             NewGameTime(1, 0, 0),
		Weather:          Weather{Type: WeatherClear},
		Player:           player,
		Position:         start,
		LastEncounterAt:  NeverEncountered,
		LastLoreEventDay: 0,
		Mode:             ModeExploration,
	}
	sim.EnsureCollections()

	if tile, ok := m.TileAt(start); ok {
		sim.CurrentBiome = BiomeOf(tile)
		sim.VisitedBiomes.Add(string(sim.CurrentBiome))
	}
	return sim
}

// EnsureCollections initializes nil sets, e.g. after decoding a save
func (s *SimulationContext) EnsureCollections() {
	if s.Sites == nil {
		s.Sites = make(map[string]string)
	}
	if s.VisitedRefuges == nil {
		s.VisitedRefuges = NewPositionSet()
	}
	if s.Flags == nil {
		s.Flags = NewFlagSet()
	}
	if s.VisitedBiomes == nil {
		s.VisitedBiomes = NewFlagSet()
	}
	if s.Trophies == nil {
		s.Trophies = NewFlagSet()
	}
	if s.WorldObjects == nil {
		s.WorldObjects = NewFlagSet()
	}
	if s.Player != nil {
		s.Player.EnsureCollections()
	}
}

// Log appends a journal line stamped with the current time
func (s *SimulationContext) Log(kind JournalKind, text string) {
	s.Journal = append(s.Journal, JournalEntry{
		Day:    s.Time.Day,
		Hour:   s.Time.Hour,
		Minute: s.Time.Minute,
		Kind:   kind,
		Text:   text,
	})
	if over := len(s.Journal) - MaxJournalEntries; over > 0 {
		s.Journal = append([]JournalEntry(nil), s.Journal[over:]...)
	}
}

// Logf is Log with formatting
func (s *SimulationContext) Logf(kind JournalKind, format string, args ...interface{}) {
	s.Log(kind, fmt.Sprintf(format, args...))
}

// Enqueue adds a follow-up command
func (s *SimulationContext) Enqueue(cmd Command) {
	s.Pending = append(s.Pending, cmd)
}

// DrainCommands returns and clears the queued commands in order
func (s *SimulationContext) DrainCommands() []Command {
	cmds := s.Pending
	s.Pending = nil
	return cmds
}

// CurrentTile returns the tile under the player
func (s *SimulationContext) CurrentTile() Tile {
	t, _ := s.Map.TileAt(s.Position)
	return t
}

// MinutesSinceEncounter returns elapsed minutes since the last encounter, or -1 if none happened
func (s *SimulationContext) MinutesSinceEncounter() int {
	if s.LastEncounterAt == NeverEncountered {
		return -1
	}
	return s.Time.TotalMinutes() - s.LastEncounterAt
}

// SiteFlag is the one-time trigger flag for an outpost or landmark at p
func SiteFlag(p Position) string {
	return "site:" + p.Key()
}
