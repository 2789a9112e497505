package wilds_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-wilds/internal/entities/wilds"
)

type SimulationContextTestSuite struct {
	suite.Suite
	sim *wilds.SimulationContext
}

func TestSimulationContextSuite(t *testing.T) {
	suite.Run(t, new(SimulationContextTestSuite))
}

func (s *SimulationContextTestSuite) SetupTest() {
	m, err := wilds.NewMap([]string{"S.F", "..."})
	s.Require().NoError(err)

	s.sim = wilds.NewSimulationContext(m, &wilds.Player{Name: "Ash", HP: 10, MaxHP: 10}, wilds.Position{X: 0, Y: 0})
}

func (s *SimulationContextTestSuite) TestNewSimulationContext() {
	s.Equal(wilds.ModeExploration, s.sim.Mode)
	s.Equal(wilds.NeverEncountered, s.sim.LastEncounterAt)
	s.Equal(-1, s.sim.MinutesSinceEncounter())
	s.Equal(wilds.BiomeStart, s.sim.CurrentBiome)
	s.True(s.sim.VisitedBiomes.Has(string(wilds.BiomeStart)))
	s.NotNil(s.sim.Player.Inventory)
	s.Equal(wilds.TileStart, s.sim.CurrentTile())
}

func (s *SimulationContextTestSuite) TestCommandQueueDrainsInOrder() {
	s.sim.Enqueue(wilds.Command{Type: wilds.CommandStartDialogue, TargetID: "hermit"})
	s.sim.Enqueue(wilds.Command{Type: wilds.CommandStartCombat, EnemyIDs: []string{"wolf"}})

	cmds := s.sim.DrainCommands()
	s.Require().Len(cmds, 2)
	s.Equal(wilds.CommandStartDialogue, cmds[0].Type)
	s.Equal(wilds.CommandStartCombat, cmds[1].Type)
	s.Empty(s.sim.DrainCommands())
}

func (s *SimulationContextTestSuite) TestJournalIsStampedAndBounded() {
	s.sim.Time = wilds.GameTime{Day: 2, Hour: 9, Minute: 5}
	s.sim.Logf(wilds.JournalMovement, "You walk %d steps.", 3)

	last := s.sim.Journal[len(s.sim.Journal)-1]
	s.Equal("[Day 2 09:05] You walk 3 steps.", last.String())

	for i := 0; i < wilds.MaxJournalEntries+10; i++ {
		s.sim.Log(wilds.JournalSystem, "tick")
	}
	s.Len(s.sim.Journal, wilds.MaxJournalEntries)
}

func (s *SimulationContextTestSuite) TestEventHistoryUniqueness() {
	h := &s.sim.History

	s.True(h.Record("shrine", true))
	s.False(h.Record("shrine", true))
	s.True(h.Record("campfire", false))
	s.True(h.Record("campfire", false))

	s.Equal([]string{"shrine", "campfire", "campfire"}, h.IDs)
	s.True(h.Has("shrine"))
	s.False(h.Has("ruins"))
}

func (s *SimulationContextTestSuite) TestPlayerHPIsClamped() {
	p := s.sim.Player

	s.Equal(10, p.TakeDamage(15))
	s.Equal(0, p.HP)
	s.True(p.IsDead())

	s.Equal(10, p.Heal(50))
	s.Equal(10, p.HP)

	p.SetHP(-3)
	s.Equal(0, p.HP)
}

func (s *SimulationContextTestSuite) TestStats() {
	stats := wilds.Stats{Strength: 14, Dexterity: 12}

	v, ok := stats.Value("STR")
	s.True(ok)
	s.Equal(14, v)

	s.True(stats.Boost("dexterity", 2))
	s.Equal(14, stats.Dexterity)

	_, ok = stats.Value("luck")
	s.False(ok)
	s.Equal(wilds.AbilityDexterity, wilds.WeaponClassRanged.AttackAbility())
	s.Equal(wilds.AbilityStrength, wilds.WeaponClassMelee.AttackAbility())
}
