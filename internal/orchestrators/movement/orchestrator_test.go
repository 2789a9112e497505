package movement_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-wilds/internal/entities/wilds"
	"github.com/KirkDiggler/rpg-wilds/internal/errors"
	"github.com/KirkDiggler/rpg-wilds/internal/orchestrators/encounter"
	encountermock "github.com/KirkDiggler/rpg-wilds/internal/orchestrators/encounter/mock"
	"github.com/KirkDiggler/rpg-wilds/internal/orchestrators/movement"
	"github.com/KirkDiggler/rpg-wilds/internal/orchestrators/wanderer"
	wanderermock "github.com/KirkDiggler/rpg-wilds/internal/orchestrators/wanderer/mock"
	"github.com/KirkDiggler/rpg-wilds/internal/repositories/content"
	"github.com/KirkDiggler/rpg-wilds/internal/testutils"
)

var testMap = []string{
	".......",
	".F~~R..",
	".C.A...",
	".V..E..",
	".......",
	".......",
	".....M.",
	".......",
}

type OrchestratorTestSuite struct {
	suite.Suite
	ctx           context.Context
	ctrl          *gomock.Controller
	roller        *testutils.ScriptedRoller
	mockEncounter *encountermock.MockService
	mockWanderer  *wanderermock.MockService
	orchestrator  *movement.Orchestrator
	sim           *wilds.SimulationContext
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.roller = testutils.NewScriptedRoller()
	s.mockEncounter = encountermock.NewMockService(s.ctrl)
	s.mockWanderer = wanderermock.NewMockService(s.ctrl)

	outpost := testutils.NewTestEvent("outpost_arrival", wilds.EventCategorySite, true, "outpost")
	repo := testutils.NewTestContent(&content.Tables{Events: []wilds.EventDefinition{outpost}})

	var err error
	s.orchestrator, err = movement.New(&movement.Config{
		Engine:    testutils.NewTestEngine(s.roller),
		Content:   repo,
		Encounter: s.mockEncounter,
		Wanderer:  s.mockWanderer,
	})
	s.Require().NoError(err)

	s.sim = testutils.NewTestSimulation(testMap, wilds.Position{X: 5, Y: 5})
}

func (s *OrchestratorTestSuite) move(dx, dy int) *movement.AttemptMoveOutput {
	out, err := s.orchestrator.AttemptMove(s.ctx, &movement.AttemptMoveInput{Sim: s.sim, DX: dx, DY: dy})
	s.Require().NoError(err)
	return out
}

// expectQuietTurn expects the encounter roll to find nothing, then ambience and the agent tick
func (s *OrchestratorTestSuite) expectQuietTurn(force bool) {
	s.mockEncounter.EXPECT().
		TryTrigger(s.ctx, &encounter.TryTriggerInput{Sim: s.sim, ForceBiomeEvent: force}).
		Return(&encounter.TryTriggerOutput{Kind: encounter.KindNone, Reason: encounter.ReasonQuiet}, nil)
	s.mockEncounter.EXPECT().
		RollAmbient(s.ctx, &encounter.RollAmbientInput{Sim: s.sim}).
		Return(&encounter.RollAmbientOutput{}, nil)
	s.mockWanderer.EXPECT().
		Tick(s.ctx, &wanderer.TickInput{Sim: s.sim}).
		Return(&wanderer.TickOutput{}, nil)
}

func (s *OrchestratorTestSuite) assertUnchanged(pos wilds.Position, minutes int) {
	s.Equal(pos, s.sim.Position)
	s.Equal(minutes, s.sim.Time.TotalMinutes())
	s.Equal(0, s.sim.Steps)
}

func (s *OrchestratorTestSuite) TestNewValidatesConfig() {
	orch, err := movement.New(&movement.Config{})
	s.Nil(orch)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestMountainRejects() {
	before := s.sim.Time.TotalMinutes()

	out := s.move(0, 1)

	s.True(out.Rejected())
	s.Contains([]string{
		"The mountain face is too steep to climb.",
		"Sheer rock blocks the way.",
		"There is no path over these peaks.",
	}, out.Message)
	s.Equal(0, out.MinutesSpent)
	s.assertUnchanged(wilds.Position{X: 5, Y: 5}, before)
	s.Empty(s.sim.Journal)
}

func (s *OrchestratorTestSuite) TestMountainRejectsFromEverySide() {
	before := s.sim.Time.TotalMinutes()
	approaches := []struct {
		from   wilds.Position
		dx, dy int
	}{
		{wilds.Position{X: 5, Y: 5}, 0, 1},
		{wilds.Position{X: 4, Y: 6}, 1, 0},
		{wilds.Position{X: 6, Y: 6}, -1, 0},
		{wilds.Position{X: 5, Y: 7}, 0, -1},
	}

	for _, a := range approaches {
		s.sim.Position = a.from
		out := s.move(a.dx, a.dy)
		s.True(out.Rejected())
		s.assertUnchanged(a.from, before)
	}
}

func (s *OrchestratorTestSuite) TestOutOfBoundsRejectsSilently() {
	s.sim.Position = wilds.Position{X: 0, Y: 0}
	before := s.sim.Time.TotalMinutes()

	for _, d := range [][2]int{{-1, 0}, {0, -1}} {
		out := s.move(d[0], d[1])
		s.True(out.Rejected())
		s.Empty(out.Message)
	}
	s.assertUnchanged(wilds.Position{}, before)
	s.Empty(s.roller.Sizes())
}

func (s *OrchestratorTestSuite) TestOnlyCardinalSteps() {
	for _, d := range [][2]int{{0, 0}, {1, 1}, {2, 0}, {0, -3}} {
		out := s.move(d[0], d[1])
		s.True(out.Rejected())
	}
	s.assertUnchanged(wilds.Position{X: 5, Y: 5}, wilds.NewGameTime(1, 8, 0).TotalMinutes())
}

func (s *OrchestratorTestSuite) TestRejectedOutsideExploration() {
	s.sim.Mode = wilds.ModeEvent

	out := s.move(0, -1)

	s.True(out.Rejected())
	s.Equal(wilds.Position{X: 5, Y: 5}, s.sim.Position)
}

func (s *OrchestratorTestSuite) TestOrdinaryMove() {
	s.expectQuietTurn(false)

	out := s.move(0, -1)

	s.Equal(movement.KindMoved, out.Kind)
	s.Equal(movement.BaseMoveMinutes, out.MinutesSpent)
	s.Equal(wilds.Position{X: 5, Y: 4}, s.sim.Position)
	s.Equal(wilds.NewGameTime(1, 8, 10), s.sim.Time)
	s.Equal(1, s.sim.Steps)
	s.Empty(s.roller.Sizes())
}

func (s *OrchestratorTestSuite) TestForestInRain() {
	s.sim.Position = wilds.Position{X: 1, Y: 0}
	s.sim.Weather.Type = wilds.WeatherRain
	s.expectQuietTurn(false)

	out := s.move(0, 1)

	s.Equal(movement.BaseMoveMinutes+movement.ForestExtraMinutes+movement.RainExtraMinutes, out.MinutesSpent)
	s.Equal("You enter the forest.", out.Message)
	s.Equal(wilds.BiomeForest, s.sim.CurrentBiome)
	s.True(s.sim.VisitedBiomes.Has("forest"))
	// rain hazard rolled and missed
	s.Equal([]int{100}, s.roller.Sizes())
	s.Equal(0, out.Damage)
}

func (s *OrchestratorTestSuite) TestNightAndStormHazards() {
	s.sim.Time = wilds.NewGameTime(1, 22, 0)
	s.sim.Weather.Type = wilds.WeatherStorm
	s.roller.Queue(5, 10)
	s.expectQuietTurn(false)

	out := s.move(0, -1)

	s.Equal(2, out.Damage)
	s.Equal(18, s.sim.Player.HP)
	s.Equal(movement.BaseMoveMinutes+movement.StormExtraMinutes, out.MinutesSpent)
}

func (s *OrchestratorTestSuite) TestHazardDeathEndsGame() {
	s.sim.Time = wilds.NewGameTime(1, 23, 0)
	s.sim.Player.HP = 1
	s.roller.Queue(1)

	out := s.move(0, -1)

	s.Equal(1, out.Damage)
	s.Equal(wilds.ModeGameOver, s.sim.Mode)
	s.Equal(wilds.Position{X: 5, Y: 4}, s.sim.Position)
}

func (s *OrchestratorTestSuite) TestRiverFailureThenSecondTurn() {
	s.sim.Position = wilds.Position{X: 2, Y: 0}
	s.roller.Queue(1)
	s.expectQuietTurn(false)

	out := s.move(0, 1)

	s.Equal(movement.KindMoved, out.Kind)
	s.Require().NotNil(out.Check)
	s.False(out.Check.Success)
	s.Equal(movement.RiverDamage, out.Damage)
	s.Equal(18, s.sim.Player.HP)
	s.True(s.sim.Status.IsExitingWater)
	s.Equal(wilds.Position{X: 2, Y: 1}, s.sim.Position)

	before := s.sim.Time.TotalMinutes()
	second := s.move(1, 0)

	s.Equal(movement.KindRiverSecondTurn, second.Kind)
	s.Equal(2*movement.BaseMoveMinutes, second.MinutesSpent)
	s.Equal(0, second.Damage)
	s.Equal(18, s.sim.Player.HP)
	s.False(s.sim.Status.IsExitingWater)
	s.Equal(wilds.Position{X: 2, Y: 1}, s.sim.Position)
	s.Equal(before+2*movement.BaseMoveMinutes, s.sim.Time.TotalMinutes())
}

func (s *OrchestratorTestSuite) TestRiverSuccessStillNeedsSecondTurn() {
	s.sim.Position = wilds.Position{X: 2, Y: 0}
	s.roller.Queue(8)
	s.expectQuietTurn(false)

	out := s.move(0, 1)

	s.True(out.Check.Success)
	s.Equal(10, out.Check.Total)
	s.Equal(0, out.Damage)
	s.True(s.sim.Status.IsExitingWater)
}

func (s *OrchestratorTestSuite) TestRefuge() {
	s.sim.Position = wilds.Position{X: 4, Y: 0}
	s.sim.Player.HP = 7
	before := s.sim.Time.TotalMinutes()

	out := s.move(0, 1)

	s.Equal(movement.KindRefuge, out.Kind)
	s.Equal(wilds.Position{X: 4, Y: 1}, s.sim.Position)
	s.Equal(20, s.sim.Player.HP)
	s.Equal(before+movement.RestMinutes, s.sim.Time.TotalMinutes())
	s.True(s.sim.VisitedRefuges.Has(wilds.Position{X: 4, Y: 1}))
	s.Len(s.sim.VisitedRefuges, 1)
}

func (s *OrchestratorTestSuite) TestVisitedRefugeRejects() {
	refuge := wilds.Position{X: 4, Y: 1}
	s.sim.VisitedRefuges.Add(refuge)
	s.sim.Position = wilds.Position{X: 5, Y: 1}
	s.sim.Player.HP = 7
	before := s.sim.Time.TotalMinutes()

	out := s.move(-1, 0)

	s.True(out.Rejected())
	s.NotEmpty(out.Message)
	s.Equal(7, s.sim.Player.HP)
	s.Len(s.sim.VisitedRefuges, 1)
	s.assertUnchanged(wilds.Position{X: 5, Y: 1}, before)
}

func (s *OrchestratorTestSuite) TestSiteTriggersOnce() {
	site := wilds.Position{X: 3, Y: 2}
	s.sim.Sites[site.Key()] = "outpost_arrival"
	s.sim.Position = wilds.Position{X: 3, Y: 3}

	out := s.move(0, -1)

	s.Equal(movement.KindSiteTrigger, out.Kind)
	s.Equal(site, s.sim.Position)
	s.Equal(wilds.ModeEvent, s.sim.Mode)
	s.Equal("outpost_arrival", s.sim.ActiveEvent.ID)
	s.True(s.sim.Flags.Has(wilds.SiteFlag(site)))
	s.Equal(movement.BaseMoveMinutes, out.MinutesSpent)

	// Later visits are ordinary moves
	s.sim.ActiveEvent = nil
	s.sim.Mode = wilds.ModeExploration
	s.sim.Position = wilds.Position{X: 3, Y: 3}
	s.sim.CurrentBiome = wilds.BiomePlains
	s.expectQuietTurn(false)

	again := s.move(0, -1)
	s.Equal(movement.KindMoved, again.Kind)
	s.Nil(s.sim.ActiveEvent)
}

func (s *OrchestratorTestSuite) TestSiteWithoutEvent() {
	s.sim.Position = wilds.Position{X: 3, Y: 3}

	out := s.move(0, -1)

	s.Equal(movement.KindSiteTrigger, out.Kind)
	s.NotEmpty(out.Message)
	s.Equal(wilds.ModeExploration, s.sim.Mode)
	s.True(s.sim.Flags.Has(wilds.SiteFlag(wilds.Position{X: 3, Y: 2})))
}

func (s *OrchestratorTestSuite) TestAgentInteraction() {
	s.sim.Agents = []*wilds.WanderingAgent{{
		ID:         "peddler",
		Name:       "the peddler",
		Position:   wilds.Position{X: 5, Y: 4},
		DialogueID: "peddler_greeting",
		ValidTiles: ".",
	}}
	s.mockWanderer.EXPECT().
		Tick(s.ctx, &wanderer.TickInput{Sim: s.sim}).
		Return(&wanderer.TickOutput{}, nil)

	out := s.move(0, -1)

	s.Equal(movement.KindInteraction, out.Kind)
	s.Equal(wilds.Position{X: 5, Y: 5}, s.sim.Position)
	s.Equal(movement.BaseMoveMinutes, out.MinutesSpent)
	s.Equal([]wilds.Command{{Type: wilds.CommandStartDialogue, TargetID: "peddler_greeting"}}, s.sim.Pending)
}

func (s *OrchestratorTestSuite) TestCityForcesBiomeEvent() {
	s.sim.Position = wilds.Position{X: 0, Y: 2}
	ev := testutils.NewTestEvent("city_gates", wilds.EventCategoryBiome, false, "city")

	s.mockEncounter.EXPECT().
		TryTrigger(s.ctx, &encounter.TryTriggerInput{Sim: s.sim, ForceBiomeEvent: true}).
		Return(&encounter.TryTriggerOutput{Triggered: true, Kind: encounter.KindEvent, Event: &ev}, nil)
	s.mockWanderer.EXPECT().Tick(s.ctx, gomock.Any()).Return(&wanderer.TickOutput{}, nil)

	out := s.move(1, 0)

	s.Equal(movement.KindMoved, out.Kind)
	s.Equal("city_gates", out.Encounter.Event.ID)
	s.Empty(out.Ambient)
}

func (s *OrchestratorTestSuite) TestAllBiomesTrophy() {
	for _, b := range []string{"plains", "forest", "water", "city"} {
		s.sim.VisitedBiomes.Add(b)
	}
	s.sim.Position = wilds.Position{X: 0, Y: 3}
	s.expectQuietTurn(true)

	s.move(1, 0)

	s.True(s.sim.Trophies.Has(movement.TrophyAllBiomes))
}

func (s *OrchestratorTestSuite) TestStepTrophy() {
	s.sim.Steps = 99
	s.expectQuietTurn(false)

	s.move(0, -1)

	s.Equal(100, s.sim.Steps)
	s.True(s.sim.Trophies.Has("steps_100"))
}

func (s *OrchestratorTestSuite) TestDestinationCompletesJourney() {
	s.sim.Position = wilds.Position{X: 4, Y: 4}

	out := s.move(0, -1)

	s.Equal(movement.KindMoved, out.Kind)
	s.Equal(wilds.ModeJourneyComplete, s.sim.Mode)
	s.Equal(wilds.Position{X: 4, Y: 3}, s.sim.Position)
}
