package weather_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-wilds/internal/entities/wilds"
	"github.com/KirkDiggler/rpg-wilds/internal/orchestrators/weather"
	"github.com/KirkDiggler/rpg-wilds/internal/testutils"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctx          context.Context
	roller       *testutils.ScriptedRoller
	orchestrator *weather.Orchestrator
	sim          *wilds.SimulationContext
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.roller = testutils.NewScriptedRoller()

	var err error
	s.orchestrator, err = weather.New(&weather.Config{Engine: testutils.NewTestEngine(s.roller)})
	s.Require().NoError(err)

	s.sim = testutils.NewTestSimulation([]string{"S."}, wilds.Position{})
}

func (s *OrchestratorTestSuite) TestNoRerollBeforeSixHours() {
	s.sim.Time.Advance(weather.RerollAfterMinutes - 1)

	out, err := s.orchestrator.Update(s.ctx, &weather.UpdateInput{Sim: s.sim})
	s.Require().NoError(err)

	s.False(out.Rolled)
	s.Equal(wilds.WeatherClear, s.sim.Weather.Type)
	s.Empty(s.roller.Sizes())
}

func (s *OrchestratorTestSuite) TestBuckets() {
	testCases := []struct {
		name     string
		roll     int
		expected wilds.WeatherType
	}{
		{name: "clear low", roll: 1, expected: wilds.WeatherClear},
		{name: "clear high", roll: 60, expected: wilds.WeatherClear},
		{name: "rain low", roll: 61, expected: wilds.WeatherRain},
		{name: "rain high", roll: 90, expected: wilds.WeatherRain},
		{name: "storm", roll: 91, expected: wilds.WeatherStorm},
		{name: "storm high", roll: 100, expected: wilds.WeatherStorm},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			sim := testutils.NewTestSimulation([]string{"S."}, wilds.Position{})
			sim.Time.Advance(weather.RerollAfterMinutes)
			s.roller.Queue(tc.roll)

			out, err := s.orchestrator.Update(s.ctx, &weather.UpdateInput{Sim: sim})
			s.Require().NoError(err)

			s.True(out.Rolled)
			s.Equal(tc.expected, sim.Weather.Type)
			s.Equal(sim.Time.TotalMinutes(), sim.Weather.ChangedAt)
		})
	}
}

func (s *OrchestratorTestSuite) TestChangeIsJournaled() {
	s.sim.Time.Advance(weather.RerollAfterMinutes)
	s.roller.Queue(95)

	out, err := s.orchestrator.Update(s.ctx, &weather.UpdateInput{Sim: s.sim})
	s.Require().NoError(err)

	s.True(out.Changed)
	s.Require().Len(s.sim.Journal, 1)
	s.Equal(wilds.JournalWeather, s.sim.Journal[0].Kind)
}

func (s *OrchestratorTestSuite) TestSameWeatherResetsTimerQuietly() {
	s.sim.Time.Advance(weather.RerollAfterMinutes + 30)
	s.roller.Queue(10)

	out, err := s.orchestrator.Update(s.ctx, &weather.UpdateInput{Sim: s.sim})
	s.Require().NoError(err)

	s.True(out.Rolled)
	s.False(out.Changed)
	s.Empty(s.sim.Journal)
	s.Equal(s.sim.Time.TotalMinutes(), s.sim.Weather.ChangedAt)
}
