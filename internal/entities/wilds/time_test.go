package wilds_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-wilds/internal/entities/wilds"
)

type GameTimeTestSuite struct {
	suite.Suite
}

func TestGameTimeSuite(t *testing.T) {
	suite.Run(t, new(GameTimeTestSuite))
}

func (s *GameTimeTestSuite) TestAdvance() {
	testCases := []struct {
		name     string
		start    wilds.GameTime
		minutes  int
		expected wilds.GameTime
	}{
		{
			name:     "within the hour",
			start:    wilds.GameTime{Day: 1, Hour: 8, Minute: 0},
			minutes:  10,
			expected: wilds.GameTime{Day: 1, Hour: 8, Minute: 10},
		},
		{
			name:     "minute rollover",
			start:    wilds.GameTime{Day: 1, Hour: 8, Minute: 55},
			minutes:  10,
			expected: wilds.GameTime{Day: 1, Hour: 9, Minute: 5},
		},
		{
			name:     "day rollover",
			start:    wilds.GameTime{Day: 1, Hour: 23, Minute: 50},
			minutes:  20,
			expected: wilds.GameTime{Day: 2, Hour: 0, Minute: 10},
		},
		{
			name:     "rest of eight hours",
			start:    wilds.GameTime{Day: 3, Hour: 20, Minute: 30},
			minutes:  480,
			expected: wilds.GameTime{Day: 4, Hour: 4, Minute: 30},
		},
		{
			name:     "exactly one day",
			start:    wilds.GameTime{Day: 1, Hour: 12, Minute: 0},
			minutes:  wilds.MinutesPerDay,
			expected: wilds.GameTime{Day: 2, Hour: 12, Minute: 0},
		},
		{
			name:     "zero is a no-op",
			start:    wilds.GameTime{Day: 2, Hour: 5, Minute: 59},
			minutes:  0,
			expected: wilds.GameTime{Day: 2, Hour: 5, Minute: 59},
		},
		{
			name:     "negative is ignored",
			start:    wilds.GameTime{Day: 2, Hour: 5, Minute: 59},
			minutes:  -30,
			expected: wilds.GameTime{Day: 2, Hour: 5, Minute: 59},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			t := tc.start
			t.Advance(tc.minutes)
			s.Equal(tc.expected, t)
		})
	}
}

func (s *GameTimeTestSuite) TestAdvanceNormalizesForAnyDuration() {
	for minutes := 0; minutes <= 3*wilds.MinutesPerDay; minutes += 37 {
		t := wilds.GameTime{Day: 1, Hour: 7, Minute: 13}
		before := t.TotalMinutes()

		t.Advance(minutes)

		s.GreaterOrEqual(t.Minute, 0)
		s.Less(t.Minute, 60)
		s.GreaterOrEqual(t.Hour, 0)
		s.Less(t.Hour, 24)
		s.Equal(before+minutes, t.TotalMinutes())
		s.Equal(1+(7*60+13+minutes)/wilds.MinutesPerDay, t.Day)
	}
}

func (s *GameTimeTestSuite) TestIsNight() {
	s.True(wilds.GameTime{Day: 1, Hour: 20}.IsNight())
	s.True(wilds.GameTime{Day: 1, Hour: 0}.IsNight())
	s.True(wilds.GameTime{Day: 1, Hour: 5, Minute: 59}.IsNight())
	s.False(wilds.GameTime{Day: 1, Hour: 6}.IsNight())
	s.False(wilds.GameTime{Day: 1, Hour: 19, Minute: 59}.IsNight())
}

func (s *GameTimeTestSuite) TestNewGameTimeNormalizes() {
	t := wilds.NewGameTime(0, 25, 61)
	s.Equal(wilds.GameTime{Day: 2, Hour: 2, Minute: 1}, t)
	s.Equal("Day 2, 02:01", t.String())
}
