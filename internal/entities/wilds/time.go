package wilds

import "fmt"

const (
	// MinutesPerHour is the number of in-game minutes in an hour
	MinutesPerHour = 60
	// HoursPerDay is the number of in-game hours in a day
	HoursPerDay = 24
	// MinutesPerDay is the number of in-game minutes in a day
	MinutesPerDay = MinutesPerHour * HoursPerDay

	nightStartHour = 20
	nightEndHour   = 6
)

// GameTime is the in-game clock. Day starts at 1.
type GameTime struct {
	Day    int `json:"day"`
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// NewGameTime creates a normalized game time
func NewGameTime(day, hour, minute int) GameTime {
	t := GameTime{Day: day}
	if t.Day < 1 {
		t.Day = 1
	}
	t.Advance(hour*MinutesPerHour + minute)
	return t
}

// Advance moves the clock forward, rolling minutes into hours and hours into days.
// Non-positive values are ignored.
func (t *GameTime) Advance(minutes int) {
	if minutes <= 0 {
		return
	}

	total := t.Minute + minutes
	t.Minute = total % MinutesPerHour

	hours := t.Hour + total/MinutesPerHour
	t.Hour = hours % HoursPerDay
	t.Day += hours / HoursPerDay
}

// IsNight reports whether the hour falls between 20:00 and 05:59
func (t GameTime) IsNight() bool {
	return t.Hour >= nightStartHour || t.Hour < nightEndHour
}

// TotalMinutes returns the minutes elapsed since day 1 00:00
func (t GameTime) TotalMinutes() int {
	return (t.Day-1)*MinutesPerDay + t.Hour*MinutesPerHour + t.Minute
}

func (t GameTime) String() string {
	return fmt.Sprintf("Day %d, %02d:%02d", t.Day, t.Hour, t.Minute)
}

// WeatherType is the current sky condition
type WeatherType string

const (
	WeatherClear WeatherType = "clear"
	WeatherRain  WeatherType = "rain"
	WeatherStorm WeatherType = "storm"
)

// Weather is owned by the weather system; movement and encounters only read it.
type Weather struct {
	Type WeatherType `json:"type"`
	// ChangedAt is the GameTime.TotalMinutes value of the last re-roll
	ChangedAt int `json:"changed_at"`
}
