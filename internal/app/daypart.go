package app

import "time"

type Daypart string

const (
	DaypartMorning   Daypart = "morning"
	DaypartAfternoon Daypart = "afternoon"
	DaypartEvening   Daypart = "evening"
	DaypartNight     Daypart = "night"
)

func DaypartOf(t time.Time) Daypart {
	switch h := t.Hour(); {
	case h >= 5 && h < 12:
		return DaypartMorning
	case h >= 12 && h < 18:
		return DaypartAfternoon
	case h >= 18 && h < 22:
		return DaypartEvening
	default:
		return DaypartNight
	}
}

func (d Daypart) Greeting() string {
	switch d {
	case DaypartMorning:
		return "Good morning"
	case DaypartAfternoon:
		return "Good afternoon"
	case DaypartEvening:
		return "Good evening"
	case DaypartNight:
		return "Good night"
	default:
		return "Hello"
	}
}

func (d Daypart) Emoji() string {
	switch d {
	case DaypartMorning:
		return "🌅"
	case DaypartAfternoon:
		return "☀️"
	case DaypartEvening:
		return "🌆"
	default:
		return "🌙"
	}
}
