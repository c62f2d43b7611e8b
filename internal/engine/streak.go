package engine

import "time"

// NextStreak returns the streak value after a streak-eligible action at
// the given time.
//
// Rules, on calendar-day granularity:
//   - no prior activity: the streak starts at 1
//   - same day: unchanged, but at least 1 (repeat actions don't stack)
//   - exactly one day gap: streak + 1
//   - longer gap: continuity is broken and the action starts a new
//     streak of 1
func NextStreak(current int, lastActive *time.Time, now time.Time) int {
	if lastActive == nil {
		return 1
	}
	switch gap := daysBetween(*lastActive, now); {
	case gap == 0:
		if current < 1 {
			return 1
		}
		return current
	case gap == 1:
		return current + 1
	default:
		return 1
	}
}

// DecayedStreak is the passive load-time rule: if more than one whole day
// passed since the last activity, the streak is gone. Unlike NextStreak
// it yields 0, not 1 — no action has happened yet; the next eligible
// action re-establishes a streak of 1.
func DecayedStreak(current int, lastActive *time.Time, now time.Time) int {
	if lastActive == nil {
		return current
	}
	if daysBetween(*lastActive, now) > 1 {
		return 0
	}
	return current
}

// daysBetween returns the whole calendar days from a to b, ignoring
// time of day.
func daysBetween(a, b time.Time) int {
	return int(dateOnly(b).Sub(dateOnly(a)).Hours() / 24)
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// sameDay reports whether two times fall on the same calendar day.
func sameDay(a, b time.Time) bool {
	return daysBetween(a, b) == 0
}

// sameISOWeek reports whether two times fall in the same ISO week.
func sameISOWeek(a, b time.Time) bool {
	ay, aw := a.ISOWeek()
	by, bw := b.ISOWeek()
	return ay == by && aw == bw
}

// weekdayIndex maps a time to a Monday-based index 0..6.
func weekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
