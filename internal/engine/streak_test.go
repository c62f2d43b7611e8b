package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2026, 3, d, 10, 30, 0, 0, time.UTC)
}

func TestNextStreak(t *testing.T) {
	today := day(10)
	yesterday := day(9)
	threeDaysAgo := day(7)

	tests := []struct {
		name       string
		current    int
		lastActive *time.Time
		want       int
	}{
		{"first ever activity", 0, nil, 1},
		{"same day repeat keeps streak", 5, &today, 5},
		{"same day establishes minimum of 1", 0, &today, 1},
		{"consecutive day increments", 5, &yesterday, 6},
		{"gap resets to 1, not 0", 5, &threeDaysAgo, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextStreak(tt.current, tt.lastActive, today))
		})
	}
}

func TestNextStreakIgnoresTimeOfDay(t *testing.T) {
	lateYesterday := time.Date(2026, 3, 9, 23, 59, 0, 0, time.UTC)
	earlyToday := time.Date(2026, 3, 10, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 6, NextStreak(5, &lateYesterday, earlyToday))
}

func TestDecayedStreak(t *testing.T) {
	now := day(10)
	yesterday := day(9)
	twoDaysAgo := day(8)

	assert.Equal(t, 5, DecayedStreak(5, &now, now), "same day survives")
	assert.Equal(t, 5, DecayedStreak(5, &yesterday, now), "one missed day is grace")
	assert.Equal(t, 0, DecayedStreak(5, &twoDaysAgo, now), "two missed days decay to zero")
	assert.Equal(t, 5, DecayedStreak(5, nil, now), "no last-active leaves streak alone")
}

func TestWeekdayIndex(t *testing.T) {
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, weekdayIndex(monday))
	assert.Equal(t, 6, weekdayIndex(sunday))
}
