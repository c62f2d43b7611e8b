package engine

import (
	"time"

	"momentum/internal/storage"
)

// LevelUnit is the fixed XP cost of one level.
const LevelUnit = 200

// XP awards per activity. Values are fixed per action so that undoing an
// action can deduct exactly what it granted.
const (
	XPGoal       = 25
	XPHabit      = 15
	XPWorkout    = 50
	XPFocusDeep  = 75
	XPFocusQuick = 25
	XPArticle    = 15
	XPQuote      = 10
)

// Focus session lengths in minutes.
const (
	FocusDeepMinutes  = 90
	FocusQuickMinutes = 15
)

// LevelForXP returns the level for a cumulative XP total. Level is a pure
// function of XP, never of elapsed actions, so completing and undoing an
// action round-trips exactly. Negative XP is invalid input; callers clamp
// before calling.
func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/LevelUnit + 1
}

// NextLevelThreshold returns the XP total required to advance past the
// given level.
func NextLevelThreshold(level int) int {
	return level * LevelUnit
}

// ApplyXPDelta applies an XP delta to the profile, clamping at zero, and
// recomputes the cached level and next-level threshold so they can never
// drift from the XP total. LastActiveDate is bumped to now.
func ApplyXPDelta(p *storage.Profile, delta int, now time.Time) {
	newXP := p.XP + delta
	if newXP < 0 {
		newXP = 0
	}
	p.XP = newXP
	p.Level = LevelForXP(newXP)
	p.NextLevelXP = NextLevelThreshold(p.Level)
	t := now
	p.LastActiveDate = &t
}
