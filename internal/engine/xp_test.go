package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"momentum/internal/storage"
)

func TestLevelBoundaries(t *testing.T) {
	assert.Equal(t, 1, LevelForXP(0))
	assert.Equal(t, 1, LevelForXP(199))
	assert.Equal(t, 2, LevelForXP(200))
	assert.Equal(t, 2, LevelForXP(399))
	assert.Equal(t, 3, LevelForXP(400))

	for k := 0; k <= 50; k++ {
		assert.Equal(t, k+1, LevelForXP(LevelUnit*k), "LevelForXP(200*%d)", k)
	}

	prev := LevelForXP(0)
	for xp := 1; xp <= 5000; xp++ {
		cur := LevelForXP(xp)
		require.GreaterOrEqual(t, cur, prev, "level must be monotonic in xp (xp=%d)", xp)
		prev = cur
	}
}

func TestNextLevelThreshold(t *testing.T) {
	assert.Equal(t, 200, NextLevelThreshold(1))
	assert.Equal(t, 2400, NextLevelThreshold(12))
}

func TestApplyXPDeltaRoundTrip(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	p := &storage.Profile{XP: 350, Level: 2, NextLevelXP: 400}

	ApplyXPDelta(p, 120, now)
	assert.Equal(t, 470, p.XP)
	assert.Equal(t, 3, p.Level)
	assert.Equal(t, 600, p.NextLevelXP)
	require.NotNil(t, p.LastActiveDate)
	assert.True(t, p.LastActiveDate.Equal(now))

	ApplyXPDelta(p, -120, now)
	assert.Equal(t, 350, p.XP)
	assert.Equal(t, 2, p.Level)
	assert.Equal(t, 400, p.NextLevelXP)
}

func TestApplyXPDeltaClampsAtZero(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	p := &storage.Profile{XP: 10, Level: 1, NextLevelXP: 200}

	ApplyXPDelta(p, -25, now)
	assert.Equal(t, 0, p.XP)
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 200, p.NextLevelXP)
}
