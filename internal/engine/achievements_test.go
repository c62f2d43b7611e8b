package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"momentum/internal/storage"
)

func TestFreshProfileEarnsNothing(t *testing.T) {
	p := &storage.Profile{Level: 1}
	checker := NewAchievementChecker(p)

	assert.Equal(t, 0, checker.CountEarned())
	assert.Equal(t, 0, checker.TotalBonusXP())
	assert.Greater(t, checker.CountTotal(), 0)
}

func TestAchievementPredicates(t *testing.T) {
	p := &storage.Profile{
		Level:              10,
		Streak:             30,
		WorkoutsCompleted:  30,
		FocusSessionsTotal: 100,
		GoalsCompleted:     50,
		TotalReadingTime:   600,
		MentalArticlesRead: 50,
	}
	earned := map[string]bool{}
	for _, a := range NewAchievementChecker(p).Evaluate() {
		earned[a.ID] = a.Earned
	}

	assert.True(t, earned["week_strong"])
	assert.True(t, earned["consistency_king"])
	assert.True(t, earned["fitness_beast"])
	assert.True(t, earned["knowledge_seeker"])
	assert.True(t, earned["deep_reader"])
	assert.True(t, earned["productivity_master"])
	assert.True(t, earned["goal_crusher"])
	assert.True(t, earned["rising"])
	assert.True(t, earned["seasoned"])
	assert.False(t, earned["master"], "level 10 is below the level-20 badge")
}

// Achievements must be monotonic: a profile that dominates another on
// every counter earns at least the same badges.
func TestAchievementMonotonicity(t *testing.T) {
	base := &storage.Profile{
		Level:              4,
		Streak:             6,
		WorkoutsCompleted:  29,
		FocusSessionsTotal: 99,
		GoalsCompleted:     49,
		TotalReadingTime:   599,
		MentalArticlesRead: 49,
	}
	more := &storage.Profile{
		Level:              base.Level + 3,
		Streak:             base.Streak + 10,
		WorkoutsCompleted:  base.WorkoutsCompleted + 5,
		FocusSessionsTotal: base.FocusSessionsTotal + 5,
		GoalsCompleted:     base.GoalsCompleted + 5,
		TotalReadingTime:   base.TotalReadingTime + 100,
		MentalArticlesRead: base.MentalArticlesRead + 10,
	}

	baseEarned := NewAchievementChecker(base).Evaluate()
	moreEarned := NewAchievementChecker(more).Evaluate()
	require.Equal(t, len(baseEarned), len(moreEarned))

	for i := range baseEarned {
		if baseEarned[i].Earned {
			assert.True(t, moreEarned[i].Earned, "badge %s was un-earned by progress", baseEarned[i].ID)
		}
	}
}

func TestTotalBonusXPSumsEarnedPoints(t *testing.T) {
	p := &storage.Profile{Level: 5, Streak: 7}
	checker := NewAchievementChecker(p)

	want := 0
	for _, a := range checker.Evaluate() {
		if a.Earned {
			want += a.Points
		}
	}
	assert.Equal(t, want, checker.TotalBonusXP())
	assert.Equal(t, 100, checker.TotalBonusXP(), "week_strong (50) + rising (50)")
}
