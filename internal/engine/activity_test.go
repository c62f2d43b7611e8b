package engine

import (
	"context"
	"io"
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"momentum/internal/storage"
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestService(t *testing.T) (*Service, *testClock) {
	t.Helper()
	ctx := context.Background()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")
	db, err := storage.Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	log := logrus.New()
	log.SetOutput(io.Discard)

	clock := &testClock{now: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}
	svc := NewService(db,
		WithClock(clock.Now),
		WithRand(rand.New(rand.NewSource(1))),
		WithLogger(log),
	)
	return svc, clock
}

func initProfile(t *testing.T, svc *Service) *storage.Profile {
	t.Helper()
	p, err := svc.InitProfile(context.Background(), "Test User", "test@example.com")
	require.NoError(t, err)
	return p
}

func TestInitProfile(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	p := initProfile(t, svc)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, 0, p.XP)
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 200, p.NextLevelXP)
	assert.Equal(t, 0, p.Streak)
	assert.Equal(t, "Mar 2026", p.JoinDate)

	_, err := svc.InitProfile(ctx, "Someone Else", "")
	assert.ErrorIs(t, err, ErrProfileExists)
}

func TestMutationsWithoutProfileAreSilentNoops(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	res, err := svc.CompleteWorkout(ctx)
	require.NoError(t, err)
	assert.Nil(t, res)

	res, err = svc.CompleteFocusSession(ctx, FocusDeep)
	require.NoError(t, err)
	assert.Nil(t, res)

	res, err = svc.ReadArticle(ctx, CategoryMental)
	require.NoError(t, err)
	assert.Nil(t, res)
}

// The end-to-end scenario: four same-day workouts take a fresh profile
// to exactly level 2 without double-counting the streak.
func TestWorkoutScenario(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	initProfile(t, svc)

	res, err := svc.CompleteWorkout(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50, res.XP)
	assert.Equal(t, 1, res.LevelAfter)
	assert.Equal(t, 1, res.Streak)

	for i := 0; i < 3; i++ {
		res, err = svc.CompleteWorkout(ctx)
		require.NoError(t, err)
	}
	assert.Equal(t, 200, res.XP)
	assert.Equal(t, 2, res.LevelAfter)
	assert.True(t, res.LevelUp)
	assert.Equal(t, 1, res.Streak, "same-day repeats must not grow the streak")

	p, err := svc.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, p.WorkoutsCompleted)
	assert.Equal(t, 200, p.XP)
	assert.Equal(t, 2, p.Level)
	assert.Equal(t, 400, p.NextLevelXP)
}

func TestGoalCompleteUndoIsExactInverse(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	initProfile(t, svc)

	g, err := svc.AddGoal(ctx, "Ship the report", "career")
	require.NoError(t, err)

	before, err := svc.Profile(ctx)
	require.NoError(t, err)

	res, err := svc.CompleteGoal(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, before.XP+25, res.XP)

	p, err := svc.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, p.GoalsCompleted)

	// Completing twice is an error, not a double grant.
	_, err = svc.CompleteGoal(ctx, g.ID)
	var stateErr StateError
	require.ErrorAs(t, err, &stateErr)

	res, err = svc.UncompleteGoal(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, before.XP, res.XP)
	assert.Equal(t, before.Level, res.LevelAfter)

	p, err = svc.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, p.GoalsCompleted)
	assert.Equal(t, before.XP, p.XP)
	assert.Equal(t, before.NextLevelXP, p.NextLevelXP)

	stored, err := svc.GoalRepo().Get(ctx, g.ID)
	require.NoError(t, err)
	assert.False(t, stored.Completed)
}

func TestUncompleteGoalClampsAtZero(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	initProfile(t, svc)

	g, err := svc.AddGoal(ctx, "Stretch", "health")
	require.NoError(t, err)
	_, err = svc.CompleteGoal(ctx, g.ID)
	require.NoError(t, err)

	// Pin the stored total below the pending deduction.
	p, err := svc.profiles.Get(ctx)
	require.NoError(t, err)
	p.XP = 10
	require.NoError(t, svc.profiles.Put(ctx, p))

	res, err := svc.UncompleteGoal(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, res.XP, "deduction clamps at zero instead of going negative")
	assert.Equal(t, 1, res.LevelAfter)

	stored, err := svc.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.XP)
	assert.Equal(t, 200, stored.NextLevelXP)
}

func TestDeleteCompletedGoalReversesXP(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	initProfile(t, svc)

	g, err := svc.AddGoal(ctx, "Meditate", "health")
	require.NoError(t, err)
	_, err = svc.CompleteGoal(ctx, g.ID)
	require.NoError(t, err)

	res, err := svc.DeleteGoal(ctx, g.ID)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, -25, res.XPDelta)

	p, err := svc.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, p.XP)
	assert.Equal(t, 0, p.GoalsCompleted)

	goals, err := svc.GoalRepo().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, goals)
}

func TestStreakGrowsAcrossConsecutiveDays(t *testing.T) {
	svc, clock := newTestService(t)
	ctx := context.Background()
	initProfile(t, svc)

	res, err := svc.CompleteWorkout(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Streak)

	clock.Advance(24 * time.Hour)
	res, err = svc.CompleteWorkout(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Streak)

	clock.Advance(24 * time.Hour)
	res, err = svc.CompleteWorkout(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Streak)

	// A 3-day gap breaks continuity; the action starts a fresh streak.
	clock.Advance(3 * 24 * time.Hour)
	res, err = svc.CompleteWorkout(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Streak)
}

func TestLoadTimeStreakDecay(t *testing.T) {
	svc, clock := newTestService(t)
	ctx := context.Background()
	initProfile(t, svc)

	_, err := svc.CompleteWorkout(ctx)
	require.NoError(t, err)

	// One missed day is grace.
	clock.Advance(24 * time.Hour)
	p, err := svc.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Streak)

	// Two missed days decay the streak to zero without any action.
	clock.Advance(24 * time.Hour)
	p, err = svc.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Streak)

	// The next eligible action re-establishes a streak of 1.
	res, err := svc.CompleteWorkout(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Streak)
}

func TestFocusSessions(t *testing.T) {
	svc, clock := newTestService(t)
	ctx := context.Background()
	initProfile(t, svc)

	res, err := svc.CompleteFocusSession(ctx, FocusDeep)
	require.NoError(t, err)
	assert.Equal(t, 75, res.XPDelta)

	res, err = svc.CompleteFocusSession(ctx, FocusQuick)
	require.NoError(t, err)
	assert.Equal(t, 25, res.XPDelta)

	p, err := svc.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, p.FocusSessionsTotal)
	assert.Equal(t, 2, p.FocusSessionsToday)
	assert.Equal(t, FocusDeepMinutes+FocusQuickMinutes, p.TotalFocusTime)

	// The daily counter resets on the next day; the lifetime one doesn't.
	clock.Advance(24 * time.Hour)
	p, err = svc.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, p.FocusSessionsTotal)
	assert.Equal(t, 0, p.FocusSessionsToday)
}

func TestReadArticle(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	initProfile(t, svc)

	totalMinutes := 0
	for i := 0; i < 10; i++ {
		res, err := svc.ReadArticle(ctx, CategoryMental)
		require.NoError(t, err)
		assert.Equal(t, 15, res.XPDelta)
		assert.GreaterOrEqual(t, res.ReadingMinutes, 3)
		assert.LessOrEqual(t, res.ReadingMinutes, 12)
		totalMinutes += res.ReadingMinutes
	}
	_, err := svc.ReadArticle(ctx, CategorySocial)
	require.NoError(t, err)

	p, err := svc.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, p.MentalArticlesRead)
	assert.Equal(t, 1, p.SocialArticlesRead)
	assert.Equal(t, 11, p.ArticlesRead())
	assert.GreaterOrEqual(t, p.TotalReadingTime, totalMinutes)
}

func TestQuoteGrantsXPButNotStreak(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	initProfile(t, svc)

	res, err := svc.AddQuote(ctx, "He who has a why can bear almost any how.", "Nietzsche", "motivation")
	require.NoError(t, err)
	assert.Equal(t, 10, res.XPDelta)
	assert.Equal(t, 0, res.Streak, "quotes are not streak-eligible")

	quotes, err := svc.QuoteRepo().List(ctx)
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Equal(t, "Nietzsche", quotes[0].Author)
}

func TestHabitToggle(t *testing.T) {
	svc, clock := newTestService(t)
	ctx := context.Background()
	initProfile(t, svc)

	h, err := svc.AddHabit(ctx, "Cold shower", "health")
	require.NoError(t, err)

	res, err := svc.CompleteHabit(ctx, h.ID)
	require.NoError(t, err)
	assert.Equal(t, 15, res.XPDelta)
	assert.Equal(t, 1, res.Streak)

	stored, err := svc.HabitRepo().Get(ctx, h.ID)
	require.NoError(t, err)
	assert.True(t, stored.CompletedToday)
	assert.Equal(t, 1, stored.Streak)

	// Checking off twice in one day is an error.
	_, err = svc.CompleteHabit(ctx, h.ID)
	var stateErr StateError
	require.ErrorAs(t, err, &stateErr)

	res, err = svc.UncompleteHabit(ctx, h.ID)
	require.NoError(t, err)
	assert.Equal(t, -15, res.XPDelta)

	stored, err = svc.HabitRepo().Get(ctx, h.ID)
	require.NoError(t, err)
	assert.False(t, stored.CompletedToday)
	assert.Equal(t, 0, stored.Streak)

	// The daily toggle clears on the next day.
	_, err = svc.CompleteHabit(ctx, h.ID)
	require.NoError(t, err)
	clock.Advance(24 * time.Hour)
	_, err = svc.Profile(ctx)
	require.NoError(t, err)
	stored, err = svc.HabitRepo().Get(ctx, h.ID)
	require.NoError(t, err)
	assert.False(t, stored.CompletedToday)
	assert.Equal(t, 1, stored.Streak, "per-habit streak survives the daily reset")
}

func TestWeeklyAggregates(t *testing.T) {
	svc, clock := newTestService(t)
	ctx := context.Background()
	initProfile(t, svc)

	// 2026-03-10 is a Tuesday.
	_, err := svc.CompleteWorkout(ctx)
	require.NoError(t, err)

	p, err := svc.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50, p.WeeklyXP[1])
	assert.Equal(t, 1, p.WeeklyProgress[1])

	// Next ISO week: aggregates are zeroed lazily on read. The 7-day gap
	// also decays the streak, which is fine here.
	clock.Advance(7 * 24 * time.Hour)
	p, err = svc.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, [7]int{}, p.WeeklyXP)
	assert.Equal(t, [7]int{}, p.WeeklyProgress)
}
