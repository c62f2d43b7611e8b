package engine

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"momentum/internal/storage"
)

// ActivityResult reports the effect of one mutator call.
type ActivityResult struct {
	XPDelta        int
	XP             int
	LevelBefore    int
	LevelAfter     int
	LevelUp        bool
	Streak         int
	ReadingMinutes int // only set by ReadArticle
}

// applyActivity computes the post-activity profile. It works on a copy
// so a failed save leaves the in-memory record the caller saw untouched.
func (s *Service) applyActivity(p *storage.Profile, delta int, streakEligible bool, now time.Time) (*storage.Profile, *ActivityResult) {
	next := *p
	res := &ActivityResult{XPDelta: delta, LevelBefore: next.Level}

	if streakEligible {
		next.Streak = NextStreak(next.Streak, next.LastActiveDate, now)
		if next.WeeklyProgress[weekdayIndex(now)] < 100 {
			next.WeeklyProgress[weekdayIndex(now)]++
		}
	}
	ApplyXPDelta(&next, delta, now)
	if delta > 0 {
		next.WeeklyXP[weekdayIndex(now)] += delta
	}

	res.XP = next.XP
	res.LevelAfter = next.Level
	res.LevelUp = next.Level > res.LevelBefore
	res.Streak = next.Streak
	return &next, res
}

// loadProfile fetches the rehydrated profile for a mutation. A missing
// profile makes the mutation a silent no-op: there is no defined target.
func (s *Service) loadProfile(ctx context.Context) (*storage.Profile, error) {
	return s.Profile(ctx)
}

// AddGoal creates a goal. Creation itself grants no XP; completion does.
func (s *Service) AddGoal(ctx context.Context, title, category string) (*storage.Goal, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errors.New("goal title is required")
	}
	g := storage.Goal{
		ID:       uuid.New().String(),
		Title:    title,
		Category: strings.TrimSpace(strings.ToLower(category)),
		Date:     s.clock(),
	}
	if err := s.goals.Upsert(ctx, g); err != nil {
		return nil, err
	}
	return &g, nil
}

// CompleteGoal marks the goal done and grants its XP. Streak-eligible.
func (s *Service) CompleteGoal(ctx context.Context, id string) (*ActivityResult, error) {
	p, err := s.loadProfile(ctx)
	if err != nil || p == nil {
		return nil, err
	}
	g, err := s.goals.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, NotFoundError{Kind: "goal", ID: id}
	}
	if g.Completed {
		return nil, StateError{Kind: "goal", ID: id, State: "completed"}
	}

	now := s.clock()
	next, res := s.applyActivity(p, XPGoal, true, now)
	next.GoalsCompleted++

	g.Completed = true
	if err := s.goals.Upsert(ctx, *g); err != nil {
		return nil, err
	}
	if err := s.profiles.Put(ctx, next); err != nil {
		return nil, err
	}
	s.logActivity("goal completed", res)
	return res, nil
}

// UncompleteGoal is the exact inverse of CompleteGoal: it deducts the
// same XP and decrements the counter (floor 0). Not streak-eligible.
func (s *Service) UncompleteGoal(ctx context.Context, id string) (*ActivityResult, error) {
	p, err := s.loadProfile(ctx)
	if err != nil || p == nil {
		return nil, err
	}
	g, err := s.goals.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, NotFoundError{Kind: "goal", ID: id}
	}
	if !g.Completed {
		return nil, StateError{Kind: "goal", ID: id, State: "pending"}
	}

	now := s.clock()
	next, res := s.applyActivity(p, -XPGoal, false, now)
	if next.GoalsCompleted > 0 {
		next.GoalsCompleted--
	}

	g.Completed = false
	if err := s.goals.Upsert(ctx, *g); err != nil {
		return nil, err
	}
	if err := s.profiles.Put(ctx, next); err != nil {
		return nil, err
	}
	s.logActivity("goal uncompleted", res)
	return res, nil
}

// DeleteGoal removes a goal. Deleting a completed goal reverses its XP
// effect, so a goal can never leave phantom XP behind.
func (s *Service) DeleteGoal(ctx context.Context, id string) (*ActivityResult, error) {
	g, err := s.goals.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, NotFoundError{Kind: "goal", ID: id}
	}

	var res *ActivityResult
	if g.Completed {
		p, err := s.loadProfile(ctx)
		if err != nil {
			return nil, err
		}
		if p != nil {
			var next *storage.Profile
			next, res = s.applyActivity(p, -XPGoal, false, s.clock())
			if next.GoalsCompleted > 0 {
				next.GoalsCompleted--
			}
			if err := s.profiles.Put(ctx, next); err != nil {
				return nil, err
			}
		}
	}
	if err := s.goals.Delete(ctx, id); err != nil {
		return nil, err
	}
	return res, nil
}

// AddHabit creates a habit with a zero per-habit streak.
func (s *Service) AddHabit(ctx context.Context, title, category string) (*storage.Habit, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errors.New("habit title is required")
	}
	h := storage.Habit{
		ID:       uuid.New().String(),
		Title:    title,
		Category: strings.TrimSpace(strings.ToLower(category)),
		Date:     s.clock(),
	}
	if err := s.habits.Upsert(ctx, h); err != nil {
		return nil, err
	}
	return &h, nil
}

// CompleteHabit checks off a habit for today: its own streak grows by
// one and the profile gains XP. Streak-eligible.
func (s *Service) CompleteHabit(ctx context.Context, id string) (*ActivityResult, error) {
	p, err := s.loadProfile(ctx)
	if err != nil || p == nil {
		return nil, err
	}
	h, err := s.habits.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, NotFoundError{Kind: "habit", ID: id}
	}
	if h.CompletedToday {
		return nil, StateError{Kind: "habit", ID: id, State: "completed today"}
	}

	now := s.clock()
	next, res := s.applyActivity(p, XPHabit, true, now)

	h.CompletedToday = true
	h.Streak++
	if err := s.habits.Upsert(ctx, *h); err != nil {
		return nil, err
	}
	if err := s.profiles.Put(ctx, next); err != nil {
		return nil, err
	}
	s.logActivity("habit completed", res)
	return res, nil
}

// UncompleteHabit undoes today's check-off: the habit streak drops by
// one (floor 0) and the XP is deducted. Not streak-eligible.
func (s *Service) UncompleteHabit(ctx context.Context, id string) (*ActivityResult, error) {
	p, err := s.loadProfile(ctx)
	if err != nil || p == nil {
		return nil, err
	}
	h, err := s.habits.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, NotFoundError{Kind: "habit", ID: id}
	}
	if !h.CompletedToday {
		return nil, StateError{Kind: "habit", ID: id, State: "pending today"}
	}

	now := s.clock()
	next, res := s.applyActivity(p, -XPHabit, false, now)

	h.CompletedToday = false
	if h.Streak > 0 {
		h.Streak--
	}
	if err := s.habits.Upsert(ctx, *h); err != nil {
		return nil, err
	}
	if err := s.profiles.Put(ctx, next); err != nil {
		return nil, err
	}
	s.logActivity("habit uncompleted", res)
	return res, nil
}

// CompleteWorkout records a finished workout. Streak-eligible.
func (s *Service) CompleteWorkout(ctx context.Context) (*ActivityResult, error) {
	p, err := s.loadProfile(ctx)
	if err != nil || p == nil {
		return nil, err
	}

	now := s.clock()
	next, res := s.applyActivity(p, XPWorkout, true, now)
	next.WorkoutsCompleted++

	if err := s.profiles.Put(ctx, next); err != nil {
		return nil, err
	}
	s.logActivity("workout completed", res)
	return res, nil
}

// CompleteFocusSession records a finished focus session of the given
// kind. Streak-eligible.
func (s *Service) CompleteFocusSession(ctx context.Context, kind FocusKind) (*ActivityResult, error) {
	if !kind.IsValid() {
		return nil, errors.New("invalid focus kind")
	}
	p, err := s.loadProfile(ctx)
	if err != nil || p == nil {
		return nil, err
	}

	delta, minutes := XPFocusQuick, FocusQuickMinutes
	if kind == FocusDeep {
		delta, minutes = XPFocusDeep, FocusDeepMinutes
	}

	now := s.clock()
	next, res := s.applyActivity(p, delta, true, now)
	next.FocusSessionsTotal++
	next.FocusSessionsToday++
	next.TotalFocusTime += minutes

	if err := s.profiles.Put(ctx, next); err != nil {
		return nil, err
	}
	s.logActivity("focus session completed", res)
	return res, nil
}

// ReadArticle records a read article in the given category. Reading time
// is sampled from 3..12 minutes via the injected random source.
// Streak-eligible.
func (s *Service) ReadArticle(ctx context.Context, category ArticleCategory) (*ActivityResult, error) {
	if !category.IsValid() {
		return nil, errors.New("invalid article category")
	}
	p, err := s.loadProfile(ctx)
	if err != nil || p == nil {
		return nil, err
	}

	minutes := 3 + s.rng.Intn(10)

	now := s.clock()
	next, res := s.applyActivity(p, XPArticle, true, now)
	next.TotalReadingTime += minutes
	switch category {
	case CategoryMental:
		next.MentalArticlesRead++
	case CategorySocial:
		next.SocialArticlesRead++
	case CategoryEmotional:
		next.EmotionalArticlesRead++
	case CategoryGoal:
		next.GoalArticlesRead++
	}
	res.ReadingMinutes = minutes

	if err := s.profiles.Put(ctx, next); err != nil {
		return nil, err
	}
	s.logActivity("article read", res)
	return res, nil
}

// AddQuote saves a quote and grants a small XP reward. Collecting quotes
// does not count toward the streak.
func (s *Service) AddQuote(ctx context.Context, text, author, category string) (*ActivityResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.New("quote text is required")
	}
	p, err := s.loadProfile(ctx)
	if err != nil || p == nil {
		return nil, err
	}

	q := storage.Quote{
		ID:       uuid.New().String(),
		Text:     text,
		Author:   strings.TrimSpace(author),
		Category: strings.TrimSpace(strings.ToLower(category)),
		Date:     s.clock(),
	}
	if err := s.quotes.Append(ctx, q); err != nil {
		return nil, err
	}

	next, res := s.applyActivity(p, XPQuote, false, s.clock())
	if err := s.profiles.Put(ctx, next); err != nil {
		return nil, err
	}
	s.logActivity("quote added", res)
	return res, nil
}

func (s *Service) logActivity(msg string, res *ActivityResult) {
	s.log.WithFields(logrus.Fields{
		"xp_delta": res.XPDelta,
		"xp":       res.XP,
		"level":    res.LevelAfter,
		"streak":   res.Streak,
	}).Debug(msg)
}
