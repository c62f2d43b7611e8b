package engine

import (
	"context"
	"database/sql"
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"momentum/internal/storage"
)

// ErrProfileExists is returned by InitProfile when a profile is already
// present.
var ErrProfileExists = errors.New("profile already exists")

// Service owns the write path into the progression record. All mutators
// go through it; UI collaborators only ever read what it returns.
type Service struct {
	db       *sql.DB
	store    *storage.Store
	profiles *storage.ProfileRepo
	goals    *storage.GoalRepo
	habits   *storage.HabitRepo
	quotes   *storage.QuoteRepo

	clock func() time.Time
	rng   *rand.Rand
	log   logrus.FieldLogger
}

type Option func(*Service)

// WithClock overrides the time source. Streak and decay rules depend on
// calendar days, so tests pin this.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) { s.clock = clock }
}

// WithRand overrides the random source used for sampled reading time.
func WithRand(rng *rand.Rand) Option {
	return func(s *Service) { s.rng = rng }
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Service) { s.log = log }
}

func NewService(db *sql.DB, opts ...Option) *Service {
	store := storage.NewStore(db)
	s := &Service{
		db:       db,
		store:    store,
		profiles: storage.NewProfileRepo(store),
		goals:    storage.NewGoalRepo(store),
		habits:   storage.NewHabitRepo(store),
		quotes:   storage.NewQuoteRepo(store),
		clock:    time.Now,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		log:      logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) GoalRepo() *storage.GoalRepo   { return s.goals }
func (s *Service) HabitRepo() *storage.HabitRepo { return s.habits }
func (s *Service) QuoteRepo() *storage.QuoteRepo { return s.quotes }

// InitProfile creates the fresh progression record: level 1, no XP, no
// streak.
func (s *Service) InitProfile(ctx context.Context, name, email string) (*storage.Profile, error) {
	existing, err := s.profiles.Get(ctx)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrProfileExists
	}

	now := s.clock()
	p := &storage.Profile{
		ID:          uuid.New().String(),
		Name:        name,
		Email:       email,
		XP:          0,
		Level:       1,
		NextLevelXP: NextLevelThreshold(1),
		Streak:      0,
		JoinDate:    now.Format("Jan 2006"),
	}
	if err := s.profiles.Put(ctx, p); err != nil {
		return nil, err
	}
	s.log.WithField("id", p.ID).Debug("profile created")
	return p, nil
}

// Profile loads the progression record and rehydrates it: streak decay
// after a missed day, daily focus-session reset, weekly aggregate
// rollover, and re-deriving the cached level if it is stale. Corrections
// are persisted so raw reads agree with what callers saw. Returns nil
// when no profile exists.
func (s *Service) Profile(ctx context.Context) (*storage.Profile, error) {
	p, err := s.profiles.Get(ctx)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}

	now := s.clock()
	changed := false

	if decayed := DecayedStreak(p.Streak, p.LastActiveDate, now); decayed != p.Streak {
		s.log.WithFields(logrus.Fields{"was": p.Streak}).Debug("streak decayed on load")
		p.Streak = decayed
		changed = true
	}
	if p.LastActiveDate != nil && !sameDay(*p.LastActiveDate, now) {
		if p.FocusSessionsToday != 0 {
			p.FocusSessionsToday = 0
			changed = true
		}
		if err := s.resetHabitsForNewDay(ctx); err != nil {
			return nil, err
		}
	}
	if p.LastActiveDate != nil && !sameISOWeek(*p.LastActiveDate, now) {
		var zero [7]int
		if p.WeeklyXP != zero || p.WeeklyProgress != zero {
			p.WeeklyXP = zero
			p.WeeklyProgress = zero
			changed = true
		}
	}

	if lvl := LevelForXP(p.XP); p.Level != lvl || p.NextLevelXP != NextLevelThreshold(lvl) {
		p.Level = lvl
		p.NextLevelXP = NextLevelThreshold(lvl)
		changed = true
	}

	if changed {
		if err := s.profiles.Put(ctx, p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Achievements evaluates the badge catalog against the current profile.
// Returns nil when no profile exists.
func (s *Service) Achievements(ctx context.Context) ([]Achievement, error) {
	p, err := s.Profile(ctx)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return NewAchievementChecker(p).Evaluate(), nil
}

// resetHabitsForNewDay clears per-habit completedToday flags when a new
// calendar day starts. Per-habit streaks are left alone; only the daily
// toggle resets.
func (s *Service) resetHabitsForNewDay(ctx context.Context) error {
	habits, err := s.habits.List(ctx)
	if err != nil {
		return err
	}
	changed := false
	for i := range habits {
		if habits[i].CompletedToday {
			habits[i].CompletedToday = false
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return s.habits.Save(ctx, habits)
}
