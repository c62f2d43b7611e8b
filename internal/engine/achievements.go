package engine

import (
	"momentum/internal/storage"
)

// Achievement represents a badge the user can earn. Earned status is
// derived from the profile on every read and never stored, so a badge
// can't drift out of sync with the counters behind it.
type Achievement struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Points      int
	Earned      bool
}

// AchievementChecker calculates which achievements the profile has earned.
// Every predicate is monotonic in its counter: further progress can never
// un-earn a badge.
type AchievementChecker struct {
	profile *storage.Profile
}

func NewAchievementChecker(profile *storage.Profile) *AchievementChecker {
	return &AchievementChecker{profile: profile}
}

// Evaluate returns all achievements with their earned status, in a
// stable order.
func (c *AchievementChecker) Evaluate() []Achievement {
	p := c.profile
	return []Achievement{
		// Streak milestones
		c.badge("week_strong", "Week Strong", "Maintain a 7-day streak", "🔥", 50, p.Streak >= 7),
		c.badge("consistency_king", "Consistency King", "Maintain a 30-day streak", "👑", 200, p.Streak >= 30),

		// Activity milestones
		c.badge("fitness_beast", "Fitness Beast", "Complete 30 workouts", "💪", 150, p.WorkoutsCompleted >= 30),
		c.badge("knowledge_seeker", "Knowledge Seeker", "Read 50 articles", "📚", 150, p.ArticlesRead() >= 50),
		c.badge("deep_reader", "Deep Reader", "Read for 10 hours total", "🧠", 100, p.TotalReadingTime >= 600),
		c.badge("productivity_master", "Productivity Master", "Complete 100 focus sessions", "⚡", 200, p.FocusSessionsTotal >= 100),
		c.badge("goal_crusher", "Goal Crusher", "Complete 50 goals", "🎯", 150, p.GoalsCompleted >= 50),

		// Level milestones
		c.badge("rising", "Rising", "Reach level 5", "🌱", 50, p.Level >= 5),
		c.badge("seasoned", "Seasoned", "Reach level 10", "⭐", 100, p.Level >= 10),
		c.badge("master", "Master", "Reach level 20", "💫", 250, p.Level >= 20),
	}
}

// TotalBonusXP sums the points of all earned achievements. This is a
// display aggregate only; it is never folded into the stored XP total.
func (c *AchievementChecker) TotalBonusXP() int {
	total := 0
	for _, a := range c.Evaluate() {
		if a.Earned {
			total += a.Points
		}
	}
	return total
}

// CountEarned returns how many achievements have been earned.
func (c *AchievementChecker) CountEarned() int {
	count := 0
	for _, a := range c.Evaluate() {
		if a.Earned {
			count++
		}
	}
	return count
}

// CountTotal returns the total number of achievements.
func (c *AchievementChecker) CountTotal() int {
	return len(c.Evaluate())
}

func (c *AchievementChecker) badge(id, title, desc, icon string, points int, earned bool) Achievement {
	return Achievement{ID: id, Title: title, Description: desc, Icon: icon, Points: points, Earned: earned}
}
