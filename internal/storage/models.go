package storage

import "time"

// Profile is the single persisted progression record. Level and
// NextLevelXP are cached projections of XP; the engine recomputes them
// on every write so they are never independently mutated.
type Profile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`

	XP          int `json:"xp"`
	Level       int `json:"level"`
	NextLevelXP int `json:"nextLevelXP"`

	Streak         int        `json:"streak"`
	LastActiveDate *time.Time `json:"lastActiveDate,omitempty"`
	JoinDate       string     `json:"joinDate"`

	WorkoutsCompleted  int `json:"workoutsCompleted"`
	TotalReadingTime   int `json:"totalReadingTime"` // minutes
	FocusSessionsTotal int `json:"focusSessionsTotal"`
	FocusSessionsToday int `json:"focusSessionsToday"`
	TotalFocusTime     int `json:"totalFocusTime"` // minutes
	GoalsCompleted     int `json:"goalsCompleted"`

	MentalArticlesRead    int `json:"mentalArticlesRead"`
	SocialArticlesRead    int `json:"socialArticlesRead"`
	EmotionalArticlesRead int `json:"emotionalArticlesRead"`
	GoalArticlesRead      int `json:"goalArticlesRead"`

	// Display aggregates, Monday-indexed. Not invariant-critical.
	WeeklyProgress [7]int `json:"weeklyProgress"`
	WeeklyXP       [7]int `json:"weeklyXP"`
}

// ArticlesRead is the total across all categories.
func (p *Profile) ArticlesRead() int {
	return p.MentalArticlesRead + p.SocialArticlesRead + p.EmotionalArticlesRead + p.GoalArticlesRead
}

type Goal struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Completed bool      `json:"completed"`
	Date      time.Time `json:"date"`
}

type Habit struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Category       string    `json:"category"`
	Streak         int       `json:"streak"`
	CompletedToday bool      `json:"completedToday"`
	Date           time.Time `json:"date"`
}

type Quote struct {
	ID       string    `json:"id"`
	Text     string    `json:"text"`
	Author   string    `json:"author"`
	Category string    `json:"category"`
	Date     time.Time `json:"date"`
}
