package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"momentum/internal/engine"
	"momentum/internal/storage"
)

type dashboardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	profile *storage.Profile
	goals   []storage.Goal
	habits  []storage.Habit

	selected int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	profile *storage.Profile
	goals   []storage.Goal
	habits  []storage.Habit
	err     error
}

type activityMsg struct {
	res *engine.ActivityResult
	err error
}

func newDashboardModel(ctx context.Context, svc *engine.Service) dashboardModel {
	return dashboardModel{
		ctx:     ctx,
		svc:     svc,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m dashboardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		p, err := m.svc.Profile(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		goals, err := m.svc.GoalRepo().List(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		habits, err := m.svc.HabitRepo().List(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{profile: p, goals: goals, habits: habits}
	}
}

// row is one selectable line in the activity list: a goal or a habit.
type row struct {
	isHabit bool
	id      string
	title   string
	done    bool
	streak  int
}

func (m dashboardModel) rows() []row {
	out := make([]row, 0, len(m.goals)+len(m.habits))
	for _, g := range m.goals {
		out = append(out, row{id: g.ID, title: g.Title, done: g.Completed})
	}
	for _, h := range m.habits {
		out = append(out, row{isHabit: true, id: h.ID, title: h.Title, done: h.CompletedToday, streak: h.Streak})
	}
	return out
}

func (m dashboardModel) toggleCmd(r row) tea.Cmd {
	return func() tea.Msg {
		var res *engine.ActivityResult
		var err error
		switch {
		case r.isHabit && r.done:
			res, err = m.svc.UncompleteHabit(m.ctx, r.id)
		case r.isHabit:
			res, err = m.svc.CompleteHabit(m.ctx, r.id)
		case r.done:
			res, err = m.svc.UncompleteGoal(m.ctx, r.id)
		default:
			res, err = m.svc.CompleteGoal(m.ctx, r.id)
		}
		return activityMsg{res: res, err: err}
	}
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.profile = msg.profile
		m.goals = msg.goals
		m.habits = msg.habits
		if n := len(m.rows()); m.selected >= n && n > 0 {
			m.selected = n - 1
		}
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case activityMsg:
		if msg.err != nil {
			m.lastLog = "Failed: " + msg.err.Error()
			return m, nil
		}
		if msg.res == nil {
			m.lastLog = "No profile yet — run: mm init"
			return m, nil
		}
		sign := "+"
		if msg.res.XPDelta < 0 {
			sign = ""
		}
		m.lastLog = fmt.Sprintf("%s%d XP (level %d → %d, streak %d)", sign, msg.res.XPDelta, msg.res.LevelBefore, msg.res.LevelAfter, msg.res.Streak)
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.rows())-1 {
				m.selected++
			}
			return m, nil
		case "c", " ", "enter":
			rows := m.rows()
			if m.selected < 0 || m.selected >= len(rows) {
				return m, nil
			}
			r := rows[m.selected]
			m.lastLog = "Updating " + r.title + "…"
			return m, m.toggleCmd(r)
		}
	}
	return m, nil
}

func (m dashboardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := "\n" + m.lastLog

	// Simple 2-column layout.
	leftW := 26
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 18 {
			leftW = 18
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l, r := "", ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m dashboardModel) renderHeader() string {
	if m.profile == nil {
		return "Momentum — no profile (run: mm init)"
	}
	p := m.profile
	into := p.XP - engine.NextLevelThreshold(p.Level-1)
	bar := progressBar(into, engine.LevelUnit, 30)
	return fmt.Sprintf("Momentum | %s | Level %d | XP %d %s | 🔥 %d-day streak", p.Name, p.Level, p.XP, bar, p.Streak)
}

func (m dashboardModel) renderSidebar() string {
	if m.profile == nil {
		return "Stats\n\n(no profile)"
	}
	p := m.profile
	checker := engine.NewAchievementChecker(p)
	lines := []string{"This Week (XP)"}
	days := []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}
	for i, d := range days {
		lines = append(lines, fmt.Sprintf("- %s %s", d, progressBar(p.WeeklyXP[i], 200, 12)))
	}
	lines = append(lines, "")
	lines = append(lines, "Totals")
	lines = append(lines, fmt.Sprintf("- goals     %d", p.GoalsCompleted))
	lines = append(lines, fmt.Sprintf("- workouts  %d", p.WorkoutsCompleted))
	lines = append(lines, fmt.Sprintf("- focus     %d", p.FocusSessionsTotal))
	lines = append(lines, fmt.Sprintf("- articles  %d", p.ArticlesRead()))
	lines = append(lines, fmt.Sprintf("- badges    %d/%d", checker.CountEarned(), checker.CountTotal()))
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- ↑/↓ or j/k: move")
	lines = append(lines, "- c/space: toggle")
	lines = append(lines, "- r: refresh")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m dashboardModel) renderMain() string {
	if m.loading {
		return "Loading…"
	}
	var out []string
	out = append(out, "Today")

	rows := m.rows()
	if len(rows) == 0 {
		out = append(out, "(no goals or habits yet — mm goal add / mm habit add)")
		return strings.Join(out, "\n")
	}
	for i, r := range rows {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		mark := "[ ]"
		if r.done {
			mark = "[x]"
		}
		kind := "🎯"
		extra := ""
		if r.isHabit {
			kind = "🔁"
			extra = fmt.Sprintf(" (%d-day)", r.streak)
		}
		out = append(out, fmt.Sprintf("%s%s %s %s%s", cursor, mark, kind, r.title, extra))
	}
	return strings.Join(out, "\n")
}

func progressBar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	ratio := float64(value) / float64(total)
	filled := int(ratio * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
