package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"momentum/internal/engine"
	"momentum/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show level, XP, streak and achievements",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			p, err := svc.Profile(ctx)
			if err != nil {
				return err
			}
			if p == nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" No profile yet — run: mm init <name>"))
				return nil
			}

			toNext := p.NextLevelXP - p.XP
			if toNext < 0 {
				toNext = 0
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconSpark, p.Name))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Level", p.Level))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("XP", fmt.Sprintf("%d (next level at %d, %d to go)", p.XP, p.NextLevelXP, toNext)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Streak", fmt.Sprintf("%s %d days", ui.IconFlame, p.Streak)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Member since", p.JoinDate))
			fmt.Fprintln(cmd.OutOrStdout(), "")

			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render("📊 Totals"))
			fmt.Fprintf(cmd.OutOrStdout(), "- %s goals completed: %d\n", ui.IconTarget, p.GoalsCompleted)
			fmt.Fprintf(cmd.OutOrStdout(), "- %s workouts: %d\n", ui.IconMuscle, p.WorkoutsCompleted)
			fmt.Fprintf(cmd.OutOrStdout(), "- %s focus sessions: %d (%d today, %d min total)\n", ui.IconBolt, p.FocusSessionsTotal, p.FocusSessionsToday, p.TotalFocusTime)
			fmt.Fprintf(cmd.OutOrStdout(), "- %s articles: %d (%d min reading)\n", ui.IconBook, p.ArticlesRead(), p.TotalReadingTime)
			fmt.Fprintln(cmd.OutOrStdout(), "")

			checker := engine.NewAchievementChecker(p)
			achievements := checker.Evaluate()
			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render(fmt.Sprintf("%s Achievements (%d/%d, %d bonus XP)", ui.IconTrophy, checker.CountEarned(), checker.CountTotal(), checker.TotalBonusXP())))
			for _, a := range achievements {
				mark := ui.Muted.Render("locked")
				if a.Earned {
					mark = ui.Good.Render("earned")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %s %s — %s\n", a.Icon, ui.Key.Render(a.Title), mark, ui.Muted.Render(a.Description))
			}

			fmt.Fprintln(cmd.OutOrStdout(), "")
			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render("📅 This week"))
			days := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
			parts := make([]string, 0, 7)
			for i, d := range days {
				parts = append(parts, fmt.Sprintf("%s %d", d, p.WeeklyXP[i]))
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(strings.Join(parts, " | ")))

			return nil
		},
	}

	return cmd
}
