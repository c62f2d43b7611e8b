package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"momentum/internal/ui"
)

func newHabitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "habit",
		Short: "Manage daily habits",
	}

	cmd.AddCommand(
		newHabitAddCmd(),
		newHabitListCmd(),
		newHabitDoneCmd(),
		newHabitUndoCmd(),
	)

	return cmd
}

func newHabitAddCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a habit",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			h, err := svc.AddHabit(ctx, args[0], category)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Good.Render(ui.IconLoop+" Added"), h.Title, ui.Muted.Render(shortID(h.ID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "health", "Category")

	return cmd
}

func newHabitListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List habits with their streaks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			habits, err := svc.HabitRepo().List(ctx)
			if err != nil {
				return err
			}
			if len(habits) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(no habits — mm habit add \"...\")"))
				return nil
			}
			for _, h := range habits {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n", ui.CheckIcon(h.CompletedToday), h.Title, ui.Warn.Render(fmt.Sprintf("%s %d-day", ui.IconFlame, h.Streak)), ui.Muted.Render(shortID(h.ID)))
			}
			return nil
		},
	}

	return cmd
}

func newHabitDoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Check off a habit for today (+15 XP)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, err := resolveHabitID(ctx, svc, args[0])
			if err != nil {
				return err
			}
			res, err := svc.CompleteHabit(ctx, id)
			if err != nil {
				return err
			}
			printResult(cmd, res)
			return nil
		},
	}

	return cmd
}

func newHabitUndoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "undo <id>",
		Short: "Undo today's habit check-off (-15 XP)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, err := resolveHabitID(ctx, svc, args[0])
			if err != nil {
				return err
			}
			res, err := svc.UncompleteHabit(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconUndo+" Undone"))
			printResult(cmd, res)
			return nil
		},
	}

	return cmd
}
