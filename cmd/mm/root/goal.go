package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"momentum/internal/ui"
)

func newGoalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage goals",
	}

	cmd.AddCommand(
		newGoalAddCmd(),
		newGoalListCmd(),
		newGoalDoneCmd(),
		newGoalUndoCmd(),
		newGoalRmCmd(),
	)

	return cmd
}

func newGoalAddCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a goal",
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

			g, err := svc.AddGoal(ctx, args[0], category)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Good.Render(ui.IconTarget+" Added"), g.Title, ui.Muted.Render(shortID(g.ID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "personal", "Category (personal|health|career|learning)")

	return cmd
}

func newGoalListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			goals, err := svc.GoalRepo().List(ctx)
			if err != nil {
				return err
			}
			if len(goals) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(no goals — mm goal add \"...\")"))
				return nil
			}
			for _, g := range goals {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n", ui.CheckIcon(g.Completed), g.Title, ui.Muted.Render("["+g.Category+"]"), ui.Muted.Render(shortID(g.ID)))
			}
			return nil
		},
	}

	return cmd
}

func newGoalDoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Complete a goal (+25 XP)",
		Args:  goalIDArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, err := resolveGoalID(ctx, svc, args[0])
			if err != nil {
				return err
			}
			res, err := svc.CompleteGoal(ctx, id)
			if err != nil {
				return err
			}
			printResult(cmd, res)
			return nil
		},
	}

	return cmd
}

func newGoalUndoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "undo <id>",
		Short: "Un-complete a goal (-25 XP)",
		Long: `Undo a goal completion.

This deducts exactly the XP the completion granted and decrements the
completed-goals counter, so an accidental completion leaves no trace.`,
		Args: goalIDArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, err := resolveGoalID(ctx, svc, args[0])
			if err != nil {
				return err
			}
			res, err := svc.UncompleteGoal(ctx, id)
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

func newGoalRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a goal (reverses its XP if completed)",
		Args:  goalIDArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, err := resolveGoalID(ctx, svc, args[0])
			if err != nil {
				return err
			}
			res, err := svc.DeleteGoal(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render("🗑️ Deleted"))
			if res != nil {
				printResult(cmd, res)
			}
			return nil
		},
	}

	return cmd
}

var goalIDArgs = func(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New("id is required")
	}
	return nil
}
