package root

import (
	"context"

	"github.com/spf13/cobra"
)

func newWorkoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workout",
		Short: "Record a completed workout (+50 XP)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.CompleteWorkout(ctx)
			if err != nil {
				return err
			}
			printResult(cmd, res)
			return nil
		},
	}

	return cmd
}
