package root

import (
	"context"

	"github.com/spf13/cobra"

	"momentum/internal/engine"
)

func newFocusCmd() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "focus",
		Short: "Record a completed focus session (deep +75 XP, quick +25 XP)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			k, err := engine.ParseFocusKind(kind)
			if err != nil {
				return err
			}

			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.CompleteFocusSession(ctx, k)
			if err != nil {
				return err
			}
			printResult(cmd, res)
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "quick", "Session kind (deep|quick)")

	return cmd
}
