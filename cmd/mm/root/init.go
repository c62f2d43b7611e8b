package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"momentum/internal/engine"
	"momentum/internal/ui"
)

func newInitCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "init <name>",
		Short: "Create your profile",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("name is required")
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

			p, err := svc.InitProfile(ctx, args[0], email)
			if err != nil {
				if errors.Is(err, engine.ErrProfileExists) {
					return errors.New("profile already exists; see: mm status")
				}
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconSpark, "Welcome, "+p.Name))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Level", p.Level))
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Complete a goal, habit, workout, focus session or article to start your streak."))
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "Email (display only)")

	return cmd
}
