package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"momentum/internal/engine"
	"momentum/internal/ui"
)

func newReadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "read <category>",
		Short: "Record a read article (+15 XP)",
		Long:  "Record a read article in one of the knowledge categories: mental, social, emotional, goal.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("category is required (mental|social|emotional|goal)")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			category, err := engine.ParseArticleCategory(args[0])
			if err != nil {
				return err
			}

			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.ReadArticle(ctx, category)
			if err != nil {
				return err
			}
			if res != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Good.Render(ui.IconBook+" Logged"), ui.Muted.Render(fmt.Sprintf("(%d min)", res.ReadingMinutes)))
			}
			printResult(cmd, res)
			return nil
		},
	}

	return cmd
}
