package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"momentum/internal/ui"
)

func newQuoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Collect quotes",
	}

	cmd.AddCommand(newQuoteAddCmd(), newQuoteListCmd())

	return cmd
}

func newQuoteAddCmd() *cobra.Command {
	var author string
	var category string

	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Save a quote (+10 XP, doesn't count toward streak)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("quote text is required")
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

			res, err := svc.AddQuote(ctx, args[0], author, category)
			if err != nil {
				return err
			}
			if res != nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconQuote+" Saved"))
			}
			printResult(cmd, res)
			return nil
		},
	}

	cmd.Flags().StringVarP(&author, "author", "a", "", "Author")
	cmd.Flags().StringVarP(&category, "category", "c", "motivation", "Category")

	return cmd
}

func newQuoteListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved quotes",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			quotes, err := svc.QuoteRepo().List(ctx)
			if err != nil {
				return err
			}
			if len(quotes) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(no quotes — mm quote add \"...\")"))
				return nil
			}
			for _, q := range quotes {
				author := q.Author
				if author == "" {
					author = "unknown"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %q %s\n", ui.IconQuote, q.Text, ui.Muted.Render("— "+author))
			}
			return nil
		},
	}

	return cmd
}
