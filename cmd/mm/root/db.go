package root

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"momentum/internal/config"
	"momentum/internal/engine"
	"momentum/internal/storage"
	"momentum/internal/ui"
)

func openDB(ctx context.Context) (*sql.DB, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	path, err := cfg.DBPath()
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return db, cleanup, nil
}

func openService(ctx context.Context) (*engine.Service, func(), error) {
	db, cleanup, err := openDB(ctx)
	if err != nil {
		return nil, nil, err
	}
	return engine.NewService(db), cleanup, nil
}

// printResult renders the outcome of an activity mutator; a nil result
// means no profile exists yet.
func printResult(cmd *cobra.Command, res *engine.ActivityResult) {
	if res == nil {
		fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" No profile yet — run: mm init"))
		return
	}
	sign := "+"
	if res.XPDelta < 0 {
		sign = ""
	}
	line := fmt.Sprintf("%s %s%d XP", ui.Good.Render(ui.IconBolt), sign, res.XPDelta)
	if res.Streak > 0 {
		line += " " + ui.Muted.Render(fmt.Sprintf("(%s %d-day streak)", ui.IconFlame, res.Streak))
	}
	fmt.Fprintln(cmd.OutOrStdout(), line)
	if res.LevelUp {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.BadgeLevelUp, ui.Muted.Render(fmt.Sprintf("level %d → %d", res.LevelBefore, res.LevelAfter)))
	}
	if res.LevelAfter < res.LevelBefore {
		fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" Level decreased"))
	}
}
