package root

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"momentum/internal/config"
	"momentum/internal/ui"
)

const Version = "0.1.0"

var verbose bool

var rootCmd = &cobra.Command{
	Use:           "mm",
	Short:         "Momentum — local-first gamified self-improvement tracker",
	Long:          "Momentum turns goals, habits, workouts, reading and focus sessions into XP, levels and streaks, stored locally.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logrus.SetOutput(os.Stderr)
		level, err := logrus.ParseLevel(cfg.Log.Level)
		if err != nil {
			level = logrus.WarnLevel
		}
		if verbose {
			level = logrus.DebugLevel
		}
		logrus.SetLevel(level)
		return nil
	},
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		newInitCmd(),
		newStatusCmd(),
		newGoalCmd(),
		newHabitCmd(),
		newWorkoutCmd(),
		newFocusCmd(),
		newReadCmd(),
		newQuoteCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
