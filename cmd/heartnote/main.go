package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"heartnote/internal/app"
)

var (
	configPath string
	flagCfg    = app.DefaultConfig()
)

var rootCmd = &cobra.Command{
	Use:   "heartnote",
	Short: "A little greeting that asks one question",
	Long: `heartnote plays a short greeting in the terminal: a landing page, a
heart-tapping game, a question that only takes yes for an answer, a typed
note and a confetti finale.

Settings come from the config file, then HEARTNOTE_* variables, then flags.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		a, err := app.New(cfg)
		if err != nil {
			return err
		}
		defer a.Close()
		if err := a.Run(ctx); err != nil && ctx.Err() == nil {
			return err
		}
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize past sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return app.Stats(cmd.Context(), cfg, cmd.OutOrStdout())
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "YAML config file")
	pf.StringVar(&flagCfg.DataDir, "data-dir", "", "directory for the session journal")

	f := rootCmd.Flags()
	f.StringVar(&flagCfg.Name, "name", "", "name to greet in the note")
	f.BoolVar(&flagCfg.Remember, "remember", false, "store --name for next time")
	f.StringVar(&flagCfg.LogPath, "log", "", "JSON log file (disabled when empty)")
	f.StringVar(&flagCfg.ContentPath, "content", "", "YAML deck overriding the built-in text")
	f.BoolVar(&flagCfg.ASCIIOnly, "ascii", false, "draw without emoji")
	f.BoolVar(&flagCfg.Debug, "debug", false, "show debug status and write dev state")
	f.StringVar(&flagCfg.Scenario, "scenario", "", "start from a named dev scenario")
	f.StringVar(&flagCfg.UI.StyleVariant, "style", flagCfg.UI.StyleVariant, "rose_garden, midnight or paper")
	f.StringVar(&flagCfg.UI.MotionLevel, "motion", flagCfg.UI.MotionLevel, "off, reduced or full")
	f.StringVar(&flagCfg.UI.MouseScope, "mouse", flagCfg.UI.MouseScope, "off or full")

	rootCmd.AddCommand(statsCmd)
}

// loadConfig layers defaults, the config file, the environment and then
// only the flags the user actually set.
func loadConfig(cmd *cobra.Command) (app.Config, error) {
	cfg := app.DefaultConfig()
	if err := app.LoadConfigFile(configPath, &cfg); err != nil {
		return cfg, err
	}
	if err := app.ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	set := func(name string, apply func()) {
		if flags.Changed(name) {
			apply()
		}
	}
	set("data-dir", func() { cfg.DataDir = flagCfg.DataDir })
	set("name", func() { cfg.Name = flagCfg.Name })
	set("remember", func() { cfg.Remember = flagCfg.Remember })
	set("log", func() { cfg.LogPath = flagCfg.LogPath })
	set("content", func() { cfg.ContentPath = flagCfg.ContentPath })
	set("ascii", func() { cfg.ASCIIOnly = flagCfg.ASCIIOnly })
	set("debug", func() { cfg.Debug = flagCfg.Debug })
	set("scenario", func() { cfg.Scenario = flagCfg.Scenario })
	set("style", func() { cfg.UI.StyleVariant = flagCfg.UI.StyleVariant })
	set("motion", func() { cfg.UI.MotionLevel = flagCfg.UI.MotionLevel })
	set("mouse", func() { cfg.UI.MouseScope = flagCfg.UI.MouseScope })
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "heartnote:", err)
		os.Exit(1)
	}
}
