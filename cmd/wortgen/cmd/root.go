// Package cmd holds the wortgen cobra commands.
package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/wortschatz-backend/internal/app"
	"github.com/heartmarshall/wortschatz-backend/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "wortgen",
	Short: "German A2 listening material generator",
	Long: `wortgen looks words up on woerter.net, generates A2 dialogs with
their forms and renders them as two-voice speech.

Commands:
  parse     - parse a saved lookup page into a word entry
  chunk     - split a dialog into speech-sized chunks
  fetch     - look words up (optionally store them as drafts)
  generate  - run the generation pipeline
  registry  - inspect or reset generation counters
  token     - issue an API access token`,
	Version:      app.BuildVersion(),
	SilenceUsage: true,
}

// Execute runs the root command. SIGINT and SIGTERM cancel the command context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $CONFIG_PATH or ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.LoadFrom(cfgFile)
	}
	return config.Load()
}

func newLogger(cfg *config.Config) *slog.Logger {
	logCfg := cfg.Log
	if verbose {
		logCfg.Level = "debug"
	}
	return app.NewLogger(logCfg)
}
