package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/wortschatz-backend/internal/app"
	"github.com/heartmarshall/wortschatz-backend/internal/domain"
)

var generateTest bool

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a dialog and its speech",
	Long: `Runs one generation: reads the word list, generates an A2 dialog,
splits it into chunks and renders two-voice speech.

A main run uses the word list lines as word forms. A test run (--test)
looks every word up first, saves word_info.csv and uses the looked-up
forms. Output goes to a numbered session directory; the counter is only
advanced when the run succeeds.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().BoolVar(&generateTest, "test", false, "test run: look words up and export word_info.csv")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	rdb, err := app.OpenRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	if rdb != nil {
		defer rdb.Close()
	}

	pipeline, err := app.NewPipeline(ctx, cfg, rdb, logger)
	if err != nil {
		return err
	}

	t := domain.CounterMain
	if generateTest {
		t = domain.CounterTest
	}

	res, err := pipeline.Run(ctx, t)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s generation #%d done in %s\n", t, res.Session.Number, res.Duration.Round(time.Second))
	fmt.Fprintf(out, "  dialog lines: %d, chunks: %d\n", res.Lines, res.Chunks)
	for _, f := range res.Files {
		fmt.Fprintf(out, "  %s\n", f)
	}
	return nil
}
