package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/wortschatz-backend/internal/adapter/postgres"
	"github.com/heartmarshall/wortschatz-backend/internal/adapter/provider/woerter"
	"github.com/heartmarshall/wortschatz-backend/internal/app"
	"github.com/heartmarshall/wortschatz-backend/internal/app/generator"
	"github.com/heartmarshall/wortschatz-backend/internal/config"
	"github.com/heartmarshall/wortschatz-backend/internal/service/wordentry"
)

var (
	fetchCSV        string
	fetchSaveDrafts bool
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <word...>",
	Short: "Look words up on woerter.net",
	Long: `Fetches and parses the lookup page of every word and prints the entries
as JSON. Words that fail are reported and skipped.

With --save-drafts the words are also stored in the draft list; words
already present in either list are skipped.

Examples:
  wortgen fetch gehen Tisch schön
  wortgen fetch gehen --csv word_info.csv
  wortgen fetch gehen Tisch --save-drafts`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().StringVar(&fetchCSV, "csv", "", "also write the entries to this CSV file")
	fetchCmd.Flags().BoolVar(&fetchSaveDrafts, "save-drafts", false, "store the words in the draft list")
}

func runFetch(cmd *cobra.Command, args []string) error {
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
	provider := app.NewWoerterProvider(cfg, rdb, logger)

	entries, fetchErr := provider.FetchEntries(ctx, args)
	if fetchErr != nil {
		logger.Warn("some words failed", slog.String("error", fetchErr.Error()))
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("encode entries: %w", err)
	}

	if fetchCSV != "" {
		if err := generator.SaveEntriesCSV(fetchCSV, entries); err != nil {
			return err
		}
		logger.Info("csv saved", slog.String("path", fetchCSV), slog.Int("entries", len(entries)))
	}

	if fetchSaveDrafts {
		return saveDrafts(ctx, cmd, cfg, provider, args, logger)
	}

	if len(entries) == 0 {
		return fmt.Errorf("no entries fetched: %w", fetchErr)
	}
	return nil
}

// saveDrafts stores words through the upload flow. Pages fetched above are
// served from the Redis cache when it is enabled.
func saveDrafts(ctx context.Context, cmd *cobra.Command, cfg *config.Config, provider *woerter.Provider, words []string, logger *slog.Logger) error {
	if err := cfg.RequireDatabase(); err != nil {
		return err
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	svc := app.NewWordEntryService(pool, provider, logger)

	res, err := svc.Upload(ctx, wordentry.UploadInput{Words: words})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "drafts created: %d, skipped: %d, failed: %d\n",
		len(res.Created), len(res.Skipped), len(res.Failed))
	for _, f := range res.Failed {
		fmt.Fprintf(cmd.ErrOrStderr(), "  %s: %s\n", f.Word, f.Reason)
	}
	return nil
}
