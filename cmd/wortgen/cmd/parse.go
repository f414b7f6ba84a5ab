package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	woerterparser "github.com/heartmarshall/wortschatz-backend/internal/parser/woerter"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file.html>",
	Short: "Parse a saved woerter.net page",
	Long: `Parses a saved woerter.net lookup page and prints the word entry as JSON.
Use "-" to read the page from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	var r io.Reader = cmd.InOrStdin()
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	var opts []woerterparser.Option
	if verbose {
		opts = append(opts, woerterparser.WithLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))))
	}

	entry, err := woerterparser.New(opts...).ParseReader(r)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(entry); err != nil {
		return fmt.Errorf("encode entry: %w", err)
	}
	return nil
}
