package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/wortschatz-backend/internal/dialog"
	"github.com/heartmarshall/wortschatz-backend/internal/domain"
)

var chunkMaxLength int

var chunkCmd = &cobra.Command{
	Use:   "chunk <dialog.json>",
	Short: "Split a dialog into speech chunks",
	Long: `Reads dialog JSON ({"dialog": [{"id", "speaker", "text"}]}) and prints the
chunks sent to speech synthesis, separated by a blank line.

Examples:
  wortgen chunk output/generation_3_2025-03-14/dialog.json
  wortgen chunk dialog.json --max-length 500`,
	Args: cobra.ExactArgs(1),
	RunE: runChunk,
}

func init() {
	rootCmd.AddCommand(chunkCmd)

	chunkCmd.Flags().IntVar(&chunkMaxLength, "max-length", dialog.DefaultMaxLength, "maximum chunk length in characters")
}

func runChunk(cmd *cobra.Command, args []string) error {
	var r io.Reader = cmd.InOrStdin()
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	var data domain.DialogData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return fmt.Errorf("decode dialog: %w", err)
	}

	chunks, err := dialog.ChunkData(data, chunkMaxLength)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(chunks, "\n\n"))
	return err
}
