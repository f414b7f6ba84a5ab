package generator

import (
	"encoding/binary"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/heartmarshall/wortschatz-backend/internal/adapter/provider/speech"
	"github.com/heartmarshall/wortschatz-backend/internal/domain"
)

var csvHeader = []string{"ID", "Word", "Part of Speech", "Regular", "Forms", "Translation", "Examples"}

// WriteEntriesCSV writes entries as CSV rows numbered from 1.
func WriteEntriesCSV(w io.Writer, entries []domain.WordEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for i, e := range entries {
		regular := "irregular"
		if e.Grammar.Regular {
			regular = "regular"
		}
		forms := ""
		if e.Forms != nil {
			forms = domain.FormsString(e)
		}

		row := []string{
			strconv.Itoa(i + 1),
			e.Word,
			e.Grammar.PartOfSpeech.String(),
			regular,
			forms,
			e.Translations.RU,
			strings.Join(e.Examples, "; "),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// SaveEntriesCSV writes entries to a CSV file at path.
func SaveEntriesCSV(path string, entries []domain.WordEntry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	if err := WriteEntriesCSV(f, entries); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// SaveDialogText writes chunks separated by a blank line.
func SaveDialogText(path string, chunks []string) error {
	if err := os.WriteFile(path, []byte(strings.Join(chunks, "\n\n")), 0o644); err != nil {
		return fmt.Errorf("write dialog text: %w", err)
	}
	return nil
}

// SaveDialogJSON writes the raw dialog data.
func SaveDialogJSON(path string, data domain.DialogData) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode dialog: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write dialog json: %w", err)
	}
	return nil
}

// SaveSpeechWAV concatenates little-endian 16-bit PCM buffers into one
// mono WAV file.
func SaveSpeechWAV(path string, buffers [][]byte) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create wav: %w", err)
	}
	if err := WriteWAV(f, buffers); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteWAV encodes PCM buffers to w. A trailing odd byte in a buffer is dropped.
func WriteWAV(w io.WriteSeeker, buffers [][]byte) error {
	if len(buffers) == 0 {
		return fmt.Errorf("encode wav: no audio: %w", domain.ErrInvalidArgument)
	}

	enc := wav.NewEncoder(w, speech.SampleRate, speech.BitDepth, speech.NumChannels, 1)

	format := &audio.Format{NumChannels: speech.NumChannels, SampleRate: speech.SampleRate}
	for i, pcm := range buffers {
		buf := &audio.IntBuffer{
			Format:         format,
			Data:           pcmSamples(pcm),
			SourceBitDepth: speech.BitDepth,
		}
		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("encode wav part %d: %w", i+1, err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finish wav: %w", err)
	}
	return nil
}

func pcmSamples(pcm []byte) []int {
	samples := make([]int, len(pcm)/2)
	for i := range samples {
		samples[i] = int(int16(binary.LittleEndian.Uint16(pcm[2*i:])))
	}
	return samples
}
