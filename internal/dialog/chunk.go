// Package dialog reflows generated dialogs into speech-synthesis sized chunks.
package dialog

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/wortschatz-backend/internal/domain"
)

// DefaultMaxLength is the chunk size used by the generation pipeline.
const DefaultMaxLength = 2000

// Chunk splits lines into newline-joined chunks of formatted lines
// ("Speaker N: text") of about maxLength characters, each ending after a
// Speaker 2 line where possible.
//
// When a line overflows the current chunk, the split point is the last
// Speaker 2 line including the overflowing one, so a Speaker 2 answer stays
// with its question even if that puts the chunk over maxLength. If the
// previous line was already Speaker 2, or there is no Speaker 2 line, the
// chunk is emitted as it is. Lines are never split.
func Chunk(lines []domain.DialogLine, maxLength int) ([]string, error) {
	if maxLength <= 0 {
		return nil, fmt.Errorf("chunk dialog: max length %d: %w", maxLength, domain.ErrInvalidArgument)
	}

	chunks := []string{}
	var buf []string
	bufLen := 0
	var prev domain.Speaker

	emit := func(part []string) {
		if s := strings.TrimSpace(strings.Join(part, "\n")); s != "" {
			chunks = append(chunks, s)
		}
	}

	for _, l := range lines {
		line := l.Format()
		lineLen := utf8.RuneCountInString(line)

		tentative := lineLen
		if len(buf) > 0 {
			tentative += bufLen + 1
		}

		switch {
		case tentative <= maxLength:
			buf = append(buf, line)
			bufLen = tentative
		default:
			candidate := append(buf[:len(buf):len(buf)], line)
			split := lastSpeakerTwo(candidate)
			if split == -1 || prev == domain.SpeakerTwo {
				emit(buf)
				buf = []string{line}
				bufLen = lineLen
				break
			}
			emit(candidate[:split+1])
			buf = append([]string(nil), candidate[split+1:]...)
			bufLen = joinedLen(buf)
		}
		prev = l.Speaker
	}
	emit(buf)

	return chunks, nil
}

// ChunkData is Chunk over a DialogData.
func ChunkData(d domain.DialogData, maxLength int) ([]string, error) {
	return Chunk(d.Dialog, maxLength)
}

func lastSpeakerTwo(buf []string) int {
	prefix := domain.SpeakerTwo.String() + ":"
	for i := len(buf) - 1; i >= 0; i-- {
		if strings.HasPrefix(buf[i], prefix) {
			return i
		}
	}
	return -1
}

func joinedLen(lines []string) int {
	if len(lines) == 0 {
		return 0
	}
	n := len(lines) - 1
	for _, l := range lines {
		n += utf8.RuneCountInString(l)
	}
	return n
}
