package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/heartmarshall/wortschatz-backend/internal/domain"
)

// Output file names inside a session directory.
const (
	WordInfoFile   = "word_info.csv"
	DialogJSONFile = "dialog.json"
	DialogTextFile = "dialog.txt"
	SpeechFile     = "speech.wav"
)

// Session is one generation run and its output directory.
type Session struct {
	Type   domain.CounterType
	Number int
	Date   time.Time
	Dir    string
}

// NewSession builds the session for run number n:
//
//	main: {output}/generation_{n}_{YYYY-MM-DD}
//	test: {output}/test/test_generation_{n}_{YYYY-MM-DD}
func NewSession(outputDir string, t domain.CounterType, n int, now time.Time) Session {
	date := now.Format(time.DateOnly)

	dir := filepath.Join(outputDir, fmt.Sprintf("generation_%d_%s", n, date))
	if t == domain.CounterTest {
		dir = filepath.Join(outputDir, "test", fmt.Sprintf("test_generation_%d_%s", n, date))
	}

	return Session{Type: t, Number: n, Date: now, Dir: dir}
}

// Path returns the path of name inside the session directory.
func (s Session) Path(name string) string {
	return filepath.Join(s.Dir, name)
}

// Create makes the session directory.
func (s Session) Create() error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	return nil
}
