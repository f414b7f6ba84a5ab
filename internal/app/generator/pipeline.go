// Package generator runs the content generation pipeline: word list in,
// dialog text and speech audio out.
package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/wortschatz-backend/internal/adapter/provider/llm"
	"github.com/heartmarshall/wortschatz-backend/internal/dialog"
	"github.com/heartmarshall/wortschatz-backend/internal/domain"
)

type entryFetcher interface {
	FetchEntries(ctx context.Context, words []string) ([]domain.WordEntry, error)
}

type dialogGenerator interface {
	Generate(ctx context.Context, req llm.DialogRequest) (domain.DialogData, error)
}

type speechSynthesizer interface {
	SynthesizeChunks(ctx context.Context, chunks []string) ([][]byte, error)
}

// Config holds pipeline settings.
type Config struct {
	WordsFile      string
	OutputDir      string
	ChunkMaxLength int
	MinDialogLines int
}

// Result describes a finished run.
type Result struct {
	Session   Session
	WordForms int
	Entries   int
	Lines     int
	Chunks    int
	Files     []string
	Duration  time.Duration
}

// Pipeline orchestrates one generation run.
type Pipeline struct {
	log      *slog.Logger
	cfg      Config
	registry Registry
	fetcher  entryFetcher
	dialogs  dialogGenerator
	speech   speechSynthesizer
	now      func() time.Time
}

// NewPipeline creates a new Pipeline. fetcher is only used by test runs.
func NewPipeline(
	logger *slog.Logger,
	cfg Config,
	registry Registry,
	fetcher entryFetcher,
	dialogs dialogGenerator,
	speech speechSynthesizer,
) *Pipeline {
	if cfg.ChunkMaxLength <= 0 {
		cfg.ChunkMaxLength = dialog.DefaultMaxLength
	}
	return &Pipeline{
		log:      logger.With("service", "generator"),
		cfg:      cfg,
		registry: registry,
		fetcher:  fetcher,
		dialogs:  dialogs,
		speech:   speech,
		now:      time.Now,
	}
}

// Run executes one generation of type t. The registry counter is advanced
// only when every step succeeds.
//
// Main runs treat the word list lines as word forms. Test runs look every
// word up on woerter.net first, save word_info.csv and use the presented
// forms of the fetched entries.
func (p *Pipeline) Run(ctx context.Context, t domain.CounterType) (*Result, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("generation type %q: %w", t, domain.ErrInvalidArgument)
	}
	start := p.now()

	current, err := p.registry.Counter(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("read registry: %w", err)
	}
	session := NewSession(p.cfg.OutputDir, t, current+1, start)
	log := p.log.With(slog.String("type", t.String()), slog.Int("number", session.Number))

	log.InfoContext(ctx, "generation started", slog.String("dir", session.Dir))

	words, err := ReadWordList(p.cfg.WordsFile)
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list %s is empty: %w", p.cfg.WordsFile, domain.ErrInvalidArgument)
	}

	if err := session.Create(); err != nil {
		return nil, err
	}
	result := &Result{Session: session}

	wordForms := words
	if t == domain.CounterTest {
		wordForms, err = p.prepareTestForms(ctx, log, session, words, result)
		if err != nil {
			return nil, err
		}
	}
	result.WordForms = len(wordForms)

	data, err := p.dialogs.Generate(ctx, llm.DialogRequest{
		WordForms:    wordForms,
		MinLines:     p.cfg.MinDialogLines,
		SpeechNumber: session.Number,
	})
	if err != nil {
		return nil, fmt.Errorf("generate dialog: %w", err)
	}
	result.Lines = len(data.Dialog)

	if err := SaveDialogJSON(session.Path(DialogJSONFile), data); err != nil {
		return nil, err
	}
	result.Files = append(result.Files, session.Path(DialogJSONFile))

	chunks, err := dialog.ChunkData(data, p.cfg.ChunkMaxLength)
	if err != nil {
		return nil, fmt.Errorf("chunk dialog: %w", err)
	}
	result.Chunks = len(chunks)

	if err := SaveDialogText(session.Path(DialogTextFile), chunks); err != nil {
		return nil, err
	}
	result.Files = append(result.Files, session.Path(DialogTextFile))
	log.InfoContext(ctx, "dialog saved", slog.Int("lines", result.Lines), slog.Int("chunks", result.Chunks))

	audio, err := p.speech.SynthesizeChunks(ctx, chunks)
	if err != nil {
		return nil, fmt.Errorf("synthesize speech: %w", err)
	}
	if err := SaveSpeechWAV(session.Path(SpeechFile), audio); err != nil {
		return nil, err
	}
	result.Files = append(result.Files, session.Path(SpeechFile))

	if err := p.registry.Update(ctx, t, session.Number); err != nil {
		return nil, fmt.Errorf("update registry: %w", err)
	}

	result.Duration = p.now().Sub(start)
	log.InfoContext(ctx, "generation completed",
		slog.Int("word_forms", result.WordForms),
		slog.Int("lines", result.Lines),
		slog.Int("chunks", result.Chunks),
		slog.Duration("duration", result.Duration),
	)
	return result, nil
}

// prepareTestForms fetches entries for words, exports them and returns
// their presented forms. Individual lookup failures are logged and skipped.
func (p *Pipeline) prepareTestForms(ctx context.Context, log *slog.Logger, session Session, words []string, result *Result) ([]string, error) {
	if p.fetcher == nil {
		return nil, errors.New("test generation requires a word entry fetcher")
	}

	entries, err := p.fetcher.FetchEntries(ctx, words)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, fmt.Errorf("fetch word entries: %w", ctxErr)
	}
	if err != nil {
		log.WarnContext(ctx, "some words could not be fetched",
			slog.Int("requested", len(words)),
			slog.Int("fetched", len(entries)),
			slog.String("error", err.Error()),
		)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no word entries fetched: %w", errors.Join(domain.ErrNotFound, err))
	}
	result.Entries = len(entries)

	if err := SaveEntriesCSV(session.Path(WordInfoFile), entries); err != nil {
		return nil, err
	}
	result.Files = append(result.Files, session.Path(WordInfoFile))

	forms := make([]string, 0, len(entries))
	for _, e := range entries {
		forms = append(forms, domain.FormsString(e))
	}
	return forms, nil
}
