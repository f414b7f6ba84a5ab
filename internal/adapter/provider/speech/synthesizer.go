// Package speech turns dialog chunks into spoken audio.
package speech

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"
)

// PCM format returned by the TTS model.
const (
	SampleRate  = 24000
	BitDepth    = 16
	NumChannels = 1
)

const defaultConcurrency = 3

// ErrNoAudio is returned when a TTS response carries no audio payload.
var ErrNoAudio = errors.New("no audio in response")

//go:embed templates/speech_instruction.txt
var defaultInstruction string

var (
	// FemaleVoices are the prebuilt voices picked for Speaker 1.
	FemaleVoices = []string{
		"Achernar", "Aoede", "Autonoe", "Callirrhoe", "Despina", "Erinome", "Gacrux",
		"Kore", "Laomedeia", "Leda", "Pulcherrima", "Sulafat", "Vindemiatrix", "Zephyr",
	}
	// MaleVoices are the prebuilt voices picked for Speaker 2.
	MaleVoices = []string{
		"Achird", "Algenib", "Algieba", "Alnilam", "Charon", "Enceladus", "Fenrir", "Iapetus",
		"Orus", "Puck", "Rasalgethi", "Sadachbia", "Sadaltager", "Schedar", "Umbriel", "Zubenelgenubi",
	}
)

// Voices assigns a prebuilt voice to each dialog speaker.
type Voices struct {
	Female string // Speaker 1
	Male   string // Speaker 2
}

// Model renders one prompt into raw PCM audio.
type Model interface {
	Synthesize(ctx context.Context, prompt string, voices Voices) ([]byte, error)
}

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithConcurrency sets how many chunks are synthesized at once.
func WithConcurrency(n int) Option {
	return func(s *Synthesizer) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithInstruction replaces the reading instruction prepended to every chunk.
func WithInstruction(text string) Option {
	return func(s *Synthesizer) { s.instruction = text }
}

// WithRequestTimeout bounds every single model call.
func WithRequestTimeout(d time.Duration) Option {
	return func(s *Synthesizer) { s.timeout = d }
}

// WithPicker replaces the random voice picker.
func WithPicker(pick func(n int) int) Option {
	return func(s *Synthesizer) { s.pick = pick }
}

// Synthesizer fans dialog chunks out to a TTS model.
type Synthesizer struct {
	model       Model
	instruction string
	concurrency int
	timeout     time.Duration
	pick        func(n int) int
	log         *slog.Logger
}

// NewSynthesizer creates a Synthesizer over model.
func NewSynthesizer(model Model, logger *slog.Logger, opts ...Option) *Synthesizer {
	s := &Synthesizer{
		model:       model,
		instruction: defaultInstruction,
		concurrency: defaultConcurrency,
		pick:        rand.IntN,
		log:         logger.With("adapter", "speech"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SynthesizeChunks returns one audio buffer per chunk, in chunk order.
// Each chunk gets its own random pair of voices. The first failure cancels
// the remaining requests.
func (s *Synthesizer) SynthesizeChunks(ctx context.Context, chunks []string) ([][]byte, error) {
	if len(chunks) == 0 {
		return [][]byte{}, nil
	}

	s.log.InfoContext(ctx, "starting speech synthesis",
		slog.Int("chunks", len(chunks)),
		slog.Int("concurrency", s.concurrency),
	)
	start := time.Now()

	buffers := make([][]byte, len(chunks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, chunk := range chunks {
		voices := s.randomVoices()
		g.Go(func() error {
			s.log.DebugContext(gctx, "synthesizing chunk",
				slog.Int("part", i+1),
				slog.Int("chars", utf8.RuneCountInString(chunk)),
				slog.String("female_voice", voices.Female),
				slog.String("male_voice", voices.Male),
			)
			callCtx := gctx
			if s.timeout > 0 {
				var cancel context.CancelFunc
				callCtx, cancel = context.WithTimeout(gctx, s.timeout)
				defer cancel()
			}

			audio, err := s.model.Synthesize(callCtx, s.prompt(chunk), voices)
			if err != nil {
				return fmt.Errorf("synthesize part %d: %w", i+1, err)
			}
			buffers[i] = audio
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "speech synthesis completed",
		slog.Int("chunks", len(chunks)),
		slog.Duration("duration", time.Since(start)),
	)
	return buffers, nil
}

func (s *Synthesizer) prompt(chunk string) string {
	instruction := strings.TrimSpace(s.instruction)
	if instruction == "" {
		return chunk
	}
	return instruction + "\n" + chunk
}

func (s *Synthesizer) randomVoices() Voices {
	return Voices{
		Female: FemaleVoices[s.pick(len(FemaleVoices))],
		Male:   MaleVoices[s.pick(len(MaleVoices))],
	}
}
