package wordentry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/wortschatz-backend/internal/domain"
)

// UploadFailure describes a word that could not be turned into a draft.
type UploadFailure struct {
	Word   string `json:"word"`
	Reason string `json:"reason"`
}

// UploadResult is the outcome of an upload.
type UploadResult struct {
	Created []domain.StoredWordEntry
	Skipped []string
	Failed  []UploadFailure
}

// Upload looks words up in the dictionary and stores the results as drafts.
// Words already stored in either list are skipped; lookup failures are
// reported per word and do not abort the upload.
func (s *Service) Upload(ctx context.Context, input UploadInput) (*UploadResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	words := input.normalized()

	existing, err := s.entries.ExistingWords(ctx, words)
	if err != nil {
		return nil, fmt.Errorf("check existing words: %w", err)
	}

	result := &UploadResult{
		Created: []domain.StoredWordEntry{},
		Skipped: []string{},
		Failed:  []UploadFailure{},
	}

	var fetched []domain.WordEntry
	for _, w := range words {
		if existing[domain.NormalizeText(w)] {
			result.Skipped = append(result.Skipped, w)
			continue
		}

		entry, err := s.fetcher.FetchEntry(ctx, w)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, err
			}
			s.log.WarnContext(ctx, "upload lookup failed", slog.String("word", w), slog.String("error", err.Error()))
			result.Failed = append(result.Failed, UploadFailure{Word: w, Reason: err.Error()})
			continue
		}
		if errs := ValidateEntry(entry, ""); len(errs) > 0 {
			result.Failed = append(result.Failed, UploadFailure{Word: w, Reason: domain.NewValidationErrors(errs).Error()})
			continue
		}
		fetched = append(fetched, prepareEntry(entry))
	}

	// A lookup may resolve to a different headword (e.g. "ging" -> "gehen").
	toStore, err := s.dropKnownHeadwords(ctx, fetched, result)
	if err != nil {
		return nil, err
	}

	if len(toStore) > 0 {
		err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			stored, createErr := s.entries.CreateMany(txCtx, domain.EntryListDraft, toStore)
			if createErr != nil {
				return fmt.Errorf("create drafts: %w", createErr)
			}
			result.Created = stored
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	s.log.InfoContext(ctx, "words uploaded",
		slog.Int("requested", len(words)),
		slog.Int("created", len(result.Created)),
		slog.Int("skipped", len(result.Skipped)),
		slog.Int("failed", len(result.Failed)),
	)
	return result, nil
}

func (s *Service) dropKnownHeadwords(ctx context.Context, fetched []domain.WordEntry, result *UploadResult) ([]domain.WordEntry, error) {
	if len(fetched) == 0 {
		return nil, nil
	}

	headwords := make([]string, len(fetched))
	for i, e := range fetched {
		headwords[i] = e.Word
	}
	known, err := s.entries.ExistingWords(ctx, headwords)
	if err != nil {
		return nil, fmt.Errorf("check existing headwords: %w", err)
	}

	seen := make(map[string]bool, len(fetched))
	out := make([]domain.WordEntry, 0, len(fetched))
	for _, e := range fetched {
		key := domain.NormalizeText(e.Word)
		if known[key] || seen[key] {
			result.Skipped = append(result.Skipped, e.Word)
			continue
		}
		seen[key] = true
		out = append(out, e)
	}
	return out, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
