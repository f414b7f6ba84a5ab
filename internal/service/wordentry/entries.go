package wordentry

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/wortschatz-backend/internal/domain"
)

// ListResult is one page of a list query.
type ListResult struct {
	Items []domain.StoredWordEntry
	Total int
}

// Create adds one entry to list.
func (s *Service) Create(ctx context.Context, list domain.EntryList, e domain.WordEntry) (*domain.StoredWordEntry, error) {
	if err := validateList(list); err != nil {
		return nil, err
	}
	if errs := ValidateEntry(e, ""); len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	stored, err := s.entries.Create(ctx, list, prepareEntry(e))
	if err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}

	s.log.InfoContext(ctx, "word entry created",
		slog.String("list", list.String()),
		slog.String("id", stored.ID.String()),
		slog.String("word", stored.Entry.Word),
	)
	return stored, nil
}

// CreateMany adds entries to list atomically: either all are stored or none.
func (s *Service) CreateMany(ctx context.Context, list domain.EntryList, input CreateManyInput) ([]domain.StoredWordEntry, error) {
	if err := validateList(list); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	prepared := make([]domain.WordEntry, len(input.Entries))
	for i, e := range input.Entries {
		prepared[i] = prepareEntry(e)
	}

	var stored []domain.StoredWordEntry
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		stored, createErr = s.entries.CreateMany(txCtx, list, prepared)
		if createErr != nil {
			return fmt.Errorf("create entries: %w", createErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "word entries created",
		slog.String("list", list.String()),
		slog.Int("count", len(stored)),
	)
	return stored, nil
}

// Get returns an entry of list by id.
func (s *Service) Get(ctx context.Context, list domain.EntryList, id uuid.UUID) (*domain.StoredWordEntry, error) {
	if err := validateList(list); err != nil {
		return nil, err
	}
	if err := validateID(id); err != nil {
		return nil, err
	}
	return s.entries.GetByID(ctx, list, id)
}

// FindByWord returns the entry of list with the given headword.
func (s *Service) FindByWord(ctx context.Context, list domain.EntryList, word string) (*domain.StoredWordEntry, error) {
	if err := validateList(list); err != nil {
		return nil, err
	}
	if strings.TrimSpace(word) == "" {
		return nil, domain.NewValidationError("word", "required")
	}
	return s.entries.GetByWord(ctx, list, word)
}

// List returns a page of entries of list.
func (s *Service) List(ctx context.Context, list domain.EntryList, input ListInput) (*ListResult, error) {
	if err := validateList(list); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	f := domain.WordEntryFilter{
		List:   list,
		Search: input.Search,
		Limit:  input.Limit,
		Offset: input.Offset,
	}
	if input.PartOfSpeech != nil {
		pos := domain.PartOfSpeech(*input.PartOfSpeech)
		f.PartOfSpeech = &pos
	}

	items, total, err := s.entries.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return &ListResult{Items: items, Total: total}, nil
}

// Update replaces the content of an entry of list.
func (s *Service) Update(ctx context.Context, list domain.EntryList, id uuid.UUID, e domain.WordEntry) (*domain.StoredWordEntry, error) {
	if err := validateList(list); err != nil {
		return nil, err
	}
	if err := validateID(id); err != nil {
		return nil, err
	}
	if errs := ValidateEntry(e, ""); len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	stored, err := s.entries.Update(ctx, list, id, prepareEntry(e))
	if err != nil {
		return nil, fmt.Errorf("update entry: %w", err)
	}

	s.log.InfoContext(ctx, "word entry updated",
		slog.String("list", list.String()),
		slog.String("id", id.String()),
	)
	return stored, nil
}

// Delete removes an entry of list.
func (s *Service) Delete(ctx context.Context, list domain.EntryList, id uuid.UUID) error {
	if err := validateList(list); err != nil {
		return err
	}
	if err := validateID(id); err != nil {
		return err
	}
	if err := s.entries.Delete(ctx, list, id); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}

	s.log.InfoContext(ctx, "word entry deleted",
		slog.String("list", list.String()),
		slog.String("id", id.String()),
	)
	return nil
}

// DeleteAll empties list and returns how many entries were removed.
func (s *Service) DeleteAll(ctx context.Context, list domain.EntryList) (int64, error) {
	if err := validateList(list); err != nil {
		return 0, err
	}
	n, err := s.entries.DeleteAll(ctx, list)
	if err != nil {
		return 0, fmt.Errorf("delete all entries: %w", err)
	}

	s.log.WarnContext(ctx, "word entry list cleared",
		slog.String("list", list.String()),
		slog.Int64("deleted", n),
	)
	return n, nil
}

// Stats summarises list by part of speech.
func (s *Service) Stats(ctx context.Context, list domain.EntryList) (*domain.WordEntryStats, error) {
	if err := validateList(list); err != nil {
		return nil, err
	}
	counts, err := s.entries.CountByPartOfSpeech(ctx, list)
	if err != nil {
		return nil, fmt.Errorf("count entries: %w", err)
	}

	stats := &domain.WordEntryStats{ByPartOfSpeech: make(map[domain.PartOfSpeech]int, len(counts))}
	for pos, n := range counts {
		stats.ByPartOfSpeech[pos] = n
		stats.Total += n
	}
	return stats, nil
}
