// Package wordentry manages the draft and approved word entry lists.
package wordentry

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/wortschatz-backend/internal/domain"
)

type entryRepo interface {
	Create(ctx context.Context, list domain.EntryList, e domain.WordEntry) (*domain.StoredWordEntry, error)
	CreateMany(ctx context.Context, list domain.EntryList, entries []domain.WordEntry) ([]domain.StoredWordEntry, error)
	GetByID(ctx context.Context, list domain.EntryList, id uuid.UUID) (*domain.StoredWordEntry, error)
	GetByWord(ctx context.Context, list domain.EntryList, word string) (*domain.StoredWordEntry, error)
	ExistingWords(ctx context.Context, words []string) (map[string]bool, error)
	List(ctx context.Context, f domain.WordEntryFilter) ([]domain.StoredWordEntry, int, error)
	Update(ctx context.Context, list domain.EntryList, id uuid.UUID, e domain.WordEntry) (*domain.StoredWordEntry, error)
	Delete(ctx context.Context, list domain.EntryList, id uuid.UUID) error
	DeleteAll(ctx context.Context, list domain.EntryList) (int64, error)
	CountByPartOfSpeech(ctx context.Context, list domain.EntryList) (map[domain.PartOfSpeech]int, error)
	MoveToList(ctx context.Context, id uuid.UUID, from, to domain.EntryList) (*domain.StoredWordEntry, error)
}

type entryFetcher interface {
	FetchEntry(ctx context.Context, word string) (domain.WordEntry, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	MaxWordLength   = 100
	MaxExamples     = 3
	MaxUploadWords  = 200
	MaxBatchEntries = 500
)

// Service provides word entry operations over both lists.
type Service struct {
	entries entryRepo
	fetcher entryFetcher
	tx      txManager
	log     *slog.Logger
}

// NewService creates a new word entry service.
func NewService(
	log *slog.Logger,
	entries entryRepo,
	fetcher entryFetcher,
	tx txManager,
) *Service {
	return &Service{
		entries: entries,
		fetcher: fetcher,
		tx:      tx,
		log:     log.With("service", "wordentry"),
	}
}
