package wordentry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/wortschatz-backend/internal/domain"
)

// Approve moves a draft entry to the approved list.
func (s *Service) Approve(ctx context.Context, id uuid.UUID) (*domain.StoredWordEntry, error) {
	return s.move(ctx, id, domain.EntryListDraft, domain.EntryListApproved)
}

// MoveToDraft moves an approved entry back to the draft list.
func (s *Service) MoveToDraft(ctx context.Context, id uuid.UUID) (*domain.StoredWordEntry, error) {
	return s.move(ctx, id, domain.EntryListApproved, domain.EntryListDraft)
}

// move transfers an entry between lists in one transaction. The target list
// must not already hold the same headword.
func (s *Service) move(ctx context.Context, id uuid.UUID, from, to domain.EntryList) (*domain.StoredWordEntry, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	var moved *domain.StoredWordEntry
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.entries.GetByID(txCtx, from, id)
		if err != nil {
			return fmt.Errorf("get entry: %w", err)
		}

		_, err = s.entries.GetByWord(txCtx, to, current.Entry.Word)
		switch {
		case err == nil:
			return fmt.Errorf("word %q in %s list: %w", current.Entry.Word, to, domain.ErrAlreadyExists)
		case !isNotFound(err):
			return fmt.Errorf("check target list: %w", err)
		}

		moved, err = s.entries.MoveToList(txCtx, id, from, to)
		if err != nil {
			return fmt.Errorf("move entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "word entry moved",
		slog.String("id", id.String()),
		slog.String("word", moved.Entry.Word),
		slog.String("from", from.String()),
		slog.String("to", to.String()),
	)
	return moved, nil
}
