package wordentry

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/wortschatz-backend/internal/domain"
)

// ValidateEntry checks a word entry and collects all errors. prefix is
// prepended to field names (e.g. "wordEntries[2].").
func ValidateEntry(e domain.WordEntry, prefix string) []domain.FieldError {
	var errs []domain.FieldError
	add := func(field, msg string) {
		errs = append(errs, domain.FieldError{Field: prefix + field, Message: msg})
	}

	word := strings.TrimSpace(e.Word)
	if word == "" {
		add("word", "required")
	}
	if utf8.RuneCountInString(word) > MaxWordLength {
		add("word", fmt.Sprintf("max %d characters", MaxWordLength))
	}

	pos := e.Grammar.PartOfSpeech
	if !pos.IsValid() {
		add("grammar.partOfSpeech", "invalid value")
	}

	if g := e.Grammar.Gender; g != nil {
		if !g.IsValid() {
			add("grammar.gender", "invalid value")
		} else if pos != domain.PartOfSpeechNoun {
			add("grammar.gender", "allowed only for nouns")
		}
	}

	if pos.IsValid() && !domain.FormsAllowed(pos, e.Forms) {
		add("forms", "does not match part of speech")
	}

	if len(e.Examples) > MaxExamples {
		add("examples", fmt.Sprintf("max %d examples", MaxExamples))
	}
	for i, ex := range e.Examples {
		if strings.TrimSpace(ex) == "" {
			add(fmt.Sprintf("examples[%d]", i), "must not be empty")
		}
	}

	return errs
}

// prepareEntry trims text fields and replaces nil examples with an empty slice.
func prepareEntry(e domain.WordEntry) domain.WordEntry {
	e.Word = strings.TrimSpace(e.Word)
	e.Translations.RU = strings.TrimSpace(e.Translations.RU)
	examples := make([]string, 0, len(e.Examples))
	for _, ex := range e.Examples {
		examples = append(examples, strings.TrimSpace(ex))
	}
	e.Examples = examples
	return e
}

func validateList(list domain.EntryList) error {
	if !list.IsValid() {
		return domain.NewValidationError("list", "invalid value")
	}
	return nil
}

// CreateManyInput holds entries to add to a list in one transaction.
type CreateManyInput struct {
	Entries []domain.WordEntry
}

// Validate checks all fields and collects all errors.
func (i CreateManyInput) Validate() error {
	var errs []domain.FieldError
	if len(i.Entries) == 0 {
		errs = append(errs, domain.FieldError{Field: "wordEntries", Message: "at least one entry required"})
	}
	if len(i.Entries) > MaxBatchEntries {
		errs = append(errs, domain.FieldError{Field: "wordEntries", Message: fmt.Sprintf("max %d entries per batch", MaxBatchEntries)})
	}
	seen := make(map[string]int, len(i.Entries))
	for idx, e := range i.Entries {
		prefix := fmt.Sprintf("wordEntries[%d].", idx)
		errs = append(errs, ValidateEntry(e, prefix)...)
		key := domain.NormalizeText(e.Word)
		if first, dup := seen[key]; dup && key != "" {
			errs = append(errs, domain.FieldError{Field: prefix + "word", Message: fmt.Sprintf("duplicates wordEntries[%d]", first)})
		} else {
			seen[key] = idx
		}
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListInput holds list query parameters.
type ListInput struct {
	PartOfSpeech *string
	Search       *string
	Limit        int
	Offset       int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError
	if i.PartOfSpeech != nil && !domain.PartOfSpeech(*i.PartOfSpeech).IsValid() {
		errs = append(errs, domain.FieldError{Field: "pos", Message: "invalid value"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be >= 0"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be >= 0"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UploadInput holds words to look up and store as drafts.
type UploadInput struct {
	Words []string
}

// Validate checks all fields and collects all errors.
func (i UploadInput) Validate() error {
	words := i.normalized()
	if len(words) == 0 {
		return domain.NewValidationError("words", "at least one word required")
	}
	if len(words) > MaxUploadWords {
		return domain.NewValidationError("words", fmt.Sprintf("max %d words per upload", MaxUploadWords))
	}
	return nil
}

// normalized returns trimmed, non-empty words with duplicates removed,
// keeping first occurrence order.
func (i UploadInput) normalized() []string {
	seen := make(map[string]bool, len(i.Words))
	out := make([]string, 0, len(i.Words))
	for _, w := range i.Words {
		w = strings.TrimSpace(w)
		key := domain.NormalizeText(w)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, w)
	}
	return out
}

func validateID(id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	return nil
}
