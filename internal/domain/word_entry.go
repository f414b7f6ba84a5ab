package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// WordEntry is the normalized linguistic record extracted from one
// dictionary lookup page.
type WordEntry struct {
	Word         string       `json:"word"`
	Grammar      Grammar      `json:"grammar"`
	Forms        WordForms    `json:"forms"`
	Translations Translations `json:"translations"`
	Examples     []string     `json:"examples"`
}

// Grammar holds the grammatical classification of a headword.
// Gender is meaningful only for nouns; nil means "not determined".
type Grammar struct {
	PartOfSpeech PartOfSpeech `json:"partOfSpeech"`
	Regular      bool         `json:"regular"`
	Gender       *Gender      `json:"gender"`
}

// Translations holds the target-language gloss. Empty when absent.
type Translations struct {
	RU string `json:"ru"`
}

// UnmarshalJSON decodes a WordEntry, resolving the forms variant from
// grammar.partOfSpeech.
func (e *WordEntry) UnmarshalJSON(data []byte) error {
	var aux struct {
		Word         string          `json:"word"`
		Grammar      Grammar         `json:"grammar"`
		Forms        json.RawMessage `json:"forms"`
		Translations Translations    `json:"translations"`
		Examples     []string        `json:"examples"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	forms, err := DecodeForms(aux.Grammar.PartOfSpeech, aux.Forms)
	if err != nil {
		return fmt.Errorf("forms: %w", err)
	}

	*e = WordEntry{
		Word:         aux.Word,
		Grammar:      aux.Grammar,
		Forms:        forms,
		Translations: aux.Translations,
		Examples:     aux.Examples,
	}
	return nil
}

// GenderPtr returns a pointer to g.
func GenderPtr(g Gender) *Gender { return &g }

// StoredWordEntry is a WordEntry persisted in one of the curated lists.
type StoredWordEntry struct {
	ID        uuid.UUID
	List      EntryList
	Entry     WordEntry
	CreatedAt time.Time
	UpdatedAt time.Time
}

// WordEntryFilter narrows a list query over stored entries.
type WordEntryFilter struct {
	List         EntryList
	PartOfSpeech *PartOfSpeech
	// Search is a case-insensitive substring match on the headword.
	Search *string
	Limit  int
	Offset int
}

// WordEntryStats summarises one list.
type WordEntryStats struct {
	Total          int                  `json:"total"`
	ByPartOfSpeech map[PartOfSpeech]int `json:"byPartOfSpeech"`
}
