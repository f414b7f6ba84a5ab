package testhelper

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/wortschatz-backend/internal/domain"
)

// UniqueWord returns base with a short unique suffix so parallel tests
// never collide on (list, word_normalized).
func UniqueWord(base string) string {
	return base + "-" + uuid.New().String()[:8]
}

// SeedWordEntry inserts an entry directly and returns its id.
func SeedWordEntry(t *testing.T, pool *pgxpool.Pool, list domain.EntryList, e domain.WordEntry) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	var forms []byte
	if e.Forms != nil {
		var err error
		if forms, err = json.Marshal(e.Forms); err != nil {
			t.Fatalf("testhelper: SeedWordEntry marshal forms: %v", err)
		}
	}
	examples := e.Examples
	if examples == nil {
		examples = []string{}
	}
	exJSON, err := json.Marshal(examples)
	if err != nil {
		t.Fatalf("testhelper: SeedWordEntry marshal examples: %v", err)
	}

	var gender *string
	if e.Grammar.Gender != nil {
		g := string(*e.Grammar.Gender)
		gender = &g
	}

	var id uuid.UUID
	err = pool.QueryRow(ctx,
		`INSERT INTO word_entries (list, word, word_normalized, part_of_speech, regular, gender, forms, translation_ru, examples)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`,
		string(list), e.Word, domain.NormalizeText(e.Word), string(e.Grammar.PartOfSpeech),
		e.Grammar.Regular, gender, forms, e.Translations.RU, exJSON,
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedWordEntry insert: %v", err)
	}
	return id
}
