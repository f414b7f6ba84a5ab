// Package wordentry implements the word entry repository using PostgreSQL.
// Draft and approved entries share one table, partitioned by the list column.
package wordentry

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/wortschatz-backend/internal/adapter/postgres"
	"github.com/heartmarshall/wortschatz-backend/internal/domain"
)

const (
	table  = "word_entries"
	entity = "word entry"

	defaultLimit = 50
	maxLimit     = 500
)

var columns = []string{
	"id", "list", "word", "part_of_speech", "regular", "gender",
	"forms", "translation_ru", "examples", "created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides word entry persistence.
type Repo struct {
	db postgres.Querier
}

// New creates a new word entry repository. db is usually a *pgxpool.Pool.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts an entry into list.
// Returns domain.ErrAlreadyExists if the word is already in the list.
func (r *Repo) Create(ctx context.Context, list domain.EntryList, e domain.WordEntry) (*domain.StoredWordEntry, error) {
	args, err := insertArgs(list, e)
	if err != nil {
		return nil, err
	}

	query, qargs, err := psql.Insert(table).
		Columns(insertColumns...).
		Values(args...).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	var row entryRow
	if err := pgxscan.Get(ctx, r.q(ctx), &row, query, qargs...); err != nil {
		return nil, postgres.MapError(err, entity, e.Word)
	}
	return row.toDomain()
}

// CreateMany inserts entries into list in one batch. The batch runs as one
// implicit transaction unless the context already carries one.
func (r *Repo) CreateMany(ctx context.Context, list domain.EntryList, entries []domain.WordEntry) ([]domain.StoredWordEntry, error) {
	if len(entries) == 0 {
		return []domain.StoredWordEntry{}, nil
	}

	batch := &pgx.Batch{}
	for _, e := range entries {
		args, err := insertArgs(list, e)
		if err != nil {
			return nil, err
		}
		query, qargs, err := psql.Insert(table).
			Columns(insertColumns...).
			Values(args...).
			Suffix(returning).
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("build insert: %w", err)
		}
		batch.Queue(query, qargs...)
	}

	br := r.q(ctx).SendBatch(ctx, batch)
	defer br.Close()

	out := make([]domain.StoredWordEntry, 0, len(entries))
	for _, e := range entries {
		rows, err := br.Query()
		if err != nil {
			return nil, postgres.MapError(err, entity, e.Word)
		}
		var row entryRow
		if err := pgxscan.ScanOne(&row, rows); err != nil {
			return nil, postgres.MapError(err, entity, e.Word)
		}
		stored, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, *stored)
	}

	if err := br.Close(); err != nil {
		return nil, postgres.MapError(err, entity, "batch")
	}
	return out, nil
}

// Update replaces the content of an entry in list.
func (r *Repo) Update(ctx context.Context, list domain.EntryList, id uuid.UUID, e domain.WordEntry) (*domain.StoredWordEntry, error) {
	forms, examples, err := marshalContent(e)
	if err != nil {
		return nil, err
	}

	query, args, err := psql.Update(table).
		Set("word", e.Word).
		Set("word_normalized", domain.NormalizeText(e.Word)).
		Set("part_of_speech", string(e.Grammar.PartOfSpeech)).
		Set("regular", e.Grammar.Regular).
		Set("gender", genderArg(e.Grammar.Gender)).
		Set("forms", forms).
		Set("translation_ru", e.Translations.RU).
		Set("examples", examples).
		Where(squirrel.Eq{"id": id, "list": string(list)}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	var row entryRow
	if err := pgxscan.Get(ctx, r.q(ctx), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return row.toDomain()
}

// MoveToList moves an entry from one list to another.
// Returns domain.ErrNotFound if the entry is not in from, and
// domain.ErrAlreadyExists if to already holds the same word.
func (r *Repo) MoveToList(ctx context.Context, id uuid.UUID, from, to domain.EntryList) (*domain.StoredWordEntry, error) {
	query, args, err := psql.Update(table).
		Set("list", string(to)).
		Where(squirrel.Eq{"id": id, "list": string(from)}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build move: %w", err)
	}

	var row entryRow
	if err := pgxscan.Get(ctx, r.q(ctx), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return row.toDomain()
}

// Delete removes an entry from list.
func (r *Repo) Delete(ctx context.Context, list domain.EntryList, id uuid.UUID) error {
	query, args, err := psql.Delete(table).
		Where(squirrel.Eq{"id": id, "list": string(list)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

// DeleteAll removes every entry of list and returns how many were removed.
func (r *Repo) DeleteAll(ctx context.Context, list domain.EntryList) (int64, error) {
	query, args, err := psql.Delete(table).
		Where(squirrel.Eq{"list": string(list)}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete all: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, entity, list)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an entry of list by primary key.
func (r *Repo) GetByID(ctx context.Context, list domain.EntryList, id uuid.UUID) (*domain.StoredWordEntry, error) {
	query, args, err := psql.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id, "list": string(list)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get: %w", err)
	}

	var row entryRow
	if err := pgxscan.Get(ctx, r.q(ctx), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return row.toDomain()
}

// GetByWord returns the entry of list whose normalized headword equals word's.
func (r *Repo) GetByWord(ctx context.Context, list domain.EntryList, word string) (*domain.StoredWordEntry, error) {
	query, args, err := psql.Select(columns...).
		From(table).
		Where(squirrel.Eq{"list": string(list), "word_normalized": domain.NormalizeText(word)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get by word: %w", err)
	}

	var row entryRow
	if err := pgxscan.Get(ctx, r.q(ctx), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, word)
	}
	return row.toDomain()
}

// ExistingWords reports which of words (compared normalized) are stored in
// any list. The result is keyed by normalized word.
func (r *Repo) ExistingWords(ctx context.Context, words []string) (map[string]bool, error) {
	found := make(map[string]bool)
	if len(words) == 0 {
		return found, nil
	}

	normalized := make([]string, 0, len(words))
	for _, w := range words {
		normalized = append(normalized, domain.NormalizeText(w))
	}

	query, args, err := psql.Select("DISTINCT word_normalized").
		From(table).
		Where(squirrel.Eq{"word_normalized": normalized}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build existing words: %w", err)
	}

	var existing []string
	if err := pgxscan.Select(ctx, r.q(ctx), &existing, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, "existing")
	}
	for _, w := range existing {
		found[w] = true
	}
	return found, nil
}

// List returns one page of entries matching f, newest first, and the total
// number of matching entries.
func (r *Repo) List(ctx context.Context, f domain.WordEntryFilter) ([]domain.StoredWordEntry, int, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	limit = min(limit, maxLimit)
	offset := max(f.Offset, 0)

	where := filterWhere(f)

	countQuery, countArgs, err := psql.Select("count(*)").From(table).Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count: %w", err)
	}
	var total int
	if err := r.q(ctx).QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, entity, f.List)
	}

	query, args, err := psql.Select(columns...).
		From(table).
		Where(where).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list: %w", err)
	}

	var rows []entryRow
	if err := pgxscan.Select(ctx, r.q(ctx), &rows, query, args...); err != nil {
		return nil, 0, postgres.MapError(err, entity, f.List)
	}

	out := make([]domain.StoredWordEntry, 0, len(rows))
	for _, row := range rows {
		stored, err := row.toDomain()
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *stored)
	}
	return out, total, nil
}

// CountByPartOfSpeech returns the number of entries per part of speech in list.
func (r *Repo) CountByPartOfSpeech(ctx context.Context, list domain.EntryList) (map[domain.PartOfSpeech]int, error) {
	query, args, err := psql.Select("part_of_speech", "count(*)").
		From(table).
		Where(squirrel.Eq{"list": string(list)}).
		GroupBy("part_of_speech").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build stats: %w", err)
	}

	rows, err := r.q(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, entity, list)
	}
	defer rows.Close()

	counts := make(map[domain.PartOfSpeech]int)
	for rows.Next() {
		var (
			pos string
			n   int
		)
		if err := rows.Scan(&pos, &n); err != nil {
			return nil, fmt.Errorf("scan stats: %w", err)
		}
		counts[domain.PartOfSpeech(pos)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, entity, list)
	}
	return counts, nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

var insertColumns = []string{
	"list", "word", "word_normalized", "part_of_speech", "regular", "gender",
	"forms", "translation_ru", "examples",
}

func insertArgs(list domain.EntryList, e domain.WordEntry) ([]any, error) {
	forms, examples, err := marshalContent(e)
	if err != nil {
		return nil, err
	}
	return []any{
		string(list),
		e.Word,
		domain.NormalizeText(e.Word),
		string(e.Grammar.PartOfSpeech),
		e.Grammar.Regular,
		genderArg(e.Grammar.Gender),
		forms,
		e.Translations.RU,
		examples,
	}, nil
}

// marshalContent encodes the jsonb columns. Nil forms are stored as SQL NULL.
func marshalContent(e domain.WordEntry) (forms, examples []byte, err error) {
	if e.Forms != nil {
		if forms, err = json.Marshal(e.Forms); err != nil {
			return nil, nil, fmt.Errorf("marshal forms: %w", err)
		}
	}
	ex := e.Examples
	if ex == nil {
		ex = []string{}
	}
	if examples, err = json.Marshal(ex); err != nil {
		return nil, nil, fmt.Errorf("marshal examples: %w", err)
	}
	return forms, examples, nil
}

func genderArg(g *domain.Gender) *string {
	if g == nil {
		return nil
	}
	s := string(*g)
	return &s
}

func filterWhere(f domain.WordEntryFilter) squirrel.And {
	where := squirrel.And{squirrel.Eq{"list": string(f.List)}}
	if f.PartOfSpeech != nil {
		where = append(where, squirrel.Eq{"part_of_speech": string(*f.PartOfSpeech)})
	}
	if f.Search != nil {
		if s := domain.NormalizeText(*f.Search); s != "" {
			where = append(where, squirrel.ILike{"word_normalized": "%" + escapeLike(s) + "%"})
		}
	}
	return where
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string { return likeEscaper.Replace(s) }

type entryRow struct {
	ID            uuid.UUID `db:"id"`
	List          string    `db:"list"`
	Word          string    `db:"word"`
	PartOfSpeech  string    `db:"part_of_speech"`
	Regular       bool      `db:"regular"`
	Gender        *string   `db:"gender"`
	Forms         []byte    `db:"forms"`
	TranslationRU string    `db:"translation_ru"`
	Examples      []byte    `db:"examples"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

func (row entryRow) toDomain() (*domain.StoredWordEntry, error) {
	pos := domain.PartOfSpeech(row.PartOfSpeech)

	forms, err := domain.DecodeForms(pos, row.Forms)
	if err != nil {
		return nil, fmt.Errorf("%s %s: decode forms: %w", entity, row.ID, err)
	}

	examples := []string{}
	if len(row.Examples) > 0 {
		if err := json.Unmarshal(row.Examples, &examples); err != nil {
			return nil, fmt.Errorf("%s %s: decode examples: %w", entity, row.ID, err)
		}
		if examples == nil {
			examples = []string{}
		}
	}

	var gender *domain.Gender
	if row.Gender != nil {
		gender = domain.GenderPtr(domain.Gender(*row.Gender))
	}

	return &domain.StoredWordEntry{
		ID:   row.ID,
		List: domain.EntryList(row.List),
		Entry: domain.WordEntry{
			Word: row.Word,
			Grammar: domain.Grammar{
				PartOfSpeech: pos,
				Regular:      row.Regular,
				Gender:       gender,
			},
			Forms:        forms,
			Translations: domain.Translations{RU: row.TranslationRU},
			Examples:     examples,
		},
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}
