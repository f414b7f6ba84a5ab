package rest

import (
	"time"

	"github.com/heartmarshall/wortschatz-backend/internal/domain"
	"github.com/heartmarshall/wortschatz-backend/internal/service/wordentry"
)

type createEntriesRequest struct {
	WordEntries []domain.WordEntry `json:"wordEntries"`
}

type uploadRequest struct {
	Words []string `json:"words"`
}

type entryResponse struct {
	ID           string              `json:"id"`
	List         string              `json:"list"`
	Word         string              `json:"word"`
	Grammar      domain.Grammar      `json:"grammar"`
	Forms        domain.WordForms    `json:"forms"`
	FormsText    string              `json:"formsText"`
	Translations domain.Translations `json:"translations"`
	Examples     []string            `json:"examples"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}

type listResponse struct {
	Items  []entryResponse `json:"items"`
	Total  int             `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

type uploadResponse struct {
	Created []entryResponse           `json:"created"`
	Skipped []string                  `json:"skipped"`
	Failed  []wordentry.UploadFailure `json:"failed"`
}

type deleteAllResponse struct {
	Deleted int64 `json:"deleted"`
}

func toEntryResponse(s domain.StoredWordEntry) entryResponse {
	examples := s.Entry.Examples
	if examples == nil {
		examples = []string{}
	}
	return entryResponse{
		ID:           s.ID.String(),
		List:         s.List.String(),
		Word:         s.Entry.Word,
		Grammar:      s.Entry.Grammar,
		Forms:        s.Entry.Forms,
		FormsText:    domain.FormsString(s.Entry),
		Translations: s.Entry.Translations,
		Examples:     examples,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func toEntryResponses(items []domain.StoredWordEntry) []entryResponse {
	out := make([]entryResponse, len(items))
	for i, s := range items {
		out[i] = toEntryResponse(s)
	}
	return out
}
