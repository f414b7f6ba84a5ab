package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/wortschatz-backend/internal/domain"
	"github.com/heartmarshall/wortschatz-backend/internal/service/wordentry"
)

const maxBodyBytes = 4 << 20

// wordEntryService defines the operations the word entry handlers need.
type wordEntryService interface {
	CreateMany(ctx context.Context, list domain.EntryList, input wordentry.CreateManyInput) ([]domain.StoredWordEntry, error)
	Get(ctx context.Context, list domain.EntryList, id uuid.UUID) (*domain.StoredWordEntry, error)
	List(ctx context.Context, list domain.EntryList, input wordentry.ListInput) (*wordentry.ListResult, error)
	Update(ctx context.Context, list domain.EntryList, id uuid.UUID, e domain.WordEntry) (*domain.StoredWordEntry, error)
	Delete(ctx context.Context, list domain.EntryList, id uuid.UUID) error
	DeleteAll(ctx context.Context, list domain.EntryList) (int64, error)
	Stats(ctx context.Context, list domain.EntryList) (*domain.WordEntryStats, error)
	Approve(ctx context.Context, id uuid.UUID) (*domain.StoredWordEntry, error)
	MoveToDraft(ctx context.Context, id uuid.UUID) (*domain.StoredWordEntry, error)
	Upload(ctx context.Context, input wordentry.UploadInput) (*wordentry.UploadResult, error)
}

// WordEntryHandler serves the REST endpoints of one word entry list.
type WordEntryHandler struct {
	svc  wordEntryService
	list domain.EntryList
	log  *slog.Logger
}

// NewWordEntryHandler creates a WordEntryHandler bound to list.
func NewWordEntryHandler(svc wordEntryService, list domain.EntryList, logger *slog.Logger) *WordEntryHandler {
	return &WordEntryHandler{
		svc:  svc,
		list: list,
		log:  logger.With("handler", "word_entries", "list", list.String()),
	}
}

// List handles GET {base}?pos=&q=&limit=&offset=.
func (h *WordEntryHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	input := wordentry.ListInput{}

	if v := strings.TrimSpace(q.Get("pos")); v != "" {
		input.PartOfSpeech = &v
	}
	if v := strings.TrimSpace(q.Get("q")); v != "" {
		input.Search = &v
	}
	var ok bool
	if input.Limit, ok = intParam(w, q.Get("limit"), "limit"); !ok {
		return
	}
	if input.Offset, ok = intParam(w, q.Get("offset"), "offset"); !ok {
		return
	}

	res, err := h.svc.List(r.Context(), h.list, input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusOK, listResponse{
		Items:  toEntryResponses(res.Items),
		Total:  res.Total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, "")
}

// Create handles POST {base} with {"wordEntries": [...]}.
func (h *WordEntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEntriesRequest
	if !decodeBody(w, r, &req) {
		return
	}

	created, err := h.svc.CreateMany(r.Context(), h.list, wordentry.CreateManyInput{Entries: req.WordEntries})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusCreated, toEntryResponses(created),
		strconv.Itoa(len(created))+" word entries created")
}

// Stats handles GET {base}/stats.
func (h *WordEntryHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context(), h.list)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeData(w, http.StatusOK, stats, "")
}

// Get handles GET {base}/{id}.
func (h *WordEntryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	entry, err := h.svc.Get(r.Context(), h.list, id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeData(w, http.StatusOK, toEntryResponse(*entry), "")
}

// Update handles PUT {base}/{id} with a full word entry body.
func (h *WordEntryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req domain.WordEntry
	if !decodeBody(w, r, &req) {
		return
	}

	entry, err := h.svc.Update(r.Context(), h.list, id, req)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeData(w, http.StatusOK, toEntryResponse(*entry), "word entry updated")
}

// Delete handles DELETE {base}/{id}.
func (h *WordEntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), h.list, id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeData(w, http.StatusOK, nil, "word entry deleted")
}

// DeleteAll handles DELETE {base}.
func (h *WordEntryHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.DeleteAll(r.Context(), h.list)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeData(w, http.StatusOK, deleteAllResponse{Deleted: n}, "")
}

// Approve handles POST /api/draft-word-entries/{id}/approve.
func (h *WordEntryHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	entry, err := h.svc.Approve(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeData(w, http.StatusOK, toEntryResponse(*entry), "word entry approved")
}

// MoveToDraft handles POST /api/word-entries/{id}/move-to-draft.
func (h *WordEntryHandler) MoveToDraft(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	entry, err := h.svc.MoveToDraft(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeData(w, http.StatusOK, toEntryResponse(*entry), "word entry moved to drafts")
}

// Upload handles POST /api/draft-word-entries/upload with {"words": [...]}.
func (h *WordEntryHandler) Upload(w http.ResponseWriter, r *http.Request) {
	var req uploadRequest
	if !decodeBody(w, r, &req) {
		return
	}

	res, err := h.svc.Upload(r.Context(), wordentry.UploadInput{Words: req.Words})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeData(w, http.StatusOK, uploadResponse{
		Created: toEntryResponses(res.Created),
		Skipped: res.Skipped,
		Failed:  res.Failed,
	}, strconv.Itoa(len(res.Created))+" drafts created")
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}

func intParam(w http.ResponseWriter, raw, name string) (int, bool) {
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return n, true
}
