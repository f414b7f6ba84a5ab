package rest

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/wortschatz-backend/internal/config"
	"github.com/heartmarshall/wortschatz-backend/internal/transport/middleware"
)

type tokenValidator interface {
	ValidateToken(token string) (string, error)
}

// RouterConfig wires cross-cutting concerns into the router.
type RouterConfig struct {
	Logger *slog.Logger
	CORS   config.CORSConfig
	// Tokens validates bearer tokens. When nil, authentication is disabled
	// and every route is public.
	Tokens          tokenValidator
	RateLimiter     *middleware.RateLimiter
	UploadPerMinute int
}

// NewRouter builds the HTTP handler for the health probes and both word
// entry lists.
func NewRouter(cfg RouterConfig, health *HealthHandler, drafts, approved *WordEntryHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	protect := func(h http.HandlerFunc) http.Handler {
		if cfg.Tokens == nil {
			return h
		}
		return middleware.RequireAuth(h)
	}

	const draftBase = "/api/draft-word-entries"
	mux.HandleFunc("GET "+draftBase, drafts.List)
	mux.HandleFunc("GET "+draftBase+"/stats", drafts.Stats)
	mux.HandleFunc("GET "+draftBase+"/{id}", drafts.Get)
	mux.Handle("POST "+draftBase, protect(drafts.Create))
	mux.Handle("DELETE "+draftBase, protect(drafts.DeleteAll))
	mux.Handle("PUT "+draftBase+"/{id}", protect(drafts.Update))
	mux.Handle("DELETE "+draftBase+"/{id}", protect(drafts.Delete))
	mux.Handle("POST "+draftBase+"/{id}/approve", protect(drafts.Approve))

	var upload http.Handler = protect(drafts.Upload)
	if cfg.RateLimiter != nil && cfg.UploadPerMinute > 0 {
		upload = cfg.RateLimiter.Limit(cfg.UploadPerMinute)(upload)
	}
	mux.Handle("POST "+draftBase+"/upload", upload)

	const approvedBase = "/api/word-entries"
	mux.HandleFunc("GET "+approvedBase, approved.List)
	mux.HandleFunc("GET "+approvedBase+"/stats", approved.Stats)
	mux.HandleFunc("GET "+approvedBase+"/{id}", approved.Get)
	mux.Handle("POST "+approvedBase, protect(approved.Create))
	mux.Handle("DELETE "+approvedBase, protect(approved.DeleteAll))
	mux.Handle("PUT "+approvedBase+"/{id}", protect(approved.Update))
	mux.Handle("DELETE "+approvedBase+"/{id}", protect(approved.Delete))
	mux.Handle("POST "+approvedBase+"/{id}/move-to-draft", protect(approved.MoveToDraft))

	chain := []middleware.Middleware{
		middleware.RequestID(),
		middleware.Logger(cfg.Logger),
		middleware.Recovery(cfg.Logger),
		middleware.CORS(cfg.CORS),
	}
	if cfg.Tokens != nil {
		chain = append(chain, middleware.Auth(cfg.Tokens))
	}
	return middleware.Chain(chain...)(mux)
}
