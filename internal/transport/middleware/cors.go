package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/wortschatz-backend/internal/config"
)

// CORS answers preflight requests itself and decorates responses to allowed
// origins. A preflight from an unknown origin gets 403.
func CORS(cfg config.CORSConfig) Middleware {
	allowed := originSet(cfg.AllowedOrigins)
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Add("Vary", "Origin")

			origin := r.Header.Get("Origin")
			ok := origin != "" && allowed.match(origin)
			if ok {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Expose-Headers", "X-Request-Id, Retry-After")
				if cfg.AllowCredentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
			}

			if r.Method != http.MethodOptions || r.Header.Get("Access-Control-Request-Method") == "" {
				next.ServeHTTP(w, r)
				return
			}

			if !ok {
				writeError(w, http.StatusForbidden, "origin not allowed")
				return
			}
			h.Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
			h.Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
			h.Set("Access-Control-Max-Age", maxAge)
			w.WriteHeader(http.StatusNoContent)
		})
	}
}

type origins struct {
	any   bool
	exact map[string]struct{}
}

func originSet(csv string) origins {
	o := origins{exact: make(map[string]struct{})}
	for _, s := range strings.Split(csv, ",") {
		s = strings.TrimSpace(s)
		switch s {
		case "":
		case "*":
			o.any = true
		default:
			o.exact[strings.TrimRight(s, "/")] = struct{}{}
		}
	}
	return o
}

func (o origins) match(origin string) bool {
	if o.any {
		return true
	}
	_, ok := o.exact[origin]
	return ok
}
