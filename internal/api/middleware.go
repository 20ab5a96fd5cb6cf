package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

// requestLogger logs one line per request with status and duration.
func requestLogger() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.Debug().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("elapsed", time.Since(start)).
				Str("reqID", middleware.GetReqID(r.Context())).
				Msg("request")
		})
	}
}

// keyedBusy marks session keys with an in-flight pipeline pass. The draft
// slot tolerates no concurrent writers, so a second submission for the same
// session is turned away instead of queued.
type keyedBusy struct {
	mu   sync.Mutex
	keys map[string]struct{}
}

func newKeyedBusy() *keyedBusy {
	return &keyedBusy{keys: make(map[string]struct{})}
}

// acquire reports whether the key was free and is now held.
func (b *keyedBusy) acquire(key string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, held := b.keys[key]; held {
		return false
	}
	b.keys[key] = struct{}{}
	return true
}

func (b *keyedBusy) release(key string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.keys, key)
}
