// Package api is the web surface of draftforge: the provider setup form, the
// generation form, the result page with its refine loop, and the export
// download. Everything here is glue around the drafting pipeline.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/draftforge/draftforge/internal/app"
)

// Server routes HTTP requests to the application operations.
type Server struct {
	router chi.Router
	app    *app.App
	// busy serializes refinements and exports per session key; the pipeline
	// itself has no internal synchronization.
	busy *keyedBusy
}

// NewServer creates and configures the HTTP server.
func NewServer(a *app.App) *Server {
	s := &Server{app: a, busy: newKeyedBusy()}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(requestLogger())

	r.Get("/health", s.handleHealth)

	r.Get("/setup", s.handleSetupForm)
	r.Post("/setup", s.handleSetupSubmit)

	r.Get("/", s.handleIndex)
	r.Post("/generate", s.handleGenerate)

	r.Get("/result", s.handleResult)
	r.Post("/refine", s.handleRefine)
	r.Post("/download", s.handleDownload)
	r.Post("/finish", s.handleFinish)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
