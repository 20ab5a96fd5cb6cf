package api

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/draftforge/draftforge/internal/app"
	"github.com/draftforge/draftforge/internal/generate"
	"github.com/draftforge/draftforge/internal/profile"
	"github.com/draftforge/draftforge/internal/render"
)

func (s *Server) handleSetupForm(w http.ResponseWriter, _ *http.Request) {
	renderTemplate(w, setupTemplate, setupView{})
}

func (s *Server) handleSetupSubmit(w http.ResponseWriter, r *http.Request) {
	p := profile.Profile{
		Name:            strings.TrimSpace(r.FormValue("name")),
		Industry:        strings.TrimSpace(r.FormValue("industry")),
		Services:        strings.TrimSpace(r.FormValue("services")),
		Differentiators: strings.TrimSpace(r.FormValue("differentiators")),
		Email:           strings.TrimSpace(r.FormValue("contact_email")),
		Phone:           strings.TrimSpace(r.FormValue("contact_phone")),
		Website:         strings.TrimSpace(r.FormValue("website")),
		Notes:           strings.TrimSpace(r.FormValue("notes")),
	}
	if p.Name == "" {
		renderTemplate(w, setupTemplate, setupView{Error: "Provider name is required.", Profile: p})
		return
	}
	id, err := s.app.Profiles.Create(r.Context(), p)
	if err != nil {
		log.Error().Err(err).Msg("create profile")
		http.Error(w, "could not save profile", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/?profile_id="+strconv.FormatInt(id, 10), http.StatusSeeOther)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderIndex(w, r, nil, generate.Context{})
}

func (s *Server) renderIndex(w http.ResponseWriter, r *http.Request, errs []string, cc generate.Context) {
	profiles, err := s.app.Profiles.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("list profiles")
		http.Error(w, "could not load profiles", http.StatusInternalServerError)
		return
	}
	renderTemplate(w, indexTemplate, indexView{
		Profiles: profiles,
		Selected: r.URL.Query().Get("profile_id"),
		Errors:   errs,
		Context:  cc,
	})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var errs []string
	profileID, err := strconv.ParseInt(r.FormValue("profile_id"), 10, 64)
	if err != nil || profileID <= 0 {
		errs = append(errs, "Please select a provider.")
	}
	cc := generate.Context{
		ClientName:     strings.TrimSpace(r.FormValue("client_name")),
		Industry:       strings.TrimSpace(r.FormValue("client_industry")),
		Goals:          strings.TrimSpace(r.FormValue("client_goals")),
		Modules:        strings.TrimSpace(r.FormValue("proposal_modules")),
		RecipientRole:  strings.TrimSpace(r.FormValue("recipient_role")),
		ExecutionModel: strings.TrimSpace(r.FormValue("execution_model")),
		Notes:          strings.TrimSpace(r.FormValue("extra_notes")),
	}
	for _, f := range []struct{ v, msg string }{
		{cc.ClientName, "Client Name is required."},
		{cc.Industry, "Client Industry is required."},
		{cc.Goals, "Client Goals / Challenges are required."},
		{cc.Modules, "Proposed Solutions / Modules are required."},
		{cc.RecipientRole, "Recipient Role is required."},
	} {
		if f.v == "" {
			errs = append(errs, f.msg)
		}
	}
	if len(errs) > 0 {
		s.renderIndex(w, r, errs, cc)
		return
	}

	sessionID, err := s.app.Generate(r.Context(), profileID, cc)
	if errors.Is(err, profile.ErrNotFound) {
		s.renderIndex(w, r, []string{"Selected provider not found."}, cc)
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("generate")
		http.Error(w, "generation failed", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/result?session="+url.QueryEscape(sessionID), http.StatusSeeOther)
}

func (s *Server) handleResult(w http.ResponseWriter, r *http.Request) {
	s.renderResult(w, r, r.URL.Query().Get("session"), "")
}

func (s *Server) renderResult(w http.ResponseWriter, r *http.Request, sessionID, notice string) {
	d, ok := s.app.Sessions.Get(sessionID)
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	p, err := s.app.Profiles.Get(r.Context(), d.ProfileID)
	if err != nil {
		log.Error().Err(err).Msg("load profile for result")
		http.Error(w, "could not load provider", http.StatusInternalServerError)
		return
	}

	summaryHTML, err := render.HTML(render.Input{Document: d.Summary})
	if err != nil {
		log.Error().Err(err).Msg("render summary")
		http.Error(w, "could not render draft", http.StatusInternalServerError)
		return
	}
	view := resultView{
		Session:  sessionID,
		Provider: p.Name,
		Summary:  template.HTML(summaryHTML),
		Context:  d.Context.Lines(),
		Notice:   notice,
	}
	if s.app.ShowValueProps() && !d.ValueProps.IsEmpty() {
		vpHTML, err := render.HTML(render.Input{Document: d.ValueProps})
		if err != nil {
			log.Error().Err(err).Msg("render value props")
			http.Error(w, "could not render draft", http.StatusInternalServerError)
			return
		}
		view.ValueProps = template.HTML(vpHTML)
	}
	renderTemplate(w, resultTemplate, view)
}

func (s *Server) handleRefine(w http.ResponseWriter, r *http.Request) {
	sessionID := r.FormValue("session")
	if !s.busy.acquire(sessionID) {
		s.renderResult(w, r, sessionID, "A refinement is already running for this draft.")
		return
	}
	defer s.busy.release(sessionID)

	err := s.app.Refine(r.Context(), sessionID, r.FormValue("refine_prompt"))
	switch {
	case errors.Is(err, app.ErrEmptyInstructions):
		s.renderResult(w, r, sessionID, "Refine instructions cannot be empty.")
		return
	case errors.Is(err, app.ErrNoDraft):
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	case err != nil:
		log.Error().Err(err).Msg("refine")
		s.renderResult(w, r, sessionID, fmt.Sprintf("Refine failed: %v", err))
		return
	}
	http.Redirect(w, r, "/result?session="+url.QueryEscape(sessionID), http.StatusSeeOther)
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	sessionID := r.FormValue("session")
	if !s.busy.acquire(sessionID) {
		s.renderResult(w, r, sessionID, "A refinement is already running for this draft.")
		return
	}
	defer s.busy.release(sessionID)

	var buf bytes.Buffer
	err := s.app.Export(r.Context(), sessionID, &buf)
	switch {
	case errors.Is(err, app.ErrNoDraft):
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	case err != nil:
		log.Error().Err(err).Msg("export")
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+render.ExportFileName+`"`)
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleFinish(w http.ResponseWriter, r *http.Request) {
	s.app.Finish(r.FormValue("session"))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
