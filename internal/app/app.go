package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/draftforge/draftforge/internal/cache"
	"github.com/draftforge/draftforge/internal/classify"
	"github.com/draftforge/draftforge/internal/docmodel"
	"github.com/draftforge/draftforge/internal/generate"
	"github.com/draftforge/draftforge/internal/llm"
	"github.com/draftforge/draftforge/internal/normalize"
	"github.com/draftforge/draftforge/internal/profile"
	"github.com/draftforge/draftforge/internal/render"
	"github.com/draftforge/draftforge/internal/session"
	"github.com/draftforge/draftforge/internal/splice"
	"github.com/draftforge/draftforge/internal/validate"
	"github.com/draftforge/draftforge/internal/vocab"
)

// App wires the profile store, the session store and the drafting pipeline
// behind the operations the HTTP layer calls.
type App struct {
	cfg      Config
	ai       *openai.Client
	gen      *generate.Generator
	Profiles *profile.Store
	Sessions session.Store
}

var (
	// ErrNoDraft is returned when a session id has no draft slot.
	ErrNoDraft = errors.New("no active draft")
	// ErrEmptyInstructions is returned when a refinement arrives without
	// instructions; the draft is left unchanged.
	ErrEmptyInstructions = errors.New("refine instructions cannot be empty")
)

// New builds the application. The LLM preflight is best-effort: an
// unreachable backend logs a warning and generation surfaces errors later.
func New(ctx context.Context, cfg Config) (*App, error) {
	transportCfg := openai.DefaultConfig(cfg.LLMAPIKey)
	if cfg.LLMBaseURL != "" {
		transportCfg.BaseURL = cfg.LLMBaseURL
	}
	client := openai.NewClientWithConfig(transportCfg)

	profiles, err := profile.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open profiles: %w", err)
	}

	a := &App{
		cfg:      cfg,
		ai:       client,
		Profiles: profiles,
		Sessions: session.NewMemory(),
	}
	a.gen = &generate.Generator{
		Client:      &llm.OpenAIProvider{Inner: client},
		Model:       cfg.LLMModel,
		Temperature: float32(cfg.Temperature),
		MaxTokens:   cfg.MaxTokens,
	}
	if cfg.CacheDir != "" {
		a.gen.Cache = &cache.Cache{Dir: cfg.CacheDir}
	}

	pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if models, err := a.ai.ListModels(pctx); err != nil {
		log.Warn().Err(err).Msg("LLM model list failed; continuing")
	} else if len(models.Models) == 0 {
		log.Warn().Msg("LLM returned zero models")
	} else {
		log.Info().Int("count", len(models.Models)).Msg("LLM models available")
	}

	return a, nil
}

// Close releases held resources.
func (a *App) Close() {
	if a.Profiles != nil {
		_ = a.Profiles.Close()
	}
}

// Generate runs both drafting passes for a fresh engagement and stores the
// result under a new session id. A failed model call degrades into a
// placeholder document instead of aborting.
func (a *App) Generate(ctx context.Context, profileID int64, cc generate.Context) (string, error) {
	p, err := a.Profiles.Get(ctx, profileID)
	if err != nil {
		return "", err
	}

	vpText, err := a.gen.ValueProps(ctx, p, cc)
	if err != nil {
		log.Warn().Err(err).Msg("value proposition generation failed")
		vpText = fmt.Sprintf("Value proposition generation failed: %v", err)
	}
	sumText, err := a.gen.Summary(ctx, p, cc, vpText)
	if err != nil {
		log.Warn().Err(err).Msg("executive summary generation failed")
		sumText = fmt.Sprintf("Executive summary generation failed: %v", err)
	}

	d := assembleDraft(p, cc, sumText, vpText)
	id := uuid.NewString()
	a.Sessions.Put(id, d)
	log.Info().Str("session", id).Int64("profile", profileID).Msg("draft generated")
	return id, nil
}

// Refine rewrites the stored summary according to the instructions and
// re-runs classification and the closing splice. On any failure the stored
// draft is left untouched.
func (a *App) Refine(ctx context.Context, sessionID, instructions string) error {
	if strings.TrimSpace(instructions) == "" {
		return ErrEmptyInstructions
	}
	d, ok := a.Sessions.Get(sessionID)
	if !ok {
		return ErrNoDraft
	}
	p, err := a.Profiles.Get(ctx, d.ProfileID)
	if err != nil {
		return err
	}

	current := render.PlainText(d.Summary)
	text, err := a.gen.Refine(ctx, p, current, instructions)
	if err != nil {
		return fmt.Errorf("refine: %w", err)
	}

	// The value-proposition pass is not re-run; the refined summary replaces
	// only the summary document.
	refreshed := assembleDraft(p, d.Context, text, "")
	refreshed.ValueProps = d.ValueProps
	a.Sessions.Put(sessionID, refreshed)
	log.Info().Str("session", sessionID).Msg("draft refined")
	return nil
}

// assembleDraft turns raw pass output into the canonical session draft:
// normalize, classify against the vocabularies, splice the canonical closing.
// The splice runs on every pass, not only the first.
func assembleDraft(p profile.Profile, cc generate.Context, summaryText, vpText string) session.Draft {
	sumVocab := vocab.Summary(p.Name)

	doc := classify.Classify(normalize.Normalize(summaryText), sumVocab, classify.LastWins)
	if validate.Degenerate(doc) {
		log.Warn().Msg("no headings recognized; draft degrades to preamble only")
	} else if err := validate.Structure(doc, sumVocab); err != nil {
		log.Warn().Err(err).Msg("draft structure issues")
	}
	cta := generate.ClosingCTA(p.Name, cc.ClientName)
	doc = splice.Closing(doc, sumVocab, docmodel.Para(cta))

	vpDoc := classify.Classify(normalize.Normalize(vpText), vocab.ValueProps(p.Name), classify.LastWins)

	return session.Draft{
		ProfileID:  p.ID,
		Context:    cc,
		Summary:    doc,
		ValueProps: vpDoc,
	}
}

// View assembles the rendering input for one session: the summary, the
// provider contact block, and the configured appendices.
func (a *App) View(ctx context.Context, sessionID string) (render.Input, profile.Profile, error) {
	d, ok := a.Sessions.Get(sessionID)
	if !ok {
		return render.Input{}, profile.Profile{}, ErrNoDraft
	}
	p, err := a.Profiles.Get(ctx, d.ProfileID)
	if err != nil {
		return render.Input{}, profile.Profile{}, err
	}

	in := render.Input{
		Title:    "Executive Summary by " + p.Name,
		Document: d.Summary,
		Contact: &docmodel.ContactBlock{
			Email:   p.Email,
			Phone:   p.Phone,
			Website: p.Website,
		},
	}
	if a.cfg.ExportValueProps && !d.ValueProps.IsEmpty() {
		in.Appendices = append(in.Appendices, render.Appendix{
			Title:    "Value Selling Points by " + p.Name,
			Document: d.ValueProps,
		})
	}
	if a.cfg.ExportContext {
		in.Appendices = append(in.Appendices, render.Appendix{
			Title:    "Client Context",
			Document: contextDocument(d.Context),
		})
	}
	return in, p, nil
}

// Export renders the session's document to the PDF artifact.
func (a *App) Export(ctx context.Context, sessionID string, w io.Writer) error {
	in, _, err := a.View(ctx, sessionID)
	if err != nil {
		return err
	}
	if err := render.PDF(in, w); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	log.Info().Str("session", sessionID).Str("file", render.ExportFileName).Msg("exported draft")
	return nil
}

// ShowValueProps reports whether the result page displays the
// value-proposition draft alongside the summary.
func (a *App) ShowValueProps() bool { return a.cfg.ShowValueProps }

// Finish clears the session's draft slot.
func (a *App) Finish(sessionID string) {
	a.Sessions.Clear(sessionID)
	log.Info().Str("session", sessionID).Msg("session cleared")
}

// contextDocument renders the raw client context as a heading-free appendix
// document, one paragraph per labeled line.
func contextDocument(cc generate.Context) docmodel.Document {
	sec := docmodel.Section{}
	for _, line := range cc.Lines() {
		sec.Blocks = append(sec.Blocks, docmodel.Para(line))
	}
	return docmodel.Document{Sections: []docmodel.Section{sec}}
}
