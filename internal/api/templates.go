package api

import (
	"html/template"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/draftforge/draftforge/internal/generate"
	"github.com/draftforge/draftforge/internal/profile"
)

type setupView struct {
	Error   string
	Profile profile.Profile
}

type indexView struct {
	Profiles []profile.Profile
	Selected string
	Errors   []string
	Context  generate.Context
}

type resultView struct {
	Session    string
	Provider   string
	Summary    template.HTML
	ValueProps template.HTML
	Context    []string
	Notice     string
}

func renderTemplate(w http.ResponseWriter, t *template.Template, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.Execute(w, data); err != nil {
		log.Error().Err(err).Str("template", t.Name()).Msg("render template")
	}
}

const pageHead = `<!doctype html>
<html><head><meta charset="utf-8"><title>draftforge</title>
<style>
body { font-family: sans-serif; max-width: 52rem; margin: 2rem auto; padding: 0 1rem; }
label { display: block; margin-top: .6rem; font-weight: 600; }
input, textarea, select { width: 100%; padding: .3rem; }
.error { color: #a00; }
.notice { color: #06c; }
section { border-top: 1px solid #ccc; margin-top: 1.5rem; padding-top: .5rem; }
</style></head><body>`

var setupTemplate = template.Must(template.New("setup").Parse(pageHead + `
<h1>Provider setup</h1>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
<form method="post" action="/setup">
<label>Name</label><input name="name" value="{{.Profile.Name}}">
<label>Industry</label><input name="industry" value="{{.Profile.Industry}}">
<label>Services</label><textarea name="services">{{.Profile.Services}}</textarea>
<label>Differentiators</label><textarea name="differentiators">{{.Profile.Differentiators}}</textarea>
<label>Contact email</label><input name="contact_email" value="{{.Profile.Email}}">
<label>Contact phone</label><input name="contact_phone" value="{{.Profile.Phone}}">
<label>Website</label><input name="website" value="{{.Profile.Website}}">
<label>Notes</label><textarea name="notes">{{.Profile.Notes}}</textarea>
<p><button type="submit">Create profile</button></p>
</form>
</body></html>`))

var indexTemplate = template.Must(template.New("index").Parse(pageHead + `
<h1>Generate executive summary</h1>
{{range .Errors}}<p class="error">{{.}}</p>{{end}}
<form method="post" action="/generate">
<label>Provider</label>
<select name="profile_id">
<option value="">-- select --</option>
{{$sel := .Selected}}
{{range .Profiles}}<option value="{{.ID}}"{{if eq (printf "%d" .ID) $sel}} selected{{end}}>{{.Name}} ({{.Industry}})</option>{{end}}
</select>
<label>Client name</label><input name="client_name" value="{{.Context.ClientName}}">
<label>Client industry</label><input name="client_industry" value="{{.Context.Industry}}">
<label>Goals / challenges</label><textarea name="client_goals">{{.Context.Goals}}</textarea>
<label>Proposed solutions / modules</label><textarea name="proposal_modules">{{.Context.Modules}}</textarea>
<label>Recipient role</label><input name="recipient_role" value="{{.Context.RecipientRole}}">
<label>Execution model</label><input name="execution_model" value="{{.Context.ExecutionModel}}">
<label>Additional notes</label><textarea name="extra_notes">{{.Context.Notes}}</textarea>
<p><button type="submit">Generate</button></p>
</form>
<p><a href="/setup">Add a provider profile</a></p>
</body></html>`))

var resultTemplate = template.Must(template.New("result").Parse(pageHead + `
<h1>Executive Summary by {{.Provider}}</h1>
{{if .Notice}}<p class="notice">{{.Notice}}</p>{{end}}
<div>{{.Summary}}</div>
{{if .ValueProps}}<section><h2>Value Selling Points</h2><div>{{.ValueProps}}</div></section>{{end}}
<section><h2>Client Context</h2>{{range .Context}}<p>{{.}}</p>{{end}}</section>
<section>
<form method="post" action="/refine">
<input type="hidden" name="session" value="{{.Session}}">
<label>Refine instructions</label><textarea name="refine_prompt"></textarea>
<p><button type="submit">Refine</button></p>
</form>
<form method="post" action="/download">
<input type="hidden" name="session" value="{{.Session}}">
<p><button type="submit">Download</button></p>
</form>
<form method="post" action="/finish">
<input type="hidden" name="session" value="{{.Session}}">
<p><button type="submit">Finish</button></p>
</form>
</section>
</body></html>`))
