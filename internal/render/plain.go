package render

import (
	"strings"

	"github.com/draftforge/draftforge/internal/docmodel"
)

// plainSurface accumulates the canonical plain-text serialization: heading on
// its own line, `- ` bullets, bare paragraph lines, one blank line between
// sections. Classifying this output reproduces an equivalent document.
type plainSurface struct {
	sb      strings.Builder
	started bool
}

func (p *plainSurface) sep() {
	if p.started {
		p.sb.WriteString("\n")
	}
	p.started = true
}

func (p *plainSurface) Title(text string) {
	p.sep()
	p.sb.WriteString(text + "\n")
}

func (p *plainSurface) Heading(text string) {
	p.sep()
	p.sb.WriteString(text + "\n")
}

func (p *plainSurface) Bullet(text string)    { p.sb.WriteString("- " + text + "\n") }
func (p *plainSurface) Paragraph(text string) { p.sb.WriteString(text + "\n") }

func (p *plainSurface) Break() {
	p.sb.WriteString("\n---\n")
}

func (p *plainSurface) ContactLine(label, value string) {
	p.sb.WriteString(label + ": " + value + "\n")
}

// PlainText serializes a single document without title, contact or
// appendices. The output round-trips through the classifier.
func PlainText(doc docmodel.Document) string {
	p := &plainSurface{}
	walkDocument(doc, p)
	return strings.TrimRight(p.sb.String(), "\n")
}

// Plain renders a full input (title, contact, appendices) as plain text for
// the in-app view.
func Plain(in Input) string {
	p := &plainSurface{}
	Walk(in, p)
	return strings.TrimRight(p.sb.String(), "\n")
}
