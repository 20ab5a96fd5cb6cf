package render

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
)

// markdownSurface builds a Markdown rendition of the walk, which goldmark
// then turns into the HTML shown on the result page.
type markdownSurface struct {
	sb         strings.Builder
	lastBullet bool
}

func (m *markdownSurface) flushList() {
	if m.lastBullet {
		m.sb.WriteString("\n")
		m.lastBullet = false
	}
}

func (m *markdownSurface) Title(text string) {
	m.flushList()
	m.sb.WriteString("# " + text + "\n\n")
}

func (m *markdownSurface) Heading(text string) {
	m.flushList()
	m.sb.WriteString("## " + text + "\n\n")
}

func (m *markdownSurface) Bullet(text string) {
	m.sb.WriteString("- " + text + "\n")
	m.lastBullet = true
}

func (m *markdownSurface) Paragraph(text string) {
	m.flushList()
	m.sb.WriteString(text + "\n\n")
}

func (m *markdownSurface) Break() {
	m.flushList()
	m.sb.WriteString("---\n\n")
}

func (m *markdownSurface) ContactLine(label, value string) {
	m.flushList()
	m.sb.WriteString(label + ": " + value + "\n\n")
}

// Markdown serializes the input as Markdown.
func Markdown(in Input) string {
	m := &markdownSurface{}
	Walk(in, m)
	return m.sb.String()
}

// HTML renders the input to an HTML fragment for the in-app view.
func HTML(in Input) (string, error) {
	var out strings.Builder
	if err := goldmark.Convert([]byte(Markdown(in)), &out); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return out.String(), nil
}
