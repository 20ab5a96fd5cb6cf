package normalize

import (
	"regexp"
	"strings"
)

// The model is told to emit plain text, but drafts routinely arrive with
// Markdown emphasis, heading markers and unicode bullet glyphs anyway. The
// normalizer flattens those artifacts into the canonical plain-text shape the
// classifier expects: `- ` bullets, bare heading lines, \n endings.
var (
	boldRe    = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicRe  = regexp.MustCompile(`\*(.*?)\*`)
	headingRe = regexp.MustCompile(`(?m)^#+\s*`)
	bulletRe  = regexp.MustCompile(`(?m)^(\s*)[•▪‣◦*]\s*`)
	blanksRe  = regexp.MustCompile(`\n{3,}`)
)

// Normalize strips markup artifacts from raw generated text and collapses
// whitespace. It is pure and idempotent: normalizing already-normalized text
// returns it unchanged, and empty input yields an empty string.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}
	s := strings.ReplaceAll(raw, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = boldRe.ReplaceAllString(s, "$1")
	s = italicRe.ReplaceAllString(s, "$1")
	s = headingRe.ReplaceAllString(s, "")
	s = bulletRe.ReplaceAllString(s, "${1}- ")
	s = blanksRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
