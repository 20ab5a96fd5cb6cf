// Package vocab enumerates the heading vocabularies used to classify and
// render generated narrative documents. Each document type carries an ordered
// list of heading specs; match order is the tie-break when more than one spec
// could claim a line.
package vocab

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Spec pairs a line matcher with the canonical heading label it produces.
// Matching is anchored to the start of the line, case-insensitive, and
// tolerant of a trailing colon or punctuation.
type Spec struct {
	// Prefixes are the lowercase line prefixes that select this heading.
	Prefixes []string
	// Label is the canonical heading text emitted into the document model.
	Label string
}

// Matches reports whether a trimmed content line is this heading. A prefix
// only matches at a word boundary so ordinary prose sharing the first word of
// a heading is not misclassified.
func (sp Spec) Matches(line string) bool {
	l := strings.ToLower(strings.TrimSpace(line))
	l = strings.TrimRight(l, ":.!- ")
	for _, p := range sp.Prefixes {
		if l == p {
			return true
		}
		if strings.HasPrefix(l, p) {
			rest := l[len(p):]
			// Tolerate numbering/punctuation after the heading words, but not
			// a letter continuing the last word.
			if rest[0] == ' ' || rest[0] == ':' || rest[0] == ',' {
				return true
			}
		}
	}
	return false
}

// Vocabulary is an ordered heading spec list plus the label of the section
// the splicer regenerates, when the document type has one.
type Vocabulary struct {
	Specs        []Spec
	ClosingLabel string
}

// Closing returns the spec for the closing section, if the vocabulary has one.
func (v Vocabulary) Closing() (Spec, bool) {
	for _, sp := range v.Specs {
		if sp.Label == v.ClosingLabel && v.ClosingLabel != "" {
			return sp, true
		}
	}
	return Spec{}, false
}

var titleCaser = cases.Title(language.English)

// displayName canonicalizes a provider name for use inside heading labels.
// Names typed in a single case are title-cased; mixed-case names are kept as
// the profile spells them.
func displayName(provider string) string {
	name := strings.TrimSpace(provider)
	if name == "" {
		return "Provider"
	}
	if name == strings.ToLower(name) || name == strings.ToUpper(name) {
		return titleCaser.String(strings.ToLower(name))
	}
	return name
}

// Summary returns the executive summary vocabulary. Provider-name-bearing
// headings substitute the supplied name; an empty name falls back to
// "Provider".
func Summary(provider string) Vocabulary {
	name := displayName(provider)
	return Vocabulary{
		Specs: []Spec{
			{Prefixes: []string{"introduction"}, Label: "Introduction"},
			{Prefixes: []string{"our understanding"}, Label: "Our Understanding of Your Goals"},
			{Prefixes: []string{"our approach"}, Label: "Our Approach to Meeting Your Goals"},
			{Prefixes: []string{"solution overview"}, Label: "Solution Overview"},
			{Prefixes: []string{"how we will deliver"}, Label: "How We Will Deliver"},
			{Prefixes: []string{"why"}, Label: "Why " + name},
			{Prefixes: []string{"closing"}, Label: "Closing Call-to-Action"},
		},
		ClosingLabel: "Closing Call-to-Action",
	}
}

// ValueProps returns the value-proposition appendix vocabulary.
func ValueProps(provider string) Vocabulary {
	name := displayName(provider)
	solution := name + " Proposed Solution"
	return Vocabulary{
		Specs: []Spec{
			{Prefixes: []string{"case for change"}, Label: "Case for Change"},
			{Prefixes: []string{"business value"}, Label: "Business Value for the Client"},
			{Prefixes: []string{strings.ToLower(name), "proposed solution"}, Label: solution},
		},
	}
}
