// Package classify splits normalized narrative text into the ordered section
// sequence of the document model. It is a small state machine with one state
// per open section: a heading match transitions, anything else appends blocks.
package classify

import (
	"strings"

	"github.com/draftforge/draftforge/internal/docmodel"
	"github.com/draftforge/draftforge/internal/vocab"
)

// DuplicatePolicy decides what happens when a heading is seen a second time.
type DuplicatePolicy int

const (
	// LastWins keeps only the blocks of the last occurrence. This is the
	// default: regenerated drafts sometimes restate a section and the fresher
	// content is the one the model intended.
	LastWins DuplicatePolicy = iota
	// Merge appends the blocks of later occurrences to the first section.
	Merge
	// KeepBoth emits every occurrence as a separate section.
	KeepBoth
)

const bulletMarker = "- "

// Classify processes text line by line against the ordered heading specs and
// produces a Document. Section order reproduces the first-seen order of
// headings in the input; the classifier never reorders and never fails.
// Content before the first recognized heading accumulates into an implicit
// preamble section. Blank lines never produce a block.
func Classify(text string, v vocab.Vocabulary, policy DuplicatePolicy) docmodel.Document {
	var sections []docmodel.Section
	// byLabel tracks the live index per heading for the merge/last-wins
	// policies; KeepBoth never consults it.
	byLabel := make(map[string]int, len(v.Specs))
	current := -1

	appendBlock := func(b docmodel.Block) {
		if current == -1 {
			sections = append(sections, docmodel.Section{})
			current = 0
		}
		sections[current].Blocks = append(sections[current].Blocks, b)
	}

	// Plain split rather than a scanner: there is no line length a draft may
	// not exceed, and classification must consume every byte of its input.
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if label, ok := matchHeading(line, v); ok {
			if idx, seen := byLabel[label]; seen && policy != KeepBoth {
				switch policy {
				case LastWins:
					sections[idx].Blocks = nil
				}
				current = idx
				continue
			}
			sections = append(sections, docmodel.Section{Heading: label})
			current = len(sections) - 1
			byLabel[label] = current
			continue
		}

		if rest, ok := strings.CutPrefix(line, bulletMarker); ok {
			appendBlock(docmodel.Bullet(strings.TrimSpace(rest)))
			continue
		}
		appendBlock(docmodel.Para(line))
	}

	return docmodel.Document{Sections: sections}
}

// matchHeading tests a line against the specs in order; the first listed spec
// wins ties.
func matchHeading(line string, v vocab.Vocabulary) (string, bool) {
	for _, sp := range v.Specs {
		if sp.Matches(line) {
			return sp.Label, true
		}
	}
	return "", false
}
