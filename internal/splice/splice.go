// Package splice rewrites the closing section of a classified document.
// Free-form model output never controls the call-to-action text: after every
// classification pass the caller-supplied canonical blocks replace whatever
// closing material the model produced.
package splice

import (
	"github.com/draftforge/draftforge/internal/docmodel"
	"github.com/draftforge/draftforge/internal/vocab"
)

// Closing removes every section labeled as the vocabulary's closing section,
// drops malformed closing fragments trailing inside the last remaining
// section, then appends exactly one closing section holding cta. The result
// is a new document; the input is not mutated. Applying Closing to its own
// output yields an equal document.
func Closing(doc docmodel.Document, v vocab.Vocabulary, cta ...docmodel.Block) docmodel.Document {
	spec, ok := v.Closing()
	if !ok {
		return doc.Clone()
	}

	out := docmodel.Document{Sections: make([]docmodel.Section, 0, len(doc.Sections)+1)}
	for _, s := range doc.Sections {
		if s.Heading == spec.Label {
			continue
		}
		out.Sections = append(out.Sections, docmodel.Section{
			Heading: s.Heading,
			Blocks:  append([]docmodel.Block(nil), s.Blocks...),
		})
	}

	// A closing heading the classifier missed (for example glued onto a
	// paragraph of the final section) leaves stale call-to-action prose at the
	// tail. Truncate the last section from the first block that reads like the
	// closing heading.
	if n := len(out.Sections); n > 0 {
		last := &out.Sections[n-1]
		for i, b := range last.Blocks {
			if b.Kind == docmodel.Paragraph && spec.Matches(b.Text) {
				last.Blocks = last.Blocks[:i]
				break
			}
		}
	}

	out.Sections = append(out.Sections, docmodel.Section{
		Heading: spec.Label,
		Blocks:  append([]docmodel.Block(nil), cta...),
	})
	return out
}
