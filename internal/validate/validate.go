// Package validate checks a classified document against its heading
// vocabulary. Findings are diagnostics for logging: malformed generated text
// degrades into fewer or extra sections, it never fails the pipeline.
package validate

import (
	"fmt"
	"strings"

	"github.com/draftforge/draftforge/internal/docmodel"
	"github.com/draftforge/draftforge/internal/vocab"
)

// Structure compares the document's headings with the vocabulary's canonical
// order. It reports missing, duplicated and out-of-order headings in one
// error; a nil return means the document carries every expected section
// exactly once, in order.
func Structure(doc docmodel.Document, v vocab.Vocabulary) error {
	got := doc.Headings()
	pos := make(map[string]int, len(got))
	count := make(map[string]int, len(got))
	for i, h := range got {
		k := strings.ToLower(h)
		if _, seen := pos[k]; !seen {
			pos[k] = i
		}
		count[k]++
	}

	var missing, dup []string
	prev := -1
	ordered := true
	for _, sp := range v.Specs {
		k := strings.ToLower(sp.Label)
		i, ok := pos[k]
		if !ok {
			missing = append(missing, sp.Label)
			continue
		}
		if count[k] > 1 {
			dup = append(dup, sp.Label)
		}
		if i < prev {
			ordered = false
		}
		prev = i
	}

	var probs []string
	if len(missing) > 0 {
		probs = append(probs, "missing sections: "+strings.Join(missing, ", "))
	}
	if len(dup) > 0 {
		probs = append(probs, "duplicate sections: "+strings.Join(dup, ", "))
	}
	if !ordered {
		probs = append(probs, "sections out of canonical order")
	}
	if len(probs) == 0 {
		return nil
	}
	return fmt.Errorf("structure: %s", strings.Join(probs, "; "))
}

// Degenerate reports whether classification recognized no heading at all and
// the document is a bare preamble. Such a document still renders; callers log
// it so operators can see the model ignored the heading contract.
func Degenerate(doc docmodel.Document) bool {
	return len(doc.Headings()) == 0
}
