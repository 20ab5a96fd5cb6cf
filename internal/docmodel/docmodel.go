package docmodel

import "strings"

// BlockKind discriminates the content variants a Section may hold.
type BlockKind int

const (
	// Paragraph is a run of prose rendered as a justified paragraph.
	Paragraph BlockKind = iota
	// BulletItem is a single list item rendered with a bullet marker.
	BulletItem
)

// Block is an atomic unit of content. Order within a section is significant
// and preserved from the source text.
type Block struct {
	Kind BlockKind
	Text string
}

// Para builds a Paragraph block.
func Para(text string) Block { return Block{Kind: Paragraph, Text: text} }

// Bullet builds a BulletItem block.
func Bullet(text string) Block { return Block{Kind: BulletItem, Text: text} }

// Section groups the blocks that follow one recognized heading. The implicit
// preamble (content before the first recognized heading) is a Section whose
// Heading is empty.
type Section struct {
	Heading string
	Blocks  []Block
}

// IsPreamble reports whether the section holds unheaded leading content.
func (s Section) IsPreamble() bool { return strings.TrimSpace(s.Heading) == "" }

// Document is an ordered sequence of sections. It is constructed fresh from
// each generation or refinement pass and never mutated in place: transforms
// return a new Document.
type Document struct {
	Sections []Section
}

// ContactBlock carries provider contact details attached at render time. All
// fields are optional; absent fields render as an explicit placeholder.
type ContactBlock struct {
	Email   string
	Phone   string
	Website string
}

// Find returns the first section whose heading equals label (case-insensitive)
// and whether one was found.
func (d Document) Find(label string) (Section, bool) {
	for _, s := range d.Sections {
		if strings.EqualFold(s.Heading, label) {
			return s, true
		}
	}
	return Section{}, false
}

// Headings lists the section headings in document order, skipping the preamble.
func (d Document) Headings() []string {
	out := make([]string, 0, len(d.Sections))
	for _, s := range d.Sections {
		if s.IsPreamble() {
			continue
		}
		out = append(out, s.Heading)
	}
	return out
}

// IsEmpty reports whether the document holds no headings and no content.
func (d Document) IsEmpty() bool {
	for _, s := range d.Sections {
		if !s.IsPreamble() || len(s.Blocks) > 0 {
			return false
		}
	}
	return true
}

// Clone returns a deep copy so callers can build derived documents without
// sharing backing arrays with the original.
func (d Document) Clone() Document {
	out := Document{Sections: make([]Section, len(d.Sections))}
	for i, s := range d.Sections {
		cp := Section{Heading: s.Heading}
		if len(s.Blocks) > 0 {
			cp.Blocks = append([]Block(nil), s.Blocks...)
		}
		out.Sections[i] = cp
	}
	return out
}

// Equal reports structural equality of two documents: same section order,
// same headings, same block sequence per section.
func Equal(a, b Document) bool {
	if len(a.Sections) != len(b.Sections) {
		return false
	}
	for i := range a.Sections {
		if a.Sections[i].Heading != b.Sections[i].Heading {
			return false
		}
		if len(a.Sections[i].Blocks) != len(b.Sections[i].Blocks) {
			return false
		}
		for j := range a.Sections[i].Blocks {
			if a.Sections[i].Blocks[j] != b.Sections[i].Blocks[j] {
				return false
			}
		}
	}
	return true
}
