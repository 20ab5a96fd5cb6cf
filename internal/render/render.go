// Package render walks the document model and emits styled output. One walk
// algorithm feeds every surface: the plain in-app view, the HTML result page,
// and the exported PDF.
package render

import "github.com/draftforge/draftforge/internal/docmodel"

// Surface receives the ordered walk events for one rendered output. The walk
// never mutates the documents it visits.
type Surface interface {
	Title(text string)
	Heading(text string)
	Bullet(text string)
	Paragraph(text string)
	// Break separates the primary document from the contact section and each
	// appendix. Paged surfaces start a new page; flowing surfaces emit a rule
	// or spacing.
	Break()
	ContactLine(label, value string)
}

// Appendix is a secondary document rendered after the primary one under its
// own title.
type Appendix struct {
	Title    string
	Document docmodel.Document
}

// Input bundles everything one rendering pass consumes.
type Input struct {
	Title      string
	Document   docmodel.Document
	Contact    *docmodel.ContactBlock
	Appendices []Appendix
}

const missingField = "N/A"

// Walk drives a surface through the primary document, the contact section and
// the appendices, in that order. Absent contact fields are emitted with the
// explicit placeholder rather than omitted so exported files always carry all
// three lines.
func Walk(in Input, s Surface) {
	if in.Title != "" {
		s.Title(in.Title)
	}
	walkDocument(in.Document, s)

	if in.Contact != nil {
		s.Break()
		s.Heading("Contact Information")
		s.ContactLine("Email", orMissing(in.Contact.Email))
		s.ContactLine("Phone", orMissing(in.Contact.Phone))
		s.ContactLine("Website", orMissing(in.Contact.Website))
	}

	for _, ap := range in.Appendices {
		s.Break()
		if ap.Title != "" {
			s.Title(ap.Title)
		}
		walkDocument(ap.Document, s)
	}
}

func walkDocument(doc docmodel.Document, s Surface) {
	for _, sec := range doc.Sections {
		if !sec.IsPreamble() {
			s.Heading(sec.Heading)
		}
		for _, b := range sec.Blocks {
			switch b.Kind {
			case docmodel.BulletItem:
				s.Bullet(b.Text)
			default:
				s.Paragraph(b.Text)
			}
		}
	}
}

func orMissing(v string) string {
	if v == "" {
		return missingField
	}
	return v
}
