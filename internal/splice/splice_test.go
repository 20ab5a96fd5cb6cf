package splice

import (
	"testing"

	"github.com/draftforge/draftforge/internal/classify"
	"github.com/draftforge/draftforge/internal/docmodel"
	"github.com/draftforge/draftforge/internal/vocab"
)

var cta = docmodel.Para("We welcome the opportunity to discuss this proposal with you.")

func TestClosing_ReplacesModelClosing(t *testing.T) {
	v := vocab.Summary("Acme")
	doc := docmodel.Document{Sections: []docmodel.Section{
		{Heading: "Introduction", Blocks: []docmodel.Block{docmodel.Para("hello")}},
		{Heading: "Closing Call-to-Action", Blocks: []docmodel.Block{docmodel.Para("model-written sign-off")}},
	}}

	got := Closing(doc, v, cta)
	headings := got.Headings()
	if len(headings) != 2 || headings[1] != "Closing Call-to-Action" {
		t.Fatalf("headings %v", headings)
	}
	sec, _ := got.Find("Closing Call-to-Action")
	if len(sec.Blocks) != 1 || sec.Blocks[0] != cta {
		t.Fatalf("closing blocks %+v", sec.Blocks)
	}
	// Input untouched.
	if doc.Sections[1].Blocks[0].Text != "model-written sign-off" {
		t.Fatalf("input document was mutated")
	}
}

func TestClosing_AppendsWhenAbsent(t *testing.T) {
	v := vocab.Summary("Acme")
	doc := docmodel.Document{Sections: []docmodel.Section{
		{Heading: "Introduction", Blocks: []docmodel.Block{docmodel.Para("hello")}},
	}}
	got := Closing(doc, v, cta)
	sec, ok := got.Find("Closing Call-to-Action")
	if !ok || len(sec.Blocks) != 1 {
		t.Fatalf("closing not appended: %+v", got.Sections)
	}
	if got.Headings()[len(got.Headings())-1] != "Closing Call-to-Action" {
		t.Fatalf("closing must be the final section: %v", got.Headings())
	}
}

func TestClosing_Idempotent(t *testing.T) {
	v := vocab.Summary("Acme")
	doc := docmodel.Document{Sections: []docmodel.Section{
		{Blocks: []docmodel.Block{docmodel.Para("preamble line")}},
		{Heading: "Introduction", Blocks: []docmodel.Block{docmodel.Para("hello")}},
		{Heading: "Closing Call-to-Action", Blocks: []docmodel.Block{docmodel.Para("stale")}},
	}}
	once := Closing(doc, v, cta)
	twice := Closing(once, v, cta)
	if !docmodel.Equal(once, twice) {
		t.Fatalf("second application changed the document:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestClosing_DropsTrailingFragment(t *testing.T) {
	// The classifier missed a closing heading glued into the last section; the
	// splice truncates from that block onward.
	v := vocab.Summary("Acme")
	doc := docmodel.Document{Sections: []docmodel.Section{
		{Heading: "How We Will Deliver", Blocks: []docmodel.Block{
			docmodel.Para("delivery detail"),
			docmodel.Para("Closing remarks follow below"),
			docmodel.Para("stale call to action prose"),
		}},
	}}
	got := Closing(doc, v, cta)
	sec, _ := got.Find("How We Will Deliver")
	if len(sec.Blocks) != 1 || sec.Blocks[0].Text != "delivery detail" {
		t.Fatalf("trailing fragment not truncated: %+v", sec.Blocks)
	}
}

func TestClosing_TwoMalformedFragments(t *testing.T) {
	// End-to-end: classify raw text carrying two closing restatements, then
	// splice. Exactly one canonical closing must remain.
	v := vocab.Summary("Acme")
	text := "Introduction\n" +
		"hello there\n" +
		"Closing Call-to-Action\n" +
		"first stale closing\n" +
		"Closing Call-to-Action:\n" +
		"second stale closing\n"
	doc := classify.Classify(text, v, classify.KeepBoth)

	got := Closing(doc, v, cta)
	var closings int
	for _, s := range got.Sections {
		if s.Heading == "Closing Call-to-Action" {
			closings++
			if len(s.Blocks) != 1 || s.Blocks[0] != cta {
				t.Fatalf("closing blocks %+v", s.Blocks)
			}
		}
	}
	if closings != 1 {
		t.Fatalf("want exactly one closing section, got %d", closings)
	}
}

func TestClosing_NoClosingSpec(t *testing.T) {
	v := vocab.ValueProps("Acme")
	doc := docmodel.Document{Sections: []docmodel.Section{
		{Heading: "Case for Change", Blocks: []docmodel.Block{docmodel.Para("x")}},
	}}
	got := Closing(doc, v, cta)
	if !docmodel.Equal(doc, got) {
		t.Fatalf("vocabulary without a closing must pass the document through")
	}
}
