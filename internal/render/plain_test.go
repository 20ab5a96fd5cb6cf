package render

import (
	"strings"
	"testing"

	"github.com/draftforge/draftforge/internal/classify"
	"github.com/draftforge/draftforge/internal/docmodel"
	"github.com/draftforge/draftforge/internal/vocab"
)

func sampleDoc() docmodel.Document {
	return docmodel.Document{Sections: []docmodel.Section{
		{Heading: "Introduction", Blocks: []docmodel.Block{
			docmodel.Para("A short greeting."),
		}},
		{Heading: "Solution Overview", Blocks: []docmodel.Block{
			docmodel.Bullet("Increase margin by 10%"),
			docmodel.Bullet("Reduce churn"),
			docmodel.Para("Further detail."),
		}},
	}}
}

func TestPlainText_RoundTrip(t *testing.T) {
	v := vocab.Vocabulary{Specs: []vocab.Spec{
		{Prefixes: []string{"introduction"}, Label: "Introduction"},
		{Prefixes: []string{"solution overview"}, Label: "Solution Overview"},
	}}
	doc := sampleDoc()
	text := PlainText(doc)
	back := classify.Classify(text, v, classify.LastWins)
	if !docmodel.Equal(doc, back) {
		t.Fatalf("round trip diverged:\ntext:\n%s\nback: %+v", text, back)
	}
}

func TestPlainText_Layout(t *testing.T) {
	got := PlainText(sampleDoc())
	want := strings.Join([]string{
		"Introduction",
		"A short greeting.",
		"",
		"Solution Overview",
		"- Increase margin by 10%",
		"- Reduce churn",
		"Further detail.",
	}, "\n")
	if got != want {
		t.Fatalf("plain text:\n%s\nwant:\n%s", got, want)
	}
}

func TestPlain_ContactPlaceholders(t *testing.T) {
	out := Plain(Input{
		Title:    "Executive Summary by Acme",
		Document: sampleDoc(),
		Contact:  &docmodel.ContactBlock{Phone: "555-0100"},
	})
	for _, want := range []string{
		"Contact Information",
		"Email: N/A",
		"Phone: 555-0100",
		"Website: N/A",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPlain_AppendicesAfterBody(t *testing.T) {
	out := Plain(Input{
		Title:    "Executive Summary by Acme",
		Document: sampleDoc(),
		Appendices: []Appendix{{
			Title: "Client Context",
			Document: docmodel.Document{Sections: []docmodel.Section{
				{Blocks: []docmodel.Block{docmodel.Para("Client Name: Globex")}},
			}},
		}},
	})
	body := strings.Index(out, "Solution Overview")
	appendix := strings.Index(out, "Client Context")
	if body == -1 || appendix == -1 || appendix < body {
		t.Fatalf("appendix not rendered after the body:\n%s", out)
	}
	if !strings.Contains(out, "Client Name: Globex") {
		t.Fatalf("appendix content missing:\n%s", out)
	}
}
