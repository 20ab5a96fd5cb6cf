package normalize

import "testing"

func TestNormalize_StripsMarkupArtifacts(t *testing.T) {
	in := "## Introduction\r\n**Bold claim** and *emphasis* stay as text.\n\n\n\n• First point\n▪ Second point\n"
	got := Normalize(in)
	want := "Introduction\nBold claim and emphasis stay as text.\n\n- First point\n- Second point"
	if got != want {
		t.Fatalf("normalize:\n got %q\nwant %q", got, want)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	cases := []string{
		"",
		"plain paragraph",
		"## Heading\n\n\n\n\n• glyph bullet\n**bold**",
		"- already canonical\nSecond line\r\nthird",
	}
	for _, in := range cases {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Fatalf("not idempotent for %q:\n once %q\ntwice %q", in, once, twice)
		}
	}
}

func TestNormalize_BulletGlyphWithoutSpace(t *testing.T) {
	// Glyphs glued to the first word still mark a bullet.
	cases := []struct{ in, want string }{
		{"•First point", "- First point"},
		{"▪Second point", "- Second point"},
		{"•  padded point", "- padded point"},
	}
	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalize_EmptyInEmptyOut(t *testing.T) {
	if got := Normalize(""); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
	if got := Normalize("  \n\n  "); got != "" {
		t.Fatalf("expected empty from whitespace, got %q", got)
	}
}

func TestNormalize_CollapsesBlankRuns(t *testing.T) {
	got := Normalize("a\n\n\n\n\nb")
	if got != "a\n\nb" {
		t.Fatalf("blank collapse: got %q", got)
	}
	// Single blank lines are preserved as-is.
	if got := Normalize("a\n\nb"); got != "a\n\nb" {
		t.Fatalf("single blank: got %q", got)
	}
}

func TestNormalize_MixedLineEndings(t *testing.T) {
	got := Normalize("one\r\ntwo\rthree")
	if got != "one\ntwo\nthree" {
		t.Fatalf("line endings: got %q", got)
	}
}
