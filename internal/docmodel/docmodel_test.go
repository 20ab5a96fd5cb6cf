package docmodel

import "testing"

func sample() Document {
	return Document{Sections: []Section{
		{Blocks: []Block{Para("lead-in")}},
		{Heading: "Introduction", Blocks: []Block{Para("hello"), Bullet("point")}},
		{Heading: "Solution Overview", Blocks: []Block{Bullet("module one")}},
	}}
}

func TestEqual(t *testing.T) {
	a := sample()
	b := sample()
	if !Equal(a, b) {
		t.Fatalf("identical documents reported unequal")
	}
	b.Sections[1].Blocks[0] = Para("changed")
	if Equal(a, b) {
		t.Fatalf("differing documents reported equal")
	}
}

func TestClone_Independent(t *testing.T) {
	a := sample()
	c := a.Clone()
	c.Sections[1].Blocks[0] = Para("mutated")
	if a.Sections[1].Blocks[0].Text != "hello" {
		t.Fatalf("clone shares backing array with original")
	}
	if !Equal(a, sample()) {
		t.Fatalf("original changed by mutating clone")
	}
}

func TestFind_CaseInsensitive(t *testing.T) {
	d := sample()
	sec, ok := d.Find("introduction")
	if !ok || sec.Heading != "Introduction" {
		t.Fatalf("find: ok=%v heading=%q", ok, sec.Heading)
	}
	if _, ok := d.Find("Closing Call-to-Action"); ok {
		t.Fatalf("found section that does not exist")
	}
}

func TestHeadings_SkipsPreamble(t *testing.T) {
	got := sample().Headings()
	want := []string{"Introduction", "Solution Overview"}
	if len(got) != len(want) {
		t.Fatalf("headings: got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("headings[%d]: got %q want %q", i, got[i], want[i])
		}
	}
}

func TestIsEmpty(t *testing.T) {
	if !(Document{}).IsEmpty() {
		t.Fatalf("zero document should be empty")
	}
	if !(Document{Sections: []Section{{}}}).IsEmpty() {
		t.Fatalf("blockless preamble should be empty")
	}
	if sample().IsEmpty() {
		t.Fatalf("populated document should not be empty")
	}
}
