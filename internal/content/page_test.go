package content

import (
	"testing"

	"github.com/theirongolddev/switchride/internal/model"
)

func TestSlideTargetsResolve(t *testing.T) {
	p := Page()
	if len(p.Slides) != 3 {
		t.Fatalf("slides = %d, want 3", len(p.Slides))
	}
	seen := make(map[string]bool)
	for _, s := range p.Slides {
		if seen[s.ID] {
			t.Fatalf("duplicate slide id %q", s.ID)
		}
		seen[s.ID] = true
		for _, tgt := range []model.Target{s.Primary, s.Secondary} {
			if _, ok := p.SectionFor(tgt.Anchor); !ok {
				t.Fatalf("slide %q targets unknown anchor %q", s.ID, tgt.Anchor)
			}
			if tgt.Label == "" {
				t.Fatalf("slide %q has an unlabeled target", s.ID)
			}
		}
	}
}

func TestAnchorsInScrollOrder(t *testing.T) {
	want := []model.Anchor{model.AnchorHero, model.AnchorSavings, model.AnchorRange, model.AnchorService, model.AnchorCTA}
	got := Anchors()
	if len(got) != len(want) {
		t.Fatalf("Anchors() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Anchors()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParseAnchor(t *testing.T) {
	if a, ok := ParseAnchor("range"); !ok || a != model.AnchorRange {
		t.Fatalf("ParseAnchor(range) = %q, %v", a, ok)
	}
	if _, ok := ParseAnchor("pricing"); ok {
		t.Fatal("ParseAnchor accepted an unknown section")
	}
}

func TestPageReturnsCopies(t *testing.T) {
	p := Page()
	p.Slides[0].Title = "changed"
	p.Services[0].Title = "changed"
	q := Page()
	if q.Slides[0].Title == "changed" || q.Services[0].Title == "changed" {
		t.Fatal("Page shares backing arrays between calls")
	}
	if len(q.Services) != 6 {
		t.Fatalf("services = %d, want 6", len(q.Services))
	}
}
