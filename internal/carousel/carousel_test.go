package carousel

import (
	"errors"
	"testing"
	"time"

	"github.com/theirongolddev/switchride/internal/model"
)

func threeSlides() []model.Slide {
	return []model.Slide{
		{ID: "switch", Title: "Switch to electric."},
		{ID: "range", Title: "Go farther."},
		{ID: "service", Title: "Service, upgraded."},
	}
}

func mustCarousel(t *testing.T) Carousel {
	t.Helper()
	c, err := New(threeSlides())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestNewRejectsEmpty(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrNoSlides) {
		t.Fatalf("New(nil) err = %v, want ErrNoSlides", err)
	}
}

func TestNextIsCyclic(t *testing.T) {
	c := mustCarousel(t)
	if c.Index() != 0 {
		t.Fatalf("initial index = %d, want 0", c.Index())
	}
	for i := 0; i < c.Len(); i++ {
		c.Next()
	}
	if c.Index() != 0 {
		t.Fatalf("after N nexts index = %d, want 0", c.Index())
	}
}

func TestPreviousWraps(t *testing.T) {
	c := mustCarousel(t)
	c.Previous()
	if c.Index() != 2 {
		t.Fatalf("Previous from 0 = %d, want 2", c.Index())
	}
	c.Previous()
	if c.Index() != 1 {
		t.Fatalf("second Previous = %d, want 1", c.Index())
	}
}

func TestGoTo(t *testing.T) {
	c := mustCarousel(t)
	c.Next()

	if err := c.GoTo(2); err != nil {
		t.Fatalf("GoTo(2): %v", err)
	}
	if got := c.Current().ID; got != "service" {
		t.Fatalf("Current after GoTo(2) = %q, want service", got)
	}

	for _, bad := range []int{-1, 3, 99} {
		if err := c.GoTo(bad); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("GoTo(%d) err = %v, want ErrIndexOutOfRange", bad, err)
		}
		if c.Index() != 2 {
			t.Fatalf("GoTo(%d) moved index to %d", bad, c.Index())
		}
	}
}

func TestNewCopiesSlides(t *testing.T) {
	slides := threeSlides()
	c, err := New(slides)
	if err != nil {
		t.Fatal(err)
	}
	slides[0].Title = "mutated"
	if c.Current().Title == "mutated" {
		t.Fatal("carousel shares the caller's slice")
	}
}

func TestScheduleDueAndProgress(t *testing.T) {
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	s := NewSchedule(8*time.Second, KeepPhase)

	if s.Due(start.Add(time.Hour)) {
		t.Fatal("stopped schedule reported due")
	}

	s.Start(start)
	if got := s.Progress(start.Add(2 * time.Second)); got != 0.25 {
		t.Fatalf("Progress at 2s = %g, want 0.25", got)
	}
	if s.Due(start.Add(7 * time.Second)) {
		t.Fatal("due before the interval elapsed")
	}
	if !s.Due(start.Add(8 * time.Second)) {
		t.Fatal("not due after the interval elapsed")
	}
	if got := s.Progress(start.Add(30 * time.Second)); got != 1 {
		t.Fatalf("Progress past interval = %g, want 1", got)
	}

	s.Fired(start.Add(8 * time.Second))
	if got := s.Remaining(start.Add(10 * time.Second)); got != 6*time.Second {
		t.Fatalf("Remaining = %s, want 6s", got)
	}
}

func TestScheduleNavigatedPolicy(t *testing.T) {
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	keep := NewSchedule(8*time.Second, KeepPhase)
	keep.Start(start)
	if keep.Navigated(start.Add(6 * time.Second)) {
		t.Fatal("KeepPhase restarted the phase")
	}
	if !keep.Due(start.Add(8 * time.Second)) {
		t.Fatal("KeepPhase schedule drifted after navigation")
	}

	reset := NewSchedule(8*time.Second, ResetOnNavigate)
	reset.Start(start)
	if !reset.Navigated(start.Add(6 * time.Second)) {
		t.Fatal("ResetOnNavigate did not restart the phase")
	}
	if reset.Due(start.Add(8 * time.Second)) {
		t.Fatal("ResetOnNavigate schedule fired on the old phase")
	}
	if !reset.Due(start.Add(14 * time.Second)) {
		t.Fatal("ResetOnNavigate schedule not due a full interval after navigation")
	}
}

func TestNewScheduleDefaultsInterval(t *testing.T) {
	if got := NewSchedule(0, KeepPhase).Interval(); got != DefaultInterval {
		t.Fatalf("Interval = %s, want %s", got, DefaultInterval)
	}
}
