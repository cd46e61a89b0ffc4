package carousel

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/switchride/internal/model"
)

var (
	// ErrNoSlides is returned when a carousel is built from an empty list.
	ErrNoSlides = errors.New("carousel: no slides")
	// ErrIndexOutOfRange is returned by GoTo for an index outside [0, N).
	ErrIndexOutOfRange = errors.New("carousel: slide index out of range")
)

// Carousel is the current position within a fixed slide list.
// The zero value is not usable; build one with New.
type Carousel struct {
	slides []model.Slide
	index  int
}

// New returns a carousel positioned on the first slide.
func New(slides []model.Slide) (Carousel, error) {
	if len(slides) == 0 {
		return Carousel{}, ErrNoSlides
	}
	own := make([]model.Slide, len(slides))
	copy(own, slides)
	return Carousel{slides: own}, nil
}

// Len returns the slide count.
func (c Carousel) Len() int { return len(c.slides) }

// Index returns the current slide index.
func (c Carousel) Index() int { return c.index }

// Current returns the descriptor of the current slide.
func (c Carousel) Current() model.Slide { return c.slides[c.index] }

// Slides returns a copy of the slide list.
func (c Carousel) Slides() []model.Slide {
	out := make([]model.Slide, len(c.slides))
	copy(out, c.slides)
	return out
}

// Next moves to the following slide, wrapping to 0 after the last.
func (c *Carousel) Next() {
	c.index = (c.index + 1) % len(c.slides)
}

// Previous moves to the preceding slide, wrapping to N-1 before the first.
func (c *Carousel) Previous() {
	n := len(c.slides)
	c.index = (c.index - 1 + n) % n
}

// GoTo jumps to slide i. The position is unchanged on error.
func (c *Carousel) GoTo(i int) error {
	if i < 0 || i >= len(c.slides) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(c.slides))
	}
	c.index = i
	return nil
}
