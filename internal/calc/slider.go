package calc

import (
	"math"

	"github.com/theirongolddev/switchride/internal/config"
)

// Slider is the bounded, stepped monthly distance control. It is the input
// boundary: values handed to ComputeCost come out of Clamp or Snap.
type Slider struct {
	Min  float64
	Max  float64
	Step float64
}

// NewSlider builds a slider from config bounds.
func NewSlider(cfg config.SliderConfig) Slider {
	return Slider{Min: cfg.Min, Max: cfg.Max, Step: cfg.Step}
}

// Clamp limits v to [Min, Max].
func (s Slider) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return s.Min
	}
	return math.Min(s.Max, math.Max(s.Min, v))
}

// Snap clamps v and rounds it to the nearest step from Min.
func (s Slider) Snap(v float64) float64 {
	v = s.Clamp(v)
	if s.Step <= 0 {
		return v
	}
	steps := math.Round((v - s.Min) / s.Step)
	return s.Clamp(s.Min + steps*s.Step)
}

// Move shifts v by n steps and snaps the result.
func (s Slider) Move(v float64, n int) float64 {
	return s.Snap(v + float64(n)*s.Step)
}

// Contains reports whether v is inside the bounds.
func (s Slider) Contains(v float64) bool {
	return v >= s.Min && v <= s.Max
}

// Fraction is v's position along the track in [0, 1].
func (s Slider) Fraction(v float64) float64 {
	span := s.Max - s.Min
	if span <= 0 {
		return 0
	}
	return (s.Clamp(v) - s.Min) / span
}

// maxPositions caps Values for pathological bounds.
const maxPositions = 1 << 16

// Values lists every reachable slider position, at most maxPositions of them.
func (s Slider) Values() []float64 {
	if !(s.Step > 0) || !(s.Max >= s.Min) {
		return []float64{s.Min}
	}
	n := int(math.Min(math.Floor((s.Max-s.Min)/s.Step), maxPositions-1)) + 1
	out := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, s.Min+float64(i)*s.Step)
	}
	return out
}
