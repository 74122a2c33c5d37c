// Package ui provides the handful of ebiten widgets the simulation frontend
// uses for live parameter tuning.
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Slider is a horizontal drag slider for a float64 in [Min, Max].
type Slider struct {
	Label    string
	Value    float64
	Min, Max float64
	X, Y     float64
	W, H     float64
}

func NewSlider(x, y, w float64, label string, min, max, value float64) *Slider {
	return &Slider{
		Label: label,
		Value: value,
		Min:   min,
		Max:   max,
		X:     x,
		Y:     y,
		W:     w,
		H:     12,
	}
}

// Update checks for mouse interaction.
func (s *Slider) Update() {
	mx, my := ebiten.CursorPosition()
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return
	}
	if float64(mx) < s.X || float64(mx) > s.X+s.W ||
		float64(my) < s.Y || float64(my) > s.Y+s.H {
		return
	}

	ratio := (float64(mx) - s.X) / s.W
	s.Value = s.Min + ratio*(s.Max-s.Min)
	if s.Value < s.Min {
		s.Value = s.Min
	}
	if s.Value > s.Max {
		s.Value = s.Max
	}
}

// Draw renders the track, the filled portion and the label with the current
// value.
func (s *Slider) Draw(screen *ebiten.Image) {
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W), float32(s.H),
		color.RGBA{R: 80, G: 80, B: 80, A: 255}, true)

	ratio := (s.Value - s.Min) / (s.Max - s.Min)
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W*ratio), float32(s.H),
		color.RGBA{R: 200, G: 200, B: 200, A: 255}, true)

	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("%s: %.3f", s.Label, s.Value),
		int(s.X), int(s.Y-16))
}

// Height reports the vertical space the slider occupies in a panel,
// label included.
func (s *Slider) Height() float64 { return s.H + 22 }
