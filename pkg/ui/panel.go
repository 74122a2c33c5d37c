package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Widget is the interface every panel widget satisfies.
type Widget interface {
	Update()
	Draw(screen *ebiten.Image)
	Height() float64
}

// Panel stacks widgets vertically over a translucent background. The handful
// of tuning controls this simulation needs always fits, so there is no
// scrolling or sectioning.
type Panel struct {
	X, Y    float64
	Width   float64
	Title   string
	widgets []Widget

	bgColor     color.RGBA
	borderColor color.RGBA
}

func NewPanel(x, y, width float64, title string) *Panel {
	return &Panel{
		X:           x,
		Y:           y,
		Width:       width,
		Title:       title,
		bgColor:     color.RGBA{R: 40, G: 40, B: 45, A: 230},
		borderColor: color.RGBA{R: 100, G: 100, B: 110, A: 255},
	}
}

// AddSlider appends a slider below the existing widgets and returns it so the
// caller can read its Value back each frame.
func (p *Panel) AddSlider(label string, min, max, value float64) *Slider {
	s := NewSlider(p.X+10, p.Y+p.contentHeight()+16, p.Width-20, label, min, max, value)
	p.widgets = append(p.widgets, s)
	return s
}

// AddCheckbox appends a checkbox below the existing widgets and returns it.
func (p *Panel) AddCheckbox(label string, value bool) *Checkbox {
	c := NewCheckbox(p.X+10, p.Y+p.contentHeight(), label, value)
	p.widgets = append(p.widgets, c)
	return c
}

func (p *Panel) contentHeight() float64 {
	h := 24.0 // title row
	for _, w := range p.widgets {
		h += w.Height()
	}
	return h
}

// Update handles input for all widgets.
func (p *Panel) Update() {
	for _, w := range p.widgets {
		w.Update()
	}
}

// Draw renders the panel background and every widget.
func (p *Panel) Draw(screen *ebiten.Image) {
	h := p.contentHeight() + 10

	vector.FillRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(h),
		p.bgColor, true)
	vector.StrokeRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(h),
		2, p.borderColor, true)
	ebitenutil.DebugPrintAt(screen, p.Title, int(p.X+10), int(p.Y+5))

	for _, w := range p.widgets {
		w.Draw(screen)
	}
}
