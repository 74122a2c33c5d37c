package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lao-tseu-is-alive/go-boids-simulation/pkg/simulation"
	"github.com/lao-tseu-is-alive/go-boids-simulation/pkg/ui"
)

// whiteImage is the 1px source texture for DrawTriangles. Vertex colors
// modulate it, so it has to stay pure white.
var whiteImage = ebiten.NewImage(3, 3)

func init() {
	whiteImage.Fill(color.White)
}

type Game struct {
	flock *simulation.Flock
	panel *ui.Panel

	widgetMaxVelocity         *ui.Slider
	widgetSeparationIntensity *ui.Slider
	widgetSeparationWeight    *ui.Slider
	widgetAlignmentWeight     *ui.Slider
	widgetCohesionWeight      *ui.Slider
	widgetSeparationRadius    *ui.Slider
	widgetAlignmentRadius     *ui.Slider
	widgetCohesionRadius      *ui.Slider
	widgetPause               *ui.Checkbox
	widgetShowRadii           *ui.Checkbox
}

func newGame(flock *simulation.Flock) *Game {
	cfg := flock.Config()
	panel := ui.NewPanel(10, 10, 240, "Boids")

	g := &Game{
		flock: flock,
		panel: panel,

		widgetMaxVelocity:         panel.AddSlider("Max Velocity", 0.5, 10, cfg.MaxVelocity),
		widgetSeparationIntensity: panel.AddSlider("Separation Intensity", 0.1, 10, cfg.SeparationIntensity),
		widgetSeparationWeight:    panel.AddSlider("Separation Weight", 0, 2, cfg.SeparationWeight),
		widgetAlignmentWeight:     panel.AddSlider("Alignment Weight", 0, 0.2, cfg.AlignmentWeight),
		widgetCohesionWeight:      panel.AddSlider("Cohesion Weight", 0, 0.01, cfg.CohesionWeight),
		widgetSeparationRadius:    panel.AddSlider("Separation Radius", 5, 200, cfg.SeparationRadius),
		widgetAlignmentRadius:     panel.AddSlider("Alignment Radius", 5, 300, cfg.AlignmentRadius),
		widgetCohesionRadius:      panel.AddSlider("Cohesion Radius", 5, 300, cfg.CohesionRadius),
		widgetPause:               panel.AddCheckbox("Pause", false),
		widgetShowRadii:           panel.AddCheckbox("Show Radii", false),
	}
	return g
}

func (g *Game) Update() error {
	g.panel.Update()

	cfg := g.flock.Config()
	cfg.MaxVelocity = g.widgetMaxVelocity.Value
	cfg.SeparationIntensity = g.widgetSeparationIntensity.Value
	cfg.SeparationWeight = g.widgetSeparationWeight.Value
	cfg.AlignmentWeight = g.widgetAlignmentWeight.Value
	cfg.CohesionWeight = g.widgetCohesionWeight.Value
	cfg.SeparationRadius = g.widgetSeparationRadius.Value
	cfg.AlignmentRadius = g.widgetAlignmentRadius.Value
	cfg.CohesionRadius = g.widgetCohesionRadius.Value
	g.flock.Retune()

	if g.widgetPause.Value {
		return nil
	}
	return g.flock.Step()
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 10, G: 10, B: 30, A: 255})

	for _, b := range g.flock.Boids() {
		drawBoid(screen, b)
	}

	if g.widgetShowRadii.Value {
		cfg := g.flock.Config()
		for _, b := range g.flock.Boids() {
			x := float32(b.Position.X)
			y := float32(b.Position.Y)
			vector.StrokeCircle(screen, x, y, float32(cfg.SeparationRadius), 1,
				color.RGBA{R: 200, G: 60, B: 60, A: 60}, true)
			vector.StrokeCircle(screen, x, y, float32(cfg.CohesionRadius), 1,
				color.RGBA{R: 60, G: 120, B: 200, A: 40}, true)
		}
	}

	g.panel.Draw(screen)

	msg := fmt.Sprintf("FPS: %.1f TPS: %.1f\nBoids: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), len(g.flock.Boids()))
	ebitenutil.DebugPrintAt(screen, msg, int(g.flock.Config().WorldWidth)-120, 10)
}

func drawBoid(screen *ebiten.Image, b *simulation.Boid) {
	vertices := make([]ebiten.Vertex, 3)
	for i, p := range b.Vertices {
		vertices[i] = ebiten.Vertex{
			DstX: float32(p.X),
			DstY: float32(p.Y),
			SrcX: 1, SrcY: 1,
			ColorR: float32(b.Color.R) / 255,
			ColorG: float32(b.Color.G) / 255,
			ColorB: float32(b.Color.B) / 255,
			ColorA: float32(b.Color.A) / 255,
		}
	}
	indices := []uint16{0, 1, 2}
	screen.DrawTriangles(vertices, indices, whiteImage, &ebiten.DrawTrianglesOptions{})
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := g.flock.Config()
	return int(cfg.WorldWidth), int(cfg.WorldHeight)
}
