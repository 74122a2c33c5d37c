// Package simulation implements the flocking core: the per-boid force model
// and the flock orchestration around a per-step spatial index.
//
// Boids is an artificial life program, developed by Craig Reynolds in 1986,
// which simulates the flocking behaviour of birds and related group motion
// from three local rules: separation, alignment and cohesion.
// https://en.wikipedia.org/wiki/Boids
package simulation

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lao-tseu-is-alive/go-boids-simulation/pkg/geometry"
)

// Boid is a single simulated agent. Position, Heading, Velocity and Vertices
// change once per step through Update; the tuning fields are read-only during
// a step but may be retuned between steps (see Flock.Retune).
type Boid struct {
	Position geometry.Point2D
	Heading  float64 // radians, always equal to Velocity.Angle() after Update
	Velocity geometry.Vector2D

	// Rendering geometry; never read by the force model.
	Height   float64
	Width    float64
	Vertices [3]geometry.Point2D
	Color    color.RGBA

	MaxSpeed            float64
	SeparationIntensity float64
	SeparationWeight    float64
	AlignmentWeight     float64
	CohesionWeight      float64
}

// NewBoid creates a boid at the given pose with tuning taken from cfg.
// Heading is derived from the velocity, as everywhere else.
func NewBoid(cfg *Config, position geometry.Point2D, velocity geometry.Vector2D) *Boid {
	b := &Boid{
		Position:            position,
		Heading:             velocity.Angle(),
		Velocity:            velocity,
		Height:              cfg.BoidHeight,
		Width:               cfg.BoidWidth,
		Color:               color.RGBA{R: 255, G: 255, B: 255, A: 255},
		MaxSpeed:            cfg.MaxVelocity,
		SeparationIntensity: cfg.SeparationIntensity,
		SeparationWeight:    cfg.SeparationWeight,
		AlignmentWeight:     cfg.AlignmentWeight,
		CohesionWeight:      cfg.CohesionWeight,
	}
	b.computeVertices()
	return b
}

// Separation computes the force pushing the boid away from each neighbor,
// inversely proportional to distance (not distance squared), averaged over
// the neighbor list. An empty list yields the zero vector.
//
// A neighbor at exactly the boid's own position has no direction to flee
// along; that surfaces geometry.ErrZeroMagnitude rather than inventing a
// fallback force.
func (b *Boid) Separation(neighbors []*Boid) (geometry.Vector2D, error) {
	var force geometry.Vector2D
	if len(neighbors) == 0 {
		return force, nil
	}

	for _, n := range neighbors {
		displacement := b.Position.Sub(n.Position)
		d := displacement.Len()
		direction, err := displacement.Normalize()
		if err != nil {
			return geometry.Vector2D{}, fmt.Errorf("separation from coincident neighbor at %s: %w", n.Position, err)
		}
		force = force.Add(direction.Mul(b.SeparationIntensity / d))
	}

	return force.Mul(1 / float64(len(neighbors))), nil
}

// Alignment computes the steering correction toward the mean velocity of the
// neighbor list: meanVelocity - ownVelocity, not the mean velocity itself.
// An empty list yields the zero vector.
func (b *Boid) Alignment(neighbors []*Boid) geometry.Vector2D {
	if len(neighbors) == 0 {
		return geometry.Vector2D{}
	}

	var sum geometry.Vector2D
	for _, n := range neighbors {
		sum = sum.Add(n.Velocity)
	}
	meanVelocity := sum.Mul(1 / float64(len(neighbors)))

	return meanVelocity.Sub(b.Velocity)
}

// Cohesion computes the displacement from the boid to the centroid of the
// neighbor list. An empty list yields the zero vector.
func (b *Boid) Cohesion(neighbors []*Boid) geometry.Vector2D {
	if len(neighbors) == 0 {
		return geometry.Vector2D{}
	}

	var sx, sy float64
	for _, n := range neighbors {
		sx += n.Position.X
		sy += n.Position.Y
	}
	count := float64(len(neighbors))
	centroid := geometry.Point2D{X: sx / count, Y: sy / count}

	return centroid.Sub(b.Position)
}

// Update advances the boid one step. The three neighbor lists come from
// independent search radii, so a given neighbor may appear in any subset of
// them.
//
// The combined velocity is unconditionally renormalized to exactly MaxSpeed:
// boids fly at constant speed, they only turn. Since the prior velocity
// already has magnitude MaxSpeed, the renormalization can only fail if the
// forces exactly cancel it, which surfaces geometry.ErrZeroMagnitude.
func (b *Boid) Update(neighborsSeparation, neighborsAlignment, neighborsCohesion []*Boid) error {
	separationForce, err := b.Separation(neighborsSeparation)
	if err != nil {
		return err
	}
	alignmentForce := b.Alignment(neighborsAlignment)
	cohesionForce := b.Cohesion(neighborsCohesion)

	combined := b.Velocity.
		Add(separationForce.Mul(b.SeparationWeight)).
		Add(alignmentForce.Mul(b.AlignmentWeight)).
		Add(cohesionForce.Mul(b.CohesionWeight))

	direction, err := combined.Normalize()
	if err != nil {
		return fmt.Errorf("combined velocity vanished: %w", err)
	}
	b.Velocity = direction.Mul(b.MaxSpeed)

	// One step of displacement is one velocity unit; there is no dt.
	b.Position = b.Position.Add(b.Velocity)
	b.Heading = b.Velocity.Angle()
	b.computeVertices()

	return nil
}

// computeVertices derives the triangle the renderer draws: a tip along the
// heading and two base corners perpendicular to it.
func (b *Boid) computeVertices() {
	b.Vertices[0] = b.Position.Add(geometry.NewVectorPolar(b.Height, b.Heading))
	b.Vertices[1] = b.Position.Add(geometry.NewVectorPolar(b.Width, b.Heading+math.Pi/2))
	b.Vertices[2] = b.Position.Add(geometry.NewVectorPolar(b.Width, b.Heading-math.Pi/2))
}
