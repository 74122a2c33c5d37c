package simulation

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/lao-tseu-is-alive/go-boids-simulation/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-boids-simulation/pkg/spatial"
)

// Flock owns the boid population and drives the per-step cycle:
// snapshot, rebuild spatial index, query neighbors, update, wrap.
type Flock struct {
	cfg   *Config
	boids []*Boid
	rng   *rand.Rand

	// Per-step scratch state. The index is rebuilt from the snapshot every
	// step and has no validity across steps; the snapshot holds pre-step
	// copies of all boids so no query or force ever reads a
	// partially-updated position. Snapshot index i is boid index i.
	index    *spatial.Index
	snapshot []Boid
}

// NewFlock validates cfg and creates the population: uniform-random positions
// inside the world, random directions at exactly MaxVelocity.
func NewFlock(cfg *Config) (*Flock, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed<<1|1))

	f := &Flock{
		cfg:   cfg,
		rng:   rng,
		boids: make([]*Boid, cfg.NumBoids),
	}

	for i := range f.boids {
		position := geometry.Point2D{
			X: rng.Float64() * cfg.WorldWidth,
			Y: rng.Float64() * cfg.WorldHeight,
		}
		f.boids[i] = NewBoid(cfg, position, f.randomVelocity())
	}

	return f, nil
}

// randomVelocity draws a uniformly random direction scaled to MaxVelocity.
func (f *Flock) randomVelocity() geometry.Vector2D {
	for {
		v := geometry.Vector2D{
			X: f.rng.Float64()*2 - 1,
			Y: f.rng.Float64()*2 - 1,
		}
		direction, err := v.Normalize()
		if err != nil {
			// Drew the exact zero vector; try again.
			continue
		}
		return direction.Mul(f.cfg.MaxVelocity)
	}
}

// Boids exposes the population for the render loop. Index positions are
// stable within a step.
func (f *Flock) Boids() []*Boid { return f.boids }

// Config returns the live configuration. The frontend may adjust behavior
// fields between steps and call Retune to push them into the population.
func (f *Flock) Config() *Config { return f.cfg }

// Retune copies the config's behavior parameters into every boid. Radii need
// no push since Step reads them from the config directly.
func (f *Flock) Retune() {
	for _, b := range f.boids {
		b.MaxSpeed = f.cfg.MaxVelocity
		b.SeparationIntensity = f.cfg.SeparationIntensity
		b.SeparationWeight = f.cfg.SeparationWeight
		b.AlignmentWeight = f.cfg.AlignmentWeight
		b.CohesionWeight = f.cfg.CohesionWeight
	}
}

// Step advances the whole flock one tick.
//
// All neighbor queries of a step run against the index built from the
// pre-step snapshot, and all forces read the snapshot's poses, so update
// order cannot influence the outcome. That also makes the per-boid work
// trivially parallel (see stepParallel): workers share the immutable index
// and snapshot and each writes only its own boids.
func (f *Flock) Step() error {
	n := len(f.boids)

	if cap(f.snapshot) < n {
		f.snapshot = make([]Boid, n)
	}
	f.snapshot = f.snapshot[:n]
	positions := make([]geometry.Point2D, n)
	for i, b := range f.boids {
		f.snapshot[i] = *b
		positions[i] = b.Position
	}

	f.index = spatial.NewIndex(positions)

	if n >= parallelThreshold {
		return f.stepParallel()
	}

	for i := range f.boids {
		if err := f.stepBoid(i); err != nil {
			return err
		}
	}
	return nil
}

// stepBoid queries the three rule neighborhoods for boid i, updates it, and
// wraps its position. Safe to call concurrently for distinct i.
func (f *Flock) stepBoid(i int) error {
	neighborsSep := f.neighbors(i, f.cfg.SeparationRadius)
	neighborsAlign := f.neighbors(i, f.cfg.AlignmentRadius)
	neighborsCoh := f.neighbors(i, f.cfg.CohesionRadius)

	b := f.boids[i]
	if err := b.Update(neighborsSep, neighborsAlign, neighborsCoh); err != nil {
		return fmt.Errorf("boid %d: %w", i, err)
	}

	// Wrap only the position. The vertices computed during Update refer to
	// the unwrapped position; the next Update rebuilds them from the
	// wrapped one.
	b.Position = geometry.Point2D{
		X: wrapCoordinate(b.Position.X, f.cfg.WorldWidth),
		Y: wrapCoordinate(b.Position.Y, f.cfg.WorldHeight),
	}
	return nil
}

// neighbors returns pointers into the pre-step snapshot for every boid within
// radius of boid self, excluding self by index. Two coincident boids are
// still distinct neighbors of each other.
func (f *Flock) neighbors(self int, radius float64) []*Boid {
	indices := f.index.Within(radius, f.snapshot[self].Position)
	result := make([]*Boid, 0, len(indices))
	for _, j := range indices {
		if j == self {
			continue
		}
		result = append(result, &f.snapshot[j])
	}
	return result
}

// wrapCoordinate remaps v into [0, bound) with a true modulo, so negative
// excursions of any magnitude wrap correctly.
func wrapCoordinate(v, bound float64) float64 {
	m := math.Mod(v, bound)
	if m < 0 {
		m += bound
	}
	// A tiny negative v can round m back up to bound exactly.
	if m >= bound {
		m = 0
	}
	return m
}
