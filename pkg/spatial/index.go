// Package spatial answers radius queries over a fixed snapshot of 2D points.
//
// The Index is a static KD-tree: built once from a snapshot of positions,
// immutable afterwards, and cheap enough to rebuild from scratch every
// simulation step. Rebuilding beats incremental maintenance here because a
// step may move a point arbitrarily far (toroidal wrap), and a fresh build
// from a full snapshot is O(N log N) anyway.
package spatial

import (
	"gonum.org/v1/gonum/spatial/kdtree"

	"github.com/lao-tseu-is-alive/go-boids-simulation/pkg/geometry"
)

// indexedPoint is a kdtree node carrying the snapshot index of its point, so
// query results can be mapped back to whatever collection the positions came
// from.
type indexedPoint struct {
	pos geometry.Point2D
	idx int
}

func (p indexedPoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(indexedPoint)
	switch d {
	case 0:
		return p.pos.X - q.pos.X
	default:
		return p.pos.Y - q.pos.Y
	}
}

func (p indexedPoint) Dims() int { return 2 }

// Distance returns the squared Euclidean distance, as the kdtree package
// expects from its Comparable implementations.
func (p indexedPoint) Distance(c kdtree.Comparable) float64 {
	q := c.(indexedPoint)
	return p.pos.DistanceSquaredTo(q.pos)
}

// indexedPoints implements kdtree.Interface for tree construction.
type indexedPoints []indexedPoint

func (p indexedPoints) Index(i int) kdtree.Comparable { return p[i] }
func (p indexedPoints) Len() int                      { return len(p) }
func (p indexedPoints) Slice(start, end int) kdtree.Interface {
	return p[start:end]
}
func (p indexedPoints) Pivot(d kdtree.Dim) int {
	return plane{indexedPoints: p, Dim: d}.pivot()
}

// plane sorts indexedPoints along a single dimension for pivot selection.
type plane struct {
	indexedPoints
	kdtree.Dim
}

func (p plane) Less(i, j int) bool {
	a, b := p.indexedPoints[i], p.indexedPoints[j]
	switch p.Dim {
	case 0:
		return a.pos.X < b.pos.X
	default:
		return a.pos.Y < b.pos.Y
	}
}
func (p plane) Swap(i, j int) {
	p.indexedPoints[i], p.indexedPoints[j] = p.indexedPoints[j], p.indexedPoints[i]
}
func (p plane) Slice(start, end int) kdtree.SortSlicer {
	p.indexedPoints = p.indexedPoints[start:end]
	return p
}
func (p plane) pivot() int {
	return kdtree.Partition(p, kdtree.MedianOfMedians(p))
}

// Index is an immutable KD-tree over a snapshot of 2D positions.
type Index struct {
	tree *kdtree.Tree
	n    int
}

// NewIndex builds an Index from a snapshot of positions. The snapshot's
// ordering is what query results refer to.
func NewIndex(points []geometry.Point2D) *Index {
	if len(points) == 0 {
		return &Index{}
	}
	ps := make(indexedPoints, len(points))
	for i, pt := range points {
		ps[i] = indexedPoint{pos: pt, idx: i}
	}
	return &Index{
		tree: kdtree.New(ps, false),
		n:    len(points),
	}
}

// Len reports the number of indexed positions.
func (ix *Index) Len() int { return ix.n }

// Within returns the snapshot indices of every position whose Euclidean
// distance to q is at most r, in no particular order. A position coinciding
// with q is included; it is the caller's business to exclude itself by index
// when q is one of the indexed points.
func (ix *Index) Within(r float64, q geometry.Point2D) []int {
	if ix.tree == nil || r < 0 {
		return nil
	}

	// The keeper works in squared distances, matching Distance above.
	keep := kdtree.NewDistKeeper(r * r)
	ix.tree.NearestSet(keep, indexedPoint{pos: q, idx: -1})

	var result []int
	for _, c := range keep.Heap {
		// The keeper's heap holds a sentinel entry with a nil Comparable.
		if c.Comparable == nil {
			continue
		}
		result = append(result, c.Comparable.(indexedPoint).idx)
	}
	return result
}
