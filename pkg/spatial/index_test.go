package spatial

import (
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/lao-tseu-is-alive/go-boids-simulation/pkg/geometry"
)

// bruteWithin is the reference implementation: a linear scan.
func bruteWithin(points []geometry.Point2D, r float64, q geometry.Point2D) []int {
	var result []int
	for i, p := range points {
		if p.DistanceTo(q) <= r {
			result = append(result, i)
		}
	}
	return result
}

func sameIndexSet(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	sort.Ints(a)
	sort.Ints(b)
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestIndex_Within_Empty(t *testing.T) {
	ix := NewIndex(nil)
	if ix.Len() != 0 {
		t.Errorf("Len = %d; want 0", ix.Len())
	}
	if got := ix.Within(100, geometry.Point2D{}); len(got) != 0 {
		t.Errorf("Within on empty index = %v; want empty", got)
	}
}

func TestIndex_Within_SinglePoint(t *testing.T) {
	points := []geometry.Point2D{{X: 5, Y: 5}}
	ix := NewIndex(points)

	if got := ix.Within(1, geometry.Point2D{X: 5, Y: 5.5}); !sameIndexSet(got, []int{0}) {
		t.Errorf("Within(1, near) = %v; want [0]", got)
	}
	if got := ix.Within(1, geometry.Point2D{X: 50, Y: 50}); len(got) != 0 {
		t.Errorf("Within(1, far) = %v; want empty", got)
	}
}

func TestIndex_Within_BoundaryInclusive(t *testing.T) {
	// Distance exactly r must be included.
	points := []geometry.Point2D{{X: 3, Y: 4}}
	ix := NewIndex(points)
	if got := ix.Within(5, geometry.Point2D{}); !sameIndexSet(got, []int{0}) {
		t.Errorf("Within(5) at exact distance 5 = %v; want [0]", got)
	}
}

func TestIndex_Within_CoincidentPoints(t *testing.T) {
	// Two points at the same position are distinct by index.
	points := []geometry.Point2D{{X: 1, Y: 1}, {X: 1, Y: 1}, {X: 9, Y: 9}}
	ix := NewIndex(points)
	got := ix.Within(0.5, geometry.Point2D{X: 1, Y: 1})
	if !sameIndexSet(got, []int{0, 1}) {
		t.Errorf("Within on coincident points = %v; want [0 1]", got)
	}
}

func TestIndex_Within_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))

	for _, n := range []int{0, 1, 2, 10, 100, 500} {
		points := make([]geometry.Point2D, n)
		for i := range points {
			points[i] = geometry.Point2D{X: rng.Float64() * 100, Y: rng.Float64() * 100}
		}
		ix := NewIndex(points)

		for trial := 0; trial < 20; trial++ {
			q := geometry.Point2D{X: rng.Float64() * 100, Y: rng.Float64() * 100}
			r := rng.Float64() * 30

			got := ix.Within(r, q)
			want := bruteWithin(points, r, q)
			if !sameIndexSet(got, want) {
				t.Fatalf("n=%d trial=%d r=%v q=%v: Within = %v; brute force = %v",
					n, trial, r, q, got, want)
			}
		}
	}
}

func TestIndex_Within_NegativeRadius(t *testing.T) {
	ix := NewIndex([]geometry.Point2D{{X: 0, Y: 0}})
	if got := ix.Within(-1, geometry.Point2D{}); len(got) != 0 {
		t.Errorf("Within(-1) = %v; want empty", got)
	}
}

func BenchmarkIndex_Build(b *testing.B) {
	rng := rand.New(rand.NewPCG(1, 2))
	points := make([]geometry.Point2D, 1000)
	for i := range points {
		points[i] = geometry.Point2D{X: rng.Float64() * 1000, Y: rng.Float64() * 1000}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		NewIndex(points)
	}
}

func BenchmarkIndex_Within(b *testing.B) {
	rng := rand.New(rand.NewPCG(3, 4))
	points := make([]geometry.Point2D, 1000)
	for i := range points {
		points[i] = geometry.Point2D{X: rng.Float64() * 1000, Y: rng.Float64() * 1000}
	}
	ix := NewIndex(points)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ix.Within(80, geometry.Point2D{X: 500, Y: 500})
	}
}
