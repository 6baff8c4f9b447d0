package terrain

import (
	"math"
	"testing"
)

func TestElevationDeterministic(t *testing.T) {
	a := NewSurface(4, 0.5, 1337)
	b := NewSurface(4, 0.5, 1337)
	for i := 0; i < 50; i++ {
		x := float64(i)*3.7 - 80
		y := float64(i)*-2.1 + 40
		if av, bv := a.Elevation(x, y), b.Elevation(x, y); av != bv {
			t.Fatalf("elevation at (%v, %v) diverged: %v vs %v", x, y, av, bv)
		}
	}

	c := NewSurface(4, 0.5, 1338)
	same := true
	for i := 0; i < 50; i++ {
		x := float64(i) * 5.3
		if a.Elevation(x, 0) != c.Elevation(x, 0) {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced an identical surface")
	}
}

func TestElevationWithinReliefBand(t *testing.T) {
	s := NewSurface(5, 0.6, 99)
	for i := -60; i <= 60; i += 3 {
		for j := -60; j <= 60; j += 3 {
			z := s.Elevation(float64(i), float64(j))
			if math.Abs(z) > relief {
				t.Fatalf("elevation %v at (%d, %d) outside the relief band", z, i, j)
			}
		}
	}
}

func TestGridShape(t *testing.T) {
	s := NewSurface(3, 0.5, 7)
	grid := s.Grid(50, 10)
	if len(grid) != 11 {
		t.Fatalf("grid has %d rows, want 11", len(grid))
	}
	for i, row := range grid {
		if len(row) != 11 {
			t.Fatalf("row %d has %d samples, want 11", i, len(row))
		}
	}
	if first := grid[0][0]; first.X != -50 || first.Y != -50 {
		t.Fatalf("grid corner at (%v, %v), want (-50, -50)", first.X, first.Y)
	}
	if last := grid[10][10]; last.X != 50 || last.Y != 50 {
		t.Fatalf("grid corner at (%v, %v), want (50, 50)", last.X, last.Y)
	}
}
