package pointcloud

import (
	"testing"

	"github.com/golang/geo/r3"
)

func TestAppendTracksBounds(t *testing.T) {
	c := New()
	c.Append(r3.Vector{X: 1, Y: 2, Z: 3})
	c.Append(r3.Vector{X: -4, Y: 5, Z: -6})
	c.Append(r3.Vector{X: 2, Y: -1, Z: 0})

	if c.Size() != 3 {
		t.Fatalf("size = %d, want 3", c.Size())
	}
	m := c.Meta()
	if m.Count != 3 {
		t.Fatalf("meta count = %d, want 3", m.Count)
	}
	if m.MinX != -4 || m.MaxX != 2 {
		t.Fatalf("x bounds = [%v, %v], want [-4, 2]", m.MinX, m.MaxX)
	}
	if m.MinY != -1 || m.MaxY != 5 {
		t.Fatalf("y bounds = [%v, %v], want [-1, 5]", m.MinY, m.MaxY)
	}
	if m.MinZ != -6 || m.MaxZ != 3 {
		t.Fatalf("z bounds = [%v, %v], want [-6, 3]", m.MinZ, m.MaxZ)
	}
}

func TestAtPreservesOrder(t *testing.T) {
	c := NewWithCapacity(4)
	pts := []r3.Vector{{X: 1}, {Y: 1}, {Z: 1}, {X: -1, Y: -1, Z: -1}}
	for _, p := range pts {
		c.Append(p)
	}
	for i, want := range pts {
		if got := c.At(i); got != want {
			t.Fatalf("At(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestTruncate(t *testing.T) {
	c := New()
	c.Append(r3.Vector{X: 10, Y: 10, Z: 10})
	c.Append(r3.Vector{X: -10, Y: -10, Z: -10})
	c.Append(r3.Vector{X: 1, Y: 1, Z: 1})

	c.Truncate(5)
	if c.Size() != 3 {
		t.Fatalf("truncate beyond size changed size to %d", c.Size())
	}

	c.Truncate(1)
	if c.Size() != 1 {
		t.Fatalf("size after truncate = %d, want 1", c.Size())
	}
	m := c.Meta()
	if m.MinX != 10 || m.MaxX != 10 || m.MinZ != 10 {
		t.Fatalf("bounds not recomputed after truncate: %+v", m)
	}

	c.Truncate(0)
	if c.Size() != 0 || c.Meta().Count != 0 {
		t.Fatalf("truncate to zero left size=%d meta=%+v", c.Size(), c.Meta())
	}
}

func TestScaleElevation(t *testing.T) {
	c := New()
	c.Append(r3.Vector{X: 1, Y: 2, Z: 3})
	c.Append(r3.Vector{X: 4, Y: 5, Z: -6})

	c.ScaleElevation(2)
	if got := c.At(0); got.X != 1 || got.Y != 2 || got.Z != 6 {
		t.Fatalf("point 0 after scale = %v, want {1 2 6}", got)
	}
	if got := c.At(1); got.Z != -12 {
		t.Fatalf("point 1 z after scale = %v, want -12", got.Z)
	}

	// Negative factors flip the elevation bounds.
	c.ScaleElevation(-1)
	m := c.Meta()
	if m.MinZ != -6 || m.MaxZ != 12 {
		t.Fatalf("z bounds after negative scale = [%v, %v], want [-6, 12]", m.MinZ, m.MaxZ)
	}
}

func TestCenter(t *testing.T) {
	c := New()
	if got := c.Center(); got != (r3.Vector{}) {
		t.Fatalf("empty cloud center = %v, want zero vector", got)
	}
	c.Append(r3.Vector{X: -2, Y: 0, Z: 4})
	c.Append(r3.Vector{X: 2, Y: 6, Z: -4})
	want := r3.Vector{X: 0, Y: 3, Z: 0}
	if got := c.Center(); got != want {
		t.Fatalf("center = %v, want %v", got, want)
	}
}
