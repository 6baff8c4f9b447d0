// Package pointcloud provides an ordered collection of 3D points with
// running bounds metadata. X is easting, Y is northing, Z is elevation;
// points below the datum carry negative Z.
package pointcloud

import "github.com/golang/geo/r3"

// Meta tracks the bounding box of a cloud as points are appended.
type Meta struct {
	MinX, MaxX float64
	MinY, MaxY float64
	MinZ, MaxZ float64
	Count      int
}

// Merge extends the bounds to include p.
func (m *Meta) Merge(p r3.Vector) {
	if m.Count == 0 {
		m.MinX, m.MaxX = p.X, p.X
		m.MinY, m.MaxY = p.Y, p.Y
		m.MinZ, m.MaxZ = p.Z, p.Z
		m.Count = 1
		return
	}
	if p.X < m.MinX {
		m.MinX = p.X
	}
	if p.X > m.MaxX {
		m.MaxX = p.X
	}
	if p.Y < m.MinY {
		m.MinY = p.Y
	}
	if p.Y > m.MaxY {
		m.MaxY = p.Y
	}
	if p.Z < m.MinZ {
		m.MinZ = p.Z
	}
	if p.Z > m.MaxZ {
		m.MaxZ = p.Z
	}
	m.Count++
}

// Cloud is an ordered sequence of points. Append order is preserved;
// walk-based generators rely on it.
type Cloud struct {
	pts  []r3.Vector
	meta Meta
}

// New returns an empty Cloud.
func New() *Cloud {
	return NewWithCapacity(0)
}

// NewWithCapacity returns an empty Cloud preallocated for n points.
func NewWithCapacity(n int) *Cloud {
	if n < 0 {
		n = 0
	}
	return &Cloud{pts: make([]r3.Vector, 0, n)}
}

// Append adds p at the end of the cloud.
func (c *Cloud) Append(p r3.Vector) {
	c.pts = append(c.pts, p)
	c.meta.Merge(p)
}

// Size returns the number of points.
func (c *Cloud) Size() int {
	return len(c.pts)
}

// At returns the i-th point in append order.
func (c *Cloud) At(i int) r3.Vector {
	return c.pts[i]
}

// Points returns the backing slice. Callers must not modify it.
func (c *Cloud) Points() []r3.Vector {
	return c.pts
}

// Meta returns the current bounds metadata.
func (c *Cloud) Meta() Meta {
	return c.meta
}

// Truncate keeps the first n points. It is a no-op when n is not smaller
// than the current size.
func (c *Cloud) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n >= len(c.pts) {
		return
	}
	c.pts = c.pts[:n]
	c.recompute()
}

// ScaleElevation multiplies the Z coordinate of every point by k.
func (c *Cloud) ScaleElevation(k float64) {
	for i := range c.pts {
		c.pts[i].Z *= k
	}
	c.recompute()
}

// Center returns the midpoint of the bounding box, or the zero vector for
// an empty cloud.
func (c *Cloud) Center() r3.Vector {
	if c.meta.Count == 0 {
		return r3.Vector{}
	}
	return r3.Vector{
		X: (c.meta.MinX + c.meta.MaxX) / 2,
		Y: (c.meta.MinY + c.meta.MaxY) / 2,
		Z: (c.meta.MinZ + c.meta.MaxZ) / 2,
	}
}

func (c *Cloud) recompute() {
	c.meta = Meta{}
	for _, p := range c.pts {
		c.meta.Merge(p)
	}
}
