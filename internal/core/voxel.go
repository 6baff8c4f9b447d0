package core

// VoxelGrid stores occupancy counters for a 3D grid in flat order with x
// varying fastest.
type VoxelGrid struct {
	W, H, D int
	data    []uint16
}

// NewVoxelGrid allocates a grid with the given dimensions.
func NewVoxelGrid(w, h, d int) *VoxelGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	if d <= 0 {
		d = 1
	}
	return &VoxelGrid{W: w, H: h, D: d, data: make([]uint16, w*h*d)}
}

// Index returns the linear slice index for voxel (x, y, z).
func (g *VoxelGrid) Index(x, y, z int) int { return (z*g.H+y)*g.W + x }

// Add increments the counter at (x, y, z), saturating at the uint16 maximum.
func (g *VoxelGrid) Add(x, y, z int) {
	i := g.Index(x, y, z)
	if g.data[i] != ^uint16(0) {
		g.data[i]++
	}
}

// At returns the counter at (x, y, z).
func (g *VoxelGrid) At(x, y, z int) uint16 { return g.data[g.Index(x, y, z)] }

// Occupied appends the coordinates of every nonzero voxel to dst in
// ascending index order and returns the result.
func (g *VoxelGrid) Occupied(dst [][3]int) [][3]int {
	for z := 0; z < g.D; z++ {
		for y := 0; y < g.H; y++ {
			for x := 0; x < g.W; x++ {
				if g.data[g.Index(x, y, z)] != 0 {
					dst = append(dst, [3]int{x, y, z})
				}
			}
		}
	}
	return dst
}

// Clear fills the grid with zeros.
func (g *VoxelGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
