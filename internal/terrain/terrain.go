// Package terrain builds the ground surface the viewers draw above the
// deposits. Elevation comes from octave-summed opensimplex noise, so the
// surface is smooth, seamless, and fully determined by its seed.
package terrain

import (
	"math"

	"github.com/golang/geo/r3"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// relief is the half-height of the surface band around the datum.
const relief = 6.0

// frequency maps world units onto the noise domain.
const frequency = 1.0 / 80.0

// Surface samples a deterministic ground elevation field.
type Surface struct {
	Octaves     int
	Persistence float64
	Seed        int64

	amplitudes []float64
	noise      opensimplex.Noise
}

// NewSurface returns a surface seeded with the given value. Octaves and
// persistence shape the roughness; amplitudes decay as persistence^i.
func NewSurface(octaves int, persistence float64, seed int64) *Surface {
	if octaves < 1 {
		octaves = 1
	}
	s := &Surface{
		Octaves:     octaves,
		Persistence: persistence,
		Seed:        seed,
		amplitudes:  make([]float64, octaves),
		noise:       opensimplex.NewNormalized(seed),
	}
	for i := range s.amplitudes {
		s.amplitudes[i] = math.Pow(persistence, float64(i))
	}
	return s
}

// Elevation returns the ground elevation at (x, y), bounded to
// [-relief, +relief] around the datum.
func (s *Surface) Elevation(x, y float64) float64 {
	var sum, sumOfAmplitudes float64
	for octave := 0; octave < s.Octaves; octave++ {
		f := float64(int(1) << octave)
		sum += s.amplitudes[octave] * s.noise.Eval2(x*frequency*f, y*frequency*f)
		sumOfAmplitudes += s.amplitudes[octave]
	}
	// Normalized noise is in [0, 1]; recenter before scaling to the band.
	return (sum/sumOfAmplitudes - 0.5) * 2 * relief
}

// Grid samples the surface over [-half, +half] squared as rows of points,
// step+1 per side, ready for wireframe drawing.
func (s *Surface) Grid(half float64, step int) [][]r3.Vector {
	if step < 1 {
		step = 1
	}
	rows := make([][]r3.Vector, step+1)
	span := 2 * half
	for i := 0; i <= step; i++ {
		y := -half + span*float64(i)/float64(step)
		row := make([]r3.Vector, step+1)
		for j := 0; j <= step; j++ {
			x := -half + span*float64(j)/float64(step)
			row[j] = r3.Vector{X: x, Y: y, Z: s.Elevation(x, y)}
		}
		rows[i] = row
	}
	return rows
}
