package life

import "github.com/aquilax/go-perlin"

const (
	noiseAlpha  = 2
	noiseBeta   = 2
	noiseOctave = 3
)

// Seed clears the grid and brings cells to life wherever 2D Perlin noise,
// sampled every scale units, exceeds threshold. The same seed always produces
// the same pattern.
func (l *Life) Seed(seed int64, scale, threshold float64) {
	l.Clear()
	if scale <= 0 {
		scale = 1
	}
	p := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctave, seed)
	cells := l.cur.Cells()
	for y := 0; y < l.h; y++ {
		for x := 0; x < l.w; x++ {
			// Half-cell offset keeps samples off the lattice where noise is zero.
			n := p.Noise2D((float64(x)+0.5)*scale, (float64(y)+0.5)*scale)
			cells[y*l.w+x] = n > threshold
		}
	}
}
