package terrain

import (
	"time"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl64"
)

// Options controls island heightmap generation.
// Width/Depth are sample counts; Size is the world extent on X and Z and
// HeightScale the world height of a full-white sample. Origin is the world
// position of sample (0, 0). Seed == 0 uses a time-based seed.
// Octaves, Frequency, Lacunarity, and Gain shape the fractal noise; Shore is
// the radius, as a fraction of the half extent, where the island starts
// sinking into the sea.
type Options struct {
	Width       int
	Depth       int
	Size        float64
	HeightScale float64
	Origin      mgl64.Vec3

	Seed       int64
	Octaves    int
	Frequency  float32
	Lacunarity float32
	Gain       float32
	Shore      float32
}

// DefaultOptions returns an island about 3000 units across, centred near (512, 512).
func DefaultOptions() Options {
	return Options{
		Width:       129,
		Depth:       129,
		Size:        3072,
		HeightScale: 600,
		Origin:      mgl64.Vec3{-1024, 0, -1024},
		Seed:        7,
		Octaves:     5,
		Frequency:   0.035,
		Lacunarity:  2.0,
		Gain:        0.5,
		Shore:       0.45,
	}
}

// Heightmap is a grid of normalized heights in [0, 1].
type Heightmap struct {
	Width, Depth int
	Size        float64
	HeightScale float64
	Origin      mgl64.Vec3
	Heights     []float32
}

// Generate builds an island heightmap. Missing option values fall back to DefaultOptions.
func Generate(opts Options) *Heightmap {
	def := DefaultOptions()
	if opts.Width <= 1 {
		opts.Width = def.Width
	}
	if opts.Depth <= 1 {
		opts.Depth = def.Depth
	}
	if opts.Size <= 0 {
		opts.Size = def.Size
	}
	if opts.HeightScale <= 0 {
		opts.HeightScale = def.HeightScale
	}
	if opts.Octaves <= 0 {
		opts.Octaves = 1
	}
	if opts.Frequency <= 0 {
		opts.Frequency = 0.05
	}
	if opts.Lacunarity <= 0 {
		opts.Lacunarity = 2.0
	}
	if opts.Gain <= 0 {
		opts.Gain = 0.5
	}
	if opts.Shore <= 0 || opts.Shore >= 1 {
		opts.Shore = def.Shore
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	hm := &Heightmap{
		Width:       opts.Width,
		Depth:       opts.Depth,
		Size:        opts.Size,
		HeightScale: opts.HeightScale,
		Origin:      opts.Origin,
		Heights:     make([]float32, opts.Width*opts.Depth),
	}
	cx := float32(opts.Width-1) * 0.5
	cz := float32(opts.Depth-1) * 0.5
	for z := 0; z < opts.Depth; z++ {
		for x := 0; x < opts.Width; x++ {
			h := fractalValueNoise2D(float32(x)*opts.Frequency, float32(z)*opts.Frequency, seed, opts.Octaves, opts.Lacunarity, opts.Gain)
			dx := (float32(x) - cx) / cx
			dz := (float32(z) - cz) / cz
			r := math32.Sqrt(dx*dx + dz*dz)
			h *= 1 - smoothStep((r-opts.Shore)/(1-opts.Shore))
			if !isFinite(h) || h < 0 {
				h = 0
			}
			if h > 1 {
				h = 1
			}
			hm.Heights[z*opts.Width+x] = h
		}
	}
	return hm
}

// Step is the world distance between neighbouring samples.
func (h *Heightmap) Step() (dx, dz float64) {
	return h.Size / float64(h.Width-1), h.Size / float64(h.Depth-1)
}

// Sample returns the normalized height at grid (x, z), clamped to the grid.
func (h *Heightmap) Sample(x, z int) float32 {
	x = max(0, min(x, h.Width-1))
	z = max(0, min(z, h.Depth-1))
	return h.Heights[z*h.Width+x]
}

// HeightAt returns the bilinearly interpolated world height at (x, z).
// Points off the map are at sea level (0).
func (h *Heightmap) HeightAt(x, z float64) float64 {
	sx, sz := h.Step()
	fx := (x - h.Origin[0]) / sx
	fz := (z - h.Origin[2]) / sz
	if fx < 0 || fz < 0 || fx > float64(h.Width-1) || fz > float64(h.Depth-1) {
		return h.Origin[1]
	}
	x0, z0 := int(fx), int(fz)
	tx, tz := float32(fx-float64(x0)), float32(fz-float64(z0))
	top := lerp(h.Sample(x0, z0), h.Sample(x0+1, z0), tx)
	bottom := lerp(h.Sample(x0, z0+1), h.Sample(x0+1, z0+1), tx)
	return h.Origin[1] + float64(lerp(top, bottom, tz))*h.HeightScale
}

// Gray returns the heights as 8-bit grey levels, row-major, for building a
// heightmap image.
func (h *Heightmap) Gray() []uint8 {
	out := make([]uint8, len(h.Heights))
	for i, v := range h.Heights {
		out[i] = uint8(v * 255)
	}
	return out
}
