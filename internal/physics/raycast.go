package physics

import (
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl64"

	"island-demo/internal/vecmath"
)

// Hit is the nearest body a ray touched.
type Hit struct {
	Body     *Body
	Point    mgl64.Vec3
	Distance float64
}

// Raycast returns the nearest dynamic body whose box the ray enters within
// maxDist. Bodies containing the origin are skipped so a ray cast from inside
// the player never hits the player. Bodies named in skip are ignored.
func (w *World) Raycast(origin, dir mgl64.Vec3, maxDist float64, skip ...string) (Hit, bool) {
	dir = vecmath.Normalize(dir)
	if vecmath.IsZero(dir) {
		return Hit{}, false
	}
	best := Hit{Distance: maxDist}
	found := false
	for _, b := range w.Bodies {
		if b.Static || slices.Contains(skip, b.Name) {
			continue
		}
		t, ok := rayBox(origin, dir, b.Min(), b.Max())
		if !ok || t > best.Distance {
			continue
		}
		best = Hit{Body: b, Point: origin.Add(dir.Mul(t)), Distance: t}
		found = true
	}
	return best, found
}

// rayBox is the slab test. It reports the entry distance of a ray with unit
// direction dir into the box [lo, hi]; entries behind the origin miss.
func rayBox(origin, dir, lo, hi mgl64.Vec3) (float64, bool) {
	tmin, tmax := math.Inf(-1), math.Inf(1)
	for a := 0; a < 3; a++ {
		if dir[a] == 0 {
			if origin[a] < lo[a] || origin[a] > hi[a] {
				return 0, false
			}
			continue
		}
		inv := 1 / dir[a]
		t1 := (lo[a] - origin[a]) * inv
		t2 := (hi[a] - origin[a]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}
	if tmin < 0 {
		return 0, false
	}
	return tmin, true
}
