package physics

import (
	"github.com/go-gl/mathgl/mgl64"
)

const (
	// restingSpeed is the impact speed below which a ground contact stops instead of bouncing.
	restingSpeed = 1.0
	// groundFrictionRate converts combined friction into tangential damping per second.
	groundFrictionRate = 10.0
)

// HeightFunc returns the terrain height under (x, z).
type HeightFunc func(x, z float64) float64

// Ground is the static floor: a plane at Level, raised by Height where it is set.
type Ground struct {
	Level       float64
	Restitution float64
	Friction    float64
	Height      HeightFunc
}

// DefaultGround is the water bed plane at Y=10.
func DefaultGround() Ground {
	return Ground{Level: 10, Restitution: 0.1, Friction: 0.8}
}

// FloorAt returns the ground height under (x, z).
func (g Ground) FloorAt(x, z float64) float64 {
	floor := g.Level
	if g.Height != nil {
		if h := g.Height(x, z); h > floor {
			floor = h
		}
	}
	return floor
}

// World holds a set of bodies and runs a simple 3D physics step: gravity,
// integration, ground contact and AABB push-apart.
type World struct {
	Gravity mgl64.Vec3
	Ground  Ground
	Bodies  []*Body

	byName  map[string]*Body
	pick    *Pick
	spawned int
}

// NewWorld returns a world with gravity (0, -9.8, 0) and the default ground.
func NewWorld() *World {
	return &World{
		Gravity: mgl64.Vec3{0, -9.8, 0},
		Ground:  DefaultGround(),
		byName:  make(map[string]*Body),
	}
}

// AddBody appends b. A body with the same name replaces the earlier one in lookups.
func (w *World) AddBody(b *Body) {
	w.Bodies = append(w.Bodies, b)
	if b.Name != "" {
		w.byName[b.Name] = b
	}
}

// RemoveBody drops the named body and releases any pick holding it.
func (w *World) RemoveBody(name string) bool {
	b, ok := w.byName[name]
	if !ok {
		return false
	}
	delete(w.byName, name)
	for i, other := range w.Bodies {
		if other == b {
			w.Bodies = append(w.Bodies[:i], w.Bodies[i+1:]...)
			break
		}
	}
	if w.pick != nil && w.pick.Body == b {
		w.pick = nil
	}
	return true
}

// Body returns the named body.
func (w *World) Body(name string) (*Body, bool) {
	b, ok := w.byName[name]
	return b, ok
}

// Position returns the named body's position.
func (w *World) Position(name string) (mgl64.Vec3, bool) {
	b, ok := w.byName[name]
	if !ok {
		return mgl64.Vec3{}, false
	}
	return b.Position, true
}

// Velocity returns the named body's linear velocity.
func (w *World) Velocity(name string) (mgl64.Vec3, bool) {
	b, ok := w.byName[name]
	if !ok {
		return mgl64.Vec3{}, false
	}
	return b.Velocity, true
}

// SetVelocity sets the named body's linear velocity, masked by its linear factor.
func (w *World) SetVelocity(name string, v mgl64.Vec3) bool {
	b, ok := w.byName[name]
	if !ok || b.Static {
		return false
	}
	b.Velocity = mgl64.Vec3{v[0] * b.factor(0), v[1] * b.factor(1), v[2] * b.factor(2)}
	return true
}

// Step advances the simulation by dt seconds.
func (w *World) Step(dt float64) {
	if dt <= 0 {
		return
	}
	if w.pick != nil {
		w.pick.apply(dt)
	}

	for _, b := range w.Bodies {
		if b.Static {
			continue
		}
		for a := 0; a < 3; a++ {
			b.Velocity[a] += w.Gravity[a] * dt * b.factor(a)
			b.Position[a] += b.Velocity[a] * dt * b.factor(a)
		}
		w.groundContact(b, dt)
	}

	// Resolve overlapping pairs along the axis of least penetration.
	for i := 0; i < len(w.Bodies); i++ {
		bi := w.Bodies[i]
		for j := i + 1; j < len(w.Bodies); j++ {
			bj := w.Bodies[j]
			if bi.Static && bj.Static {
				continue
			}
			depth, axis := penetrationAxis(bi, bj)
			if axis < 0 {
				continue
			}
			sign := 1.0
			if bj.Position[axis] < bi.Position[axis] {
				sign = -1
			}
			var moveI, moveJ float64
			switch {
			case bi.Static:
				moveJ = depth
			case bj.Static:
				moveI = -depth
			default:
				total := bi.Mass + bj.Mass
				moveI = -depth * (bj.Mass / total)
				moveJ = depth * (bi.Mass / total)
			}
			if !bi.Static {
				bi.Position[axis] += sign * moveI * bi.factor(axis)
				bi.Velocity[axis] = 0
			}
			if !bj.Static {
				bj.Position[axis] += sign * moveJ * bj.factor(axis)
				bj.Velocity[axis] = 0
			}
		}
	}
}

// groundContact keeps b above the floor, bouncing by the combined
// restitution and damping sliding by the combined friction.
func (w *World) groundContact(b *Body, dt float64) {
	if b.factor(1) == 0 {
		return
	}
	floor := w.Ground.FloorAt(b.Position[0], b.Position[2])
	bottom := b.Position[1] - b.HalfExtents[1]
	if bottom >= floor {
		return
	}
	b.Position[1] = floor + b.HalfExtents[1]
	if b.Velocity[1] < 0 {
		bounce := -b.Velocity[1] * b.Restitution * w.Ground.Restitution
		if bounce < restingSpeed {
			bounce = 0
		}
		b.Velocity[1] = bounce
	}
	k := b.Friction * w.Ground.Friction * groundFrictionRate * dt
	if k > 1 {
		k = 1
	}
	b.Velocity[0] *= 1 - k
	b.Velocity[2] *= 1 - k
}

// penetrationAxis returns the overlap depth and axis index (0=X, 1=Y, 2=Z)
// of minimum penetration, or (0, -1) when the boxes do not overlap.
func penetrationAxis(a, b *Body) (depth float64, axis int) {
	amin, amax := a.Min(), a.Max()
	bmin, bmax := b.Min(), b.Max()
	axis = -1
	for k := 0; k < 3; k++ {
		overlap := min(amax[k], bmax[k]) - max(amin[k], bmin[k])
		if overlap <= 0 {
			return 0, -1
		}
		if axis < 0 || overlap < depth {
			depth, axis = overlap, k
		}
	}
	return depth, axis
}
