package physics

import "github.com/go-gl/mathgl/mgl64"

// Body is an axis-aligned box body. Static bodies never move and ignore gravity.
type Body struct {
	Name        string
	Position    mgl64.Vec3
	Velocity    mgl64.Vec3
	HalfExtents mgl64.Vec3
	Mass        float64
	Restitution float64
	Friction    float64
	Static      bool
	// LinearFactor scales gravity and motion per axis; (1,0,1) pins a body to its plane.
	LinearFactor mgl64.Vec3
}

// NewBody returns a dynamic body of the given half extents. Mass <= 0 becomes 1.
func NewBody(name string, position, halfExtents mgl64.Vec3, mass float64) *Body {
	if mass <= 0 {
		mass = 1
	}
	return &Body{
		Name:         name,
		Position:     position,
		HalfExtents:  halfExtents,
		Mass:         mass,
		LinearFactor: mgl64.Vec3{1, 1, 1},
	}
}

// NewStaticBody returns a body that other bodies collide with but which never moves.
func NewStaticBody(name string, position, halfExtents mgl64.Vec3) *Body {
	b := NewBody(name, position, halfExtents, 1)
	b.Static = true
	return b
}

// Min returns the lower corner of the body's box.
func (b *Body) Min() mgl64.Vec3 {
	return b.Position.Sub(b.HalfExtents)
}

// Max returns the upper corner of the body's box.
func (b *Body) Max() mgl64.Vec3 {
	return b.Position.Add(b.HalfExtents)
}

func (b *Body) factor(axis int) float64 {
	return b.LinearFactor[axis]
}
