package vecmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// UnitX is the model-space forward axis of every animated mesh in the scene.
var UnitX = mgl64.Vec3{1, 0, 0}

// UnitY is world up.
var UnitY = mgl64.Vec3{0, 1, 0}

// epsilon below which a vector length is treated as zero.
const epsilon = 1e-12

// Normalize returns v scaled to unit length. A zero (or near-zero) vector
// comes back as the zero vector instead of NaN.
func Normalize(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l < epsilon || !IsFinite(v) {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}

// Flatten drops the Y component.
func Flatten(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v[0], 0, v[2]}
}

// IsZero reports whether every component of v is exactly zero.
func IsZero(v mgl64.Vec3) bool {
	return v[0] == 0 && v[1] == 0 && v[2] == 0
}

// IsFinite reports whether v has no NaN or Inf components.
func IsFinite(v mgl64.Vec3) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Near reports whether every component of a and b differs by at most tol.
// The tolerance stays absolute when a component is zero.
func Near(a, b mgl64.Vec3, tol float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

// Forward returns the world-space direction the +X axis points to under q.
func Forward(q mgl64.Quat) mgl64.Vec3 {
	return q.Rotate(UnitX)
}

// Yaw returns a rotation of angle radians about world Y.
func Yaw(angle float64) mgl64.Quat {
	return mgl64.QuatRotate(angle, UnitY)
}

// ShortestYaw returns the rotation about Y that turns from into to, ignoring
// pitch. If either vector has no horizontal component the identity is returned.
func ShortestYaw(from, to mgl64.Vec3) mgl64.Quat {
	f := Normalize(Flatten(from))
	t := Normalize(Flatten(to))
	if IsZero(f) || IsZero(t) {
		return mgl64.QuatIdent()
	}
	return mgl64.QuatBetweenVectors(f, t)
}
