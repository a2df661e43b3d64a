// Package player turns movement intent into a velocity for the player body
// and keeps the first-person camera's look angles.
package player

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl64"
)

// MoveIntent is what the movement keys ask for this frame.
type MoveIntent struct {
	Forward, Back bool
	Left, Right   bool
	Up, Down      bool
	Fast          bool
}

// Moving reports whether any movement key is held.
func (m MoveIntent) Moving() bool {
	return m.Forward || m.Back || m.Left || m.Right || m.Up || m.Down
}

// Params tunes the controller.
type Params struct {
	// Speed is added per held direction key each frame.
	Speed float32
	// Damping scales the previous horizontal velocity each frame.
	Damping float32
	// FastFactor multiplies Speed while Fast is held.
	FastFactor float32
	// Climb is the vertical speed for Up and Down.
	Climb float32
	// EyeHeight lifts the camera above the body centre.
	EyeHeight float64
	// Clearance is the minimum camera height above the terrain.
	Clearance float64
}

// DefaultParams returns speed 30, damping 0.5 and a 30-unit ground clearance.
func DefaultParams() Params {
	return Params{
		Speed:      30,
		Damping:    0.5,
		FastFactor: 2,
		Climb:      30,
		EyeHeight:  20,
		Clearance:  30,
	}
}

// Velocity returns the player body's next linear velocity. Horizontal
// components decay by Damping and gain Speed along the camera yaw for each
// held key; the vertical component is kept unless Up or Down is held.
// Yaw 0 faces -Z.
func Velocity(in MoveIntent, yaw float32, current mgl64.Vec3, p Params) mgl64.Vec3 {
	vx := p.Damping * float32(current[0])
	vy := float32(current[1])
	vz := p.Damping * float32(current[2])

	speed := p.Speed
	if in.Fast && p.FastFactor > 0 {
		speed *= p.FastFactor
	}
	fx, fz := math32.Sin(yaw+math32.Pi), math32.Cos(yaw+math32.Pi)
	sx, sz := math32.Sin(yaw+math32.Pi+math32.Pi/2), math32.Cos(yaw+math32.Pi+math32.Pi/2)

	if in.Forward {
		vx += fx * speed
		vz += fz * speed
	}
	if in.Back {
		vx -= fx * speed
		vz -= fz * speed
	}
	if in.Left {
		vx += sx * speed
		vz += sz * speed
	}
	if in.Right {
		vx -= sx * speed
		vz -= sz * speed
	}
	if in.Up {
		vy = p.Climb
	}
	if in.Down {
		vy = -p.Climb
	}
	return mgl64.Vec3{float64(vx), float64(vy), float64(vz)}
}

// ClampToGround lifts pos so it stays at least clearance above ground.
func ClampToGround(pos mgl64.Vec3, ground, clearance float64) mgl64.Vec3 {
	if pos[1] < ground+clearance {
		pos[1] = ground + clearance
	}
	return pos
}
