package player

import (
	"math"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl64"

	"island-demo/internal/vecmath"
)

func TestVelocity(t *testing.T) {
	p := DefaultParams()
	tests := []struct {
		name    string
		in      MoveIntent
		yaw     float32
		current mgl64.Vec3
		want    mgl64.Vec3
	}{
		{"damps only", MoveIntent{}, 0, mgl64.Vec3{10, -3, -8}, mgl64.Vec3{5, -3, -4}},
		{"forward at yaw 0", MoveIntent{Forward: true}, 0, mgl64.Vec3{}, mgl64.Vec3{0, 0, -30}},
		{"back at yaw 0", MoveIntent{Back: true}, 0, mgl64.Vec3{}, mgl64.Vec3{0, 0, 30}},
		{"left at yaw 0", MoveIntent{Left: true}, 0, mgl64.Vec3{}, mgl64.Vec3{-30, 0, 0}},
		{"right at yaw 0", MoveIntent{Right: true}, 0, mgl64.Vec3{}, mgl64.Vec3{30, 0, 0}},
		{"forward turned left", MoveIntent{Forward: true}, math32.Pi / 2, mgl64.Vec3{}, mgl64.Vec3{-30, 0, 0}},
		{"fast", MoveIntent{Forward: true, Fast: true}, 0, mgl64.Vec3{}, mgl64.Vec3{0, 0, -60}},
		{"up", MoveIntent{Up: true}, 0, mgl64.Vec3{0, -9, 0}, mgl64.Vec3{0, 30, 0}},
		{"opposites cancel", MoveIntent{Forward: true, Back: true}, 1, mgl64.Vec3{}, mgl64.Vec3{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Velocity(tc.in, tc.yaw, tc.current, p)
			if !vecmath.Near(got, tc.want, 1e-4) {
				t.Fatalf("Velocity = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestClampToGround(t *testing.T) {
	got := ClampToGround(mgl64.Vec3{1, 40, 2}, 20, 30)
	if got != (mgl64.Vec3{1, 50, 2}) {
		t.Fatalf("clamped = %v", got)
	}
	high := mgl64.Vec3{0, 90, 0}
	if ClampToGround(high, 20, 30) != high {
		t.Fatalf("high position was moved")
	}
}

func TestLook(t *testing.T) {
	var l Look
	if d := l.Direction(); !vecmath.Near(d, mgl64.Vec3{0, 0, -1}, 1e-6) {
		t.Fatalf("initial direction = %v", d)
	}
	// 600 px right at 0.15 deg/px is a 90 degree turn to the right.
	l.Turn(600, 0, DefaultSensitivity)
	if d := l.Direction(); !vecmath.Near(d, mgl64.Vec3{1, 0, 0}, 1e-5) {
		t.Fatalf("direction after turn = %v", d)
	}
	l.Turn(0, -100000, DefaultSensitivity)
	if float64(l.Pitch) > 89*math.Pi/180+1e-6 {
		t.Fatalf("pitch not clamped: %v", l.Pitch)
	}
	if d := l.Direction(); math.Abs(d.Len()-1) > 1e-5 {
		t.Fatalf("direction not unit: %v", d)
	}
}
