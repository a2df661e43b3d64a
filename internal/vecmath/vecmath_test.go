package vecmath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   mgl64.Vec3
		want mgl64.Vec3
	}{
		{"zero", mgl64.Vec3{}, mgl64.Vec3{}},
		{"axis", mgl64.Vec3{0, 0, -4}, mgl64.Vec3{0, 0, -1}},
		{"diagonal", mgl64.Vec3{3, 4, 0}, mgl64.Vec3{0.6, 0.8, 0}},
		{"nan", mgl64.Vec3{math.NaN(), 1, 0}, mgl64.Vec3{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.in)
			if !Near(got, tc.want, 1e-12) {
				t.Fatalf("Normalize(%v) = %v, want %v", tc.in, got, tc.want)
			}
			if !IsFinite(got) {
				t.Fatalf("Normalize(%v) produced non-finite %v", tc.in, got)
			}
		})
	}
}

func TestShortestYawIgnoresPitch(t *testing.T) {
	from := mgl64.Vec3{1, 0, 0}
	to := mgl64.Vec3{0, 5, -1}
	q := ShortestYaw(from, to)
	got := q.Rotate(from)
	if !Near(got, mgl64.Vec3{0, 0, -1}, 1e-9) {
		t.Fatalf("rotated forward = %v, want (0,0,-1)", got)
	}
}

func TestShortestYawDegenerate(t *testing.T) {
	q := ShortestYaw(mgl64.Vec3{0, 1, 0}, mgl64.Vec3{1, 0, 0})
	if !q.ApproxEqualThreshold(mgl64.QuatIdent(), 1e-12) {
		t.Fatalf("vertical source should give identity, got %v", q)
	}
}

func TestYawHalfTurn(t *testing.T) {
	got := Forward(Yaw(math.Pi))
	if !Near(got, mgl64.Vec3{-1, 0, 0}, 1e-9) {
		t.Fatalf("forward after 180 yaw = %v", got)
	}
}

func TestNear(t *testing.T) {
	tests := []struct {
		name string
		a, b mgl64.Vec3
		want bool
	}{
		{"equal", mgl64.Vec3{1, 2, 3}, mgl64.Vec3{1, 2, 3}, true},
		{"tiny against zero", mgl64.Vec3{-1, 0, -1.2246e-16}, mgl64.Vec3{-1, 0, 0}, true},
		{"float32 sin pi", mgl64.Vec3{-2.62e-06, 0, -30}, mgl64.Vec3{0, 0, -30}, true},
		{"outside tol", mgl64.Vec3{0, 0, 1e-3}, mgl64.Vec3{}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Near(tc.a, tc.b, 1e-4); got != tc.want {
				t.Fatalf("Near(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}
