package flock

import (
	"fmt"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"island-demo/internal/vecmath"
)

func TestSingleAgentStops(t *testing.T) {
	agents := []Agent{{Position: mgl64.Vec3{5, 5, 5}, Velocity: mgl64.Vec3{1, 2, 3}}}
	Step(agents, DefaultParams())
	if agents[0].Velocity != (mgl64.Vec3{}) {
		t.Fatalf("lone agent velocity = %v, want zero", agents[0].Velocity)
	}
}

func TestEmptyFlock(t *testing.T) {
	Step(nil, DefaultParams())
}

func TestSeparationRadius(t *testing.T) {
	tests := []struct {
		name      string
		distance  float64
		wantAvoid bool
	}{
		{"inside", 5, true},
		{"boundary", 10, true},
		{"outside", 20, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			agents := []Agent{
				{Position: mgl64.Vec3{0, 0, 0}},
				{Position: mgl64.Vec3{tc.distance, 0, 0}},
			}
			var got Sample
			StepObserved(agents, DefaultParams(), 0, func(s Sample) { got = s })

			wantCoM := mgl64.Vec3{1, 0, 0}
			if !vecmath.Near(got.CentreOfMass, wantCoM, 1e-12) {
				t.Fatalf("centre of mass term = %v, want %v", got.CentreOfMass, wantCoM)
			}
			if got.AverageVelocity != (mgl64.Vec3{}) {
				t.Fatalf("average velocity term = %v, want zero", got.AverageVelocity)
			}
			want := mgl64.Vec3{1, 0, 0}
			if tc.wantAvoid {
				if !vecmath.Near(got.AvoidCollision, mgl64.Vec3{-1, 0, 0}, 1e-12) {
					t.Fatalf("avoid term = %v, want (-1,0,0)", got.AvoidCollision)
				}
				want = mgl64.Vec3{}
			} else if got.AvoidCollision != (mgl64.Vec3{}) {
				t.Fatalf("avoid term = %v, want zero", got.AvoidCollision)
			}
			if !vecmath.Near(agents[0].Velocity, want, 1e-12) {
				t.Fatalf("velocity = %v, want %v", agents[0].Velocity, want)
			}
		})
	}
}

func TestVelocityIsSumOfUnitTerms(t *testing.T) {
	agents := []Agent{
		{Position: mgl64.Vec3{0, 0, 0}, Velocity: mgl64.Vec3{0, 0, 1}},
		{Position: mgl64.Vec3{0, 50, 0}, Velocity: mgl64.Vec3{0, 0, 4}},
	}
	Step(agents, DefaultParams())
	want := mgl64.Vec3{0, 1, 1}
	if !vecmath.Near(agents[0].Velocity, want, 1e-12) {
		t.Fatalf("velocity = %v, want %v", agents[0].Velocity, want)
	}
	if l := agents[0].Velocity.Len(); math.Abs(l-math.Sqrt2) > 1e-12 {
		t.Fatalf("velocity length %v, want sqrt(2) (not re-normalized)", l)
	}
}

func TestStepReadsUpdatedVelocities(t *testing.T) {
	agents := []Agent{
		{Position: mgl64.Vec3{0, 0, 0}},
		{Position: mgl64.Vec3{50, 0, 0}},
	}
	var second Sample
	StepObserved(agents, DefaultParams(), 1, func(s Sample) { second = s })

	// Agent 0 heads for agent 1 and agent 1 aligns with that new heading.
	if want := (mgl64.Vec3{1, 0, 0}); agents[0].Velocity != want {
		t.Fatalf("agent 0 velocity = %v, want %v", agents[0].Velocity, want)
	}
	if want := (mgl64.Vec3{1, 0, 0}); second.AverageVelocity != want {
		t.Fatalf("agent 1 average velocity term = %v, want %v", second.AverageVelocity, want)
	}
	if want := (mgl64.Vec3{1, 0, 0}); agents[1].Velocity != want {
		t.Fatalf("agent 1 velocity = %v, want %v", agents[1].Velocity, want)
	}
}

func TestStepOrderMatters(t *testing.T) {
	base := []Agent{
		{Position: mgl64.Vec3{0, 0, 0}, Velocity: mgl64.Vec3{1, 0, 0}},
		{Position: mgl64.Vec3{4, 0, 1}, Velocity: mgl64.Vec3{0, 0, 1}},
		{Position: mgl64.Vec3{-3, 0, 8}, Velocity: mgl64.Vec3{0, 1, 0}},
	}
	forward := append([]Agent(nil), base...)
	Step(forward, DefaultParams())

	reversed := []Agent{base[2], base[1], base[0]}
	Step(reversed, DefaultParams())

	if vecmath.Near(forward[1].Velocity, reversed[1].Velocity, 1e-9) {
		t.Fatalf("middle agent ignored the order of updates: %v", forward[1].Velocity)
	}
}

func TestDeterministic(t *testing.T) {
	run := func() []Agent {
		agents := make([]Agent, 20)
		for i := range agents {
			agents[i].Position = mgl64.Vec3{1200 + float64(i*7%20), 250, 1240 + float64(i*13%20)}
		}
		for k := 0; k < 50; k++ {
			Step(agents, DefaultParams())
			for i := range agents {
				agents[i].Position = agents[i].Position.Add(agents[i].Velocity.Mul(0.1))
			}
		}
		return agents
	}
	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("agent %d differs between runs: %+v vs %+v", i, a[i], b[i])
		}
		if !vecmath.IsFinite(a[i].Velocity) || !vecmath.IsFinite(a[i].Position) {
			t.Fatalf("agent %d not finite: %+v", i, a[i])
		}
	}
}

func TestCoincidentAgentsStayFinite(t *testing.T) {
	agents := []Agent{{}, {}, {}}
	Step(agents, DefaultParams())
	for i, a := range agents {
		if a.Velocity != (mgl64.Vec3{}) {
			t.Fatalf("agent %d velocity = %v, want zero", i, a.Velocity)
		}
	}
}

type fakeBodies struct {
	pos map[string]mgl64.Vec3
	vel map[string]mgl64.Vec3
}

func (f *fakeBodies) Position(name string) (mgl64.Vec3, bool) {
	p, ok := f.pos[name]
	return p, ok
}

func (f *fakeBodies) Velocity(name string) (mgl64.Vec3, bool) {
	v, ok := f.vel[name]
	return v, ok
}

func (f *fakeBodies) SetVelocity(name string, v mgl64.Vec3) bool {
	if _, ok := f.pos[name]; !ok {
		return false
	}
	f.vel[name] = v
	return true
}

func TestSimulatorWritesBack(t *testing.T) {
	src := &fakeBodies{pos: map[string]mgl64.Vec3{}, vel: map[string]mgl64.Vec3{}}
	names := make([]string, 4)
	for i := range names {
		names[i] = fmt.Sprintf("fish%d", i)
		src.pos[names[i]] = mgl64.Vec3{float64(i) * 30, 0, 0}
	}
	sim := NewSimulator(append(names, "missing"), DefaultParams())
	sim.Watch = 2
	var watched string
	sim.Observe = func(member string, _ Sample) { watched = member }
	sim.Tick(src)

	if watched != "fish2" {
		t.Fatalf("observed %q, want fish2", watched)
	}
	if _, ok := sim.Last(); !ok {
		t.Fatalf("no sample recorded")
	}
	if v := src.vel["fish0"]; !vecmath.Near(v, mgl64.Vec3{1, 0, 0}, 1e-12) {
		t.Fatalf("fish0 velocity = %v, want (1,0,0)", v)
	}
	if _, ok := src.vel["missing"]; ok {
		t.Fatalf("missing member got a velocity")
	}
}
