package flock

import "github.com/go-gl/mathgl/mgl64"

// VelocitySource is the physics side of the flock: named bodies whose
// position and linear velocity can be read and whose velocity can be set.
type VelocitySource interface {
	Position(name string) (mgl64.Vec3, bool)
	Velocity(name string) (mgl64.Vec3, bool)
	SetVelocity(name string, v mgl64.Vec3) bool
}

// Simulator runs Step over a fixed set of physics bodies each tick.
type Simulator struct {
	Params Params
	// Watch is the index of the member whose terms go to Observe; -1 disables it.
	Watch   int
	Observe func(member string, s Sample)

	members []string
	agents  []Agent
	last    Sample
	hasLast bool
}

// NewSimulator returns a simulator over the named bodies, in order.
func NewSimulator(members []string, p Params) *Simulator {
	m := make([]string, len(members))
	copy(m, members)
	return &Simulator{
		Params:  p,
		Watch:   -1,
		members: m,
		agents:  make([]Agent, 0, len(m)),
	}
}

// Members returns the body names driven by the simulator.
func (s *Simulator) Members() []string {
	out := make([]string, len(s.members))
	copy(out, s.members)
	return out
}

// Last returns the most recent sample for the watched member.
func (s *Simulator) Last() (Sample, bool) {
	return s.last, s.hasLast
}

// Tick gathers every member still present in src, steps the flock and writes
// the new velocities back. Members missing from src are skipped.
func (s *Simulator) Tick(src VelocitySource) {
	s.agents = s.agents[:0]
	names := make([]string, 0, len(s.members))
	watch := -1
	for i, name := range s.members {
		pos, ok := src.Position(name)
		if !ok {
			continue
		}
		vel, _ := src.Velocity(name)
		if i == s.Watch {
			watch = len(s.agents)
		}
		s.agents = append(s.agents, Agent{Position: pos, Velocity: vel})
		names = append(names, name)
	}

	StepObserved(s.agents, s.Params, watch, func(sample Sample) {
		s.last, s.hasLast = sample, true
		if s.Observe != nil {
			s.Observe(names[watch], sample)
		}
	})

	for i, name := range names {
		src.SetVelocity(name, s.agents[i].Velocity)
	}
}
