// Package flock steers a school of fish with a reduced boids rule set:
// cohesion toward the centre of mass, alignment with the average velocity,
// and short-range separation.
package flock

import (
	"github.com/go-gl/mathgl/mgl64"

	"island-demo/internal/vecmath"
)

// Agent is one flock member.
type Agent struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3
}

// Params tunes the separation rule.
type Params struct {
	// Radius is the distance at or below which a neighbour repels.
	Radius float64
	// Repulsion scales each repelling offset.
	Repulsion float64
}

// DefaultParams returns a radius of 10 and a repulsion of 3.
func DefaultParams() Params {
	return Params{Radius: 10, Repulsion: 3}
}

// Sample holds the three steering terms and the resulting velocity of one
// agent for one step, already normalized the way Step uses them.
type Sample struct {
	CentreOfMass    mgl64.Vec3 `json:"com"`
	AverageVelocity mgl64.Vec3 `json:"avv"`
	AvoidCollision  mgl64.Vec3 `json:"aco"`
	NewVelocity     mgl64.Vec3 `json:"nev"`
}

// Step rewrites the velocity of every agent in place, in slice order. Agent i
// averages the velocities already written for agents 0..i-1 and the old
// velocities of the rest. Cost is O(n²); there is no spatial partitioning.
func Step(agents []Agent, p Params) {
	StepObserved(agents, p, -1, nil)
}

// StepObserved is Step that also hands the terms computed for agents[watch]
// to observe. A negative watch or nil observe disables reporting.
func StepObserved(agents []Agent, p Params, watch int, observe func(Sample)) {
	n := len(agents)
	if n == 0 {
		return
	}
	radiusSq := p.Radius * p.Radius
	for i := range agents {
		self := agents[i]
		var com, avv, avoid mgl64.Vec3
		for j := range agents {
			if j == i {
				continue
			}
			other := agents[j]
			com = com.Add(other.Position)
			avv = avv.Add(other.Velocity)
			diff := other.Position.Sub(self.Position)
			if diff.Dot(diff) <= radiusSq {
				avoid = avoid.Sub(diff.Mul(p.Repulsion))
			}
		}
		if n > 1 {
			inv := 1 / float64(n-1)
			com = com.Mul(inv)
			avv = avv.Mul(inv)
		}

		s := Sample{
			CentreOfMass:    vecmath.Normalize(com),
			AverageVelocity: vecmath.Normalize(avv),
			AvoidCollision:  vecmath.Normalize(avoid),
		}
		s.NewVelocity = s.CentreOfMass.Add(s.AverageVelocity).Add(s.AvoidCollision)
		agents[i].Velocity = s.NewVelocity

		if i == watch && observe != nil {
			observe(s)
		}
	}
}
