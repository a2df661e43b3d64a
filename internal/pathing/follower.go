package pathing

import (
	"github.com/go-gl/mathgl/mgl64"

	"island-demo/internal/vecmath"
)

// reverseThreshold is how close 1+dot(forward, dir) must get to zero before
// the turn is treated as a half turn about Y.
const reverseThreshold = 1e-4

// Animation is the clip change a follower step asks the caller to make.
type Animation int

const (
	// AnimNone leaves the current clip playing.
	AnimNone Animation = iota
	// AnimWalk starts the looping walk clip.
	AnimWalk
	// AnimIdle starts the looping idle clip.
	AnimIdle
)

func (a Animation) String() string {
	switch a {
	case AnimWalk:
		return "Walk"
	case AnimIdle:
		return "Idle"
	default:
		return "None"
	}
}

// State is the active leg of a path. A zero Direction means no leg is active.
type State struct {
	Direction   mgl64.Vec3
	Remaining   float64
	Destination mgl64.Vec3
}

// Idle reports whether no leg is active.
func (s *State) Idle() bool {
	return vecmath.IsZero(s.Direction)
}

// Step is the result of one Advance call.
type Step struct {
	Position    mgl64.Vec3
	Orientation mgl64.Quat
	Arrived     bool
	Animation   Animation
}

// FetchNext pops the next waypoint and starts a leg toward it from pos.
// It returns false and leaves state untouched when q is empty.
func FetchNext(state *State, q *Queue, pos mgl64.Vec3) bool {
	dest, ok := q.Pop()
	if !ok {
		return false
	}
	diff := dest.Sub(pos)
	state.Destination = dest
	state.Direction = vecmath.Normalize(diff)
	state.Remaining = diff.Len()
	return true
}

// Advance moves pos along the active leg by walkSpeed*dt. On arrival it snaps
// to the destination, fetches the next leg and yaws the orientation to face it,
// or reports AnimIdle when the queue is exhausted. With no active leg it
// returns pos and orientation unchanged.
func Advance(state *State, q *Queue, pos mgl64.Vec3, orientation mgl64.Quat, walkSpeed, dt float64) Step {
	step := Step{Position: pos, Orientation: orientation}
	if state.Idle() {
		return step
	}
	move := walkSpeed * dt
	state.Remaining -= move
	if state.Remaining > 0 {
		step.Position = pos.Add(state.Direction.Mul(move))
		return step
	}

	step.Position = state.Destination
	step.Arrived = true
	state.Direction = mgl64.Vec3{}
	state.Remaining = 0

	if !FetchNext(state, q, step.Position) {
		step.Animation = AnimIdle
		return step
	}
	step.Orientation = turnToward(orientation, state.Direction)
	return step
}

// turnToward yaws orientation so its forward axis faces dir.
func turnToward(orientation mgl64.Quat, dir mgl64.Vec3) mgl64.Quat {
	if vecmath.IsZero(dir) {
		return orientation
	}
	forward := vecmath.Forward(orientation)
	if 1+forward.Dot(dir) < reverseThreshold {
		return vecmath.Yaw(mgl64.DegToRad(180)).Mul(orientation).Normalize()
	}
	return vecmath.ShortestYaw(forward, dir).Mul(orientation).Normalize()
}
