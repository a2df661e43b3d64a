package pathing

import "github.com/go-gl/mathgl/mgl64"

// Node is the scene node a Follower drives.
type Node interface {
	Position() mgl64.Vec3
	SetPosition(mgl64.Vec3)
	Orientation() mgl64.Quat
	SetOrientation(mgl64.Quat)
}

// Config tunes a Follower.
type Config struct {
	WalkSpeed float64
	// Loop re-queues every reached waypoint so the path repeats.
	Loop bool
}

// DefaultConfig walks at 35 units per second, once.
func DefaultConfig() Config {
	return Config{WalkSpeed: 35}
}

// Follower owns a waypoint queue and walks a Node along it, one call per frame.
type Follower struct {
	Config
	queue *Queue
	state State
}

// NewFollower returns a follower that will walk points in order.
func NewFollower(points []mgl64.Vec3, cfg Config) *Follower {
	return &Follower{Config: cfg, queue: NewQueue(points...)}
}

// State returns a copy of the active leg.
func (f *Follower) State() State {
	return f.state
}

// Pending returns the number of waypoints not yet started.
func (f *Follower) Pending() int {
	return f.queue.Len()
}

// Tick advances n by dt seconds. When no leg is active it only tries to start
// one and reports AnimWalk on success; the node moves from the next tick on.
func (f *Follower) Tick(n Node, dt float64) Step {
	pos := n.Position()
	if f.state.Idle() {
		if FetchNext(&f.state, f.queue, pos) && !f.state.Idle() {
			return Step{Position: pos, Orientation: n.Orientation(), Animation: AnimWalk}
		}
		return Step{Position: pos, Orientation: n.Orientation()}
	}

	dest := f.state.Destination
	step := Advance(&f.state, f.queue, pos, n.Orientation(), f.WalkSpeed, dt)
	if step.Arrived && f.Loop {
		f.queue.Push(dest)
		if step.Animation == AnimIdle && FetchNext(&f.state, f.queue, step.Position) && !f.state.Idle() {
			step.Animation = AnimNone
			step.Orientation = turnToward(step.Orientation, f.state.Direction)
		}
	}
	n.SetPosition(step.Position)
	n.SetOrientation(step.Orientation)
	return step
}
