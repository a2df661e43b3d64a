package pathing

import "github.com/go-gl/mathgl/mgl64"

// Queue is a FIFO of waypoints. The follower consumes it one point at a time
// and never refills it.
type Queue struct {
	points []mgl64.Vec3
}

// NewQueue returns a queue holding points in order.
func NewQueue(points ...mgl64.Vec3) *Queue {
	q := &Queue{points: make([]mgl64.Vec3, 0, len(points))}
	q.points = append(q.points, points...)
	return q
}

// Push appends p to the back of the queue.
func (q *Queue) Push(p mgl64.Vec3) {
	q.points = append(q.points, p)
}

// Pop removes and returns the front point. ok is false when the queue is empty.
func (q *Queue) Pop() (p mgl64.Vec3, ok bool) {
	if len(q.points) == 0 {
		return mgl64.Vec3{}, false
	}
	p = q.points[0]
	q.points = q.points[1:]
	return p, true
}

// Len returns the number of points still queued.
func (q *Queue) Len() int {
	return len(q.points)
}

// Points returns a copy of the queued points, front first.
func (q *Queue) Points() []mgl64.Vec3 {
	out := make([]mgl64.Vec3, len(q.points))
	copy(out, q.points)
	return out
}
