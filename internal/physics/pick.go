package physics

import "github.com/go-gl/mathgl/mgl64"

// DefaultTau is how much of the pick error is corrected per step.
const DefaultTau = 0.1

// Pick is a point-to-point drag constraint between a body and a moving pivot.
type Pick struct {
	Body *Body
	// Local is the grabbed point relative to the body's centre.
	Local mgl64.Vec3
	// Pivot is where the grabbed point is pulled to.
	Pivot mgl64.Vec3
	// Distance from the ray origin to the grabbed point, kept while dragging.
	Distance float64
	Tau      float64
}

// StartPick grabs hit.Body at hit.Point. Any previous pick is released.
func (w *World) StartPick(hit Hit) *Pick {
	if hit.Body == nil || hit.Body.Static {
		return nil
	}
	w.pick = &Pick{
		Body:     hit.Body,
		Local:    hit.Point.Sub(hit.Body.Position),
		Pivot:    hit.Point,
		Distance: hit.Distance,
		Tau:      DefaultTau,
	}
	return w.pick
}

// DragPick moves the pivot along a new ray, keeping the grab distance.
func (w *World) DragPick(origin, dir mgl64.Vec3) {
	if w.pick == nil {
		return
	}
	w.pick.Pivot = origin.Add(dir.Normalize().Mul(w.pick.Distance))
}

// ReleasePick drops the constraint.
func (w *World) ReleasePick() {
	w.pick = nil
}

// Picked returns the active pick, if any.
func (w *World) Picked() (*Pick, bool) {
	return w.pick, w.pick != nil
}

func (p *Pick) apply(dt float64) {
	anchor := p.Body.Position.Add(p.Local)
	correction := p.Pivot.Sub(anchor).Mul(p.Tau / dt)
	p.Body.Velocity = p.Body.Velocity.Mul(1 - p.Tau).Add(correction)
}
