package trace

import "github.com/go-gl/mathgl/mgl64"

// Kind tags a trace entry.
type Kind string

const (
	KindFlock Kind = "flock"
	KindRobot Kind = "robot"
	KindBox   Kind = "box"
)

// Entry is one trace line.
type Entry struct {
	Tick  uint64  `json:"tick"`
	Time  float64 `json:"t"`
	Kind  Kind    `json:"kind"`
	Name  string  `json:"name,omitempty"`
	Event string  `json:"event,omitempty"`

	Position *mgl64.Vec3 `json:"pos,omitempty"`

	CentreOfMass    *mgl64.Vec3 `json:"com,omitempty"`
	AverageVelocity *mgl64.Vec3 `json:"avv,omitempty"`
	AvoidCollision  *mgl64.Vec3 `json:"aco,omitempty"`
	NewVelocity     *mgl64.Vec3 `json:"nev,omitempty"`
}
