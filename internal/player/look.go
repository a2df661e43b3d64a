package player

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl64"
)

// DefaultSensitivity is degrees of rotation per pixel of mouse motion.
const DefaultSensitivity = 0.15

// maxPitch keeps the camera just short of straight up or down.
var maxPitch = 89 * math32.Pi / 180

// Look holds the first-person camera angles in radians. Yaw 0 faces -Z and
// grows counter-clockwise seen from above.
type Look struct {
	Yaw   float32
	Pitch float32
}

// Turn applies a mouse delta in pixels at sensitivity degrees per pixel.
func (l *Look) Turn(dx, dy, sensitivity float32) {
	rad := sensitivity * math32.Pi / 180
	l.Yaw -= dx * rad
	l.Pitch -= dy * rad
	if l.Pitch > maxPitch {
		l.Pitch = maxPitch
	}
	if l.Pitch < -maxPitch {
		l.Pitch = -maxPitch
	}
	l.Yaw = math32.Mod(l.Yaw, 2*math32.Pi)
}

// Direction is the unit view vector.
func (l Look) Direction() mgl64.Vec3 {
	cp := math32.Cos(l.Pitch)
	return mgl64.Vec3{
		float64(-math32.Sin(l.Yaw) * cp),
		float64(math32.Sin(l.Pitch)),
		float64(-math32.Cos(l.Yaw) * cp),
	}
}
