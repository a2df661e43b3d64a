// Package sky drives the day/night cycle: a scaled clock and the sun
// direction and colours derived from it.
package sky

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"island-demo/internal/vecmath"
)

// SecondsPerDay is the length of one simulated day.
const SecondsPerDay = 86400.0

// DefaultTimeScale is simulated seconds per real second.
const DefaultTimeScale = 64.0

// SunDistance is how far from the camera the sun is placed for water reflections.
const SunDistance = 80000.0

// sunTilt pushes the sun path off the zenith toward +Z.
const sunTilt = 0.35

var (
	dayLight   = mgl64.Vec3{1.0, 0.96, 0.88}
	duskLight  = mgl64.Vec3{1.0, 0.55, 0.3}
	nightLight = mgl64.Vec3{0.08, 0.1, 0.2}

	daySky   = mgl64.Vec3{0.45, 0.7, 0.95}
	duskSky  = mgl64.Vec3{0.85, 0.5, 0.35}
	nightSky = mgl64.Vec3{0.02, 0.03, 0.08}

	ambientFloor = mgl64.Vec3{0.05, 0.05, 0.1}
)

// Clock is the sky's time of day as a fraction of a day in [0, 1).
// 0.25 is sunrise and 0.5 is noon.
type Clock struct {
	TimeOfDay float64
	Speed     float64
	Paused    bool
}

// NewClock starts at the given time of day running at DefaultTimeScale.
func NewClock(start float64) *Clock {
	c := &Clock{Speed: DefaultTimeScale}
	c.Set(start)
	return c
}

// Set jumps to time of day t, wrapped into [0, 1).
func (c *Clock) Set(t float64) {
	t = math.Mod(t, 1)
	if t < 0 {
		t++
	}
	c.TimeOfDay = t
}

// SetSpeedFactor sets the time scale used while running.
func (c *Clock) SetSpeedFactor(f float64) {
	c.Speed = f
}

// TimeScale is the effective scale: Speed while running, 0 while paused.
func (c *Clock) TimeScale() float64 {
	if c.Paused {
		return 0
	}
	return c.Speed
}

// Advance moves the clock by dt real seconds.
func (c *Clock) Advance(dt float64) {
	c.Set(c.TimeOfDay + dt*c.TimeScale()/SecondsPerDay)
}

// ToSun is the unit vector from the ground toward the sun.
func (c *Clock) ToSun() mgl64.Vec3 {
	a := 2 * math.Pi * (c.TimeOfDay - 0.25)
	return vecmath.Normalize(mgl64.Vec3{math.Cos(a), math.Sin(a), sunTilt})
}

// SunDirection is the direction sunlight travels.
func (c *Clock) SunDirection() mgl64.Vec3 {
	return c.ToSun().Mul(-1)
}

// SunPosition places the sun far from the camera along the light direction.
func (c *Clock) SunPosition(camera mgl64.Vec3) mgl64.Vec3 {
	return camera.Sub(c.SunDirection().Mul(SunDistance))
}

// Elevation is the height of the sun above the horizon as a sine, in [-1, 1].
func (c *Clock) Elevation() float64 {
	return c.ToSun()[1]
}

// SunColour is the colour of direct sunlight.
func (c *Clock) SunColour() mgl64.Vec3 {
	return blend(c.Elevation(), nightLight, duskLight, dayLight)
}

// AmbientColour is the fill light.
func (c *Clock) AmbientColour() mgl64.Vec3 {
	return c.SunColour().Mul(0.35).Add(ambientFloor)
}

// SkyColour is the clear colour of the sky dome.
func (c *Clock) SkyColour() mgl64.Vec3 {
	return blend(c.Elevation(), nightSky, duskSky, daySky)
}

// String formats the time of day as HH:MM.
func (c *Clock) String() string {
	minutes := int(c.TimeOfDay * 24 * 60)
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// blend picks a colour by sun elevation: night below -0.15, day above 0.3,
// dusk at the horizon and linear in between.
func blend(e float64, night, dusk, day mgl64.Vec3) mgl64.Vec3 {
	switch {
	case e >= 0.3:
		return day
	case e >= 0:
		return lerp(dusk, day, e/0.3)
	case e >= -0.15:
		return lerp(night, dusk, (e+0.15)/0.15)
	default:
		return night
	}
}

func lerp(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	t = mgl64.Clamp(t, 0, 1)
	return a.Add(b.Sub(a).Mul(t))
}
