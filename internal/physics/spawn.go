package physics

import (
	"fmt"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// PlayerName is the body name of the first-person player.
const PlayerName = "Player"

// BoxSpec describes the throwable box and fish bodies.
type BoxSpec struct {
	HalfExtents mgl64.Vec3
	Mass        float64
	Restitution float64
	Friction    float64
	// Speed is the launch speed of a thrown box.
	Speed float64
	// Offset is how far in front of the camera a box appears.
	Offset float64
}

// DefaultBoxSpec is a small crate of mass 5 thrown at 7 units per second.
func DefaultBoxSpec() BoxSpec {
	return BoxSpec{
		HalfExtents: mgl64.Vec3{2.4, 2.4, 2.4},
		Mass:        5,
		Restitution: 0.6,
		Friction:    0.6,
		Speed:       7,
		Offset:      10,
	}
}

// SpawnBox throws a new box from camPos along camDir and returns it.
func (w *World) SpawnBox(spec BoxSpec, camPos, camDir mgl64.Vec3) *Body {
	dir := camDir.Normalize()
	name := fmt.Sprintf("Box%d", w.nextID())
	b := NewBody(name, camPos.Add(dir.Mul(spec.Offset)), spec.HalfExtents, spec.Mass)
	b.Restitution = spec.Restitution
	b.Friction = spec.Friction
	b.Velocity = dir.Mul(spec.Speed)
	w.AddBody(b)
	return b
}

// FishSpawn places a school around Origin, scattered by up to Spread on X and Z.
type FishSpawn struct {
	Count  int
	Origin mgl64.Vec3
	Spread int
}

// DefaultFishSpawn is twenty fish near (1200, 250, 1240).
func DefaultFishSpawn() FishSpawn {
	return FishSpawn{Count: 20, Origin: mgl64.Vec3{1200, 250, 1240}, Spread: 20}
}

// SpawnFish adds the school and returns the body names in spawn order. Fish
// are pinned to their starting height.
func (w *World) SpawnFish(spec BoxSpec, fs FishSpawn, rng *rand.Rand) []string {
	spread := fs.Spread
	if spread <= 0 {
		spread = 1
	}
	names := make([]string, 0, fs.Count)
	for i := 0; i < fs.Count; i++ {
		pos := mgl64.Vec3{
			fs.Origin[0] + float64((i*rng.Intn(1<<15))%spread),
			fs.Origin[1],
			fs.Origin[2] + float64((i*rng.Intn(1<<15))%spread),
		}
		b := NewBody(fmt.Sprintf("Fish%d", i), pos, spec.HalfExtents, spec.Mass)
		b.Restitution = spec.Restitution
		b.Friction = spec.Friction
		b.LinearFactor = mgl64.Vec3{1, 0, 1}
		w.AddBody(b)
		names = append(names, b.Name)
	}
	return names
}

// SpawnPlayer adds the player body in front of the camera. The capsule of
// radius 10 and height 40 is approximated by its bounding box.
func (w *World) SpawnPlayer(camPos, camDir mgl64.Vec3) *Body {
	pos := camPos.Add(camDir.Normalize().Mul(10))
	b := NewBody(PlayerName, pos, mgl64.Vec3{10, 30, 10}, 30)
	b.Restitution = 0.6
	b.Friction = 0
	w.AddBody(b)
	return b
}

func (w *World) nextID() int {
	w.spawned++
	return w.spawned
}
