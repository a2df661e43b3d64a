package scene

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"

	"island-demo/internal/anim"
	"island-demo/internal/engineconfig"
	"island-demo/internal/entity"
	"island-demo/internal/game"
	"island-demo/internal/primitives"
)

// Entity sizes in island units.
var (
	robotBody  = mgl64.Vec3{16, 30, 16}
	robotHead  = 12.0
	knotSize   = 100.0
	trunkSize  = mgl64.Vec3{6, 60, 6}
	crownSize  = mgl64.Vec3{40, 12, 40}
	swayAngle  = 0.08
	walkBob    = 1.5
	pivotWidth = 2.0
)

func (s *Scene) drawEntities(g *game.Game) {
	for _, n := range g.Graph.OfKind(entity.KindKnot) {
		size := n.Scale.Mul(knotSize)
		s.drawShape(primitives.Sphere, n.Position(), size, mgl64.QuatIdent(), knotColour)
	}
	for _, n := range g.Graph.OfKind(entity.KindPalm) {
		s.drawPalm(g, n)
	}
	if n, ok := g.Graph.Get(game.RobotName); ok {
		s.drawRobot(g, n)
	}
	for _, n := range g.Graph.OfKind(entity.KindFish) {
		b, ok := g.World.Body(n.Name)
		if !ok {
			continue
		}
		s.drawShape(primitives.Cube, n.Position(), b.HalfExtents.Mul(2), n.Orientation(), fishColour)
	}
	for _, n := range g.Graph.OfKind(entity.KindBox) {
		s.drawShape(primitives.Cube, n.Position(), n.Scale, mgl64.QuatIdent(), boxColour)
	}
}

func (s *Scene) drawRobot(g *game.Game, n *entity.Node) {
	pos := n.Position()
	if st, ok := g.Anims.Get(game.RobotName); ok && st.Clip == anim.Walk {
		pos = pos.Add(mgl64.Vec3{0, walkBob * math.Sin(2*math.Pi*st.Phase()), 0})
	}
	rot := n.Orientation()
	s.drawShape(primitives.Cylinder, pos.Add(mgl64.Vec3{0, robotBody[1] / 2, 0}), robotBody, rot, robotColour)
	head := pos.Add(mgl64.Vec3{0, robotBody[1] + robotHead/2, 0})
	s.drawShape(primitives.Sphere, head, mgl64.Vec3{robotHead, robotHead, robotHead}, rot, robotColour)
	// A nose shows which way the robot faces.
	nose := head.Add(rot.Rotate(mgl64.Vec3{robotHead / 2, 0, 0}))
	s.drawShape(primitives.Sphere, nose, mgl64.Vec3{4, 4, 4}, rot, knotColour)
}

func (s *Scene) drawPalm(g *game.Game, n *entity.Node) {
	base := n.Position()
	angle := 0.0
	if st, ok := g.Anims.Get(n.Name); ok && st.Enabled {
		angle = swayAngle * math.Sin(2*math.Pi*st.Phase())
	}
	sway := mgl64.QuatRotate(angle, mgl64.Vec3{0, 0, 1})
	trunkMid := base.Add(sway.Rotate(mgl64.Vec3{0, trunkSize[1] / 2, 0}))
	s.drawShape(primitives.Cylinder, trunkMid, trunkSize, sway, trunkColour)
	top := base.Add(sway.Rotate(mgl64.Vec3{0, trunkSize[1], 0}))
	s.drawShape(primitives.Sphere, top, crownSize, sway, crownColour)
}

func (s *Scene) drawPick(g *game.Game) {
	p, ok := g.World.Picked()
	if !ok {
		return
	}
	anchor := p.Body.Position.Add(p.Local)
	rl.DrawLine3D(toRender(anchor), toRender(p.Pivot), pickColour)
	rl.DrawSphere(toRender(p.Pivot), float32(pivotWidth*worldScale), pickColour)
}

// drawShape draws one entity part of size island units at pos, honouring the render mode.
func (s *Scene) drawShape(shape primitives.Shape, pos, size mgl64.Vec3, rot mgl64.Quat, tint rl.Color) {
	switch s.Mode {
	case engineconfig.Points:
		rl.DrawPoint3D(toRender(pos), tint)
	case engineconfig.Wireframe:
		rl.DrawCubeWiresV(toRender(pos), toRender(size), tint)
	default:
		s.prims.Draw(shape, primitives.Transform{
			Position: floats(pos.Mul(worldScale)),
			Scale:    floats(size.Mul(worldScale)),
			Rotation: quat(rot),
		}, tint)
	}
}

func toRender(v mgl64.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v[0]*worldScale), float32(v[1]*worldScale), float32(v[2]*worldScale))
}

// toRenderDir scales a unit direction to length render units.
func toRenderDir(dir mgl64.Vec3, length float64) rl.Vector3 {
	return rl.NewVector3(float32(dir[0]*length), float32(dir[1]*length), float32(dir[2]*length))
}

func vec3(v rl.Vector3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

func floats(v mgl64.Vec3) [3]float32 {
	return [3]float32{float32(v[0]), float32(v[1]), float32(v[2])}
}

func quat(q mgl64.Quat) rl.Quaternion {
	return rl.NewQuaternion(float32(q.V[0]), float32(q.V[1]), float32(q.V[2]), float32(q.W))
}

// colour converts an RGB triple in [0, 1] to a raylib colour.
func colour(c mgl64.Vec3, alpha uint8) rl.Color {
	return rl.NewColor(channel(c[0]), channel(c[1]), channel(c[2]), alpha)
}

// shade multiplies base by light, keeping base's alpha.
func shade(base rl.Color, light mgl64.Vec3) rl.Color {
	return rl.NewColor(
		channel(float64(base.R)/255*light[0]),
		channel(float64(base.G)/255*light[1]),
		channel(float64(base.B)/255*light[2]),
		base.A,
	)
}

func channel(v float64) uint8 {
	return uint8(mgl64.Clamp(v, 0, 1) * 255)
}
