// Package scene draws the island with raylib from the game's state.
package scene

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"

	"island-demo/internal/engineconfig"
	"island-demo/internal/game"
	"island-demo/internal/primitives"
	"island-demo/internal/terrain"
)

const (
	// worldScale converts island units to render units so the whole island
	// fits inside raylib's default far plane.
	worldScale = 0.1
	// skyRadius is where the sun disc is drawn around the camera, in render units.
	skyRadius = 600
	sunRadius = 25
	// pointStride skips terrain samples in point mode.
	pointStride = 2
)

var (
	grassColour = rl.NewColor(86, 125, 70, 255)
	waterColour = rl.NewColor(40, 90, 150, 200)
	robotColour = rl.NewColor(170, 170, 185, 255)
	knotColour  = rl.NewColor(230, 200, 60, 255)
	trunkColour = rl.NewColor(110, 80, 50, 255)
	crownColour = rl.NewColor(60, 140, 60, 255)
	fishColour  = rl.NewColor(240, 130, 40, 255)
	boxColour   = rl.NewColor(150, 110, 60, 255)
	pickColour  = rl.NewColor(255, 60, 60, 255)
)

// Scene holds the first-person camera and draws the island. GPU resources
// are created on the first Draw, after the window exists.
type Scene struct {
	Camera rl.Camera3D
	Mode   engineconfig.RenderMode

	hm         *terrain.Heightmap
	waterLevel float64
	prims      *primitives.Registry

	terrainModel   rl.Model
	terrainLoaded  bool
	terrainPending bool
	cursorCaptured bool
}

// New returns a scene for the given heightmap with a perspective camera of fovy degrees.
func New(hm *terrain.Heightmap, waterLevel, fovy float64) *Scene {
	s := &Scene{
		Mode:           engineconfig.Solid,
		hm:             hm,
		waterLevel:     waterLevel,
		prims:          primitives.NewRegistry(),
		terrainPending: hm != nil,
	}
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = float32(fovy)
	s.Camera.Projection = rl.CameraPerspective
	return s
}

// Update moves the camera to the game's eye and captures the mouse while
// the camera is steered by it.
func (s *Scene) Update(g *game.Game, captureMouse bool) {
	eye := g.Camera
	s.Camera.Position = toRender(eye)
	s.Camera.Target = toRender(eye.Add(g.CameraDirection().Mul(100)))

	if captureMouse != s.cursorCaptured {
		if captureMouse {
			rl.DisableCursor()
		} else {
			rl.EnableCursor()
		}
		s.cursorCaptured = captureMouse
	}
}

// ensureTerrain builds the terrain model the first time we Draw.
func (s *Scene) ensureTerrain() {
	if !s.terrainPending {
		return
	}
	s.terrainPending = false

	gray := s.hm.Gray()
	img := rl.GenImageColor(s.hm.Width, s.hm.Depth, rl.Black)
	for z := 0; z < s.hm.Depth; z++ {
		for x := 0; x < s.hm.Width; x++ {
			v := gray[z*s.hm.Width+x]
			rl.ImageDrawPixel(img, int32(x), int32(z), rl.NewColor(v, v, v, 255))
		}
	}
	size := rl.NewVector3(float32(s.hm.Size*worldScale), float32(s.hm.HeightScale*worldScale), float32(s.hm.Size*worldScale))
	mesh := rl.GenMeshHeightmap(*img, size)
	rl.UnloadImage(img)
	if mesh.VertexCount == 0 {
		return
	}
	s.terrainModel = rl.LoadModelFromMesh(mesh)
	s.terrainLoaded = true
}

// Draw renders the island. Call between BeginDrawing and EndDrawing, before 2D overlays.
func (s *Scene) Draw(g *game.Game) {
	s.ensureTerrain()
	rl.ClearBackground(colour(g.Sky.SkyColour(), 255))

	toSun := g.Sky.ToSun()
	s.prims.SetView(vec3(s.Camera.Position), primitives.Light{
		Dir:     [3]float32{float32(toSun[0]), float32(toSun[1]), float32(toSun[2])},
		Colour:  floats(g.Sky.SunColour()),
		Ambient: floats(g.Sky.AmbientColour()),
	})

	rl.BeginMode3D(s.Camera)
	s.drawSun(g)
	s.drawTerrain(g)
	s.drawWater(g)
	s.drawEntities(g)
	s.drawPick(g)
	rl.EndMode3D()
}

func (s *Scene) drawSun(g *game.Game) {
	if g.Sky.Elevation() < -0.1 {
		return
	}
	pos := rl.Vector3Add(s.Camera.Position, toRenderDir(g.Sky.ToSun(), skyRadius))
	rl.DrawSphere(pos, sunRadius, colour(g.Sky.SunColour(), 255))
}

func (s *Scene) drawTerrain(g *game.Game) {
	if !s.terrainLoaded {
		return
	}
	light := g.Sky.AmbientColour().Add(g.Sky.SunColour().Mul(math.Max(g.Sky.Elevation(), 0)))
	tint := shade(grassColour, light)
	pos := toRender(s.hm.Origin)
	switch s.Mode {
	case engineconfig.Wireframe:
		rl.DrawModelWires(s.terrainModel, pos, 1, tint)
	case engineconfig.Points:
		dx, dz := s.hm.Step()
		for z := 0; z < s.hm.Depth; z += pointStride {
			for x := 0; x < s.hm.Width; x += pointStride {
				wx := s.hm.Origin[0] + float64(x)*dx
				wz := s.hm.Origin[2] + float64(z)*dz
				rl.DrawPoint3D(toRender(mgl64.Vec3{wx, s.hm.HeightAt(wx, wz), wz}), tint)
			}
		}
	default:
		rl.DrawModel(s.terrainModel, pos, 1, tint)
	}
}

func (s *Scene) drawWater(g *game.Game) {
	if s.hm == nil || s.Mode == engineconfig.Points {
		return
	}
	centre := s.hm.Origin.Add(mgl64.Vec3{s.hm.Size / 2, s.waterLevel, s.hm.Size / 2})
	extent := float32(s.hm.Size * 2 * worldScale)
	tint := shade(waterColour, g.Sky.AmbientColour().Add(g.Sky.SunColour().Mul(0.5)))
	if s.Mode == engineconfig.Wireframe {
		rl.DrawCubeWires(toRender(centre), extent, 0, extent, tint)
		return
	}
	rl.DrawPlane(toRender(centre), rl.NewVector2(extent, extent), tint)
}

// Unload frees GPU resources. Call before the window closes.
func (s *Scene) Unload() {
	if s.terrainLoaded {
		rl.UnloadModel(s.terrainModel)
		s.terrainLoaded = false
	}
	s.prims.Unload()
}
