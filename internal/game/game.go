// Package game runs one island frame: physics, the fish flock, the robot's
// walk, the player and the sky. It owns no window; the renderer reads its
// state after each Tick.
package game

import (
	"math/rand"
	"strconv"

	"github.com/go-gl/mathgl/mgl64"

	"island-demo/internal/anim"
	"island-demo/internal/entity"
	"island-demo/internal/flock"
	"island-demo/internal/logger"
	"island-demo/internal/pathing"
	"island-demo/internal/physics"
	"island-demo/internal/player"
	"island-demo/internal/sceneconfig"
	"island-demo/internal/sky"
	"island-demo/internal/terrain"
	"island-demo/internal/trace"
	"island-demo/internal/vecmath"
)

// RobotName is the id of the walking robot in the graph and the animation set.
const RobotName = "Robot"

// pickRange is how far the crosshair ray reaches when grabbing a body.
const pickRange = 1000.0

// Game is the island simulation.
type Game struct {
	Scene    sceneconfig.Scene
	World    *physics.World
	Graph    *entity.Graph
	Terrain  *terrain.Heightmap
	Follower *pathing.Follower
	Flock    *flock.Simulator
	Anims    *anim.Set
	Sky      *sky.Clock

	Look        player.Look
	Camera      mgl64.Vec3
	Sensitivity float32
	// FreeRoam is true while the mouse steers the camera. Turning it off
	// pauses the sky and frees the cursor.
	FreeRoam bool

	// Ticks and Time count frames and simulated seconds since New.
	Ticks uint64
	Time  float64

	playerParams player.Params
	boxSpec      physics.BoxSpec
	robotAnim    pathing.Animation

	log *logger.Logger
	rec trace.Recorder
}

// New builds the island from scene. log may be nil; a nil rec records nothing.
func New(scene sceneconfig.Scene, log *logger.Logger, rec trace.Recorder) *Game {
	if log == nil {
		log = logger.New("")
	}
	if rec == nil {
		rec = trace.Discard{}
	}
	g := &Game{
		Scene:       scene,
		Graph:       entity.NewGraph(),
		Anims:       anim.NewSet(nil),
		Sensitivity: player.DefaultSensitivity,
		FreeRoam:    true,
		log:         log,
		rec:         rec,
	}

	g.Terrain = terrain.Generate(terrainOptions(scene.Terrain))
	g.World = physics.NewWorld()
	g.World.Ground.Height = g.Terrain.HeightAt
	g.applyTuning(scene)
	g.Sky = sky.NewClock(scene.Sky.Start)
	g.Sky.SetSpeedFactor(scene.Sky.TimeScale)

	g.spawnRobot(scene.Robot)
	g.spawnPalms(scene.Palms)
	g.spawnFish(scene.Fish)

	g.Camera = mgl64.Vec3(scene.Camera.Position)
	g.Look.Yaw = float32(mgl64.DegToRad(scene.Camera.Yaw))
	g.World.SpawnPlayer(g.Camera, g.Look.Direction())

	g.log.Logf("island ready: %d fish, %d waypoints, sky %s", len(g.Flock.Members()), len(scene.Robot.Waypoints), g.Sky)
	return g
}

func (g *Game) spawnRobot(r sceneconfig.Robot) {
	points := make([]mgl64.Vec3, len(r.Waypoints))
	for i, p := range r.Waypoints {
		points[i] = mgl64.Vec3(p)
		knot := entity.NewNode(knotName(i), entity.KindKnot, points[i].Sub(mgl64.Vec3{0, r.KnotDrop, 0}))
		knot.Scale = mgl64.Vec3{r.KnotScale, r.KnotScale, r.KnotScale}
		g.Graph.Add(knot)
	}
	g.Graph.Add(entity.NewNode(RobotName, entity.KindRobot, mgl64.Vec3(r.Start)))
	g.Follower = pathing.NewFollower(points, pathing.Config{WalkSpeed: r.WalkSpeed, Loop: r.Loop})
	g.Anims.Play(RobotName, anim.Idle, true)
	g.robotAnim = pathing.AnimIdle
}

func (g *Game) spawnPalms(palms []sceneconfig.Palm) {
	for _, p := range palms {
		x, z := p.At[0], p.At[1]
		g.Graph.Add(entity.NewNode(p.Name, entity.KindPalm, mgl64.Vec3{x, g.Terrain.HeightAt(x, z), z}))
		g.Anims.Play(p.Name, p.Clip, true)
	}
}

func (g *Game) spawnFish(f sceneconfig.Fish) {
	spawn := physics.FishSpawn{Count: f.Count, Origin: mgl64.Vec3(f.Origin), Spread: f.Spread}
	names := g.World.SpawnFish(g.boxSpec, spawn, rand.New(rand.NewSource(f.Seed)))
	for _, name := range names {
		pos, _ := g.World.Position(name)
		g.Graph.Add(entity.NewNode(name, entity.KindFish, pos))
	}
	g.Flock = flock.NewSimulator(names, flockParams(g.Scene.Flock))
	g.Flock.Watch = f.Watch
	g.Flock.Observe = g.recordFlock
}

// Tick advances the island by dt seconds.
func (g *Game) Tick(dt float64, in Input) {
	if dt < 0 {
		dt = 0
	}
	g.Ticks++
	g.Time += dt

	g.handleActions(in.Actions)
	if g.FreeRoam {
		g.Look.Turn(in.LookDX, in.LookDY, g.Sensitivity)
	}
	if _, ok := g.World.Picked(); ok {
		g.World.DragPick(g.Camera, g.Look.Direction())
	}

	g.World.Step(dt)
	g.Flock.Tick(g.World)
	g.syncBodies()

	g.tickRobot(dt)
	g.Anims.AddTime(dt)

	g.movePlayer(in.Move)
	g.Sky.Paused = !g.FreeRoam
	g.Sky.Advance(dt)
	g.followPlayer()
}

func (g *Game) tickRobot(dt float64) {
	robot, ok := g.Graph.Get(RobotName)
	if !ok {
		return
	}
	step := g.Follower.Tick(robot, dt)
	switch step.Animation {
	case pathing.AnimWalk:
		g.Anims.Play(RobotName, anim.Walk, true)
	case pathing.AnimIdle:
		g.Anims.Play(RobotName, anim.Idle, true)
	}
	if step.Arrived {
		g.log.Logf("robot reached %.0f %.0f %.0f", step.Position[0], step.Position[1], step.Position[2])
		g.record(trace.Entry{Kind: trace.KindRobot, Name: RobotName, Event: "arrive", Position: vec(step.Position)})
	}
	if step.Animation != pathing.AnimNone {
		g.robotAnim = step.Animation
		g.record(trace.Entry{Kind: trace.KindRobot, Name: RobotName, Event: step.Animation.String(), Position: vec(step.Position)})
	}
}

// RobotAnimation is the robot's current clip as the follower last reported it.
func (g *Game) RobotAnimation() pathing.Animation {
	return g.robotAnim
}

// syncBodies copies fish and box positions from physics into the graph and
// turns each fish toward where it swims.
func (g *Game) syncBodies() {
	for _, b := range g.World.Bodies {
		n, ok := g.Graph.Get(b.Name)
		if !ok {
			continue
		}
		n.SetPosition(b.Position)
		if n.Kind == entity.KindFish && !vecmath.IsZero(vecmath.Flatten(b.Velocity)) {
			n.SetOrientation(vecmath.ShortestYaw(vecmath.UnitX, b.Velocity))
		}
	}
}

func (g *Game) movePlayer(in player.MoveIntent) {
	cur, ok := g.World.Velocity(physics.PlayerName)
	if !ok {
		return
	}
	g.World.SetVelocity(physics.PlayerName, player.Velocity(in, g.Look.Yaw, cur, g.playerParams))
}

// followPlayer puts the camera at the player's eye, never closer to the
// terrain than the clearance.
func (g *Game) followPlayer() {
	pos, ok := g.World.Position(physics.PlayerName)
	if !ok {
		return
	}
	eye := pos.Add(mgl64.Vec3{0, g.playerParams.EyeHeight, 0})
	ground := g.Terrain.HeightAt(eye[0], eye[2])
	g.Camera = player.ClampToGround(eye, ground, g.playerParams.Clearance)
}

// CameraDirection is the unit view vector of the first-person camera.
func (g *Game) CameraDirection() mgl64.Vec3 {
	return g.Look.Direction()
}

// WatchedSample returns the last separation terms of the watched fish.
func (g *Game) WatchedSample() (flock.Sample, bool) {
	return g.Flock.Last()
}

func (g *Game) recordFlock(member string, s flock.Sample) {
	e := trace.Entry{
		Kind:            trace.KindFlock,
		Name:            member,
		CentreOfMass:    vec(s.CentreOfMass),
		AverageVelocity: vec(s.AverageVelocity),
		AvoidCollision:  vec(s.AvoidCollision),
		NewVelocity:     vec(s.NewVelocity),
	}
	if pos, ok := g.World.Position(member); ok {
		e.Position = vec(pos)
	}
	g.record(e)
}

// record stamps e with the frame and writes it. The first write error turns
// tracing off.
func (g *Game) record(e trace.Entry) {
	e.Tick = g.Ticks
	e.Time = g.Time
	if err := g.rec.Write(e); err != nil {
		g.log.Logf("trace disabled: %v", err)
		g.rec = trace.Discard{}
	}
}

// Close flushes and closes the trace recorder.
func (g *Game) Close() error {
	return g.rec.Close()
}

func vec(v mgl64.Vec3) *mgl64.Vec3 {
	return &v
}

func knotName(i int) string {
	return "Knot" + strconv.Itoa(i+1)
}
