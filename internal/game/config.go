package game

import (
	"slices"

	"github.com/go-gl/mathgl/mgl64"

	"island-demo/internal/entity"
	"island-demo/internal/flock"
	"island-demo/internal/physics"
	"island-demo/internal/player"
	"island-demo/internal/sceneconfig"
	"island-demo/internal/terrain"
)

// applyTuning copies the values that can change while running.
func (g *Game) applyTuning(s sceneconfig.Scene) {
	g.World.Gravity = mgl64.Vec3(s.Physics.Gravity)
	g.World.Ground.Level = s.Physics.GroundLevel
	g.boxSpec = physics.BoxSpec{
		HalfExtents: mgl64.Vec3(s.Box.HalfExtents),
		Mass:        s.Box.Mass,
		Restitution: s.Box.Restitution,
		Friction:    s.Box.Friction,
		Speed:       s.Box.Speed,
		Offset:      s.Box.Offset,
	}
	g.playerParams = player.Params{
		Speed:      float32(s.Player.Speed),
		Damping:    float32(s.Player.Damping),
		FastFactor: float32(s.Player.FastFactor),
		Climb:      float32(s.Player.Climb),
		EyeHeight:  s.Player.EyeHeight,
		Clearance:  s.Player.Clearance,
	}
}

// ApplyConfig swaps in a reloaded scene. Tuning applies at once; a changed
// waypoint list restarts the robot's walk from where it stands. Fish count,
// seed and terrain only change on restart.
func (g *Game) ApplyConfig(s sceneconfig.Scene) error {
	next, err := s.Clone()
	if err != nil {
		return err
	}
	prev := g.Scene
	g.Scene = next

	g.applyTuning(next)
	g.Sky.SetSpeedFactor(next.Sky.TimeScale)
	g.Flock.Params = flockParams(next.Flock)
	g.Flock.Watch = next.Fish.Watch
	g.Follower.WalkSpeed = next.Robot.WalkSpeed
	g.Follower.Loop = next.Robot.Loop

	if !slices.Equal(prev.Robot.Waypoints, next.Robot.Waypoints) {
		for _, n := range g.Graph.OfKind(entity.KindKnot) {
			g.Graph.Remove(n.Name)
		}
		robot, _ := g.Graph.Get(RobotName)
		start := next.Robot
		if robot != nil {
			start.Start = sceneconfig.Vec3(robot.Position())
		}
		g.Graph.Remove(RobotName)
		g.spawnRobot(start)
		if robot != nil {
			if r, ok := g.Graph.Get(RobotName); ok {
				r.SetOrientation(robot.Orientation())
			}
		}
		g.log.Logf("robot path reset: %d waypoints", len(next.Robot.Waypoints))
	}
	if prev.Fish.Count != next.Fish.Count || prev.Fish.Seed != next.Fish.Seed || prev.Terrain != next.Terrain {
		g.log.Log("fish and terrain changes apply on restart")
	}
	g.log.Log("scene config reloaded")
	return nil
}

// SetTimeScale changes the sky speed.
func (g *Game) SetTimeScale(f float64) {
	g.Scene.Sky.TimeScale = f
	g.Sky.SetSpeedFactor(f)
}

// WatchFish selects which fish's flock terms are sampled; -1 stops sampling.
func (g *Game) WatchFish(i int) {
	g.Scene.Fish.Watch = i
	g.Flock.Watch = i
}

func flockParams(f sceneconfig.Flock) flock.Params {
	return flock.Params{Radius: f.Radius, Repulsion: f.Repulsion}
}

func terrainOptions(t sceneconfig.Terrain) terrain.Options {
	opts := terrain.DefaultOptions()
	if t.Samples > 1 {
		opts.Width, opts.Depth = t.Samples, t.Samples
	}
	opts.Size = t.Size
	opts.HeightScale = t.HeightScale
	opts.Origin = mgl64.Vec3(t.Origin)
	opts.Seed = t.Seed
	if t.Octaves > 0 {
		opts.Octaves = t.Octaves
	}
	opts.Frequency = float32(t.Frequency)
	opts.Shore = float32(t.Shore)
	return opts
}
