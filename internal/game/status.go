package game

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Status returns the debug overlay lines: clock, robot, watched fish and body count.
func (g *Game) Status() []string {
	lines := make([]string, 0, 4)

	sky := fmt.Sprintf("sky %s x%.0f", g.Sky, g.Sky.TimeScale())
	if !g.FreeRoam {
		sky += " (paused)"
	}
	lines = append(lines, sky)

	if robot, ok := g.Graph.Get(RobotName); ok {
		lines = append(lines, fmt.Sprintf("robot %s at %s, %d waypoints left",
			g.robotAnim, fmtVec(robot.Position()), g.Follower.Pending()))
	}

	if s, ok := g.Flock.Last(); ok && g.Flock.Watch >= 0 && g.Flock.Watch < len(g.Flock.Members()) {
		name := g.Flock.Members()[g.Flock.Watch]
		lines = append(lines, fmt.Sprintf("%s com %s avv %s aco %s nev %s", name,
			fmtVec(s.CentreOfMass), fmtVec(s.AverageVelocity), fmtVec(s.AvoidCollision), fmtVec(s.NewVelocity)))
	}

	lines = append(lines, fmt.Sprintf("bodies %d", len(g.World.Bodies)))
	return lines
}

func fmtVec(v mgl64.Vec3) string {
	return fmt.Sprintf("(%.1f %.1f %.1f)", v[0], v[1], v[2])
}
