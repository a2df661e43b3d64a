package game

import (
	"island-demo/internal/entity"
	"island-demo/internal/physics"
	"island-demo/internal/trace"
)

func (g *Game) handleActions(a Actions) {
	if a.TogglePause {
		g.TogglePause()
	}
	if a.SpawnBox {
		g.SpawnBox()
	}
	if a.PickStart {
		g.StartPick()
	}
	if a.PickEnd {
		g.World.ReleasePick()
	}
}

// TogglePause flips between free roam and the paused view and returns the new free-roam state.
func (g *Game) TogglePause() bool {
	g.FreeRoam = !g.FreeRoam
	g.Sky.Paused = !g.FreeRoam
	if g.FreeRoam {
		g.log.Log("free roam")
	} else {
		g.log.Log("paused")
	}
	return g.FreeRoam
}

// SpawnBox throws a box from the camera along the view direction.
func (g *Game) SpawnBox() *physics.Body {
	b := g.World.SpawnBox(g.boxSpec, g.Camera, g.Look.Direction())
	n := g.Graph.Add(entity.NewNode(b.Name, entity.KindBox, b.Position))
	n.Scale = b.HalfExtents.Mul(2)
	g.record(trace.Entry{Kind: trace.KindBox, Name: b.Name, Event: "spawn", Position: vec(b.Position)})
	return b
}

// StartPick grabs the nearest dynamic body under the crosshair, ignoring the player.
func (g *Game) StartPick() (*physics.Pick, bool) {
	hit, ok := g.World.Raycast(g.Camera, g.Look.Direction(), pickRange, physics.PlayerName)
	if !ok {
		return nil, false
	}
	p := g.World.StartPick(hit)
	if p == nil {
		return nil, false
	}
	g.log.Logf("picked %s at %.1f", hit.Body.Name, hit.Distance)
	return p, true
}
