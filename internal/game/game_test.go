package game

import (
	"math"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"island-demo/internal/anim"
	"island-demo/internal/entity"
	"island-demo/internal/pathing"
	"island-demo/internal/physics"
	"island-demo/internal/sceneconfig"
	"island-demo/internal/trace"
	"island-demo/internal/vecmath"
)

const frame = 0.1

type memRecorder struct {
	entries []trace.Entry
	closed  bool
}

func (m *memRecorder) Write(v any) error {
	m.entries = append(m.entries, v.(trace.Entry))
	return nil
}

func (m *memRecorder) Close() error {
	m.closed = true
	return nil
}

func (m *memRecorder) count(kind trace.Kind, event string) int {
	n := 0
	for _, e := range m.entries {
		if e.Kind == kind && (event == "" || e.Event == event) {
			n++
		}
	}
	return n
}

func newGame(t *testing.T) (*Game, *memRecorder) {
	t.Helper()
	rec := &memRecorder{}
	return New(sceneconfig.Default(), nil, rec), rec
}

func legTicks(from, to mgl64.Vec3) int {
	return int(math.Ceil(to.Sub(from).Len() / (35 * frame)))
}

func TestNewBuildsIsland(t *testing.T) {
	g, _ := newGame(t)

	if got := len(g.Graph.OfKind(entity.KindFish)); got != 20 {
		t.Fatalf("fish nodes = %d, want 20", got)
	}
	if got := len(g.Flock.Members()); got != 20 {
		t.Fatalf("flock members = %d, want 20", got)
	}
	robot, ok := g.Graph.Get(RobotName)
	if !ok || robot.Position() != (mgl64.Vec3{0, 300, 25}) {
		t.Fatalf("robot = %+v", robot)
	}
	if st, _ := g.Anims.Get(RobotName); st.Clip != anim.Idle {
		t.Fatalf("robot starts on %q, want Idle", st.Clip)
	}

	knots := g.Graph.OfKind(entity.KindKnot)
	want := []mgl64.Vec3{{550, 240, 50}, {-100, 590, -200}}
	if len(knots) != len(want) {
		t.Fatalf("knots = %d", len(knots))
	}
	for i, k := range knots {
		if k.Position() != want[i] || k.Scale != (mgl64.Vec3{0.1, 0.1, 0.1}) {
			t.Fatalf("knot %s at %v scale %v", k.Name, k.Position(), k.Scale)
		}
	}

	for _, p := range g.Graph.OfKind(entity.KindPalm) {
		st, ok := g.Anims.Get(p.Name)
		if !ok || !st.Loop || st.Clip == anim.Idle {
			t.Fatalf("palm %s anim = %+v", p.Name, st)
		}
		if h := g.Terrain.HeightAt(p.Position()[0], p.Position()[2]); p.Position()[1] != h {
			t.Fatalf("palm %s not on the ground: %v vs %v", p.Name, p.Position()[1], h)
		}
	}
	if _, ok := g.World.Body(physics.PlayerName); !ok {
		t.Fatalf("no player body")
	}
}

func TestRobotWalksPathThenIdles(t *testing.T) {
	g, rec := newGame(t)
	start := mgl64.Vec3{0, 300, 25}
	first := mgl64.Vec3{550, 250, 50}
	second := mgl64.Vec3{-100, 600, -200}

	g.Tick(frame, Input{})
	if g.RobotAnimation() != pathing.AnimWalk {
		t.Fatalf("after first tick animation = %v, want Walk", g.RobotAnimation())
	}
	if st, _ := g.Anims.Get(RobotName); st.Clip != anim.Walk {
		t.Fatalf("robot clip = %q, want Walk", st.Clip)
	}

	for i := 0; i < legTicks(start, first); i++ {
		g.Tick(frame, Input{})
	}
	robot, _ := g.Graph.Get(RobotName)
	if !vecmath.Near(robot.Position(), first, 1e-9) {
		t.Fatalf("robot at %v, want %v", robot.Position(), first)
	}
	if g.RobotAnimation() != pathing.AnimWalk {
		t.Fatalf("robot stopped walking at the first waypoint")
	}

	for i := 0; i < legTicks(first, second); i++ {
		g.Tick(frame, Input{})
	}
	if !vecmath.Near(robot.Position(), second, 1e-9) {
		t.Fatalf("robot at %v, want %v", robot.Position(), second)
	}
	if g.RobotAnimation() != pathing.AnimIdle {
		t.Fatalf("animation = %v, want Idle", g.RobotAnimation())
	}

	for i := 0; i < 50; i++ {
		g.Tick(frame, Input{})
	}
	if robot.Position() != second {
		t.Fatalf("idle robot moved to %v", robot.Position())
	}
	if got := rec.count(trace.KindRobot, "arrive"); got != 2 {
		t.Fatalf("arrive events = %d, want 2", got)
	}
}

func TestPalmAnimationsIndependentOfRobot(t *testing.T) {
	g, _ := newGame(t)
	before := map[string]string{}
	for _, p := range g.Graph.OfKind(entity.KindPalm) {
		st, _ := g.Anims.Get(p.Name)
		before[p.Name] = st.Clip
	}
	for i := 0; i < 5; i++ {
		g.Tick(frame, Input{})
	}
	for name, clip := range before {
		st, _ := g.Anims.Get(name)
		if st.Clip != clip || st.Time <= 0 {
			t.Fatalf("palm %s state %+v after robot started walking", name, st)
		}
	}
}

func TestFishStayInPlaneAndAreSampled(t *testing.T) {
	g, rec := newGame(t)
	for i := 0; i < 30; i++ {
		g.Tick(frame, Input{})
	}
	for _, name := range g.Flock.Members() {
		b, _ := g.World.Body(name)
		if b.Position[1] != 250 || b.Velocity[1] != 0 {
			t.Fatalf("%s left its plane: pos %v vel %v", name, b.Position, b.Velocity)
		}
		n, _ := g.Graph.Get(name)
		if n.Position() != b.Position {
			t.Fatalf("%s node %v out of sync with body %v", name, n.Position(), b.Position)
		}
	}
	if _, ok := g.WatchedSample(); !ok {
		t.Fatalf("no sample for the watched fish")
	}
	if got := rec.count(trace.KindFlock, ""); got != 30 {
		t.Fatalf("flock trace entries = %d, want 30", got)
	}
	if e := rec.entries[len(rec.entries)-1]; e.Tick == 0 {
		t.Fatalf("trace entry not stamped: %+v", e)
	}

	g.WatchFish(-1)
	g.Tick(frame, Input{})
	if got := rec.count(trace.KindFlock, ""); got != 30 {
		t.Fatalf("sampling continued after watch -1: %d entries", got)
	}
}

func TestPauseStopsSkyAndLook(t *testing.T) {
	g, _ := newGame(t)
	g.Tick(frame, Input{Actions: Actions{TogglePause: true}})
	if g.FreeRoam || !g.Sky.Paused {
		t.Fatalf("pause did not take: freeRoam=%v paused=%v", g.FreeRoam, g.Sky.Paused)
	}
	tod, yaw := g.Sky.TimeOfDay, g.Look.Yaw
	for i := 0; i < 10; i++ {
		g.Tick(frame, Input{LookDX: 40})
	}
	if g.Sky.TimeOfDay != tod || g.Look.Yaw != yaw {
		t.Fatalf("sky or look moved while paused")
	}

	g.Tick(frame, Input{Actions: Actions{TogglePause: true}})
	g.Tick(frame, Input{LookDX: 40})
	if g.Sky.TimeOfDay == tod || g.Look.Yaw == yaw {
		t.Fatalf("sky or look frozen after resume")
	}
}

func TestSpawnAndPickBox(t *testing.T) {
	g, rec := newGame(t)

	// Before the first tick the camera sits at the configured position
	// looking down -Z, with the box straight ahead.
	box := g.SpawnBox()
	if n, ok := g.Graph.Get(box.Name); !ok || n.Kind != entity.KindBox {
		t.Fatalf("no graph node for %s", box.Name)
	}
	if rec.count(trace.KindBox, "spawn") != 1 {
		t.Fatalf("no spawn trace")
	}
	p, ok := g.StartPick()
	if !ok || p.Body != box {
		t.Fatalf("pick = %+v, ok=%v", p, ok)
	}

	g.Tick(frame, Input{Actions: Actions{PickEnd: true, SpawnBox: true}})
	if _, ok := g.World.Picked(); ok {
		t.Fatalf("pick not released")
	}
	if got := len(g.Graph.OfKind(entity.KindBox)); got != 2 {
		t.Fatalf("boxes = %d, want 2", got)
	}
}

func TestCameraKeepsClearance(t *testing.T) {
	g, _ := newGame(t)
	for i := 0; i < 200; i++ {
		g.Tick(frame, Input{})
	}
	ground := g.Terrain.HeightAt(g.Camera[0], g.Camera[2])
	if g.Camera[1] < ground+g.Scene.Player.Clearance-1e-9 {
		t.Fatalf("camera y %v below ground %v + clearance", g.Camera[1], ground)
	}
}

func TestApplyConfig(t *testing.T) {
	g, _ := newGame(t)
	g.Tick(frame, Input{})
	for i := 0; i < 10; i++ {
		g.Tick(frame, Input{})
	}
	robot, _ := g.Graph.Get(RobotName)
	mid := robot.Position()

	next := sceneconfig.Default()
	next.Sky.TimeScale = 128
	next.Robot.WalkSpeed = 70
	next.Robot.Waypoints = []sceneconfig.Vec3{{0, 300, 500}}
	if err := g.ApplyConfig(next); err != nil {
		t.Fatalf("ApplyConfig: %v", err)
	}
	if g.Sky.TimeScale() != 128 || g.Follower.WalkSpeed != 70 {
		t.Fatalf("tuning not applied: scale %v speed %v", g.Sky.TimeScale(), g.Follower.WalkSpeed)
	}
	robot, _ = g.Graph.Get(RobotName)
	if robot.Position() != mid {
		t.Fatalf("path reset moved the robot from %v to %v", mid, robot.Position())
	}
	if got := len(g.Graph.OfKind(entity.KindKnot)); got != 1 {
		t.Fatalf("knots after reload = %d, want 1", got)
	}

	next.Robot.Waypoints[0] = sceneconfig.Vec3{1, 2, 3}
	if g.Scene.Robot.Waypoints[0] != (sceneconfig.Vec3{0, 300, 500}) {
		t.Fatalf("scene shares waypoint storage with the caller")
	}
}

func TestClose(t *testing.T) {
	g, rec := newGame(t)
	if err := g.Close(); err != nil || !rec.closed {
		t.Fatalf("Close: %v closed=%v", err, rec.closed)
	}
}

func TestStatus(t *testing.T) {
	g, _ := newGame(t)
	g.Tick(frame, Input{})
	lines := g.Status()
	if len(lines) != 4 {
		t.Fatalf("status lines = %q", lines)
	}
	if !strings.HasPrefix(lines[1], "robot Walk at (0.0 300.0 25.0), 1 waypoints left") {
		t.Fatalf("robot line = %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "Fish2 com ") {
		t.Fatalf("fish line = %q", lines[2])
	}

	g.WatchFish(-1)
	g.TogglePause()
	lines = g.Status()
	if len(lines) != 3 || !strings.HasSuffix(lines[0], "(paused)") {
		t.Fatalf("paused status = %q", lines)
	}
}
