package sceneconfig

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultScene(t *testing.T) {
	s := Default()
	if s.Robot.Start != (Vec3{0, 300, 25}) || s.Robot.WalkSpeed != 35 {
		t.Fatalf("robot = %+v", s.Robot)
	}
	if len(s.Robot.Waypoints) != 2 || s.Robot.Waypoints[1] != (Vec3{-100, 600, -200}) {
		t.Fatalf("waypoints = %v", s.Robot.Waypoints)
	}
	if s.Robot.Loop {
		t.Fatalf("default path loops")
	}
	if s.Fish.Count != 20 || s.Flock.Radius != 10 || s.Flock.Repulsion != 3 {
		t.Fatalf("fish/flock = %+v %+v", s.Fish, s.Flock)
	}
	if s.Sky.TimeScale != 64 || s.Physics.GroundLevel != 10 {
		t.Fatalf("sky/physics = %+v %+v", s.Sky, s.Physics)
	}
	if len(s.Palms) != 3 {
		t.Fatalf("palms = %v", s.Palms)
	}
}

func TestParseOverridesKeepDefaults(t *testing.T) {
	s, err := Parse([]byte("robot:\n  walk_speed: 70\n  waypoints:\n    - [1, 2, 3]\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Robot.WalkSpeed != 70 {
		t.Fatalf("walk speed = %v", s.Robot.WalkSpeed)
	}
	if len(s.Robot.Waypoints) != 1 || s.Robot.Waypoints[0] != (Vec3{1, 2, 3}) {
		t.Fatalf("waypoints = %v", s.Robot.Waypoints)
	}
	if s.Robot.Start != (Vec3{0, 300, 25}) || s.Fish.Count != 20 {
		t.Fatalf("defaults lost: %+v", s)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown key", "robots: {}\n"},
		{"negative speed", "robot:\n  walk_speed: -1\n"},
		{"short vector", "robot:\n  start: [1, 2]\n"},
		{"fractional count", "fish:\n  count: 2.5\n"},
		{"sky start out of range", "sky:\n  start: 1.5\n"},
		{"palm without name", "palms:\n  - { at: [0, 0] }\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("Parse error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestParseEmpty(t *testing.T) {
	s, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil): %v", err)
	}
	if s.Robot.WalkSpeed != 35 {
		t.Fatalf("empty document lost defaults: %+v", s.Robot)
	}
}

func TestLoadMissingFile(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Fish.Count != 20 {
		t.Fatalf("fish count = %d", s.Fish.Count)
	}
}

func TestLoadBadFileWrapsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte("flock: {radius: -2}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("Load error = %v", err)
	}
}

func TestCloneIsDeep(t *testing.T) {
	s := Default()
	c, err := s.Clone()
	if err != nil {
		t.Fatalf("Clone: %v", err)
	}
	c.Robot.Waypoints[0] = Vec3{9, 9, 9}
	c.Palms[0].Name = "changed"
	if s.Robot.Waypoints[0] == (Vec3{9, 9, 9}) || s.Palms[0].Name == "changed" {
		t.Fatalf("clone shares slices with the original")
	}
}

func TestWatcherReportsWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	if err := os.WriteFile(path, []byte("{}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("{}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("robot: {walk_speed: 10}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case got := <-w.Events:
		if filepath.Base(got) != "scene.yaml" {
			t.Fatalf("event for %q", got)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("no event for scene.yaml")
	}
}
