package engineconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingReturnsDefault(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "engine.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p != Default() {
		t.Fatalf("prefs = %+v, want defaults", p)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "engine.json")
	want := Default()
	want.ShowFPS = true
	want.RenderMode = "wireframe"
	want.Font = "Fira Mono"
	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Fatalf("loaded %+v, want %+v", got, want)
	}
}

func TestLoadPartialAndInvalid(t *testing.T) {
	dir := t.TempDir()
	partial := filepath.Join(dir, "partial.json")
	if err := os.WriteFile(partial, []byte(`{"show_memalloc": true, "target_fps": 0}`), 0644); err != nil {
		t.Fatal(err)
	}
	p, err := Load(partial)
	if err != nil {
		t.Fatalf("Load partial: %v", err)
	}
	if !p.ShowMemAlloc || p.TargetFPS != 60 || p.MouseSensitivity != 0.15 {
		t.Fatalf("partial prefs = %+v", p)
	}

	broken := filepath.Join(dir, "broken.json")
	if err := os.WriteFile(broken, []byte(`{`), 0644); err != nil {
		t.Fatal(err)
	}
	p, err = Load(broken)
	if err == nil {
		t.Fatalf("broken file: want error")
	}
	if p != Default() {
		t.Fatalf("broken file prefs = %+v", p)
	}
}

func TestRenderModeCycle(t *testing.T) {
	tests := []struct {
		from, want RenderMode
	}{
		{Solid, Wireframe},
		{Wireframe, Points},
		{Points, Solid},
		{"bogus", Solid},
	}
	for _, tc := range tests {
		if got := tc.from.Next(); got != tc.want {
			t.Fatalf("%q.Next() = %q, want %q", tc.from, got, tc.want)
		}
	}
	if RenderMode("bogus").Valid() {
		t.Fatalf("bogus mode reported valid")
	}
}
