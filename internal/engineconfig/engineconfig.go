package engineconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// EngineConfigPath is the path to the engine config file, relative to the process working directory.
const EngineConfigPath = "config/engine.json"

// EnginePrefs holds per-machine preferences: overlays, window and mouse. Persisted across runs.
// Scene tuning lives in the scene file instead.
type EnginePrefs struct {
	ShowFPS          bool       `json:"show_fps"`
	ShowMemAlloc     bool       `json:"show_memalloc"`
	ShowBodies       bool       `json:"show_bodies"`
	Fullscreen       bool       `json:"fullscreen"`
	TargetFPS        int        `json:"target_fps"`
	MouseSensitivity float32    `json:"mouse_sensitivity"`
	RenderMode       RenderMode `json:"render_mode"`
	// Font names a TTF/OTF under assets/fonts for the console and overlays. Empty = raylib default.
	Font string `json:"font,omitempty"`
}

// RenderMode is how the scene's polygons are drawn.
type RenderMode string

const (
	Solid     RenderMode = "solid"
	Wireframe RenderMode = "wireframe"
	Points    RenderMode = "points"
)

var renderModes = []RenderMode{Solid, Wireframe, Points}

// Next cycles solid, wireframe, points and back. Unknown modes go to solid.
func (m RenderMode) Next() RenderMode {
	for i, r := range renderModes {
		if r == m {
			return renderModes[(i+1)%len(renderModes)]
		}
	}
	return Solid
}

// Valid reports whether m is a known mode.
func (m RenderMode) Valid() bool {
	for _, r := range renderModes {
		if r == m {
			return true
		}
	}
	return false
}

// Default returns default engine preferences (overlays off, windowed, 60 FPS, 0.15 degrees per pixel).
func Default() EnginePrefs {
	return EnginePrefs{
		TargetFPS:        60,
		MouseSensitivity: 0.15,
		RenderMode:       Solid,
	}
}

// Load reads engine preferences from path. Fields absent from the file keep their defaults.
// A missing file yields Default() and no error; an unreadable or invalid file
// yields Default() and the error. Load never creates a file.
func Load(path string) (EnginePrefs, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("engineconfig: %w", err)
	}
	p := Default()
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("engineconfig: %s: %w", path, err)
	}
	if p.TargetFPS <= 0 {
		p.TargetFPS = Default().TargetFPS
	}
	if p.MouseSensitivity <= 0 {
		p.MouseSensitivity = Default().MouseSensitivity
	}
	if !p.RenderMode.Valid() {
		p.RenderMode = Solid
	}
	return p, nil
}

// Save writes engine preferences to path, creating the directory if needed.
func Save(path string, p EnginePrefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
