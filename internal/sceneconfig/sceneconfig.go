// Package sceneconfig loads the island's tuning from YAML: the robot path,
// the flock, the sky clock, the player and the terrain.
package sceneconfig

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the scene file is looked up on disk.
const DefaultPath = "config/scene.yaml"

//go:embed scene.yaml
var defaultYAML []byte

// Vec3 is an [x, y, z] triple in YAML.
type Vec3 = [3]float64

type Robot struct {
	Start     Vec3    `yaml:"start"`
	WalkSpeed float64 `yaml:"walk_speed"`
	Loop      bool    `yaml:"loop"`
	Waypoints []Vec3  `yaml:"waypoints"`
	KnotScale float64 `yaml:"knot_scale"`
	KnotDrop  float64 `yaml:"knot_drop"`
}

type Palm struct {
	Name string     `yaml:"name"`
	At   [2]float64 `yaml:"at"`
	Clip string     `yaml:"clip"`
}

type Fish struct {
	Count  int   `yaml:"count"`
	Seed   int64 `yaml:"seed"`
	Origin Vec3  `yaml:"origin"`
	Spread int   `yaml:"spread"`
	Watch  int   `yaml:"watch"`
}

type Flock struct {
	Radius    float64 `yaml:"radius"`
	Repulsion float64 `yaml:"repulsion"`
}

type Box struct {
	HalfExtents Vec3    `yaml:"half_extents"`
	Mass        float64 `yaml:"mass"`
	Restitution float64 `yaml:"restitution"`
	Friction    float64 `yaml:"friction"`
	Speed       float64 `yaml:"speed"`
	Offset      float64 `yaml:"offset"`
}

type Physics struct {
	Gravity     Vec3    `yaml:"gravity"`
	GroundLevel float64 `yaml:"ground_level"`
}

type Sky struct {
	Start     float64 `yaml:"start"`
	TimeScale float64 `yaml:"time_scale"`
}

type Player struct {
	Speed      float64 `yaml:"speed"`
	Damping    float64 `yaml:"damping"`
	FastFactor float64 `yaml:"fast_factor"`
	Climb      float64 `yaml:"climb"`
	EyeHeight  float64 `yaml:"eye_height"`
	Clearance  float64 `yaml:"clearance"`
}

type Camera struct {
	Position Vec3    `yaml:"position"`
	Yaw      float64 `yaml:"yaw"`
	Fovy     float64 `yaml:"fovy"`
}

type Terrain struct {
	Samples     int     `yaml:"samples"`
	Size        float64 `yaml:"size"`
	HeightScale float64 `yaml:"height_scale"`
	Origin      Vec3    `yaml:"origin"`
	Seed        int64   `yaml:"seed"`
	Octaves     int     `yaml:"octaves"`
	Frequency   float64 `yaml:"frequency"`
	Shore       float64 `yaml:"shore"`
}

type Water struct {
	Level float64 `yaml:"level"`
}

type Trace struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
}

// Scene is the whole scene file.
type Scene struct {
	Robot   Robot   `yaml:"robot"`
	Palms   []Palm  `yaml:"palms"`
	Fish    Fish    `yaml:"fish"`
	Flock   Flock   `yaml:"flock"`
	Box     Box     `yaml:"box"`
	Physics Physics `yaml:"physics"`
	Sky     Sky     `yaml:"sky"`
	Player  Player  `yaml:"player"`
	Camera  Camera  `yaml:"camera"`
	Terrain Terrain `yaml:"terrain"`
	Water   Water   `yaml:"water"`
	Trace   Trace   `yaml:"trace"`
}

// ErrInvalid is wrapped by every schema violation.
var ErrInvalid = errors.New("invalid scene config")

// Default returns the built-in scene.
func Default() Scene {
	s, err := decode(defaultYAML, Scene{})
	if err != nil {
		panic(fmt.Sprintf("sceneconfig: embedded scene.yaml: %v", err))
	}
	return s
}

// Load reads the scene at path. A missing file yields the built-in scene.
func Load(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Scene{}, fmt.Errorf("sceneconfig: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return Scene{}, fmt.Errorf("sceneconfig: %s: %w", path, err)
	}
	return s, nil
}

// Parse validates data against the scene schema and decodes it. Keys missing
// from data keep their built-in values.
func Parse(data []byte) (Scene, error) {
	return decode(data, Default())
}

func decode(data []byte, base Scene) (Scene, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Scene{}, fmt.Errorf("unmarshal: %w", err)
	}
	if raw == nil {
		raw = map[string]any{}
	}
	if err := validate(raw); err != nil {
		return Scene{}, err
	}
	s := base
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Scene{}, fmt.Errorf("decode: %w", err)
	}
	return s, nil
}

// Clone returns a deep copy of s.
func (s Scene) Clone() (Scene, error) {
	var out Scene
	if err := copier.CopyWithOption(&out, &s, copier.Option{DeepCopy: true}); err != nil {
		return Scene{}, fmt.Errorf("sceneconfig: clone: %w", err)
	}
	return out, nil
}

// toJSONValue turns a YAML-decoded value into the shape the schema
// validator expects: plain JSON with json.Number numbers.
func toJSONValue(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}
