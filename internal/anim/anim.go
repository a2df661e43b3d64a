// Package anim keeps one animation state per entity. States are never shared
// between entities, so changing the robot's clip cannot touch a palm.
package anim

import "math"

// Clip names used by the scene.
const (
	Idle  = "Idle"
	Walk  = "Walk"
	Sway1 = "Sway1"
	Sway2 = "Sway2"
	Sway3 = "Sway3"
)

// DefaultLengths are the clip lengths in seconds.
var DefaultLengths = map[string]float64{
	Idle:  2.0,
	Walk:  1.2,
	Sway1: 4.0,
	Sway2: 5.5,
	Sway3: 3.25,
}

// State is the playing clip of one entity.
type State struct {
	Clip    string
	Time    float64
	Length  float64
	Loop    bool
	Enabled bool
}

// Phase returns playback position in [0, 1].
func (s State) Phase() float64 {
	if s.Length <= 0 {
		return 0
	}
	return s.Time / s.Length
}

// Ended reports whether a one-shot clip reached its end.
func (s State) Ended() bool {
	return !s.Loop && s.Length > 0 && s.Time >= s.Length
}

// Set maps entity ids to their animation state.
type Set struct {
	lengths map[string]float64
	states  map[string]*State
}

// NewSet returns an empty set using the given clip lengths. A nil map uses DefaultLengths.
func NewSet(lengths map[string]float64) *Set {
	if lengths == nil {
		lengths = DefaultLengths
	}
	return &Set{lengths: lengths, states: make(map[string]*State)}
}

// Play switches id to clip. Restarting the clip that is already playing keeps its time.
func (s *Set) Play(id, clip string, loop bool) {
	st, ok := s.states[id]
	if !ok {
		st = &State{}
		s.states[id] = st
	}
	if st.Clip != clip {
		st.Clip = clip
		st.Time = 0
		st.Length = s.lengths[clip]
	}
	st.Loop = loop
	st.Enabled = true
}

// Stop disables id's clip.
func (s *Set) Stop(id string) {
	if st, ok := s.states[id]; ok {
		st.Enabled = false
	}
}

// Get returns a copy of id's state.
func (s *Set) Get(id string) (State, bool) {
	st, ok := s.states[id]
	if !ok {
		return State{}, false
	}
	return *st, true
}

// AddTime advances every enabled clip by dt seconds.
func (s *Set) AddTime(dt float64) {
	for _, st := range s.states {
		if !st.Enabled || st.Length <= 0 {
			continue
		}
		st.Time += dt
		if st.Loop {
			st.Time = math.Mod(st.Time, st.Length)
		} else if st.Time > st.Length {
			st.Time = st.Length
		}
	}
}
