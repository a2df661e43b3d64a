package game

import "island-demo/internal/player"

// Actions are the one-shot requests raised by key and button presses this frame.
type Actions struct {
	SpawnBox    bool
	TogglePause bool
	// PickStart grabs the body under the crosshair; PickEnd lets it go.
	PickStart   bool
	PickEnd     bool
	CycleRender bool
	Screenshot  bool
	Reload      bool
	Quit        bool
}

// Input is everything the frame reads from the keyboard and mouse.
type Input struct {
	Move player.MoveIntent
	// LookDX and LookDY are the mouse motion in pixels.
	LookDX, LookDY float32
	Actions
}
