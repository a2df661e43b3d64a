package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"island-demo/internal/engineconfig"
)

const (
	windowWidth  = 1280
	windowHeight = 720
)

// Run opens the window and owns the main loop. Each frame it calls update with
// the frame time in seconds, then draw between BeginDrawing and EndDrawing.
// The loop ends when the window closes or update returns false. afterOpen and
// beforeClose run while the window exists, for loading and freeing GPU resources.
func Run(title string, prefs engineconfig.EnginePrefs, update func(dt float32) bool, draw func(), afterOpen, beforeClose func()) {
	flags := uint32(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	w, h := int32(windowWidth), int32(windowHeight)
	if prefs.Fullscreen {
		flags |= rl.FlagFullscreenMode
		// Zero size uses the monitor resolution.
		w, h = 0, 0
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(w, h, title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull) // ESC goes through input.Poll
	rl.SetTargetFPS(int32(prefs.TargetFPS))
	if afterOpen != nil {
		afterOpen()
	}

	for !rl.WindowShouldClose() {
		if !update(rl.GetFrameTime()) {
			break
		}
		rl.BeginDrawing()
		draw()
		rl.EndDrawing()
	}
	if beforeClose != nil {
		beforeClose()
	}
}
