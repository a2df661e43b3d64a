// Package input reads the keyboard and mouse once per frame into a game.Input.
package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"island-demo/internal/game"
	"island-demo/internal/player"
)

// Poll returns this frame's input. While the console is open only Escape and
// the screenshot key get through; mouse look is read only when look is true.
func Poll(look, consoleOpen bool) game.Input {
	var in game.Input
	in.Quit = rl.IsKeyPressed(rl.KeyEscape)
	in.Screenshot = rl.IsKeyPressed(rl.KeyPrintScreen)
	if consoleOpen {
		return in
	}

	in.Move = player.MoveIntent{
		Forward: rl.IsKeyDown(rl.KeyW),
		Back:    rl.IsKeyDown(rl.KeyS),
		Left:    rl.IsKeyDown(rl.KeyA),
		Right:   rl.IsKeyDown(rl.KeyD),
		Up:      rl.IsKeyDown(rl.KeyE),
		Down:    rl.IsKeyDown(rl.KeyQ),
		Fast:    rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift),
	}
	if look {
		d := rl.GetMouseDelta()
		in.LookDX, in.LookDY = d.X, d.Y
	}

	in.SpawnBox = rl.IsKeyPressed(rl.KeyB)
	in.TogglePause = rl.IsMouseButtonPressed(rl.MouseButtonRight)
	in.PickStart = rl.IsMouseButtonPressed(rl.MouseButtonLeft)
	in.PickEnd = rl.IsMouseButtonReleased(rl.MouseButtonLeft)
	in.CycleRender = rl.IsKeyPressed(rl.KeyR)
	in.Reload = rl.IsKeyPressed(rl.KeyF5)
	return in
}
