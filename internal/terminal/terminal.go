package terminal

import (
	"unicode/utf8"

	rl "github.com/gen2brain/raylib-go/raylib"

	"island-demo/internal/commands"
	"island-demo/internal/logger"
)

const (
	BarHeight = 40
	// When windowed, move bar up by this many pixels so it stays visible.
	WindowedBarOffset = 56
	prompt            = "> "
	fontSize          = 20
	padding           = 8
	// Number of log lines drawn above the input bar when the console is open.
	maxLinesOnScreen = 14
	lineHeight       = fontSize + 4
	maxLineLen       = 200
)

var (
	termBarColor    = rl.NewColor(40, 40, 40, 255)
	termLineColor   = rl.NewColor(80, 80, 80, 255)
	termChatBgColor = rl.NewColor(24, 24, 24, 240)
)

// Terminal is the console at the bottom of the screen, toggled with the
// backquote key. Lines starting with "cmd " run through the command registry;
// anything else is just logged.
type Terminal struct {
	log      *logger.Logger
	reg      *commands.Registry
	inputBuf string
	open     bool
	font     rl.Font
}

// New returns a closed console that logs to log and runs commands from reg.
func New(log *logger.Logger, reg *commands.Registry) *Terminal {
	return &Terminal{log: log, reg: reg}
}

// IsOpen reports whether the console is visible and capturing the keyboard.
func (t *Terminal) IsOpen() bool {
	return t.open
}

// SetFont sets the font used to draw the console. Zero texture ID = raylib default.
func (t *Terminal) SetFont(font rl.Font) {
	t.font = font
}

// Update handles the toggle key and, while open, typing, paste, backspace and enter.
func (t *Terminal) Update() {
	if rl.IsKeyPressed(rl.KeyGrave) {
		t.open = !t.open
		// Drain the backquote itself from the char queue.
		for rl.GetCharPressed() != 0 {
		}
		return
	}
	if !t.open {
		return
	}
	if rl.IsKeyPressed(rl.KeyV) && (rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) || rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)) {
		if pasted := rl.GetClipboardText(); pasted != "" {
			t.inputBuf += pasted
		}
	} else {
		for {
			c := rl.GetCharPressed()
			if c == 0 {
				break
			}
			t.inputBuf += string(rune(c))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(t.inputBuf) > 0 {
		_, size := utf8.DecodeLastRuneInString(t.inputBuf)
		t.inputBuf = t.inputBuf[:len(t.inputBuf)-size]
	}
	if (rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter)) && t.inputBuf != "" {
		line := t.inputBuf
		t.inputBuf = ""
		t.Submit(line)
	}
}

// Submit logs line and runs it when it is a command.
func (t *Terminal) Submit(line string) {
	t.log.Log(prompt + line)
	args, isCmd := commands.Parse(line)
	if !isCmd {
		return
	}
	if err := t.reg.Execute(args); err != nil {
		t.log.Log(err.Error())
	}
}

// Draw draws the input bar and the log tail above it when open.
func (t *Terminal) Draw() {
	if !t.open {
		return
	}
	screenW := int(rl.GetScreenWidth())
	screenH := int(rl.GetScreenHeight())
	barY := screenH - BarHeight
	if !rl.IsWindowFullscreen() {
		barY -= WindowedBarOffset
	}

	chatHeight := maxLinesOnScreen * lineHeight
	chatY := barY - chatHeight
	if chatY < 0 {
		chatHeight = barY
		chatY = 0
	}
	if chatHeight > 0 {
		rl.DrawRectangle(0, int32(chatY), int32(screenW), int32(chatHeight), termChatBgColor)
	}
	lines := t.log.Lines()
	start := 0
	if len(lines) > maxLinesOnScreen {
		start = len(lines) - maxLinesOnScreen
	}
	for i := start; i < len(lines); i++ {
		y := chatY + (i-start)*lineHeight + padding
		line := lines[i]
		if len(line) > maxLineLen {
			line = line[:maxLineLen-3] + "..."
		}
		t.text(line, padding, y, rl.LightGray)
	}

	rl.DrawRectangle(0, int32(barY), int32(screenW), int32(BarHeight), termBarColor)
	rl.DrawRectangle(0, int32(barY), int32(screenW), 1, termLineColor)
	t.text(prompt+t.inputBuf+"|", padding, barY+padding, rl.White)
}

func (t *Terminal) text(s string, x, y int, c rl.Color) {
	if t.font.Texture.ID != 0 {
		rl.DrawTextEx(t.font, s, rl.NewVector2(float32(x), float32(y)), float32(fontSize), 1, c)
		return
	}
	rl.DrawText(s, int32(x), int32(y), int32(fontSize), c)
}
