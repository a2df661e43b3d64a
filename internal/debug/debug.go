package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh the text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug draws the runtime overlays: FPS and heap in the top-right corner,
// simulation status in the top-left. All overlays are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowStatus   bool
	font         rl.Font
	frameCount   uint32
	fpsText      string
	memText      string
	status       []string
	memStats     runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetFont sets the font used to draw overlays. Zero texture ID = use raylib default.
func (d *Debug) SetFont(font rl.Font) {
	d.font = font
}

// Draw renders the enabled overlays. status is called only when the text is
// refreshed. Call after the scene and console in the draw loop.
func (d *Debug) Draw(status func() []string) {
	d.frameCount++
	update := d.frameCount%updateInterval == 0
	if (d.ShowFPS && d.fpsText == "") || (d.ShowMemAlloc && d.memText == "") || (d.ShowStatus && d.status == nil) {
		update = true
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	if d.ShowFPS {
		if update {
			d.fpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		d.right(d.fpsText, screenW, y)
		y += lineHeight
	}
	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.memStats)
			d.memText = fmt.Sprintf("Mem: %.2f MiB", float64(d.memStats.Alloc)/(1024*1024))
		}
		d.right(d.memText, screenW, y)
	}

	if d.ShowStatus && status != nil {
		if update {
			d.status = status()
		}
		for i, line := range d.status {
			d.text(line, padding, int32(padding+i*lineHeight))
		}
	}
}

func (d *Debug) right(text string, screenW, y int32) {
	if text == "" {
		return
	}
	var w int32
	if d.font.Texture.ID != 0 {
		w = int32(rl.MeasureTextEx(d.font, text, fontSize, 1).X)
	} else {
		w = rl.MeasureText(text, fontSize)
	}
	d.text(text, screenW-w-padding, y)
}

func (d *Debug) text(text string, x, y int32) {
	if d.font.Texture.ID != 0 {
		rl.DrawTextEx(d.font, text, rl.NewVector2(float32(x), float32(y)), fontSize, 1, rl.Green)
		return
	}
	rl.DrawText(text, x, y, fontSize, rl.Green)
}
