package main

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"island-demo/internal/commands"
	"island-demo/internal/debug"
	"island-demo/internal/engineconfig"
	"island-demo/internal/env"
	"island-demo/internal/fonts"
	"island-demo/internal/game"
	"island-demo/internal/graphics"
	"island-demo/internal/input"
	"island-demo/internal/logger"
	"island-demo/internal/scene"
	"island-demo/internal/sceneconfig"
	"island-demo/internal/terminal"
	"island-demo/internal/trace"
)

func main() {
	log := logger.New(logger.LogFilePath)
	if err := env.Load(".env"); err != nil {
		log.Logf("env: %v", err)
	}

	prefs, err := engineconfig.Load(engineconfig.EngineConfigPath)
	if err != nil {
		log.Logf("engine config: %v; using defaults", err)
	}

	scenePath := env.String(env.SceneConfig, sceneconfig.DefaultPath)
	scn, err := sceneconfig.Load(scenePath)
	if err != nil {
		log.Logf("%v; using built-in scene", err)
		scn = sceneconfig.Default()
	}
	if seed := env.Int64(env.Seed, 0); seed != 0 {
		scn.Fish.Seed = seed
	}

	g := game.New(scn, log, newRecorder(scn.Trace, log))
	defer func() {
		if err := g.Close(); err != nil {
			log.Logf("trace: %v", err)
		}
	}()
	g.Sensitivity = prefs.MouseSensitivity

	watcher, err := sceneconfig.NewWatcher(scenePath)
	if err != nil {
		log.Logf("scene watch disabled: %v", err)
	} else {
		defer watcher.Close()
	}

	view := scene.New(g.Terrain, scn.Water.Level, scn.Camera.Fovy)
	view.Mode = prefs.RenderMode
	dbg := debug.New()
	dbg.ShowFPS = prefs.ShowFPS
	dbg.ShowMemAlloc = prefs.ShowMemAlloc
	dbg.ShowStatus = prefs.ShowBodies

	savePrefs := func() {
		if err := engineconfig.Save(engineconfig.EngineConfigPath, prefs); err != nil {
			log.Logf("engine config: %v", err)
		}
	}
	reg := commands.NewRegistry()
	registerCommands(reg, g, dbg, view, &prefs, savePrefs, log)
	term := terminal.New(log, reg)

	reload := func() {
		next, err := sceneconfig.Load(scenePath)
		if err != nil {
			log.Log(err.Error())
			return
		}
		if err := g.ApplyConfig(next); err != nil {
			log.Log(err.Error())
		}
	}

	update := func(dt float32) bool {
		term.Update()
		in := input.Poll(g.FreeRoam && !term.IsOpen(), term.IsOpen())
		if in.Quit {
			log.Log("bye")
			return false
		}
		if in.Screenshot {
			name := fmt.Sprintf("island-%s.png", time.Now().Format("20060102-150405"))
			rl.TakeScreenshot(name)
			log.Logf("screenshot %s", name)
		}
		if in.Reload {
			reload()
		}
		if watcher != nil {
			if path, ok := watcher.Poll(); ok {
				log.Logf("%s changed", path)
				reload()
			}
		}
		if in.CycleRender {
			view.Mode = view.Mode.Next()
			prefs.RenderMode = view.Mode
			savePrefs()
		}

		g.Tick(float64(dt), in)
		view.Update(g, g.FreeRoam && !term.IsOpen())
		return true
	}
	draw := func() {
		view.Draw(g)
		term.Draw()
		dbg.Draw(g.Status)
	}
	var font rl.Font
	loadFont := func() {
		if prefs.Font == "" {
			return
		}
		path, err := fonts.Find(fonts.Dirs(), prefs.Font)
		if err != nil {
			log.Logf("font %q: %v", prefs.Font, err)
			return
		}
		font = rl.LoadFont(path)
		if font.Texture.ID == 0 {
			log.Logf("font %s: load failed", path)
			return
		}
		term.SetFont(font)
		dbg.SetFont(font)
	}
	unload := func() {
		if font.Texture.ID != 0 {
			rl.UnloadFont(font)
		}
		view.Unload()
	}
	graphics.Run("Island", prefs, update, draw, loadFont, unload)
}

// newRecorder opens a trace writer when ISLAND_TRACE_DIR is set or the scene enables tracing.
func newRecorder(cfg sceneconfig.Trace, log *logger.Logger) trace.Recorder {
	dir := env.String(env.TraceDir, "")
	if dir == "" && cfg.Enabled {
		dir = cfg.Dir
	}
	if dir == "" {
		return trace.Discard{}
	}
	log.Logf("tracing to %s", dir)
	return trace.NewWriter(dir, "island")
}
