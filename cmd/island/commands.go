package main

import (
	"errors"
	"flag"
	"fmt"
	"strconv"

	"island-demo/internal/commands"
	"island-demo/internal/debug"
	"island-demo/internal/engineconfig"
	"island-demo/internal/game"
	"island-demo/internal/logger"
	"island-demo/internal/scene"
)

// registerCommands adds the console commands. Example: "cmd timescale 128".
func registerCommands(reg *commands.Registry, g *game.Game, dbg *debug.Debug, view *scene.Scene, prefs *engineconfig.EnginePrefs, save func(), log *logger.Logger) {
	reg.Register("help", "list commands", nil, func([]string) error {
		for _, line := range reg.Help() {
			log.Log(line)
		}
		return nil
	})

	reg.Register("timescale", "timescale <f>: sky seconds per real second", nil, func(args []string) error {
		if len(args) != 1 {
			return errors.New("usage: timescale <f>")
		}
		f, err := strconv.ParseFloat(args[0], 64)
		if err != nil || f < 0 {
			return fmt.Errorf("timescale: bad value %q", args[0])
		}
		g.SetTimeScale(f)
		log.Logf("time scale %g", f)
		return nil
	})

	reg.Register("spawn", "spawn [box]: throw a box from the camera", nil, func(args []string) error {
		if len(args) > 0 && args[0] != "box" {
			return fmt.Errorf("spawn: unknown kind %q", args[0])
		}
		b := g.SpawnBox()
		log.Logf("spawned %s", b.Name)
		return nil
	})

	reg.Register("pause", "toggle pause and free roam", nil, func([]string) error {
		g.TogglePause()
		return nil
	})

	fpsFlags := flag.NewFlagSet("fps", flag.ContinueOnError)
	fpsShow := fpsFlags.Bool("show", false, "show the FPS counter")
	fpsHide := fpsFlags.Bool("hide", false, "hide the FPS counter")
	reg.Register("fps", "fps --show|--hide", fpsFlags, func([]string) error {
		switch {
		case *fpsShow:
			dbg.ShowFPS = true
		case *fpsHide:
			dbg.ShowFPS = false
		default:
			dbg.ShowFPS = !dbg.ShowFPS
		}
		prefs.ShowFPS = dbg.ShowFPS
		save()
		return nil
	})

	reg.Register("mem", "toggle the heap counter", nil, func([]string) error {
		dbg.ShowMemAlloc = !dbg.ShowMemAlloc
		prefs.ShowMemAlloc = dbg.ShowMemAlloc
		save()
		return nil
	})

	reg.Register("status", "toggle the simulation status overlay", nil, func([]string) error {
		dbg.ShowStatus = !dbg.ShowStatus
		prefs.ShowBodies = dbg.ShowStatus
		save()
		return nil
	})

	flockFlags := flag.NewFlagSet("flock", flag.ContinueOnError)
	watch := flockFlags.Int("watch", -1, "fish index to sample, -1 to stop")
	reg.Register("flock", "flock --watch N", flockFlags, func([]string) error {
		if *watch >= len(g.Flock.Members()) {
			return fmt.Errorf("flock: only %d fish", len(g.Flock.Members()))
		}
		g.WatchFish(*watch)
		if *watch >= 0 {
			dbg.ShowStatus = true
		}
		log.Logf("watching fish %d", *watch)
		return nil
	})

	reg.Register("render", "render <solid|wireframe|points>", nil, func(args []string) error {
		if len(args) != 1 || !engineconfig.RenderMode(args[0]).Valid() {
			return errors.New("usage: render <solid|wireframe|points>")
		}
		view.Mode = engineconfig.RenderMode(args[0])
		prefs.RenderMode = view.Mode
		save()
		return nil
	})
}
