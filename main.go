package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	baseDir   string
	debugMode bool
	serverURL string
)

func main() {
	flag.StringVar(&serverURL, "url", "", "tracker WebSocket URL (overrides settings.json)")
	flag.BoolVar(&debugMode, "debug", false, "verbose/debug logging")
	flag.Parse()

	baseDir = os.Getenv("PWD")
	if baseDir == "" {
		var err error
		if baseDir, err = os.Getwd(); err != nil {
			log.Fatalf("get working directory: %v", err)
		}
	}

	loadSettings()
	if serverURL != "" {
		gs.ServerURL = serverURL
	}
	setupLogging(debugMode)
	defer func() {
		if r := recover(); r != nil {
			logError("panic: %v\n%s", r, debug.Stack())
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	adapter := newWSAdapter(gs.ServerURL)
	go adapter.run(ctx)

	consoleMessage("Starting...")

	ebiten.SetWindowSize(initialWindowW, initialWindowH)
	ebiten.SetWindowTitle("Gesture Modeler")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(newGame(ctx, adapter)); err != nil && err != ebiten.Termination {
		logError("game loop: %v", err)
	}

	if settingsDirty {
		saveSettings()
	}
}
