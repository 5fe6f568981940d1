package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2/app"

	"github.com/voxplay/voxplay/internal/config"
	"github.com/voxplay/voxplay/internal/events"
	"github.com/voxplay/voxplay/internal/media"
	"github.com/voxplay/voxplay/internal/platform"
	"github.com/voxplay/voxplay/internal/restore"
	"github.com/voxplay/voxplay/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID = "com.voxplay.voxplay"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)
	logger.Info("starting", "app", "voxplay", "version", version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewPlayerTheme())

	settings := config.NewSettings(myApp)
	loc := ui.NewLocalization()
	loc.SetLanguage(settings.GetLanguage())

	configDir, err := platform.ConfigDir()
	if err != nil {
		logger.Error("failed to resolve config dir", "error", err)
		os.Exit(1)
	}
	store, err := restore.NewStore(filepath.Join(configDir, restore.DefaultFileName), logger)
	if err != nil {
		logger.Error("failed to open geometry store", "error", err)
		os.Exit(1)
	}
	if watcher, err := restore.NewWatcher(store, logger); err == nil {
		if err := watcher.Start(); err != nil {
			logger.Warn("geometry watcher not started", "error", err)
		}
		defer watcher.Stop()
	} else {
		logger.Warn("geometry watcher unavailable", "error", err)
	}

	engine := media.NewEngine()
	bus := events.NewBus()

	window := ui.NewPlayerWindow(myApp, settings, loc, engine, store, bus, logger)
	window.Show()

	myApp.Run()
}
