package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"github.com/voxplay/voxplay/internal/config"
	"github.com/voxplay/voxplay/internal/events"
	"github.com/voxplay/voxplay/internal/media"
	"github.com/voxplay/voxplay/internal/platform"
	"github.com/voxplay/voxplay/internal/restore"
	"github.com/voxplay/voxplay/internal/ui"
)

var version = "dev"

type options struct {
	url          string
	musicMode    bool
	legacyChrome bool
	verbose      bool
}

func main() {
	opts := &options{}

	root := &cobra.Command{
		Use:     "voxplay [file]",
		Short:   "Desktop video player",
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			return run(opts, path)
		},
	}

	root.Flags().StringVar(&opts.url, "url", "", "media or playlist URL to open on launch")
	root.Flags().BoolVar(&opts.musicMode, "music", false, "start in the compact music window")
	root.Flags().BoolVar(&opts.legacyChrome, "legacy-chrome", false, "use the classic full-screen style")
	root.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(opts *options, path string) error {
	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	logger.Info("starting", "app", "voxplay", "version", version)

	myApp := app.NewWithID("com.voxplay.voxplay")
	myApp.Settings().SetTheme(ui.NewPlayerTheme())

	settings := config.NewSettings(myApp)
	if opts.legacyChrome {
		settings.SetLegacyFullScreen(true)
	}
	loc := ui.NewLocalization()
	loc.SetLanguage(settings.GetLanguage())

	configDir, err := platform.ConfigDir()
	if err != nil {
		return err
	}
	store, err := restore.NewStore(filepath.Join(configDir, restore.DefaultFileName), logger)
	if err != nil {
		return err
	}
	if watcher, werr := restore.NewWatcher(store, logger); werr == nil {
		if serr := watcher.Start(); serr != nil {
			logger.Warn("geometry watcher not started", "error", serr)
		}
		defer watcher.Stop()
	} else {
		logger.Warn("geometry watcher unavailable", "error", werr)
	}

	engine := media.NewEngine()
	bus := events.NewBus()

	window := ui.NewPlayerWindow(myApp, settings, loc, engine, store, bus, logger)
	window.Show()

	switch {
	case opts.url != "":
		window.OpenURL(opts.url)
	case path != "":
		window.OpenPath(path)
	}
	if opts.musicMode {
		window.ToggleMusicMode()
	}

	myApp.Run()
	return nil
}
