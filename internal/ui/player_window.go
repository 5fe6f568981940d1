package ui

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/voxplay/voxplay/internal/config"
	"github.com/voxplay/voxplay/internal/events"
	"github.com/voxplay/voxplay/internal/geometry"
	"github.com/voxplay/voxplay/internal/layout"
	"github.com/voxplay/voxplay/internal/media"
	"github.com/voxplay/voxplay/internal/model"
	"github.com/voxplay/voxplay/internal/platform"
	"github.com/voxplay/voxplay/internal/restore"
	"github.com/voxplay/voxplay/internal/transition"
)

// PlayerWindow is the controller of one player window. It owns the current
// layout spec, derives endpoints for every requested change and hands the
// resulting transitions to the runner. All methods run on the UI goroutine.
type PlayerWindow struct {
	app      fyne.App
	window   fyne.Window
	settings *config.Settings
	loc      *Localization
	logger   *slog.Logger

	engine   *media.Engine
	resolver *media.Resolver
	bus      *events.Bus
	store    *restore.WindowStore
	windowID string

	views    *FyneViewHost
	controls *ControlBar
	leading  *SidebarView
	trailing *SidebarView
	surface  *VideoSurface

	runner *transition.Runner
	host   transition.Host

	mu     sync.Mutex
	spec   layout.Spec
	state  layout.State
	geom   geometry.WindowGeometry
	screen geometry.Screen
	onTop  bool

	settingsDialog *SettingsDialog
	playlist       *model.Playlist
}

// NewPlayerWindow builds a window, its view tree and its transition runner.
func NewPlayerWindow(app fyne.App, settings *config.Settings, loc *Localization,
	engine *media.Engine, store *restore.Store, bus *events.Bus, logger *slog.Logger) *PlayerWindow {

	if logger == nil {
		logger = slog.Default()
	}

	pw := &PlayerWindow{
		app:      app,
		settings: settings,
		loc:      loc,
		logger:   logger,
		engine:   engine,
		resolver: media.NewResolver(),
		bus:      bus,
		windowID: restore.NewWindowID(),
		screen:   defaultScreen(),
	}
	if settings.GetRememberGeometry() {
		// Reclaim the last session's identity so its geometry records apply.
		if id, ok := store.LatestWindowID(); ok {
			pw.windowID = id
		}
	}
	pw.store = store.ForWindow(pw.windowID)

	pw.window = app.NewWindow(loc.GetText(KeyAppTitle))

	pw.controls = NewControlBar(loc, ControlBarCallbacks{
		OnPlayPause:  engine.TogglePause,
		OnStop:       engine.Stop,
		OnPrevious:   pw.playPrevious,
		OnNext:       pw.playNext,
		OnFullScreen: pw.ToggleFullScreen,
	})
	pw.leading = NewSidebarView(layout.EdgeLeading, loc, pw.SelectSidebarTab)
	pw.trailing = NewSidebarView(layout.EdgeTrailing, loc, pw.SelectSidebarTab)
	pw.views = NewViewHost(pw.window, loc, pw.controls, pw.leading, pw.trailing,
		pw.ToggleSidebar, pw.ToggleOnTop)

	pw.surface = NewVideoSurface(VideoSurfaceCallbacks{
		OnTap:          engine.TogglePause,
		OnDoubleTap:    pw.ToggleFullScreen,
		OnSecondaryTap: pw.showContextMenu,
		OnActivity:     pw.views.ResetFadeTimer,
		OnScroll:       pw.scrollVolume,
	})
	pw.views.SetVideoSurface(pw.surface)

	engine.SetUpdateCallback(pw.onPlaybackUpdate)

	// The toolkit's real full-screen switch follows the pipeline, not the
	// other way round, so a queued transition never fights the driver.
	bus.Subscribe(events.Funcs{
		OnFullscreen: pw.window.SetFullScreen,
	})

	pw.host = transition.Host{
		Views:        pw.views,
		Media:        engine,
		Store:        &geometryRecorder{pw: pw},
		Life:         bus,
		CommitLayout: pw.commitLayout,
	}
	pw.runner = transition.NewRunner(NewAnimationScheduler(), pw.host, logger)

	pw.settingsDialog = NewSettingsDialog(settings, loc, pw.window, pw.ApplySettings)

	pw.spec = settings.BaseSpec()
	if lead, trail, ok := pw.store.Tabs(pw.spec.Mode); ok {
		pw.spec = pw.spec.WithSidebarTab(layout.EdgeLeading, lead)
		pw.spec = pw.spec.WithSidebarTab(layout.EdgeTrailing, trail)
	}
	pw.state = layout.BuildState(pw.spec)
	pw.leading.SetTabGroups(pw.spec.LeadingSidebar.TabGroups)
	pw.trailing.SetTabGroups(pw.spec.TrailingSidebar.TabGroups)

	pw.buildMenu()
	pw.bindShortcuts()
	pw.window.Resize(fyne.NewSize(DefaultWindowWidth, DefaultWindowHeight))

	return pw
}

// Window exposes the underlying toolkit window.
func (pw *PlayerWindow) Window() fyne.Window {
	return pw.window
}

// WindowID returns the persistent identity used for geometry restoration.
func (pw *PlayerWindow) WindowID() string {
	return pw.windowID
}

// Show presents the window and commits the initial layout synchronously,
// before the first frame is drawn.
func (pw *PlayerWindow) Show() {
	pw.window.Show()

	output := pw.buildEndpoint(pw.currentSpec())
	t := transition.New("initial-layout", transition.Endpoint{}, output)
	t.InitialLayout = true
	transition.NewRunner(transition.ImmediateScheduler{}, pw.host, pw.logger).Enqueue(t)
}

// SetScreen updates the display description and re-fits the window to it.
func (pw *PlayerWindow) SetScreen(s geometry.Screen) {
	pw.mu.Lock()
	pw.screen = s
	pw.mu.Unlock()
	pw.applySpec("screen-change", pw.currentSpec())
}

// ToggleFullScreen flips between full screen and the windowed equivalent,
// preserving an active interactive sub-mode.
func (pw *PlayerWindow) ToggleFullScreen() {
	spec := pw.currentSpec()
	var next layout.Spec
	switch {
	case spec.Mode == layout.ModeFullScreenInteractive:
		next = spec.WithMode(layout.ModeWindowedInteractive, spec.InteractiveMode)
	case spec.Mode.IsFullScreen():
		next = spec.WithMode(layout.ModeWindowed, layout.InteractiveModeNone)
	case spec.Mode == layout.ModeWindowedInteractive:
		next = spec.WithMode(layout.ModeFullScreenInteractive, spec.InteractiveMode)
	default:
		next = spec.WithMode(layout.ModeFullScreen, layout.InteractiveModeNone)
	}
	pw.applySpec("toggle-full-screen", next)
}

// ToggleMusicMode flips between the compact music window and windowed mode.
func (pw *PlayerWindow) ToggleMusicMode() {
	spec := pw.currentSpec()
	if spec.Mode.IsMusic() {
		pw.applySpec("exit-music", spec.WithMode(layout.ModeWindowed, layout.InteractiveModeNone))
		return
	}
	pw.applySpec("enter-music", spec.WithMode(layout.ModeMusic, layout.InteractiveModeNone))
}

// EnterInteractive opens the crop/selection overlay in the current
// presentation.
func (pw *PlayerWindow) EnterInteractive(im layout.InteractiveMode) {
	spec := pw.currentSpec()
	mode := layout.ModeWindowedInteractive
	if spec.Mode.IsFullScreen() {
		mode = layout.ModeFullScreenInteractive
	}
	pw.applySpec("enter-interactive", spec.WithMode(mode, im))
}

// ExitInteractive leaves the overlay, returning to the enclosing mode.
func (pw *PlayerWindow) ExitInteractive() {
	spec := pw.currentSpec()
	if !spec.Mode.IsInteractive() {
		return
	}
	mode := layout.ModeWindowed
	if spec.Mode.IsFullScreen() {
		mode = layout.ModeFullScreen
	}
	pw.applySpec("exit-interactive", spec.WithMode(mode, layout.InteractiveModeNone))
}

// ToggleSidebar opens a sidebar on its last tab, or closes it when visible.
func (pw *PlayerWindow) ToggleSidebar(edge layout.SidebarEdge) {
	spec := pw.currentSpec()
	sb := spec.Sidebar(edge)
	if sb.IsVisible() {
		pw.applySpec("close-sidebar", spec.WithSidebarTab(edge, layout.TabNone))
		return
	}
	tab := sb.VisibleTab
	if tab == layout.TabNone {
		tab = defaultTab(sb)
	}
	pw.applySpec("open-sidebar", spec.WithSidebarTab(edge, tab))
}

// SelectSidebarTab shows the given tab, opening its sidebar if needed.
func (pw *PlayerWindow) SelectSidebarTab(edge layout.SidebarEdge, tab layout.Tab) {
	pw.applySpec("select-tab", pw.currentSpec().WithSidebarTab(edge, tab))
}

// SetOSC toggles or moves the on-screen controller.
func (pw *PlayerWindow) SetOSC(enabled bool, pos layout.OSCPosition) {
	pw.applySpec("move-osc", pw.currentSpec().WithOSC(enabled, pos))
}

// ToggleOnTop flips the window's always-on-top flag. This is a window-level
// property, not a layout change, so no transition is queued.
func (pw *PlayerWindow) ToggleOnTop() {
	pw.mu.Lock()
	pw.onTop = !pw.onTop
	on := pw.onTop
	pw.mu.Unlock()

	pw.runner.SetOnTop(on)
	pw.views.SetOnTop(on)
}

// ApplySettings rebuilds the layout draft from the persisted settings while
// keeping the current mode and open sidebars.
func (pw *PlayerWindow) ApplySettings() {
	draft := pw.currentSpec()
	draft.LegacyChrome = pw.settings.GetLegacyFullScreen()
	draft.TopBarPlacement = pw.settings.GetTopBarPlacement()
	draft.BottomBarPlacement = pw.settings.GetBottomBarPlacement()
	draft.LeadingSidebar.Placement = pw.settings.GetSidebarPlacement(layout.EdgeLeading)
	draft.TrailingSidebar.Placement = pw.settings.GetSidebarPlacement(layout.EdgeTrailing)
	draft.EnableOSC = pw.settings.GetEnableOSC()
	draft.OSCPosition = pw.settings.GetOSCPosition()
	pw.applySpec("apply-settings", layout.NewSpec(draft))
}

// OpenURL starts playback of a single URL, or resolves it as a playlist when
// it carries a playlist parameter.
func (pw *PlayerWindow) OpenURL(url string) {
	if strings.Contains(url, media.PlaylistParam) {
		pw.openPlaylist(url)
		return
	}
	pw.playItem(&model.MediaItem{URL: url})
}

// OpenPath starts playback of a local file.
func (pw *PlayerWindow) OpenPath(path string) {
	pw.playItem(&model.MediaItem{LocalPath: path})
}

// currentSpec returns the committed spec under the lock.
func (pw *PlayerWindow) currentSpec() layout.Spec {
	pw.mu.Lock()
	defer pw.mu.Unlock()
	return pw.spec
}

// commitLayout publishes the new layout as current. Runs at the start of the
// pre-transition stage.
func (pw *PlayerWindow) commitLayout(st layout.State) {
	pw.mu.Lock()
	pw.spec = st.Spec
	pw.state = st
	pw.mu.Unlock()
}

// applySpec derives the target endpoint and queues the transition. Changes
// with no visible effect are dropped before they reach the runner.
func (pw *PlayerWindow) applySpec(name string, next layout.Spec) {
	pw.mu.Lock()
	input := transition.Endpoint{Layout: pw.state, Geometry: pw.geom}
	screen := pw.screen
	pw.mu.Unlock()

	output := pw.buildEndpoint(next)
	t := transition.New(name, input, output)

	if t.IsEnteringFullScreen() && output.Layout.Spec.LegacyChrome {
		mid := geometry.LegacyFullScreenIntermediate(screen,
			input.Geometry.OutsideBars, input.Geometry.InsideBars, output.Geometry.VideoAspect)
		t.Middle = &mid
	}

	if !t.HasVisibleEffect() {
		pw.logger.Debug("layout unchanged, dropping transition", "name", name)
		return
	}
	pw.runner.Enqueue(t)
}

// buildEndpoint derives state and geometry for a spec. Inside-placed sidebars
// that no longer fit next to each other are force-closed and the endpoint is
// re-derived once.
func (pw *PlayerWindow) buildEndpoint(spec layout.Spec) transition.Endpoint {
	st := layout.BuildState(spec)
	g := pw.geometryFor(st)

	if hideLeading, hideTrailing := insideSidebarOverflow(spec, g); hideLeading || hideTrailing {
		if hideLeading {
			spec = spec.WithSidebarTab(layout.EdgeLeading, layout.TabNone)
		}
		if hideTrailing {
			spec = spec.WithSidebarTab(layout.EdgeTrailing, layout.TabNone)
		}
		pw.logger.Warn("sidebars no longer fit viewport, force-closing",
			"leading", hideLeading, "trailing", hideTrailing)
		st = layout.BuildState(spec)
		g = pw.geometryFor(st)
	}

	return transition.Endpoint{Layout: st, Geometry: g}
}

// geometryFor computes the window geometry matching a derived state.
func (pw *PlayerWindow) geometryFor(st layout.State) geometry.WindowGeometry {
	spec := st.Spec
	outside, inside := barInsets(st)
	aspect := pw.engine.VideoAspect()

	pw.mu.Lock()
	screen := pw.screen
	cur := pw.geom
	curMode := pw.spec.Mode
	pw.mu.Unlock()

	if spec.Mode.IsFullScreen() {
		// Full screen draws all chrome over the video.
		inside.Top += outside.Top
		inside.Bottom += outside.Bottom
		inside.Leading += outside.Leading
		inside.Trailing += outside.Trailing
		g := geometry.FullScreen(screen, spec.LegacyChrome, geometry.Insets{}, inside, aspect)
		if spec.Mode.LocksViewportAspect() {
			// The frame is pinned to the screen, so only the selection
			// margins apply here.
			g = g.WithVideoMargins(interactiveMargins())
		}
		return g
	}

	var g geometry.WindowGeometry
	restored := false
	if pw.settings.GetRememberGeometry() {
		if saved, ok := pw.store.Geometry(spec.Mode); ok {
			g = saved.ResizeBars(outside, inside, aspect).FitToScreen(screen)
			restored = true
		}
	}
	if !restored {
		switch {
		case spec.Mode.IsMusic():
			g = defaultFrameGeometry(screen,
				float64(MusicWindowWidth), float64(MusicWindowHeight), outside, inside, aspect)
		case cur.Frame.Size == (geometry.Size{}) || curMode.IsFullScreen() || curMode.IsMusic():
			g = defaultFrameGeometry(screen,
				float64(DefaultWindowWidth), float64(DefaultWindowHeight), outside, inside, aspect)
		default:
			g = cur.ResizeBars(outside, inside, aspect).FitToScreen(screen)
		}
	}

	if spec.Mode.LocksViewportAspect() {
		// The window shrinks around the video until the container matches
		// the engine aspect exactly.
		g = g.LockViewportAspect(aspect, interactiveMargins()).FitToScreen(screen)
	}
	return g
}

// interactiveMargins is the selection chrome's fixed footprint around the
// video.
func interactiveMargins() geometry.Insets {
	m := geometry.InteractiveVideoMargin
	return geometry.Insets{Top: m, Bottom: m, Leading: m, Trailing: m}
}

// onPlaybackUpdate mirrors engine changes into the control bar and re-fits
// the video when a new item's aspect ratio lands.
func (pw *PlayerWindow) onPlaybackUpdate(item *model.MediaItem, state model.PlaybackState) {
	pw.controls.Update(item, state)

	if state == model.PlaybackPlaying {
		pw.applySpec("video-aspect", pw.currentSpec())
	}
}

func (pw *PlayerWindow) playItem(item *model.MediaItem) {
	if err := pw.engine.Open(item); err != nil {
		pw.logger.Error("failed to open media", "error", err)
		dialog.ShowError(err, pw.window)
	}
}

func (pw *PlayerWindow) playNext() {
	if pw.playlist == nil {
		return
	}
	if item := pw.playlist.Next(); item != nil {
		pw.playItem(item)
	}
}

func (pw *PlayerWindow) playPrevious() {
	if pw.playlist == nil {
		return
	}
	if item := pw.playlist.Previous(); item != nil {
		pw.playItem(item)
	}
}

func (pw *PlayerWindow) openPlaylist(url string) {
	go func() {
		pl, err := pw.resolver.ResolvePlaylist(context.Background(), url)
		fyne.Do(func() {
			if err != nil {
				pw.logger.Error("playlist resolution failed", "url", url, "error", err)
				dialog.ShowError(err, pw.window)
				return
			}
			pw.playlist = pl
			pw.trailing.SetPlaylist(pl, pw.selectPlaylistItem)
			pw.SelectSidebarTab(layout.EdgeTrailing, layout.TabPlaylist)
			if len(pl.Items) > 0 {
				pw.selectPlaylistItem(pl.Items[0])
			}
		})
	}()
}

func (pw *PlayerWindow) selectPlaylistItem(item *model.MediaItem) {
	if pw.playlist != nil {
		pw.playlist.Select(item.ID)
	}
	pw.playItem(item)
}

// showContextMenu opens the right-click menu over the video surface. File
// entries appear only when the current item is a local file.
func (pw *PlayerWindow) showContextMenu(pos fyne.Position) {
	items := []*fyne.MenuItem{
		fyne.NewMenuItem(pw.loc.GetText(KeyFullScreen), pw.ToggleFullScreen),
		fyne.NewMenuItem(pw.loc.GetText(KeyMusicMode), pw.ToggleMusicMode),
	}
	if item := pw.engine.Current(); item != nil && item.LocalPath != "" {
		path := item.LocalPath
		items = append(items,
			fyne.NewMenuItemSeparator(),
			fyne.NewMenuItem(pw.loc.GetText(KeyRevealInFileManager), func() {
				if err := platform.RevealInFileManager(path); err != nil {
					pw.logger.Error("failed to reveal file", "path", path, "error", err)
				}
			}),
			fyne.NewMenuItem(pw.loc.GetText(KeyOpenWithDefaultApp), func() {
				if err := platform.OpenWithDefaultApp(path); err != nil {
					pw.logger.Error("failed to open file externally", "path", path, "error", err)
				}
			}),
		)
	}
	widget.ShowPopUpMenuAtPosition(fyne.NewMenu("", items...), pw.window.Canvas(), pos)
}

// scrollVolume maps wheel input over the video to the playback volume.
func (pw *PlayerWindow) scrollVolume(dy float32) {
	switch {
	case dy > 0:
		pw.engine.AdjustVolume(media.VolumeScrollStep)
	case dy < 0:
		pw.engine.AdjustVolume(-media.VolumeScrollStep)
	}
}

func (pw *PlayerWindow) openFileDialog() {
	fd := dialog.NewFileOpen(func(uri fyne.URIReadCloser, err error) {
		if err != nil || uri == nil {
			return
		}
		uri.Close()
		pw.OpenPath(uri.URI().Path())
	}, pw.window)

	// Start browsing in the user's Videos directory when it resolves.
	if videos, err := platform.UserVideosDir(); err == nil {
		if lister, err := storage.ListerForURI(storage.NewFileURI(videos)); err == nil {
			fd.SetLocation(lister)
		}
	}
	fd.Show()
}

func (pw *PlayerWindow) openURLDialog() {
	entry := widget.NewEntry()
	entry.SetPlaceHolder(pw.loc.GetText(KeyEnterURL))
	dialog.ShowForm(pw.loc.GetText(KeyOpenURL), pw.loc.GetText(KeyOpen), pw.loc.GetText(KeyCancel),
		[]*widget.FormItem{widget.NewFormItem("URL", entry)},
		func(confirmed bool) {
			if !confirmed || entry.Text == "" {
				return
			}
			pw.OpenURL(entry.Text)
		}, pw.window)
}

func (pw *PlayerWindow) buildMenu() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem(pw.loc.GetText(KeyOpen), pw.openFileDialog),
		fyne.NewMenuItem(pw.loc.GetText(KeyOpenURL), pw.openURLDialog),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(pw.loc.GetText(KeySettings), pw.settingsDialog.Show),
	)
	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem(pw.loc.GetText(KeyFullScreen), pw.ToggleFullScreen),
		fyne.NewMenuItem(pw.loc.GetText(KeyMusicMode), pw.ToggleMusicMode),
		fyne.NewMenuItem(pw.loc.GetText(KeyAlwaysOnTop), pw.ToggleOnTop),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(pw.loc.GetText(KeyPlaylist), func() {
			pw.ToggleSidebar(layout.EdgeTrailing)
		}),
		fyne.NewMenuItem(pw.loc.GetText(KeyVideoSettings), func() {
			pw.ToggleSidebar(layout.EdgeLeading)
		}),
	)
	pw.window.SetMainMenu(fyne.NewMainMenu(fileMenu, viewMenu))
}

func (pw *PlayerWindow) bindShortcuts() {
	pw.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeySpace:
			pw.engine.TogglePause()
		case fyne.KeyF:
			pw.ToggleFullScreen()
		case fyne.KeyM:
			pw.ToggleMusicMode()
		case fyne.KeyEscape:
			if pw.currentSpec().Mode.IsFullScreen() {
				pw.ToggleFullScreen()
			}
		}
	})
}

// geometryRecorder tracks every committed geometry as the window's current
// one and writes it through to the per-mode store when persistence is on.
// Implements transition.GeometryStore.
type geometryRecorder struct {
	pw *PlayerWindow
}

func (g *geometryRecorder) SaveGeometry(mode layout.WindowMode, geo geometry.WindowGeometry) {
	g.pw.mu.Lock()
	g.pw.geom = geo
	g.pw.mu.Unlock()

	if !g.pw.settings.GetRememberGeometry() {
		return
	}
	g.pw.store.SaveGeometry(mode, geo)

	spec := g.pw.currentSpec()
	g.pw.store.SaveTabs(mode, visibleTab(spec.LeadingSidebar), visibleTab(spec.TrailingSidebar))
}

func visibleTab(sb layout.Sidebar) layout.Tab {
	if !sb.IsVisible() {
		return layout.TabNone
	}
	return sb.VisibleTab
}

// barInsets splits the derived bar metrics into outside and inside footprints
// according to the configured placements.
func barInsets(st layout.State) (outside, inside geometry.Insets) {
	spec := st.Spec

	if top := st.TopBarTotalHeight(); top > 0 && st.TopBar.IsVisible() {
		if spec.TopBarPlacement == layout.PlacementInsideViewport {
			inside.Top = top
		} else {
			outside.Top = top
		}
	}
	if bottom := st.BottomBarHeight; bottom > 0 && st.BottomBar.IsVisible() {
		if spec.BottomBarPlacement == layout.PlacementInsideViewport {
			inside.Bottom = bottom
		} else {
			outside.Bottom = bottom
		}
	}

	for _, edge := range []layout.SidebarEdge{layout.EdgeLeading, layout.EdgeTrailing} {
		sb := spec.Sidebar(edge)
		if !sb.IsVisible() {
			continue
		}
		w := float64(SidebarWidth)
		target := &outside
		if sb.Placement == layout.PlacementInsideViewport {
			target = &inside
		}
		if edge == layout.EdgeLeading {
			target.Leading = w
		} else {
			target.Trailing = w
		}
	}
	return outside, inside
}

// insideSidebarOverflow reports which inside-placed sidebars must be closed
// because they no longer fit the viewport together.
func insideSidebarOverflow(spec layout.Spec, g geometry.WindowGeometry) (hideLeading, hideTrailing bool) {
	var leadW, trailW float64
	lead, trail := spec.Sidebar(layout.EdgeLeading), spec.Sidebar(layout.EdgeTrailing)
	if lead.IsVisible() && lead.Placement == layout.PlacementInsideViewport {
		leadW = float64(SidebarWidth)
	}
	if trail.IsVisible() && trail.Placement == layout.PlacementInsideViewport {
		trailW = float64(SidebarWidth)
	}
	if leadW == 0 && trailW == 0 {
		return false, false
	}

	hl, ht := g.HideSidebarNeeded(leadW, trailW)
	return hl && leadW > 0, ht && trailW > 0
}

func defaultTab(sb layout.Sidebar) layout.Tab {
	for _, group := range sb.TabGroups {
		if tabs := tabsOfGroup(group); len(tabs) > 0 {
			return tabs[0]
		}
	}
	return layout.TabNone
}

// defaultFrameGeometry centers a fresh frame of the given size on the
// screen's visible area.
func defaultFrameGeometry(screen geometry.Screen, w, h float64,
	outside, inside geometry.Insets, aspect float64) geometry.WindowGeometry {

	vis := screen.VisibleFrame
	g := geometry.WindowGeometry{
		Frame: geometry.NewRect(
			vis.Origin.X+(vis.Size.Width-w)/2,
			vis.Origin.Y+(vis.Size.Height-h)/2,
			w, h),
		ScreenFrame: screen.Frame,
		OutsideBars: outside,
		InsideBars:  inside,
		VideoAspect: geometry.ClampAspect(aspect),
	}
	g.VideoSize = g.FitVideo(g.VideoAspect)
	return g.FitToScreen(screen)
}

// defaultScreen is the assumed display until platform glue reports the real
// one through SetScreen.
func defaultScreen() geometry.Screen {
	return geometry.Screen{
		Frame:        geometry.NewRect(0, 0, 1920, 1080),
		VisibleFrame: geometry.NewRect(0, 25, 1920, 1030),
	}
}
