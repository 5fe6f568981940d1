package ui

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/voxplay/voxplay/internal/geometry"
	"github.com/voxplay/voxplay/internal/layout"
)

// FyneViewHost renders one player window. It owns the canvas objects behind
// every chrome region and lays them out manually, so the transition pipeline
// can drive sizes, stacking and visibility without knowing any widget.
type FyneViewHost struct {
	window fyne.Window
	loc    *Localization

	mu      sync.Mutex
	present bool

	content  *fyne.Container
	viewport *canvas.Rectangle
	surface  fyne.CanvasObject

	titleBar       *fyne.Container
	titleIconText  *fyne.Container
	windowControls *fyne.Container
	accessories    *fyne.Container
	topBar         *fyne.Container
	bottomBar      *fyne.Container
	floatingBar    *fyne.Container
	leadingToggle  *widget.Button
	trailingToggle *widget.Button
	onTopToggle    *widget.Button

	leading  *SidebarView
	trailing *SidebarView
	controls *ControlBar

	regions    map[layout.Region]fyne.CanvasObject
	visibility map[layout.Region]layout.Visibility

	topHeight     float32
	bottomHeight  float32
	sidebarWidths map[layout.SidebarEdge]float32

	legacyChrome bool
	musicLayout  bool
	onTop        bool

	idleTimer *time.Timer
}

// NewViewHost builds the window's canvas tree. Callbacks wire the chrome
// buttons to the window controller.
func NewViewHost(window fyne.Window, loc *Localization, controls *ControlBar,
	leading, trailing *SidebarView,
	onToggleSidebar func(layout.SidebarEdge), onToggleOnTop func()) *FyneViewHost {

	h := &FyneViewHost{
		window:        window,
		loc:           loc,
		present:       true,
		leading:       leading,
		trailing:      trailing,
		controls:      controls,
		regions:       make(map[layout.Region]fyne.CanvasObject),
		visibility:    make(map[layout.Region]layout.Visibility),
		sidebarWidths: make(map[layout.SidebarEdge]float32),
	}

	h.viewport = canvas.NewRectangle(theme.Color(theme.ColorNameBackground))

	icon := widget.NewIcon(theme.MediaVideoIcon())
	title := widget.NewLabel(loc.GetText(KeyAppTitle))
	h.titleIconText = container.NewHBox(icon, title)

	closeBtn := widget.NewButtonWithIcon("", theme.WindowCloseIcon(), window.Close)
	closeBtn.Importance = widget.LowImportance
	h.windowControls = container.NewHBox(closeBtn)

	h.leadingToggle = widget.NewButtonWithIcon("", theme.MenuIcon(), func() {
		onToggleSidebar(layout.EdgeLeading)
	})
	h.leadingToggle.Importance = widget.LowImportance
	h.trailingToggle = widget.NewButtonWithIcon("", theme.ListIcon(), func() {
		onToggleSidebar(layout.EdgeTrailing)
	})
	h.trailingToggle.Importance = widget.LowImportance
	h.onTopToggle = widget.NewButton(IconPin, onToggleOnTop)
	h.onTopToggle.Importance = widget.LowImportance
	h.accessories = container.NewHBox(h.leadingToggle, h.onTopToggle, h.trailingToggle)

	h.titleBar = container.NewBorder(nil, nil, h.titleIconText, container.NewHBox(h.accessories, h.windowControls))
	h.topBar = container.NewStack(h.titleBar)
	h.bottomBar = container.NewStack()
	h.floatingBar = container.NewStack(controls.Container())

	h.regions[layout.RegionTitleBar] = h.titleBar
	h.regions[layout.RegionTitleIconAndText] = h.titleIconText
	h.regions[layout.RegionWindowControls] = h.windowControls
	h.regions[layout.RegionTitleBarAccessories] = h.accessories
	h.regions[layout.RegionLeadingSidebarToggle] = h.leadingToggle
	h.regions[layout.RegionTrailingSidebarToggle] = h.trailingToggle
	h.regions[layout.RegionOnTopToggle] = h.onTopToggle
	h.regions[layout.RegionFloatingControlBar] = h.floatingBar
	h.regions[layout.RegionTopBar] = h.topBar
	h.regions[layout.RegionBottomBar] = h.bottomBar

	// Stacking order: sidebars sit behind the bars so a closing panel slides
	// under the chrome, and the floating bar tops everything.
	h.content = container.NewWithoutLayout(
		h.viewport,
		leading.Container(),
		trailing.Container(),
		h.topBar,
		h.bottomBar,
		h.floatingBar,
	)
	window.SetContent(h.content)
	window.SetCloseIntercept(func() {
		h.mu.Lock()
		h.present = false
		h.mu.Unlock()
		window.Close()
	})

	return h
}

// SetVideoSurface mounts the interactive layer directly over the viewport.
// It tracks the viewport's rectangle in every relayout.
func (h *FyneViewHost) SetVideoSurface(surface fyne.CanvasObject) {
	h.mu.Lock()
	h.surface = surface
	h.mu.Unlock()

	// Insert right above the viewport so the chrome still draws on top.
	objs := append([]fyne.CanvasObject{h.content.Objects[0], surface}, h.content.Objects[1:]...)
	h.content.Objects = objs
	h.content.Refresh()
}

// Present reports whether the window still exists. Stage work bails out when
// it returns false.
func (h *FyneViewHost) Present() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.present
}

// ApplyVisibility shows or hides one chrome region.
func (h *FyneViewHost) ApplyVisibility(r layout.Region, v layout.Visibility) {
	h.mu.Lock()
	h.visibility[r] = v
	obj := h.regions[r]
	h.mu.Unlock()

	if obj == nil {
		return
	}
	if v.IsVisible() {
		obj.Show()
	} else {
		obj.Hide()
	}
	obj.Refresh()
}

// FadeOut hides the given regions once the fade window elapses. Canvas
// objects carry no per-object opacity, so the fade is a delayed hide.
func (h *FyneViewHost) FadeOut(regions []layout.Region) {
	objs := h.regionObjects(regions)
	var once sync.Once
	anim := fyne.NewAnimation(ControlFadeDuration, func(f float32) {
		if f >= 1 {
			once.Do(func() {
				for _, obj := range objs {
					obj.Hide()
				}
			})
		}
	})
	anim.Start()
}

// FadeIn re-shows the given regions.
func (h *FyneViewHost) FadeIn(regions []layout.Region) {
	for _, obj := range h.regionObjects(regions) {
		obj.Show()
		obj.Refresh()
	}
}

// ApplyFrame commits the target window size. Desktop drivers position
// windows themselves, so only the size component is applied.
func (h *FyneViewHost) ApplyFrame(f geometry.Rect) {
	h.window.Resize(fyne.NewSize(float32(f.Size.Width), float32(f.Size.Height)))
	h.relayout()
}

// ApplyBarHeights commits the top and bottom bar heights.
func (h *FyneViewHost) ApplyBarHeights(top, bottom float64) {
	h.mu.Lock()
	h.topHeight = float32(top)
	h.bottomHeight = float32(bottom)
	h.mu.Unlock()
	h.relayout()
}

// ApplySidebarWidth commits one sidebar's width.
func (h *FyneViewHost) ApplySidebarWidth(edge layout.SidebarEdge, width float64) {
	h.mu.Lock()
	h.sidebarWidths[edge] = float32(width)
	h.mu.Unlock()
	h.relayout()
}

// ReorderSidebars pushes the given sidebar behind the other in the stacking
// order.
func (h *FyneViewHost) ReorderSidebars(behind layout.SidebarEdge) {
	target := h.leading.Container()
	if behind == layout.EdgeTrailing {
		target = h.trailing.Container()
	}

	objs := h.content.Objects
	idx := -1
	for i, obj := range objs {
		if obj == target {
			idx = i
			break
		}
	}
	// Index 0 is the viewport; sidebars start at 1. Slot 1 draws first, so
	// it sits behind its sibling.
	if idx <= 1 {
		return
	}
	copy(objs[2:idx+1], objs[1:idx])
	objs[1] = target
	h.content.Refresh()
}

// SetChromeStyle switches between native and custom-drawn window chrome.
func (h *FyneViewHost) SetChromeStyle(legacy bool) {
	h.mu.Lock()
	h.legacyChrome = legacy
	h.mu.Unlock()
	h.relayout()
}

// SwapOSCContainer re-homes the control bar into the container matching its
// new position.
func (h *FyneViewHost) SwapOSCContainer(enabled bool, pos layout.OSCPosition) {
	bar := h.controls.Container()
	h.topBar.Remove(bar)
	h.bottomBar.Remove(bar)
	h.floatingBar.Remove(bar)

	if !enabled {
		h.relayout()
		return
	}
	switch pos {
	case layout.OSCPositionTop:
		h.topBar.Add(bar)
	case layout.OSCPositionBottom:
		h.bottomBar.Add(bar)
	default:
		h.floatingBar.Add(bar)
	}
	h.relayout()
}

// DetachSidebarContent empties a sidebar while it is hidden.
func (h *FyneViewHost) DetachSidebarContent(edge layout.SidebarEdge) {
	h.sidebar(edge).Detach()
}

// AttachSidebarContent mounts the panel for a tab into a sidebar.
func (h *FyneViewHost) AttachSidebarContent(edge layout.SidebarEdge, tab layout.Tab) {
	h.sidebar(edge).Attach(tab)
}

// SetMusicModeLayout swaps the center content between video and the compact
// music presentation.
func (h *FyneViewHost) SetMusicModeLayout(on bool) {
	h.mu.Lock()
	h.musicLayout = on
	h.mu.Unlock()
	h.controls.SetCompact(on)
	h.relayout()
}

// SetOnTop re-applies the window's on-top flag. The toggle button mirrors
// the state since not every driver exposes window levels.
func (h *FyneViewHost) SetOnTop(on bool) {
	h.mu.Lock()
	h.onTop = on
	h.mu.Unlock()

	if on {
		h.onTopToggle.Importance = widget.HighImportance
	} else {
		h.onTopToggle.Importance = widget.LowImportance
	}
	h.onTopToggle.Refresh()
}

// ResetFadeTimer restarts the idle countdown that hides fadeable chrome.
// Pointer activity calls this through the gesture layer.
func (h *FyneViewHost) ResetFadeTimer() {
	h.mu.Lock()
	if h.idleTimer != nil {
		h.idleTimer.Stop()
	}
	h.idleTimer = time.AfterFunc(IdleFadeDelay, h.fadeIdleChrome)
	h.mu.Unlock()

	// Activity also restores anything the previous countdown hid.
	h.FadeIn(h.fadeableRegions())
}

// fadeIdleChrome hides every region in a fadeable category.
func (h *FyneViewHost) fadeIdleChrome() {
	h.FadeOut(h.fadeableRegions())
}

func (h *FyneViewHost) fadeableRegions() []layout.Region {
	h.mu.Lock()
	defer h.mu.Unlock()

	var out []layout.Region
	for r, v := range h.visibility {
		if v.IsFadeable() {
			out = append(out, r)
		}
	}
	return out
}

func (h *FyneViewHost) sidebar(edge layout.SidebarEdge) *SidebarView {
	if edge == layout.EdgeLeading {
		return h.leading
	}
	return h.trailing
}

func (h *FyneViewHost) regionObjects(regions []layout.Region) []fyne.CanvasObject {
	h.mu.Lock()
	defer h.mu.Unlock()

	objs := make([]fyne.CanvasObject, 0, len(regions))
	for _, r := range regions {
		if obj := h.regions[r]; obj != nil {
			objs = append(objs, obj)
		}
	}
	return objs
}

// relayout repositions every region from the committed heights and widths.
func (h *FyneViewHost) relayout() {
	h.mu.Lock()
	top := h.topHeight
	bottom := h.bottomHeight
	leadW := h.sidebarWidths[layout.EdgeLeading]
	trailW := h.sidebarWidths[layout.EdgeTrailing]
	h.mu.Unlock()

	size := h.window.Canvas().Size()

	h.topBar.Resize(fyne.NewSize(size.Width, top))
	h.topBar.Move(fyne.NewPos(0, 0))

	h.bottomBar.Resize(fyne.NewSize(size.Width, bottom))
	h.bottomBar.Move(fyne.NewPos(0, size.Height-bottom))

	sidebarH := size.Height - top - bottom
	h.leading.Container().Resize(fyne.NewSize(leadW, sidebarH))
	h.leading.Container().Move(fyne.NewPos(0, top))
	h.trailing.Container().Resize(fyne.NewSize(trailW, sidebarH))
	h.trailing.Container().Move(fyne.NewPos(size.Width-trailW, top))

	h.viewport.Resize(fyne.NewSize(size.Width-leadW-trailW, sidebarH))
	h.viewport.Move(fyne.NewPos(leadW, top))

	h.mu.Lock()
	surface := h.surface
	h.mu.Unlock()
	if surface != nil {
		surface.Resize(h.viewport.Size())
		surface.Move(h.viewport.Position())
	}

	floatW := float32(float64(size.Width) * FloatingOSCWidthRatio)
	floatH := h.controls.MinHeight()
	h.floatingBar.Resize(fyne.NewSize(floatW, floatH))
	h.floatingBar.Move(fyne.NewPos(
		(size.Width-floatW)/2,
		size.Height-bottom-floatH-FloatingOSCBottomMargin,
	))

	h.content.Refresh()
}
