package transition

import (
	"github.com/voxplay/voxplay/internal/geometry"
	"github.com/voxplay/voxplay/internal/layout"
)

// StageID identifies one of the seven ordered pipeline stages.
type StageID int

const (
	StagePreTransition StageID = iota
	StageFadeOutOldViews
	StageCloseOldPanels
	StageUpdateHiddenViews
	StageOpenNewPanels
	StageFadeInNewViews
	StagePostTransition
)

// String returns the stage name used in diagnostics.
func (id StageID) String() string {
	switch id {
	case StagePreTransition:
		return "preTransition"
	case StageFadeOutOldViews:
		return "fadeOutOldViews"
	case StageCloseOldPanels:
		return "closeOldPanels"
	case StageUpdateHiddenViews:
		return "updateHiddenViews"
	case StageOpenNewPanels:
		return "openNewPanels"
	case StageFadeInNewViews:
		return "fadeInNewViews"
	case StagePostTransition:
		return "postTransition"
	default:
		return "unknown"
	}
}

// Stage is one unit of pipeline work, submitted to the Scheduler as a whole.
type Stage struct {
	ID  StageID
	Run func()
}

// ViewHost is the narrow capability interface the pipeline drives the view
// layer through. The engine never touches a concrete widget; implementations
// translate these calls into toolkit operations. Every method must be a safe
// no-op once the window is gone, and Present reports that state so stages
// can bail out early.
type ViewHost interface {
	Present() bool

	ApplyVisibility(r layout.Region, v layout.Visibility)
	FadeOut(regions []layout.Region)
	FadeIn(regions []layout.Region)

	ApplyFrame(f geometry.Rect)
	ApplyBarHeights(top, bottom float64)
	ApplySidebarWidth(edge layout.SidebarEdge, width float64)
	// ReorderSidebars pushes the given sidebar behind the other so a closing
	// panel cannot pop through the one staying open.
	ReorderSidebars(behind layout.SidebarEdge)

	SetChromeStyle(legacy bool)
	SwapOSCContainer(enabled bool, pos layout.OSCPosition)
	DetachSidebarContent(edge layout.SidebarEdge)
	AttachSidebarContent(edge layout.SidebarEdge, tab layout.Tab)
	SetMusicModeLayout(on bool)
	SetOnTop(on bool)

	ResetFadeTimer()
}

// MediaController is the slice of the playback engine the pipeline needs.
type MediaController interface {
	Pause()
	SetFullscreen(on bool)
}

// GeometryStore persists the current geometry for a mode so relaunching (or
// re-entering the mode) restores it.
type GeometryStore interface {
	SaveGeometry(mode layout.WindowMode, g geometry.WindowGeometry)
}

// Lifecycle receives end-of-transition events for other subsystems.
type Lifecycle interface {
	FullscreenChanged(entered bool)
	MusicModeChanged(entered bool)
	LayoutApplied(st layout.State)
}

// Host bundles the live, externally owned collaborators of one window.
type Host struct {
	Views ViewHost
	Media MediaController
	Store GeometryStore
	Life  Lifecycle

	// CommitLayout atomically publishes the new layout state as the
	// window's current one. It runs at the start of stage 1 so in-flight
	// callbacks reading current state mid-transition see the new value.
	CommitLayout func(layout.State)

	// OnTop is the window's on-top flag, re-applied at the end of the
	// transition.
	OnTop bool
}

// BuildPipeline assembles the ordered stages for a transition, omitting
// stages whose gating predicate says they would be structural no-ops.
// Stages are pure functions of the transition plus the host; each is
// submitted to the scheduler exactly once.
func BuildPipeline(t *Transition, h Host) []Stage {
	stages := []Stage{{ID: StagePreTransition, Run: func() { runPreTransition(t, h) }}}

	if t.NeedsFadeOutOldViews() {
		stages = append(stages, Stage{ID: StageFadeOutOldViews, Run: func() { runFadeOutOldViews(t, h) }})
	}
	if t.NeedsCloseOldPanels() {
		stages = append(stages, Stage{ID: StageCloseOldPanels, Run: func() { runCloseOldPanels(t, h) }})
	}
	if t.NeedsUpdateHiddenViews() {
		stages = append(stages, Stage{ID: StageUpdateHiddenViews, Run: func() { runUpdateHiddenViews(t, h) }})
	}
	if t.NeedsOpenNewPanels() {
		stages = append(stages, Stage{ID: StageOpenNewPanels, Run: func() { runOpenNewPanels(t, h) }})
	}
	if t.NeedsFadeInNewViews() {
		stages = append(stages, Stage{ID: StageFadeInNewViews, Run: func() { runFadeInNewViews(t, h) }})
	}

	stages = append(stages, Stage{ID: StagePostTransition, Run: func() { runPostTransition(t, h) }})
	return stages
}

func runPreTransition(t *Transition, h Host) {
	if !h.Views.Present() {
		return
	}
	// Commit before any view mutation.
	if h.CommitLayout != nil {
		h.CommitLayout(t.Output.Layout)
	}
	if h.Store != nil {
		h.Store.SaveGeometry(t.outSpec().Mode, t.Output.Geometry)
	}
	if h.Media != nil {
		if t.IsEnteringInteractiveMode() {
			h.Media.Pause()
		}
		if t.IsEnteringFullScreen() {
			h.Media.SetFullscreen(true)
		} else if t.IsExitingFullScreen() {
			h.Media.SetFullscreen(false)
		}
	}
}

func runFadeOutOldViews(t *Transition, h Host) {
	if !h.Views.Present() {
		return
	}
	// Opacity only; nothing is resized yet so now-invisible content cannot
	// flash during the panel stages.
	h.Views.FadeOut(t.FadeOutRegions())
}

func runCloseOldPanels(t *Transition, h Host) {
	if !h.Views.Present() {
		return
	}

	top, bottom := t.Input.Layout.TopBarTotalHeight(), t.Input.Layout.BottomBarHeight
	if out := t.Output.Layout.TopBarTotalHeight(); out < top {
		top = out
	}
	if out := t.Output.Layout.BottomBarHeight; out < bottom {
		bottom = out
	}
	h.Views.ApplyBarHeights(top, bottom)

	hidingLeading := t.IsHidingSidebar(layout.EdgeLeading)
	hidingTrailing := t.IsHidingSidebar(layout.EdgeTrailing)
	if hidingLeading != hidingTrailing {
		// Keep the closing sidebar behind the one staying put.
		if hidingLeading {
			h.Views.ReorderSidebars(layout.EdgeLeading)
		} else {
			h.Views.ReorderSidebars(layout.EdgeTrailing)
		}
	}
	if hidingLeading {
		h.Views.ApplySidebarWidth(layout.EdgeLeading, 0)
	}
	if hidingTrailing {
		h.Views.ApplySidebarWidth(layout.EdgeTrailing, 0)
	}

	if t.Middle != nil {
		h.Views.ApplyFrame(t.Middle.Frame)
	}
}

func runUpdateHiddenViews(t *Transition, h Host) {
	if !h.Views.Present() {
		return
	}

	if t.IsTogglingLegacyChrome() {
		h.Views.SetChromeStyle(t.outSpec().LegacyChrome)
	}
	if t.IsOSCChanging() {
		h.Views.SwapOSCContainer(t.outSpec().EnableOSC, t.outSpec().OSCPosition)
	}
	for _, edge := range []layout.SidebarEdge{layout.EdgeLeading, layout.EdgeTrailing} {
		if t.IsHidingSidebar(edge) {
			h.Views.DetachSidebarContent(edge)
		}
		if t.IsShowingSidebar(edge) {
			h.Views.AttachSidebarContent(edge, t.outSpec().Sidebar(edge).VisibleTab)
		}
	}
	if t.IsEnteringMusicMode() {
		h.Views.SetMusicModeLayout(true)
	} else if t.IsExitingMusicMode() {
		h.Views.SetMusicModeLayout(false)
	}
}

func runOpenNewPanels(t *Transition, h Host) {
	if !h.Views.Present() {
		return
	}

	out := t.Output.Layout
	h.Views.ApplyBarHeights(out.TopBarTotalHeight(), out.BottomBarHeight)

	for _, edge := range []layout.SidebarEdge{layout.EdgeLeading, layout.EdgeTrailing} {
		h.Views.ApplySidebarWidth(edge, sidebarTargetWidth(t.Output, edge))
	}

	for _, r := range layout.Regions() {
		h.Views.ApplyVisibility(r, out.VisibilityOf(r))
	}

	// Entering full screen skips the close stage, so a legacy entry commits
	// its visible-frame step here, right before the final frame.
	if t.Middle != nil && t.IsEnteringFullScreen() {
		h.Views.ApplyFrame(t.Middle.Frame)
	}
	h.Views.ApplyFrame(t.Output.Geometry.Frame)
}

func runFadeInNewViews(t *Transition, h Host) {
	if !h.Views.Present() {
		return
	}
	// Only after the open stage, so content fades in at its final size.
	h.Views.FadeIn(t.FadeInRegions())
}

func runPostTransition(t *Transition, h Host) {
	if !h.Views.Present() {
		return
	}

	h.Views.SetOnTop(h.OnTop)
	h.Views.ResetFadeTimer()

	if h.Store != nil {
		h.Store.SaveGeometry(t.outSpec().Mode, t.Output.Geometry)
	}
	if h.Life != nil {
		if t.IsEnteringFullScreen() {
			h.Life.FullscreenChanged(true)
		} else if t.IsExitingFullScreen() {
			h.Life.FullscreenChanged(false)
		}
		if t.IsEnteringMusicMode() {
			h.Life.MusicModeChanged(true)
		} else if t.IsExitingMusicMode() {
			h.Life.MusicModeChanged(false)
		}
		h.Life.LayoutApplied(t.Output.Layout)
	}
}

// sidebarTargetWidth extracts the width a sidebar should occupy from the
// endpoint's geometry, respecting its placement.
func sidebarTargetWidth(e Endpoint, edge layout.SidebarEdge) float64 {
	sb := e.Layout.Spec.Sidebar(edge)
	if !sb.IsVisible() {
		return 0
	}
	bars := e.Geometry.OutsideBars
	if sb.Placement == layout.PlacementInsideViewport {
		bars = e.Geometry.InsideBars
	}
	if edge == layout.EdgeLeading {
		return bars.Leading
	}
	return bars.Trailing
}
