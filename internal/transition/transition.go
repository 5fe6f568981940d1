package transition

import (
	"log/slog"
	"sync"

	"github.com/voxplay/voxplay/internal/geometry"
	"github.com/voxplay/voxplay/internal/layout"
)

// Endpoint is one side of a transition: a derived layout state together with
// the window geometry computed for it.
type Endpoint struct {
	Layout   layout.State
	Geometry geometry.WindowGeometry
}

// Transition describes a single morph from one layout to another. It is
// created fresh for every requested change and discarded once its pipeline
// stages complete. All "is X changing" predicates are derived from the
// stored endpoints on every call and never cached.
type Transition struct {
	// Name is used only for diagnostics.
	Name string

	Input  Endpoint
	Output Endpoint

	// Middle, when set, is the intermediate geometry of a two-phase bar
	// resize (or the visible-frame step of a legacy full-screen entry).
	Middle *geometry.WindowGeometry

	// InitialLayout marks the window's very first layout, where there is no
	// prior visible state to animate from.
	InitialLayout bool

	vanishedTabLog sync.Once
}

// New builds a transition between two endpoints.
func New(name string, input, output Endpoint) *Transition {
	return &Transition{Name: name, Input: input, Output: output}
}

func (t *Transition) inSpec() layout.Spec  { return t.Input.Layout.Spec }
func (t *Transition) outSpec() layout.Spec { return t.Output.Layout.Spec }

// Mode transitions. "Entering" treats the initial layout as an entry even if
// the input nominally already carries the mode; "exiting" has no such
// carve-out.

func (t *Transition) IsEnteringFullScreen() bool {
	return t.outSpec().Mode.IsFullScreen() && (!t.inSpec().Mode.IsFullScreen() || t.InitialLayout)
}

func (t *Transition) IsExitingFullScreen() bool {
	return !t.outSpec().Mode.IsFullScreen() && t.inSpec().Mode.IsFullScreen()
}

func (t *Transition) IsEnteringMusicMode() bool {
	return t.outSpec().Mode.IsMusic() && (!t.inSpec().Mode.IsMusic() || t.InitialLayout)
}

func (t *Transition) IsExitingMusicMode() bool {
	return !t.outSpec().Mode.IsMusic() && t.inSpec().Mode.IsMusic()
}

func (t *Transition) IsEnteringInteractiveMode() bool {
	return t.outSpec().Mode.IsInteractive() && (!t.inSpec().Mode.IsInteractive() || t.InitialLayout)
}

func (t *Transition) IsExitingInteractiveMode() bool {
	return !t.outSpec().Mode.IsInteractive() && t.inSpec().Mode.IsInteractive()
}

// Placement changes.

func (t *Transition) IsTopBarPlacementChanging() bool {
	return t.inSpec().TopBarPlacement != t.outSpec().TopBarPlacement
}

func (t *Transition) IsBottomBarPlacementChanging() bool {
	return t.inSpec().BottomBarPlacement != t.outSpec().BottomBarPlacement
}

func (t *Transition) IsSidebarPlacementChanging(edge layout.SidebarEdge) bool {
	return t.inSpec().Sidebar(edge).Placement != t.outSpec().Sidebar(edge).Placement
}

func (t *Transition) IsTogglingLegacyChrome() bool {
	return t.inSpec().LegacyChrome != t.outSpec().LegacyChrome
}

// Sidebar show/hide semantics.

// IsHidingAndThenShowingSidebar reports a sidebar that stays visible but
// must be hidden and re-shown mid-transition because its placement or its
// visible tab group changed.
func (t *Transition) IsHidingAndThenShowingSidebar(edge layout.SidebarEdge) bool {
	in, out := t.inSpec().Sidebar(edge), t.outSpec().Sidebar(edge)
	if !in.IsVisible() || !out.IsVisible() {
		return false
	}
	return in.Placement != out.Placement || in.VisibleTabGroup() != out.VisibleTabGroup()
}

// IsShowingSidebar reports whether the sidebar must animate open.
func (t *Transition) IsShowingSidebar(edge layout.SidebarEdge) bool {
	in, out := t.inSpec().Sidebar(edge), t.outSpec().Sidebar(edge)
	if !in.IsVisible() && out.IsVisible() {
		return true
	}
	return t.IsHidingAndThenShowingSidebar(edge)
}

// IsHidingSidebar reports whether the sidebar must animate closed. A sidebar
// whose visible tab group vanished from the new tab-group set is an internal
// consistency error; it is logged once and still handled as a hide so no
// dangling panel is left rendered.
func (t *Transition) IsHidingSidebar(edge layout.SidebarEdge) bool {
	in, out := t.inSpec().Sidebar(edge), t.outSpec().Sidebar(edge)
	if in.IsVisible() && !out.IsVisible() {
		if g := in.VisibleTabGroup(); g != "" && !out.HasGroup(g) && len(out.TabGroups) > 0 {
			t.vanishedTabLog.Do(func() {
				slog.Error("visible sidebar tab group missing from new layout, hiding sidebar",
					"transition", t.Name, "edge", edge, "group", g)
			})
		}
		return true
	}
	return t.IsHidingAndThenShowingSidebar(edge)
}

// IsTogglingVisibilityOfAnySidebar reports whether either sidebar opens or
// closes during this transition.
func (t *Transition) IsTogglingVisibilityOfAnySidebar() bool {
	for _, edge := range []layout.SidebarEdge{layout.EdgeLeading, layout.EdgeTrailing} {
		if t.IsShowingSidebar(edge) || t.IsHidingSidebar(edge) {
			return true
		}
	}
	return false
}

// IsOSCChanging reports whether the on-screen controller is toggled or moved.
func (t *Transition) IsOSCChanging() bool {
	in, out := t.inSpec(), t.outSpec()
	if in.EnableOSC != out.EnableOSC {
		return true
	}
	return in.EnableOSC && in.OSCPosition != out.OSCPosition
}

// IsWindowFrameChanging reports whether the committed window frame differs.
func (t *Transition) IsWindowFrameChanging() bool {
	return t.Input.Geometry.Frame != t.Output.Geometry.Frame
}

// AreBarHeightsChanging reports whether any bar height differs between the
// endpoints.
func (t *Transition) AreBarHeightsChanging() bool {
	in, out := t.Input.Layout, t.Output.Layout
	return in.TopBarTotalHeight() != out.TopBarTotalHeight() ||
		in.BottomBarHeight != out.BottomBarHeight
}

// FadeOutRegions lists the regions that must drop opacity before anything is
// resized: regions disappearing entirely plus regions changing fade
// category (they re-enter through FadeInRegions).
func (t *Transition) FadeOutRegions() []layout.Region {
	var regions []layout.Region
	for _, r := range layout.Regions() {
		in, out := t.Input.Layout.VisibilityOf(r), t.Output.Layout.VisibilityOf(r)
		if in.IsVisible() && (out == layout.VisibilityHidden || in != out) {
			regions = append(regions, r)
		}
	}
	return regions
}

// FadeInRegions lists the regions that must raise opacity once the new sizes
// are committed.
func (t *Transition) FadeInRegions() []layout.Region {
	var regions []layout.Region
	for _, r := range layout.Regions() {
		in, out := t.Input.Layout.VisibilityOf(r), t.Output.Layout.VisibilityOf(r)
		if out.IsVisible() && (in == layout.VisibilityHidden || in != out) {
			regions = append(regions, r)
		}
	}
	return regions
}

// Pipeline gating predicates. Each is a plain OR of the predicates above;
// the pipeline skips a stage whose gate is false rather than running it as
// an empty operation.

func (t *Transition) NeedsFadeOutOldViews() bool {
	return len(t.FadeOutRegions()) > 0 ||
		t.IsOSCChanging() ||
		t.IsTogglingLegacyChrome() ||
		t.isChangingMode()
}

// NeedsCloseOldPanels gates stage 3. Entering full screen skips the close to
// avoid an unwanted bounce before the frame jumps to the screen.
func (t *Transition) NeedsCloseOldPanels() bool {
	if t.IsEnteringFullScreen() {
		return false
	}
	closing := t.IsHidingSidebar(layout.EdgeLeading) || t.IsHidingSidebar(layout.EdgeTrailing)
	shrinking := t.Input.Layout.TopBarTotalHeight() > t.Output.Layout.TopBarTotalHeight() ||
		t.Input.Layout.BottomBarHeight > t.Output.Layout.BottomBarHeight
	return closing || shrinking || t.Middle != nil ||
		t.IsTopBarPlacementChanging() || t.IsBottomBarPlacementChanging()
}

func (t *Transition) NeedsUpdateHiddenViews() bool {
	return t.IsTogglingLegacyChrome() ||
		t.IsOSCChanging() ||
		t.IsEnteringMusicMode() || t.IsExitingMusicMode() ||
		t.IsShowingSidebar(layout.EdgeLeading) || t.IsShowingSidebar(layout.EdgeTrailing) ||
		t.IsHidingSidebar(layout.EdgeLeading) || t.IsHidingSidebar(layout.EdgeTrailing)
}

func (t *Transition) NeedsOpenNewPanels() bool {
	return t.IsShowingSidebar(layout.EdgeLeading) || t.IsShowingSidebar(layout.EdgeTrailing) ||
		t.AreBarHeightsChanging() ||
		t.IsWindowFrameChanging()
}

func (t *Transition) NeedsFadeInNewViews() bool {
	return len(t.FadeInRegions()) > 0 ||
		t.IsOSCChanging() ||
		t.IsTogglingLegacyChrome() ||
		t.isChangingMode()
}

// HasVisibleEffect reports whether any stage with a visible effect would
// run. A transition built from identical endpoints has none.
func (t *Transition) HasVisibleEffect() bool {
	return t.NeedsFadeOutOldViews() ||
		t.NeedsCloseOldPanels() ||
		t.NeedsUpdateHiddenViews() ||
		t.NeedsOpenNewPanels() ||
		t.NeedsFadeInNewViews()
}

func (t *Transition) isChangingMode() bool {
	return t.inSpec().Mode != t.outSpec().Mode
}
