package layout

import "log/slog"

// OSCPosition is where the on-screen controller lives.
type OSCPosition string

const (
	OSCPositionFloating OSCPosition = "floating"
	OSCPositionTop      OSCPosition = "top"
	OSCPositionBottom   OSCPosition = "bottom"
)

// String returns the string representation of the position.
func (p OSCPosition) String() string {
	return string(p)
}

// Spec is the immutable, declarative description of what the user and app
// want from the window layout. Specs are only built through NewSpec, which
// enforces the per-mode overrides, so no other code can produce an
// inconsistent combination.
type Spec struct {
	LeadingSidebar  Sidebar
	TrailingSidebar Sidebar

	Mode            WindowMode
	InteractiveMode InteractiveMode

	// LegacyChrome selects custom-drawn window decoration over the
	// toolkit's native chrome.
	LegacyChrome bool

	TopBarPlacement    Placement
	BottomBarPlacement Placement

	EnableOSC   bool
	OSCPosition OSCPosition
}

// NewSpec normalizes a draft spec into a valid one:
//
//   - an interactive mode without a sub-type falls back soft to windowed
//     (logged, never an error);
//   - music and interactive modes force sidebars hidden, OSC disabled,
//     bottom bar outside the viewport and a fixed top bar placement;
//   - a sidebar with no tab groups, or whose current tab's group it no
//     longer hosts, is forced hidden.
func NewSpec(draft Spec) Spec {
	s := draft

	if s.Mode.IsInteractive() && s.InteractiveMode == InteractiveModeNone {
		slog.Warn("interactive layout requested without a sub-type, falling back to windowed",
			"mode", s.Mode)
		s.Mode = ModeWindowed
	}
	if !s.Mode.IsInteractive() {
		s.InteractiveMode = InteractiveModeNone
	}

	if s.Mode.IsMusic() || s.Mode.IsInteractive() {
		s.LeadingSidebar.Visible = false
		s.TrailingSidebar.Visible = false
		s.EnableOSC = false
		s.BottomBarPlacement = PlacementOutsideViewport
		// Transport/selection chrome must never occlude the viewport.
		s.TopBarPlacement = PlacementOutsideViewport
	}

	s.LeadingSidebar.Edge = EdgeLeading
	s.TrailingSidebar.Edge = EdgeTrailing
	s.LeadingSidebar = sanitizeSidebar(s.LeadingSidebar)
	s.TrailingSidebar = sanitizeSidebar(s.TrailingSidebar)

	if s.OSCPosition == "" {
		s.OSCPosition = OSCPositionFloating
	}
	if s.TopBarPlacement == "" {
		s.TopBarPlacement = PlacementOutsideViewport
	}
	if s.BottomBarPlacement == "" {
		s.BottomBarPlacement = PlacementOutsideViewport
	}
	if s.Mode == "" {
		s.Mode = ModeWindowed
	}

	return s
}

func sanitizeSidebar(sb Sidebar) Sidebar {
	if len(sb.TabGroups) == 0 {
		sb.Visible = false
		sb.VisibleTab = TabNone
		return sb
	}
	if sb.VisibleTab != TabNone && !sb.HasGroup(sb.VisibleTab.Group()) {
		sb.Visible = false
		sb.VisibleTab = TabNone
	}
	return sb
}

// Sidebar returns the sidebar on the given edge.
func (s Spec) Sidebar(edge SidebarEdge) Sidebar {
	if edge == EdgeLeading {
		return s.LeadingSidebar
	}
	return s.TrailingSidebar
}

// WithMode returns a new spec in the given mode, reusing all unrelated
// fields. The interactive sub-type is only meaningful for interactive modes.
func (s Spec) WithMode(mode WindowMode, interactive InteractiveMode) Spec {
	draft := s
	draft.Mode = mode
	draft.InteractiveMode = interactive
	return NewSpec(draft)
}

// WithSidebarTab returns a new spec with the given edge showing tab, or
// hidden when tab is TabNone.
func (s Spec) WithSidebarTab(edge SidebarEdge, tab Tab) Spec {
	draft := s
	sb := draft.Sidebar(edge)
	if tab == TabNone {
		sb.Visible = false
	} else {
		sb.Visible = true
		sb.VisibleTab = tab
	}
	if edge == EdgeLeading {
		draft.LeadingSidebar = sb
	} else {
		draft.TrailingSidebar = sb
	}
	return NewSpec(draft)
}

// WithOSC returns a new spec with the OSC enabled flag and position changed.
func (s Spec) WithOSC(enabled bool, pos OSCPosition) Spec {
	draft := s
	draft.EnableOSC = enabled
	draft.OSCPosition = pos
	return NewSpec(draft)
}
