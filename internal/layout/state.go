package layout

// Bar and sidebar metrics in points.
const (
	StandardTitleBarHeight = 28.0
	// ReducedTitleBarHeight applies when the title bar shares the top bar
	// with the OSC strip.
	ReducedTitleBarHeight = 20.0

	TopOSCHeight    = 40.0
	BottomOSCHeight = 44.0

	// MusicModeBarHeight is the fixed transport bar of music mode.
	MusicModeBarHeight = 72.0
	// InteractiveBarHeight is the fixed confirm/cancel bar of interactive
	// modes.
	InteractiveBarHeight = 60.0

	DefaultSidebarTabHeight = 48.0
	MinSidebarTabHeight     = 24.0
	MaxSidebarTabHeight     = 68.0

	DefaultSidebarDownshift = 0.0
)

// State is the pure derivation of a Spec into concrete renderable facts:
// a visibility category per region plus the bar and sidebar metrics the
// geometry is computed from. States are value objects; they are rebuilt via
// BuildState on every change, never patched field by field.
type State struct {
	Spec Spec

	TitleBar              Visibility
	TitleIconAndText      Visibility
	WindowControls        Visibility
	TitleBarAccessories   Visibility
	LeadingSidebarToggle  Visibility
	TrailingSidebarToggle Visibility
	OnTopToggle           Visibility
	FloatingControlBar    Visibility
	TopBar                Visibility
	BottomBar             Visibility

	TitleBarHeight   float64
	TopOSCHeight     float64
	BottomBarHeight  float64
	SidebarTabHeight float64
	SidebarDownshift float64
}

// VisibilityOf returns the visibility category of the given region.
func (st State) VisibilityOf(r Region) Visibility {
	switch r {
	case RegionTitleBar:
		return st.TitleBar
	case RegionTitleIconAndText:
		return st.TitleIconAndText
	case RegionWindowControls:
		return st.WindowControls
	case RegionTitleBarAccessories:
		return st.TitleBarAccessories
	case RegionLeadingSidebarToggle:
		return st.LeadingSidebarToggle
	case RegionTrailingSidebarToggle:
		return st.TrailingSidebarToggle
	case RegionOnTopToggle:
		return st.OnTopToggle
	case RegionFloatingControlBar:
		return st.FloatingControlBar
	case RegionTopBar:
		return st.TopBar
	case RegionBottomBar:
		return st.BottomBar
	}
	return VisibilityHidden
}

// TopBarTotalHeight is the combined height of the title bar and a top OSC.
func (st State) TopBarTotalHeight() float64 {
	return st.TitleBarHeight + st.TopOSCHeight
}

// stateRule is one row of the derivation table. Rows are applied in order;
// each row is independently testable and new modes only add rows.
type stateRule struct {
	name  string
	when  func(Spec) bool
	apply func(Spec, *State)
}

var stateRules = []stateRule{
	{
		name: "windowed chrome",
		when: func(s Spec) bool {
			return !s.Mode.IsFullScreen() && !s.Mode.IsMusic() && !s.Mode.IsInteractive()
		},
		apply: func(s Spec, st *State) {
			v := VisibilityShowAlways
			if s.TopBarPlacement == PlacementInsideViewport {
				v = VisibilityShowFadeableTopBar
			}
			st.TitleBar = v
			st.TitleIconAndText = v
			st.WindowControls = v
			st.TitleBarAccessories = v
			st.TopBar = v
			st.TitleBarHeight = StandardTitleBarHeight
		},
	},
	{
		name: "full screen native",
		when: func(s Spec) bool {
			return s.Mode.IsFullScreen() && !s.LegacyChrome && !s.Mode.IsInteractive()
		},
		apply: func(s Spec, st *State) {
			// No title bar container; icon, text and the window-control
			// buttons render on their own.
			st.TitleBar = VisibilityHidden
			st.TitleIconAndText = VisibilityShowAlways
			st.WindowControls = VisibilityShowAlways
			st.TitleBarAccessories = VisibilityShowFadeableTopBar
			st.TopBar = VisibilityShowFadeableTopBar
			st.TitleBarHeight = StandardTitleBarHeight
		},
	},
	{
		name: "full screen legacy",
		when: func(s Spec) bool {
			return s.Mode.IsFullScreen() && s.LegacyChrome && !s.Mode.IsInteractive()
		},
		apply: func(s Spec, st *State) {
			// Legacy full screen draws no chrome at all; the top bar only
			// appears if an OSC claims it below.
			st.TopBar = VisibilityHidden
		},
	},
	{
		name: "music mode",
		when: func(s Spec) bool { return s.Mode.IsMusic() },
		apply: func(s Spec, st *State) {
			st.WindowControls = VisibilityShowFadeableNonTopBar
			st.BottomBar = VisibilityShowAlways
			st.BottomBarHeight = MusicModeBarHeight
		},
	},
	{
		name: "interactive mode",
		when: func(s Spec) bool { return s.Mode.IsInteractive() },
		apply: func(s Spec, st *State) {
			st.TitleBar = VisibilityShowAlways
			st.TitleIconAndText = VisibilityShowAlways
			st.WindowControls = VisibilityShowAlways
			st.TopBar = VisibilityShowAlways
			st.TitleBarHeight = StandardTitleBarHeight
			st.BottomBar = VisibilityShowAlways
			st.BottomBarHeight = InteractiveBarHeight
		},
	},
	{
		name: "sidebar toggles and on-top",
		when: func(s Spec) bool { return !s.Mode.IsMusic() && !s.Mode.IsInteractive() },
		apply: func(s Spec, st *State) {
			v := st.TitleBar
			if !v.IsVisible() {
				v = st.TopBar
			}
			if len(s.LeadingSidebar.TabGroups) > 0 {
				st.LeadingSidebarToggle = v
			}
			if len(s.TrailingSidebar.TabGroups) > 0 {
				st.TrailingSidebarToggle = v
			}
			st.OnTopToggle = v
		},
	},
	{
		name: "osc top",
		when: func(s Spec) bool { return s.EnableOSC && s.OSCPosition == OSCPositionTop },
		apply: func(s Spec, st *State) {
			st.TopOSCHeight = TopOSCHeight
			if st.TitleBar.IsVisible() {
				// The title bar shares the top bar with the OSC strip.
				st.TitleBarHeight = ReducedTitleBarHeight
			}
			if !st.TopBar.IsVisible() {
				st.TopBar = VisibilityShowFadeableTopBar
			}
		},
	},
	{
		name: "osc bottom",
		when: func(s Spec) bool { return s.EnableOSC && s.OSCPosition == OSCPositionBottom },
		apply: func(s Spec, st *State) {
			if s.BottomBarPlacement == PlacementInsideViewport {
				st.BottomBar = VisibilityShowFadeableNonTopBar
			} else {
				st.BottomBar = VisibilityShowAlways
			}
			st.BottomBarHeight = BottomOSCHeight
		},
	},
	{
		name: "osc floating",
		when: func(s Spec) bool { return s.EnableOSC && s.OSCPosition == OSCPositionFloating },
		apply: func(s Spec, st *State) {
			st.FloatingControlBar = VisibilityShowFadeableNonTopBar
		},
	},
	{
		name: "sidebar tab metrics",
		when: func(s Spec) bool { return true },
		apply: func(s Spec, st *State) {
			st.SidebarTabHeight = DefaultSidebarTabHeight
			st.SidebarDownshift = DefaultSidebarDownshift
			if s.TopBarPlacement != PlacementInsideViewport || !st.TopBar.IsVisible() {
				return
			}
			// Align sidebar tabs with the title/OSC strip above them.
			total := st.TopBarTotalHeight()
			if total <= 0 {
				return
			}
			st.SidebarTabHeight = clamp(total, MinSidebarTabHeight, MaxSidebarTabHeight)
			st.SidebarDownshift = total
		},
	},
}

// BuildState derives the renderable State for a spec. Deterministic and
// side-effect free: the table rows run in order over a zeroed state.
func BuildState(spec Spec) State {
	st := State{Spec: spec}
	for _, rule := range stateRules {
		if rule.when(spec) {
			rule.apply(spec, &st)
		}
	}
	return st
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
