package layout

// Visibility is the display category of a controllable view region. The two
// fadeable categories are visible but may be faded out after an idle timer
// and faded back in on interaction; they form two independently fading
// groups.
type Visibility int

const (
	VisibilityHidden Visibility = iota
	VisibilityShowAlways
	VisibilityShowFadeableTopBar
	VisibilityShowFadeableNonTopBar
)

// IsVisible reports whether the region is shown at all.
func (v Visibility) IsVisible() bool {
	return v != VisibilityHidden
}

// IsFadeable reports whether the region is subject to the idle-fade timer.
func (v Visibility) IsFadeable() bool {
	return v == VisibilityShowFadeableTopBar || v == VisibilityShowFadeableNonTopBar
}

// String returns a readable name for logs.
func (v Visibility) String() string {
	switch v {
	case VisibilityHidden:
		return "hidden"
	case VisibilityShowAlways:
		return "showAlways"
	case VisibilityShowFadeableTopBar:
		return "showFadeableTopBar"
	case VisibilityShowFadeableNonTopBar:
		return "showFadeableNonTopBar"
	default:
		return "unknown"
	}
}

// Region identifies one of the controllable view regions of the window.
type Region int

const (
	RegionTitleBar Region = iota
	RegionTitleIconAndText
	RegionWindowControls
	RegionTitleBarAccessories
	RegionLeadingSidebarToggle
	RegionTrailingSidebarToggle
	RegionOnTopToggle
	RegionFloatingControlBar
	RegionTopBar
	RegionBottomBar
)

// Regions lists every controllable region in a stable order.
func Regions() []Region {
	return []Region{
		RegionTitleBar,
		RegionTitleIconAndText,
		RegionWindowControls,
		RegionTitleBarAccessories,
		RegionLeadingSidebarToggle,
		RegionTrailingSidebarToggle,
		RegionOnTopToggle,
		RegionFloatingControlBar,
		RegionTopBar,
		RegionBottomBar,
	}
}

// String returns a readable name for logs.
func (r Region) String() string {
	switch r {
	case RegionTitleBar:
		return "titleBar"
	case RegionTitleIconAndText:
		return "titleIconAndText"
	case RegionWindowControls:
		return "windowControls"
	case RegionTitleBarAccessories:
		return "titleBarAccessories"
	case RegionLeadingSidebarToggle:
		return "leadingSidebarToggle"
	case RegionTrailingSidebarToggle:
		return "trailingSidebarToggle"
	case RegionOnTopToggle:
		return "onTopToggle"
	case RegionFloatingControlBar:
		return "floatingControlBar"
	case RegionTopBar:
		return "topBar"
	case RegionBottomBar:
		return "bottomBar"
	default:
		return "unknown"
	}
}
