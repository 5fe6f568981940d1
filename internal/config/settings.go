package config

import (
	"fyne.io/fyne/v2"

	"github.com/voxplay/voxplay/internal/layout"
)

// Settings keys for Fyne preferences
const (
	KeyLegacyFullScreen   = "legacy_full_screen"
	KeyLeadingPlacement   = "leading_sidebar_placement"
	KeyTrailingPlacement  = "trailing_sidebar_placement"
	KeyTopBarPlacement    = "top_bar_placement"
	KeyBottomBarPlacement = "bottom_bar_placement"
	KeyEnableOSC          = "enable_osc"
	KeyOSCPosition        = "osc_position"
	KeyLanguage           = "app_language"
	KeyRememberGeometry   = "remember_geometry"
)

// Default values
const (
	DefaultLegacyFullScreen = false
	DefaultPlacement        = layout.PlacementOutsideViewport
	DefaultBarPlacement     = layout.PlacementInsideViewport
	DefaultEnableOSC        = true
	DefaultOSCPosition      = layout.OSCPositionFloating
	DefaultLanguage         = "system"
	DefaultRememberGeometry = true
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLegacyFullScreen returns whether full screen uses the legacy chrome
// style
func (s *Settings) GetLegacyFullScreen() bool {
	return s.app.Preferences().BoolWithFallback(KeyLegacyFullScreen, DefaultLegacyFullScreen)
}

// SetLegacyFullScreen sets the full-screen chrome style
func (s *Settings) SetLegacyFullScreen(legacy bool) {
	s.app.Preferences().SetBool(KeyLegacyFullScreen, legacy)
}

// GetSidebarPlacement returns the configured placement for a sidebar edge
func (s *Settings) GetSidebarPlacement(edge layout.SidebarEdge) layout.Placement {
	key := KeyLeadingPlacement
	if edge == layout.EdgeTrailing {
		key = KeyTrailingPlacement
	}
	return s.placement(key, DefaultPlacement)
}

// SetSidebarPlacement sets the placement for a sidebar edge
func (s *Settings) SetSidebarPlacement(edge layout.SidebarEdge, p layout.Placement) {
	key := KeyLeadingPlacement
	if edge == layout.EdgeTrailing {
		key = KeyTrailingPlacement
	}
	s.app.Preferences().SetString(key, string(p))
}

// GetTopBarPlacement returns the configured top bar placement
func (s *Settings) GetTopBarPlacement() layout.Placement {
	return s.placement(KeyTopBarPlacement, DefaultBarPlacement)
}

// SetTopBarPlacement sets the top bar placement
func (s *Settings) SetTopBarPlacement(p layout.Placement) {
	s.app.Preferences().SetString(KeyTopBarPlacement, string(p))
}

// GetBottomBarPlacement returns the configured bottom bar placement
func (s *Settings) GetBottomBarPlacement() layout.Placement {
	return s.placement(KeyBottomBarPlacement, DefaultBarPlacement)
}

// SetBottomBarPlacement sets the bottom bar placement
func (s *Settings) SetBottomBarPlacement(p layout.Placement) {
	s.app.Preferences().SetString(KeyBottomBarPlacement, string(p))
}

// GetEnableOSC returns whether the on-screen controller is enabled
func (s *Settings) GetEnableOSC() bool {
	return s.app.Preferences().BoolWithFallback(KeyEnableOSC, DefaultEnableOSC)
}

// SetEnableOSC toggles the on-screen controller
func (s *Settings) SetEnableOSC(enabled bool) {
	s.app.Preferences().SetBool(KeyEnableOSC, enabled)
}

// GetOSCPosition returns the configured on-screen controller position
func (s *Settings) GetOSCPosition() layout.OSCPosition {
	pos := layout.OSCPosition(s.app.Preferences().String(KeyOSCPosition))
	switch pos {
	case layout.OSCPositionFloating, layout.OSCPositionTop, layout.OSCPositionBottom:
		return pos
	}
	s.SetOSCPosition(DefaultOSCPosition)
	return DefaultOSCPosition
}

// SetOSCPosition sets the on-screen controller position
func (s *Settings) SetOSCPosition(pos layout.OSCPosition) {
	s.app.Preferences().SetString(KeyOSCPosition, string(pos))
}

// GetRememberGeometry returns whether window geometry is persisted per mode
func (s *Settings) GetRememberGeometry() bool {
	return s.app.Preferences().BoolWithFallback(KeyRememberGeometry, DefaultRememberGeometry)
}

// SetRememberGeometry toggles geometry persistence
func (s *Settings) SetRememberGeometry(remember bool) {
	s.app.Preferences().SetBool(KeyRememberGeometry, remember)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// BaseSpec assembles the layout draft a new window starts from. Sidebars
// begin hidden with their last placement restored; the window opens windowed.
func (s *Settings) BaseSpec() layout.Spec {
	return layout.NewSpec(layout.Spec{
		Mode: layout.ModeWindowed,
		LeadingSidebar: layout.Sidebar{
			Edge:      layout.EdgeLeading,
			TabGroups: []layout.TabGroup{layout.TabGroupSettings},
			Placement: s.GetSidebarPlacement(layout.EdgeLeading),
		},
		TrailingSidebar: layout.Sidebar{
			Edge:      layout.EdgeTrailing,
			TabGroups: []layout.TabGroup{layout.TabGroupPlaylist},
			Placement: s.GetSidebarPlacement(layout.EdgeTrailing),
		},
		TopBarPlacement:    s.GetTopBarPlacement(),
		BottomBarPlacement: s.GetBottomBarPlacement(),
		EnableOSC:          s.GetEnableOSC(),
		OSCPosition:        s.GetOSCPosition(),
		LegacyChrome:       s.GetLegacyFullScreen(),
	})
}

// placement reads a placement key, falling back to def for unknown values
func (s *Settings) placement(key string, def layout.Placement) layout.Placement {
	p := layout.Placement(s.app.Preferences().String(key))
	switch p {
	case layout.PlacementInsideViewport, layout.PlacementOutsideViewport:
		return p
	}
	s.app.Preferences().SetString(key, string(def))
	return def
}
