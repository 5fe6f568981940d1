package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings   = "⚙"
	IconPlay       = "▶"
	IconPause      = "⏸"
	IconStop       = "⏹"
	IconPrevious   = "⏮"
	IconNext       = "⏭"
	IconFolder     = "📁"
	IconClose      = "×"
	IconError      = "❌"
	IconLanguage   = "🌐"
	IconMenu       = "☰"
	IconMusic      = "🎵"
	IconPin        = "📌"
	IconFullScreen = "⛶"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)

// Window sizing
const (
	DefaultWindowWidth  float32 = 1024
	DefaultWindowHeight float32 = 600
	MusicWindowWidth    float32 = 420
	MusicWindowHeight   float32 = 520
)

// Sidebar sizing
const (
	SidebarWidth    float32 = 260
	SidebarRowMinH  float32 = 44
	SidebarTabWidth float32 = 96
)

// Animation timing
const (
	// StageDuration is how long one transition stage animates.
	StageDuration = 180 * time.Millisecond

	// ControlFadeDuration is the opacity ramp of fadeable chrome.
	ControlFadeDuration = 220 * time.Millisecond

	// IdleFadeDelay is how long the pointer must rest before fadeable
	// chrome hides.
	IdleFadeDelay = 3 * time.Second
)

// OSC behavior
const (
	FloatingOSCBottomMargin float32 = 24
	FloatingOSCWidthRatio           = 0.6
)
