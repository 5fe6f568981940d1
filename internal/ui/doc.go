package ui

// Package ui contains the Fyne-based desktop interface: the player window
// controller, the view host driven by the transition pipeline, the on-screen
// control bar, sidebars, dialogs and theme. All UI strings are localized via
// Localization.
