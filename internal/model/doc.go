package model

// Package model defines domain data structures used across the app: media
// items, playlist entities, and playback status enums. Structures are
// designed for direct binding in the UI and explicit state transitions.
