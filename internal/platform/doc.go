package platform

// Package platform contains OS integration glue: per-user directory
// resolution and OS open/reveal helpers for local media files.
