// Package restore persists window geometry per window and mode, so closing
// and reopening the app (or re-entering a mode) brings the window back where
// it was. Records live in a single YAML file under the config directory; a
// watcher picks up external edits.
package restore
