// Package geometry provides the pure window-geometry algebra for the player
// window: frame/viewport/video sizing, bar footprints, aspect-ratio fitting,
// and full-screen derivation. All operations return new values and never
// mutate in place, so geometries are safe to read from any goroutine.
package geometry
