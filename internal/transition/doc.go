// Package transition implements the diff-driven layout transition pipeline:
// a Transition pairs an input and output (layout state, window geometry) and
// derives from them which views must fade, which panels must close or open,
// and which structural swaps must happen in between. The seven pipeline
// stages run strictly ordered through a Scheduler; stage n+1 never starts
// before stage n's visual work has been committed.
package transition
