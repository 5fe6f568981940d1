// Package layout defines the declarative layout model for a player window:
// the requested configuration (Spec), the derived renderable facts (State),
// and the enums they are built from. BuildState is a pure, table-driven
// derivation; the same Spec always yields the same State.
package layout
