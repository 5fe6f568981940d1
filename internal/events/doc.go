// Package events fans layout lifecycle notifications out to interested
// subsystems (media engine, geometry store, UI chrome).
package events
