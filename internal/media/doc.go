package media

// Package media hosts the playback engine and the playlist resolver. The
// engine tracks the playback state machine of the current item and notifies
// the UI through a callback; the resolver fetches playlist entries for the
// playlist sidebar tab.
