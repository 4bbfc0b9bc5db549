// Package logtail reads the tail of gymtrack's diagnostic log for the log
// overlay.
//
// # Overview
//
// Read returns the last N lines of a file using a ring buffer of N
// entries, so memory stays bounded however large the log grows. Parse
// decodes one JSON line written by the logging package into an Entry and
// renders it compactly:
//
//	15:04:05 ERROR remote call failed op=delete workout workout_id=11
//
// Lines that are not JSON (a panic trace, a hand-edited file) pass through
// unchanged.
//
// # Error Handling
//
// A missing file is not an error: Read returns nil, nil and the overlay
// shows an empty log. Other I/O errors are wrapped and returned.
package logtail
