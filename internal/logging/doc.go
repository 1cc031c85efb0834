// Package logging constructs the slog loggers used across renderbatch.
//
// It provides console and JSON handlers selected by configuration, typed
// attribute helpers so call sites stay terse, and component loggers that
// tag every record with the emitting subsystem. Library packages accept a
// *slog.Logger and fall back to a no-op logger when given nil, so tests
// stay quiet by default.
package logging
