// Package project models the active project directory and the paths
// derived from it.
//
// A Context wraps a validated project root; every relative location
// (scene files under render/, AOV documents under render/json/, generated
// batch scripts) is resolved through it so the join key between those
// artifacts — the scene stem — is computed in exactly one place.
//
// The package also remembers the last used project in a per-user settings
// file and provides an advisory file lock held while writing into a
// project so two renderbatch invocations cannot interleave their writes.
package project
