// Package preflight verifies that a project and renderer are ready for
// script generation before any file is written.
//
// Checks never mutate anything; each returns a Result the status command
// renders for the user.
package preflight
