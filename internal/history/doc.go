// Package history records every compiled render job in a small SQLite
// database so an artist can see what was generated for which scene, with
// which frame range and resolution, and when.
//
// The database lives outside any project (default ~/.local/share/
// renderbatch/history.db) because projects move between machines and the
// history is a per-user convenience, not project data.
package history
