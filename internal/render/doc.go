// Package render defines the value types shared by the batch compiler and
// the CLI: per-job render settings and the image preset catalogue.
//
// Settings are plain snapshots constructed per compile request; nothing in
// this package holds process-wide mutable state.
package render
