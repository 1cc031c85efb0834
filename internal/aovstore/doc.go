// Package aovstore persists per-scene AOV selections as JSON documents.
//
// Each scene owns exactly one document at <project>/render/json/<stem>.json
// with the shape Arnold's -rsa flag expects:
//
//	{ "aovs": ["beauty", "diffuse_direct"] }
//
// Documents are overwritten wholesale, never merged, and written via a
// temp file plus rename so a concurrent reader never observes a half
// written file. Loading distinguishes a missing document (normal "no prior
// configuration" state) from a present but malformed one so the CLI can
// warn about the latter.
package aovstore
