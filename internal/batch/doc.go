// Package batch compiles render job descriptions into executable batch
// scripts for the external renderer.
//
// Compilation is a side-effect-free transformation: the compiler checks its
// preconditions (a known renderer executable, an active project), derives
// the per-scene paths, decides how the scene's AOV document participates,
// and emits the script text plus the path it should be written to. A
// separate writer persists the text with the configured encoding, using a
// temp file plus rename so a failed write never leaves a partial script.
//
// The flag spellings on the invocation line (-r, -proj, -s, -e, -x, -y,
// -cam, -rd, -im, -of, the -ai: sampling family, -rsa) are a compatibility
// contract with Render.exe and are reproduced byte for byte.
package batch
