// Package deps locates the external renderer executable and reports its
// availability.
//
// An explicitly configured path always wins; otherwise the conventional
// Autodesk install roots are probed for Maya<year>/bin/Render.exe, newest
// supported version first. Discovery never fails the process — the status
// command reports what was (not) found and the compiler refuses to run
// without a renderer.
package deps
