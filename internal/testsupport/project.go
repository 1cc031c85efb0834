package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"renderbatch/internal/project"
)

// NewProject builds a project tree under a temp directory with the given
// scene files placed in render/ and returns the validated context.
func NewProject(t testing.TB, scenes ...string) project.Context {
	t.Helper()

	root := t.TempDir()
	renderDir := filepath.Join(root, "render")
	if err := os.MkdirAll(renderDir, 0o755); err != nil {
		t.Fatalf("mkdir render dir: %v", err)
	}
	for _, scene := range scenes {
		target := filepath.Join(renderDir, scene)
		if err := os.WriteFile(target, []byte("//Maya ASCII scene\n"), 0o644); err != nil {
			t.Fatalf("write scene %s: %v", scene, err)
		}
	}

	ctx, err := project.New(root)
	if err != nil {
		t.Fatalf("project.New(%s): %v", root, err)
	}
	return ctx
}

// WriteAOVFile places raw AOV document bytes at the project's path for the
// given scene stem. The raw form lets tests shape corrupt documents too.
func WriteAOVFile(t testing.TB, ctx project.Context, stem string, data []byte) {
	t.Helper()

	if err := os.MkdirAll(ctx.AOVDir(), 0o755); err != nil {
		t.Fatalf("mkdir aov dir: %v", err)
	}
	if err := os.WriteFile(ctx.AOVPath(stem), data, 0o644); err != nil {
		t.Fatalf("write aov file for %s: %v", stem, err)
	}
}
