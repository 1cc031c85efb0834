package preflight

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"renderbatch/internal/config"
	"renderbatch/internal/project"
)

func writeRenderer(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "Render.exe")
	if err := os.WriteFile(path, []byte("stub"), 0o755); err != nil {
		t.Fatalf("write renderer stub: %v", err)
	}
	return path
}

func TestCheckDirectoryAccess(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("Project directory", dir)
	if !result.Passed {
		t.Fatalf("expected pass for %s: %s", dir, result.Detail)
	}

	result = CheckDirectoryAccess("Project directory", filepath.Join(dir, "missing"))
	if result.Passed {
		t.Fatal("expected failure for missing directory")
	}
	if !strings.Contains(result.Detail, "does not exist") {
		t.Fatalf("unexpected detail: %s", result.Detail)
	}

	file := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	result = CheckDirectoryAccess("Project directory", file)
	if result.Passed {
		t.Fatal("expected failure for regular file")
	}
}

func TestCheckRenderer(t *testing.T) {
	cfg := config.Default()
	cfg.Renderer.Executable = writeRenderer(t)
	result := CheckRenderer(&cfg)
	if !result.Passed {
		t.Fatalf("expected renderer check to pass: %s", result.Detail)
	}
	if !strings.Contains(result.Detail, cfg.Renderer.Executable) {
		t.Fatalf("detail = %q, want it to name %q", result.Detail, cfg.Renderer.Executable)
	}

	cfg.Renderer.Executable = filepath.Join(t.TempDir(), "nope.exe")
	result = CheckRenderer(&cfg)
	if result.Passed {
		t.Fatal("expected renderer check to fail")
	}
}

func TestCheckRenderDir(t *testing.T) {
	root := t.TempDir()
	proj, err := project.New(root)
	if err != nil {
		t.Fatalf("project.New: %v", err)
	}

	result := CheckRenderDir(proj)
	if result.Passed {
		t.Fatal("expected failure without render directory")
	}

	if err := os.MkdirAll(proj.RenderDir(), 0o755); err != nil {
		t.Fatalf("mkdir render: %v", err)
	}
	result = CheckRenderDir(proj)
	if result.Passed {
		t.Fatal("expected failure without scene files")
	}

	if err := os.WriteFile(proj.ScenePath("shot010.ma"), []byte("//Maya"), 0o644); err != nil {
		t.Fatalf("write scene: %v", err)
	}
	result = CheckRenderDir(proj)
	if !result.Passed {
		t.Fatalf("expected pass with scene file: %s", result.Detail)
	}
}

func TestRunAllWithoutProject(t *testing.T) {
	cfg := config.Default()
	cfg.Renderer.Executable = writeRenderer(t)

	results := RunAll(&cfg, project.Context{})
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if !results[0].Passed {
		t.Fatalf("renderer check failed: %s", results[0].Detail)
	}
	if results[1].Passed {
		t.Fatal("project check should fail with no project")
	}
}

func TestRunAllWithProject(t *testing.T) {
	cfg := config.Default()
	cfg.Renderer.Executable = writeRenderer(t)

	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "render"), 0o755); err != nil {
		t.Fatalf("mkdir render: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "render", "shot010.ma"), []byte("//Maya"), 0o644); err != nil {
		t.Fatalf("write scene: %v", err)
	}
	proj, err := project.New(root)
	if err != nil {
		t.Fatalf("project.New: %v", err)
	}

	results := RunAll(&cfg, proj)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for _, result := range results {
		if !result.Passed {
			t.Fatalf("check %q failed: %s", result.Name, result.Detail)
		}
	}
}
