package project

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewRejectsMissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestNewRejectsFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "scene.ma")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	_, err := New(file)
	if err == nil {
		t.Fatal("expected error for plain file")
	}
}

func TestPathDerivation(t *testing.T) {
	root := t.TempDir()
	ctx, err := New(root)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if got, want := ctx.RenderDir(), filepath.Join(root, "render"); got != want {
		t.Errorf("RenderDir = %q, want %q", got, want)
	}
	if got, want := ctx.AOVDir(), filepath.Join(root, "render", "json"); got != want {
		t.Errorf("AOVDir = %q, want %q", got, want)
	}
	if got, want := ctx.AOVPath("shot010"), filepath.Join(root, "render", "json", "shot010.json"); got != want {
		t.Errorf("AOVPath = %q, want %q", got, want)
	}
	if got, want := ctx.OutputDir("shot010"), filepath.Join(root, "render", "shot010"); got != want {
		t.Errorf("OutputDir = %q, want %q", got, want)
	}
	if got, want := ctx.ScriptPath("shot010", "bat"), filepath.Join(root, "render_shot010.bat"); got != want {
		t.Errorf("ScriptPath = %q, want %q", got, want)
	}
}

func TestStem(t *testing.T) {
	cases := map[string]string{
		"shot010.ma":      "shot010",
		"shot010.mb":      "shot010",
		"shot.v2.ma":      "shot.v2",
		"noext":           "noext",
		"dir/shot010.ma":  "shot010",
		"dir\\shot010.ma": "dir\\shot010", // backslash is not a separator on unix
	}
	for input, want := range cases {
		if got := Stem(input); got != want {
			t.Errorf("Stem(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestValidStem(t *testing.T) {
	valid := []string{"shot010", "shot.v2", "a"}
	for _, stem := range valid {
		if !ValidStem(stem) {
			t.Errorf("ValidStem(%q) = false, want true", stem)
		}
	}
	invalid := []string{"", "  ", "a/b", `a\b`, ".", ".."}
	for _, stem := range invalid {
		if ValidStem(stem) {
			t.Errorf("ValidStem(%q) = true, want false", stem)
		}
	}
}

func TestListSceneFiles(t *testing.T) {
	root := t.TempDir()
	renderDir := filepath.Join(root, "render")
	if err := os.MkdirAll(filepath.Join(renderDir, "shot010"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	for _, name := range []string{"b.mb", "a.ma", "notes.txt", "c.MA"} {
		if err := os.WriteFile(filepath.Join(renderDir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	ctx, err := New(root)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	scenes, err := ListSceneFiles(ctx)
	if err != nil {
		t.Fatalf("ListSceneFiles failed: %v", err)
	}

	want := []string{"a.ma", "b.mb", "c.MA"}
	if len(scenes) != len(want) {
		t.Fatalf("got %v, want %v", scenes, want)
	}
	for i := range want {
		if scenes[i] != want[i] {
			t.Errorf("scenes[%d] = %q, want %q", i, scenes[i], want[i])
		}
	}
}

func TestListSceneFilesMissingRenderDir(t *testing.T) {
	ctx, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	_, err = ListSceneFiles(ctx)
	if err == nil {
		t.Fatal("expected ErrNoRenderDir")
	}
}

func TestLastProjectRoundTrip(t *testing.T) {
	settingsDir := filepath.Join(t.TempDir(), "settings")
	projectRoot := t.TempDir()

	ctx, err := New(projectRoot)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := SaveLastProject(settingsDir, ctx); err != nil {
		t.Fatalf("SaveLastProject failed: %v", err)
	}

	got, err := LoadLastProject(settingsDir)
	if err != nil {
		t.Fatalf("LoadLastProject failed: %v", err)
	}
	if got != filepath.ToSlash(projectRoot) {
		t.Errorf("LoadLastProject = %q, want %q", got, filepath.ToSlash(projectRoot))
	}
}

func TestLoadLastProjectMissingFile(t *testing.T) {
	got, err := LoadLastProject(t.TempDir())
	if err != nil {
		t.Fatalf("LoadLastProject failed: %v", err)
	}
	if got != "" {
		t.Errorf("expected empty path, got %q", got)
	}
}

func TestLockExcludesSecondHolder(t *testing.T) {
	ctx, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	first, err := AcquireLock(ctx)
	if err != nil {
		t.Fatalf("first AcquireLock failed: %v", err)
	}
	defer first.Release()

	if _, err := AcquireLock(ctx); err == nil {
		t.Fatal("second AcquireLock should fail while first is held")
	}

	if err := first.Release(); err != nil {
		t.Fatalf("Release failed: %v", err)
	}
	second, err := AcquireLock(ctx)
	if err != nil {
		t.Fatalf("AcquireLock after release failed: %v", err)
	}
	_ = second.Release()
}
