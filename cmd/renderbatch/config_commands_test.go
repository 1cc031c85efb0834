package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigInitAndShow(t *testing.T) {
	env := setupCLITestEnv(t)

	tmp := t.TempDir()
	target := filepath.Join(tmp, "config.toml")
	out, _, err := runCLI(t, env, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")

	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	// init without --overwrite refuses to clobber
	if _, _, err := runCLI(t, env, "config", "init", "--path", target); err == nil {
		t.Fatal("expected error for existing config file")
	}

	out, _, err = runCLI(t, env, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, "[renderer]")
	requireContains(t, out, env.cfg.Renderer.Executable)
}

func TestScenesListsProjectFiles(t *testing.T) {
	env := setupCLITestEnv(t, "b_scene.mb", "a_scene.ma")

	out, _, err := runCLI(t, env, "scenes")
	if err != nil {
		t.Fatalf("scenes: %v", err)
	}
	requireContains(t, out, "a_scene.ma")
	requireContains(t, out, "b_scene.mb")
}

func TestPresetsListsCatalogue(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, "presets")
	if err != nil {
		t.Fatalf("presets: %v", err)
	}
	requireContains(t, out, "HD_1080")
	requireContains(t, out, "1920")
	requireContains(t, out, "beauty")
}

func TestStatusReportsReadyProject(t *testing.T) {
	env := setupCLITestEnv(t, "shot010.ma")

	out, _, err := runCLI(t, env, "status")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	requireContains(t, out, "Renderer executable")
	requireContains(t, out, "[OK]")
}
