package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "config.toml")

	cfg, path, exists, err := Load(missing)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if exists {
		t.Error("expected exists=false for missing config")
	}
	if path != missing {
		t.Errorf("resolved path mismatch: got %q, want %q", path, missing)
	}
	if cfg.Renderer.Engine != "arnold" {
		t.Errorf("default engine: got %q, want %q", cfg.Renderer.Engine, "arnold")
	}
	if cfg.Batch.ScriptExtension != "bat" {
		t.Errorf("default script extension: got %q", cfg.Batch.ScriptExtension)
	}
	if cfg.Sampling.CameraAA != 3 {
		t.Errorf("default camera AA: got %d, want 3", cfg.Sampling.CameraAA)
	}
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[batch]
script_extension = ".CMD"
encoding = "UTF-8"
path_separator = "unix"

[renderer]
engine = " Arnold "
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !exists {
		t.Fatal("expected exists=true")
	}
	if cfg.Batch.ScriptExtension != "cmd" {
		t.Errorf("script extension not normalized: got %q", cfg.Batch.ScriptExtension)
	}
	if cfg.Batch.Encoding != "utf-8" {
		t.Errorf("encoding not normalized: got %q", cfg.Batch.Encoding)
	}
	if cfg.Renderer.Engine != "arnold" {
		t.Errorf("engine not normalized: got %q", cfg.Renderer.Engine)
	}
}

func TestLoadRejectsBadEncoding(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[batch]\nencoding = \"cp1252\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, _, _, err := Load(path)
	if err == nil {
		t.Fatal("expected validation error for unsupported encoding")
	}
	if !strings.Contains(err.Error(), "batch.encoding") {
		t.Errorf("error should name batch.encoding, got %v", err)
	}
}

func TestValidateNegativeSampling(t *testing.T) {
	cfg := Default()
	cfg.Sampling.Diffuse = -1
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative sampling value")
	}
}

func TestExpandPathTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	got, err := ExpandPath("~/projects")
	if err != nil {
		t.Fatalf("ExpandPath failed: %v", err)
	}
	want := filepath.Join(home, "projects")
	if got != want {
		t.Errorf("ExpandPath: got %q, want %q", got, want)
	}
}
