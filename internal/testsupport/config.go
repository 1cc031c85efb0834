package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"renderbatch/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.SettingsDir = filepath.Join(base, "settings")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Paths.HistoryDBPath = filepath.Join(base, "history", "history.db")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithEncoding overrides the batch script encoding on the test config.
func WithEncoding(name string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Batch.Encoding = name
	}
}

// WithStubbedRenderer writes a stub Render.exe under the config's temp tree
// and points the renderer executable at it.
func WithStubbedRenderer() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Renderer.Executable = StubRenderer(b.t, b.baseDir)
	}
}

// StubRenderer writes a stub renderer executable under dir and returns its
// path.
func StubRenderer(t testing.TB, dir string) string {
	t.Helper()

	binDir := filepath.Join(dir, "bin")
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		t.Fatalf("mkdir bin dir: %v", err)
	}
	target := filepath.Join(binDir, "Render.exe")
	if err := os.WriteFile(target, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("write stub renderer: %v", err)
	}
	return target
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.SettingsDir)
}
