package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	// SettingsDir holds the last-project memory and any other per-user
	// state files.
	SettingsDir string `toml:"settings_dir"`
	LogDir      string `toml:"log_dir"`
	// HistoryDBPath locates the compiled-job history database.
	HistoryDBPath string `toml:"history_db_path"`
}

// Renderer contains configuration for locating the external renderer.
type Renderer struct {
	// Executable is an explicit path to Render.exe. When empty the
	// executable is discovered by probing SearchRoots for Maya installs.
	Executable string `toml:"executable"`
	// SearchRoots are directories containing Maya<year>/bin/Render.exe
	// style installs. Probed newest version first.
	SearchRoots []string `toml:"search_roots"`
	// Engine is the render-mode identifier passed to the -r flag.
	Engine string `toml:"engine"`
}

// Batch contains conventions for generated batch scripts.
type Batch struct {
	// ScriptExtension is appended to render_<stem> target paths,
	// without the leading dot.
	ScriptExtension string `toml:"script_extension"`
	// Encoding selects the text encoding of generated scripts:
	// "shift-jis" (cmd.exe code page 932) or "utf-8".
	Encoding string `toml:"encoding"`
	// PathSeparator selects the separator used for paths inside the
	// script body: "windows" or "unix".
	PathSeparator string `toml:"path_separator"`
	// ImageFormat is the default output image format (-of flag).
	ImageFormat string `toml:"image_format"`
	// Camera is the default render camera name.
	Camera string `toml:"camera"`
}

// Sampling contains default Arnold sampling values applied when the caller
// does not override them.
type Sampling struct {
	CameraAA       int `toml:"camera_aa"`
	Diffuse        int `toml:"diffuse"`
	Specular       int `toml:"specular"`
	Transmission   int `toml:"transmission"`
	SSS            int `toml:"sss"`
	VolumeIndirect int `toml:"volume_indirect"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for renderbatch.
//
// Configuration sections by subsystem:
//   - Paths: per-user state and log directories
//   - Renderer: external renderer executable and engine identifier
//   - Batch: generated script conventions (extension, encoding, separators)
//   - Sampling: default Arnold sampling values
//   - Logging: log format and level
type Config struct {
	Paths    Paths    `toml:"paths"`
	Renderer Renderer `toml:"renderer"`
	Batch    Batch    `toml:"batch"`
	Sampling Sampling `toml:"sampling"`
	Logging  Logging  `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/renderbatch/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("renderbatch.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the per-user state directories.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.SettingsDir, c.Paths.LogDir} {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
