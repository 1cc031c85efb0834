package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const settingsFileName = "settings.json"

type userSettings struct {
	LastProjectPath string `json:"last_project_path"`
}

// LoadLastProject returns the remembered project path from the settings
// file under settingsDir. A missing or unreadable settings file yields an
// empty string without error; a present project path is returned verbatim
// and still needs validation through New.
func LoadLastProject(settingsDir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(settingsDir, settingsFileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read settings file: %w", err)
	}

	var settings userSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return "", fmt.Errorf("parse settings file: %w", err)
	}
	return settings.LastProjectPath, nil
}

// SaveLastProject remembers the project root in the settings file. The path
// is stored with forward slashes so the file stays portable across the
// machines a project directory may be shared from.
func SaveLastProject(settingsDir string, ctx Context) error {
	if ctx.IsZero() {
		return errors.New("cannot remember an empty project")
	}
	if err := os.MkdirAll(settingsDir, 0o755); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}

	settings := userSettings{LastProjectPath: filepath.ToSlash(ctx.Root())}
	data, err := json.MarshalIndent(settings, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	path := filepath.Join(settingsDir, settingsFileName)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temp settings: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp settings: %w", err)
	}
	return nil
}
