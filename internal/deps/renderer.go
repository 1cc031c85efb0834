package deps

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Supported Maya versions, probed newest first.
const (
	newestMayaVersion = 2026
	oldestMayaVersion = 2021
)

const rendererBinary = "Render.exe"

// ErrRendererNotFound reports that no renderer executable could be located.
var ErrRendererNotFound = errors.New("renderer executable not found")

// Locator resolves the renderer executable path.
type Locator struct {
	explicit string
	roots    []string
}

// NewLocator builds a locator. explicit, when non-empty, short-circuits
// discovery; roots are directories holding Maya<year> installs.
func NewLocator(explicit string, roots []string) *Locator {
	return &Locator{
		explicit: strings.TrimSpace(explicit),
		roots:    roots,
	}
}

// Resolve returns the renderer executable path. An explicitly configured
// path is validated rather than searched for.
func (l *Locator) Resolve() (string, error) {
	if l.explicit != "" {
		if fileExists(l.explicit) {
			return l.explicit, nil
		}
		return "", fmt.Errorf("%w: configured path %s does not exist", ErrRendererNotFound, l.explicit)
	}

	for _, root := range l.roots {
		for version := newestMayaVersion; version >= oldestMayaVersion; version-- {
			candidate := filepath.Join(root, fmt.Sprintf("Maya%d", version), "bin", rendererBinary)
			if fileExists(candidate) {
				return candidate, nil
			}
		}
	}
	return "", fmt.Errorf("%w: no Maya install under %s", ErrRendererNotFound, strings.Join(l.roots, ", "))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
