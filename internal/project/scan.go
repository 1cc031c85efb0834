package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNoRenderDir reports that the project has no render/ directory yet.
var ErrNoRenderDir = errors.New("render directory not found")

// sceneExtensions are the Maya scene file types the scanner recognizes.
var sceneExtensions = map[string]bool{
	".ma": true,
	".mb": true,
}

// ListSceneFiles returns the scene filenames directly under <project>/render,
// sorted ascending. A missing render directory yields ErrNoRenderDir so the
// caller can distinguish "empty project" from "not a project".
func ListSceneFiles(ctx Context) ([]string, error) {
	entries, err := os.ReadDir(ctx.RenderDir())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoRenderDir, ctx.RenderDir())
		}
		return nil, fmt.Errorf("read render directory: %w", err)
	}

	var scenes []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if sceneExtensions[ext] {
			scenes = append(scenes, entry.Name())
		}
	}
	sort.Strings(scenes)
	return scenes, nil
}
