package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	renderDirName = "render"
	aovDirName    = "json"
)

// ErrNotADirectory reports that the requested project root does not exist
// or is not a directory.
var ErrNotADirectory = errors.New("project path is not a directory")

// Context is the active project root. All scene, AOV, and script paths are
// resolved under it. Replaced wholesale when the user selects a new
// directory; never mutated.
type Context struct {
	root string
}

// New validates path and returns a Context rooted at it.
func New(path string) (Context, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Context{}, fmt.Errorf("%w: empty path", ErrNotADirectory)
	}
	abs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return Context{}, fmt.Errorf("resolve project path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Context{}, fmt.Errorf("%w: %s", ErrNotADirectory, abs)
		}
		return Context{}, fmt.Errorf("stat project path: %w", err)
	}
	if !info.IsDir() {
		return Context{}, fmt.Errorf("%w: %s", ErrNotADirectory, abs)
	}
	return Context{root: abs}, nil
}

// Root returns the absolute project root directory.
func (c Context) Root() string {
	return c.root
}

// IsZero reports whether the context carries no project.
func (c Context) IsZero() bool {
	return c.root == ""
}

// RenderDir returns the directory that holds scene files.
func (c Context) RenderDir() string {
	return filepath.Join(c.root, renderDirName)
}

// AOVDir returns the directory that holds per-scene AOV documents.
func (c Context) AOVDir() string {
	return filepath.Join(c.root, renderDirName, aovDirName)
}

// ScenePath returns the absolute path of the named scene file.
func (c Context) ScenePath(scene string) string {
	return filepath.Join(c.RenderDir(), scene)
}

// OutputDir returns the per-scene image output directory.
func (c Context) OutputDir(stem string) string {
	return filepath.Join(c.RenderDir(), stem)
}

// AOVPath returns the AOV document path for the given scene stem.
func (c Context) AOVPath(stem string) string {
	return filepath.Join(c.AOVDir(), stem+".json")
}

// ScriptPath returns the batch script target for the given scene stem and
// extension (without leading dot).
func (c Context) ScriptPath(stem, ext string) string {
	return filepath.Join(c.root, "render_"+stem+"."+ext)
}

// Stem returns the scene filename without its extension. The stem is the
// join key between scene files, AOV documents, and output directories.
func Stem(scene string) string {
	base := filepath.Base(scene)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ValidStem reports whether stem is usable as a single path segment.
func ValidStem(stem string) bool {
	if strings.TrimSpace(stem) == "" {
		return false
	}
	if strings.ContainsAny(stem, `/\`) {
		return false
	}
	return stem != "." && stem != ".."
}
