package preflight

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"renderbatch/internal/config"
	"renderbatch/internal/deps"
	"renderbatch/internal/project"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes the checks relevant to the given config and project. A
// zero project context skips the project checks but still reports the
// renderer's availability.
func RunAll(cfg *config.Config, proj project.Context) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result
	results = append(results, CheckRenderer(cfg))

	if proj.IsZero() {
		results = append(results, Result{
			Name:   "Project directory",
			Detail: "no project selected (pass --project or open one first)",
		})
		return results
	}

	results = append(results, CheckDirectoryAccess("Project directory", proj.Root()))
	results = append(results, CheckRenderDir(proj))
	return results
}

// CheckRenderer resolves the renderer executable from configuration.
func CheckRenderer(cfg *config.Config) Result {
	statuses := deps.CheckRenderers([]deps.Requirement{{
		Name:        "Renderer executable",
		Locator:     deps.NewLocator(cfg.Renderer.Executable, cfg.Renderer.SearchRoots),
		Description: "Maya command-line renderer",
	}})
	status := statuses[0]
	return Result{Name: status.Name, Passed: status.Available, Detail: status.Detail}
}

// CheckDirectoryAccess verifies that the directory exists and is
// readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckRenderDir verifies the project has scene files to compile.
func CheckRenderDir(proj project.Context) Result {
	const name = "Scene files"
	scenes, err := project.ListSceneFiles(proj)
	if err != nil {
		if errors.Is(err, project.ErrNoRenderDir) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", proj.RenderDir())}
		}
		return Result{Name: name, Detail: err.Error()}
	}
	if len(scenes) == 0 {
		return Result{Name: name, Detail: fmt.Sprintf("no .ma/.mb files under %s", proj.RenderDir())}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%d scene file(s)", len(scenes))}
}
