package main

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"renderbatch/internal/batch"
	"renderbatch/internal/config"
	"renderbatch/internal/deps"
	"renderbatch/internal/history"
	"renderbatch/internal/logging"
	"renderbatch/internal/project"
)

// errNoProjectSelected asks the user to name a project when neither the flag
// nor the remembered last project resolves.
var errNoProjectSelected = errors.New("no project selected; pass --project or compile once with one")

type commandContext struct {
	configFlag  *string
	projectFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag, projectFlag *string) *commandContext {
	return &commandContext{
		configFlag:  configFlag,
		projectFlag: projectFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger, c.loggerErr = logging.New(logging.Options{
			Level:    cfg.Logging.Level,
			Format:   cfg.Logging.Format,
			FilePath: filepath.Join(cfg.Paths.LogDir, "renderbatch.log"),
		})
	})
	return c.logger, c.loggerErr
}

// resolveProject returns the active project: the --project flag when given,
// otherwise the remembered last project.
func (c *commandContext) resolveProject() (project.Context, error) {
	if c.projectFlag != nil && strings.TrimSpace(*c.projectFlag) != "" {
		return project.New(*c.projectFlag)
	}

	cfg, err := c.ensureConfig()
	if err != nil {
		return project.Context{}, err
	}
	last, err := project.LoadLastProject(cfg.Paths.SettingsDir)
	if err != nil {
		return project.Context{}, fmt.Errorf("load last project: %w", err)
	}
	if last == "" {
		return project.Context{}, errNoProjectSelected
	}
	proj, err := project.New(last)
	if err != nil {
		return project.Context{}, fmt.Errorf("remembered project is gone: %w", err)
	}
	return proj, nil
}

// newCompiler resolves the renderer executable and builds a compiler bound
// to the configured script conventions.
func (c *commandContext) newCompiler() (*batch.Compiler, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}

	rendererPath, err := deps.NewLocator(cfg.Renderer.Executable, cfg.Renderer.SearchRoots).Resolve()
	if err != nil {
		return nil, err
	}

	return batch.NewCompiler(batch.Options{
		RendererPath:    rendererPath,
		Engine:          cfg.Renderer.Engine,
		ScriptExtension: cfg.Batch.ScriptExtension,
		PathSeparator:   cfg.Batch.PathSeparator,
		Encoding:        cfg.Batch.Encoding,
	}, logger), nil
}

// withHistory opens the history store for the duration of fn.
func (c *commandContext) withHistory(fn func(*history.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	store, err := history.Open(cfg.Paths.HistoryDBPath)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer store.Close()
	return fn(store)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
