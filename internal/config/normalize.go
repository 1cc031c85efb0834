package config

import "strings"

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeRenderer()
	c.normalizeBatch()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.SettingsDir, err = expandPath(strings.TrimSpace(c.Paths.SettingsDir)); err != nil {
		return err
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return err
	}
	if c.Paths.HistoryDBPath, err = expandPath(strings.TrimSpace(c.Paths.HistoryDBPath)); err != nil {
		return err
	}
	return nil
}

func (c *Config) normalizeRenderer() {
	c.Renderer.Executable = strings.TrimSpace(c.Renderer.Executable)
	c.Renderer.Engine = strings.ToLower(strings.TrimSpace(c.Renderer.Engine))
	if c.Renderer.Engine == "" {
		c.Renderer.Engine = defaultEngine
	}

	roots := make([]string, 0, len(c.Renderer.SearchRoots))
	for _, root := range c.Renderer.SearchRoots {
		if root = strings.TrimSpace(root); root != "" {
			roots = append(roots, root)
		}
	}
	if len(roots) == 0 {
		roots = append(roots, defaultSearchRoots...)
	}
	c.Renderer.SearchRoots = roots
}

func (c *Config) normalizeBatch() {
	c.Batch.ScriptExtension = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(c.Batch.ScriptExtension)), ".")
	if c.Batch.ScriptExtension == "" {
		c.Batch.ScriptExtension = defaultScriptExtension
	}

	c.Batch.Encoding = strings.ToLower(strings.TrimSpace(c.Batch.Encoding))
	if c.Batch.Encoding == "" {
		c.Batch.Encoding = defaultEncoding
	}

	c.Batch.PathSeparator = strings.ToLower(strings.TrimSpace(c.Batch.PathSeparator))
	if c.Batch.PathSeparator == "" {
		c.Batch.PathSeparator = defaultPathSeparator
	}

	c.Batch.ImageFormat = strings.ToLower(strings.TrimSpace(c.Batch.ImageFormat))
	if c.Batch.ImageFormat == "" {
		c.Batch.ImageFormat = defaultImageFormat
	}

	c.Batch.Camera = strings.TrimSpace(c.Batch.Camera)
	if c.Batch.Camera == "" {
		c.Batch.Camera = defaultCamera
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
