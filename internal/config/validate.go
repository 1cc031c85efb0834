package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateBatch(); err != nil {
		return err
	}
	if err := c.validateSampling(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateBatch() error {
	switch c.Batch.Encoding {
	case "shift-jis", "utf-8":
	default:
		return fmt.Errorf("batch.encoding must be \"shift-jis\" or \"utf-8\", got %q", c.Batch.Encoding)
	}
	switch c.Batch.PathSeparator {
	case "windows", "unix":
	default:
		return fmt.Errorf("batch.path_separator must be \"windows\" or \"unix\", got %q", c.Batch.PathSeparator)
	}
	return nil
}

func (c *Config) validateSampling() error {
	values := map[string]int{
		"sampling.camera_aa":       c.Sampling.CameraAA,
		"sampling.diffuse":         c.Sampling.Diffuse,
		"sampling.specular":        c.Sampling.Specular,
		"sampling.transmission":    c.Sampling.Transmission,
		"sampling.sss":             c.Sampling.SSS,
		"sampling.volume_indirect": c.Sampling.VolumeIndirect,
	}
	for name, value := range values {
		if value < 0 {
			return fmt.Errorf("%s must not be negative, got %d", name, value)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return errors.New("logging.format must be \"console\" or \"json\"")
	}
	return nil
}
