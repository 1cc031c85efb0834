// Package config loads, normalizes, and validates renderbatch configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob
// the CLI needs: renderer executable discovery, batch script conventions
// (extension, encoding, path separator), sampling defaults, and logging.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths and clear validation errors.
package config
