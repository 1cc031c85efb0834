package aovstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"renderbatch/internal/logging"
	"renderbatch/internal/project"
)

var (
	// ErrNotConfigured reports that a scene has no AOV document yet. This
	// is the normal first-run state, not a failure.
	ErrNotConfigured = errors.New("no aov configuration for scene")
	// ErrCorrupt reports that an AOV document exists but cannot be read
	// as the expected shape.
	ErrCorrupt = errors.New("aov file corrupt")
	// ErrInvalidScene reports a scene name that does not reduce to a
	// single path segment.
	ErrInvalidScene = errors.New("invalid scene name")
)

// document is the on-disk shape Arnold's -rsa flag expects. Unknown keys
// are ignored on read; only this key is ever written.
type document struct {
	AOVs []string `json:"aovs"`
}

// Store maps scenes to AOV selections, one JSON document per scene under
// the project's render/json directory.
type Store struct {
	project project.Context
	logger  *slog.Logger
}

// NewStore creates a store rooted at the given project.
func NewStore(ctx project.Context, logger *slog.Logger) *Store {
	return &Store{
		project: ctx,
		logger:  logging.NewComponentLogger(logger, "aovstore"),
	}
}

// Load returns the AOV selection for a scene. A missing document yields an
// empty selection with ErrNotConfigured; a malformed one yields an empty
// selection with ErrCorrupt. Duplicate names collapse, first occurrence
// wins.
func (s *Store) Load(scene string) ([]string, error) {
	stem, err := s.stem(scene)
	if err != nil {
		return nil, err
	}

	path := s.project.AOVPath(stem)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, fmt.Errorf("%w: %s", ErrNotConfigured, stem)
		}
		return nil, fmt.Errorf("read aov file: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Warn("aov document unreadable",
			logging.String(logging.FieldScene, stem),
			logging.String(logging.FieldPath, path),
			logging.Error(err))
		return []string{}, fmt.Errorf("%w: %s: %v", ErrCorrupt, path, err)
	}
	if doc.AOVs == nil {
		s.logger.Warn("aov document missing aovs key",
			logging.String(logging.FieldScene, stem),
			logging.String(logging.FieldPath, path))
		return []string{}, fmt.Errorf("%w: %s: missing \"aovs\" key", ErrCorrupt, path)
	}

	return dedupe(doc.AOVs), nil
}

// Save overwrites the scene's AOV document with the given names in caller
// order. The render/json directory is created when absent. The previous
// document survives any write failure.
func (s *Store) Save(scene string, names []string) error {
	stem, err := s.stem(scene)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.project.AOVDir(), 0o755); err != nil {
		return fmt.Errorf("create aov directory: %w", err)
	}

	doc := document{AOVs: names}
	if doc.AOVs == nil {
		doc.AOVs = []string{}
	}
	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal aov document: %w", err)
	}

	path := s.project.AOVPath(stem)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temp aov file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp aov file: %w", err)
	}

	s.logger.Debug("saved aov selection",
		logging.String(logging.FieldScene, stem),
		logging.Int("aov_count", len(names)))
	return nil
}

// Exists reports whether the scene has an AOV document on disk.
func (s *Store) Exists(scene string) bool {
	stem, err := s.stem(scene)
	if err != nil {
		return false
	}
	info, err := os.Stat(s.project.AOVPath(stem))
	return err == nil && !info.IsDir()
}

// ListConfiguredScenes returns the stems of every scene with an AOV
// document, in ascending lexicographic order. The ordering is load-bearing
// for deterministic display: plain case-sensitive byte-wise sort, no
// locale collation.
func (s *Store) ListConfiguredScenes() ([]string, error) {
	entries, err := os.ReadDir(s.project.AOVDir())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("read aov directory: %w", err)
	}

	stems := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, ".json") {
			stems = append(stems, strings.TrimSuffix(name, ".json"))
		}
	}
	sort.Strings(stems)
	return stems, nil
}

func (s *Store) stem(scene string) (string, error) {
	stem := project.Stem(scene)
	if !project.ValidStem(stem) {
		return "", fmt.Errorf("%w: %q", ErrInvalidScene, scene)
	}
	return stem, nil
}

func dedupe(names []string) []string {
	seen := make(map[string]bool, len(names))
	result := make([]string, 0, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		result = append(result, name)
	}
	return result
}
