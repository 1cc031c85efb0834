package render

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// PresetCustom is the sentinel preset name reported when the current image
// size matches no catalogue entry.
const PresetCustom = "Custom"

//go:embed presets.json
var defaultCatalogue []byte

// Size is a named image resolution.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Catalogue is the static collection of image presets, output formats,
// engines, and known AOV names shipped with the tool or loaded from a
// user-provided JSON file.
type Catalogue struct {
	ImagePresets  map[string]Size `json:"image_presets"`
	ImageFormats  []string        `json:"image_formats"`
	RenderEngines []string        `json:"render_engines"`
	RenderAOVs    []string        `json:"render_aovs"`
}

// DefaultCatalogue returns the embedded catalogue.
func DefaultCatalogue() (*Catalogue, error) {
	return parseCatalogue(defaultCatalogue)
}

// LoadCatalogue reads a catalogue from the given JSON file.
func LoadCatalogue(path string) (*Catalogue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preset catalogue: %w", err)
	}
	return parseCatalogue(data)
}

func parseCatalogue(data []byte) (*Catalogue, error) {
	var cat Catalogue
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parse preset catalogue: %w", err)
	}
	if cat.ImagePresets == nil {
		cat.ImagePresets = map[string]Size{}
	}
	return &cat, nil
}

// PresetNames returns the preset names in ascending lexicographic order.
func (c *Catalogue) PresetNames() []string {
	names := make([]string, 0, len(c.ImagePresets))
	for name := range c.ImagePresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MatchPreset reports the preset name matching the given size, or
// PresetCustom when no entry matches.
func (c *Catalogue) MatchPreset(width, height int) string {
	for _, name := range c.PresetNames() {
		size := c.ImagePresets[name]
		if size.Width == width && size.Height == height {
			return name
		}
	}
	return PresetCustom
}

// Resolve returns the size for the named preset.
func (c *Catalogue) Resolve(name string) (Size, bool) {
	size, ok := c.ImagePresets[name]
	return size, ok
}
