package render

import "renderbatch/internal/config"

// Settings is a per-job snapshot of everything the compiler needs beyond
// the scene itself. Constructed fresh for every compile request and never
// persisted as a unit.
type Settings struct {
	// FileName overrides the output image name prefix. Empty means the
	// scene stem is used.
	FileName string

	Width  int
	Height int

	// StartFrame and EndFrame are both inclusive. An end before the start
	// is passed through to the renderer untouched.
	StartFrame int
	EndFrame   int

	// Arnold sampling values.
	CameraAA       int
	Diffuse        int
	Specular       int
	Transmission   int
	SSS            int
	VolumeIndirect int

	MotionBlur bool

	// RayDepthOverride gates whether the reflection/refraction depths are
	// emitted at all.
	RayDepthOverride bool
	ReflectionDepth  int
	RefractionDepth  int

	Camera      string
	ImageFormat string
	Engine      string

	// UseAOVs requests that the per-scene AOV JSON be referenced when it
	// exists.
	UseAOVs bool
}

// DefaultSettings builds a Settings snapshot seeded from configuration
// defaults. Callers overlay per-invocation values on top.
func DefaultSettings(cfg *config.Config) Settings {
	s := Settings{
		Width:           1280,
		Height:          720,
		StartFrame:      1,
		EndFrame:        1,
		ReflectionDepth: 8,
		RefractionDepth: 8,
	}
	if cfg == nil {
		return s
	}
	s.CameraAA = cfg.Sampling.CameraAA
	s.Diffuse = cfg.Sampling.Diffuse
	s.Specular = cfg.Sampling.Specular
	s.Transmission = cfg.Sampling.Transmission
	s.SSS = cfg.Sampling.SSS
	s.VolumeIndirect = cfg.Sampling.VolumeIndirect
	s.Camera = cfg.Batch.Camera
	s.ImageFormat = cfg.Batch.ImageFormat
	s.Engine = cfg.Renderer.Engine
	return s
}
