package config

const (
	defaultSettingsDir     = "~/.config/renderbatch"
	defaultLogDir          = "~/.local/share/renderbatch/logs"
	defaultHistoryDBPath   = "~/.local/share/renderbatch/history.db"
	defaultEngine          = "arnold"
	defaultScriptExtension = "bat"
	defaultEncoding        = "shift-jis"
	defaultPathSeparator   = "windows"
	defaultImageFormat     = "exr"
	defaultCamera          = "perspShape"
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
)

// defaultSearchRoots are the conventional Autodesk install locations probed
// for Render.exe when no explicit executable is configured.
var defaultSearchRoots = []string{
	`C:\Program Files\Autodesk`,
	"/usr/autodesk",
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			SettingsDir:   defaultSettingsDir,
			LogDir:        defaultLogDir,
			HistoryDBPath: defaultHistoryDBPath,
		},
		Renderer: Renderer{
			SearchRoots: append([]string(nil), defaultSearchRoots...),
			Engine:      defaultEngine,
		},
		Batch: Batch{
			ScriptExtension: defaultScriptExtension,
			Encoding:        defaultEncoding,
			PathSeparator:   defaultPathSeparator,
			ImageFormat:     defaultImageFormat,
			Camera:          defaultCamera,
		},
		Sampling: Sampling{
			CameraAA:       3,
			Diffuse:        2,
			Specular:       2,
			Transmission:   2,
			SSS:            2,
			VolumeIndirect: 2,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
