package batch

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"renderbatch/internal/logging"
	"renderbatch/internal/project"
	"renderbatch/internal/render"
)

var (
	// ErrNoRenderer reports that no renderer executable is configured or
	// the configured one does not exist on disk.
	ErrNoRenderer = errors.New("renderer executable not available")
	// ErrNoProject reports that compilation was requested without an
	// active project.
	ErrNoProject = errors.New("no project selected")
)

// Options fixes the conventions a Compiler generates scripts under.
type Options struct {
	// RendererPath is the external renderer executable.
	RendererPath string
	// Engine is the render-mode identifier passed to -r.
	Engine string
	// ScriptExtension names the script target extension without the dot.
	ScriptExtension string
	// PathSeparator is "windows" or "unix" and controls how paths are
	// spelled inside the script body.
	PathSeparator string
	// Encoding names the script text encoding ("shift-jis" or "utf-8")
	// and selects the matching code-page directive in the header.
	Encoding string
}

// Job is one compiled render invocation: the literal script text plus the
// path it should be written to. Regenerated on every compile, never
// mutated.
type Job struct {
	Scene      string
	Stem       string
	ScriptText string
	ScriptPath string
	OutputDir  string
}

// Compiler transforms render settings into batch script text.
type Compiler struct {
	opts   Options
	logger *slog.Logger
}

// NewCompiler constructs a compiler with the given conventions. Zero-value
// option fields fall back to the original tool's conventions.
func NewCompiler(opts Options, logger *slog.Logger) *Compiler {
	if opts.Engine == "" {
		opts.Engine = "arnold"
	}
	if opts.ScriptExtension == "" {
		opts.ScriptExtension = "bat"
	}
	if opts.PathSeparator == "" {
		opts.PathSeparator = "windows"
	}
	if opts.Encoding == "" {
		opts.Encoding = "shift-jis"
	}
	return &Compiler{
		opts:   opts,
		logger: logging.NewComponentLogger(logger, "batch"),
	}
}

// Compile builds the script for one scene. aovFileExists tells the
// compiler whether the scene's AOV document is present; combined with
// settings.UseAOVs it selects exactly one of three outcomes: the AOV flag
// and path variable, a "not found" comment, or a "disabled" comment.
//
// Precondition failures (ErrNoRenderer, ErrNoProject) abort with no
// output. Everything else — inverted frame ranges, zero resolutions —
// passes through literally; the renderer is the validator of record.
func (c *Compiler) Compile(proj project.Context, scene string, settings render.Settings, aovFileExists bool) (*Job, error) {
	if proj.IsZero() {
		return nil, ErrNoProject
	}
	if strings.TrimSpace(c.opts.RendererPath) == "" {
		return nil, fmt.Errorf("%w: no executable configured", ErrNoRenderer)
	}
	if info, err := os.Stat(c.opts.RendererPath); err != nil || info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNoRenderer, c.opts.RendererPath)
	}

	stem := project.Stem(scene)
	if !project.ValidStem(stem) {
		return nil, fmt.Errorf("invalid scene name %q", scene)
	}

	engine := settings.Engine
	if engine == "" {
		engine = c.opts.Engine
	}
	imageName := strings.TrimSpace(settings.FileName)
	if imageName == "" {
		imageName = stem
	}

	job := &Job{
		Scene:      scene,
		Stem:       stem,
		ScriptPath: proj.ScriptPath(stem, c.opts.ScriptExtension),
		OutputDir:  proj.OutputDir(stem),
	}

	aovPath := c.toScript(proj.AOVPath(stem))

	var lines []string
	add := func(format string, args ...any) {
		lines = append(lines, fmt.Sprintf(format, args...))
	}

	// Header: silence command echo, then pin the console code page to the
	// script's own encoding.
	add("@echo off")
	add("chcp %s > nul", codePage(c.opts.Encoding))
	add("")

	// Variable block. The AOV slot carries either the document path or a
	// comment explaining why no document is referenced.
	add("set RENDERER=%s", c.toScript(c.opts.RendererPath))
	add("set PROJECT=%s", c.toScript(proj.Root()))
	add("set SCENE=%s", c.toScript(proj.ScenePath(scene)))
	switch {
	case !settings.UseAOVs:
		add("rem AOV preset disabled")
	case !aovFileExists:
		add("rem AOV file not found: %s", aovPath)
	default:
		add("set AOV_JSON=%s", aovPath)
	}
	add("set OUTPUT_DIR=%s", c.toScript(job.OutputDir))
	add("set IMAGE_NAME=%s", imageName)
	add("set ENGINE=%s", engine)
	add("set FORMAT=%s", settings.ImageFormat)
	add("set START_FRAME=%d", settings.StartFrame)
	add("set END_FRAME=%d", settings.EndFrame)
	add("set WIDTH=%d", settings.Width)
	add("set HEIGHT=%d", settings.Height)
	add("set CAMERA=%s", settings.Camera)
	add("")

	add(`if not exist "%%OUTPUT_DIR%%" mkdir "%%OUTPUT_DIR%%"`)
	add("")

	add("echo Rendering %s frames %%START_FRAME%%-%%END_FRAME%%...", scene)
	lines = append(lines, strings.Join(c.invocation(settings, aovFileExists), " "))
	add("")

	add("echo --- Render job finished: %s ---", stem)
	add("pause")

	job.ScriptText = strings.Join(lines, "\n") + "\n"

	c.logger.Debug("compiled render job",
		logging.String(logging.FieldScene, scene),
		logging.String("script", job.ScriptPath),
		logging.Bool("aov_flag", settings.UseAOVs && aovFileExists))
	return job, nil
}

// invocation assembles the renderer command in its fixed flag order:
// render mode, project, frame range, resolution, camera, output directory,
// image name, format, sampling (camera AA, diffuse, specular, transmission,
// SSS), motion blur, optional ray depths, optional AOV document, and the
// positional scene path last.
func (c *Compiler) invocation(settings render.Settings, aovFileExists bool) []string {
	args := []string{`"%RENDERER%"`}
	args = append(args, "-r", "%ENGINE%")
	args = append(args, "-proj", `"%PROJECT%"`)
	args = append(args, "-s", strconv.Itoa(settings.StartFrame))
	args = append(args, "-e", strconv.Itoa(settings.EndFrame))
	args = append(args, "-x", strconv.Itoa(settings.Width))
	args = append(args, "-y", strconv.Itoa(settings.Height))
	args = append(args, "-cam", `"%CAMERA%"`)
	args = append(args, "-rd", `"%OUTPUT_DIR%"`)
	args = append(args, "-im", `"%IMAGE_NAME%"`)
	args = append(args, "-of", "%FORMAT%")
	args = append(args, "-ai:as", strconv.Itoa(settings.CameraAA))
	args = append(args, "-ai:hs", strconv.Itoa(settings.Diffuse))
	args = append(args, "-ai:gs", strconv.Itoa(settings.Specular))
	args = append(args, "-ai:rs", strconv.Itoa(settings.Transmission))
	args = append(args, "-ai:bssrdfs", strconv.Itoa(settings.SSS))
	args = append(args, "-ai:mben", boolFlag(settings.MotionBlur))
	if settings.RayDepthOverride {
		args = append(args, "-ai:td", strconv.Itoa(settings.ReflectionDepth))
		args = append(args, "-ai:rfr", strconv.Itoa(settings.RefractionDepth))
	}
	if settings.UseAOVs && aovFileExists {
		args = append(args, "-rsa", `"%AOV_JSON%"`)
	}
	args = append(args, `"%SCENE%"`)
	return args
}

// toScript spells a host path using the script's separator convention.
func (c *Compiler) toScript(path string) string {
	switch c.opts.PathSeparator {
	case "unix":
		return strings.ReplaceAll(path, `\`, "/")
	default:
		return strings.ReplaceAll(path, "/", `\`)
	}
}

func boolFlag(value bool) string {
	if value {
		return "1"
	}
	return "0"
}

func codePage(encoding string) string {
	if encoding == "utf-8" {
		return "65001"
	}
	return "932"
}
