package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"renderbatch/internal/aovstore"
	"renderbatch/internal/history"
	"renderbatch/internal/project"
	"renderbatch/internal/render"
)

func newCompileCommand(ctx *commandContext) *cobra.Command {
	var (
		all        bool
		presetName string
		imageName  string
		camera     string
		format     string
		engine     string
		width      int
		height     int
		startFrame int
		endFrame   int
		useAOVs    bool
		motionBlur bool
		rayDepth   int
	)

	cmd := &cobra.Command{
		Use:   "compile [scene]",
		Short: "Compile a scene's render settings into a batch script",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !all && len(args) == 0 {
				return errors.New("name a scene or pass --all")
			}
			if all && len(args) > 0 {
				return errors.New("--all takes no scene argument")
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			proj, err := ctx.resolveProject()
			if err != nil {
				return err
			}

			settings := render.DefaultSettings(cfg)
			settings.FileName = imageName
			settings.UseAOVs = useAOVs
			settings.MotionBlur = motionBlur
			if camera != "" {
				settings.Camera = camera
			}
			if format != "" {
				settings.ImageFormat = format
			}
			if engine != "" {
				settings.Engine = engine
			}
			if cmd.Flags().Changed("start") {
				settings.StartFrame = startFrame
			}
			if cmd.Flags().Changed("end") {
				settings.EndFrame = endFrame
			}
			if cmd.Flags().Changed("width") {
				settings.Width = width
			}
			if cmd.Flags().Changed("height") {
				settings.Height = height
			}
			if cmd.Flags().Changed("ray-depth") {
				settings.RayDepthOverride = true
				settings.ReflectionDepth = rayDepth
				settings.RefractionDepth = rayDepth
			}
			catalogue, err := render.DefaultCatalogue()
			if err != nil {
				return err
			}
			if presetName != "" {
				size, ok := catalogue.Resolve(presetName)
				if !ok {
					return fmt.Errorf("unknown image preset %q (see `renderbatch presets`)", presetName)
				}
				settings.Width = size.Width
				settings.Height = size.Height
			}

			scenes := args
			if all {
				scenes, err = project.ListSceneFiles(proj)
				if err != nil {
					return err
				}
				if len(scenes) == 0 {
					return fmt.Errorf("no scene files under %s", proj.RenderDir())
				}
			}

			compiler, err := ctx.newCompiler()
			if err != nil {
				return err
			}
			store := aovstore.NewStore(proj, logger)

			sizeLabel := fmt.Sprintf("%s %dx%d",
				catalogue.MatchPreset(settings.Width, settings.Height),
				settings.Width, settings.Height)

			lock, err := project.AcquireLock(proj)
			if err != nil {
				return err
			}
			defer lock.Release()

			out := cmd.OutOrStdout()
			for _, scene := range scenes {
				if !all && !strings.Contains(scene, ".") {
					// Bare stems are resolved against the scene list so
					// `compile shot010` works next to `compile shot010.ma`.
					resolved, err := resolveSceneName(proj, scene)
					if err != nil {
						return err
					}
					scene = resolved
				}

				// Sampled once so the script and the history record agree
				// on whether the AOV document was applied.
				aovExists := store.Exists(scene)

				job, err := compiler.Compile(proj, scene, settings, aovExists)
				if err != nil {
					return err
				}
				if err := compiler.WriteScript(job); err != nil {
					return err
				}

				recordErr := ctx.withHistory(func(h *history.Store) error {
					_, err := h.Record(context.Background(), history.Entry{
						Scene:       scene,
						ProjectPath: proj.Root(),
						ScriptPath:  job.ScriptPath,
						StartFrame:  settings.StartFrame,
						EndFrame:    settings.EndFrame,
						Width:       settings.Width,
						Height:      settings.Height,
						AOVApplied:  settings.UseAOVs && aovExists,
					})
					return err
				})
				if recordErr != nil {
					logger.Warn("history record failed", "scene", scene, "error", recordErr)
				}

				fmt.Fprintf(out, "Wrote %s (%s, frames %d-%d)\n",
					job.ScriptPath, sizeLabel, settings.StartFrame, settings.EndFrame)
			}

			if err := project.SaveLastProject(cfg.Paths.SettingsDir, proj); err != nil {
				logger.Warn("remember project failed", "error", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Compile every scene in the project")
	cmd.Flags().StringVar(&presetName, "preset", "", "Image size preset name")
	cmd.Flags().StringVar(&imageName, "name", "", "Output image name (defaults to the scene stem)")
	cmd.Flags().StringVar(&camera, "camera", "", "Render camera")
	cmd.Flags().StringVar(&format, "format", "", "Output image format")
	cmd.Flags().StringVar(&engine, "engine", "", "Renderer mode passed to -r")
	cmd.Flags().IntVar(&width, "width", 0, "Image width in pixels")
	cmd.Flags().IntVar(&height, "height", 0, "Image height in pixels")
	cmd.Flags().IntVarP(&startFrame, "start", "s", 0, "First frame (inclusive)")
	cmd.Flags().IntVarP(&endFrame, "end", "e", 0, "Last frame (inclusive)")
	cmd.Flags().BoolVar(&useAOVs, "aovs", false, "Reference the scene's AOV document when present")
	cmd.Flags().BoolVar(&motionBlur, "motion-blur", false, "Enable motion blur")
	cmd.Flags().IntVar(&rayDepth, "ray-depth", 0, "Override reflection and refraction ray depth")

	return cmd
}

// resolveSceneName matches a bare stem against the project's scene files.
func resolveSceneName(proj project.Context, stem string) (string, error) {
	scenes, err := project.ListSceneFiles(proj)
	if err != nil {
		return "", err
	}
	for _, scene := range scenes {
		if project.Stem(scene) == stem {
			return scene, nil
		}
	}
	return "", fmt.Errorf("scene %q not found under %s", stem, proj.RenderDir())
}
