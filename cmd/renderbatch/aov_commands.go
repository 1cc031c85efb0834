package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"renderbatch/internal/aovstore"
	"renderbatch/internal/project"
	"renderbatch/internal/render"
)

func newAOVCommand(ctx *commandContext) *cobra.Command {
	aovCmd := &cobra.Command{
		Use:   "aov",
		Short: "Manage per-scene AOV selections",
	}

	aovCmd.AddCommand(newAOVExportCommand(ctx))
	aovCmd.AddCommand(newAOVShowCommand(ctx))
	aovCmd.AddCommand(newAOVListCommand(ctx))

	return aovCmd
}

func newAOVExportCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <scene> <aov>...",
		Short: "Write a scene's AOV selection document",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			proj, err := ctx.resolveProject()
			if err != nil {
				return err
			}

			scene, names := args[0], args[1:]
			if err := warnUnknownAOVs(cmd, names); err != nil {
				return err
			}

			lock, err := project.AcquireLock(proj)
			if err != nil {
				return err
			}
			defer lock.Release()

			store := aovstore.NewStore(proj, logger)
			if err := store.Save(scene, names); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", proj.AOVPath(project.Stem(scene)))
			return nil
		},
	}
	return cmd
}

func newAOVShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <scene>",
		Short: "Show a scene's AOV selection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			proj, err := ctx.resolveProject()
			if err != nil {
				return err
			}

			store := aovstore.NewStore(proj, logger)
			names, err := store.Load(args[0])
			out := cmd.OutOrStdout()
			switch {
			case errors.Is(err, aovstore.ErrNotConfigured):
				fmt.Fprintf(out, "No AOV document for %s\n", args[0])
				return nil
			case errors.Is(err, aovstore.ErrCorrupt):
				return fmt.Errorf("%w (re-export to repair it)", err)
			case err != nil:
				return err
			}

			if len(names) == 0 {
				fmt.Fprintf(out, "AOV document for %s is empty\n", args[0])
				return nil
			}
			for _, name := range names {
				fmt.Fprintln(out, name)
			}
			return nil
		},
	}
}

func newAOVListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List scenes that have an AOV document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			proj, err := ctx.resolveProject()
			if err != nil {
				return err
			}

			store := aovstore.NewStore(proj, logger)
			stems, err := store.ListConfiguredScenes()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(stems) == 0 {
				fmt.Fprintln(out, "No AOV documents in this project")
				return nil
			}
			for _, stem := range stems {
				fmt.Fprintln(out, stem)
			}
			return nil
		},
	}
}

// warnUnknownAOVs flags selections outside the known catalogue. Unknown
// names still pass through; the catalogue trails new Arnold releases.
func warnUnknownAOVs(cmd *cobra.Command, names []string) error {
	catalogue, err := render.DefaultCatalogue()
	if err != nil {
		return err
	}
	known := make(map[string]bool, len(catalogue.RenderAOVs))
	for _, name := range catalogue.RenderAOVs {
		known[name] = true
	}

	var unknown []string
	for _, name := range names {
		if !known[name] {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: unrecognized AOV name(s): %s\n", strings.Join(unknown, ", "))
	}
	return nil
}
