package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"renderbatch/internal/preflight"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check that the renderer and project are ready",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			proj, err := ctx.resolveProject()
			if err != nil && !errors.Is(err, errNoProjectSelected) {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			if !proj.IsZero() {
				fmt.Fprintf(out, "Project: %s\n", proj.Root())
			}

			failed := false
			for _, result := range preflight.RunAll(cfg, proj) {
				kind := statusOK
				if !result.Passed {
					kind = statusError
					failed = true
				}
				fmt.Fprintln(out, renderStatusLine(result.Name, kind, result.Detail, colorize))
			}

			if failed {
				return errors.New("one or more checks failed")
			}
			return nil
		},
	}
}
