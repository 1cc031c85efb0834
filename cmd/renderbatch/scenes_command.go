package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"renderbatch/internal/aovstore"
	"renderbatch/internal/project"
)

func newScenesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "scenes",
		Short: "List the project's scene files",
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
			scenes, err := project.ListSceneFiles(proj)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(scenes) == 0 {
				fmt.Fprintf(out, "No scene files under %s\n", proj.RenderDir())
				return nil
			}

			store := aovstore.NewStore(proj, logger)
			rows := make([][]string, 0, len(scenes))
			for _, scene := range scenes {
				rows = append(rows, []string{scene, yesNo(store.Exists(scene))})
			}
			fmt.Fprintln(out, renderTable([]string{"Scene", "AOV file"}, rows))
			return nil
		},
	}
}
