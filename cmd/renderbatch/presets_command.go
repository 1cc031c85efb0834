package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"renderbatch/internal/render"
)

func newPresetsCommand(ctx *commandContext) *cobra.Command {
	var cataloguePath string

	cmd := &cobra.Command{
		Use:         "presets",
		Short:       "List image presets, formats, engines, and known AOVs",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			catalogue, err := loadCatalogue(cataloguePath)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(catalogue.ImagePresets))
			for _, name := range catalogue.PresetNames() {
				size := catalogue.ImagePresets[name]
				rows = append(rows, []string{
					name,
					strconv.Itoa(size.Width),
					strconv.Itoa(size.Height),
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable([]string{"Preset", "Width", "Height"}, rows, 2, 3))
			fmt.Fprintf(out, "Formats: %s\n", strings.Join(catalogue.ImageFormats, ", "))
			fmt.Fprintf(out, "Engines: %s\n", strings.Join(catalogue.RenderEngines, ", "))
			fmt.Fprintf(out, "AOVs:    %s\n", strings.Join(catalogue.RenderAOVs, ", "))
			return nil
		},
	}

	cmd.Flags().StringVar(&cataloguePath, "catalogue", "", "Path to a custom preset catalogue JSON file")
	return cmd
}

func loadCatalogue(path string) (*render.Catalogue, error) {
	if strings.TrimSpace(path) != "" {
		return render.LoadCatalogue(path)
	}
	return render.DefaultCatalogue()
}
