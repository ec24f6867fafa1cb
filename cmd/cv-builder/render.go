package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/cv-builder/internal/export"
	"github.com/pdiddy/cv-builder/internal/record"
)

var renderCmd = &cobra.Command{
	Use:   "render <record...>",
	Short: "Build the PDF résumé for one or more records",
	Long: `Render validates a record, clears the output directory, writes the LaTeX
document into it and runs the compiler over it twice so cross-references
settle. The PDF path is printed on success.

With several records each one is built into its own subdirectory of the
output directory, named after the record file, and a summary is printed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().Duration("timeout", 0, "limit for a single compiler pass (0 means none)")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("timeout") {
		cfg.Export.Render.Timeout, _ = cmd.Flags().GetDuration("timeout")
	}

	e, err := newExporter()
	if err != nil {
		return err
	}

	if len(args) > 1 {
		result := export.ExportBatch(cmd.Context(), e, args, cmd.OutOrStdout())
		if result.HasFailures() {
			return fmt.Errorf("%d record(s) failed to render", result.Failed)
		}
		return nil
	}

	r, err := record.Load(args[0])
	if err != nil {
		return err
	}
	res, err := e.Export(cmd.Context(), r)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "rendered: %s\n", res.PDFPath)
	return nil
}
