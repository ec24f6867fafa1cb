package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/cv-builder/internal/record"
)

var exportCmd = &cobra.Command{
	Use:   "export <record>",
	Short: "Export a record as JSON, YAML or BibTeX",
	Long: `Export writes a record in another format: json (indented, non-ASCII
preserved), yaml, or bib (publications as BibTeX entries). Output goes to
stdout unless -o is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("format", string(record.FormatJSON), "output format: json, yaml, or bib")
	exportCmd.Flags().StringP("output", "o", "", "write to this file instead of stdout")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	r, err := record.Load(args[0])
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	out, _ := cmd.Flags().GetString("output")
	if out == "" {
		return record.Write(cmd.OutOrStdout(), r, record.Format(format))
	}

	if err := record.WriteFile(out, r, record.Format(format)); err != nil {
		return fmt.Errorf("exporting %s: %w", args[0], err)
	}
	log.Info().Str("file", out).Str("format", format).Msg("record exported")
	return nil
}
