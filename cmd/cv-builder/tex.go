package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/cv-builder/internal/export"
	"github.com/pdiddy/cv-builder/internal/latex"
	"github.com/pdiddy/cv-builder/internal/record"
)

var texCmd = &cobra.Command{
	Use:   "tex <record>",
	Short: "Generate the LaTeX document without compiling it",
	Long: `Tex writes the LaTeX source for a record to stdout, or to the file given
with -o. The compiler is not invoked and the output directory is untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: runTex,
}

func init() {
	texCmd.Flags().StringP("output", "o", "", "write the document to this file instead of stdout")

	rootCmd.AddCommand(texCmd)
}

func runTex(cmd *cobra.Command, args []string) error {
	r, err := record.Load(args[0])
	if err != nil {
		return err
	}
	if err := record.Validate(r); err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	out, _ := cmd.Flags().GetString("output")
	if out == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), latex.Assemble(r, cfg.Export.DocumentOptions))
		return err
	}

	if err := export.New(cfg.Export, nil, log).WriteTeX(r, out); err != nil {
		return err
	}
	log.Info().Str("document", out).Msg("document written")
	return nil
}
