package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/cv-builder/internal/record"
)

var validateCmd = &cobra.Command{
	Use:   "validate <record>",
	Short: "Check that a record has every required field",
	Long: `Validate loads a record and checks that name, job_title and email are
present. It exits non-zero and lists the missing fields otherwise.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	r, err := record.Load(args[0])
	if err != nil {
		return err
	}
	if err := record.Validate(r); err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "ok: %s\n", args[0])
	return nil
}
