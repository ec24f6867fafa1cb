package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/cv-builder/internal/record"
)

const defaultRecordPath = "resume.json"

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a sample résumé record to start from",
	Long: `Init writes a complete, fictional résumé record that fills every section.
The format follows the file extension: .json (default) or .yaml/.yml.
An existing file is left alone unless --force is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().Bool("force", false, "overwrite an existing record")

	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	path := defaultRecordPath
	if len(args) == 1 {
		path = args[0]
	}

	force, _ := cmd.Flags().GetBool("force")
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := record.WriteFile(path, record.Sample(), record.FormatFromPath(path)); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote: %s\n", path)
	return nil
}
