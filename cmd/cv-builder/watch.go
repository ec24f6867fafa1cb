package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/cv-builder/internal/record"
	"github.com/pdiddy/cv-builder/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch <record>",
	Short: "Rebuild the PDF every time the record changes",
	Long: `Watch renders the record once, then again after every saved change
until interrupted. Failed builds are logged and watching continues.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().Duration("debounce", watch.DefaultDebounce, "quiet period before a change triggers a rebuild")

	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := args[0]

	e, err := newExporter()
	if err != nil {
		return err
	}

	build := func(ctx context.Context) error {
		r, err := record.Load(path)
		if err != nil {
			return err
		}
		res, err := e.Export(ctx, r)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "rendered: %s\n", res.PDFPath)
		return nil
	}

	debounce, _ := cmd.Flags().GetDuration("debounce")
	w, err := watch.New(path, build, watch.WithDebounce(debounce), watch.WithLogger(log))
	if err != nil {
		return err
	}

	if err := build(cmd.Context()); err != nil {
		log.Error().Err(err).Str("file", path).Msg("initial build failed")
	}
	return w.Run(cmd.Context())
}
