// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the cv-builder CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/cv-builder/internal/export"
	"github.com/pdiddy/cv-builder/internal/logger"
	"github.com/pdiddy/cv-builder/internal/render"
	"github.com/pdiddy/cv-builder/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	// cfg is the resolved configuration, populated before any command runs.
	cfg types.Config
	// log is the process logger built from cfg.Log.
	log zerolog.Logger
)

// rootCmd is the base command for the cv-builder CLI.
var rootCmd = &cobra.Command{
	Use:   "cv-builder",
	Short: "Build LaTeX résumés from structured records",
	Long: `cv-builder turns a résumé record (JSON or YAML) into a LaTeX document
and compiles it to PDF with pdflatex.

Write a starting record with init, check it with validate, and build it with
render. The output directory is cleared on every render, so it only ever holds
the latest build.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return err
		}
		log = logger.Init(cfg.Log)
		if used := viper.ConfigFileUsed(); used != "" {
			log.Debug().Str("file", used).Msg("using config file")
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./cv-builder.yaml or ~/.config/cv-builder/cv-builder.yaml)")
	pf.String("output-dir", export.DefaultOutputDir, "directory cleared and rebuilt on every render")
	pf.String("document-name", export.DefaultDocumentName, "base name of the generated .tex and .pdf")
	pf.Bool("markdown", false, "render inline Markdown in summaries and achievements")
	pf.String("backend", string(types.BackendLocal), "where the compiler runs: local or container")
	pf.String("compiler", render.DefaultCompiler, "TeX engine binary")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("log-format", logger.FormatPretty, "log format: pretty or json")

	bindFlag("output_dir", "output-dir")
	bindFlag("document_name", "document-name")
	bindFlag("markdown", "markdown")
	bindFlag("render.backend", "backend")
	bindFlag("render.compiler", "compiler")
	bindFlag("log.level", "log-level")
	bindFlag("log.format", "log-format")

	viper.SetDefault("render.image", render.DefaultImage)
	viper.SetDefault("render.timeout", "0s")
}

func bindFlag(key, flag string) {
	if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(fmt.Sprintf("binding flag %s: %v", flag, err))
	}
}

func initConfig() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "Ignoring .env:", err)
	}

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("cv-builder")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "cv-builder"))
		}
	}

	viper.SetEnvPrefix("CV_BUILDER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// loadConfig reads the config file, if any, and decodes every setting into
// cfg. A missing default config file is not an error; an explicit --config
// that cannot be read is.
func loadConfig() error {
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}
	return nil
}

// newExporter builds the exporter and the renderer selected by cfg.
func newExporter() (*export.Exporter, error) {
	r, err := render.NewFromConfig(cfg.Export.Render, log)
	if err != nil {
		return nil, err
	}
	return export.New(cfg.Export, r, log), nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
