// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// RenderBackend identifies where the TeX compiler runs.
type RenderBackend string

const (
	// BackendLocal runs the compiler binary found on PATH.
	BackendLocal RenderBackend = "local"
	// BackendContainer runs the compiler inside a TeX container image.
	BackendContainer RenderBackend = "container"
)

// RenderConfig holds settings for the external compiler invocation.
type RenderConfig struct {
	// Backend selects local or container execution (default local).
	Backend RenderBackend `json:"backend" yaml:"backend" mapstructure:"backend"`

	// Compiler is the TeX engine binary (default "pdflatex").
	Compiler string `json:"compiler" yaml:"compiler" mapstructure:"compiler"`

	// Image is the container image used by the container backend
	// (default "texlive/texlive:latest").
	Image string `json:"image" yaml:"image" mapstructure:"image"`

	// Timeout bounds a single compiler pass. Zero means no limit.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`
}

// DocumentOptions controls how a record is turned into LaTeX.
type DocumentOptions struct {
	// Markdown enables inline Markdown (emphasis, code, links) in long
	// free-text fields. When false those fields are escaped verbatim.
	Markdown bool `json:"markdown" yaml:"markdown" mapstructure:"markdown"`
}

// ExportConfig holds settings for the export pipeline.
type ExportConfig struct {
	DocumentOptions `yaml:",inline" mapstructure:",squash"`

	// OutputDir is cleared and recreated before every export (default "cv_cache").
	OutputDir string `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`

	// DocumentName is the base name of the generated .tex and .pdf files
	// (default "cv_output").
	DocumentName string `json:"document_name" yaml:"document_name" mapstructure:"document_name"`

	Render RenderConfig `json:"render" yaml:"render" mapstructure:"render"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	// Level is a zerolog level name: debug, info, warn, error.
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is "pretty" for console output or "json".
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// Config is the full application configuration as read by viper.
type Config struct {
	Export ExportConfig `json:"export" yaml:"export" mapstructure:",squash"`
	Log    LogConfig    `json:"log" yaml:"log" mapstructure:"log"`
}
