// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logger configures the zerolog logger shared by the CLI.
//
// Logs are diagnostics and go to stderr; command output goes to stdout.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/pdiddy/cv-builder/pkg/types"
)

const (
	// FormatPretty selects human-readable console output.
	FormatPretty = "pretty"
	// FormatJSON selects one JSON object per line.
	FormatJSON = "json"
)

// New builds a logger from cfg writing to w. An unknown level falls back
// to info.
func New(cfg types.LogConfig, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	out := w
	if cfg.Format != FormatJSON {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// Init builds the process logger from cfg, writing to stderr, and installs
// it as zerolog's global logger.
func Init(cfg types.LogConfig) zerolog.Logger {
	l := New(cfg, os.Stderr)
	log.Logger = l
	return l
}
