// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export turns résumé records into compiled PDFs.
//
// An export validates the record, resets the output directory, writes the
// LaTeX document into it and runs the renderer over that document.
package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pdiddy/cv-builder/internal/latex"
	"github.com/pdiddy/cv-builder/internal/record"
	"github.com/pdiddy/cv-builder/pkg/types"
)

const (
	// DefaultOutputDir is the cache directory documents are written to.
	DefaultOutputDir = "cv_cache"
	// DefaultDocumentName is the file stem of the generated document.
	DefaultDocumentName = "cv_output"
)

// ErrUnsafeOutputDir is returned when the output directory would clear the
// working directory or the filesystem root.
var ErrUnsafeOutputDir = errors.New("refusing to clear output directory")

// Renderer compiles a LaTeX document into outDir and returns the PDF path.
type Renderer interface {
	Render(ctx context.Context, texPath, outDir string) (string, error)
}

// Result describes one successful export.
type Result struct {
	ID       string
	TexPath  string
	PDFPath  string
	Duration time.Duration
}

// Exporter writes and renders records into a single output directory.
type Exporter struct {
	cfg      types.ExportConfig
	renderer Renderer
	log      zerolog.Logger
}

// New creates an Exporter. Empty OutputDir and DocumentName fall back to
// DefaultOutputDir and DefaultDocumentName.
func New(cfg types.ExportConfig, r Renderer, log zerolog.Logger) *Exporter {
	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}
	if cfg.DocumentName == "" {
		cfg.DocumentName = DefaultDocumentName
	}
	return &Exporter{cfg: cfg, renderer: r, log: log}
}

// OutputDir returns the directory Export writes into.
func (e *Exporter) OutputDir() string { return e.cfg.OutputDir }

// TexPath returns the document path inside dir.
func (e *Exporter) TexPath(dir string) string {
	return filepath.Join(dir, e.cfg.DocumentName+".tex")
}

// Export validates r, clears the output directory and renders the record
// into it. Running it again replaces every artifact of the previous run.
func (e *Exporter) Export(ctx context.Context, r types.Resume) (Result, error) {
	return e.exportTo(ctx, r, e.cfg.OutputDir)
}

// WriteTeX writes the LaTeX document for r to path without compiling it.
func (e *Exporter) WriteTeX(r types.Resume, path string) error {
	if err := latex.WriteDocument(path, r, e.cfg.DocumentOptions); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	return nil
}

func (e *Exporter) exportTo(ctx context.Context, r types.Resume, dir string) (Result, error) {
	start := time.Now()
	res := Result{ID: uuid.NewString()}
	log := e.log.With().Str("export_id", res.ID).Str("dir", dir).Logger()

	if err := record.Validate(r); err != nil {
		return res, err
	}

	if err := resetDir(dir); err != nil {
		return res, err
	}

	res.TexPath = e.TexPath(dir)
	if err := e.WriteTeX(r, res.TexPath); err != nil {
		return res, err
	}
	log.Debug().Str("document", res.TexPath).Msg("document written")

	pdf, err := e.renderer.Render(ctx, res.TexPath, dir)
	if err != nil {
		return res, fmt.Errorf("rendering %s: %w", res.TexPath, err)
	}
	res.PDFPath = pdf
	res.Duration = time.Since(start)

	log.Info().Str("pdf", pdf).Dur("duration", res.Duration).Msg("export complete")
	return res, nil
}

// resetDir removes dir and everything under it, then recreates it empty.
func resetDir(dir string) error {
	clean := filepath.Clean(dir)
	if clean == "." || clean == string(filepath.Separator) || strings.TrimSpace(dir) == "" {
		return fmt.Errorf("%w: %q", ErrUnsafeOutputDir, dir)
	}
	if err := os.RemoveAll(clean); err != nil {
		return fmt.Errorf("clearing output directory: %w", err)
	}
	if err := os.MkdirAll(clean, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	return nil
}

// BatchResult holds the outcome of a batch export run.
type BatchResult struct {
	Rendered int
	Failed   int
}

// Total returns the number of records processed.
func (r BatchResult) Total() int {
	return r.Rendered + r.Failed
}

// HasFailures reports whether any record failed to export.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// ExportBatch loads each record file and exports it into its own
// subdirectory of the exporter's output directory, named after the file.
// Per-record status goes to w. A record whose file name matches an earlier
// one fails instead of overwriting it. A failure does not stop the batch
// unless ctx is cancelled.
func ExportBatch(ctx context.Context, e *Exporter, paths []string, w io.Writer) BatchResult {
	var result BatchResult
	claimed := make(map[string]string)
	for _, p := range paths {
		if ctx.Err() != nil {
			fmt.Fprintf(w, "failed:   %s (%v)\n", p, ctx.Err())
			result.Failed++
			continue
		}

		base := strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
		if first, dup := claimed[base]; dup {
			fmt.Fprintf(w, "failed:   %s (%s: output directory already used by %s)\n", base, p, first)
			result.Failed++
			continue
		}
		claimed[base] = p

		r, err := record.Load(p)
		if err != nil {
			fmt.Fprintf(w, "failed:   %s (%v)\n", base, err)
			result.Failed++
			continue
		}

		res, err := e.exportTo(ctx, r, filepath.Join(e.cfg.OutputDir, base))
		if err != nil {
			fmt.Fprintf(w, "failed:   %s (%v)\n", base, err)
			result.Failed++
			continue
		}

		fmt.Fprintf(w, "rendered: %s -> %s\n", base, res.PDFPath)
		result.Rendered++
	}
	fmt.Fprintf(w, "\nBatch summary: %d rendered, %d failed (total: %d)\n",
		result.Rendered, result.Failed, result.Total())
	return result
}
