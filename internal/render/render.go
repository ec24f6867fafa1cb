// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render invokes an external TeX compiler on a generated document.
//
// The compiler runs twice: the first pass records cross-references and page
// numbers in auxiliary files, the second resolves them.
package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/pdiddy/cv-builder/internal/container"
	"github.com/pdiddy/cv-builder/pkg/types"
)

// Passes is the number of compiler runs per document.
const Passes = 2

// outputTailLines bounds how much compiler output is quoted in errors.
const outputTailLines = 20

var (
	// ErrDocumentNotFound is returned when the document to render does not
	// exist. It wraps fs.ErrNotExist.
	ErrDocumentNotFound = fmt.Errorf("document not found: %w", fs.ErrNotExist)

	// ErrCompileFailed is returned when a compiler pass exits non-zero.
	ErrCompileFailed = errors.New("compiler failed")
)

// Renderer turns a .tex file into a PDF by running a Compiler twice.
type Renderer struct {
	compiler Compiler
	timeout  time.Duration
	log      zerolog.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithTimeout bounds each compiler pass. Zero disables the limit.
func WithTimeout(d time.Duration) Option {
	return func(r *Renderer) { r.timeout = d }
}

// WithLogger sets the logger used for per-pass diagnostics.
func WithLogger(log zerolog.Logger) Option {
	return func(r *Renderer) { r.log = log }
}

// New returns a Renderer that uses c for each pass.
func New(c Compiler, opts ...Option) *Renderer {
	r := &Renderer{compiler: c, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewFromConfig builds the compiler selected by cfg.Backend and wraps it in
// a Renderer.
func NewFromConfig(cfg types.RenderConfig, log zerolog.Logger) (*Renderer, error) {
	var (
		c   Compiler
		err error
	)
	switch cfg.Backend {
	case types.BackendLocal, "":
		c, err = NewLocalCompiler(cfg.Compiler)
	case types.BackendContainer:
		var rt container.Runtime
		rt, err = container.DetectRuntime()
		if err == nil {
			c, err = NewContainerCompiler(rt, cfg.Image, cfg.Compiler)
		}
	default:
		return nil, fmt.Errorf("unsupported render backend %q: use %s or %s",
			cfg.Backend, types.BackendLocal, types.BackendContainer)
	}
	if err != nil {
		return nil, err
	}
	return New(c, WithTimeout(cfg.Timeout), WithLogger(log)), nil
}

// Render compiles texPath into outDir and returns the path of the PDF,
// named after the document's base name. outDir is created if missing.
// A missing document fails with ErrDocumentNotFound before anything is
// created; a failing pass fails with ErrCompileFailed. There is no retry.
func (r *Renderer) Render(ctx context.Context, texPath, outDir string) (string, error) {
	if _, err := os.Stat(texPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrDocumentNotFound, texPath)
		}
		return "", fmt.Errorf("checking document %s: %w", texPath, err)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	for pass := 1; pass <= Passes; pass++ {
		var out bytes.Buffer
		start := time.Now()

		err := r.compilePass(ctx, texPath, outDir, &out)

		r.log.Debug().
			Str("compiler", r.compiler.Name()).
			Str("document", texPath).
			Int("pass", pass).
			Dur("elapsed", time.Since(start)).
			Msg("compiler pass finished")

		if err != nil {
			return "", fmt.Errorf("%w: %s pass %d/%d on %s: %w%s",
				ErrCompileFailed, r.compiler.Name(), pass, Passes, texPath, err, tail(out.String()))
		}
	}

	base := strings.TrimSuffix(filepath.Base(texPath), filepath.Ext(texPath))
	return filepath.Join(outDir, base+".pdf"), nil
}

func (r *Renderer) compilePass(ctx context.Context, texPath, outDir string, out *bytes.Buffer) error {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	return r.compiler.Compile(ctx, texPath, outDir, out)
}

// tail returns the last lines of compiler output, prefixed with a newline,
// or "" when there is no output.
func tail(output string) string {
	output = strings.TrimRight(output, "\n")
	if output == "" {
		return ""
	}
	lines := strings.Split(output, "\n")
	if len(lines) > outputTailLines {
		lines = lines[len(lines)-outputTailLines:]
	}
	return "\n" + strings.Join(lines, "\n")
}
