// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"

	"github.com/pdiddy/cv-builder/internal/container"
)

const (
	// DefaultCompiler is the TeX engine used when none is configured.
	DefaultCompiler = "pdflatex"
	// DefaultImage is the container image used by the container backend.
	DefaultImage = "texlive/texlive:latest"
)

// Compiler runs a single compiler pass over a document. Different backends
// (local binary, container image) implement this interface.
type Compiler interface {
	// Name identifies the backend in logs and errors.
	Name() string

	// Compile typesets texPath once, writing artifacts into outDir and the
	// compiler's console output to out. A non-zero exit is an error.
	Compile(ctx context.Context, texPath, outDir string, out io.Writer) error
}

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Run(ctx context.Context, name string, args []string, out io.Writer) error
}

type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) Run(ctx context.Context, name string, args []string, out io.Writer) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = out
	cmd.Stderr = out
	return cmd.Run()
}

// compilerArgs is the non-interactive argument list for one pass.
func compilerArgs(texPath, outDir string) []string {
	return []string{
		"-interaction=nonstopmode",
		"-output-directory=" + outDir,
		texPath,
	}
}

// LocalCompiler runs a TeX engine installed on the host.
type LocalCompiler struct {
	bin  string
	exec executor
}

// NewLocalCompiler returns a compiler for bin (DefaultCompiler when empty).
// It fails when bin is not on PATH.
func NewLocalCompiler(bin string) (*LocalCompiler, error) {
	return newLocalCompiler(bin, &osExecutor{})
}

func newLocalCompiler(bin string, exec executor) (*LocalCompiler, error) {
	if bin == "" {
		bin = DefaultCompiler
	}
	if _, err := exec.LookPath(bin); err != nil {
		return nil, fmt.Errorf("compiler %s not found on PATH: %w", bin, err)
	}
	return &LocalCompiler{bin: bin, exec: exec}, nil
}

func (c *LocalCompiler) Name() string { return c.bin }

func (c *LocalCompiler) Compile(ctx context.Context, texPath, outDir string, out io.Writer) error {
	return c.exec.Run(ctx, c.bin, compilerArgs(texPath, outDir), out)
}

// Paths inside the container where the source and output directories are
// mounted.
const (
	containerSrc = "/work/src"
	containerOut = "/work/out"
)

// ContainerCompiler runs a TeX engine inside a container image, with the
// document's directory and the output directory bind-mounted.
type ContainerCompiler struct {
	runtime container.Runtime
	image   string
	bin     string
}

// NewContainerCompiler creates a compiler that runs bin from image using rt.
// It verifies that the image exists locally before returning.
func NewContainerCompiler(rt container.Runtime, image, bin string) (*ContainerCompiler, error) {
	if image == "" {
		image = DefaultImage
	}
	if bin == "" {
		bin = DefaultCompiler
	}
	if err := rt.ImageExists(image); err != nil {
		return nil, fmt.Errorf("TeX image not available in %s (pull %s first): %w", rt.Name(), image, err)
	}
	return &ContainerCompiler{runtime: rt, image: image, bin: bin}, nil
}

func (c *ContainerCompiler) Name() string { return c.runtime.Name() + ":" + c.bin }

func (c *ContainerCompiler) Compile(ctx context.Context, texPath, outDir string, out io.Writer) error {
	absTex, err := filepath.Abs(texPath)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", texPath, err)
	}
	absOut, err := filepath.Abs(outDir)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", outDir, err)
	}

	srcDir := filepath.Dir(absTex)
	mounts := []container.Mount{{Source: srcDir, Target: containerSrc, ReadOnly: true}}
	target := containerOut
	if srcDir == absOut {
		mounts = []container.Mount{{Source: srcDir, Target: containerSrc}}
		target = containerSrc
	} else {
		mounts = append(mounts, container.Mount{Source: absOut, Target: containerOut})
	}

	args := append([]string{c.bin}, compilerArgs(filepath.Base(absTex), target)...)
	return c.runtime.Run(ctx, container.RunSpec{
		Image:   c.image,
		Mounts:  mounts,
		Workdir: containerSrc,
		Args:    args,
		Stdout:  out,
		Stderr:  out,
	})
}
