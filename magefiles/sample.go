//go:build mage

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// sampleRecord is where Sample writes the demo record.
var sampleRecord = filepath.Join("records", "sample.json")

// Sample writes the sample record and renders it to cv_cache/.
// Requires pdflatex on PATH.
func Sample() error {
	mg.Deps(Init, Build)

	if err := sh.RunV(binPath, "init", "--force", sampleRecord); err != nil {
		return fmt.Errorf("writing sample: %w", err)
	}
	return sh.RunV(binPath, "render", sampleRecord)
}

// SampleTeX writes the sample record and only generates its LaTeX source.
func SampleTeX() error {
	mg.Deps(Init, Build)

	if err := sh.RunV(binPath, "init", "--force", sampleRecord); err != nil {
		return fmt.Errorf("writing sample: %w", err)
	}
	return sh.RunV(binPath, "tex", sampleRecord, "-o", filepath.Join("cv_cache", "sample.tex"))
}
