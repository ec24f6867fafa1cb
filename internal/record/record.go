// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package record loads, validates and exports résumé records.
//
// Records are JSON or YAML documents matching types.Resume. Unknown keys are
// ignored and missing keys decode to empty values, so partially filled
// records load without error.
package record

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/cv-builder/pkg/types"
)

// Format identifies a record serialisation.
type Format string

const (
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
	FormatBibTeX Format = "bib"
)

// FormatFromPath picks the record format from a file extension. Anything
// other than .yaml or .yml is treated as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads a record file. The format is chosen by extension.
func Load(path string) (types.Resume, error) {
	f, err := os.Open(path)
	if err != nil {
		return types.Resume{}, fmt.Errorf("opening record: %w", err)
	}
	defer f.Close()

	r, err := Decode(f, FormatFromPath(path))
	if err != nil {
		return types.Resume{}, fmt.Errorf("reading record %s: %w", path, err)
	}
	return r, nil
}

// Decode parses a record in the given format. An empty document decodes to
// an empty record.
func Decode(rd io.Reader, format Format) (types.Resume, error) {
	data, err := io.ReadAll(rd)
	if err != nil {
		return types.Resume{}, fmt.Errorf("reading record: %w", err)
	}
	var r types.Resume
	if len(bytes.TrimSpace(data)) == 0 {
		return r, nil
	}

	switch format {
	case FormatJSON, "":
		if err := json.Unmarshal(data, &r); err != nil {
			return types.Resume{}, fmt.Errorf("parsing JSON record: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &r); err != nil {
			return types.Resume{}, fmt.Errorf("parsing YAML record: %w", err)
		}
	default:
		return types.Resume{}, fmt.Errorf("unsupported record format %q", format)
	}
	return r, nil
}

// ErrIncomplete is matched by validation failures via errors.Is.
var ErrIncomplete = errors.New("record incomplete")

// ValidationError lists the required fields that are empty.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

func (e *ValidationError) Unwrap() error { return ErrIncomplete }

// Validate checks the fields an export cannot do without: name, job title
// and email. Everything else is optional.
func Validate(r types.Resume) error {
	required := []struct {
		key, value string
	}{
		{"name", r.Name},
		{"job_title", r.JobTitle},
		{"email", r.Email},
	}
	var missing []string
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.key)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}
