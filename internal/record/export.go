// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package record

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/cv-builder/internal/latex"
	"github.com/pdiddy/cv-builder/pkg/types"
)

// WriteJSON writes r as two-space indented JSON. Non-ASCII text and HTML
// characters are written as-is; empty lists are written as [].
func WriteJSON(w io.Writer, r types.Resume) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r.Normalized()); err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return nil
}

// WriteYAML writes r as YAML with the same keys as the JSON export.
func WriteYAML(w io.Writer, r types.Resume) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r.Normalized()); err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return enc.Close()
}

// WriteBibTeX writes r's publications as BibTeX entries.
func WriteBibTeX(w io.Writer, r types.Resume) error {
	if _, err := io.WriteString(w, GenerateBibTeX(r)); err != nil {
		return fmt.Errorf("writing BibTeX: %w", err)
	}
	return nil
}

// Write encodes r in the given format.
func Write(w io.Writer, r types.Resume, format Format) error {
	switch format {
	case FormatJSON, "":
		return WriteJSON(w, r)
	case FormatYAML:
		return WriteYAML(w, r)
	case FormatBibTeX:
		return WriteBibTeX(w, r)
	default:
		return fmt.Errorf("unsupported format %q: use json, yaml or bib", format)
	}
}

// WriteFile encodes r into path, replacing any existing file.
func WriteFile(path string, r types.Resume, format Format) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := Write(f, r, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

var doiPrefix = regexp.MustCompile(`^(?i:https?://(dx\.)?doi\.org/|doi:\s*)`)

// GenerateBibTeX produces one @article entry per publication. The record's
// owner is listed as author; citation keys are Surname+Year, with a letter
// suffix when a key repeats.
func GenerateBibTeX(r types.Resume) string {
	author := ownerName(r.Name)
	surname := citationStem(author)

	seen := make(map[string]int)
	var b strings.Builder
	for _, p := range r.Publications {
		if strings.TrimSpace(p.Title) == "" {
			continue
		}
		key := surname + citationStem(p.Year.String())
		if key == "" {
			key = fallbackKey
		}
		n := seen[key]
		seen[key]++
		key += keySuffix(n)

		fmt.Fprintf(&b, "@article{%s,\n", key)
		fmt.Fprintf(&b, "  title = {%s},\n", latex.Escape(p.Title))
		if author != "" {
			fmt.Fprintf(&b, "  author = {%s},\n", latex.Escape(author))
		}
		if y := strings.TrimSpace(p.Year.String()); y != "" {
			fmt.Fprintf(&b, "  year = {%s},\n", latex.Escape(y))
		}
		if v := strings.TrimSpace(p.Venue); v != "" {
			fmt.Fprintf(&b, "  journal = {%s},\n", latex.Escape(v))
		}
		if doi := doiPrefix.ReplaceAllString(strings.TrimSpace(p.DOI), ""); doi != "" {
			fmt.Fprintf(&b, "  doi = {%s},\n", doi)
		}
		fmt.Fprintf(&b, "}\n\n")
	}
	return b.String()
}

// fallbackKey stands in for a citation key with neither surname nor year.
const fallbackKey = "pub"

// keySuffix disambiguates the n-th repeat of a key: "", "b" ... "z", then
// "27", "28" and so on.
func keySuffix(n int) string {
	switch {
	case n == 0:
		return ""
	case n < 26:
		return string(rune('a' + n))
	default:
		return strconv.Itoa(n + 1)
	}
}

// ownerName drops trailing credentials: "Jane Doe, PhD" becomes "Jane Doe".
func ownerName(name string) string {
	name, _, _ = strings.Cut(name, ",")
	return strings.TrimSpace(name)
}

// citationStem keeps the letters and digits of the last word of s.
func citationStem(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, fields[len(fields)-1])
}
