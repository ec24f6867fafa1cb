// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/cv-builder/pkg/types"
)

// preamble is the fixed document class, packages and résumé macros. It ends
// inside the document environment, right before the header.
//
//go:embed preamble.tex
var preamble string

const closing = `\end{document}` + "\n"

// Assemble builds the complete LaTeX document for r. Sections appear in a
// fixed order: header, summary, education, work experience, projects,
// skills, publications.
func Assemble(r types.Resume, opts types.DocumentOptions) string {
	g := NewGenerator(opts)

	var b strings.Builder
	b.WriteString(preamble)
	b.WriteString(g.Header(r) + "\n")
	b.WriteString(g.Summary(r.Summary))
	b.WriteString(g.Education(r.Education) + "\n")
	b.WriteString(g.WorkExperience(r.WorkExperience) + "\n")
	b.WriteString(g.Projects(r.Projects) + "\n")
	b.WriteString(g.Skills(r.Skills) + "\n")
	b.WriteString(g.Publications(r.Publications) + "\n")
	b.WriteString(closing)
	return b.String()
}

// WriteDocument assembles r and writes it to path as UTF-8, replacing any
// existing file. The parent directory is created if needed.
func WriteDocument(path string, r types.Resume, opts types.DocumentOptions) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating document directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(Assemble(r, opts)), 0o644); err != nil {
		return fmt.Errorf("writing document %s: %w", path, err)
	}
	return nil
}
