// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/cv-builder/pkg/types"
)

// fixtureResume has one education entry, one position with two
// achievements, and one publication whose DOI has no scheme.
func fixtureResume() types.Resume {
	return types.Resume{
		Name:     "Jane Doe",
		JobTitle: "Machine Learning Engineer",
		Email:    "jane@example.com",
		Education: []types.Education{{
			Institution: "University of Lille",
			Degree:      "PhD",
			Duration:    "2021 - 2024",
		}},
		WorkExperience: []types.WorkExperience{{
			Company: "Acme",
			Role:    "R&D Engineer",
			Achievements: []types.Achievement{
				{Title: "Diffusion Model", Achievement: "Built an image pipeline."},
				{Title: "Transformer OCR", Achievement: "Improved F1 by 8%."},
			},
		}},
		Publications: []types.Publication{{
			Title: "Hybrid fault diagnosis",
			Venue: "Neurocomputing",
			Year:  "2024",
			DOI:   "10.1016/j.neucom.2024.127871",
		}},
	}
}

// bracesBalanced reports whether unescaped braces in doc are balanced.
func bracesBalanced(doc string) bool {
	depth := 0
	for i := 0; i < len(doc); i++ {
		switch doc[i] {
		case '\\':
			i++
		case '{':
			depth++
		case '}':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}

func TestAssembleEmptyRecord(t *testing.T) {
	doc := Assemble(types.Resume{}, types.DocumentOptions{})

	assert.True(t, strings.HasPrefix(doc, preamble), "document starts with the preamble")
	assert.True(t, strings.HasSuffix(doc, "\\end{document}\n"))
	assert.Equal(t, 1, strings.Count(doc, `\begin{document}`))
	assert.NotContains(t, doc, `\section{`)
	assert.Contains(t, doc, `\begin{tabular*}`)
	assert.True(t, bracesBalanced(doc), "unbalanced braces in empty document")
}

func TestAssembleSectionOrder(t *testing.T) {
	r := fixtureResume()
	r.Summary = "Engineer."
	r.Projects = []types.Project{{ProjectName: "ASR", Achievement: "Fine-tuned Whisper."}}
	r.Skills = []types.SkillGroup{{SkillCategory: "Languages", Skills: "Go"}}

	doc := Assemble(r, types.DocumentOptions{})
	require.True(t, bracesBalanced(doc), "unbalanced braces")

	markers := []string{
		`\begin{tabular*}`,
		`\section{Summary}`,
		`\section{Education}`,
		"University of Lille",
		`\section{Work Experience}`,
		"Diffusion Model",
		"Transformer OCR",
		`\section{Projects}`,
		`\section{Skills}`,
		`\section{Publications}`,
		`\href{https://doi.org/10.1016/j.neucom.2024.127871}`,
		`\end{document}`,
	}
	last := -1
	for _, m := range markers {
		idx := strings.Index(doc, m)
		require.GreaterOrEqual(t, idx, 0, "missing %q", m)
		assert.Greater(t, idx, last, "%q out of order", m)
		last = idx
	}
}

func TestAssembleEscapesFreeText(t *testing.T) {
	r := fixtureResume()
	doc := Assemble(r, types.DocumentOptions{})
	body := doc[len(preamble):]

	assert.Contains(t, body, `R\&D Engineer`)
	assert.Contains(t, body, `Improved F1 by 8\%.`)
	assert.NotContains(t, body, "R&D")
}

func TestWriteDocumentOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache", "cv_output.tex")

	first := fixtureResume()
	require.NoError(t, WriteDocument(path, first, types.DocumentOptions{}))

	second := fixtureResume()
	second.Name = "John Roe"
	second.Publications = nil
	require.NoError(t, WriteDocument(path, second, types.DocumentOptions{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	assert.Equal(t, Assemble(second, types.DocumentOptions{}), content)
	assert.NotContains(t, content, "Jane Doe")
	assert.NotContains(t, content, `\section{Publications}`)
	assert.Equal(t, 1, strings.Count(content, `\end{document}`))
}
