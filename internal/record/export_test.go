// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package record

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/cv-builder/pkg/types"
)

func TestWriteJSON(t *testing.T) {
	r := types.Resume{
		Name:     "Zoë Müller",
		JobTitle: "Computer Vision—ML Engineer",
		Location: "Villeneuve d’Ascq",
		Website:  "https://example.com/?a=1&b=<2>",
		WorkExperience: []types.WorkExperience{
			{Company: "Acme"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, r))
	out := buf.String()

	assert.Contains(t, out, `"name": "Zoë Müller"`)
	assert.Contains(t, out, `"job_title": "Computer Vision—ML Engineer"`)
	assert.Contains(t, out, `"location": "Villeneuve d’Ascq"`)
	assert.Contains(t, out, `"website": "https://example.com/?a=1&b=<2>"`)
	assert.NotContains(t, out, `\u`)
	assert.NotContains(t, out, "null")
	assert.Contains(t, out, `"education": []`)
	assert.Contains(t, out, `"achievements": []`)
	assert.True(t, strings.HasPrefix(out, "{\n  \"name\": "), "two-space indent, name first")

	// Key order follows the record layout.
	order := []string{`"name"`, `"job_title"`, `"summary"`, `"google_scholar"`, `"education"`,
		`"publications"`, `"work_experience"`, `"projects"`, `"skills"`}
	last := -1
	for _, k := range order {
		idx := strings.Index(out, k)
		require.GreaterOrEqual(t, idx, 0, "missing key %s", k)
		assert.Greater(t, idx, last, "key %s out of order", k)
		last = idx
	}
}

func TestWriteJSONDoesNotMutateRecord(t *testing.T) {
	r := types.Resume{Name: "Jane"}
	require.NoError(t, WriteJSON(&bytes.Buffer{}, r))
	assert.Nil(t, r.Education)
}

func TestExportRoundTrip(t *testing.T) {
	sample := Sample()
	for _, format := range []Format{FormatJSON, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, sample, format))

			got, err := Decode(&buf, format)
			require.NoError(t, err)
			if diff := cmp.Diff(sample.Normalized(), got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWriteFileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv_output.json")

	require.NoError(t, WriteFile(path, Sample(), FormatJSON))
	require.NoError(t, WriteFile(path, types.Resume{Name: "Short"}, FormatJSON))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"name": "Short"`)
	assert.NotContains(t, string(data), "Ada Example")
}

func TestWriteUnsupportedFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, types.Resume{}, Format("toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestGenerateBibTeX(t *testing.T) {
	r := types.Resume{
		Name: "Jane van Doe, PhD",
		Publications: []types.Publication{
			{Title: "Fault diagnosis & prognosis", Venue: "Neurocomputing", Year: "2024", DOI: "https://doi.org/10.1000/a"},
			{Title: "Second paper", Venue: "MEPCON", Year: "2024", DOI: "doi:10.1000/b"},
			{Title: "Third paper", Year: "2024"},
			{Venue: "untitled entries are skipped"},
		},
	}

	got := GenerateBibTeX(r)

	assert.Equal(t, 3, strings.Count(got, "@article{"))
	assert.Contains(t, got, "@article{Doe2024,\n")
	assert.Contains(t, got, "@article{Doe2024b,\n")
	assert.Contains(t, got, "@article{Doe2024c,\n")
	assert.Contains(t, got, "  title = {Fault diagnosis \\& prognosis},\n")
	assert.Contains(t, got, "  author = {Jane van Doe},\n")
	assert.Contains(t, got, "  journal = {Neurocomputing},\n")
	assert.Contains(t, got, "  doi = {10.1000/a},\n")
	assert.Contains(t, got, "  doi = {10.1000/b},\n")
	assert.NotContains(t, got, "untitled")
}

func TestWriteBibTeX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Sample(), FormatBibTeX))
	assert.Equal(t, GenerateBibTeX(Sample()), buf.String())
	assert.Contains(t, buf.String(), "@article{Example2024,\n")
}

func TestGenerateBibTeXKeyFallback(t *testing.T) {
	r := types.Resume{Publications: []types.Publication{{Title: "A"}, {Title: "B"}}}

	got := GenerateBibTeX(r)

	assert.Contains(t, got, "@article{pub,\n")
	assert.Contains(t, got, "@article{pubb,\n")
	assert.NotContains(t, got, "@article{,")
}

func TestGenerateBibTeXManyRepeats(t *testing.T) {
	var r types.Resume
	r.Name = "Jane Doe"
	for i := 0; i < 30; i++ {
		r.Publications = append(r.Publications, types.Publication{Title: "P", Year: "2024"})
	}

	got := GenerateBibTeX(r)

	keys := regexp.MustCompile(`@article\{([^,]*),`).FindAllStringSubmatch(got, -1)
	require.Len(t, keys, 30)
	seen := make(map[string]bool)
	valid := regexp.MustCompile(`^Doe2024[a-z0-9]*$`)
	for _, k := range keys {
		assert.Regexp(t, valid, k[1])
		assert.False(t, seen[k[1]], "duplicate key %s", k[1])
		seen[k[1]] = true
	}
	assert.True(t, seen["Doe2024z"])
	assert.True(t, seen["Doe202427"])
}

func TestGenerateBibTeXEmpty(t *testing.T) {
	assert.Empty(t, GenerateBibTeX(types.Resume{Name: "Jane"}))
}
