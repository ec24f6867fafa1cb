// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import (
	"fmt"
	"strings"

	"github.com/pdiddy/cv-builder/pkg/types"
)

// Generator produces the per-section LaTeX fragments of a résumé.
type Generator struct {
	// prose renders long free-text fields: summary, achievement and
	// project descriptions.
	prose func(string) string
}

// NewGenerator returns a Generator configured by opts.
func NewGenerator(opts types.DocumentOptions) *Generator {
	g := &Generator{prose: Escape}
	if opts.Markdown {
		g.prose = InlineMarkdown
	}
	return g
}

// Header renders the name/contact table. Profile links are laid out two per
// row. It always returns a complete table, even for an empty record.
func (g *Generator) Header(r types.Resume) string {
	email := strings.TrimSpace(r.Email)

	var b strings.Builder
	b.WriteString(`\begin{tabular*}{\textwidth}{l@{\extracolsep{\fill}}r}` + "\n")
	fmt.Fprintf(&b, "  \\textbf{\\Large %s} & Email: \\href{mailto:%s}{%s} \\\\\n", Escape(r.Name), EscapeURL(email), Escape(email))
	fmt.Fprintf(&b, "  \\textbf{\\large %s} \\\\\n", Escape(r.JobTitle))
	fmt.Fprintf(&b, "  %s & Mobile: %s \\\\\n", Escape(r.Location), Escape(r.Phone))

	links := contactLinks(r)
	for i := 0; i < len(links); i += 2 {
		right := ""
		if i+1 < len(links) {
			right = links[i+1]
		}
		fmt.Fprintf(&b, "  %s & %s \\\\\n", links[i], right)
	}

	b.WriteString(`\end{tabular*}` + "\n")
	return b.String()
}

func contactLinks(r types.Resume) []string {
	candidates := []struct{ url, label string }{
		{r.LinkedIn, "LinkedIn"},
		{r.GitHub, "GitHub"},
		{r.Website, "Website"},
		{r.GoogleScholar, "Google Scholar"},
	}
	var links []string
	for _, c := range candidates {
		if link := FormatURL(c.url, c.label); link != "" {
			links = append(links, link)
		}
	}
	return links
}

// Summary renders the summary section, or "" when there is no summary.
func (g *Generator) Summary(summary string) string {
	if strings.TrimSpace(summary) == "" {
		return ""
	}
	return "\\section{Summary}\n" + g.prose(summary) + "\n\n"
}

// Education renders the education section. An entry with both a lab name
// and a lab URL gets a hyperlinked lab name after the institution.
func (g *Generator) Education(entries []types.Education) string {
	var items strings.Builder
	for _, e := range entries {
		if isBlank(e.Institution, e.Location, e.Degree, e.Duration, e.LabName) {
			continue
		}
		institution := Escape(e.Institution)
		if e.LabName != "" && e.LabURL != "" {
			institution = fmt.Sprintf("%s,  %s", institution, FormatURL(e.LabURL, e.LabName))
		}
		fmt.Fprintf(&items, "    \\resumeSubheading\n      {%s}{%s}\n      {%s}{%s}\n",
			institution, Escape(e.Location), Escape(e.Degree), Escape(e.Duration))
	}
	if items.Len() == 0 {
		return ""
	}
	return "\\section{Education}\n  \\resumeSubHeadingListStart\n" + items.String() + "  \\resumeSubHeadingListEnd\n"
}

// WorkExperience renders one subheading per position. An achievement is
// listed only when both its title and its text are present.
func (g *Generator) WorkExperience(jobs []types.WorkExperience) string {
	var b strings.Builder
	for _, job := range jobs {
		achievements := g.achievementItems(job.Achievements)
		if isBlank(job.Company, job.Location, job.Role, job.Duration) && achievements == "" {
			continue
		}
		fmt.Fprintf(&b, "\n    \\resumeSubHeadingListStart\n    \\resumeSubheading\n    {%s}{%s}\n    {%s}{%s}\n",
			Escape(job.Company), Escape(job.Location), Escape(job.Role), Escape(job.Duration))
		if achievements != "" {
			b.WriteString("    \\resumeItemListStart\n")
			b.WriteString(achievements)
			b.WriteString("\\resumeItemListEnd\n")
		}
		b.WriteString("\\resumeSubHeadingListEnd\n")
	}
	if b.Len() == 0 {
		return ""
	}
	return "\\section{Work Experience}\n" + b.String()
}

func (g *Generator) achievementItems(achievements []types.Achievement) string {
	var b strings.Builder
	for _, a := range achievements {
		if strings.TrimSpace(a.Title) == "" || strings.TrimSpace(a.Achievement) == "" {
			continue
		}
		fmt.Fprintf(&b, "    \\resumeSubItem{%s}{%s}\n", Escape(a.Title), g.prose(a.Achievement))
	}
	return b.String()
}

// Projects renders the projects section. The project name is bold; a
// project URL becomes a "link" hyperlink after it. Projects without a name
// are listed under an empty label.
func (g *Generator) Projects(projects []types.Project) string {
	var items strings.Builder
	for _, p := range projects {
		if isBlank(p.ProjectName, p.Achievement, p.ProjectURL) {
			continue
		}
		var title string
		if name := Escape(strings.TrimSpace(p.ProjectName)); name != "" {
			title = `\textbf{` + name + `}`
		}
		if link := FormatURL(p.ProjectURL, "link"); link != "" {
			if title != "" {
				title += " "
			}
			title += "(" + link + ")"
		}
		fmt.Fprintf(&items, "\\resumeSubItem{%s}{%s}\n", title, g.prose(p.Achievement))
	}
	if items.Len() == 0 {
		return ""
	}
	return "\\section{Projects}\n\\resumeSubHeadingListStart\n" + items.String() + "\\resumeSubHeadingListEnd\n"
}

// Skills renders one line per skill group. A group without a category is
// still emitted, under an empty label.
func (g *Generator) Skills(groups []types.SkillGroup) string {
	var items strings.Builder
	for _, s := range groups {
		skills := Escape(joinSkills(s.Skills))
		category := Escape(strings.TrimSpace(s.SkillCategory))
		if skills == "" && category == "" {
			continue
		}
		if category != "" {
			category = `\textbf{` + category + `}`
		}
		fmt.Fprintf(&items, "\\resumeSubItem{%s}{%s}\n", category, skills)
	}
	if items.Len() == 0 {
		return ""
	}
	return "\\section{Skills}\n\\resumeSubHeadingListStart\n" + items.String() + "\\resumeSubHeadingListEnd\n"
}

// joinSkills tidies a comma-separated list: entries are trimmed, empty
// entries dropped, and the rest joined with ", ".
func joinSkills(list string) string {
	parts := strings.Split(list, ",")
	kept := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ", ")
}

// Publications renders title, venue and year, followed by a "(DOI)" link
// when the publication has a DOI.
func (g *Generator) Publications(pubs []types.Publication) string {
	var items strings.Builder
	for _, p := range pubs {
		if isBlank(p.Title, p.Venue, p.Year.String(), p.DOI) {
			continue
		}
		var detail strings.Builder
		if venue := Escape(strings.TrimSpace(p.Venue)); venue != "" {
			detail.WriteString(`\emph{` + venue + `}`)
		}
		if year := Escape(strings.TrimSpace(p.Year.String())); year != "" {
			if detail.Len() > 0 {
				detail.WriteString(", ")
			}
			detail.WriteString(year)
		}
		if link := FormatURL(DOIURL(p.DOI), "(DOI)"); link != "" {
			detail.WriteString("  " + link)
		}
		fmt.Fprintf(&items, "  \\resumeSubItem{%s}{%s}\n", Escape(p.Title), detail.String())
	}
	if items.Len() == 0 {
		return ""
	}
	return "\\section{Publications}\n\\resumeSubHeadingListStart\n" + items.String() + "\\resumeSubHeadingListEnd\n"
}

// isBlank reports whether every field is empty after trimming whitespace.
func isBlank(fields ...string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
