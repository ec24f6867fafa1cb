// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v3"
)

// Resume is the structured résumé record collected by an editor and handed to
// the document generator. Every field is optional; absent keys decode to
// zero values. Field order matches the exported JSON key order.
type Resume struct {
	Name     string `json:"name" yaml:"name"`
	JobTitle string `json:"job_title" yaml:"job_title"`
	Summary  string `json:"summary" yaml:"summary"`
	Location string `json:"location" yaml:"location"`
	Email    string `json:"email" yaml:"email"`
	Phone    string `json:"phone" yaml:"phone"`

	// Profile links. A missing scheme is filled in at render time.
	LinkedIn      string `json:"linkedin" yaml:"linkedin"`
	GitHub        string `json:"github" yaml:"github"`
	Website       string `json:"website" yaml:"website"`
	GoogleScholar string `json:"google_scholar" yaml:"google_scholar"`

	Education      []Education      `json:"education" yaml:"education"`
	Publications   []Publication    `json:"publications" yaml:"publications"`
	WorkExperience []WorkExperience `json:"work_experience" yaml:"work_experience"`
	Projects       []Project        `json:"projects" yaml:"projects"`
	Skills         []SkillGroup     `json:"skills" yaml:"skills"`
}

// Education is one academic entry, most recent first by convention.
type Education struct {
	Institution string `json:"institution" yaml:"institution"`
	Location    string `json:"location" yaml:"location"`
	Degree      string `json:"degree" yaml:"degree"`
	Duration    string `json:"duration" yaml:"duration"`

	// LabName and LabURL are rendered only when both are set.
	LabName string `json:"lab_name" yaml:"lab_name"`
	LabURL  string `json:"lab_url" yaml:"lab_url"`
}

// WorkExperience is one position with its achievements.
type WorkExperience struct {
	Company      string        `json:"company" yaml:"company"`
	Location     string        `json:"location" yaml:"location"`
	Role         string        `json:"role" yaml:"role"`
	Duration     string        `json:"duration" yaml:"duration"`
	Achievements []Achievement `json:"achievements" yaml:"achievements"`
}

// Achievement is a titled bullet under a WorkExperience entry.
type Achievement struct {
	Title       string `json:"title" yaml:"title"`
	Achievement string `json:"achievement" yaml:"achievement"`
}

// Project is a side project or notable contribution.
type Project struct {
	ProjectName string `json:"project_name" yaml:"project_name"`
	Achievement string `json:"achievement" yaml:"achievement"`
	ProjectURL  string `json:"project_url" yaml:"project_url"`
}

// SkillGroup is a category label with a comma-separated skill list.
type SkillGroup struct {
	SkillCategory string `json:"skill_category" yaml:"skill_category"`
	Skills        string `json:"skills" yaml:"skills"`
}

// Publication is one published paper. DOI may be a bare DOI or a full URL.
type Publication struct {
	Title string `json:"title" yaml:"title"`
	Venue string `json:"venue" yaml:"venue"`
	Year  Year   `json:"year" yaml:"year"`
	DOI   string `json:"doi" yaml:"doi"`
}

// Normalized returns a copy of r whose nil slices are replaced by empty
// slices, so that exports carry [] instead of null.
func (r Resume) Normalized() Resume {
	out := r
	out.Education = nonNil(r.Education)
	out.Publications = nonNil(r.Publications)
	out.Projects = nonNil(r.Projects)
	out.Skills = nonNil(r.Skills)

	out.WorkExperience = make([]WorkExperience, len(r.WorkExperience))
	for i, w := range r.WorkExperience {
		w.Achievements = nonNil(w.Achievements)
		out.WorkExperience[i] = w
	}
	return out
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return append([]T(nil), s...)
}

// Year holds a publication year as text. It decodes from either a string or
// a number so that hand-written records with `year: 2024` are accepted.
type Year string

// String returns the year text.
func (y Year) String() string { return string(y) }

// UnmarshalJSON accepts a JSON string, number, or null.
func (y *Year) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*y = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*y = Year(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("year must be a string or number: %w", err)
	}
	*y = Year(n.String())
	return nil
}

// UnmarshalYAML accepts any scalar; null decodes to an empty year.
func (y *Year) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("year must be a scalar, got YAML kind %d at line %d", node.Kind, node.Line)
	}
	if node.Tag == "!!null" {
		*y = ""
		return nil
	}
	*y = Year(node.Value)
	return nil
}
