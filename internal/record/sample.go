// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package record

import "github.com/pdiddy/cv-builder/pkg/types"

// Sample returns a complete, fictional record that exercises every section.
// `cv-builder init` writes it as a starting point.
func Sample() types.Resume {
	return types.Resume{
		Name:     "Ada Example, PhD",
		JobTitle: "Computer Vision & Machine Learning Engineer",
		Summary: "Machine learning engineer with 5 years of experience building generative " +
			"and vision models, from research prototypes to production services. " +
			"Looking for a role shipping applied ML at scale.",
		Location:      "Lille, France",
		Email:         "ada.example@example.com",
		Phone:         "+33-0700000000",
		LinkedIn:      "linkedin.com/in/ada-example",
		GitHub:        "github.com/ada-example",
		Website:       "ada.example.dev",
		GoogleScholar: "scholar.google.com/citations?user=EXAMPLE&hl=en",
		Education: []types.Education{
			{
				Institution: "University of Lille",
				Location:    "Lille, France",
				Degree:      "PhD in Computer Vision",
				Duration:    "2021 - 2024",
				LabName:     "Vision and Learning Lab",
				LabURL:      "https://lab.example.org",
			},
			{
				Institution: "Example Institute of Technology",
				Location:    "Kharagpur, India",
				Degree:      "Master of Technology",
				Duration:    "2019 - 2021",
			},
		},
		Publications: []types.Publication{
			{
				Title: "Hybrid fault diagnosis with minimal labeled data",
				Venue: "Engineering Applications of Artificial Intelligence",
				Year:  "2024",
				DOI:   "10.1000/example.2024.001",
			},
			{
				Title: "Self-supervised fault isolation in PEM electrolyzers",
				Venue: "Neurocomputing",
				Year:  "2024",
				DOI:   "https://doi.org/10.1000/example.2024.002",
			},
		},
		WorkExperience: []types.WorkExperience{
			{
				Company:  "Example Labs",
				Location: "Lille, France",
				Role:     "Research & Development Engineer",
				Duration: "Mar. 2024 – Present",
				Achievements: []types.Achievement{
					{
						Title:       "Diffusion Model",
						Achievement: "Built an end-to-end image generation pipeline on a fine-tuned diffusion model; deployed with Docker.",
					},
					{
						Title:       "Transformer OCR",
						Achievement: "Fine-tuned a transformer OCR model on a custom dataset, improving F1 by 8%.",
					},
				},
			},
			{
				Company:  "University of Lille",
				Location: "Villeneuve d’Ascq, France",
				Role:     "PhD Researcher",
				Duration: "Oct. 2021 – Mar. 2024",
				Achievements: []types.Achievement{
					{
						Title:       "Predictive Maintenance",
						Achievement: "Designed deep models predicting remaining useful life, improving accuracy by 37%.",
					},
				},
			},
		},
		Projects: []types.Project{
			{
				ProjectName: "Speech Recognition",
				Achievement: "Fine-tuned Whisper for a low-resource language, cutting character error rate from 85% to 25%.",
				ProjectURL:  "github.com/ada-example/whisper-finetune",
			},
			{
				ProjectName: "Retrieval-Augmented Generation",
				Achievement: "Built a RAG service with a vector store and an HTTP API.",
			},
		},
		Skills: []types.SkillGroup{
			{SkillCategory: "Technical Skills", Skills: "Python, Go, PyTorch, Hugging Face, Docker, Git, Linux"},
			{SkillCategory: "Languages", Skills: "English (fluent), French (A2)"},
		},
	}
}
