package domain

import "fmt"

// Project is a single portfolio entry as served by /api/projects.
// Entries are read-only once loaded; nothing in the catalog mutates them.
type Project struct {
	ID           string      `json:"id" yaml:"id"`
	Title        string      `json:"title" yaml:"title"`
	Description  string      `json:"description" yaml:"description"`
	Category     Category    `json:"category" yaml:"category"`
	Featured     bool        `json:"featured" yaml:"featured"`
	ImageURL     string      `json:"imageUrl" yaml:"imageUrl"`
	DetailImages []string    `json:"detailImages" yaml:"detailImages"`
	Tools        []string    `json:"tools" yaml:"tools"`
	Client       string      `json:"client" yaml:"client"`
	Year         string      `json:"year" yaml:"year"`
	Duration     string      `json:"duration" yaml:"duration"`
	Role         string      `json:"role" yaml:"role"`
	Overview     string      `json:"overview" yaml:"overview"`
	Process      string      `json:"process" yaml:"process"`
	Impact       string      `json:"impact" yaml:"impact"`
	HeaderColor  HeaderColor `json:"headerColor,omitempty" yaml:"headerColor,omitempty"`
}

// Find returns the project with the given id. A dangling id yields ok=false.
func Find(projects []Project, id string) (Project, bool) {
	for _, p := range projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}

// Position returns the detail footer text, e.g. "Project 3 of 7".
func (p Project) Position(total int) string {
	return fmt.Sprintf("Project %s of %d", p.ID, total)
}
