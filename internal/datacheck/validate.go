// Package datacheck validates the static data documents and keeps the
// result of the last scheduled check.
package datacheck

import (
	"fmt"
	"strings"

	companydomain "github.com/bartal/portfolio/internal/companies/domain"
	projectdomain "github.com/bartal/portfolio/internal/projects/domain"
)

// Issue is one problem found in a document. Index is the array position.
type Issue struct {
	Document string `json:"document"`
	Index    int    `json:"index"`
	ID       string `json:"id,omitempty"`
	Problem  string `json:"problem"`
}

func (i Issue) String() string {
	if i.ID != "" {
		return fmt.Sprintf("%s[%d] id=%s: %s", i.Document, i.Index, i.ID, i.Problem)
	}
	return fmt.Sprintf("%s[%d]: %s", i.Document, i.Index, i.Problem)
}

// ValidateProjects checks ids are present and unique, required text fields
// are set, and enums hold known values.
func ValidateProjects(projects []projectdomain.Project) []Issue {
	var issues []Issue
	seen := make(map[string]int, len(projects))
	add := func(i int, id, format string, args ...any) {
		issues = append(issues, Issue{Document: "projects", Index: i, ID: id, Problem: fmt.Sprintf(format, args...)})
	}

	for i, p := range projects {
		switch {
		case strings.TrimSpace(p.ID) == "":
			add(i, "", "missing id")
		default:
			if first, dup := seen[p.ID]; dup {
				add(i, p.ID, "duplicate id (first at index %d)", first)
			} else {
				seen[p.ID] = i
			}
		}
		if strings.TrimSpace(p.Title) == "" {
			add(i, p.ID, "missing title")
		}
		if !p.Category.Valid() {
			add(i, p.ID, "unknown category %q", p.Category)
		}
		if !p.HeaderColor.Valid() {
			add(i, p.ID, "unknown headerColor %q", p.HeaderColor)
		}
		if strings.TrimSpace(p.ImageURL) == "" {
			add(i, p.ID, "missing imageUrl")
		}
	}
	return issues
}

// ValidateCompanies checks ids are present and unique and name and logoUrl
// are set.
func ValidateCompanies(companies []companydomain.Company) []Issue {
	var issues []Issue
	seen := make(map[string]int, len(companies))
	add := func(i int, id, problem string) {
		issues = append(issues, Issue{Document: "companies", Index: i, ID: id, Problem: problem})
	}

	for i, c := range companies {
		if strings.TrimSpace(c.ID) == "" {
			add(i, "", "missing id")
		} else if first, dup := seen[c.ID]; dup {
			add(i, c.ID, fmt.Sprintf("duplicate id (first at index %d)", first))
		} else {
			seen[c.ID] = i
		}
		if strings.TrimSpace(c.Name) == "" {
			add(i, c.ID, "missing name")
		}
		if strings.TrimSpace(c.LogoURL) == "" {
			add(i, c.ID, "missing logoUrl")
		}
	}
	return issues
}
