package catalog

import (
	"fmt"

	"github.com/bartal/portfolio/internal/projects/domain"
)

// Count is the number of featured projects behind one filter control.
type Count struct {
	Filter Filter
	N      int
}

// Counts holds one entry per filter, in Filters order.
type Counts []Count

// Of returns the count for f, or 0 when f is unknown.
func (c Counts) Of(f Filter) int {
	for _, e := range c {
		if e.Filter == f {
			return e.N
		}
	}
	return 0
}

// View is the derived catalog for one (projects, filter) pair.
type View struct {
	Active   Filter
	Featured []domain.Project
	Counts   Counts
	Visible  []domain.Project
}

// Derive is a pure function of its inputs. Input order is preserved and the
// input slice is never modified.
func Derive(projects []domain.Project, active Filter) View {
	featured := make([]domain.Project, 0, len(projects))
	for _, p := range projects {
		if p.Featured {
			featured = append(featured, p)
		}
	}

	counts := make(Counts, 0, len(Filters))
	for _, f := range Filters {
		n := 0
		for _, p := range featured {
			if f.Matches(p) {
				n++
			}
		}
		counts = append(counts, Count{Filter: f, N: n})
	}

	visible := featured
	if active != AllProjects {
		visible = make([]domain.Project, 0, len(featured))
		for _, p := range featured {
			if active.Matches(p) {
				visible = append(visible, p)
			}
		}
	}

	return View{Active: active, Featured: featured, Counts: counts, Visible: visible}
}

// Empty reports the no-results state. It is not an error.
func (v View) Empty() bool {
	return len(v.Visible) == 0
}

// EmptyMessage is shown in the no-results state.
func (v View) EmptyMessage() string {
	return fmt.Sprintf("No featured projects found in %q category.", v.Active.Label())
}

// Summary describes the active filter, e.g. "Web Design (2 projects)".
func (v View) Summary() string {
	n := len(v.Visible)
	noun := "projects"
	if n == 1 {
		noun = "project"
	}
	return fmt.Sprintf("%s (%d %s)", v.Active.Label(), n, noun)
}

// CanClear reports whether the "Clear Filter" control is shown.
func (v View) CanClear() bool {
	return v.Active != AllProjects
}
