package catalog

import "github.com/bartal/portfolio/internal/projects/domain"

// Memo caches the last Derive result keyed on slice identity and filter.
// The list is treated as immutable once handed over.
type Memo struct {
	list   []domain.Project
	active Filter
	view   View
	valid  bool
	misses int
}

// View returns Derive(projects, active), recomputing only on a new key.
func (m *Memo) View(projects []domain.Project, active Filter) View {
	if m.valid && m.active == active && sameSlice(m.list, projects) {
		return m.view
	}
	m.list, m.active = projects, active
	m.view = Derive(projects, active)
	m.valid = true
	m.misses++
	return m.view
}

// Misses counts recomputations.
func (m *Memo) Misses() int { return m.misses }

func sameSlice(a, b []domain.Project) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return (a == nil) == (b == nil)
	}
	return &a[0] == &b[0]
}
