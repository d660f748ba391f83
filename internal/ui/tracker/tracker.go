// Package tracker decides which page section is current and whether the
// fixed navigation bar is shown.
package tracker

// Section is a named, vertically stacked region of the page.
type Section string

const (
	Landing   Section = "landing"
	About     Section = "about"
	Companies Section = "companies"
	Projects  Section = "projects"
	Contact   Section = "contact"
)

// Sections is the declared top-to-bottom order used by Current.
var Sections = []Section{Landing, About, Companies, Projects, Contact}

// probeBias pulls the probe up so the active section flips slightly before
// a section reaches the viewport center.
const probeBias = 150

// Bounds is the vertical extent of a mounted section element.
type Bounds struct {
	Top    float64
	Height float64
}

// Contains reports whether y lies in [Top, Top+Height).
func (b Bounds) Contains(y float64) bool {
	return y >= b.Top && y < b.Top+b.Height
}

// Layout resolves section bounds. ok is false when the element is not mounted.
type Layout interface {
	Bounds(s Section) (Bounds, bool)
}

// StaticLayout is a Layout backed by a map.
type StaticLayout map[Section]Bounds

func (l StaticLayout) Bounds(s Section) (Bounds, bool) {
	b, ok := l[s]
	return b, ok
}

// Probe returns the point tested against section bounds.
func Probe(scrollOffset, viewportHeight float64) float64 {
	return scrollOffset + viewportHeight/4 - probeBias
}

// Current returns the first section in declared order whose extent contains
// the probe point, or Landing when none does. Unmounted sections are skipped.
func Current(layout Layout, scrollOffset, viewportHeight float64) Section {
	if layout == nil {
		return Landing
	}
	probe := Probe(scrollOffset, viewportHeight)
	for _, s := range Sections {
		b, ok := layout.Bounds(s)
		if !ok {
			continue
		}
		if b.Contains(probe) {
			return s
		}
	}
	return Landing
}
