// Package page composes the navigation, catalog and overlay reducers into a
// single state for the whole single-page site.
package page

import (
	"context"

	"github.com/bartal/portfolio/internal/logging"
	"github.com/bartal/portfolio/internal/projects/domain"
	"github.com/bartal/portfolio/internal/ui/catalog"
	"github.com/bartal/portfolio/internal/ui/overlay"
	"github.com/bartal/portfolio/internal/ui/tracker"
)

// State is the complete client-side page state.
type State struct {
	Nav      tracker.NavState
	Width    int
	Projects []domain.Project
	Filter   catalog.Filter
	Overlay  overlay.State
	// LoadErr is the last project fetch error, kept for display only.
	LoadErr error
}

// Initial is the state before mount.
func Initial() State {
	return State{
		Nav:      tracker.InitialNav(),
		Projects: []domain.Project{},
		Filter:   catalog.AllProjects,
		Overlay:  overlay.Browsing{},
	}
}

// View derives the catalog for the current state.
func (s State) View() catalog.View {
	return catalog.Derive(s.Projects, s.Filter)
}

// Breakpoint classifies the last known width.
func (s State) Breakpoint() catalog.Breakpoint {
	return catalog.Classify(s.Width)
}

// Event is a discrete page event. Overlay and navigation events are wrapped.
type Event interface {
	pageEvent()
}

type (
	// Mounted is the first render with the initial viewport width.
	Mounted struct{ Width int }
	Resized struct{ Width int }
	// Scrolled wraps a tracker scroll tick.
	Scrolled tracker.Scroll
	// Nav wraps ToggleMenu or NavigateTo.
	Nav struct{ Event tracker.NavEvent }
	// CategorySelected is a click on a filter control.
	CategorySelected struct{ Key string }
	// ProjectsLoaded delivers the result of the projects fetch.
	ProjectsLoaded struct {
		Projects []domain.Project
		Err      error
	}
	// Overlay wraps an overlay event.
	Overlay struct{ Event overlay.Event }
)

func (Mounted) pageEvent()          {}
func (Resized) pageEvent()          {}
func (Scrolled) pageEvent()         {}
func (Nav) pageEvent()              {}
func (CategorySelected) pageEvent() {}
func (ProjectsLoaded) pageEvent()   {}
func (Overlay) pageEvent()          {}

// Reduce returns the state after ev.
func Reduce(s State, ev Event) State {
	switch e := ev.(type) {
	case Mounted:
		s.Width = e.Width
		s = setFilter(s, catalog.ResetForWidth(e.Width, s.Filter))
	case Resized:
		s.Width = e.Width
		s = setFilter(s, catalog.ResetForWidth(e.Width, s.Filter))
	case Scrolled:
		s.Nav = tracker.ReduceNav(s.Nav, tracker.Scroll(e))
	case Nav:
		s.Nav = tracker.ReduceNav(s.Nav, e.Event)
	case CategorySelected:
		f, err := catalog.Select(s.Filter, e.Key, s.View().Counts)
		if err != nil {
			logging.NewLogger(context.Background()).LogDebugf("select_category", "rejected %q: %v", e.Key, err)
			return s
		}
		s = setFilter(s, f)
	case ProjectsLoaded:
		s.LoadErr = e.Err
		if e.Err != nil {
			logging.NewLogger(context.Background()).LogError("load_projects", e.Err)
			s.Projects = []domain.Project{}
		} else if e.Projects == nil {
			s.Projects = []domain.Project{}
		} else {
			s.Projects = e.Projects
		}
		s.Overlay = overlay.Reconcile(s.Overlay, s.Projects)
	case Overlay:
		s.Overlay = overlay.Reduce(s.Overlay, e.Event, s.Projects)
	}
	return s
}

// setFilter applies a filter and returns to the grid when it changed.
func setFilter(s State, f catalog.Filter) State {
	if f != s.Filter {
		s.Filter = f
		s.Overlay = overlay.Reduce(s.Overlay, overlay.CategoryChanged{}, s.Projects)
	}
	return s
}
