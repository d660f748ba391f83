// Package overlay models the stacked project detail and image viewer
// layers above the catalog grid.
package overlay

import "github.com/bartal/portfolio/internal/projects/domain"

// State is one of Browsing, DetailOpen or ImageOpen. Exactly one layer is
// topmost at any time.
type State interface {
	isState()
}

// Browsing shows the grid with no overlay.
type Browsing struct{}

// DetailOpen shows the detail panel of a project.
type DetailOpen struct {
	ProjectID string
}

// ImageOpen shows a full-size image stacked above the detail panel.
type ImageOpen struct {
	ProjectID string
	ImageURL  string
}

func (Browsing) isState()   {}
func (DetailOpen) isState() {}
func (ImageOpen) isState()  {}

// Event drives Reduce.
type Event interface {
	isEvent()
}

type (
	// OpenProject is a click on a project card.
	OpenProject struct{ ID string }
	// OpenImage is a click on a detail image thumbnail.
	OpenImage struct{ URL string }
	// CloseImage is the explicit close control of the image viewer.
	CloseImage struct{}
	// Escape is the escape key; it closes the topmost layer.
	Escape struct{}
	// OutsideClick is a click outside the topmost layer.
	OutsideClick struct{}
	// Back is the explicit back control of the detail panel.
	Back struct{}
	// CategoryChanged is any change of the active category.
	CategoryChanged struct{}
)

func (OpenProject) isEvent()     {}
func (OpenImage) isEvent()       {}
func (CloseImage) isEvent()      {}
func (Escape) isEvent()          {}
func (OutsideClick) isEvent()    {}
func (Back) isEvent()            {}
func (CategoryChanged) isEvent() {}

// Reduce returns the next state. projects is the full fetched list, used to
// check that an opened id exists. Unhandled (state, event) pairs are no-ops;
// a nil state is treated as Browsing.
func Reduce(s State, ev Event, projects []domain.Project) State {
	if s == nil {
		s = Browsing{}
	}
	if _, ok := ev.(CategoryChanged); ok {
		return Browsing{}
	}

	switch st := s.(type) {
	case Browsing:
		if e, ok := ev.(OpenProject); ok {
			if _, found := domain.Find(projects, e.ID); found {
				return DetailOpen{ProjectID: e.ID}
			}
		}
	case DetailOpen:
		switch e := ev.(type) {
		case OpenImage:
			if e.URL != "" {
				return ImageOpen{ProjectID: st.ProjectID, ImageURL: e.URL}
			}
		case Escape, OutsideClick, Back:
			return Browsing{}
		}
	case ImageOpen:
		switch ev.(type) {
		case Escape, OutsideClick, CloseImage:
			return DetailOpen{ProjectID: st.ProjectID}
		}
	}
	return s
}

// Reconcile drops an overlay whose project is no longer in the list.
func Reconcile(s State, projects []domain.Project) State {
	id, ok := ProjectID(s)
	if !ok {
		return Browsing{}
	}
	if _, found := domain.Find(projects, id); !found {
		return Browsing{}
	}
	return s
}

// OpenDeepLink opens the detail for id, or stays Browsing when id is unknown.
func OpenDeepLink(projects []domain.Project, id string) State {
	return Reduce(Browsing{}, OpenProject{ID: id}, projects)
}

// ProjectID returns the project behind an open overlay.
func ProjectID(s State) (string, bool) {
	switch st := s.(type) {
	case DetailOpen:
		return st.ProjectID, true
	case ImageOpen:
		return st.ProjectID, true
	}
	return "", false
}

// Top names the topmost layer: "grid", "detail" or "image".
func Top(s State) string {
	switch s.(type) {
	case DetailOpen:
		return "detail"
	case ImageOpen:
		return "image"
	}
	return "grid"
}
