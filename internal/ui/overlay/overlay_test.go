package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bartal/portfolio/internal/projects/domain"
)

var projects = []domain.Project{
	{ID: "p1", DetailImages: []string{"/a.png", "/b.png"}},
	{ID: "p2"},
}

func TestEscapeClosesTopmostOnly(t *testing.T) {
	var s State = Browsing{}

	s = Reduce(s, OpenProject{ID: "p1"}, projects)
	assert.Equal(t, DetailOpen{ProjectID: "p1"}, s)

	s = Reduce(s, OpenImage{URL: "/b.png"}, projects)
	assert.Equal(t, ImageOpen{ProjectID: "p1", ImageURL: "/b.png"}, s)
	assert.Equal(t, "image", Top(s))

	s = Reduce(s, Escape{}, projects)
	assert.Equal(t, DetailOpen{ProjectID: "p1"}, s)

	s = Reduce(s, Escape{}, projects)
	assert.Equal(t, Browsing{}, s)
}

func TestCloseTransitions(t *testing.T) {
	image := ImageOpen{ProjectID: "p1", ImageURL: "/a.png"}
	detail := DetailOpen{ProjectID: "p1"}

	assert.Equal(t, detail, Reduce(image, OutsideClick{}, projects))
	assert.Equal(t, detail, Reduce(image, CloseImage{}, projects))
	assert.Equal(t, image, Reduce(image, Back{}, projects), "back never skips the image layer")

	assert.Equal(t, Browsing{}, Reduce(detail, OutsideClick{}, projects))
	assert.Equal(t, Browsing{}, Reduce(detail, Back{}, projects))
	assert.Equal(t, detail, Reduce(detail, CloseImage{}, projects))
}

func TestCategoryChangeReturnsToGrid(t *testing.T) {
	for _, s := range []State{
		Browsing{},
		DetailOpen{ProjectID: "p1"},
		ImageOpen{ProjectID: "p1", ImageURL: "/a.png"},
	} {
		assert.Equal(t, Browsing{}, Reduce(s, CategoryChanged{}, projects))
	}
}

func TestOpenProject_UnknownIDIsNoop(t *testing.T) {
	assert.NotPanics(t, func() {
		assert.Equal(t, Browsing{}, Reduce(Browsing{}, OpenProject{ID: "ghost"}, projects))
		assert.Equal(t, Browsing{}, Reduce(nil, OpenProject{ID: "p1"}, nil))
	})
}

func TestNoopPairs(t *testing.T) {
	detail := DetailOpen{ProjectID: "p1"}
	assert.Equal(t, detail, Reduce(detail, OpenProject{ID: "p2"}, projects))
	assert.Equal(t, detail, Reduce(detail, OpenImage{}, projects))
	assert.Equal(t, Browsing{}, Reduce(Browsing{}, OpenImage{URL: "/a.png"}, projects))
	assert.Equal(t, Browsing{}, Reduce(Browsing{}, Escape{}, projects))
}

func TestOpenDeepLink(t *testing.T) {
	assert.Equal(t, DetailOpen{ProjectID: "p2"}, OpenDeepLink(projects, "p2"))
	assert.NotPanics(t, func() {
		assert.Equal(t, Browsing{}, OpenDeepLink(projects, "nope"))
		assert.Equal(t, Browsing{}, OpenDeepLink(nil, ""))
	})
}

func TestReconcile(t *testing.T) {
	image := ImageOpen{ProjectID: "p1", ImageURL: "/a.png"}
	assert.Equal(t, image, Reconcile(image, projects))
	assert.Equal(t, Browsing{}, Reconcile(image, projects[1:]))
	assert.Equal(t, Browsing{}, Reconcile(Browsing{}, projects))
}
