package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTracker_IndependentPerImage(t *testing.T) {
	tr := NewTracker()

	tr.MarkFailed("/broken.png")
	tr.MarkLoaded("/ok.png")

	broken := tr.Resolve("/broken.png", "Acme logo", "Acme")
	assert.False(t, broken.ShowImage())
	assert.Equal(t, "Acme", broken.Placeholder)

	ok := tr.Resolve("/ok.png", "Globex logo", "")
	assert.True(t, ok.ShowImage())
	assert.False(t, ok.ShowSkeleton())
	assert.Equal(t, "Globex logo", ok.Placeholder)

	pending := tr.Resolve("/new.png", "x", "")
	assert.True(t, pending.ShowSkeleton())
}

func TestTracker_EmptyURLFails(t *testing.T) {
	img := NewTracker().Resolve("", "Initech logo", "Initech")
	assert.Equal(t, Failed, img.Status)
	assert.False(t, img.ShowImage())
}

func TestTracker_Reset(t *testing.T) {
	tr := NewTracker()
	tr.MarkFailed("/a.png")
	tr.Reset("/a.png")
	assert.Equal(t, Pending, tr.Status("/a.png"))
}
