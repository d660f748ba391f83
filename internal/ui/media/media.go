// Package media tracks image load status per URL so a broken image falls
// back to a text placeholder without affecting other images.
package media

import "sync"

type Status int

const (
	Pending Status = iota
	Loaded
	Failed
)

// Tracker records load results per image URL.
type Tracker struct {
	mu     sync.RWMutex
	status map[string]Status
}

func NewTracker() *Tracker {
	return &Tracker{status: make(map[string]Status)}
}

func (t *Tracker) MarkLoaded(url string) { t.set(url, Loaded) }

func (t *Tracker) MarkFailed(url string) { t.set(url, Failed) }

func (t *Tracker) set(url string, s Status) {
	t.mu.Lock()
	t.status[url] = s
	t.mu.Unlock()
}

// Status returns Pending for URLs never reported.
func (t *Tracker) Status(url string) Status {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.status[url]
}

// Reset forgets url so it is loaded again.
func (t *Tracker) Reset(url string) {
	t.mu.Lock()
	delete(t.status, url)
	t.mu.Unlock()
}

// Image is the render decision for one image.
type Image struct {
	URL         string
	Alt         string
	Placeholder string
	Status      Status
}

// ShowImage reports whether the img element is rendered.
func (i Image) ShowImage() bool { return i.Status != Failed }

// ShowSkeleton reports whether a loading skeleton is shown over the image.
func (i Image) ShowSkeleton() bool { return i.Status == Pending }

// Resolve builds the decision for url. placeholder is shown on failure and
// defaults to alt.
func (t *Tracker) Resolve(url, alt, placeholder string) Image {
	if placeholder == "" {
		placeholder = alt
	}
	st := Failed
	if url != "" {
		st = t.Status(url)
	}
	return Image{URL: url, Alt: alt, Placeholder: placeholder, Status: st}
}
