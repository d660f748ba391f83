package tracker

const (
	// topThreshold keeps the bar visible near the top of the page.
	topThreshold = 100
	// hideRatio is the share of the landing height after which scrolling
	// down hides the bar.
	hideRatio = 0.8
)

// NavState is the navigation chrome state.
type NavState struct {
	Section          Section
	Visible          bool
	LastScrollOffset float64
	MenuOpen         bool
}

// InitialNav is the state at mount.
func InitialNav() NavState {
	return NavState{Section: Landing, Visible: true}
}

// NavEvent is one of Scroll, ToggleMenu or NavigateTo.
type NavEvent interface {
	navEvent()
}

// Scroll carries a scroll tick together with the layout at that moment.
type Scroll struct {
	Offset         float64
	ViewportHeight float64
	Layout         Layout
}

// ToggleMenu opens or closes the mobile menu.
type ToggleMenu struct{}

// NavigateTo is a click on a navigation link.
type NavigateTo struct {
	Section Section
}

func (Scroll) navEvent()     {}
func (ToggleMenu) navEvent() {}
func (NavigateTo) navEvent() {}

// Visible applies the visibility rule to a single scroll tick.
func Visible(scrollOffset, lastScrollOffset float64, current Section, landingHeight float64) bool {
	dy := scrollOffset - lastScrollOffset
	switch {
	case scrollOffset < topThreshold:
		return true
	case current != Landing:
		return true
	case dy > 0 && scrollOffset > hideRatio*landingHeight:
		return false
	default:
		return true
	}
}

// LandingHeight returns the landing section height, falling back to the
// viewport height when the element is missing.
func LandingHeight(layout Layout, viewportHeight float64) float64 {
	if layout != nil {
		if b, ok := layout.Bounds(Landing); ok {
			return b.Height
		}
	}
	return viewportHeight
}

// ReduceNav returns the state after ev. It never mutates s.
func ReduceNav(s NavState, ev NavEvent) NavState {
	switch e := ev.(type) {
	case Scroll:
		s.Section = Current(e.Layout, e.Offset, e.ViewportHeight)
		s.Visible = Visible(e.Offset, s.LastScrollOffset, s.Section, LandingHeight(e.Layout, e.ViewportHeight))
		if !s.Visible {
			s.MenuOpen = false
		}
		s.LastScrollOffset = e.Offset
	case ToggleMenu:
		s.MenuOpen = !s.MenuOpen
	case NavigateTo:
		s.MenuOpen = false
	}
	return s
}

// Link is an entry of the navigation bar.
type Link struct {
	Label   string
	Section Section
}

// Links is the fixed set of navigation links.
var Links = []Link{
	{Label: "Home", Section: Landing},
	{Label: "About", Section: About},
	{Label: "Projects", Section: Projects},
	{Label: "Contact", Section: Contact},
}

// Active reports whether link l should be highlighted.
func (s NavState) Active(l Link) bool {
	return s.Section == l.Section
}

// ShowCV reports whether the CV download control is shown.
func (s NavState) ShowCV() bool {
	return s.Section != Landing
}
