package catalog

const (
	// NarrowWidth is the width below which the layout is narrow.
	NarrowWidth = 768
	// DesktopWidth is the width from which the layout is desktop.
	DesktopWidth = 1024
)

type Breakpoint int

const (
	Mobile Breakpoint = iota
	Tablet
	Desktop
)

func (b Breakpoint) String() string {
	switch b {
	case Mobile:
		return "mobile"
	case Tablet:
		return "tablet"
	default:
		return "desktop"
	}
}

// Classify maps a viewport width to a breakpoint.
func Classify(width int) Breakpoint {
	switch {
	case width < NarrowWidth:
		return Mobile
	case width < DesktopWidth:
		return Tablet
	default:
		return Desktop
	}
}

// ResetForWidth forces AllProjects on narrow layouts. It runs at mount and
// on every resize.
func ResetForWidth(width int, current Filter) Filter {
	if width < NarrowWidth {
		return AllProjects
	}
	return current
}
