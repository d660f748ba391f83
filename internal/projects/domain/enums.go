package domain

type Category string

const (
	CategoryWeb            Category = "web"
	CategoryMobile         Category = "mobile"
	CategoryComplexSystems Category = "complex-systems"
)

// Categories lists every project category in display order.
var Categories = []Category{CategoryWeb, CategoryMobile, CategoryComplexSystems}

func (c Category) Valid() bool {
	switch c {
	case CategoryWeb, CategoryMobile, CategoryComplexSystems:
		return true
	}
	return false
}

type HeaderColor string

const (
	ColorEmerald HeaderColor = "emerald"
	ColorOrange  HeaderColor = "orange"
	ColorGreen   HeaderColor = "green"
	ColorPurple  HeaderColor = "purple"
	ColorRed     HeaderColor = "red"
	ColorIndigo  HeaderColor = "indigo"
	ColorPink    HeaderColor = "pink"
	ColorYellow  HeaderColor = "yellow"
	ColorBlue    HeaderColor = "blue"
)

var headerClasses = map[HeaderColor]string{
	ColorEmerald: "bg-emerald-600",
	ColorOrange:  "bg-orange-600",
	ColorGreen:   "bg-green-600",
	ColorPurple:  "bg-purple-600",
	ColorRed:     "bg-red-600",
	ColorIndigo:  "bg-indigo-600",
	ColorPink:    "bg-pink-600",
	ColorYellow:  "bg-yellow-600",
	ColorBlue:    "bg-blue-600",
}

// Valid reports whether c is one of the named colors. The empty color is valid (optional field).
func (c HeaderColor) Valid() bool {
	if c == "" {
		return true
	}
	_, ok := headerClasses[c]
	return ok
}

// Class resolves the detail header background class; unknown colors fall back to blue.
func (c HeaderColor) Class() string {
	if cls, ok := headerClasses[c]; ok {
		return cls
	}
	return headerClasses[ColorBlue]
}
