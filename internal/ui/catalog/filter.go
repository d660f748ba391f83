// Package catalog derives the visible project grid from the fetched list and
// the active category filter.
package catalog

import (
	"errors"
	"fmt"

	"github.com/bartal/portfolio/internal/projects/domain"
)

var (
	ErrCategoryEmpty   = errors.New("category has no featured projects")
	ErrUnknownCategory = errors.New("unknown category")
)

// Filter is the active category selection. AllProjects matches every
// featured project; the rest match a domain.Category.
type Filter string

const AllProjects Filter = "All Projects"

// Filters lists every selectable filter in display order.
var Filters = []Filter{
	AllProjects,
	Filter(domain.CategoryWeb),
	Filter(domain.CategoryMobile),
	Filter(domain.CategoryComplexSystems),
}

var labels = map[Filter]string{
	AllProjects:                           "All Projects",
	Filter(domain.CategoryWeb):            "Web Design",
	Filter(domain.CategoryMobile):         "Mobile Apps",
	Filter(domain.CategoryComplexSystems): "Complex Systems",
}

// ParseFilter accepts a filter key such as "web" or "All Projects".
func ParseFilter(s string) (Filter, error) {
	f := Filter(s)
	if _, ok := labels[f]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return f, nil
}

// Label is the display name of the filter.
func (f Filter) Label() string {
	if l, ok := labels[f]; ok {
		return l
	}
	return string(f)
}

// Matches reports whether p passes the filter. Featured is checked by Derive.
func (f Filter) Matches(p domain.Project) bool {
	return f == AllProjects || domain.Category(f) == p.Category
}

// Select validates a requested filter against the current counts. Empty
// categories cannot be chosen except AllProjects; on error the current
// filter is returned unchanged.
func Select(current Filter, requested string, counts Counts) (Filter, error) {
	f, err := ParseFilter(requested)
	if err != nil {
		return current, err
	}
	if f != AllProjects && counts.Of(f) == 0 {
		return current, fmt.Errorf("%w: %s", ErrCategoryEmpty, f.Label())
	}
	return f, nil
}

// Enabled reports whether the control for f is selectable.
func Enabled(f Filter, counts Counts) bool {
	return f == AllProjects || counts.Of(f) > 0
}
