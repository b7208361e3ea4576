package site

import "strings"

// Category tags a portfolio project. CategoryAll is only valid as a filter.
type Category string

const (
	CategoryAll        Category = "all"
	CategoryInterior   Category = "interior"
	CategoryHouse      Category = "house"
	CategoryCommercial Category = "commercial"
)

// Categories lists the filter buttons in display order.
var Categories = []Category{CategoryAll, CategoryInterior, CategoryHouse, CategoryCommercial}

// Label returns the button caption for the category.
func (c Category) Label() string {
	switch c {
	case CategoryInterior:
		return "Ichki dizayn"
	case CategoryHouse:
		return "Uy loyihalari"
	case CategoryCommercial:
		return "Noturar"
	default:
		return "Barchasi"
	}
}

// ParseCategory maps a query value onto a Category. Unknown values yield CategoryAll and false.
func ParseCategory(raw string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range Categories {
		if c == known {
			return c, true
		}
	}
	return CategoryAll, false
}

// PortfolioFilter holds the selected category of the gallery.
type PortfolioFilter struct {
	Selected Category
}

// NewPortfolioFilter starts with every project visible.
func NewPortfolioFilter() PortfolioFilter {
	return PortfolioFilter{Selected: CategoryAll}
}

// Select changes the active category; unknown categories reset to CategoryAll.
func (f *PortfolioFilter) Select(c Category) {
	if _, ok := ParseCategory(string(c)); !ok {
		c = CategoryAll
	}
	f.Selected = c
}

// Apply returns the projects visible under the current selection, preserving order.
func (f PortfolioFilter) Apply(projects []Project) []Project {
	if f.Selected == CategoryAll || f.Selected == "" {
		return append([]Project(nil), projects...)
	}
	visible := make([]Project, 0, len(projects))
	for _, p := range projects {
		if p.Category == f.Selected {
			visible = append(visible, p)
		}
	}
	return visible
}
