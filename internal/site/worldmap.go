package site

// MapTheme configures the decorative world map.
type MapTheme struct {
	Highlighted []string
	Excluded    []string
	BaseFill    string
	Stroke      string
	Accent      string
}

// WorldMapTheme marks the countries the studio has delivered projects in.
func WorldMapTheme() MapTheme {
	return MapTheme{
		Highlighted: []string{"UZ", "US", "AE", "GB"},
		Excluded:    []string{"AQ"},
		BaseFill:    "#222222",
		Stroke:      "#333333",
		Accent:      "#2424fa",
	}
}

func (m MapTheme) IsHighlighted(code string) bool {
	for _, c := range m.Highlighted {
		if c == code {
			return true
		}
	}
	return false
}
