package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/luxe-studio/luxe-site/internal/site"
)

// Portfolio renders every project and hides the ones outside the selected
// category, so the client script can refilter without a round trip.
func Portfolio(state PageState) g.Node {
	visible := map[int]bool{}
	for _, p := range state.Filter.Apply(site.Projects()) {
		visible[p.ID] = true
	}

	return Section(
		ID("portfolio"),
		Class("portfolio"),
		Div(
			Class("container"),
			sectionHeading("Portfolio", "Bizning loyihalar"),

			Div(
				Class("portfolio-filters"),
				g.Attr("role", "tablist"),
				g.Group(g.Map(site.Categories, func(c site.Category) g.Node {
					next := state
					next.Filter.Select(c)
					active := state.Filter.Selected == c
					class := "filter-btn"
					if active {
						class += " active"
					}
					return A(
						Href(next.href("portfolio")),
						Class(class),
						g.Attr("role", "tab"),
						g.Attr("aria-selected", strconv.FormatBool(active)),
						g.Attr("data-category", string(c)),
						g.Text(c.Label()),
					)
				})),
			),

			Div(
				Class("portfolio-grid"),
				g.Attr("data-portfolio-grid", ""),
				g.Group(g.Map(site.Projects(), func(p site.Project) g.Node {
					return Figure(
						Class("project-card"),
						g.Attr("data-project-id", strconv.Itoa(p.ID)),
						g.Attr("data-category", string(p.Category)),
						g.If(!visible[p.ID], g.Attr("hidden")),
						Img(Src(p.Image), Alt(p.Title), g.Attr("loading", "lazy"), g.Attr("referrerpolicy", "no-referrer")),
						FigCaption(
							Span(Class("project-category text-accent"), g.Text(p.Category.Label())),
							H3(g.Text(p.Title)),
						),
					)
				})),
			),
		),
	)
}
