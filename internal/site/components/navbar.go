package components

import (
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/luxe-studio/luxe-site/internal/site"
)

// Navbar renders the fixed top navigation. Scroll styling is applied client-side
// through data-scrolled; the mobile menu also works without JS via ?menu=open.
func Navbar(state PageState) g.Node {
	toggled := state
	toggled.Navbar.ToggleMenu()
	closed := state
	closed.Navbar.FollowLink()

	return Nav(
		ID("navbar"),
		Class("navbar"),
		g.Attr("data-navbar", ""),
		g.Attr("data-scroll-threshold", strconv.Itoa(site.ScrollThreshold)),
		g.Attr("data-scrolled", strconv.FormatBool(state.Navbar.Scrolled)),
		g.Attr("data-menu-open", strconv.FormatBool(state.Navbar.MenuOpen)),

		Div(
			Class("navbar-inner container"),
			A(Href("#home"), Logo()),

			Ul(
				Class("navbar-links"),
				g.Group(g.Map(site.NavLinks(), func(link site.NavLink) g.Node {
					return Li(A(Href(link.Href), g.Text(link.Name)))
				})),
			),

			A(
				Href(toggled.href("")),
				Class("navbar-toggle"),
				g.Attr("data-menu-toggle", ""),
				g.Attr("aria-expanded", strconv.FormatBool(state.Navbar.MenuOpen)),
				g.Attr("aria-controls", "mobile-menu"),
				g.If(state.Navbar.MenuOpen, Icon("lucide--x size-6", "Menyuni yopish")),
				g.If(!state.Navbar.MenuOpen, Icon("lucide--menu size-6", "Menyuni ochish")),
			),
		),

		Ul(
			ID("mobile-menu"),
			Class("mobile-menu"),
			g.If(!state.Navbar.MenuOpen, g.Attr("hidden")),
			g.Group(g.Map(site.NavLinks(), func(link site.NavLink) g.Node {
				return Li(A(
					Href(closed.href(strings.TrimPrefix(link.Href, "#"))),
					g.Attr("data-menu-link", ""),
					g.Text(link.Name),
				))
			})),
		),
	)
}
