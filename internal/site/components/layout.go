package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const (
	amChartsBase     = "https://cdn.amcharts.com/lib/5"
	intlTelInputBase = "https://cdn.jsdelivr.net/npm/intl-tel-input@24.5.0/build"
)

type PageConfig struct {
	Title       string
	Description string
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = "Luxe Studio | Interyer dizayn"
	}

	if config.Description == "" {
		config.Description = "Luxe Studio: uy loyihalari, ichki dizayn va noturar binolar uchun premium interyer yechimlari."
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("uz"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),

				Link(Rel("preconnect"), Href("https://fonts.googleapis.com")),
				Link(Rel("stylesheet"), Href("https://fonts.googleapis.com/css2?family=Inter:wght@300;400;600;800&display=swap")),
				Link(Rel("stylesheet"), Href(intlTelInputBase+"/css/intlTelInput.css")),
				Link(Rel("stylesheet"), Href("/static/styles.css")),

				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
			),
			Body(
				Class("bg-ink text-white"),
				g.Group(content),

				Script(Src(amChartsBase+"/index.js")),
				Script(Src(amChartsBase+"/map.js")),
				Script(Src(amChartsBase+"/geodata/worldLow.js")),
				Script(Src(amChartsBase+"/themes/Animated.js")),
				Script(Src(intlTelInputBase+"/js/intlTelInput.min.js")),

				Script(Type("module"), Src("/static/js/navbar.js")),
				Script(Type("module"), Src("/static/js/portfolio.js")),
				Script(Type("module"), Src("/static/js/faq.js")),
				Script(Type("module"), Src("/static/js/world-map.js")),
				Script(Type("module"), Src("/static/js/contact-form.js")),
			),
		),
	})
}

// LandingPage composes every section of the site in page order.
func LandingPage(state PageState) g.Node {
	return Layout(
		PageConfig{},
		Navbar(state),
		Main(
			Hero(),
			About(),
			ServicesSection(),
			Portfolio(state),
			WorldMap(),
			Team(),
			FAQSection(state),
			ContactSection(state),
		),
		PageFooter(state.Year),
	)
}
