package components

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/luxe-studio/luxe-site/internal/site"
)

func Hero() g.Node {
	return Section(
		ID("home"),
		Class("hero"),
		Img(
			Class("hero-bg"),
			Src("https://picsum.photos/seed/interior1/1920/1080"),
			Alt("Interyer"),
			g.Attr("referrerpolicy", "no-referrer"),
		),
		Div(Class("hero-overlay")),
		Div(
			Class("hero-content container"),
			H1(
				g.Text("SIZNING ORZUYINGIZDAGI "),
				Span(Class("text-accent"), g.Text("INTERYER")),
			),
			P(g.Text("Biz zamonaviy va hashamatli interyer yechimlarini yaratamiz. Har bir detal sizning didingizga moslashtiriladi.")),
			A(
				Href("#portfolio"),
				Class("btn btn-accent"),
				g.Text("LOYIHALARNI KO'RISH"),
				Icon("lucide--arrow-right size-5", ""),
			),
		),
	)
}

func About() g.Node {
	return Section(
		ID("about"),
		Class("about container"),
		Div(
			Class("about-media"),
			Img(
				Src("https://picsum.photos/seed/about/800/1000"),
				Alt("Studiya"),
				g.Attr("loading", "lazy"),
				g.Attr("referrerpolicy", "no-referrer"),
			),
		),
		Div(
			Class("about-copy"),
			sectionHeading("Biz haqimizda", "Dizayn orqali hayotni o'zgartiramiz"),
			P(g.Text("Luxe Studio 10 yildan ortiq vaqt davomida O'zbekiston va xorijda premium interyer loyihalarini amalga oshirib kelmoqda.")),
			P(g.Text("Bizning jamoamiz arxitektorlar, dizaynerlar va vizualizatorlardan iborat bo'lib, har bir loyihaga individual yondashadi.")),
			Div(
				Class("about-stats"),
				g.Group(g.Map(site.AboutStats(), func(s site.Stat) g.Node {
					return Div(
						Class("stat"),
						Span(Class("stat-value text-accent"), g.Text(s.Value)),
						Span(Class("stat-label"), g.Text(s.Label)),
					)
				})),
			),
		),
	)
}

func ServicesSection() g.Node {
	return Section(
		ID("services"),
		Class("services"),
		Div(
			Class("container"),
			sectionHeading("Xizmatlar", "Biz nimalar qilamiz"),
			Div(
				Class("services-grid"),
				g.Group(g.Map(site.Services(), func(s site.Service) g.Node {
					return Article(
						Class("service-card"),
						Icon(s.Icon+" size-10 text-accent", ""),
						H3(g.Text(s.Title)),
						P(g.Text(s.Description)),
					)
				})),
			),
		),
	)
}

// WorldMap is the mount point for the client-side amCharts map.
func WorldMap() g.Node {
	theme := site.WorldMapTheme()
	return Section(
		ID("map"),
		Class("world-map"),
		Div(
			Class("container"),
			sectionHeading("Global", "Biz ishlagan mamlakatlar"),
			Div(
				ID("world-map"),
				Class("world-map-canvas"),
				g.Attr("data-world-map", ""),
				g.Attr("data-highlighted", strings.Join(theme.Highlighted, ",")),
				g.Attr("data-excluded", strings.Join(theme.Excluded, ",")),
				g.Attr("data-base-fill", theme.BaseFill),
				g.Attr("data-stroke", theme.Stroke),
				g.Attr("data-accent", theme.Accent),
			),
		),
	)
}

// Team renders the doubled member strip; CSS scrolls it by half its width in a loop.
func Team() g.Node {
	return Section(
		ID("team"),
		Class("team"),
		Div(
			Class("container"),
			sectionHeading("Jamoa", "Bizning mutaxassislar"),
		),
		Div(
			Class("team-carousel"),
			Div(
				Class("team-track"),
				g.Group(g.Map(site.CarouselMembers(), func(m site.TeamMember) g.Node {
					return Figure(
						Class("team-card"),
						Img(Src(m.Image), Alt(m.Name), g.Attr("loading", "lazy"), g.Attr("referrerpolicy", "no-referrer")),
						FigCaption(
							H3(g.Text(m.Name)),
							P(Class("text-accent"), g.Text(m.Role)),
						),
					)
				})),
			),
		),
	)
}

func PageFooter(year int) g.Node {
	return Footer(
		Class("footer"),
		Div(
			Class("container footer-inner"),
			Logo(),
			P(g.Textf("© %d %s. Barcha huquqlar himoyalangan.", year, site.BrandLegalName)),
		),
	)
}
