package components

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/luxe-studio/luxe-site/internal/site"
)

func Logo() g.Node {
	return Span(
		Class("logo text-2xl font-extrabold tracking-tighter"),
		g.Text(site.BrandPrimary),
		Span(Class("text-accent"), g.Text(" "+site.BrandSecondary)),
	)
}

func convertIconName(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) == 0 {
		return ""
	}
	return strings.Replace(parts[0], "--", ":", 1)
}

// Icon renders an iconify glyph; an empty iconClass renders nothing.
func Icon(iconClass, ariaLabel string) g.Node {
	parts := strings.Fields(iconClass)
	if len(parts) == 0 {
		return nil
	}
	classes := "iconify inline-block"
	if len(parts) > 1 {
		classes = fmt.Sprintf("iconify inline-block %s", strings.Join(parts[1:], " "))
	}

	if ariaLabel != "" {
		return Span(
			Class(classes),
			g.Attr("data-icon", convertIconName(iconClass)),
			g.Attr("role", "img"),
			g.Attr("aria-label", ariaLabel),
		)
	}

	return Span(
		Class(classes),
		g.Attr("data-icon", convertIconName(iconClass)),
		g.Attr("aria-hidden", "true"),
	)
}

func sectionHeading(eyebrow, title string) g.Node {
	return Div(
		Class("section-heading"),
		Span(Class("eyebrow"), g.Text(eyebrow)),
		H2(g.Text(title)),
	)
}
