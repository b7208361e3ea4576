package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/luxe-studio/luxe-site/internal/site"
)

func FAQSection(state PageState) g.Node {
	items := site.FAQItems()
	nodes := make([]g.Node, 0, len(items))
	for i, item := range items {
		nodes = append(nodes, faqItem(state, i, item))
	}

	return Section(
		ID("faq"),
		Class("faq"),
		Div(
			Class("container faq-inner"),
			sectionHeading("FAQ", "Ko'p beriladigan savollar"),
			Div(
				Class("faq-list"),
				g.Attr("data-faq", ""),
				g.Attr("data-open", strconv.Itoa(state.FAQ.Open())),
				g.Group(nodes),
			),
		),
	)
}

func faqItem(state PageState, i int, item site.FAQItem) g.Node {
	open := state.FAQ.IsOpen(i)
	next := state
	next.FAQ = state.FAQ.Toggled(i)
	answerID := "faq-answer-" + strconv.Itoa(i)
	class := "faq-item"
	if open {
		class += " open"
	}

	return Div(
		Class(class),
		A(
			Href(next.href("faq")),
			Class("faq-question"),
			g.Attr("data-faq-toggle", strconv.Itoa(i)),
			g.Attr("aria-expanded", strconv.FormatBool(open)),
			g.Attr("aria-controls", answerID),
			Span(g.Text(item.Question)),
			Icon("lucide--plus size-5 faq-icon", ""),
		),
		Div(
			ID(answerID),
			Class("faq-answer"),
			g.If(!open, g.Attr("hidden")),
			P(g.Text(item.Answer)),
		),
	)
}
