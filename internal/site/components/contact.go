package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/luxe-studio/luxe-site/internal/site"
)

func ContactSection(state PageState) g.Node {
	info := site.Contact()

	return Section(
		ID("contact"),
		Class("contact"),
		Div(
			Class("container contact-inner"),
			Div(
				Class("contact-info"),
				sectionHeading("Kontakt", "Biz bilan bog'laning"),
				P(g.Text("Loyihangiz haqida gaplashamiz. Formani to'ldiring va biz tez orada siz bilan bog'lanamiz.")),
				Ul(
					contactLine("lucide--phone", "tel:"+phoneDigits(info.Phone), info.Phone),
					contactLine("lucide--mail", "mailto:"+info.Email, info.Email),
					contactLine("lucide--map-pin", "", info.Address),
				),
			),
			ContactForm(state.Form),
		),
	)
}

func contactLine(icon, link, text string) g.Node {
	if link == "" {
		return Li(Icon(icon+" size-5 text-accent", ""), Span(g.Text(text)))
	}
	return Li(Icon(icon+" size-5 text-accent", ""), A(Href(link), g.Text(text)))
}

func phoneDigits(phone string) string {
	out := make([]rune, 0, len(phone))
	for _, r := range phone {
		if r == '+' || (r >= '0' && r <= '9') {
			out = append(out, r)
		}
	}
	return string(out)
}

// ContactForm renders both the form and the success panel; the inactive one is hidden.
// Without JS the form posts to /contact and the server renders the next state.
func ContactForm(form site.ContactForm) g.Node {
	success := form.Status == site.FormSuccess
	disabled := form.Disabled()

	return Div(
		Class("contact-panel"),
		g.Attr("data-contact", ""),
		g.Attr("data-status", string(form.Status)),

		Div(
			Class("contact-success"),
			g.Attr("data-contact-success", ""),
			g.If(!success, g.Attr("hidden")),
			Icon("lucide--check-circle size-12 text-accent", ""),
			H3(g.Text(site.FormSuccessTitle)),
			P(g.Text(site.FormSuccessText)),
			A(
				Href("/#contact"),
				Class("btn btn-outline"),
				g.Attr("data-contact-reset", ""),
				g.Text(site.FormResetLabel),
			),
		),

		Form(
			Method("post"),
			Action("/contact#contact"),
			Class("contact-form"),
			g.Attr("data-contact-form", ""),
			g.If(success, g.Attr("hidden")),

			Label(g.Attr("for", "contact-name"), g.Text("Ismingiz")),
			Input(
				ID("contact-name"),
				Type("text"),
				Name("name"),
				Required(),
				g.Attr("autocomplete", "name"),
				Value(form.Values.Name),
				g.If(disabled, Disabled()),
			),

			Label(g.Attr("for", "contact-phone"), g.Text("Telefon raqamingiz")),
			Input(
				ID("contact-phone"),
				Type("tel"),
				Name("phone"),
				Required(),
				g.Attr("autocomplete", "tel"),
				g.Attr("data-phone-input", ""),
				g.Attr("data-initial-country", site.DefaultPhoneRegion),
				Value(form.Values.Phone),
				g.If(disabled, Disabled()),
			),

			Label(g.Attr("for", "contact-message"), g.Text("Xabaringiz")),
			Textarea(
				ID("contact-message"),
				Name("message"),
				Required(),
				Rows("5"),
				g.If(disabled, Disabled()),
				g.Text(form.Values.Message),
			),

			P(
				Class("contact-error"),
				g.Attr("data-contact-error", ""),
				g.Attr("role", "alert"),
				g.If(form.Status != site.FormError, g.Attr("hidden")),
				g.Text(site.FormErrorText),
			),

			Button(
				Type("submit"),
				Class("btn btn-accent"),
				g.Attr("data-contact-submit", ""),
				g.If(disabled, Disabled()),
				g.Text(form.ButtonLabel()),
			),
		),
	)
}
