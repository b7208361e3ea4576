package components

import (
	"net/url"
	"strings"
	"time"

	"github.com/luxe-studio/luxe-site/internal/site"
)

// PageState is everything the landing page needs to render one request.
type PageState struct {
	Navbar site.Navbar
	Filter site.PortfolioFilter
	FAQ    site.Accordion
	Form   site.ContactForm
	Year   int
}

// DefaultPageState is the state of a fresh visit.
func DefaultPageState() PageState {
	return PageState{
		Filter: site.NewPortfolioFilter(),
		FAQ:    site.NewAccordion(len(site.FAQItems())),
		Form:   site.NewContactForm(),
		Year:   time.Now().Year(),
	}
}

// FromQuery restores the section state carried in the query string.
func FromQuery(q url.Values) PageState {
	state := DefaultPageState()
	if c, ok := site.ParseCategory(q.Get("category")); ok {
		state.Filter.Select(c)
	}
	state.FAQ.Set(q.Get("faq"))
	state.Navbar.MenuOpen = strings.EqualFold(q.Get("menu"), "open")
	return state
}

// query encodes non-default state so links keep the other sections as they are.
func (s PageState) query() url.Values {
	q := url.Values{}
	if s.Filter.Selected != site.CategoryAll && s.Filter.Selected != "" {
		q.Set("category", string(s.Filter.Selected))
	}
	if s.FAQ.Open() != 0 {
		q.Set("faq", s.FAQ.QueryValue())
	}
	if s.Navbar.MenuOpen {
		q.Set("menu", "open")
	}
	return q
}

func (s PageState) href(anchor string) string {
	out := "/"
	if q := s.query(); len(q) > 0 {
		out += "?" + q.Encode()
	}
	if anchor != "" {
		out += "#" + anchor
	}
	return out
}
