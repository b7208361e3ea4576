package site

import (
	"strconv"
	"strings"
)

// NoneOpen is the accordion index meaning every item is collapsed.
const NoneOpen = -1

// Accordion is a single-expansion accordion: at most one item is open.
type Accordion struct {
	open int
	size int
}

// NewAccordion returns an accordion of size items with the first one open.
func NewAccordion(size int) Accordion {
	a := Accordion{open: NoneOpen, size: size}
	if size > 0 {
		a.open = 0
	}
	return a
}

// Open returns the expanded index or NoneOpen.
func (a Accordion) Open() int {
	return a.open
}

func (a Accordion) IsOpen(i int) bool {
	return a.open != NoneOpen && a.open == i
}

// Toggle closes item i if it is open, otherwise opens it and closes the previous one.
// Out-of-range indexes are ignored.
func (a *Accordion) Toggle(i int) {
	if i < 0 || i >= a.size {
		return
	}
	if a.open == i {
		a.open = NoneOpen
		return
	}
	a.open = i
}

// Toggled returns the state Toggle(i) would produce without changing a.
func (a Accordion) Toggled(i int) Accordion {
	a.Toggle(i)
	return a
}

// Set restores a state from a query value: "none" collapses all, an index opens it.
// Invalid values leave the accordion unchanged.
func (a *Accordion) Set(raw string) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return
	}
	if raw == "none" {
		a.open = NoneOpen
		return
	}
	i, err := strconv.Atoi(raw)
	if err != nil || i < 0 || i >= a.size {
		return
	}
	a.open = i
}

// QueryValue encodes the state for a ?faq= parameter.
func (a Accordion) QueryValue() string {
	if a.open == NoneOpen {
		return "none"
	}
	return strconv.Itoa(a.open)
}
