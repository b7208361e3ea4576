package site

// ScrollThreshold is the vertical offset in pixels past which the navbar turns solid.
const ScrollThreshold = 50

// Navbar tracks the chrome state of the top navigation.
type Navbar struct {
	Scrolled bool
	MenuOpen bool
}

// OnScroll updates Scrolled from the current vertical offset.
func (n *Navbar) OnScroll(offsetY float64) {
	n.Scrolled = offsetY > ScrollThreshold
}

// ToggleMenu flips the mobile menu.
func (n *Navbar) ToggleMenu() {
	n.MenuOpen = !n.MenuOpen
}

// FollowLink closes the mobile menu after a link is activated.
func (n *Navbar) FollowLink() {
	n.MenuOpen = false
}
