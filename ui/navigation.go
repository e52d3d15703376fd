package ui

import (
	"strings"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/dvl-uiux/portfolio/page"
)

func sectionLabel(section string) string {
	if section == "" {
		return ""
	}
	return strings.ToUpper(section[:1]) + section[1:]
}

func navClass(scrolled bool) string {
	base := "fixed top-0 inset-x-0 z-50 transition-all duration-300 "
	if scrolled {
		return base + "bg-white shadow-md py-3"
	}
	return base + "bg-transparent py-6"
}

// navLink asks the server to resolve a section. The swap re-renders the bar
// and the scroll itself arrives as a portfolio:scroll event.
func navLink(section string, class string) g.Node {
	return A(
		Href("#"+section),
		Class(class),
		hx.Post("/nav/scroll/"+section),
		hx.Target("#nav"),
		hx.Swap("outerHTML"),
		g.Text(sectionLabel(section)),
	)
}

// Navigation renders the navigation bar. It reports window scrolling so the
// server decides between the transparent and the opaque style.
func Navigation(s *page.Session) g.Node {
	menuOpen := s.Nav.MenuOpen()
	sections := s.Nav.Sections()

	var desktop, mobile []g.Node
	for _, sec := range sections {
		desktop = append(desktop, navLink(sec, "text-gray-700 hover:text-blue-600 font-medium transition"))
		mobile = append(mobile, navLink(sec, "block py-3 text-2xl text-gray-800 hover:text-blue-600"))
	}

	menuIcon := "fas fa-bars"
	if menuOpen {
		menuIcon = "fas fa-times"
	}

	return Nav(
		ID("nav"),
		Class(navClass(s.Nav.Scrolled())),
		Data("scrolled", boolAttr(s.Nav.Scrolled())),
		hx.Post("/nav/scrolled"),
		hx.Trigger("scroll from:window throttle:250ms"),
		hx.Vals(`js:{y: window.scrollY}`),
		hx.Target("this"),
		hx.Swap("outerHTML"),
		Div(
			Class("max-w-6xl mx-auto px-8 flex items-center justify-between"),
			A(
				Href("#home"),
				Class("text-xl font-bold text-gray-900"),
				hx.Post("/nav/scroll/home"),
				hx.Target("#nav"),
				hx.Swap("outerHTML"),
				g.Text(s.Content.Owner.ShortName),
			),
			Div(
				Class("hidden md:flex items-center space-x-8"),
				g.Group(desktop),
			),
			Button(
				Type("button"),
				Class("md:hidden text-2xl text-gray-800"),
				Aria("label", "Toggle menu"),
				Aria("expanded", boolAttr(menuOpen)),
				hx.Post("/nav/menu"),
				hx.Target("#nav"),
				hx.Swap("outerHTML"),
				icon(menuIcon),
			),
		),
		g.If(menuOpen,
			Div(
				ID("mobile-menu"),
				Class("md:hidden fixed inset-0 top-16 bg-white px-8 py-6"),
				g.Group(mobile),
			),
		),
	)
}

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
