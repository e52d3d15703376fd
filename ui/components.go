package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ---- Entrance ----

const (
	entranceBase    = "transform transition duration-700 ease-out"
	entrancePending = "translate-y-3"
	entranceDone    = "translate-y-0"
)

// EntranceClass is the animation class of a section's content. It is a
// pure function of the reveal flag; content renders either way.
func EntranceClass(visible bool) string {
	if visible {
		return entranceBase + " " + entranceDone
	}
	return entranceBase + " " + entrancePending
}

// entrance marks a block that switches class when its section is revealed.
func entrance(visible bool, children ...g.Node) g.Node {
	return Div(
		Class(EntranceClass(visible)),
		Data("entrance", ""),
		g.Group(children),
	)
}

// ---- Layout Components ----

func section(id string, class string, children ...g.Node) g.Node {
	return Section(
		ID(id),
		Data("section", id),
		Class("py-20 "+class),
		g.Group(children),
	)
}

func sectionTitle(title string) g.Node {
	return H2(
		Class("section-title text-4xl font-bold text-center mb-12"),
		g.Text(title),
	)
}

func card(children ...g.Node) g.Node {
	return Div(
		Class("bg-white rounded-2xl shadow-lg p-8 hover:shadow-xl transition"),
		g.Group(children),
	)
}

func icon(class string) g.Node {
	return I(Class(class), Aria("hidden", "true"))
}

// ---- Message Components ----

func ValidationError(message string) g.Node {
	return Div(
		Class("bg-red-100 border border-red-500 text-red-700 px-4 py-3 rounded-lg"),
		Role("alert"),
		g.Text(message),
	)
}

func SuccessMessage(message string) g.Node {
	return Div(
		Class("bg-green-100 border border-green-500 text-green-700 px-4 py-3 rounded-lg"),
		Role("status"),
		g.Text(message),
	)
}

func indicator(id, text string) g.Node {
	return Div(
		ID(id),
		Class("htmx-indicator flex items-center gap-2 text-blue-600"),
		Div(
			Class("w-4 h-4 border-2 border-blue-600 border-t-transparent rounded-full animate-spin"),
		),
		g.Text(text),
	)
}

// ExpiredPage is served when a page's session has gone away.
func ExpiredPage() g.Node {
	return Div(
		ID("expired"),
		Class("fixed bottom-4 right-4 max-w-sm"),
		ValidationError("This page has expired."),
		A(Href("/"), Class("block mt-2 text-blue-600 hover:underline"), g.Text("Reload")),
	)
}

func ErrorPage(code int, message string) g.Node {
	return errorLayout(
		fmt.Sprintf("Error %d", code),
		Div(
			Class("max-w-xl mx-auto py-32 text-center"),
			H1(Class("text-5xl font-bold mb-4"), g.Text(fmt.Sprintf("%d", code))),
			P(Class("text-gray-600 mb-8"), g.Text(message)),
			buttonPrimary("Back to portfolio", withHref("/")),
		),
	)
}
