package ui

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/dvl-uiux/portfolio/content"
	"github.com/dvl-uiux/portfolio/page"
)

// ---- Hero ----

func hero(s *page.Session) g.Node {
	owner := s.Content.Owner
	return Section(
		ID(content.SectionHome),
		Data("section", content.SectionHome),
		Class("min-h-screen flex flex-col justify-center text-center relative"),
		H1(
			Class("text-5xl md:text-7xl font-extrabold text-gray-800 mb-6 leading-tight"),
			g.Text(owner.Name),
		),
		P(
			Class("text-2xl md:text-3xl text-gray-600 max-w-3xl mx-auto font-medium"),
			g.Text(owner.Title),
		),
		A(
			Href("#"+content.SectionAbout),
			Class("absolute bottom-8 left-1/2 transform -translate-x-1/2 flex flex-col items-center gap-2 text-gray-600"),
			hx.Post("/nav/scroll/"+content.SectionAbout),
			hx.Target("#nav"),
			hx.Swap("outerHTML"),
			icon("fas fa-arrow-down animate-bounce"),
			Span(Class("text-sm font-medium"), g.Text("Scroll to explore")),
		),
	)
}

// ---- About ----

func about(s *page.Session) g.Node {
	a := s.Content.About
	visible := s.Sections.Visible(content.SectionAbout)

	var paragraphs []g.Node
	for _, p := range a.Paragraphs {
		paragraphs = append(paragraphs, P(Class("text-lg text-gray-600 leading-relaxed mb-4"), g.Text(p)))
	}

	return section(content.SectionAbout, "",
		entrance(visible,
			sectionTitle("About Me"),
			Div(
				Class("grid md:grid-cols-2 gap-12 items-start"),
				Div(
					H3(Class("text-2xl font-semibold mb-6"), g.Text(a.Heading)),
					g.Group(paragraphs),
				),
				Div(
					Class("grid gap-6"),
					g.Map(a.Skills, skillGroup),
				),
			),
		),
	)
}

func skillGroup(sg content.SkillGroup) g.Node {
	return card(
		H4(Class("text-xl font-semibold mb-4 text-blue-600"), g.Text(sg.Title)),
		Ul(
			Class("flex flex-wrap gap-2"),
			g.Map(sg.Items, func(item string) g.Node {
				return Li(Class("px-3 py-1 bg-blue-50 text-blue-700 rounded-full text-sm"), g.Text(item))
			}),
		),
	)
}

// ---- Page ----

// HomePage is the whole portfolio for a freshly mounted session.
func HomePage(s *page.Session) g.Node {
	return Page(
		s.Content.Owner.Name+" | Portfolio",
		s,
		[]g.Node{
			hero(s),
			about(s),
			projects(s),
			contactSection(s),
		},
	)
}
