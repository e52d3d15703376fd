package ui

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/dvl-uiux/portfolio/content"
	"github.com/dvl-uiux/portfolio/images"
	"github.com/dvl-uiux/portfolio/page"
	"github.com/dvl-uiux/portfolio/project"
)

func projects(s *page.Session) g.Node {
	return section(content.SectionProjects, "",
		entrance(s.Sections.Visible(content.SectionProjects),
			sectionTitle("Featured Projects"),
			P(
				Class("text-center text-gray-500 mb-8"),
				icon("fas fa-grip-vertical mr-2"),
				g.Text("Drag the cards to rearrange them."),
			),
			ProjectsGrid(s.Projects.Records()),
		),
	)
}

// ProjectsGrid renders the cards in list order. The grid is the drop zone
// of a drag.
func ProjectsGrid(records []project.Record) g.Node {
	return Div(
		ID("projects-grid"),
		Data("drop-zone", ""),
		Class("grid md:grid-cols-2 lg:grid-cols-3 gap-8"),
		g.Group(cards(records)),
	)
}

func cards(records []project.Record) []g.Node {
	ids := make([]string, len(records))
	for i, r := range records {
		ids[i] = r.ID
	}
	nodes := make([]g.Node, len(records))
	for i, r := range records {
		nodes[i] = projectCard(r, moveButton(ids, i, -1), moveButton(ids, i, 1))
	}
	return nodes
}

func projectCard(r project.Record, controls ...g.Node) g.Node {
	return Article(
		ID("project-"+r.ID),
		Data("id", r.ID),
		Class("project-card bg-white rounded-2xl shadow-lg overflow-hidden transition select-none"),
		projectImage(r),
		Div(
			Class("p-6"),
			Div(
				Class("flex items-start justify-between mb-2"),
				H3(Class("text-xl font-semibold"), g.Text(r.Title)),
				Div(append([]g.Node{Class("flex")}, controls...)...),
			),
			P(Class("text-gray-600 mb-4"), g.Text(r.Description)),
			Ul(
				Class("flex flex-wrap gap-2 mb-4"),
				g.Map(r.Tags, func(tag string) g.Node {
					return Li(Class("px-3 py-1 bg-gray-100 text-gray-700 rounded-full text-xs"), g.Text(tag))
				}),
			),
			actionButtons(
				g.If(r.LiveURL != "",
					buttonOutline("Live Demo", withHref(r.LiveURL), withIcon("fas fa-external-link-alt"), withExternal()),
				),
				g.If(r.CodeURL != "",
					buttonOutline("View Code", withHref(r.CodeURL), withIcon("fab fa-github"), withExternal()),
				),
			),
		),
	)
}

// projectImage shows a remote image directly and falls back to the
// generated card when it fails to load.
func projectImage(r project.Record) g.Node {
	generated := projectImageURL(r.ID)
	src := generated
	var fallback g.Node
	if images.IsRemote(r) {
		src = r.ImageURL
		fallback = g.Attr("onerror", fmt.Sprintf("this.onerror=null;this.src='%s'", generated))
	}
	return Div(
		Class("h-48 overflow-hidden bg-gray-200"),
		Img(
			Src(src),
			Alt(r.Title),
			Class("w-full h-full object-cover pointer-events-none"),
			g.Attr("loading", "lazy"),
			g.Attr("draggable", "false"),
			fallback,
		),
	)
}

func projectImageURL(id string) string {
	return "/projects/" + id + "/image"
}

// moveButton is the keyboard path to a reorder: it posts the whole order
// with the card swapped one slot earlier or later.
func moveButton(ids []string, index int, delta int) g.Node {
	to := index + delta
	if to < 0 || to >= len(ids) {
		return nil
	}
	proposed := append([]string(nil), ids...)
	proposed[index], proposed[to] = proposed[to], proposed[index]

	label, glyph := "Move later", "fas fa-arrow-down"
	if delta < 0 {
		label, glyph = "Move earlier", "fas fa-arrow-up"
	}
	return Button(
		Type("button"),
		Class("text-gray-400 hover:text-blue-600 px-2"),
		Aria("label", label),
		hx.Post("/projects/order"),
		hx.Vals(fmt.Sprintf(`{"ids": %q}`, strings.Join(proposed, ","))),
		hx.Target("#projects-grid"),
		hx.Swap("outerHTML"),
		icon(glyph),
	)
}
