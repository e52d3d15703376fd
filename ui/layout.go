package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	"maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/dvl-uiux/portfolio/config"
	"github.com/dvl-uiux/portfolio/page"
)

// ---- Page Layout ----

const pageStyles = `
html { scroll-behavior: smooth; }
.portfolio-bg { background: linear-gradient(135deg, #f5f7fa 0%, #c3cfe2 100%); }
.section-title::after { content: ''; display: block; width: 100px; height: 3px; margin: 10px auto 0; background: linear-gradient(90deg, #007bff, #00b894); }
.project-card.dragging { transform: scale(1.05); box-shadow: 0 20px 40px rgba(0,0,0,0.2); z-index: 10; cursor: grabbing; }
.project-card { cursor: grab; touch-action: none; }
.sending-label { display: none; }
.htmx-request .sending-label { display: inline; }
.htmx-request .send-label { display: none; }
`

func head() []g.Node {
	return []g.Node{
		Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
		Link(
			Rel("stylesheet"),
			Href(config.TailwindCSSURL),
		),
		Link(
			Rel("stylesheet"),
			Href(config.FontAwesomeURL),
		),
		StyleEl(g.Raw(pageStyles)),
		Script(
			Type("text/javascript"),
			Src(config.HTMXURL),
			Defer(),
		),
	}
}

// Page is the full document of one mounted page. Every htmx request it
// makes carries the page id.
func Page(title string, s *page.Session, content []g.Node) g.Node {
	return components.HTML5(components.HTML5Props{
		Title:    title,
		Language: "en",
		Head: append(head(),
			Script(
				Type("text/javascript"),
				Src(config.PageScriptPath),
				Defer(),
			),
		),
		Body: []g.Node{
			Class("portfolio-bg min-h-screen text-gray-800"),
			Data("page-id", s.ID),
			hx.Headers(fmt.Sprintf(`{"X-Page-ID": %q}`, s.ID)),
			Navigation(s),
			Main(
				Class("max-w-6xl mx-auto px-8 relative"),
				g.Group(content),
			),
			footer(s.Content.Owner.Name),
		},
	})
}

func errorLayout(title string, content ...g.Node) g.Node {
	return components.HTML5(components.HTML5Props{
		Title:    title,
		Language: "en",
		Head:     head(),
		Body: []g.Node{
			Class("portfolio-bg min-h-screen text-gray-800"),
			Main(g.Group(content)),
		},
	})
}

func footer(owner string) g.Node {
	return Footer(
		Class("py-8 text-center text-sm text-gray-600"),
		g.Textf("© %s", owner),
	)
}
