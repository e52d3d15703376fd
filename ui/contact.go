package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/dvl-uiux/portfolio/contact"
	"github.com/dvl-uiux/portfolio/content"
	"github.com/dvl-uiux/portfolio/page"
)

const inputClass = "w-full p-4 border border-gray-300 rounded-lg bg-white bg-opacity-90 focus:outline-none focus:border-blue-500 focus:ring-2 focus:ring-blue-100 transition"

func contactSection(s *page.Session) g.Node {
	c := s.Content.Contact
	return section(content.SectionContact, "bg-white bg-opacity-80 rounded-3xl my-8 px-8",
		entrance(s.Sections.Visible(content.SectionContact),
			sectionTitle(c.Heading),
			Div(
				Class("grid md:grid-cols-2 gap-16"),
				ContactForm(s.Form.State()),
				Div(
					Class("flex flex-col gap-8"),
					g.Map(c.Cards, func(ic content.Card) g.Node {
						return infoCard(ic, c.Socials)
					}),
				),
			),
		),
	)
}

// ContactForm renders the form for a snapshot of its state. Field edits are
// sent as they happen; submit re-sends all three before sending.
func ContactForm(st contact.State) g.Node {
	sending := st.Status == contact.StatusSending

	label := []g.Node{
		Span(Class("send-label"), g.Text("Send Message")),
		Span(Class("sending-label"), g.Text("Sending...")),
	}
	if sending {
		label = []g.Node{g.Text("Sending...")}
	}

	return Form(
		ID("contact-form"),
		Class("flex flex-col gap-6"),
		Data("status", st.Status.String()),
		hx.Post("/contact/submit"),
		hx.Target("this"),
		hx.Swap("outerHTML"),
		g.Attr("hx-disabled-elt", "find button[type='submit']"),
		contactInput(contact.FieldName, "text", "Your Name", st.Name),
		contactInput(contact.FieldEmail, "email", "Your Email", st.Email),
		Textarea(
			Name(contact.FieldMessage),
			Placeholder("Your Message"),
			Required(),
			Class(inputClass+" resize-y"),
			Rows("6"),
			fieldSync(contact.FieldMessage),
			g.Text(st.Message.Message),
		),
		buttonPrimary("",
			withType("submit"),
			withClass("self-start"),
			withAttributes(label...),
			withDisabled(sending),
		),
		// Shown by htmx while the submit request is open.
		indicator("contact-indicator", "Delivering your message..."),
		statusMessage(st),
	)
}

func contactInput(name, typ, placeholder, value string) g.Node {
	return Input(
		Type(typ),
		Name(name),
		Placeholder(placeholder),
		Value(value),
		Required(),
		Class(inputClass),
		fieldSync(name),
	)
}

// fieldSync mirrors an edit into the form state on the server.
func fieldSync(field string) g.Node {
	return g.Group([]g.Node{
		hx.Post("/contact/field"),
		hx.Trigger("input changed delay:300ms"),
		hx.Vals(fmt.Sprintf(`{"field": %q}`, field)),
		hx.Swap("none"),
	})
}

func statusMessage(st contact.State) g.Node {
	switch st.Status {
	case contact.StatusSucceeded:
		return SuccessMessage(st.StatusMessage)
	case contact.StatusFailed:
		return ValidationError(st.StatusMessage)
	default:
		return nil
	}
}

func infoCard(ic content.Card, socials []content.Social) g.Node {
	return card(
		H3(
			Class("text-2xl font-semibold mb-4 flex items-center gap-2"),
			g.If(ic.Icon != "", icon(ic.Icon+" text-blue-500")),
			g.Text(ic.Title),
		),
		P(Class("text-gray-600 leading-relaxed"), g.Text(ic.Text)),
		g.If(ic.Link != "",
			A(Href(ic.Link), Class("inline-block mt-4 text-blue-600 hover:underline"), g.Text(ic.LinkText)),
		),
		g.If(ic.Socials && len(socials) > 0, socialLinks(socials)),
	)
}

func socialLinks(socials []content.Social) g.Node {
	return Div(
		Class("flex gap-6 mt-8"),
		g.Map(socials, func(s content.Social) g.Node {
			return A(
				Href(s.URL),
				Target("_blank"),
				Rel("noopener noreferrer"),
				Aria("label", s.Label),
				Class("flex items-center justify-center w-12 h-12 bg-white rounded-full text-2xl text-gray-800 shadow hover:text-blue-600 transition"),
				icon(s.Icon),
			)
		}),
	)
}
