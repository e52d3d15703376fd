package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ---- Button Components ----

type buttonOption func(*buttonConfig)

type buttonConfig struct {
	href       string
	icon       string
	external   bool
	disabled   bool
	buttonType string
	class      string
	attributes []g.Node
}

// withHref makes the button a link
func withHref(href string) buttonOption {
	return func(c *buttonConfig) {
		c.href = href
	}
}

// withIcon prefixes the label with a Font Awesome icon
func withIcon(icon string) buttonOption {
	return func(c *buttonConfig) {
		c.icon = icon
	}
}

// withExternal opens the link in a new tab
func withExternal() buttonOption {
	return func(c *buttonConfig) {
		c.external = true
	}
}

func withDisabled(disabled bool) buttonOption {
	return func(c *buttonConfig) {
		c.disabled = disabled
	}
}

func withType(buttonType string) buttonOption {
	return func(c *buttonConfig) {
		c.buttonType = buttonType
	}
}

func withClass(class string) buttonOption {
	return func(c *buttonConfig) {
		c.class = class
	}
}

func withAttributes(attrs ...g.Node) buttonOption {
	return func(c *buttonConfig) {
		c.attributes = append(c.attributes, attrs...)
	}
}

func buttonStyled(text, baseClass string, options ...buttonOption) g.Node {
	config := &buttonConfig{}
	for _, option := range options {
		option(config)
	}

	class := baseClass
	if config.class != "" {
		class += " " + config.class
	}
	if config.disabled {
		class += " opacity-60 cursor-not-allowed"
	}

	attrs := []g.Node{Class(class)}
	if config.buttonType != "" {
		attrs = append(attrs, Type(config.buttonType))
	}
	if config.disabled && config.href == "" {
		attrs = append(attrs, Disabled())
	}
	attrs = append(attrs, config.attributes...)
	if config.icon != "" {
		attrs = append(attrs, I(Class(config.icon+" mr-2")))
	}
	attrs = append(attrs, g.Text(text))

	if config.href != "" {
		if config.disabled {
			return Span(Class(class), g.Text(text))
		}
		attrs = append([]g.Node{Href(config.href)}, attrs...)
		if config.external {
			attrs = append(attrs, Target("_blank"), Rel("noopener noreferrer"))
		}
		return A(attrs...)
	}

	return Button(attrs...)
}

// buttonPrimary is the gradient call to action
func buttonPrimary(text string, options ...buttonOption) g.Node {
	return buttonStyled(text, "px-6 py-3 rounded-lg inline-flex items-center justify-center font-semibold text-white bg-gradient-to-r from-blue-500 to-green-500 hover:opacity-90 transition", options...)
}

// buttonOutline is the bordered secondary action
func buttonOutline(text string, options ...buttonOption) g.Node {
	return buttonStyled(text, "px-4 py-2 rounded-lg inline-flex items-center border-2 border-blue-500 text-blue-500 hover:bg-blue-500 hover:text-white transition", options...)
}

func actionButtons(buttons ...g.Node) g.Node {
	return Div(
		Class("mt-6 flex flex-wrap gap-4"),
		g.Group(buttons),
	)
}
