package handlers

import (
	"github.com/gofiber/fiber/v2"
	g "maragu.dev/gomponents"
)

// render writes component as the HTML response.
func render(c *fiber.Ctx, component g.Node) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTML)
	return component.Render(c.Response().BodyWriter())
}

func renderStatus(c *fiber.Ctx, code int, component g.Node) error {
	c.Status(code)
	return render(c, component)
}
