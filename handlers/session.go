package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dvl-uiux/portfolio/page"
	"github.com/dvl-uiux/portfolio/ui"
)

// HeaderPageID carries the id of the page a request belongs to.
const HeaderPageID = "X-Page-ID"

func getPage(c *fiber.Ctx) *page.Session {
	s, _ := c.Locals("page").(*page.Session)
	return s
}

func setPage(c *fiber.Ctx, s *page.Session) {
	c.Locals("page", s)
}

// PageMiddleware resolves the page session of the request and keeps it
// alive. Pages that have been unmounted or expired get 410 Gone.
func (h *Handlers) PageMiddleware(c *fiber.Ctx) error {
	s, ok := h.pages.Get(c.Get(HeaderPageID))
	if !ok {
		return renderStatus(c, fiber.StatusGone, ui.ExpiredPage())
	}
	h.pages.Touch(s)
	setPage(c, s)
	return c.Next()
}
