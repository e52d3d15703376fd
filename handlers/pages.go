package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dvl-uiux/portfolio/ui"
)

// HandleHome mounts a new page with the current content.
func (h *Handlers) HandleHome(c *fiber.Ctx) error {
	s := h.pages.Create(h.content.Current(), h.sender)
	c.Set(fiber.HeaderCacheControl, "no-store")
	return render(c, ui.HomePage(s))
}

// HandleUnmount is sent as a beacon when the page goes away, so the id
// comes in the body rather than a header.
func (h *Handlers) HandleUnmount(c *fiber.Ctx) error {
	id := c.FormValue("id")
	if id == "" {
		id = c.Get(HeaderPageID)
	}
	h.pages.Unmount(id)
	return c.SendStatus(fiber.StatusNoContent)
}

func HandleExpired(c *fiber.Ctx) error {
	return render(c, ui.ExpiredPage())
}
