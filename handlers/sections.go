package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/dvl-uiux/portfolio/ui"
)

type revealResponse struct {
	Section string `json:"section"`
	Visible bool   `json:"visible"`
	Class   string `json:"class"`
}

// HandleSectionVisible records an intersection observation. Once a section
// is revealed every later observation answers with its entrance class so the
// client can stop observing; before that the answer is 204.
func HandleSectionVisible(c *fiber.Ctx) error {
	s := getPage(c)
	section := c.Params("section")
	if !s.Sections.Watched(section) {
		return fiber.NewError(fiber.StatusNotFound, "Unknown section")
	}
	ratio, err := strconv.ParseFloat(c.FormValue("ratio"), 64)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid intersection ratio")
	}

	s.Sections.Observe(section, ratio)
	if !s.Sections.Visible(section) {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(revealResponse{
		Section: section,
		Visible: true,
		Class:   ui.EntranceClass(true),
	})
}
