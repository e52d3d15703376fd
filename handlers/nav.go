package handlers

import (
	"encoding/json"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/dvl-uiux/portfolio/metrics"
	"github.com/dvl-uiux/portfolio/nav"
	"github.com/dvl-uiux/portfolio/ui"
)

// ScrollEvent is the client event that performs a resolved navigation.
const ScrollEvent = "portfolio:scroll"

// HandleNavScroll resolves a section. A known section closes the mobile
// menu and triggers the scroll on the client; an unknown one changes nothing.
func HandleNavScroll(c *fiber.Ctx) error {
	s := getPage(c)
	scroll, ok := s.Nav.ScrollTo(c.Params("section"))
	metrics.NavScrolls.WithLabelValues(strconv.FormatBool(ok)).Inc()
	if !ok {
		return c.SendStatus(fiber.StatusNoContent)
	}

	trigger, err := json.Marshal(map[string]nav.Scroll{ScrollEvent: scroll})
	if err != nil {
		return err
	}
	c.Set("HX-Trigger", string(trigger))
	return render(c, ui.Navigation(s))
}

// HandleNavMenu toggles the mobile overlay menu.
func HandleNavMenu(c *fiber.Ctx) error {
	s := getPage(c)
	s.Nav.ToggleMenu()
	return render(c, ui.Navigation(s))
}

// HandleNavScrolled reports the window offset. The bar is only re-rendered
// when its style changes.
func HandleNavScrolled(c *fiber.Ctx) error {
	y, err := strconv.ParseFloat(c.FormValue("y"), 64)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid scroll offset")
	}
	s := getPage(c)
	if !s.Nav.ReportScroll(y) {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return render(c, ui.Navigation(s))
}
