package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/dvl-uiux/portfolio/db"
	"github.com/dvl-uiux/portfolio/inbox"
)

// HandleHealth returns the health status of the application
func (h *Handlers) HandleHealth(c *fiber.Ctx) error {
	health := fiber.Map{
		"status":   "ok",
		"sessions": h.pages.Stats()["current_items"],
	}

	// The inbox is optional; without it messages are simulated
	if !db.Ready() {
		health["database"] = "disabled"
	} else if err := db.Get().Ping(); err != nil {
		health["status"] = "unhealthy"
		health["database"] = "down"
		c.Status(fiber.StatusServiceUnavailable)
	} else {
		health["database"] = "up"
		if n, err := inbox.Count(c.UserContext()); err != nil {
			log.Printf("[HEALTH] Failed to count inbox: %v", err)
		} else {
			health["messages"] = n
		}
	}

	return c.JSON(health)
}
