package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/dvl-uiux/portfolio/ui"
)

// CustomErrorHandler renders errors as an error page, or as a fragment for
// htmx requests.
func CustomErrorHandler(ctx *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}
	if code >= fiber.StatusInternalServerError {
		log.Printf("[HTTP] %s %s: %v", ctx.Method(), ctx.Path(), err)
	}

	ctx.Status(code)
	ctx.Set(fiber.HeaderContentType, fiber.MIMETextHTML)
	if ctx.Get("HX-Request") == "true" {
		return ui.ValidationError(err.Error()).Render(ctx)
	}
	return ui.ErrorPage(code, err.Error()).Render(ctx)
}
