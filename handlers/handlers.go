package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dvl-uiux/portfolio/config"
	"github.com/dvl-uiux/portfolio/contact"
	"github.com/dvl-uiux/portfolio/content"
	"github.com/dvl-uiux/portfolio/images"
	"github.com/dvl-uiux/portfolio/page"
)

// Handlers serves the portfolio page and the events of its sessions.
type Handlers struct {
	pages       *page.Store
	content     *content.Source
	sender      contact.Sender
	images      *images.Renderer
	sendTimeout time.Duration
}

func New(pages *page.Store, src *content.Source, sender contact.Sender, renderer *images.Renderer, sendTimeout time.Duration) *Handlers {
	return &Handlers{
		pages:       pages,
		content:     src,
		sender:      sender,
		images:      renderer,
		sendTimeout: sendTimeout,
	}
}

// AppConfig is the fiber configuration the routes are served with. Request
// values end up stored in page sessions, so they must not alias fasthttp's
// reused buffers.
func AppConfig(cfg config.ServerConfig) fiber.Config {
	return fiber.Config{
		ErrorHandler: CustomErrorHandler,
		BodyLimit:    config.ServerUploadLimit,
		ReadTimeout:  cfg.ReadWriteTimeout,
		WriteTimeout: cfg.ReadWriteTimeout,
		Immutable:    true,
	}
}

// Routes registers every route on app. submitLimiter, when given, guards
// contact submissions.
func (h *Handlers) Routes(app fiber.Router, submitLimiter fiber.Handler) {
	app.Get("/", h.HandleHome)
	app.Get("/health", h.HandleHealth)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Post("/page/unmount", h.HandleUnmount)
	app.Get("/page/expired", HandleExpired)

	app.Get("/projects/:id/image", h.HandleProjectImage)

	// Everything below belongs to a mounted page.
	mounted := func(path string, handlers ...fiber.Handler) {
		app.Post(path, append([]fiber.Handler{h.PageMiddleware}, handlers...)...)
	}

	mounted("/projects/drag/start", HandleDragStart)
	mounted("/projects/drag/move", HandleDragMove)
	mounted("/projects/drag/release", HandleDragRelease)
	mounted("/projects/order", HandleProjectOrder)

	mounted("/sections/:section/visible", HandleSectionVisible)

	mounted("/contact/field", HandleContactField)
	submit := []fiber.Handler{h.HandleContactSubmit}
	if submitLimiter != nil {
		submit = append([]fiber.Handler{submitLimiter}, submit...)
	}
	mounted("/contact/submit", submit...)

	mounted("/nav/scroll/:section", HandleNavScroll)
	mounted("/nav/menu", HandleNavMenu)
	mounted("/nav/scrolled", HandleNavScrolled)
}
