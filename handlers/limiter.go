package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/dvl-uiux/portfolio/config"
)

// NewRateLimiter is the global rate limiter middleware
func NewRateLimiter(cfg config.ServerConfig) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        cfg.RateLimitMax,
		Expiration: cfg.RateLimitExp,
	})
}

// SubmitRateLimiter is a strict limiter for contact submissions (per IP)
func SubmitRateLimiter(cfg config.ServerConfig) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        cfg.SubmitRateLimitMax,
		Expiration: cfg.RateLimitExp,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).
				SendString("Too many messages. Please try again later.")
		},
	})
}
