package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "github.com/hafizsameer11/optyshop-admin-sub000/internal/log"
	"github.com/hafizsameer11/optyshop-admin-sub000/internal/state"
)

// RequireSession guards every console route behind the sid cookie.
func RequireSession(console *state.Console) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if !console.SessionValid(sid) {
			applog.Security(c, "authz.no_session", nil)
			if c.Accepts("html", "json") == "html" {
				return c.Redirect("/login")
			}
			return toast(c, fiber.StatusUnauthorized, "unauthorized", "Please log in.")
		}
		return c.Next()
	}
}
