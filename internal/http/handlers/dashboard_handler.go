package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/hafizsameer11/optyshop-admin-sub000/internal/api"
	"github.com/hafizsameer11/optyshop-admin-sub000/internal/domain"
	"github.com/hafizsameer11/optyshop-admin-sub000/internal/state"
)

type DashboardHandler struct {
	Client  *api.Client
	Console *state.Console
}

// Home renders the dashboard: backend reachability, token expiry, and
// best-effort unread counts per inbox. Inbox failures degrade to a dash
// rather than breaking the page.
func (h *DashboardHandler) Home(c *fiber.Ctx) error {
	data := fiber.Map{
		"Backend":   h.Client.BaseURL(),
		"Reachable": false,
		"DemoMode":  false,
	}

	profile, err := h.Client.Me(c.Context())
	switch {
	case err == nil:
		data["Reachable"] = true
		data["Profile"] = profile
	case api.IsUnavailable(err):
		data["DemoMode"] = true
	default:
		data["AuthError"] = true
	}

	if tok := h.Console.Token(); tok != "" {
		if exp, ok := api.TokenExpiry(tok); ok {
			data["TokenExpiry"] = exp.Format(time.RFC1123)
			data["TokenExpired"] = time.Now().After(exp)
		}
	}

	counts := map[string]any{}
	for _, kind := range domain.RequestKinds() {
		items, _, cerr := h.Client.ListRequests(c.Context(), kind, api.ListQuery{Limit: 50})
		if cerr != nil {
			counts[string(kind)] = "-"
			continue
		}
		unread := 0
		for _, r := range items {
			if !r.Read.Bool() {
				unread++
			}
		}
		counts[string(kind)] = unread
	}
	data["Inboxes"] = counts

	return c.Render("dashboard", data)
}
