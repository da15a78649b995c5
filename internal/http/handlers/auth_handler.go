package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/hafizsameer11/optyshop-admin-sub000/internal/api"
	"github.com/hafizsameer11/optyshop-admin-sub000/internal/config"
	"github.com/hafizsameer11/optyshop-admin-sub000/internal/domain"
	applog "github.com/hafizsameer11/optyshop-admin-sub000/internal/log"
	"github.com/hafizsameer11/optyshop-admin-sub000/internal/state"
	"github.com/hafizsameer11/optyshop-admin-sub000/internal/validate"
)

const sessionKey = "console.session" // Locals key for the active profile

type AuthHandler struct {
	Client  *api.Client
	Console *state.Console
	Cfg     config.Config
}

func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return c.Render("login", fiber.Map{})
}

// Login authenticates against the backend and opens a console session. When
// the backend is unreachable and the demo fallback is enabled, a valid
// console password opens a demo pseudo-session instead, so the console stays
// usable through an outage.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	email, ok := validate.Email(c.FormValue("email"))
	if !ok {
		return toast(c, fiber.StatusBadRequest, "validation", "A valid email is required.")
	}
	password := c.FormValue("password")
	if password == "" {
		return toast(c, fiber.StatusBadRequest, "validation", "Password is required.")
	}

	token, profile, err := h.Client.Login(c.Context(), email, password)
	if err == nil {
		if serr := h.Console.SetToken(token); serr != nil {
			return respondErr(c, serr)
		}
		return h.openSession(c, profile)
	}

	if api.IsUnavailable(err) && h.Cfg.Upstream.DemoFallback {
		if h.checkConsolePassword(password) {
			applog.Warn(c, "auth.demo_fallback", err, map[string]any{"email": email})
			return h.openSession(c, domain.Profile{Name: "Demo Admin", Email: email, Role: "admin", Demo: true})
		}
	}
	if api.IsUnauthorized(err) || api.IsValidation(err) {
		applog.Security(c, "auth.login.fail", map[string]any{"email": email})
		return toast(c, fiber.StatusUnauthorized, "unauthorized", "Invalid email or password.")
	}
	return respondErr(c, err)
}

// checkConsolePassword gates the demo fallback on the locally configured
// bcrypt hash. Without one, a logged dev default of "demo" applies.
func (h *AuthHandler) checkConsolePassword(password string) bool {
	hash := h.Cfg.Console.PasswordHash
	if hash == "" {
		applog.Security(nil, "auth.demo_default_password", nil)
		return password == "demo"
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (h *AuthHandler) openSession(c *fiber.Ctx, profile domain.Profile) error {
	sid, err := h.Console.CreateSession(h.Cfg.Console.SessionTTL)
	if err != nil {
		return respondErr(c, err)
	}
	c.Cookie(&fiber.Cookie{
		Name:     "sid",
		Value:    sid,
		HTTPOnly: true,
		SameSite: "Lax",
		Expires:  time.Now().Add(h.Cfg.Console.SessionTTL),
	})
	applog.Audit(c, "auth.login.ok", map[string]any{"email": profile.Email, "demo": profile.Demo})
	return c.JSON(fiber.Map{"user": profile, "demo_mode": profile.Demo})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if sid := c.Cookies("sid"); sid != "" {
		_ = h.Console.DeleteSession(sid)
	}
	_ = h.Console.ClearToken()
	c.ClearCookie("sid")
	return c.JSON(fiber.Map{"ok": true})
}
