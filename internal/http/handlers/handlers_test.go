package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/hafizsameer11/optyshop-admin-sub000/internal/api"
	"github.com/hafizsameer11/optyshop-admin-sub000/internal/config"
	"github.com/hafizsameer11/optyshop-admin-sub000/internal/state"
)

// harness wires the console app against a fake upstream the way main does,
// minus the HTML views.
type harness struct {
	app     *fiber.App
	console *state.Console
	cfg     config.Config
}

func testConfig() config.Config {
	return config.Config{
		Port: "0",
		Upstream: config.UpstreamConfig{
			Timeout:      5 * time.Second,
			DemoFallback: true,
		},
		Console: config.ConsoleConfig{
			SessionTTL: time.Hour,
		},
	}
}

func newHarness(t *testing.T, upstream http.HandlerFunc) *harness {
	t.Helper()
	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)

	console := state.NewConsole(state.NewMemStore())
	cfg := testConfig()
	cfg.Upstream.BaseURL = srv.URL

	client, err := api.New(srv.URL, cfg.Upstream.Timeout, console)
	require.NoError(t, err)
	client.WithMeCache(state.MeCache{S: console.S})

	d := NewDeps(client, console, cfg)

	app := fiber.New()
	app.Post("/login", d.AuthHandler.Login)
	app.Post("/logout", d.AuthHandler.Logout)

	guard := RequireSession(console)
	admin := app.Group("/console", guard)
	admin.Get("/products", d.ProductsHandler.List)
	admin.Get("/products/:id", d.ProductsHandler.Get)
	admin.Post("/products", d.ProductsHandler.Create)
	admin.Put("/products/:id", d.ProductsHandler.Update)
	admin.Delete("/products/:id", d.ProductsHandler.Delete)
	admin.Put("/products/:id/images", d.ProductsHandler.UploadImages)
	admin.Get("/categories", d.CategoriesHandler.List)
	admin.Post("/categories", d.CategoriesHandler.Create)
	admin.Post("/subcategories", d.CategoriesHandler.CreateSubcategory)

	return &harness{app: app, console: console, cfg: cfg}
}

// login opens a session directly in the store and returns the sid cookie.
func (h *harness) login(t *testing.T) *http.Cookie {
	t.Helper()
	sid, err := h.console.CreateSession(h.cfg.Console.SessionTTL)
	require.NoError(t, err)
	return &http.Cookie{Name: "sid", Value: sid}
}

func (h *harness) do(t *testing.T, req *http.Request) (*http.Response, string) {
	t.Helper()
	resp, err := h.app.Test(req, 10000)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, string(body)
}
