package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"github.com/hafizsameer11/optyshop-admin-sub000/internal/api"
	"github.com/hafizsameer11/optyshop-admin-sub000/internal/config"
	"github.com/hafizsameer11/optyshop-admin-sub000/internal/http/handlers"
	applog "github.com/hafizsameer11/optyshop-admin-sub000/internal/log"
	"github.com/hafizsameer11/optyshop-admin-sub000/internal/state"
)

func main() {
	cfg := config.Load()
	applog.Init(cfg.LogFile)

	db, err := state.OpenDB(cfg.StateDSN)
	if err != nil {
		log.Fatal(err)
	}
	console := state.NewConsole(state.NewSQLStore(db))

	client, err := api.New(cfg.Upstream.BaseURL, cfg.Upstream.Timeout, console)
	if err != nil {
		log.Fatal(err)
	}
	client = client.WithMeCache(state.MeCache{S: console.S})

	// Templates & app
	engine := html.New("./web/templates", ".html")

	app := fiber.New(fiber.Config{
		Views: engine,
		// Uploads pass through this process; keep the body guard above the
		// largest accepted product image.
		BodyLimit: 16 << 20,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			if rerr := c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "Something went wrong. Please try again.",
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong. Please try again.")
			}
			return nil
		},
	})
	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())

	deps := handlers.NewDeps(client, console, cfg)

	// Auth (login throttled the same way whether the check lands upstream
	// or on the local demo-fallback password)
	app.Get("/login", deps.AuthHandler.LoginForm)
	app.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "Too many attempts. Please try again later."})
		},
	}), deps.AuthHandler.Login)
	app.Post("/logout", deps.AuthHandler.Logout)

	// Everything else requires a console session.
	guard := handlers.RequireSession(console)

	app.Get("/", guard, deps.DashboardHandler.Home)

	admin := app.Group("/console", guard)

	admin.Get("/products", deps.ProductsHandler.List)
	admin.Get("/products/:id", deps.ProductsHandler.Get)
	admin.Post("/products", deps.ProductsHandler.Create)
	admin.Put("/products/:id", deps.ProductsHandler.Update)
	admin.Delete("/products/:id", deps.ProductsHandler.Delete)
	admin.Put("/products/:id/images", deps.ProductsHandler.UploadImages)

	admin.Get("/categories", deps.CategoriesHandler.List)
	admin.Post("/categories", deps.CategoriesHandler.Create)
	admin.Put("/categories/:id", deps.CategoriesHandler.Update)
	admin.Delete("/categories/:id", deps.CategoriesHandler.Delete)
	admin.Post("/subcategories", deps.CategoriesHandler.CreateSubcategory)
	admin.Put("/subcategories/:id", deps.CategoriesHandler.UpdateSubcategory)
	admin.Delete("/subcategories/:id", deps.CategoriesHandler.DeleteSubcategory)

	admin.Get("/banners", deps.BannersHandler.List)
	admin.Post("/banners", deps.BannersHandler.Create)
	admin.Put("/banners/:id", deps.BannersHandler.Update)
	admin.Delete("/banners/:id", deps.BannersHandler.Delete)

	admin.Get("/blog-posts", deps.BlogHandler.List)
	admin.Post("/blog-posts", deps.BlogHandler.Create)
	admin.Put("/blog-posts/:id", deps.BlogHandler.Update)
	admin.Delete("/blog-posts/:id", deps.BlogHandler.Delete)

	admin.Get("/faqs", deps.FAQsHandler.List)
	admin.Post("/faqs", deps.FAQsHandler.Create)
	admin.Put("/faqs/:id", deps.FAQsHandler.Update)
	admin.Delete("/faqs/:id", deps.FAQsHandler.Delete)

	admin.Get("/pages", deps.PagesHandler.List)
	admin.Post("/pages", deps.PagesHandler.Create)
	admin.Put("/pages/:id", deps.PagesHandler.Update)
	admin.Delete("/pages/:id", deps.PagesHandler.Delete)

	admin.Get("/testimonials", deps.TestimonialsHandler.List)
	admin.Post("/testimonials", deps.TestimonialsHandler.Create)
	admin.Put("/testimonials/:id", deps.TestimonialsHandler.Update)
	admin.Delete("/testimonials/:id", deps.TestimonialsHandler.Delete)

	admin.Get("/orders", deps.OrdersHandler.List)
	admin.Get("/orders/:id", deps.OrdersHandler.Get)
	admin.Put("/orders/:id/status", deps.OrdersHandler.UpdateStatus)

	admin.Get("/users", deps.UsersHandler.List)
	admin.Put("/users/:id", deps.UsersHandler.Update)
	admin.Delete("/users/:id", deps.UsersHandler.Delete)

	admin.Get("/requests/:kind", deps.RequestsHandler.List)
	admin.Get("/requests/:kind/:id", deps.RequestsHandler.Get)
	admin.Delete("/requests/:kind/:id", deps.RequestsHandler.Delete)

	admin.Get("/contact-lens-configs", deps.ContactLensHandler.ListConfigs)
	admin.Post("/contact-lens-configs", deps.ContactLensHandler.CreateConfig)
	admin.Put("/contact-lens-configs/:id", deps.ContactLensHandler.UpdateConfig)
	admin.Delete("/contact-lens-configs/:id", deps.ContactLensHandler.DeleteConfig)
	admin.Get("/contact-lens-forms/:kind", deps.ContactLensHandler.GetForm)
	admin.Put("/contact-lens-forms/:kind", deps.ContactLensHandler.UpdateForm)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Page not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
