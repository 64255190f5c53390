package controllers

import (
	"github.com/Rohan-Kumar320/Export-Apparel-Admin/middleware"
	json "github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Handlers are the controllers behind the routing surface.
type Handlers struct {
	Auth       *AuthController
	Dashboard  *DashboardController
	Categories *CategoryController
	Products   *ProductController
	Orders     *OrderController
}

// NewApp creates the fiber application with the console's JSON codec and panic recovery.
// extra middlewares run before every route.
func NewApp(extra ...fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Export Apparel Admin",
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: errorHandler,
	})
	app.Use(recover.New())
	for _, h := range extra {
		app.Use(h)
	}
	return app
}

func errorHandler(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if fe, ok := err.(*fiber.Error); ok {
		code = fe.Code
	}
	return errorJSON(ctx, code, err.Error())
}

// RegisterRoutes wires the routing surface. Every route but /login and /healthz goes through
// guard, and any path not listed here redirects to /login.
func RegisterRoutes(app *fiber.App, h Handlers, guard fiber.Handler) {
	app.Get("/healthz", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"status": "ok"})
	})
	app.Get(middleware.LoginPath, h.Auth.LoginPage)
	app.Post(middleware.LoginPath, h.Auth.Login)

	app.Post("/logout", guard, h.Auth.Logout)
	app.Get("/dashboard", guard, h.Dashboard.Show)

	app.Get("/categories", guard, h.Categories.List)
	app.Get("/categories/new", guard, h.Categories.NewForm)
	app.Post("/categories/new", guard, h.Categories.Create)
	app.Get("/categories/edit/:id", guard, h.Categories.EditForm)
	app.Post("/categories/edit/:id", guard, h.Categories.Update)
	app.Delete("/categories/:id", guard, h.Categories.Delete)

	app.Get("/products", guard, h.Products.List)
	app.Get("/products/new", guard, h.Products.NewForm)
	app.Post("/products/new", guard, h.Products.Create)
	app.Get("/products/edit/:id", guard, h.Products.EditForm)
	app.Post("/products/edit/:id", guard, h.Products.Update)
	app.Post("/products/images", guard, h.Products.UploadImage)
	app.Delete("/products/:id", guard, h.Products.Delete)

	app.Get("/orders", guard, h.Orders.List)
	app.Get("/orders/:id", guard, h.Orders.Detail)
	app.Post("/orders/:id/status", guard, h.Orders.UpdateStatus)
}

// RegisterFallback sends every unmatched path to /login. Register it last.
func RegisterFallback(app *fiber.App) {
	app.Use(func(ctx *fiber.Ctx) error {
		return ctx.Redirect(middleware.LoginPath)
	})
}
