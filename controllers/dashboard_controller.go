package controllers

import (
	"github.com/Rohan-Kumar320/Export-Apparel-Admin/middleware"
	"github.com/gofiber/fiber/v2"
)

// Section is one tile of the dashboard.
type Section struct {
	Title       string `json:"title"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

var dashboardSections = []Section{
	{Title: "Manage Products", Path: "/products", Description: "Add, edit, or delete clothing products"},
	{Title: "Manage Categories", Path: "/categories", Description: "Organize products by categories"},
	{Title: "Manage Orders", Path: "/orders", Description: "View and update customer orders"},
}

// DashboardController serves the landing page after sign-in.
type DashboardController struct{}

func NewDashboardController() *DashboardController {
	return &DashboardController{}
}

// Show handles GET /dashboard.
func (c *DashboardController) Show(ctx *fiber.Ctx) error {
	view := fiber.Map{
		"view":     "dashboard",
		"title":    "Export Apparel Admin Panel",
		"sections": dashboardSections,
		"logout":   "/logout",
	}
	if user := middleware.CurrentUser(ctx); user != nil {
		view["user"] = fiber.Map{"id": user.ID, "email": user.Email}
	}
	return ctx.JSON(view)
}
