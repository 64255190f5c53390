package controllers

import (
	"errors"

	"github.com/Rohan-Kumar320/Export-Apparel-Admin/repository"
	"github.com/Rohan-Kumar320/Export-Apparel-Admin/services"
	"github.com/gofiber/fiber/v2"
)

// CategoryController handles the category list and form.
type CategoryController struct {
	categoryService services.ICategoryService
}

// NewCategoryController creates a new CategoryController instance.
func NewCategoryController(svc services.ICategoryService) *CategoryController {
	return &CategoryController{categoryService: svc}
}

type categoryRequest struct {
	Name string `json:"name" form:"name" validate:"required"`
}

// List handles GET /categories.
func (c *CategoryController) List(ctx *fiber.Ctx) error {
	search := ctx.Query("search")
	categories, err := c.categoryService.ListCategories(ctx.UserContext(), search)
	if err != nil {
		return errorJSON(ctx, storeStatus(err), "Failed to load categories: "+err.Error())
	}
	return ctx.JSON(fiber.Map{"view": "categories", "search": search, "categories": categories})
}

// NewForm handles GET /categories/new.
func (c *CategoryController) NewForm(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"view":     "category-form",
		"title":    "Add Category",
		"submit":   "Add Category",
		"category": fiber.Map{"name": ""},
	})
}

// EditForm handles GET /categories/edit/:id.
func (c *CategoryController) EditForm(ctx *fiber.Ctx) error {
	category, err := c.categoryService.GetCategory(ctx.UserContext(), ctx.Params("id"))
	if errors.Is(err, repository.ErrNotFound) {
		return errorJSON(ctx, fiber.StatusNotFound, "Category not found.")
	}
	if err != nil {
		return errorJSON(ctx, storeStatus(err), "Failed to load category: "+err.Error())
	}
	return ctx.JSON(fiber.Map{
		"view":     "category-form",
		"title":    "Edit Category",
		"submit":   "Update Category",
		"category": category,
	})
}

// Create handles POST /categories/new.
func (c *CategoryController) Create(ctx *fiber.Ctx) error {
	return c.save(ctx, "")
}

// Update handles POST /categories/edit/:id.
func (c *CategoryController) Update(ctx *fiber.Ctx) error {
	return c.save(ctx, ctx.Params("id"))
}

func (c *CategoryController) save(ctx *fiber.Ctx, id string) error {
	var req categoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errorJSON(ctx, fiber.StatusBadRequest, "Invalid request body format")
	}
	if err := validate.Struct(req); err != nil {
		return errorJSON(ctx, fiber.StatusBadRequest, "Category name is required.")
	}

	category, err := c.categoryService.SaveCategory(ctx.UserContext(), id, req.Name)
	if err != nil {
		return errorJSON(ctx, storeStatus(err), "Failed to save category: "+err.Error())
	}

	message := "Category added successfully!"
	if id != "" {
		message = "Category updated successfully!"
	}
	return ctx.JSON(fiber.Map{"message": message, "category": category, "redirect": "/categories"})
}

// Delete handles DELETE /categories/:id. Nothing is removed until the prompt is confirmed.
func (c *CategoryController) Delete(ctx *fiber.Ctx) error {
	if !confirmed(ctx) {
		return ctx.Status(fiber.StatusPreconditionRequired).JSON(fiber.Map{
			"confirm": "Are you sure you want to delete this category?",
		})
	}
	id := ctx.Params("id")
	if err := c.categoryService.DeleteCategory(ctx.UserContext(), id); err != nil {
		return errorJSON(ctx, storeStatus(err), "Failed to delete category: "+err.Error())
	}
	return ctx.JSON(fiber.Map{"message": "Category deleted successfully!", "deleted": id})
}
