package controllers

import (
	"errors"
	"log"
	"strconv"

	"github.com/Rohan-Kumar320/Export-Apparel-Admin/repository"
	"github.com/Rohan-Kumar320/Export-Apparel-Admin/services"
	"github.com/gofiber/fiber/v2"
)

// Product form actions. Anything else submits the form.
const (
	actionAddImage    = "addImage"
	actionRemoveImage = "removeImage"
)

// ProductController handles the product list, the product form and image uploads.
type ProductController struct {
	productService  services.IProductService
	categoryService services.ICategoryService
	uploader        services.IImageUploader
	observeUpload   func(result string)
}

// NewProductController creates a new ProductController instance.
func NewProductController(
	products services.IProductService,
	categories services.ICategoryService,
	uploader services.IImageUploader,
	observeUpload func(result string),
) *ProductController {
	if observeUpload == nil {
		observeUpload = func(string) {}
	}
	return &ProductController{
		productService:  products,
		categoryService: categories,
		uploader:        uploader,
		observeUpload:   observeUpload,
	}
}

// productRequest is the submitted product form, including the image rows.
type productRequest struct {
	Action      string   `json:"action" form:"action"`
	Index       int      `json:"index" form:"index"`
	Name        string   `json:"name" form:"name"`
	Description string   `json:"description" form:"description"`
	Price       string   `json:"price" form:"price"`
	Category    string   `json:"category" form:"category"`
	ImageURLs   []string `json:"imageUrls" form:"imageUrls"`
}

type productFields struct {
	Name     string `validate:"required"`
	Price    string `validate:"required"`
	Category string `validate:"required"`
}

type productFormData struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Price       string              `json:"price"`
	Category    string              `json:"category"`
	ImageURLs   services.ImageSlots `json:"imageUrls"`
}

// List handles GET /products.
func (c *ProductController) List(ctx *fiber.Ctx) error {
	search, category := ctx.Query("search"), ctx.Query("category")
	list, err := c.productService.ListProducts(ctx.UserContext(), search, category)
	if err != nil {
		return errorJSON(ctx, storeStatus(err), "Failed to load data: "+err.Error())
	}
	return ctx.JSON(fiber.Map{
		"view":       "products",
		"search":     search,
		"category":   category,
		"products":   list.Products,
		"categories": list.Categories,
	})
}

// NewForm handles GET /products/new.
func (c *ProductController) NewForm(ctx *fiber.Ctx) error {
	return c.renderForm(ctx, "", productFormData{ImageURLs: services.NewImageSlots(nil)})
}

// EditForm handles GET /products/edit/:id.
func (c *ProductController) EditForm(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	product, err := c.productService.GetProduct(ctx.UserContext(), id)
	if errors.Is(err, repository.ErrNotFound) {
		return errorJSON(ctx, fiber.StatusNotFound, "Product not found.")
	}
	if err != nil {
		return errorJSON(ctx, storeStatus(err), "Failed to load product: "+err.Error())
	}
	return c.renderForm(ctx, id, productFormData{
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price.String(),
		Category:    product.Category,
		ImageURLs:   services.NewImageSlots(product.Images()),
	})
}

func (c *ProductController) renderForm(ctx *fiber.Ctx, id string, form productFormData) error {
	categories, err := c.categoryService.ListCategories(ctx.UserContext(), "")
	if err != nil {
		return errorJSON(ctx, storeStatus(err), "Failed to load categories: "+err.Error())
	}
	title, submit := "Add Product", "Add Product"
	if id != "" {
		title, submit = "Edit Product", "Update Product"
	}
	return ctx.JSON(fiber.Map{
		"view":       "product-form",
		"id":         id,
		"title":      title,
		"submit":     submit,
		"product":    form,
		"categories": categories,
	})
}

// Create handles POST /products/new.
func (c *ProductController) Create(ctx *fiber.Ctx) error {
	return c.submit(ctx, "")
}

// Update handles POST /products/edit/:id.
func (c *ProductController) Update(ctx *fiber.Ctx) error {
	return c.submit(ctx, ctx.Params("id"))
}

func (c *ProductController) submit(ctx *fiber.Ctx, id string) error {
	var req productRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errorJSON(ctx, fiber.StatusBadRequest, "Invalid request body format")
	}

	form := productFormData{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		ImageURLs:   services.NewImageSlots(req.ImageURLs),
	}
	switch req.Action {
	case actionAddImage:
		form.ImageURLs = form.ImageURLs.Add()
		return c.renderForm(ctx, id, form)
	case actionRemoveImage:
		form.ImageURLs = form.ImageURLs.Remove(req.Index)
		return c.renderForm(ctx, id, form)
	}

	if err := validate.Struct(productFields{Name: req.Name, Price: req.Price, Category: req.Category}); err != nil {
		return errorJSON(ctx, fiber.StatusBadRequest, "Name, price and category are required.")
	}

	product, err := c.productService.SaveProduct(ctx.UserContext(), id, services.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		ImageURLs:   req.ImageURLs,
	})
	if err != nil {
		return errorJSON(ctx, storeStatus(err), "Failed to save product: "+err.Error())
	}

	message := "Product added successfully!"
	if id != "" {
		message = "Product updated successfully!"
	}
	return ctx.JSON(fiber.Map{"message": message, "product": product, "redirect": "/products"})
}

// UploadImage handles POST /products/images: one file for one image row. The response
// carries the rows after the upload; a rejected or failed upload returns them unchanged.
func (c *ProductController) UploadImage(ctx *fiber.Ctx) error {
	var slots services.ImageSlots
	if form, err := ctx.MultipartForm(); err == nil {
		slots = services.NewImageSlots(form.Value["imageUrls"])
	} else {
		slots = services.NewImageSlots(nil)
	}
	slot, _ := strconv.Atoi(ctx.FormValue("slot"))

	header, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No image file selected.", "imageUrls": slots})
	}
	if err := services.ValidateImageName(header.Filename); err != nil {
		c.observeUpload("rejected")
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error(), "imageUrls": slots})
	}

	file, err := header.Open()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Image upload failed: " + err.Error(), "imageUrls": slots})
	}
	defer file.Close()

	url, err := c.uploader.Upload(ctx.UserContext(), header.Filename, file)
	if err != nil {
		c.observeUpload("error")
		log.Printf("Image upload error: %v", err)
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error(), "imageUrls": slots})
	}
	c.observeUpload("ok")
	return ctx.JSON(fiber.Map{"url": url, "slot": slot, "imageUrls": slots.Set(slot, url)})
}

// Delete handles DELETE /products/:id. Nothing is removed until the prompt is confirmed.
func (c *ProductController) Delete(ctx *fiber.Ctx) error {
	if !confirmed(ctx) {
		return ctx.Status(fiber.StatusPreconditionRequired).JSON(fiber.Map{
			"confirm": "Are you sure you want to delete this product?",
		})
	}
	id := ctx.Params("id")
	if err := c.productService.DeleteProduct(ctx.UserContext(), id); err != nil {
		return errorJSON(ctx, storeStatus(err), "Failed to delete product: "+err.Error())
	}
	return ctx.JSON(fiber.Map{"message": "Product deleted successfully!", "deleted": id})
}

