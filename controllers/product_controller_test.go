package controllers_test

import (
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/Rohan-Kumar320/Export-Apparel-Admin/controllers"
	"github.com/Rohan-Kumar320/Export-Apparel-Admin/models"
	"github.com/Rohan-Kumar320/Export-Apparel-Admin/repository"
	"github.com/Rohan-Kumar320/Export-Apparel-Admin/services"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type productFixture struct {
	products   *MockProductService
	categories *MockCategoryService
	uploader   *MockUploader
	uploads    []string
	app        *fiber.App
}

func newProductFixture() *productFixture {
	f := &productFixture{
		products:   new(MockProductService),
		categories: new(MockCategoryService),
		uploader:   new(MockUploader),
	}
	ctrl := controllers.NewProductController(f.products, f.categories, f.uploader, func(result string) {
		f.uploads = append(f.uploads, result)
	})
	f.app = fiber.New()
	f.app.Get("/products", ctrl.List)
	f.app.Get("/products/new", ctrl.NewForm)
	f.app.Post("/products/new", ctrl.Create)
	f.app.Get("/products/edit/:id", ctrl.EditForm)
	f.app.Post("/products/edit/:id", ctrl.Update)
	f.app.Post("/products/images", ctrl.UploadImage)
	f.app.Delete("/products/:id", ctrl.Delete)
	return f
}

func TestProductController_List_FiltersByCategory(t *testing.T) {
	f := newProductFixture()
	f.products.On("ListProducts", mock.Anything, "", "shirts").Return(&services.ProductList{
		Products:   []models.Product{{ID: "p1", Name: "Oxford", Category: "shirts", Price: decimal.NewFromInt(10)}},
		Categories: []models.Category{{ID: "shirts", Name: "Shirts"}, {ID: "denim", Name: "Denim"}},
	}, nil)

	resp, body := doJSON(t, f.app, http.MethodGet, "/products?category=shirts", nil)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "products", body["view"])
	assert.Len(t, body["products"], 1)
	assert.Len(t, body["categories"], 2)
	f.products.AssertExpectations(t)
}

func TestProductController_List_Error(t *testing.T) {
	f := newProductFixture()
	f.products.On("ListProducts", mock.Anything, "", "").Return(nil, errors.New("offline"))

	resp, body := doJSON(t, f.app, http.MethodGet, "/products", nil)

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Failed to load data: offline", body["error"])
}

func TestProductController_NewForm_HasOneImageRow(t *testing.T) {
	f := newProductFixture()
	f.categories.On("ListCategories", mock.Anything, "").Return([]models.Category{{ID: "shirts", Name: "Shirts"}}, nil)

	resp, body := doJSON(t, f.app, http.MethodGet, "/products/new", nil)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Add Product", body["title"])
	product := body["product"].(map[string]any)
	assert.Equal(t, []any{""}, product["imageUrls"])
}

func TestProductController_EditForm_NotFound(t *testing.T) {
	f := newProductFixture()
	f.products.On("GetProduct", mock.Anything, "p9").Return(nil, repository.ErrNotFound)

	resp, body := doJSON(t, f.app, http.MethodGet, "/products/edit/p9", nil)

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Product not found.", body["error"])
}

func TestProductController_FormActions(t *testing.T) {
	f := newProductFixture()
	f.categories.On("ListCategories", mock.Anything, "").Return([]models.Category{}, nil)

	_, body := doJSON(t, f.app, http.MethodPost, "/products/new", map[string]any{
		"action":    "addImage",
		"name":      "Oxford",
		"imageUrls": []string{"https://img/1.png"},
	})
	product := body["product"].(map[string]any)
	assert.Equal(t, []any{"https://img/1.png", ""}, product["imageUrls"])
	assert.Equal(t, "Oxford", product["name"])

	_, body = doJSON(t, f.app, http.MethodPost, "/products/new", map[string]any{
		"action":    "removeImage",
		"index":     0,
		"imageUrls": []string{"https://img/1.png"},
	})
	product = body["product"].(map[string]any)
	assert.Equal(t, []any{"https://img/1.png"}, product["imageUrls"], "the last row stays")

	f.products.AssertNotCalled(t, "SaveProduct", mock.Anything, mock.Anything, mock.Anything)
}

func TestProductController_Create(t *testing.T) {
	f := newProductFixture()
	f.products.On("SaveProduct", mock.Anything, "", mock.MatchedBy(func(in services.ProductInput) bool {
		return in.Name == "Oxford" && in.Price == "12.5" && in.Category == "shirts"
	})).Return(&models.Product{ID: "1700000000000", Name: "Oxford"}, nil)

	resp, body := doForm(t, f.app, "/products/new", url.Values{
		"name": {"Oxford"}, "price": {"12.5"}, "category": {"shirts"}, "imageUrls": {""},
	})

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Product added successfully!", body["message"])
	assert.Equal(t, "/products", body["redirect"])
	f.products.AssertExpectations(t)
}

func TestProductController_Update(t *testing.T) {
	f := newProductFixture()
	f.products.On("SaveProduct", mock.Anything, "p1", mock.Anything).Return(&models.Product{ID: "p1"}, nil)

	resp, body := doJSON(t, f.app, http.MethodPost, "/products/edit/p1", map[string]any{
		"name": "Oxford", "price": "15", "category": "shirts",
	})

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Product updated successfully!", body["message"])
}

func TestProductController_Create_MissingFields(t *testing.T) {
	f := newProductFixture()

	resp, body := doForm(t, f.app, "/products/new", url.Values{"name": {"Oxford"}})

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Name, price and category are required.", body["error"])
}

func TestProductController_UploadImage(t *testing.T) {
	f := newProductFixture()
	f.uploader.On("Upload", mock.Anything, "front.png", mock.Anything).Return("https://cdn/front.png", nil)

	resp, body := doUpload(t, f.app, "/products/images", "front.png", map[string][]string{
		"slot":      {"1"},
		"imageUrls": {"https://cdn/back.png", ""},
	})

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "https://cdn/front.png", body["url"])
	assert.Equal(t, []any{"https://cdn/back.png", "https://cdn/front.png"}, body["imageUrls"])
	assert.Equal(t, []string{"ok"}, f.uploads)
}

func TestProductController_UploadImage_RejectsExtension(t *testing.T) {
	f := newProductFixture()

	resp, body := doUpload(t, f.app, "/products/images", "anim.gif", map[string][]string{
		"slot":      {"0"},
		"imageUrls": {"https://cdn/back.png"},
	})

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Only JPG, JPEG, and PNG images are allowed.", body["error"])
	assert.Equal(t, []any{"https://cdn/back.png"}, body["imageUrls"])
	f.uploader.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
}

func TestProductController_UploadImage_Failure(t *testing.T) {
	f := newProductFixture()
	f.uploader.On("Upload", mock.Anything, "front.jpg", mock.Anything).
		Return("", &services.UploadError{Message: "Upload preset not found"})

	resp, body := doUpload(t, f.app, "/products/images", "front.jpg", map[string][]string{"slot": {"0"}})

	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, "Image upload failed: Upload preset not found", body["error"])
	assert.Equal(t, []any{""}, body["imageUrls"])
}

func TestProductController_UploadImage_NoFile(t *testing.T) {
	f := newProductFixture()

	resp, body := doUpload(t, f.app, "/products/images", "", map[string][]string{"slot": {"0"}})

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "No image file selected.", body["error"])
}

func TestProductController_Delete(t *testing.T) {
	f := newProductFixture()

	resp, body := doJSON(t, f.app, http.MethodDelete, "/products/p1", nil)
	assert.Equal(t, fiber.StatusPreconditionRequired, resp.StatusCode)
	assert.Equal(t, "Are you sure you want to delete this product?", body["confirm"])

	f.products.On("DeleteProduct", mock.Anything, "p1").Return(nil)
	resp, body = doJSON(t, f.app, http.MethodDelete, "/products/p1?confirm=true", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Product deleted successfully!", body["message"])
	f.products.AssertNumberOfCalls(t, "DeleteProduct", 1)
}
