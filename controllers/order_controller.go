package controllers

import (
	"errors"
	"fmt"
	"log"

	"github.com/Rohan-Kumar320/Export-Apparel-Admin/models"
	"github.com/Rohan-Kumar320/Export-Apparel-Admin/repository"
	"github.com/Rohan-Kumar320/Export-Apparel-Admin/services"
	"github.com/gofiber/fiber/v2"
)

// OrderController handles HTTP requests related to orders.
type OrderController struct {
	orderService services.IOrderService
}

// NewOrderController creates a new OrderController instance.
func NewOrderController(svc services.IOrderService) *OrderController {
	return &OrderController{orderService: svc}
}

// List handles GET /orders.
func (c *OrderController) List(ctx *fiber.Ctx) error {
	search := ctx.Query("search")
	status := models.OrderStatus(ctx.Query("status"))

	orders, err := c.orderService.ListOrders(ctx.UserContext(), search, status)
	if errors.Is(err, repository.ErrPermissionDenied) {
		log.Printf("Orders fetch error: %v", err)
		return errorJSON(ctx, fiber.StatusForbidden,
			"Permission denied. Please ensure you have access to view orders or contact support.")
	}
	if err != nil {
		log.Printf("Orders fetch error: %v", err)
		return errorJSON(ctx, storeStatus(err), "Failed to load orders: "+err.Error())
	}
	return ctx.JSON(fiber.Map{
		"view":     "orders",
		"message":  "Orders loaded successfully!",
		"search":   search,
		"status":   status,
		"statuses": models.OrderStatuses,
		"orders":   orders,
	})
}

// Detail handles GET /orders/:id, the read-only overlay.
func (c *OrderController) Detail(ctx *fiber.Ctx) error {
	detail, err := c.orderService.GetOrderDetail(ctx.UserContext(), ctx.Params("id"))
	if errors.Is(err, repository.ErrNotFound) {
		return errorJSON(ctx, fiber.StatusNotFound, "Order not found.")
	}
	if err != nil {
		return errorJSON(ctx, storeStatus(err), "Failed to load order: "+err.Error())
	}
	return ctx.JSON(detail)
}

type statusRequest struct {
	Status string `json:"status" form:"status" validate:"required"`
}

// UpdateStatus handles POST /orders/:id/status.
func (c *OrderController) UpdateStatus(ctx *fiber.Ctx) error {
	var req statusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errorJSON(ctx, fiber.StatusBadRequest, "Invalid request body format")
	}
	if err := validate.Struct(req); err != nil {
		return errorJSON(ctx, fiber.StatusBadRequest, "Order status is required.")
	}
	id := ctx.Params("id")
	status := models.OrderStatus(req.Status)

	err := c.orderService.UpdateOrderStatus(ctx.UserContext(), id, status)
	switch {
	case err == nil:
	case errors.Is(err, services.ErrInvalidStatus):
		return errorJSON(ctx, fiber.StatusBadRequest, fmt.Sprintf("Invalid order status %q.", req.Status))
	case errors.Is(err, repository.ErrPermissionDenied):
		log.Printf("Status update error: %v", err)
		return errorJSON(ctx, fiber.StatusForbidden,
			"Permission denied. Please ensure you have write access to update orders.")
	default:
		log.Printf("Status update error: %v", err)
		return errorJSON(ctx, storeStatus(err), "Failed to update order: "+err.Error())
	}

	log.Printf("Order %s updated to %s", id, status)
	return ctx.JSON(fiber.Map{
		"message": fmt.Sprintf("Order %s updated to %s!", id, status),
		"id":      id,
		"status":  status,
	})
}
