// Package controllers maps the console's routes onto the services. Every handler answers with
// the JSON view model of the screen it stands for.
package controllers

import (
	"errors"

	"github.com/Rohan-Kumar320/Export-Apparel-Admin/repository"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func errorJSON(ctx *fiber.Ctx, status int, message string) error {
	return ctx.Status(status).JSON(fiber.Map{"error": message})
}

// storeStatus picks the HTTP status for a store error.
func storeStatus(err error) int {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, repository.ErrPermissionDenied):
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}

// confirmed reports whether the caller answered the delete prompt with yes.
func confirmed(ctx *fiber.Ctx) bool {
	return ctx.QueryBool("confirm", false)
}
