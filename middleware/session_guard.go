// Package middleware holds the fiber middlewares shared by the protected routes.
package middleware

import (
	"context"
	"time"

	"github.com/Rohan-Kumar320/Export-Apparel-Admin/models"
	"github.com/Rohan-Kumar320/Export-Apparel-Admin/services"
	"github.com/gofiber/fiber/v2"
)

const userKey = "user"

// LoginPath is where unauthenticated requests are sent.
const LoginPath = "/login"

// SessionGuard lets a request through only when the provider reports a signed-in user for
// the session cookie. It waits for the provider's first notification; with wait at zero it
// waits as long as the request context lives, otherwise it gives up after wait and answers
// with the loading placeholder.
func SessionGuard(auth services.IAuthService, cookieName string, wait time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()
		if wait > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, wait)
			defer cancel()
		}

		first := make(chan *models.User, 1)
		unsubscribe := auth.OnAuthStateChanged(ctx, c.Cookies(cookieName), func(user *models.User) {
			select {
			case first <- user:
			default:
			}
		})
		defer unsubscribe()

		select {
		case user := <-first:
			if user == nil {
				return c.Redirect(LoginPath)
			}
			c.Locals(userKey, user)
			return c.Next()
		case <-ctx.Done():
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"view":    "loading",
				"message": "Loading...",
			})
		}
	}
}

// CurrentUser returns the user the guard admitted, or nil on unguarded routes.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(userKey).(*models.User)
	return user
}
