package controllers

import (
	"log"
	"strings"

	"github.com/Rohan-Kumar320/Export-Apparel-Admin/services"
	"github.com/gofiber/fiber/v2"
)

// AuthController handles sign-in and sign-out.
type AuthController struct {
	auth       services.IAuthService
	cookieName string
	secure     bool
	observe    func(outcome string)
}

// NewAuthController creates a new AuthController instance. observe, when set, is told the
// outcome of every sign-in attempt.
func NewAuthController(auth services.IAuthService, cookieName string, secure bool, observe func(outcome string)) *AuthController {
	if observe == nil {
		observe = func(string) {}
	}
	return &AuthController{auth: auth, cookieName: cookieName, secure: secure, observe: observe}
}

type loginRequest struct {
	Email    string `json:"email" form:"email" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// LoginPage handles GET /login.
func (c *AuthController) LoginPage(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"view": "login", "title": "Admin Login"})
}

// Login handles POST /login.
func (c *AuthController) Login(ctx *fiber.Ctx) error {
	var req loginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errorJSON(ctx, fiber.StatusBadRequest, "Invalid request body format")
	}
	req.Email = strings.TrimSpace(req.Email)
	if err := validate.Struct(req); err != nil {
		return errorJSON(ctx, fiber.StatusBadRequest, "Email and password are required.")
	}

	session, err := c.auth.SignIn(ctx.UserContext(), req.Email, req.Password)
	if err != nil {
		code := services.AuthCode(err)
		if code == "" {
			code = "error"
		}
		c.observe(code)
		log.Printf("Login error: %v", err)
		return errorJSON(ctx, fiber.StatusUnauthorized, LoginErrorMessage(err))
	}
	c.observe("ok")

	ctx.Cookie(&fiber.Cookie{
		Name:     c.cookieName,
		Value:    session.ID,
		Path:     "/",
		HTTPOnly: true,
		Secure:   c.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return ctx.JSON(fiber.Map{"message": "Logged in successfully!", "redirect": "/dashboard"})
}

// Logout handles POST /logout. Sign-out failures are logged and the user still goes to /login.
func (c *AuthController) Logout(ctx *fiber.Ctx) error {
	if err := c.auth.SignOut(ctx.UserContext(), ctx.Cookies(c.cookieName)); err != nil {
		log.Printf("Logout error: %v", err)
	}
	ctx.ClearCookie(c.cookieName)
	return ctx.JSON(fiber.Map{"redirect": "/login"})
}

// LoginErrorMessage turns a provider error into the sentence shown on the login form.
func LoginErrorMessage(err error) string {
	switch services.AuthCode(err) {
	case services.CodeInvalidEmail:
		return "Invalid email format."
	case services.CodeUserNotFound:
		return "No user found with this email."
	case services.CodeWrongPassword:
		return "Incorrect password."
	case services.CodeTooManyRequests:
		return "Too many login attempts. Please try again later."
	case services.CodeUserDisabled:
		return "This user account is disabled."
	default:
		return "Login failed: " + err.Error()
	}
}
