package controllers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/Rohan-Kumar320/Export-Apparel-Admin/controllers"
	"github.com/Rohan-Kumar320/Export-Apparel-Admin/models"
	"github.com/Rohan-Kumar320/Export-Apparel-Admin/services"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newAuthApp(auth *MockAuthService, outcomes *[]string) *fiber.App {
	ctrl := controllers.NewAuthController(auth, "admin_session", false, func(outcome string) {
		*outcomes = append(*outcomes, outcome)
	})
	app := fiber.New()
	app.Get("/login", ctrl.LoginPage)
	app.Post("/login", ctrl.Login)
	app.Post("/logout", ctrl.Logout)
	return app
}

func TestAuthController_LoginPage(t *testing.T) {
	var outcomes []string
	app := newAuthApp(new(MockAuthService), &outcomes)

	resp, body := doJSON(t, app, http.MethodGet, "/login", nil)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "login", body["view"])
	assert.Equal(t, "Admin Login", body["title"])
}

func TestAuthController_Login_Success(t *testing.T) {
	auth := new(MockAuthService)
	auth.On("SignIn", mock.Anything, "staff@example.com", "secret1").
		Return(&models.Session{ID: "token-1", UserID: "u1", Email: "staff@example.com"}, nil)
	var outcomes []string
	app := newAuthApp(auth, &outcomes)

	resp, body := doForm(t, app, "/login", url.Values{"email": {"  staff@example.com "}, "password": {"secret1"}})

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Logged in successfully!", body["message"])
	assert.Equal(t, "/dashboard", body["redirect"])
	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == "admin_session" {
			cookie = c
		}
	}
	if assert.NotNil(t, cookie) {
		assert.Equal(t, "token-1", cookie.Value)
		assert.True(t, cookie.HttpOnly)
	}
	assert.Equal(t, []string{"ok"}, outcomes)
	auth.AssertExpectations(t)
}

func TestAuthController_Login_MissingFields(t *testing.T) {
	auth := new(MockAuthService)
	var outcomes []string
	app := newAuthApp(auth, &outcomes)

	resp, body := doForm(t, app, "/login", url.Values{"email": {"   "}, "password": {"x"}})

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Email and password are required.", body["error"])
	auth.AssertNotCalled(t, "SignIn", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthController_Login_ProviderError(t *testing.T) {
	auth := new(MockAuthService)
	auth.On("SignIn", mock.Anything, "staff@example.com", "wrong").
		Return(nil, &services.AuthError{Code: services.CodeWrongPassword, Message: "The password is invalid."})
	var outcomes []string
	app := newAuthApp(auth, &outcomes)

	resp, body := doJSON(t, app, http.MethodPost, "/login", map[string]string{"email": "staff@example.com", "password": "wrong"})

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Incorrect password.", body["error"])
	assert.Equal(t, []string{services.CodeWrongPassword}, outcomes)
}

func TestLoginErrorMessage(t *testing.T) {
	cases := []struct {
		code string
		want string
	}{
		{services.CodeInvalidEmail, "Invalid email format."},
		{services.CodeUserNotFound, "No user found with this email."},
		{services.CodeWrongPassword, "Incorrect password."},
		{services.CodeTooManyRequests, "Too many login attempts. Please try again later."},
		{services.CodeUserDisabled, "This user account is disabled."},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			err := &services.AuthError{Code: tc.code, Message: "provider text"}
			assert.Equal(t, tc.want, controllers.LoginErrorMessage(err))
		})
	}

	t.Run("other", func(t *testing.T) {
		err := errors.New("network unreachable")
		assert.Equal(t, "Login failed: network unreachable", controllers.LoginErrorMessage(err))
	})
}

func TestAuthController_Logout(t *testing.T) {
	auth := new(MockAuthService)
	auth.On("SignOut", mock.Anything, "token-1").Return(errors.New("store down"))
	var outcomes []string
	app := newAuthApp(auth, &outcomes)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: "admin_session", Value: "token-1"})
	resp, body := send(t, app, req)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "/login", body["redirect"])
	auth.AssertExpectations(t)
}
