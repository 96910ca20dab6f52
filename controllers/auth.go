package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/benluxnails/salon-web/cms"
	"github.com/benluxnails/salon-web/middleware"
	"github.com/benluxnails/salon-web/models"
	"github.com/benluxnails/salon-web/roles"
	"github.com/benluxnails/salon-web/session"
	"github.com/benluxnails/salon-web/utils"
)

const pendingAccountNotice = "Tu cuenta está pendiente de validación por un administrador. Pronto te aprobarán y podrás ingresar."

type AuthController struct {
	Sessions *session.Manager
	Resolver *roles.Resolver
	Cookie   string
	TTL      time.Duration
}

// Login handles credential exchange. A successful exchange whose account
// status is not approved (or one of the observed admin/validator values) is
// immediately logged out again.
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	type loginInput struct {
		Identifier string `json:"identifier"`
		Password   string `json:"password"`
	}
	input := new(loginInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if input.Identifier == "" || input.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields",
		})
	}

	sid, auth, err := ctl.Sessions.Login(input.Identifier, input.Password)
	if err != nil {
		return backendError(c, err, "Failed to sign in")
	}

	if !models.CanSignIn(auth.User.AccountStatus) {
		ctl.Sessions.Logout(sid)
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": pendingAccountNotice,
		})
	}

	ctl.setSessionCookie(c, sid)
	return c.JSON(fiber.Map{"user": auth.User})
}

// Register creates the account and establishes a session for it. Fresh
// accounts are pending; the booking gate keeps them read-only until an
// administrator approves them.
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	type registerInput struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
		Phone    string `json:"phone"`
	}
	input := new(registerInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if input.Username == "" || input.Email == "" || input.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields",
		})
	}

	sid, auth, err := ctl.Sessions.Register(cms.RegisterInput{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
		Name:     input.Name,
		Phone:    input.Phone,
	})
	if err != nil {
		return backendError(c, err, "Failed to register user")
	}

	ctl.setSessionCookie(c, sid)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"user": auth.User})
}

// Logout destroys the session and clears the cookie.
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	if sid, ok := c.Locals("sessionID").(string); ok {
		ctl.Sessions.Logout(sid)
	}
	if token, ok := c.Locals("token").(string); ok && ctl.Resolver != nil {
		ctl.Resolver.Forget(token)
	}
	c.ClearCookie(ctl.Cookie)
	return c.JSON(fiber.Map{"message": "Successfully logged out"})
}

// Me returns the rehydrated session user.
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)
	return c.JSON(user)
}

func (ctl *AuthController) setSessionCookie(c *fiber.Ctx, sid string) {
	c.Cookie(&fiber.Cookie{
		Name:     ctl.Cookie,
		Value:    sid,
		Path:     "/",
		Expires:  time.Now().Add(ctl.TTL),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

// backendError surfaces a backend failure: the backend's own message keeps
// its status code, anything else degrades to a bad-gateway response.
func backendError(c *fiber.Ctx, err error, fallback string) error {
	var apiErr *cms.APIError
	if errors.As(err, &apiErr) {
		return c.Status(apiErr.Status).JSON(fiber.Map{
			"error": apiErr.Message,
		})
	}
	return c.Status(fiber.StatusBadGateway).JSON(utils.ErrorResponse{
		Message: fallback,
		Error:   err.Error(),
	})
}
