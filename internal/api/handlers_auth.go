package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/mariveldt/velle/internal/services"
)

type registerRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

type loginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"remember_me"`
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	var request registerRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	user, err := handler.authService.Register(request.Email, request.Password, request.DisplayName)
	switch {
	case errors.Is(err, services.ErrInvalidEmail), errors.Is(err, services.ErrWeakPassword):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrEmailTaken):
		return apiError(c, fiber.StatusConflict, err.Error())
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "registration failed")
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	var request loginRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	user, err := handler.authService.Authenticate(request.Email, request.Password)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid email or password")
	}

	ttl := defaultAuthTokenTTL
	if request.RememberMe {
		ttl = rememberAuthTokenTTL
	}
	token, err := handler.buildToken(&user, ttl)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "login failed")
	}

	handler.setAuthCookie(c, token, request.RememberMe)
	return c.JSON(fiber.Map{"token": token, "user": user})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}
