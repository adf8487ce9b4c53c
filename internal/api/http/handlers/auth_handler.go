package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/hospital-platform/auth-service/internal/api/dto"
	"github.com/hospital-platform/auth-service/internal/service"
)

// AuthHandler exposes the issuance endpoints: login and register.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Username == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "username and password required")
	}

	user, token, _, err := h.auth.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(dto.LoginResponse{
		Token:    token,
		Username: user.Username,
		Role:     string(user.Role),
		Name:     user.Name,
	})
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Username == "" || req.Password == "" || req.Name == "" || req.Role == "" {
		return fiber.NewError(http.StatusBadRequest, "username, name, password, role required")
	}

	user, err := h.auth.Register(c.Context(), req.Username, req.Name, req.Password, req.Role)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Name:      user.Name,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
	})
}
