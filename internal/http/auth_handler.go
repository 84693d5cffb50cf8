package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bughunt-platform.com/bughunt-platform/internal/constants"
	dto "bughunt-platform.com/bughunt-platform/internal/data_models"
	"bughunt-platform.com/bughunt-platform/internal/http/validators"
	"bughunt-platform.com/bughunt-platform/internal/services"
)

type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateRegisterRequest(&req); err != nil {
		return err
	}

	user, err := h.auth.Register(
		c.Request().Context(),
		req.Username,
		req.Email,
		req.Password,
		constants.Role(req.Role),
	)
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Registration successful. Awaiting admin approval.",
		"user":    user,
	})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	result, err := h.auth.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, result)
}

func (h *AuthHandler) PendingUsers(c echo.Context) error {
	users, err := h.auth.PendingUsers(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, users)
}

func (h *AuthHandler) ApproveUser(c echo.Context) error {
	var req dto.UserActionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	if err := h.auth.ApproveUser(c.Request().Context(), req.Username); err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "User approved"})
}

func (h *AuthHandler) RejectUser(c echo.Context) error {
	var req dto.UserActionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	if err := h.auth.RejectUser(c.Request().Context(), req.Username); err != nil {
		return respondError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "User rejected"})
}
