package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/diazeddy/dataset-api/internal/usecase"
)

// AuthHandler exposes sign-up and sign-in over HTTP.
type AuthHandler struct {
	uc *usecase.AuthUsecase
}

func NewAuthHandler(uc *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// SignUp registers a new user. Responds 201 with a token, or 409 when the
// email is taken.
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req UserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body.",
		})
	}

	token, err := h.uc.SignUp(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrUserAlreadyExists) {
			return c.JSON(http.StatusConflict, MessageResponse{
				Code:    http.StatusConflict,
				Message: "User already exists",
			})
		}
		return c.JSON(http.StatusInternalServerError, MessageResponse{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusCreated, TokenResponse{Token: token})
}

// SignIn authenticates an existing user. The 401 body is identical for an
// unknown email and a wrong password.
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req UserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body.",
		})
	}

	token, err := h.uc.SignIn(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, MessageResponse{
				Code:    http.StatusUnauthorized,
				Message: "Invalid email or password.",
			})
		}
		return c.JSON(http.StatusInternalServerError, MessageResponse{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, TokenResponse{Token: token})
}
