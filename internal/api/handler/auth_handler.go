package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quickbites/auth-service/internal/api/metrics"
	"github.com/quickbites/auth-service/internal/core/domain"
	"github.com/quickbites/auth-service/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Signup registers a new user and returns a session token.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Registration payload"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]any
// @Failure      500   {object}  map[string]string
// @Router       /api/auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	token, user, err := h.authService.Signup(c.Request().Context(), req.toInput())
	if err != nil {
		metrics.SignupFailuresTotal.WithLabelValues(signupFailureReason(err)).Inc()
		return err
	}

	metrics.SignupsTotal.WithLabelValues(user.Role).Inc()
	return c.JSON(http.StatusCreated, authResponse{Token: token, User: newUserResponse(user)})
}

// Login authenticates a user and returns a session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	token, user, err := h.authService.Login(c.Request().Context(), domain.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		metrics.LoginFailuresTotal.WithLabelValues(loginFailureReason(err)).Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues(user.Role).Inc()
	return c.JSON(http.StatusOK, authResponse{Token: token, User: newUserResponse(user)})
}

func signupFailureReason(err error) string {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return "validation"
	case errors.Is(err, domain.ErrEmailTaken):
		return "duplicate_email"
	default:
		return "internal"
	}
}

func loginFailureReason(err error) string {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return "validation"
	case errors.Is(err, domain.ErrAccountNotFound), errors.Is(err, domain.ErrInvalidCredentials):
		return "credentials"
	case errors.Is(err, domain.ErrTooManyAttempts):
		return "throttled"
	default:
		return "internal"
	}
}
