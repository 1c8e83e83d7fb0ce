package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/quickbites/auth-service/internal/core/domain"
)

// messageResponse is the error envelope for everything except
// validation failures.
type messageResponse struct {
	Message string `json:"message"`
}

// validationResponse enumerates every violated field of a payload.
type validationResponse struct {
	Errors []domain.FieldError `json:"errors"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders validation failures as the full field-error list.
//   - Maps known domain errors to their contract statuses and bodies.
//   - Logs unexpected errors internally and answers with an opaque
//     "Server error" so nothing about the failure leaks.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			_ = c.JSON(http.StatusBadRequest, validationResponse{Errors: verr.Fields})
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, messageResponse{Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic statuses and bodies. The two
	// 401 messages are the only distinction login failures ever expose;
	// neither reveals whether the email exists.
	switch {
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusBadRequest, "Email already exists"
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusUnauthorized, "Invalid credentials or role"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, domain.ErrTooManyAttempts):
		return http.StatusTooManyRequests, "Too many attempts"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Server error"
}
