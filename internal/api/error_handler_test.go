package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/quickbites/auth-service/internal/api/handler"
	"github.com/quickbites/auth-service/internal/core/domain"
)

type cannedAuthService struct {
	err error
}

func (s *cannedAuthService) Signup(context.Context, domain.SignupInput) (string, *domain.User, error) {
	return "", nil, s.err
}

func (s *cannedAuthService) Login(context.Context, domain.LoginInput) (string, *domain.User, error) {
	return "", nil, s.err
}

// newTestServer wires a real echo instance with the central error
// handler so responses carry the exact contract bodies.
func newTestServer(svcErr error) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())

	h := handler.NewAuthHandler(&cannedAuthService{err: svcErr})
	e.POST("/api/auth/signup", h.Signup)
	e.POST("/api/auth/login", h.Login)
	return e
}

func doJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestErrorHandler_DuplicateEmail(t *testing.T) {
	e := newTestServer(domain.ErrEmailTaken)

	rec := doJSON(e, "/api/auth/signup", `{"email":"a@b.com"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Email already exists" {
		t.Fatalf("unexpected body: %v", resp)
	}
}

func TestErrorHandler_ValidationErrors(t *testing.T) {
	verr := &domain.ValidationError{Fields: []domain.FieldError{
		domain.NewFieldError("email", "Invalid email"),
		domain.NewFieldError("fullName", "Full name is required for customers"),
	}}
	e := newTestServer(verr)

	rec := doJSON(e, "/api/auth/signup", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp struct {
		Errors []domain.FieldError `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Errors) != 2 {
		t.Fatalf("expected both errors, got %+v", resp.Errors)
	}
	first := resp.Errors[0]
	if first.Type != "field" || first.Location != "body" || first.Path != "email" || first.Msg != "Invalid email" {
		t.Fatalf("unexpected error item: %+v", first)
	}
}

func TestErrorHandler_LoginFailures(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"unknown account", domain.ErrAccountNotFound, http.StatusUnauthorized, "Invalid credentials or role"},
		{"wrong password", domain.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
		{"throttled", domain.ErrTooManyAttempts, http.StatusTooManyRequests, "Too many attempts"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestServer(tc.err)
			rec := doJSON(e, "/api/auth/login", `{"email":"a@b.com","password":"x","role":"customer"}`)
			if rec.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, rec.Code)
			}
			var resp map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp["message"] != tc.message {
				t.Fatalf("expected %q, got %v", tc.message, resp)
			}
		})
	}
}

func TestErrorHandler_UnexpectedErrorIsOpaque(t *testing.T) {
	e := newTestServer(errors.New("mongo: socket was unexpectedly closed"))

	rec := doJSON(e, "/api/auth/signup", `{"email":"a@b.com"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	body := rec.Body.String()
	if strings.Contains(body, "socket") {
		t.Fatalf("internal details leaked: %s", body)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Server error" {
		t.Fatalf("unexpected body: %v", resp)
	}
}
