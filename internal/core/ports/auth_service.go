package ports

import (
	"context"

	"github.com/quickbites/auth-service/internal/core/domain"
)

// AuthService exposes the two credential operations.
type AuthService interface {
	Signup(ctx context.Context, in domain.SignupInput) (token string, user *domain.User, err error)
	Login(ctx context.Context, in domain.LoginInput) (token string, user *domain.User, err error)
}
