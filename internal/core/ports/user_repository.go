package ports

import (
	"context"

	"github.com/quickbites/auth-service/internal/core/domain"
)

// UserRepository is the credential store: one document per user, keyed
// by unique normalized email. Callers pass already-normalized emails.
type UserRepository interface {
	// FindByEmail returns domain.ErrUserNotFound when no record exists.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByEmailAndRole matches both fields in a single lookup, so a
	// wrong role misses identically to an unknown email.
	FindByEmailAndRole(ctx context.Context, email, role string) (*domain.User, error)
	// Insert persists a new record. The store's unique email constraint
	// is the authoritative duplicate guard: a constraint violation comes
	// back as domain.ErrEmailTaken.
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
}
