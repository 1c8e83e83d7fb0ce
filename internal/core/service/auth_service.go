package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/quickbites/auth-service/internal/auth"
	"github.com/quickbites/auth-service/internal/core/domain"
	"github.com/quickbites/auth-service/internal/core/ports"
	"github.com/quickbites/auth-service/internal/core/validation"
	"github.com/quickbites/auth-service/internal/security"
)

// AuthService implements signup and login. Each request is stateless;
// the repository is the only shared resource.
type AuthService struct {
	repo    ports.UserRepository
	hasher  security.PasswordHasher
	tokens  *auth.TokenManager
	limiter ports.LoginLimiter
	log     zerolog.Logger
}

// NewAuthService wires the auth flow. limiter may be nil to disable
// login throttling.
func NewAuthService(repo ports.UserRepository, hasher security.PasswordHasher, tokens *auth.TokenManager, limiter ports.LoginLimiter, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, limiter: limiter, log: log}
}

// Signup validates the payload, enforces email uniqueness, hashes the
// password and persists a record carrying only the profile fields of
// the requested role, then issues a token. Nothing is persisted when
// validation fails.
func (s *AuthService) Signup(ctx context.Context, in domain.SignupInput) (string, *domain.User, error) {
	if verr := validation.Signup(in); verr != nil {
		return "", nil, verr
	}

	email := domain.NormalizeEmail(in.Email)

	// Pre-check gives the common duplicate a fast answer; the unique
	// index on the collection is the guard against the concurrent race.
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return "", nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, fmt.Errorf("lookup email: %w", err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return "", nil, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.repo.Insert(ctx, buildUser(in, email, hash))
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return "", nil, domain.ErrEmailTaken
		}
		return "", nil, fmt.Errorf("insert user: %w", err)
	}

	token, err := s.tokens.Issue(created.ID, created.Role)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	return token, created, nil
}

// Login validates the payload, finds the record matching both the
// normalized email and the role, verifies the password hash and issues
// a token. A missing record and a wrong password both answer with a
// credentials error so callers cannot probe which factor was wrong.
func (s *AuthService) Login(ctx context.Context, in domain.LoginInput) (string, *domain.User, error) {
	if verr := validation.Login(in); verr != nil {
		return "", nil, verr
	}

	email := domain.NormalizeEmail(in.Email)

	if s.limiter != nil {
		blocked, err := s.limiter.TooManyAttempts(ctx, email)
		if err != nil {
			// Fail open: a broken throttle must not lock out logins.
			s.log.Warn().Err(err).Msg("login throttle check failed")
		} else if blocked {
			return "", nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.repo.FindByEmailAndRole(ctx, email, in.Role)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordFailure(ctx, email)
			return "", nil, domain.ErrAccountNotFound
		}
		return "", nil, fmt.Errorf("lookup user: %w", err)
	}

	if !s.hasher.Verify(in.Password, user.PasswordHash) {
		s.recordFailure(ctx, email)
		return "", nil, domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, email); err != nil {
			s.log.Warn().Err(err).Msg("login throttle reset failed")
		}
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	return token, user, nil
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	if s.limiter == nil {
		return
	}
	if err := s.limiter.RecordFailure(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("login throttle record failed")
	}
}

// buildUser maps the validated input onto a user record, keeping only
// the profile variant matching the role. Fields submitted for other
// roles are dropped rather than stored.
func buildUser(in domain.SignupInput, email, hash string) *domain.User {
	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
		Role:         in.Role,
		PhoneNumber:  in.PhoneNumber,
		CreatedAt:    time.Now().UTC(),
	}

	switch in.Role {
	case domain.RoleCustomer:
		user.Customer = &domain.CustomerProfile{FullName: in.FullName, Address: in.Address}
	case domain.RoleVendor:
		user.Vendor = &domain.VendorProfile{BusinessName: in.BusinessName}
	case domain.RoleDelivery:
		user.Delivery = &domain.DeliveryProfile{
			VehicleType:               in.VehicleType,
			VehicleRegistrationNumber: in.VehicleRegistrationNumber,
		}
	}

	return user
}
