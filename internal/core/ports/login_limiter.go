package ports

import "context"

// LoginLimiter throttles repeated failed logins per normalized email.
// The limiter is advisory hardening: the auth service treats a nil
// limiter as disabled and tolerates limiter errors (failing open keeps
// logins working when the backing store is down).
type LoginLimiter interface {
	TooManyAttempts(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}
