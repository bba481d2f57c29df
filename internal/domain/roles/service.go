package roles

import (
	"context"

	"github.com/rs/zerolog"
)

// Resolver turns a user id into a role. It never fails: any store fault or
// missing record resolves to the least-privileged role, so a lookup error
// can never be mistaken for elevated access.
type Resolver struct {
	repo   Repository
	logger zerolog.Logger
}

func NewResolver(repo Repository, logger zerolog.Logger) *Resolver {
	return &Resolver{repo: repo, logger: logger}
}

// Resolve returns the user's role, defaulting to RoleUser on any fault.
// The decision is computed fresh on every call; callers must not cache it
// across requests.
func (r *Resolver) Resolve(ctx context.Context, userID string) Role {
	if userID == "" {
		return RoleUser
	}
	stored, err := r.repo.GetRole(ctx, userID)
	if err != nil {
		r.logger.Warn().Err(err).
			Str("user_id", userID).
			Msg("role lookup failed, defaulting to user")
		return RoleUser
	}
	return ParseRole(stored)
}

// HasMedicalAccess re-resolves the role and reports whether the user may
// read patient data.
func (r *Resolver) HasMedicalAccess(ctx context.Context, userID string) bool {
	return r.Resolve(ctx, userID).HasMedicalAccess()
}
