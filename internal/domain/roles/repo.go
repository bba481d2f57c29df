package roles

import "context"

// Repository looks up the stored role attribute for a user. Exactly one
// role per user; a missing row is reported as an error and absorbed by the
// resolver.
type Repository interface {
	GetRole(ctx context.Context, userID string) (string, error)
}
