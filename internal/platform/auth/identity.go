package auth

import "context"

type contextKey string

const (
	userIDKey contextKey = "user_id"
	emailKey  contextKey = "user_email"
)

// Identity is the already-authenticated user handle the record viewer
// consumes. Credentials are issued by the external auth provider; this
// package only validates and unpacks them.
type Identity struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// WithIdentity returns a context carrying the authenticated identity.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	ctx = context.WithValue(ctx, userIDKey, id.UserID)
	return context.WithValue(ctx, emailKey, id.Email)
}

// IdentityFromContext returns the authenticated identity, if any.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	uid, _ := ctx.Value(userIDKey).(string)
	email, _ := ctx.Value(emailKey).(string)
	if uid == "" {
		return Identity{}, false
	}
	return Identity{UserID: uid, Email: email}, true
}

// UserIDFromContext returns the authenticated user id, or "" when the
// request carries no identity.
func UserIDFromContext(ctx context.Context) string {
	uid, _ := ctx.Value(userIDKey).(string)
	return uid
}
