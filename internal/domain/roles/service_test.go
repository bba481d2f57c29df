package roles

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/marqhealth/clinic/internal/platform/auth"
)

// -- Mock Role Repository --

type mockRepo struct {
	roles map[string]string
	err   error
}

func (m *mockRepo) GetRole(_ context.Context, userID string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	role, ok := m.roles[userID]
	if !ok {
		return "", fmt.Errorf("not found")
	}
	return role, nil
}

func newTestResolver(repo Repository) *Resolver {
	return NewResolver(repo, zerolog.Nop())
}

// -- Tests --

func TestResolve_KnownRoles(t *testing.T) {
	resolver := newTestResolver(&mockRepo{roles: map[string]string{
		"u1": "super_admin",
		"u2": "admin",
		"u3": "doctor",
		"u4": "user",
	}})

	cases := map[string]Role{
		"u1": RoleSuperAdmin,
		"u2": RoleAdmin,
		"u3": RoleDoctor,
		"u4": RoleUser,
	}
	for userID, want := range cases {
		if got := resolver.Resolve(context.Background(), userID); got != want {
			t.Errorf("Resolve(%s) = %s, want %s", userID, got, want)
		}
	}
}

func TestResolve_MissingRecordDefaultsToUser(t *testing.T) {
	resolver := newTestResolver(&mockRepo{roles: map[string]string{}})

	role := resolver.Resolve(context.Background(), "unknown")
	if role != RoleUser {
		t.Fatalf("expected user role for missing record, got %s", role)
	}
	if role.HasMedicalAccess() {
		t.Error("default role must not have medical access")
	}
}

func TestResolve_LookupErrorDefaultsToUser(t *testing.T) {
	resolver := newTestResolver(&mockRepo{err: fmt.Errorf("connection refused")})

	if got := resolver.Resolve(context.Background(), "u1"); got != RoleUser {
		t.Fatalf("expected user role on lookup error, got %s", got)
	}
}

func TestResolve_UnrecognizedValueDefaultsToUser(t *testing.T) {
	resolver := newTestResolver(&mockRepo{roles: map[string]string{"u1": "root"}})

	if got := resolver.Resolve(context.Background(), "u1"); got != RoleUser {
		t.Fatalf("expected user role for unrecognized value, got %s", got)
	}
}

func TestResolve_EmptyUserID(t *testing.T) {
	resolver := newTestResolver(&mockRepo{roles: map[string]string{"": "admin"}})

	if got := resolver.Resolve(context.Background(), ""); got != RoleUser {
		t.Fatalf("expected user role for empty user id, got %s", got)
	}
}

func TestHasMedicalAccess(t *testing.T) {
	cases := []struct {
		role Role
		want bool
	}{
		{RoleSuperAdmin, true},
		{RoleAdmin, true},
		{RoleDoctor, true},
		{RoleUser, false},
	}
	for _, tc := range cases {
		if got := tc.role.HasMedicalAccess(); got != tc.want {
			t.Errorf("%s.HasMedicalAccess() = %v, want %v", tc.role, got, tc.want)
		}
	}
}

func TestHasMedicalAccess_NoCaching(t *testing.T) {
	repo := &mockRepo{roles: map[string]string{"u1": "doctor"}}
	resolver := newTestResolver(repo)

	if !resolver.HasMedicalAccess(context.Background(), "u1") {
		t.Fatal("expected access for doctor")
	}

	// Role changes in the store; the very next check must see it.
	repo.roles["u1"] = "user"
	if resolver.HasMedicalAccess(context.Background(), "u1") {
		t.Fatal("expected access revoked after role change")
	}
}

func TestDisplayLabel(t *testing.T) {
	cases := map[Role]string{
		RoleSuperAdmin: "Super Administrador",
		RoleAdmin:      "Administrador",
		RoleDoctor:     "Médico",
		RoleUser:       "Recepção",
	}
	for role, want := range cases {
		if got := role.DisplayLabel(); got != want {
			t.Errorf("%s.DisplayLabel() = %q, want %q", role, got, want)
		}
	}
}

// -- Middleware --

func TestRequireMedicalAccess_Allowed(t *testing.T) {
	resolver := newTestResolver(&mockRepo{roles: map[string]string{"u1": "doctor"}})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(auth.WithIdentity(req.Context(), auth.Identity{UserID: "u1"}))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := RequireMedicalAccess(resolver)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := h(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRequireMedicalAccess_Forbidden(t *testing.T) {
	resolver := newTestResolver(&mockRepo{roles: map[string]string{"u1": "user"}})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(auth.WithIdentity(req.Context(), auth.Identity{UserID: "u1"}))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := RequireMedicalAccess(resolver)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	err := h(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", err)
	}
}

func TestRequireMedicalAccess_Unauthenticated(t *testing.T) {
	resolver := newTestResolver(&mockRepo{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := RequireMedicalAccess(resolver)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	err := h(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
