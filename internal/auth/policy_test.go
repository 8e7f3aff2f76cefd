package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/ledgerline/ledgerline-backend/internal/domain"
	"github.com/ledgerline/ledgerline-backend/pkg/ctxutil"
)

func ctxWithRole(role domain.UserRole) context.Context {
	return ctxutil.WithPrincipal(context.Background(), domain.Principal{
		UserID:    uuid.New(),
		Role:      role,
		CompanyID: uuid.New(),
	})
}

func TestRequire(t *testing.T) {
	t.Parallel()

	if _, err := Require(context.Background()); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("anonymous: got %v, want unauthorized", err)
	}

	p, err := Require(ctxWithRole(domain.UserRoleViewer))
	if err != nil {
		t.Fatalf("authenticated: unexpected error %v", err)
	}
	if p.Role != domain.UserRoleViewer {
		t.Errorf("role: got %s, want VIEWER", p.Role)
	}
}

func TestRequireRole(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		role    domain.UserRole
		allowed []domain.UserRole
		wantErr error
	}{
		{"owner allowed", domain.UserRoleOwner, []domain.UserRole{domain.UserRoleOwner, domain.UserRoleAdmin}, nil},
		{"admin allowed", domain.UserRoleAdmin, []domain.UserRole{domain.UserRoleOwner, domain.UserRoleAdmin}, nil},
		{"member forbidden", domain.UserRoleMember, []domain.UserRole{domain.UserRoleOwner, domain.UserRoleAdmin}, domain.ErrForbidden},
		{"viewer forbidden", domain.UserRoleViewer, []domain.UserRole{domain.UserRoleOwner}, domain.ErrForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := RequireRole(ctxWithRole(tc.role), tc.allowed...)
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("got %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestRequireRole_Anonymous(t *testing.T) {
	t.Parallel()

	_, err := RequireRole(context.Background(), domain.UserRoleOwner)
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("got %v, want unauthorized", err)
	}
}

func TestRequireWriter(t *testing.T) {
	t.Parallel()

	for _, role := range []domain.UserRole{domain.UserRoleOwner, domain.UserRoleAdmin, domain.UserRoleMember} {
		if _, err := RequireWriter(ctxWithRole(role)); err != nil {
			t.Errorf("%s: unexpected error %v", role, err)
		}
	}

	if _, err := RequireWriter(ctxWithRole(domain.UserRoleViewer)); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("viewer: got %v, want forbidden", err)
	}
	if _, err := RequireWriter(context.Background()); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("anonymous: got %v, want unauthorized", err)
	}
}

func TestPasswordHasher_RoundTrip(t *testing.T) {
	t.Parallel()

	h := NewPasswordHasher(4)

	hash, err := h.Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	if !h.Compare(hash, "correct horse battery staple") {
		t.Error("expected matching password to compare true")
	}
	if h.Compare(hash, "wrong password") {
		t.Error("expected wrong password to compare false")
	}
}
