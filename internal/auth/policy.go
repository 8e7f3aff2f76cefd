// Package auth provides token handling and the authorization policy
// applied uniformly by every service operation: resolve the caller from
// context, then optionally require a role. Tenant scoping itself happens
// in repository queries (WHERE company_id = ...), so a cross-tenant ID
// surfaces as a plain not-found.
package auth

import (
	"context"
	"slices"

	"github.com/ledgerline/ledgerline-backend/internal/domain"
	"github.com/ledgerline/ledgerline-backend/pkg/ctxutil"
)

// Require returns the authenticated caller or ErrUnauthorized.
func Require(ctx context.Context) (domain.Principal, error) {
	p, ok := ctxutil.PrincipalFromCtx(ctx)
	if !ok {
		return domain.Principal{}, domain.ErrUnauthorized
	}
	return p, nil
}

// RequireRole returns the authenticated caller if their role is in the
// allowed set. Anonymous callers get ErrUnauthorized; authenticated
// callers with an insufficient role get ErrForbidden.
func RequireRole(ctx context.Context, roles ...domain.UserRole) (domain.Principal, error) {
	p, err := Require(ctx)
	if err != nil {
		return domain.Principal{}, err
	}
	if !slices.Contains(roles, p.Role) {
		return domain.Principal{}, domain.ErrForbidden
	}
	return p, nil
}

// RequireWriter returns the caller unless their role is read-only.
// Viewers can query everything in their tenant but mutate nothing.
func RequireWriter(ctx context.Context) (domain.Principal, error) {
	p, err := Require(ctx)
	if err != nil {
		return domain.Principal{}, err
	}
	if p.Role == domain.UserRoleViewer {
		return domain.Principal{}, domain.ErrForbidden
	}
	return p, nil
}
