package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/ledgerline/ledgerline-backend/internal/auth"
	"github.com/ledgerline/ledgerline-backend/internal/domain"
)

// Me returns the authenticated user's own record.
func (s *Service) Me(ctx context.Context) (*domain.User, error) {
	p, err := auth.Require(ctx)
	if err != nil {
		return nil, err
	}

	u, err := s.users.GetByID(ctx, p.CompanyID, p.UserID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return u, nil
}

// ListUsers returns all members of the caller's company.
func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	p, err := auth.Require(ctx)
	if err != nil {
		return nil, err
	}

	users, err := s.users.List(ctx, p.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}

// InviteUser adds a member to the caller's company with an initial
// password. Owners and admins only; a second owner cannot be created.
func (s *Service) InviteUser(ctx context.Context, input InviteUserInput) (*domain.User, error) {
	p, err := auth.RequireRole(ctx, domain.UserRoleOwner, domain.UserRoleAdmin)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u, err := s.users.Create(ctx, &domain.User{
		ID:           uuid.New(),
		CompanyID:    p.CompanyID,
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		Name:         strings.TrimSpace(input.Name),
		PasswordHash: hash,
		Role:         input.Role,
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.InfoContext(ctx, "user invited",
		slog.String("company_id", p.CompanyID.String()),
		slog.String("user_id", u.ID.String()),
		slog.String("role", u.Role.String()),
	)

	return u, nil
}

// UpdateUserRole changes a member's role. The last owner cannot be
// demoted, so every company keeps at least one.
func (s *Service) UpdateUserRole(ctx context.Context, input UpdateUserRoleInput) (*domain.User, error) {
	p, err := auth.RequireRole(ctx, domain.UserRoleOwner, domain.UserRoleAdmin)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	target, err := s.users.GetByID(ctx, p.CompanyID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if target.Role == domain.UserRoleOwner && input.Role != domain.UserRoleOwner {
		owners, countErr := s.users.CountByRole(ctx, p.CompanyID, domain.UserRoleOwner)
		if countErr != nil {
			return nil, fmt.Errorf("count owners: %w", countErr)
		}
		if owners <= 1 {
			return nil, fmt.Errorf("cannot demote the last owner: %w", domain.ErrConflict)
		}
	}

	u, err := s.users.UpdateRole(ctx, p.CompanyID, input.UserID, input.Role)
	if err != nil {
		return nil, fmt.Errorf("update role: %w", err)
	}

	s.log.InfoContext(ctx, "user role changed",
		slog.String("company_id", p.CompanyID.String()),
		slog.String("user_id", u.ID.String()),
		slog.String("role", u.Role.String()),
	)

	return u, nil
}

// RemoveUser removes a member from the company. Only owners may remove
// users; callers cannot remove themselves, and the last owner cannot be
// removed.
func (s *Service) RemoveUser(ctx context.Context, userID uuid.UUID) error {
	p, err := auth.RequireRole(ctx, domain.UserRoleOwner)
	if err != nil {
		return err
	}
	if userID == uuid.Nil {
		return domain.NewValidationError("user_id", "required")
	}
	if userID == p.UserID {
		return fmt.Errorf("cannot remove yourself: %w", domain.ErrConflict)
	}

	target, err := s.users.GetByID(ctx, p.CompanyID, userID)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	if target.Role == domain.UserRoleOwner {
		owners, countErr := s.users.CountByRole(ctx, p.CompanyID, domain.UserRoleOwner)
		if countErr != nil {
			return fmt.Errorf("count owners: %w", countErr)
		}
		if owners <= 1 {
			return fmt.Errorf("cannot remove the last owner: %w", domain.ErrConflict)
		}
	}

	if err := s.users.Delete(ctx, p.CompanyID, userID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	s.log.InfoContext(ctx, "user removed",
		slog.String("company_id", p.CompanyID.String()),
		slog.String("user_id", userID.String()),
	)

	return nil
}
