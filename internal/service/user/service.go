package user

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/ledgerline/ledgerline-backend/internal/domain"
)

type userRepo interface {
	GetByID(ctx context.Context, companyID, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, companyID uuid.UUID) ([]domain.User, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	UpdateRole(ctx context.Context, companyID, id uuid.UUID, role domain.UserRole) (*domain.User, error)
	Delete(ctx context.Context, companyID, id uuid.UUID) error
	CountByRole(ctx context.Context, companyID uuid.UUID, role domain.UserRole) (int, error)
}

type companyRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error)
	Update(ctx context.Context, id uuid.UUID, params domain.CompanyUpdateParams) (*domain.Company, error)
}

type passwordHasher interface {
	Hash(password string) (string, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides company profile and user management operations.
type Service struct {
	users     userRepo
	companies companyRepo
	hasher    passwordHasher
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new User service.
func NewService(log *slog.Logger, users userRepo, companies companyRepo, hasher passwordHasher, tx txManager) *Service {
	return &Service{
		users:     users,
		companies: companies,
		hasher:    hasher,
		tx:        tx,
		log:       log.With("service", "user"),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
