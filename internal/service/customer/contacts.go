package customer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/ledgerline/ledgerline-backend/internal/auth"
	"github.com/ledgerline/ledgerline-backend/internal/domain"
)

// AddContact attaches a contact to a customer. Marking it primary
// demotes the previous primary in the same transaction.
func (s *Service) AddContact(ctx context.Context, input AddContactInput) (*domain.Contact, error) {
	p, err := auth.RequireWriter(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.customers.GetByID(ctx, p.CompanyID, input.CustomerID); err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}

	var contact *domain.Contact
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if input.IsPrimary {
			if unsetErr := s.customers.UnsetPrimary(txCtx, input.CustomerID); unsetErr != nil {
				return fmt.Errorf("unset primary: %w", unsetErr)
			}
		}

		var createErr error
		contact, createErr = s.customers.CreateContact(txCtx, &domain.Contact{
			ID:         uuid.New(),
			CustomerID: input.CustomerID,
			Name:       strings.TrimSpace(input.Name),
			Email:      trimOrNil(input.Email),
			Phone:      trimOrNil(input.Phone),
			Position:   trimOrNil(input.Position),
			IsPrimary:  input.IsPrimary,
		})
		if createErr != nil {
			return fmt.Errorf("create contact: %w", createErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "contact added",
		slog.String("company_id", p.CompanyID.String()),
		slog.String("customer_id", input.CustomerID.String()),
		slog.String("contact_id", contact.ID.String()),
	)

	return contact, nil
}

// UpdateContact changes mutable fields of a contact. Promoting to
// primary demotes the previous primary in the same transaction.
func (s *Service) UpdateContact(ctx context.Context, input UpdateContactInput) (*domain.Contact, error) {
	p, err := auth.RequireWriter(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.customers.GetContact(ctx, p.CompanyID, input.ContactID)
	if err != nil {
		return nil, fmt.Errorf("get contact: %w", err)
	}

	var contact *domain.Contact
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if input.IsPrimary != nil && *input.IsPrimary && !existing.IsPrimary {
			if unsetErr := s.customers.UnsetPrimary(txCtx, existing.CustomerID); unsetErr != nil {
				return fmt.Errorf("unset primary: %w", unsetErr)
			}
		}

		var updateErr error
		contact, updateErr = s.customers.UpdateContact(txCtx, input.ContactID, domain.ContactUpdateParams{
			Name:      input.Name,
			Email:     input.Email,
			Phone:     input.Phone,
			Position:  input.Position,
			IsPrimary: input.IsPrimary,
		})
		if updateErr != nil {
			return fmt.Errorf("update contact: %w", updateErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "contact updated",
		slog.String("company_id", p.CompanyID.String()),
		slog.String("contact_id", contact.ID.String()),
	)

	return contact, nil
}

// DeleteContact removes a contact from its customer.
func (s *Service) DeleteContact(ctx context.Context, contactID uuid.UUID) error {
	p, err := auth.RequireWriter(ctx)
	if err != nil {
		return err
	}
	if contactID == uuid.Nil {
		return domain.NewValidationError("contact_id", "required")
	}

	if _, err := s.customers.GetContact(ctx, p.CompanyID, contactID); err != nil {
		return fmt.Errorf("get contact: %w", err)
	}

	if err := s.customers.DeleteContact(ctx, contactID); err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}

	s.log.InfoContext(ctx, "contact deleted",
		slog.String("company_id", p.CompanyID.String()),
		slog.String("contact_id", contactID.String()),
	)

	return nil
}
