package graphql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/ledgerline/ledgerline-backend/internal/domain"
)

func TestPresentError_Codes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		code string
	}{
		{"not found", fmt.Errorf("get account: %w", domain.ErrNotFound), "NOT_FOUND"},
		{"already exists", fmt.Errorf("create user: %w", domain.ErrAlreadyExists), "ALREADY_EXISTS"},
		{"unauthorized", domain.ErrUnauthorized, "UNAUTHENTICATED"},
		{"forbidden", domain.ErrForbidden, "FORBIDDEN"},
		{"conflict", fmt.Errorf("invoice is PAID: %w", domain.ErrConflict), "CONFLICT"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := presentError(context.Background(), slog.Default(), tc.err)

			var api *apiError
			if !errors.As(got, &api) {
				t.Fatalf("expected *apiError, got %T", got)
			}
			if api.Extensions()["code"] != tc.code {
				t.Errorf("code: got %v, want %s", api.Extensions()["code"], tc.code)
			}
		})
	}
}

func TestPresentError_ValidationFields(t *testing.T) {
	t.Parallel()

	err := &domain.ValidationError{Errors: []domain.FieldError{
		{Field: "name", Message: "required"},
		{Field: "currency", Message: "must be a 3-letter code"},
	}}

	got := presentError(context.Background(), slog.Default(), err)

	var api *apiError
	if !errors.As(got, &api) {
		t.Fatalf("expected *apiError, got %T", got)
	}
	if api.Extensions()["code"] != "VALIDATION" {
		t.Errorf("code: got %v, want VALIDATION", api.Extensions()["code"])
	}

	fields, ok := api.Extensions()["fields"].([]map[string]string)
	if !ok {
		t.Fatalf("fields: unexpected type %T", api.Extensions()["fields"])
	}
	if len(fields) != 2 {
		t.Fatalf("fields: got %d, want 2", len(fields))
	}
	if fields[0]["field"] != "name" || fields[0]["message"] != "required" {
		t.Errorf("first field: got %v", fields[0])
	}
}

func TestPresentError_MasksInternal(t *testing.T) {
	t.Parallel()

	got := presentError(context.Background(), slog.Default(), errors.New("pq: connection refused"))

	var api *apiError
	if !errors.As(got, &api) {
		t.Fatalf("expected *apiError, got %T", got)
	}
	if api.Extensions()["code"] != "INTERNAL" {
		t.Errorf("code: got %v, want INTERNAL", api.Extensions()["code"])
	}
	if api.Error() != "internal server error" {
		t.Errorf("message: got %q, want the generic message", api.Error())
	}
}

func TestPresentError_UnauthorizedHidesDetail(t *testing.T) {
	t.Parallel()

	got := presentError(context.Background(), slog.Default(), fmt.Errorf("lookup: %w", domain.ErrUnauthorized))

	var api *apiError
	if !errors.As(got, &api) {
		t.Fatalf("expected *apiError, got %T", got)
	}
	if api.Error() != "authentication required" {
		t.Errorf("message: got %q, want the generic message", api.Error())
	}
}
