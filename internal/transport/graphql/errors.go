package graphql

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ledgerline/ledgerline-backend/internal/domain"
	"github.com/ledgerline/ledgerline-backend/pkg/ctxutil"
)

// Error codes exposed to API clients in the extensions.code field.
const (
	codeNotFound        = "NOT_FOUND"
	codeAlreadyExists   = "ALREADY_EXISTS"
	codeValidation      = "VALIDATION"
	codeUnauthenticated = "UNAUTHENTICATED"
	codeForbidden       = "FORBIDDEN"
	codeConflict        = "CONFLICT"
	codeInternal        = "INTERNAL"
)

// apiError is the error type returned to the GraphQL engine. It implements
// gqlerrors.ExtendedError so the code (and validation field details) land
// in the response extensions.
type apiError struct {
	message    string
	extensions map[string]any
}

func (e *apiError) Error() string { return e.message }

func (e *apiError) Extensions() map[string]any { return e.extensions }

// presentError converts a domain error into an apiError with a stable
// client-facing code. Unknown errors are logged with the request ID and
// masked as INTERNAL so internals never leak to clients.
func presentError(ctx context.Context, log *slog.Logger, err error) error {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		fields := make([]map[string]string, 0, len(vErr.Errors))
		for _, fe := range vErr.Errors {
			fields = append(fields, map[string]string{
				"field":   fe.Field,
				"message": fe.Message,
			})
		}
		return &apiError{
			message: vErr.Error(),
			extensions: map[string]any{
				"code":   codeValidation,
				"fields": fields,
			},
		}
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return &apiError{message: err.Error(), extensions: map[string]any{"code": codeNotFound}}
	case errors.Is(err, domain.ErrAlreadyExists):
		return &apiError{message: err.Error(), extensions: map[string]any{"code": codeAlreadyExists}}
	case errors.Is(err, domain.ErrValidation):
		return &apiError{message: err.Error(), extensions: map[string]any{"code": codeValidation}}
	case errors.Is(err, domain.ErrUnauthorized):
		return &apiError{message: "authentication required", extensions: map[string]any{"code": codeUnauthenticated}}
	case errors.Is(err, domain.ErrForbidden):
		return &apiError{message: "permission denied", extensions: map[string]any{"code": codeForbidden}}
	case errors.Is(err, domain.ErrConflict):
		return &apiError{message: err.Error(), extensions: map[string]any{"code": codeConflict}}
	}

	log.ErrorContext(ctx, "internal error",
		"error", err,
		"request_id", ctxutil.RequestIDFromCtx(ctx),
	)
	return &apiError{message: "internal server error", extensions: map[string]any{"code": codeInternal}}
}
