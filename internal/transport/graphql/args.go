package graphql

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerline/ledgerline-backend/internal/domain"
)

// Argument extraction helpers. graphql-go hands resolver args as
// map[string]any after scalar coercion; these narrow them back into the
// domain types the services expect. A missing or mistyped required arg
// yields a validation error rather than a panic.

func argID(args map[string]any, name string) (uuid.UUID, error) {
	s, ok := args[name].(string)
	if !ok {
		return uuid.Nil, domain.NewValidationError(name, "required")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "must be a valid UUID")
	}
	return id, nil
}

func argIDPtr(args map[string]any, name string) (*uuid.UUID, error) {
	s, ok := args[name].(string)
	if !ok {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, domain.NewValidationError(name, "must be a valid UUID")
	}
	return &id, nil
}

func argString(args map[string]any, name string) string {
	s, _ := args[name].(string)
	return s
}

func argStringPtr(args map[string]any, name string) *string {
	s, ok := args[name].(string)
	if !ok {
		return nil
	}
	return &s
}

func argBool(args map[string]any, name string) bool {
	b, _ := args[name].(bool)
	return b
}

func argBoolPtr(args map[string]any, name string) *bool {
	b, ok := args[name].(bool)
	if !ok {
		return nil
	}
	return &b
}

func argInt(args map[string]any, name string, fallback int) int {
	n, ok := args[name].(int)
	if !ok {
		return fallback
	}
	return n
}

func argIntPtr(args map[string]any, name string) *int {
	n, ok := args[name].(int)
	if !ok {
		return nil
	}
	return &n
}

func argDecimal(args map[string]any, name string) (decimal.Decimal, error) {
	d, ok := args[name].(decimal.Decimal)
	if !ok {
		return decimal.Decimal{}, domain.NewValidationError(name, "must be a decimal string")
	}
	return d, nil
}

func argDecimalPtr(args map[string]any, name string) (*decimal.Decimal, error) {
	v, present := args[name]
	if !present || v == nil {
		return nil, nil
	}
	d, ok := v.(decimal.Decimal)
	if !ok {
		return nil, domain.NewValidationError(name, "must be a decimal string")
	}
	return &d, nil
}

func argTime(args map[string]any, name string) (time.Time, error) {
	t, ok := args[name].(time.Time)
	if !ok {
		return time.Time{}, domain.NewValidationError(name, "must be an RFC3339 timestamp")
	}
	return t, nil
}

func argTimePtr(args map[string]any, name string) *time.Time {
	t, ok := args[name].(time.Time)
	if !ok {
		return nil
	}
	return &t
}

func argJSON(args map[string]any, name string) map[string]any {
	m, _ := args[name].(map[string]any)
	return m
}

func argJSONPtr(args map[string]any, name string) *map[string]any {
	m, ok := args[name].(map[string]any)
	if !ok {
		return nil
	}
	return &m
}

func argStringSlice(args map[string]any, name string) []string {
	raw, ok := args[name].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func argStringSlicePtr(args map[string]any, name string) *[]string {
	if _, present := args[name]; !present {
		return nil
	}
	s := argStringSlice(args, name)
	return &s
}
