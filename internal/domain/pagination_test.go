package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestCursor_RoundTrip(t *testing.T) {
	t.Parallel()

	want := Cursor{
		CreatedAt: time.Date(2025, 6, 15, 10, 30, 45, 123456000, time.UTC),
		ID:        uuid.New(),
	}

	got, err := DecodeCursor(want.Encode())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if !got.CreatedAt.Equal(want.CreatedAt) {
		t.Errorf("created at: got %v, want %v", got.CreatedAt, want.CreatedAt)
	}
	if got.ID != want.ID {
		t.Errorf("id: got %v, want %v", got.ID, want.ID)
	}
}

func TestDecodeCursor_Malformed(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
	}{
		{"not base64", "%%%"},
		{"no separator", "bm8gc2VwYXJhdG9y"},
		{"bad timestamp", "eHw1NWIzYmMxNC0yYjFlLTQxZTItOTkzMi1hMmU0MDVkYzKlYmM"},
		{"bad uuid", "MTIzNHxub3QtYS11dWlk"},
		{"empty", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := DecodeCursor(tc.input)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("got %v, want validation error", err)
			}
		})
	}
}
