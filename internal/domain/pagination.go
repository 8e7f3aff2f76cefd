package domain

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Cursor is an opaque position in a (created_at DESC, id DESC) ordered
// listing. Encoded cursors are handed to clients as base64.
type Cursor struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

// Encode serializes the cursor for transport.
func (c Cursor) Encode() string {
	raw := fmt.Sprintf("%d|%s", c.CreatedAt.UnixMicro(), c.ID)
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// DecodeCursor parses a client-supplied cursor string.
func DecodeCursor(s string) (Cursor, error) {
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return Cursor{}, NewValidationError("after", "malformed cursor")
	}

	parts := strings.SplitN(string(raw), "|", 2)
	if len(parts) != 2 {
		return Cursor{}, NewValidationError("after", "malformed cursor")
	}

	var micros int64
	if _, err := fmt.Sscanf(parts[0], "%d", &micros); err != nil {
		return Cursor{}, NewValidationError("after", "malformed cursor")
	}

	id, err := uuid.Parse(parts[1])
	if err != nil {
		return Cursor{}, NewValidationError("after", "malformed cursor")
	}

	return Cursor{CreatedAt: time.UnixMicro(micros).UTC(), ID: id}, nil
}

// Page is one page of a cursor-paginated listing.
type Page[T any] struct {
	Items       []T
	HasNextPage bool
	EndCursor   *string
}
