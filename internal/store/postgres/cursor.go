package postgres

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mr-tron/base58"
	"github.com/wolfeidau/tenantdb/internal/store"
)

// cursorVersion prefixes encoded cursors so the format can evolve without
// breaking callers holding old tokens.
const cursorVersion = "v1"

// Cursor marks the position of the last row of an audit feed page under the
// (created_at desc, id desc) total order. Callers must treat the encoded
// form as opaque and pass it back verbatim.
type Cursor struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

// Encode packs the cursor as base58(v1|unixnano|id).
func (c Cursor) Encode() string {
	data := fmt.Sprintf("%s|%d|%s", cursorVersion, c.CreatedAt.UnixNano(), c.ID)
	return base58.Encode([]byte(data))
}

// DecodeCursor parses a token previously produced by Encode. Any token that
// does not decode exactly fails with store.ErrInvalidCursor.
func DecodeCursor(token string) (Cursor, error) {
	if token == "" {
		return Cursor{}, fmt.Errorf("%w: token cannot be empty", store.ErrInvalidCursor)
	}

	data, err := base58.Decode(token)
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: invalid encoding: %v", store.ErrInvalidCursor, err)
	}

	parts := strings.Split(string(data), "|")
	if len(parts) != 3 {
		return Cursor{}, fmt.Errorf("%w: expected 3 parts, got %d", store.ErrInvalidCursor, len(parts))
	}

	if parts[0] != cursorVersion {
		return Cursor{}, fmt.Errorf("%w: unsupported version %s", store.ErrInvalidCursor, parts[0])
	}

	nanos, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: invalid timestamp: %v", store.ErrInvalidCursor, err)
	}

	id, err := uuid.Parse(parts[2])
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: invalid id: %v", store.ErrInvalidCursor, err)
	}

	return Cursor{CreatedAt: time.Unix(0, nanos).UTC(), ID: id}, nil
}
