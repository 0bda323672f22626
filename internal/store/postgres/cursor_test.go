package postgres

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/require"
	"github.com/wolfeidau/tenantdb/internal/store"
)

func TestCursorRoundTrip(t *testing.T) {
	created := time.Date(2026, 3, 14, 9, 26, 53, 589123000, time.UTC)
	id := uuid.Must(uuid.NewV7())

	c := Cursor{CreatedAt: created, ID: id}
	token := c.Encode()
	require.NotEmpty(t, token)

	decoded, err := DecodeCursor(token)
	require.NoError(t, err)
	require.True(t, decoded.CreatedAt.Equal(created))
	require.Equal(t, id, decoded.ID)
}

func TestDecodeCursorInvalid(t *testing.T) {
	id := uuid.Must(uuid.NewV7())

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "not base58", token: "0OIl+/"},
		{name: "garbage payload", token: base58.Encode([]byte("not a cursor"))},
		{name: "wrong version", token: base58.Encode([]byte("v9|1234567890|" + id.String()))},
		{name: "missing parts", token: base58.Encode([]byte("v1|1234567890"))},
		{name: "bad timestamp", token: base58.Encode([]byte("v1|soon|" + id.String()))},
		{name: "bad id", token: base58.Encode([]byte("v1|1234567890|not-a-uuid"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeCursor(tt.token)
			require.ErrorIs(t, err, store.ErrInvalidCursor)
		})
	}
}

func TestCursorOpaqueStability(t *testing.T) {
	// The same position must encode to the same token, so callers can pass
	// it back verbatim.
	c := Cursor{
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		ID:        uuid.MustParse("01948e1a-7b26-7c3e-9f00-000000000001"),
	}
	require.Equal(t, c.Encode(), c.Encode())
}
