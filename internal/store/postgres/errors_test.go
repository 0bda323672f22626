package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
	"github.com/wolfeidau/tenantdb/internal/store"
)

func TestMapPostgresError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		wantIs error
	}{
		{
			name:   "raise from policy helper",
			err:    &pgconn.PgError{Code: pgerrcode.RaiseException, Message: "invalid app.user_id: 00000000-0000-0000-0000-000000000099"},
			wantIs: store.ErrInvalidContext,
		},
		{
			name:   "invalid uuid text",
			err:    &pgconn.PgError{Code: pgerrcode.InvalidTextRepresentation, Message: `invalid input syntax for type uuid: "nope"`},
			wantIs: store.ErrInvalidContext,
		},
		{
			name:   "duplicate membership",
			err:    &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "memberships_org_user_ux"},
			wantIs: store.ErrConstraintViolation,
		},
		{
			name:   "invalid role",
			err:    &pgconn.PgError{Code: pgerrcode.CheckViolation, ConstraintName: "memberships_role_check"},
			wantIs: store.ErrConstraintViolation,
		},
		{
			name:   "missing referenced row",
			err:    &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "memberships_user_id_fkey"},
			wantIs: store.ErrConstraintViolation,
		},
		{
			name:   "rls with check failure",
			err:    &pgconn.PgError{Code: pgerrcode.InsufficientPrivilege, Message: `new row violates row-level security policy for table "sites"`},
			wantIs: store.ErrPolicyDenied,
		},
		{
			name:   "too many connections",
			err:    &pgconn.PgError{Code: pgerrcode.TooManyConnections, Message: "sorry, too many clients already"},
			wantIs: store.ErrResourceExhausted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, mapPostgresError(tt.err), tt.wantIs)
		})
	}
}

func TestMapPostgresErrorPassthrough(t *testing.T) {
	require.NoError(t, mapPostgresError(nil))

	plain := errors.New("dial tcp: connection refused")
	require.Equal(t, plain, mapPostgresError(plain))
}

func TestMapPostgresErrorWrapped(t *testing.T) {
	// Errors wrapped in transit still classify.
	inner := &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_email_ux"}
	wrapped := fmt.Errorf("failed to create user: %w", inner)
	require.ErrorIs(t, mapPostgresError(wrapped), store.ErrConstraintViolation)
}

func TestPolicyDeniedLeaksNothing(t *testing.T) {
	// Denial must not reveal table names or whether the target row exists.
	err := mapPostgresError(&pgconn.PgError{
		Code:    pgerrcode.InsufficientPrivilege,
		Message: `permission denied for table audit_log`,
		Detail:  `row (deadbeef) exists in org 42`,
	})
	require.ErrorIs(t, err, store.ErrPolicyDenied)
	require.Equal(t, store.ErrPolicyDenied.Error(), err.Error())
}

func TestIsUniqueViolation(t *testing.T) {
	require.True(t, isUniqueViolation(&pgconn.PgError{Code: pgerrcode.UniqueViolation}))
	require.False(t, isUniqueViolation(&pgconn.PgError{Code: pgerrcode.CheckViolation}))
	require.False(t, isUniqueViolation(errors.New("nope")))
}
