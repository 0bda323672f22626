package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/wolfeidau/tenantdb/internal/store"
)

// mapPostgresError maps PostgreSQL error signals to the sentinel taxonomy in
// the store package. Returns the original error if it's not a PostgreSQL
// error or doesn't match known patterns.
func mapPostgresError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgerrcode.RaiseException:
		// The policy helper functions raise "invalid app.user_id" /
		// "invalid app.org_id" when a stamped identity does not resolve.
		return fmt.Errorf("%w: %s", store.ErrInvalidContext, pgErr.Message)

	case pgerrcode.InvalidTextRepresentation:
		// A stamped value that is not a valid uuid fails the cast inside
		// the policy helpers.
		return fmt.Errorf("%w: %s", store.ErrInvalidContext, pgErr.Message)

	case pgerrcode.UniqueViolation:
		return fmt.Errorf("%w: unique violation on %s", store.ErrConstraintViolation, pgErr.ConstraintName)

	case pgerrcode.CheckViolation:
		return fmt.Errorf("%w: check %s failed", store.ErrConstraintViolation, pgErr.ConstraintName)

	case pgerrcode.ForeignKeyViolation:
		return fmt.Errorf("%w: foreign key %s failed", store.ErrConstraintViolation, pgErr.ConstraintName)

	case pgerrcode.NotNullViolation:
		return fmt.Errorf("%w: column %s must not be null", store.ErrConstraintViolation, pgErr.ColumnName)

	case pgerrcode.InsufficientPrivilege:
		// Covers both missing table privileges and row-level WITH CHECK
		// failures. The server message can name tables and rows, so it is
		// deliberately not included: denial must not reveal whether the
		// target exists.
		return store.ErrPolicyDenied

	case pgerrcode.TooManyConnections, pgerrcode.ConfigurationLimitExceeded:
		return fmt.Errorf("%w: %s", store.ErrResourceExhausted, pgErr.Message)

	case pgerrcode.QueryCanceled:
		return fmt.Errorf("query canceled: %w", err)

	default:
		return fmt.Errorf("postgres error [%s]: %s: %w", pgErr.Code, pgErr.Message, err)
	}
}

// isUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
