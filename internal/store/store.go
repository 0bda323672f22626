// Package store defines the stable error taxonomy shared by every storage
// backend. Callers branch on these sentinels with errors.Is; the concrete
// execution handles live in the postgres subpackage.
package store

import "errors"

// Sentinel errors for common error conditions
var (
	// ErrInvalidContext means the stamped user or org identity does not
	// resolve to an existing row. Fatal to the current unit of work and
	// never retried automatically.
	ErrInvalidContext = errors.New("invalid tenant context")

	// ErrConstraintViolation covers uniqueness violations (duplicate
	// membership) and domain checks (role outside the closed set).
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrPolicyDenied means the application principal attempted a write it
	// has no privilege for, or touched a row outside its tenant scope. The
	// error never reveals whether the target row exists.
	ErrPolicyDenied = errors.New("permission denied by policy")

	// ErrResourceExhausted means the connection pool wait was exceeded.
	// Retryable by the caller with backoff.
	ErrResourceExhausted = errors.New("connection pool exhausted")

	// ErrInvalidArgument is returned for input rejected at the repository
	// boundary before any statement is issued.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidCursor is returned for audit feed cursors that cannot be
	// decoded. Cursors are opaque; callers must pass them back verbatim.
	ErrInvalidCursor = errors.New("invalid audit feed cursor")
)
