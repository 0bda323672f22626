package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"
	"github.com/wolfeidau/tenantdb/internal/store"
)

// TenantTx is the execution handle for one tenant-scoped unit of work. It is
// bound to a single transaction on a single pinned application-principal
// connection, with the identity variables already stamped. A TenantTx is only
// ever handed to the callback of WithTenantContext and must not be retained
// past its return.
type TenantTx struct {
	tx pgx.Tx
}

// AdminTx is the execution handle for administrative work. It carries no
// tenant context; statements bypass row-level policy. The operations defined
// on it are the deliberately narrow escape hatch: org creation, membership
// grants, user provisioning and audit appends.
type AdminTx struct {
	tx pgx.Tx
}

// WithTenantContext runs fn as one unit of work under the application
// principal, stamped with the given identity.
//
// It reserves one connection from the application pool, opens a transaction,
// sets app.user_id and app.org_id with set_config(..., true) — LOCAL scope,
// cleared automatically when the transaction ends — and invokes fn with a
// handle bound to that transaction. On a nil return the transaction commits;
// on any error it rolls back and the error propagates unchanged.
//
// A userID or orgID that does not resolve to an existing row is not rejected
// here; the policy helpers raise on the first query fn issues and the failure
// surfaces as store.ErrInvalidContext.
func (s *Store) WithTenantContext(ctx context.Context, userID, orgID uuid.UUID, fn func(ctx context.Context, tx *TenantTx) error) error {
	acquireCtx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.AcquireTimeoutSeconds)*time.Second)
	defer cancel()

	conn, err := s.app.Acquire(acquireCtx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			return fmt.Errorf("%w: application pool wait exceeded %ds", store.ErrResourceExhausted, s.cfg.AcquireTimeoutSeconds)
		}
		return mapPostgresError(err)
	}
	defer conn.Release()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return mapPostgresError(err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback is safe to call after commit

	// set_config with is_local=true scopes both variables to this
	// transaction. Session-global scoping (is_local=false) would leak
	// identity into the connection's next borrower and is never used.
	if _, err := tx.Exec(ctx, `select set_config('app.user_id', $1, true)`, userID.String()); err != nil {
		return mapPostgresError(err)
	}
	if _, err := tx.Exec(ctx, `select set_config('app.org_id', $1, true)`, orgID.String()); err != nil {
		return mapPostgresError(err)
	}

	if err := fn(ctx, &TenantTx{tx: tx}); err != nil {
		log.Debug().
			Str("user_id", userID.String()).
			Str("org_id", orgID.String()).
			Err(err).
			Msg("Tenant unit of work rolled back")
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return mapPostgresError(err)
	}

	return nil
}

// WithAdmin runs fn as one transaction on the administrative pool. No
// identity variables are stamped; multi-statement operations such as
// create-org-with-owner rely on the transaction for atomicity.
func (s *Store) WithAdmin(ctx context.Context, fn func(ctx context.Context, tx *AdminTx) error) error {
	acquireCtx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.AcquireTimeoutSeconds)*time.Second)
	defer cancel()

	conn, err := s.admin.Acquire(acquireCtx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			return fmt.Errorf("%w: administrative pool wait exceeded %ds", store.ErrResourceExhausted, s.cfg.AcquireTimeoutSeconds)
		}
		return mapPostgresError(err)
	}
	defer conn.Release()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return mapPostgresError(err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback is safe to call after commit

	if err := fn(ctx, &AdminTx{tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return mapPostgresError(err)
	}

	return nil
}

// requireNonEmpty rejects blank required fields at the repository boundary,
// saving a round trip for conditions enforceable here.
func requireNonEmpty(v, label string) error {
	if v == "" {
		return fmt.Errorf("%w: %s is required", store.ErrInvalidArgument, label)
	}
	return nil
}

// requireID rejects zero-valued identifiers at the repository boundary.
func requireID(id uuid.UUID, label string) error {
	if id == uuid.Nil {
		return fmt.Errorf("%w: %s is required", store.ErrInvalidArgument, label)
	}
	return nil
}
