package postgres

import (
	"context"
	"errors"

	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"
	"github.com/wolfeidau/tenantdb/internal/store"
)

const maxRetryAttempts = 5

// WithTenantContextRetry is WithTenantContext plus exponential backoff on
// pool exhaustion. Only store.ErrResourceExhausted is retried; every other
// failure is permanent and propagates unchanged. Each attempt is a fresh
// transaction, so a rolled-back attempt leaves no partial state behind.
func (s *Store) WithTenantContextRetry(ctx context.Context, userID, orgID uuid.UUID, fn func(ctx context.Context, tx *TenantTx) error) error {
	operation := func() (struct{}, error) {
		err := s.WithTenantContext(ctx, userID, orgID, fn)
		if err != nil && !errors.Is(err, store.ErrResourceExhausted) {
			return struct{}{}, backoff.Permanent(err)
		}
		return struct{}{}, err
	}

	_, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(maxRetryAttempts),
	)
	return err
}
