package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/wolfeidau/tenantdb/internal/models"
	"github.com/wolfeidau/tenantdb/internal/store"
)

// CreateUser provisions an identity record. A duplicate email fails with
// store.ErrConstraintViolation.
func (tx *AdminTx) CreateUser(ctx context.Context, email string, name *string) (*models.User, error) {
	if err := requireNonEmpty(email, "email"); err != nil {
		return nil, err
	}

	var u models.User
	err := tx.tx.QueryRow(ctx, `
		INSERT INTO users (id, email, name)
		VALUES ($1, $2, $3)
		RETURNING id, email, name, is_active, created_at, updated_at
	`, uuid.Must(uuid.NewV7()), email, name).Scan(&u.ID, &u.Email, &u.Name, &u.Active, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", mapPostgresError(err))
	}

	log.Debug().
		Str("user_id", u.ID.String()).
		Str("email", u.Email).
		Msg("Created user")

	return &u, nil
}

// UpdateUserProfile updates the display name of an existing user.
func (tx *AdminTx) UpdateUserProfile(ctx context.Context, userID uuid.UUID, name *string) error {
	if err := requireID(userID, "user id"); err != nil {
		return err
	}

	result, err := tx.tx.Exec(ctx, `
		UPDATE users SET name = $2, updated_at = now()
		WHERE id = $1
	`, userID, name)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", mapPostgresError(err))
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%w: user %s not found", store.ErrInvalidArgument, userID)
	}

	return nil
}

// DeactivateUser clears the active flag. Users are never hard-deleted once
// referenced by a membership or an audit entry; the policy helpers treat an
// inactive user the same as a non-existent one.
func (tx *AdminTx) DeactivateUser(ctx context.Context, userID uuid.UUID) error {
	if err := requireID(userID, "user id"); err != nil {
		return err
	}

	result, err := tx.tx.Exec(ctx, `
		UPDATE users SET is_active = false, updated_at = now()
		WHERE id = $1 AND is_active
	`, userID)
	if err != nil {
		return fmt.Errorf("failed to deactivate user: %w", mapPostgresError(err))
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%w: user %s not found or already inactive", store.ErrInvalidArgument, userID)
	}

	log.Info().Str("user_id", userID.String()).Msg("Deactivated user")

	return nil
}
