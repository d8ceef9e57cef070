package ports

import (
	"context"

	"courier/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
// Account management lives elsewhere; this service only resolves owners.
type UserRepository interface {
	// Get retrieves a user by its identifier.
	Get(ctx context.Context, id int64) (*user.User, error)
}
