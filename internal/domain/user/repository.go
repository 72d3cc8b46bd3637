package user

import (
	"context"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (User, error)

	// ListActive returns active users ordered by name, optionally limited to one role.
	ListActive(ctx context.Context, role *Role) ([]User, error)
}
