package interfaces

import (
	"context"

	"tailoring_app/internal/domain/entities"
)

// IUserRepository stores staff accounts. GetByUsername returns (nil, nil)
// when no enabled user matches.
type IUserRepository interface {
	Create(ctx context.Context, u *entities.User) error
	GetByUsername(ctx context.Context, username string) (*entities.User, error)
}
