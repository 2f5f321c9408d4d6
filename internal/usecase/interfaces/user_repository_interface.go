package interfaces

import (
	"context"
	"serving_u/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for User. GetByEmail returns
// the zero User when no account exists.

type IUserRepository interface {
	GetByEmail(ctx context.Context, email string) (entities.User, error)
	Create(ctx context.Context, u entities.User) (entities.User, error)
	Update(ctx context.Context, u entities.User) (entities.User, error)
}
