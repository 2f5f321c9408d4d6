package interfaces

import (
	"context"
	"serving_u/internal/domain/entities"
)

// ILaundryItemRepository abstracts DynamoDB persistence for LaundryItem.

type ILaundryItemRepository interface {
	Create(ctx context.Context, it entities.LaundryItem) (entities.LaundryItem, error)
	GetByID(ctx context.Context, id string) (entities.LaundryItem, error)
	List(ctx context.Context) ([]entities.LaundryItem, error)
	Update(ctx context.Context, it entities.LaundryItem) (entities.LaundryItem, error)
	Delete(ctx context.Context, id string) (bool, error)
	DeleteMany(ctx context.Context, ids []string) error
}

// IUnstitchedItemRepository abstracts DynamoDB persistence for UnstitchedItem.

type IUnstitchedItemRepository interface {
	Create(ctx context.Context, it entities.UnstitchedItem) (entities.UnstitchedItem, error)
	GetByID(ctx context.Context, id string) (entities.UnstitchedItem, error)
	List(ctx context.Context) ([]entities.UnstitchedItem, error)
	Update(ctx context.Context, it entities.UnstitchedItem) (entities.UnstitchedItem, error)
	Delete(ctx context.Context, id string) (bool, error)
	DeleteMany(ctx context.Context, ids []string) error
}
