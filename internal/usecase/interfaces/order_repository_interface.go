package interfaces

import (
	"context"
	"serving_u/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// Update methods return the zero Order when the id does not resolve; callers
// translate that into a not-found error.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)
	UpdateGroupStatus(ctx context.Context, id string, group entities.ItemGroup, status entities.OrderStatus) (entities.Order, error)
	UpdateGroupPayment(ctx context.Context, id string, group entities.ItemGroup, p entities.PaymentUpdate) (entities.Order, error)
	UpdateAdminTotal(ctx context.Context, id string, total *float64) (entities.Order, error)
	UpdateLaundryAdminTotal(ctx context.Context, id string, total *float64) (entities.Order, error)
}
