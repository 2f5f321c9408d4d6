package interfaces

import (
	"context"
	"serving_u/internal/domain/entities"
)

// IAlterationRepository abstracts DynamoDB persistence for Alteration.
//
// UpdateStatus takes an optional payment write so that the delivered-implies-
// paid rule lands in the same document update as the status change.

type IAlterationRepository interface {
	Create(ctx context.Context, a entities.Alteration) (entities.Alteration, error)
	GetByID(ctx context.Context, id string) (entities.Alteration, error)
	List(ctx context.Context) ([]entities.Alteration, error)
	UpdateStatus(ctx context.Context, id string, status entities.AlterationStatus, payment *entities.PaymentUpdate) (entities.Alteration, error)
	UpdatePayment(ctx context.Context, id string, p entities.PaymentUpdate) (entities.Alteration, error)
	UpdateAdminTotal(ctx context.Context, id string, total float64) (entities.Alteration, error)
}
