package interfaces

import (
	"context"
	"serving_u/internal/domain/entities"
)

// INotifier sends the admin a heads-up when work arrives. Callers fire it
// asynchronously and only log failures; a lost email never fails a request.

type INotifier interface {
	NotifyOrderCreated(ctx context.Context, o entities.Order) error
	NotifyAlterationCreated(ctx context.Context, a entities.Alteration) error
}
