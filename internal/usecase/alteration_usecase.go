package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"serving_u/internal/domain/entities"
	"serving_u/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrAlterationNotFound      = errors.New("alteration not found")
	ErrInvalidAlterationID     = errors.New("invalid alteration id")
	ErrMissingAlterationFields = errors.New("missing required alteration fields")
	ErrInvalidAlterationStatus = errors.New("invalid alteration status value")
	ErrInvalidAlterationTotal  = errors.New("alteration total must be positive")
	ErrInvalidAlterationCount  = errors.New("alteration quantity must be positive")
)

// CreateAlterationInput is the customer-facing appointment request.
type CreateAlterationInput struct {
	Customer entities.Customer
	Note     string
	Quantity int
}

// IAlterationUseCase exposes the alteration appointment lifecycle. Unlike
// orders there is a single fulfillment/payment track.

type IAlterationUseCase interface {
	Create(ctx context.Context, in CreateAlterationInput) (entities.Alteration, error)
	List(ctx context.Context) ([]entities.Alteration, error)
	GetByID(ctx context.Context, id string) (entities.Alteration, error)
	UpdateStatus(ctx context.Context, id, status string) (entities.Alteration, error)
	UpdatePaymentStatus(ctx context.Context, id string, in PaymentStatusInput) (entities.Alteration, error)
	SetAdminTotal(ctx context.Context, id string, total float64) (entities.Alteration, error)
}

type AlterationUseCase struct {
	repo     interfaces.IAlterationRepository
	notifier interfaces.INotifier
}

var _ IAlterationUseCase = (*AlterationUseCase)(nil)

func NewAlterationUseCase(repo interfaces.IAlterationRepository, notifier interfaces.INotifier) *AlterationUseCase {
	return &AlterationUseCase{repo: repo, notifier: notifier}
}

func (u *AlterationUseCase) Create(ctx context.Context, in CreateAlterationInput) (entities.Alteration, error) {
	if err := validateCustomer(in.Customer); err != nil {
		return entities.Alteration{}, ErrMissingAlterationFields
	}
	if strings.TrimSpace(in.Note) == "" {
		return entities.Alteration{}, ErrMissingAlterationFields
	}
	quantity := in.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		return entities.Alteration{}, ErrInvalidAlterationCount
	}

	a := entities.Alteration{
		ID:       uuid.NewString(),
		Customer: in.Customer,
		Note:     strings.TrimSpace(in.Note),
		Quantity: quantity,
		Status:   entities.AlterationStatusPending,
		// The admin prices alterations after inspection, so payment cannot be
		// settled at creation.
		PaymentStatus: entities.PaymentStatusPending,
		CreatedAt:     time.Now().UTC(),
	}

	created, err := u.repo.Create(ctx, a)
	if err != nil {
		log.Printf("[alteration][usecase] create failed alteration_id=%s err=%v", a.ID, err)
		return entities.Alteration{}, err
	}
	log.Printf("[alteration][usecase] created alteration_id=%s quantity=%d", created.ID, created.Quantity)

	u.notifyAsync(created)
	return created, nil
}

func (u *AlterationUseCase) notifyAsync(a entities.Alteration) {
	if u.notifier == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := u.notifier.NotifyAlterationCreated(ctx, a); err != nil {
			log.Printf("[alteration][usecase] notification failed alteration_id=%s err=%v", a.ID, err)
		}
	}()
}

func (u *AlterationUseCase) List(ctx context.Context) ([]entities.Alteration, error) {
	return u.repo.List(ctx)
}

func (u *AlterationUseCase) GetByID(ctx context.Context, id string) (entities.Alteration, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Alteration{}, ErrInvalidAlterationID
	}
	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Alteration{}, err
	}
	if a.ID == "" {
		return entities.Alteration{}, ErrAlterationNotFound
	}
	return a, nil
}

// UpdateStatus writes a new appointment status.
//
// Delivered-implies-paid: marking an alteration delivered also sets its
// payment status to Paid and stamps paymentUpdatedAt, overriding any payment
// status supplied alongside. Delivery means the amount was collected at the
// door.
func (u *AlterationUseCase) UpdateStatus(ctx context.Context, id, status string) (entities.Alteration, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Alteration{}, ErrInvalidAlterationID
	}
	st, ok := entities.ParseAlterationStatus(status)
	if !ok {
		return entities.Alteration{}, ErrInvalidAlterationStatus
	}

	var payment *entities.PaymentUpdate
	if st == entities.AlterationStatusDelivered {
		payment = &entities.PaymentUpdate{
			Status:    entities.PaymentStatusPaid,
			UpdatedAt: time.Now().UTC(),
		}
	}

	updated, err := u.repo.UpdateStatus(ctx, id, st, payment)
	if err != nil {
		return entities.Alteration{}, err
	}
	if updated.ID == "" {
		return entities.Alteration{}, ErrAlterationNotFound
	}
	log.Printf("[alteration][usecase] status updated alteration_id=%s status=%s", id, st)
	return updated, nil
}

func (u *AlterationUseCase) UpdatePaymentStatus(ctx context.Context, id string, in PaymentStatusInput) (entities.Alteration, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Alteration{}, ErrInvalidAlterationID
	}
	ps, ok := entities.ParsePaymentStatus(in.Status)
	if !ok {
		return entities.Alteration{}, ErrInvalidPaymentStatus
	}

	p := entities.PaymentUpdate{Status: ps, UpdatedAt: time.Now().UTC()}
	if ps == entities.PaymentStatusPaid && strings.TrimSpace(in.PaymentID) != "" {
		p.Record = entities.PaymentRecord{
			PaymentID:      strings.TrimSpace(in.PaymentID),
			GatewayOrderID: strings.TrimSpace(in.GatewayOrderID),
			Signature:      strings.TrimSpace(in.Signature),
		}
	}

	updated, err := u.repo.UpdatePayment(ctx, id, p)
	if err != nil {
		return entities.Alteration{}, err
	}
	if updated.ID == "" {
		return entities.Alteration{}, ErrAlterationNotFound
	}
	log.Printf("[alteration][usecase] payment status updated alteration_id=%s status=%s", id, ps)
	return updated, nil
}

// SetAdminTotal prices the appointment. Unlike order totals, zero is rejected:
// an unpriced alteration stays unpriced rather than free.
func (u *AlterationUseCase) SetAdminTotal(ctx context.Context, id string, total float64) (entities.Alteration, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Alteration{}, ErrInvalidAlterationID
	}
	if total <= 0 {
		return entities.Alteration{}, ErrInvalidAlterationTotal
	}

	updated, err := u.repo.UpdateAdminTotal(ctx, id, total)
	if err != nil {
		return entities.Alteration{}, err
	}
	if updated.ID == "" {
		return entities.Alteration{}, ErrAlterationNotFound
	}
	return updated, nil
}
