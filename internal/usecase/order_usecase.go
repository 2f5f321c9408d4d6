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
	ErrOrderNotFound          = errors.New("order not found")
	ErrInvalidOrderID         = errors.New("invalid order id")
	ErrMissingCustomerField   = errors.New("missing required customer field")
	ErrNoOrderItems           = errors.New("order must contain at least one item")
	ErrInvalidOrderItem       = errors.New("invalid order item")
	ErrInvalidOrderTotal      = errors.New("order total must be non-negative")
	ErrInvalidOrderStatus     = errors.New("invalid order status value")
	ErrInvalidItemGroup       = errors.New("invalid item group")
	ErrInvalidPaymentStatus   = errors.New("invalid payment status value")
	ErrInvalidOrderAdminTotal = errors.New("admin total must be non-negative")
)

const orderSequenceName = "orders"

// PlaceOrderInput is the customer-facing order submission.
type PlaceOrderInput struct {
	Customer entities.Customer
	Items    []entities.OrderItem
	Total    float64
	Note     string
	// PaymentStatus is the declared legacy payment status; it seeds the
	// readymade group only. Defaults to Cash on Delivery.
	PaymentStatus entities.PaymentStatus
}

// PaymentStatusInput is an admin write to one group's payment track.
type PaymentStatusInput struct {
	Status         string
	PaymentID      string
	GatewayOrderID string
	Signature      string
}

// IOrderUseCase exposes the order lifecycle:
//   - PlaceOrder classifies items into laundry/readymade groups and seeds the
//     per-group statuses.
//   - UpdateGroupStatus / UpdateGroupPaymentStatus drive the two independent
//     fulfillment and payment tracks.
//   - SetAdminTotal / SetLaundryAdminTotal are the admin pricing overrides.

type IOrderUseCase interface {
	PlaceOrder(ctx context.Context, in PlaceOrderInput) (entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	UpdateGroupStatus(ctx context.Context, id, group, status string) (entities.Order, error)
	UpdateGroupPaymentStatus(ctx context.Context, id, group string, in PaymentStatusInput) (entities.Order, error)
	SetAdminTotal(ctx context.Context, id string, total *float64) (entities.Order, error)
	SetLaundryAdminTotal(ctx context.Context, id string, total *float64) (entities.Order, error)
}

type OrderUseCase struct {
	repo      interfaces.IOrderRepository
	sequences interfaces.ISequenceRepository
	notifier  interfaces.INotifier
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, sequences interfaces.ISequenceRepository, notifier interfaces.INotifier) *OrderUseCase {
	return &OrderUseCase{repo: repo, sequences: sequences, notifier: notifier}
}

func (u *OrderUseCase) PlaceOrder(ctx context.Context, in PlaceOrderInput) (entities.Order, error) {
	if err := validateCustomer(in.Customer); err != nil {
		return entities.Order{}, err
	}
	if len(in.Items) == 0 {
		return entities.Order{}, ErrNoOrderItems
	}
	for _, it := range in.Items {
		if strings.TrimSpace(it.Name) == "" || it.Quantity <= 0 || it.Price < 0 {
			return entities.Order{}, ErrInvalidOrderItem
		}
	}
	if in.Total < 0 {
		return entities.Order{}, ErrInvalidOrderTotal
	}

	declared := in.PaymentStatus
	if declared == "" {
		declared = entities.PaymentStatusCOD
	}
	if _, ok := entities.ParsePaymentStatus(string(declared)); !ok {
		return entities.Order{}, ErrInvalidPaymentStatus
	}

	laundry, readymade, readymadeTotal := entities.GroupItems(in.Items)

	o := entities.Order{
		ID:             uuid.NewString(),
		Customer:       in.Customer,
		Items:          in.Items,
		Total:          in.Total,
		Note:           strings.TrimSpace(in.Note),
		ReadymadeTotal: readymadeTotal,
		CreatedAt:      time.Now().UTC(),
	}

	// A group's status stays unset when the order has no items of that kind,
	// so clients can tell "nothing to do" apart from "untouched".
	if len(laundry) > 0 {
		o.LaundryStatus = entities.OrderStatusPending
		// Laundry is priced by the admin after review; no payment can be
		// settled at submission time.
		o.LaundryPaymentStatus = entities.PaymentStatusPending
	}
	if len(readymade) > 0 {
		o.ReadymadeStatus = entities.OrderStatusPending
		o.ReadymadePaymentStatus = declared
	}

	seq, err := u.sequences.Next(ctx, orderSequenceName)
	if err != nil {
		log.Printf("[order][usecase] sequence allocation failed err=%v", err)
		return entities.Order{}, err
	}
	o.Sequence = seq

	created, err := u.repo.Create(ctx, o)
	if err != nil {
		log.Printf("[order][usecase] create failed order_id=%s err=%v", o.ID, err)
		return entities.Order{}, err
	}
	log.Printf("[order][usecase] created order_id=%s sequence=%d laundry_items=%d readymade_items=%d readymade_total=%.2f",
		created.ID, created.Sequence, len(laundry), len(readymade), readymadeTotal)

	u.notifyAsync(created)
	return created, nil
}

// notifyAsync fires the creation email without tying it to the request: a
// failed send is logged and forgotten, never retried, never surfaced.
func (u *OrderUseCase) notifyAsync(o entities.Order) {
	if u.notifier == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := u.notifier.NotifyOrderCreated(ctx, o); err != nil {
			log.Printf("[order][usecase] notification failed order_id=%s err=%v", o.ID, err)
		}
	}()
}

func (u *OrderUseCase) List(ctx context.Context) ([]entities.Order, error) {
	return u.repo.List(ctx)
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

// UpdateGroupStatus writes a new fulfillment status for one group. Any of the
// five enumerated values may be written directly; status is admin-controlled,
// so ordering between transitions is not enforced.
func (u *OrderUseCase) UpdateGroupStatus(ctx context.Context, id, group, status string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	g, ok := entities.ParseItemGroup(group)
	if !ok {
		return entities.Order{}, ErrInvalidItemGroup
	}
	st, ok := entities.ParseOrderStatus(status)
	if !ok {
		return entities.Order{}, ErrInvalidOrderStatus
	}

	updated, err := u.repo.UpdateGroupStatus(ctx, id, g, st)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	log.Printf("[order][usecase] status updated order_id=%s group=%s status=%s", id, g, st)
	return updated, nil
}

// UpdateGroupPaymentStatus writes one group's payment status. Marking a group
// Paid with a gateway payment id also records the gateway order id and
// signature as supplied; signature verification is a separate operation. The
// other group's payment fields are never touched.
func (u *OrderUseCase) UpdateGroupPaymentStatus(ctx context.Context, id, group string, in PaymentStatusInput) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	g, ok := entities.ParseItemGroup(group)
	if !ok {
		return entities.Order{}, ErrInvalidItemGroup
	}
	ps, ok := entities.ParsePaymentStatus(in.Status)
	if !ok {
		return entities.Order{}, ErrInvalidPaymentStatus
	}

	p := entities.PaymentUpdate{Status: ps, UpdatedAt: time.Now().UTC()}
	if ps == entities.PaymentStatusPaid && strings.TrimSpace(in.PaymentID) != "" {
		p.Record = entities.PaymentRecord{
			PaymentID:      strings.TrimSpace(in.PaymentID),
			GatewayOrderID: strings.TrimSpace(in.GatewayOrderID),
			Signature:      strings.TrimSpace(in.Signature),
		}
	}

	updated, err := u.repo.UpdateGroupPayment(ctx, id, g, p)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	log.Printf("[order][usecase] payment status updated order_id=%s group=%s status=%s payment_id=%s", id, g, ps, p.Record.PaymentID)
	return updated, nil
}

// SetAdminTotal overrides the whole-order payable amount. Zero is a legal
// override (fully discounted order); nil clears the override.
func (u *OrderUseCase) SetAdminTotal(ctx context.Context, id string, total *float64) (entities.Order, error) {
	return u.setAdminTotal(ctx, id, total, func(ctx context.Context, id string, total *float64) (entities.Order, error) {
		return u.repo.UpdateAdminTotal(ctx, id, total)
	})
}

// SetLaundryAdminTotal prices the laundry group after admin review.
func (u *OrderUseCase) SetLaundryAdminTotal(ctx context.Context, id string, total *float64) (entities.Order, error) {
	return u.setAdminTotal(ctx, id, total, func(ctx context.Context, id string, total *float64) (entities.Order, error) {
		return u.repo.UpdateLaundryAdminTotal(ctx, id, total)
	})
}

func (u *OrderUseCase) setAdminTotal(
	ctx context.Context,
	id string,
	total *float64,
	write func(ctx context.Context, id string, total *float64) (entities.Order, error),
) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	if total != nil && *total < 0 {
		return entities.Order{}, ErrInvalidOrderAdminTotal
	}

	updated, err := write(ctx, id, total)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return updated, nil
}

func validateCustomer(c entities.Customer) error {
	for _, f := range []string{c.Name, c.Address, c.Phone, c.Email} {
		if strings.TrimSpace(f) == "" {
			return ErrMissingCustomerField
		}
	}
	return nil
}
