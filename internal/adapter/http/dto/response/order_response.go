package response

import (
	"time"

	"serving_u/internal/domain/entities"
)

// OrderResponse is the wire shape of an order. The combined status and
// paymentStatus fields are projections computed from the split group fields;
// pre-split clients keep reading them while newer clients use the split pairs.
type OrderResponse struct {
	ID       string               `json:"id"`
	OrderNo  int64                `json:"orderNo"`
	Customer entities.Customer    `json:"customer"`
	Items    []entities.OrderItem `json:"items"`

	Total          float64  `json:"total"`
	EffectiveTotal float64  `json:"effectiveTotal"`
	AdminTotal     *float64 `json:"adminTotal,omitempty"`
	Note           string   `json:"note,omitempty"`

	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`

	LaundryStatus   string `json:"laundryStatus,omitempty"`
	ReadymadeStatus string `json:"readymadeStatus,omitempty"`

	LaundryPaymentStatus   string `json:"laundryPaymentStatus,omitempty"`
	ReadymadePaymentStatus string `json:"readymadePaymentStatus,omitempty"`

	LaundryAdminTotal *float64 `json:"laundryAdminTotal,omitempty"`
	ReadymadeTotal    float64  `json:"readymadeTotal"`

	LaundryPayment   entities.PaymentRecord `json:"laundryPayment,omitempty"`
	ReadymadePayment entities.PaymentRecord `json:"readymadePayment,omitempty"`

	PaymentUpdatedAt *time.Time `json:"paymentUpdatedAt,omitempty"`
	CreatedAt        time.Time  `json:"timestamp"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:                     o.ID,
		OrderNo:                o.Sequence,
		Customer:               o.Customer,
		Items:                  o.Items,
		Total:                  o.Total,
		EffectiveTotal:         o.EffectiveTotal(),
		AdminTotal:             o.AdminTotal,
		Note:                   o.Note,
		Status:                 string(o.LegacyStatus()),
		PaymentStatus:          string(o.LegacyPaymentStatus()),
		LaundryStatus:          string(o.LaundryStatus),
		ReadymadeStatus:        string(o.ReadymadeStatus),
		LaundryPaymentStatus:   string(o.LaundryPaymentStatus),
		ReadymadePaymentStatus: string(o.ReadymadePaymentStatus),
		LaundryAdminTotal:      o.LaundryAdminTotal,
		ReadymadeTotal:         o.ReadymadeTotal,
		LaundryPayment:         o.LaundryPayment,
		ReadymadePayment:       o.ReadymadePayment,
		PaymentUpdatedAt:       o.PaymentUpdatedAt,
		CreatedAt:              o.CreatedAt,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
