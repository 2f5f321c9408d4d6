package response

import (
	"time"

	"serving_u/internal/domain/entities"
)

type AlterationResponse struct {
	ID       string            `json:"id"`
	Customer entities.Customer `json:"customer"`
	Note     string            `json:"note"`
	Quantity int               `json:"quantity"`

	Status     string   `json:"status"`
	AdminTotal *float64 `json:"adminTotal,omitempty"`

	PaymentStatus    string                 `json:"paymentStatus"`
	Payment          entities.PaymentRecord `json:"payment,omitempty"`
	PaymentUpdatedAt *time.Time             `json:"paymentUpdatedAt,omitempty"`

	CreatedAt time.Time `json:"timestamp"`
}

func FromAlteration(a entities.Alteration) AlterationResponse {
	return AlterationResponse{
		ID:               a.ID,
		Customer:         a.Customer,
		Note:             a.Note,
		Quantity:         a.Quantity,
		Status:           string(a.Status),
		AdminTotal:       a.AdminTotal,
		PaymentStatus:    string(a.PaymentStatus),
		Payment:          a.Payment,
		PaymentUpdatedAt: a.PaymentUpdatedAt,
		CreatedAt:        a.CreatedAt,
	}
}

func FromAlterations(alterations []entities.Alteration) []AlterationResponse {
	out := make([]AlterationResponse, 0, len(alterations))
	for _, a := range alterations {
		out = append(out, FromAlteration(a))
	}
	return out
}
