package entities

import "time"

// AlterationStatus is the single lifecycle of an alteration appointment. The
// values are lowercase, unlike order statuses; the two enums predate each
// other and existing clients depend on both spellings.
type AlterationStatus string

const (
	AlterationStatusPending   AlterationStatus = "pending"
	AlterationStatusAccepted  AlterationStatus = "accepted"
	AlterationStatusRejected  AlterationStatus = "rejected"
	AlterationStatusCompleted AlterationStatus = "completed"
	AlterationStatusDelivered AlterationStatus = "delivered"
)

func ParseAlterationStatus(s string) (AlterationStatus, bool) {
	switch AlterationStatus(s) {
	case AlterationStatusPending, AlterationStatusAccepted, AlterationStatusRejected,
		AlterationStatusCompleted, AlterationStatusDelivered:
		return AlterationStatus(s), true
	}
	return "", false
}

// Alteration is a tailoring appointment. It carries no catalog items; the
// admin prices it after inspection, so payment starts Pending.
//
// Storage model:
//   - PK: id
type Alteration struct {
	ID       string   `json:"id"`
	Customer Customer `json:"customer"`
	Note     string   `json:"note"`
	Quantity int      `json:"quantity"`

	Status     AlterationStatus `json:"status"`
	AdminTotal *float64         `json:"adminTotal,omitempty"`

	PaymentStatus    PaymentStatus `json:"paymentStatus"`
	Payment          PaymentRecord `json:"payment,omitempty"`
	PaymentUpdatedAt *time.Time    `json:"paymentUpdatedAt,omitempty"`

	CreatedAt time.Time `json:"timestamp"`
}
