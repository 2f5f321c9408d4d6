package entities

import (
	"strings"
	"time"
)

// ItemGroup partitions an order's line items into the two fulfillment tracks.
type ItemGroup string

const (
	GroupLaundry   ItemGroup = "laundry"
	GroupReadymade ItemGroup = "readymade"
)

func ParseItemGroup(s string) (ItemGroup, bool) {
	switch ItemGroup(strings.ToLower(strings.TrimSpace(s))) {
	case GroupLaundry:
		return GroupLaundry, true
	case GroupReadymade:
		return GroupReadymade, true
	}
	return "", false
}

// OrderStatus is the fulfillment state of one item group. The empty value
// means the order has no items of that group.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusAccepted  OrderStatus = "Accepted"
	OrderStatusRejected  OrderStatus = "Rejected"
	OrderStatusCompleted OrderStatus = "Completed"
	OrderStatusDelivered OrderStatus = "Delivered"
)

func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusAccepted, OrderStatusRejected,
		OrderStatusCompleted, OrderStatusDelivered:
		return OrderStatus(s), true
	}
	return "", false
}

// PaymentStatus tracks how one item group gets paid. Laundry groups stay
// Pending until the admin prices them.
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "Paid"
	PaymentStatusCOD     PaymentStatus = "Cash on Delivery"
	PaymentStatusPending PaymentStatus = "Pending"
)

func ParsePaymentStatus(s string) (PaymentStatus, bool) {
	switch PaymentStatus(s) {
	case PaymentStatusPaid, PaymentStatusCOD, PaymentStatusPending:
		return PaymentStatus(s), true
	}
	return "", false
}

// Customer is a point-in-time snapshot, not a reference to the live account.
type Customer struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// OrderItem snapshots a catalog item at purchase time so later catalog edits
// never rewrite order history.
type OrderItem struct {
	ItemID      string  `json:"itemId"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Category    string  `json:"category,omitempty"`
	Size        string  `json:"size,omitempty"`
	LaundryType string  `json:"laundryType,omitempty"`
}

// Group classifies a line item. An item is laundry when its laundryType tag is
// non-blank, or (pre-migration data) when its category is "laundry". Everything
// else is readymade.
func (it OrderItem) Group() ItemGroup {
	if strings.TrimSpace(it.LaundryType) != "" || it.Category == "laundry" {
		return GroupLaundry
	}
	return GroupReadymade
}

// GroupItems splits line items into the two groups and derives the readymade
// total (price x quantity over readymade items only). The laundry side has no
// derived total; it is priced by the admin after review.
func GroupItems(items []OrderItem) (laundry, readymade []OrderItem, readymadeTotal float64) {
	for _, it := range items {
		if it.Group() == GroupLaundry {
			laundry = append(laundry, it)
			continue
		}
		readymade = append(readymade, it)
		readymadeTotal += it.Price * float64(it.Quantity)
	}
	return laundry, readymade, readymadeTotal
}

// PaymentRecord holds the gateway identifiers recorded when a group is marked
// Paid. The signature is stored as supplied; verification is a separate step.
type PaymentRecord struct {
	PaymentID      string `json:"paymentId,omitempty"`
	GatewayOrderID string `json:"razorpayOrderId,omitempty"`
	Signature      string `json:"razorpaySignature,omitempty"`
}

// PaymentUpdate is the write applied to one group's payment track.
type PaymentUpdate struct {
	Status    PaymentStatus
	Record    PaymentRecord
	UpdatedAt time.Time
}

// Order is the purchase aggregate persisted in DynamoDB.
//
// Storage model:
//   - PK: id
//
// The split laundry/readymade fields are authoritative; the legacy combined
// status and payment status are projections (LegacyStatus, LegacyPaymentStatus)
// and are never stored.
type Order struct {
	ID       string      `json:"id"`
	Sequence int64       `json:"sequence"`
	Customer Customer    `json:"customer"`
	Items    []OrderItem `json:"items"`

	Total      float64  `json:"total"`
	AdminTotal *float64 `json:"adminTotal,omitempty"`
	Note       string   `json:"note,omitempty"`

	LaundryStatus   OrderStatus `json:"laundryStatus,omitempty"`
	ReadymadeStatus OrderStatus `json:"readymadeStatus,omitempty"`

	LaundryPaymentStatus   PaymentStatus `json:"laundryPaymentStatus,omitempty"`
	ReadymadePaymentStatus PaymentStatus `json:"readymadePaymentStatus,omitempty"`

	LaundryAdminTotal *float64 `json:"laundryAdminTotal,omitempty"`
	ReadymadeTotal    float64  `json:"readymadeTotal"`

	LaundryPayment   PaymentRecord `json:"laundryPayment,omitempty"`
	ReadymadePayment PaymentRecord `json:"readymadePayment,omitempty"`

	PaymentUpdatedAt *time.Time `json:"paymentUpdatedAt,omitempty"`
	CreatedAt        time.Time  `json:"timestamp"`
}

// statusRank orders statuses from least to most advanced for the legacy merge.
// Rejected sits just above Pending: a half-rejected order is still open work.
var statusRank = map[OrderStatus]int{
	OrderStatusPending:   0,
	OrderStatusRejected:  1,
	OrderStatusAccepted:  2,
	OrderStatusCompleted: 3,
	OrderStatusDelivered: 4,
}

// LegacyStatus projects the split statuses onto the single pre-migration
// field: the status of the only populated group, or the least-advanced of the
// two when both groups exist.
func (o Order) LegacyStatus() OrderStatus {
	switch {
	case o.LaundryStatus == "" && o.ReadymadeStatus == "":
		return OrderStatusPending
	case o.LaundryStatus == "":
		return o.ReadymadeStatus
	case o.ReadymadeStatus == "":
		return o.LaundryStatus
	}
	if statusRank[o.LaundryStatus] <= statusRank[o.ReadymadeStatus] {
		return o.LaundryStatus
	}
	return o.ReadymadeStatus
}

// LegacyPaymentStatus projects the split payment statuses onto the two-value
// pre-migration enum: Paid only when every populated group is Paid.
func (o Order) LegacyPaymentStatus() PaymentStatus {
	paid := true
	populated := false
	for _, ps := range []PaymentStatus{o.LaundryPaymentStatus, o.ReadymadePaymentStatus} {
		if ps == "" {
			continue
		}
		populated = true
		if ps != PaymentStatusPaid {
			paid = false
		}
	}
	if populated && paid {
		return PaymentStatusPaid
	}
	return PaymentStatusCOD
}

// EffectiveTotal is the payable grand total: the admin override when present,
// otherwise the customer-declared total.
func (o Order) EffectiveTotal() float64 {
	if o.AdminTotal != nil {
		return *o.AdminTotal
	}
	return o.Total
}

// LaundryPayable returns the payable laundry amount and whether the admin has
// priced the laundry group yet.
func (o Order) LaundryPayable() (float64, bool) {
	if o.LaundryAdminTotal != nil {
		return *o.LaundryAdminTotal, true
	}
	return 0, false
}
