package request

import (
	"serving_u/internal/domain/entities"
)

type CustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Email   string `json:"email" binding:"required"`
}

func (r CustomerRequest) ToEntity() entities.Customer {
	return entities.Customer{
		Name:    r.Name,
		Address: r.Address,
		Phone:   r.Phone,
		Email:   r.Email,
	}
}

type OrderItemRequest struct {
	ItemID      string  `json:"itemId"`
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity" binding:"required"`
	Category    string  `json:"category"`
	Size        string  `json:"size"`
	LaundryType string  `json:"laundryType"`
}

// CreateOrderRequest is the checkout payload. paymentStatus is the declared
// legacy value and seeds the readymade group only.
type CreateOrderRequest struct {
	Customer      CustomerRequest    `json:"customer" binding:"required"`
	Items         []OrderItemRequest `json:"items" binding:"required"`
	Total         float64            `json:"total"`
	Note          string             `json:"note"`
	PaymentStatus string             `json:"paymentStatus"`
}

func (r CreateOrderRequest) ToItems() []entities.OrderItem {
	items := make([]entities.OrderItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.OrderItem{
			ItemID:      it.ItemID,
			Name:        it.Name,
			Price:       it.Price,
			Quantity:    it.Quantity,
			Category:    it.Category,
			Size:        it.Size,
			LaundryType: it.LaundryType,
		})
	}
	return items
}

// UpdateOrderStatusRequest targets one group's fulfillment track.
type UpdateOrderStatusRequest struct {
	Group  string `json:"group" binding:"required"`
	Status string `json:"status" binding:"required"`
}

// UpdateOrderPaymentRequest targets one group's payment track. The gateway
// fields are recorded only when paymentStatus is Paid.
type UpdateOrderPaymentRequest struct {
	Group          string `json:"group" binding:"required"`
	PaymentStatus  string `json:"paymentStatus" binding:"required"`
	PaymentID      string `json:"paymentId"`
	GatewayOrderID string `json:"razorpayOrderId"`
	Signature      string `json:"razorpaySignature"`
}

// AdminTotalRequest carries an override; null clears it.
type AdminTotalRequest struct {
	Total *float64 `json:"total"`
}
