package request

type CreateAlterationRequest struct {
	Customer CustomerRequest `json:"customer" binding:"required"`
	Note     string          `json:"note" binding:"required"`
	Quantity int             `json:"quantity"`
}

type UpdateAlterationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdateAlterationPaymentRequest struct {
	PaymentStatus  string `json:"paymentStatus" binding:"required"`
	PaymentID      string `json:"paymentId"`
	GatewayOrderID string `json:"razorpayOrderId"`
	Signature      string `json:"razorpaySignature"`
}

type AlterationTotalRequest struct {
	Total float64 `json:"total" binding:"required"`
}
