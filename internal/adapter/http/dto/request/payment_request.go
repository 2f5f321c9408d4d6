package request

// CreatePaymentIntentRequest carries a rupee amount; conversion to paise
// happens inside the payment engine.
type CreatePaymentIntentRequest struct {
	Amount float64 `json:"amount" binding:"required"`
}

// VerifyPaymentRequest uses the gateway's field names so the frontend can
// forward the checkout callback payload untouched.
type VerifyPaymentRequest struct {
	OrderID   string `json:"razorpay_order_id" binding:"required"`
	PaymentID string `json:"razorpay_payment_id" binding:"required"`
	Signature string `json:"razorpay_signature" binding:"required"`
}
