package response

// PaymentIntentResponse mirrors the gateway order object fields the checkout
// widget needs.
type PaymentIntentResponse struct {
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type VerifyPaymentResponse struct {
	Verified bool   `json:"verified"`
	Message  string `json:"message"`
}
