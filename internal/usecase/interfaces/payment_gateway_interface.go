package interfaces

import "context"

// IPaymentGateway abstracts the external payment provider (Razorpay).
//
// CreateIntent registers a payable amount with the provider and returns its
// order id. VerifySignature checks a completed payment's HMAC signature; it is
// stateless and never mutates our records.

type IPaymentGateway interface {
	CreateIntent(ctx context.Context, amountMinorUnits int64, currency string) (intentID string, err error)
	VerifySignature(orderID, paymentID, signature string) bool
}
