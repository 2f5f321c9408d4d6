package usecase

import (
	"context"
	"errors"
	"log"
	"math"
	"strings"

	"serving_u/internal/usecase/interfaces"
)

var (
	ErrInvalidPaymentAmount      = errors.New("payment amount must be positive")
	ErrMissingVerificationField  = errors.New("missing payment verification field")
	ErrPaymentVerificationFailed = errors.New("payment verification failed")
	ErrPaymentGatewayUnavailable = errors.New("payment gateway not configured")
)

const paymentCurrency = "INR"

// PaymentIntent is the provider-side order a client completes checkout
// against. Amount is in minor units (paise).
type PaymentIntent struct {
	ID       string
	Amount   int64
	Currency string
}

// IPaymentUseCase wraps the gateway for the two checkout operations.
//
// Verify is stateless: a successful verification does not mark anything Paid;
// the client follows up with the payment-status update on the order or
// alteration it paid for.

type IPaymentUseCase interface {
	CreateIntent(ctx context.Context, amount float64) (PaymentIntent, error)
	Verify(ctx context.Context, orderID, paymentID, signature string) error
}

type PaymentUseCase struct {
	gateway interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{gateway: gateway}
}

// CreateIntent registers a rupee amount with the gateway. Amounts convert to
// paise before leaving the service; rounding guards against float drift on
// values like 99.999.
func (u *PaymentUseCase) CreateIntent(ctx context.Context, amount float64) (PaymentIntent, error) {
	if amount <= 0 {
		return PaymentIntent{}, ErrInvalidPaymentAmount
	}
	if u.gateway == nil {
		return PaymentIntent{}, ErrPaymentGatewayUnavailable
	}

	minor := int64(math.Round(amount * 100))
	id, err := u.gateway.CreateIntent(ctx, minor, paymentCurrency)
	if err != nil {
		log.Printf("[payment][usecase] intent creation failed amount_minor=%d err=%v", minor, err)
		return PaymentIntent{}, err
	}
	log.Printf("[payment][usecase] intent created intent_id=%s amount_minor=%d", id, minor)
	return PaymentIntent{ID: id, Amount: minor, Currency: paymentCurrency}, nil
}

// Verify recomputes the gateway signature and compares it against the one the
// client presented. On mismatch the error is generic; the expected digest is
// never echoed back.
func (u *PaymentUseCase) Verify(ctx context.Context, orderID, paymentID, signature string) error {
	orderID = strings.TrimSpace(orderID)
	paymentID = strings.TrimSpace(paymentID)
	signature = strings.TrimSpace(signature)
	if orderID == "" || paymentID == "" || signature == "" {
		return ErrMissingVerificationField
	}
	if u.gateway == nil {
		return ErrPaymentGatewayUnavailable
	}

	if !u.gateway.VerifySignature(orderID, paymentID, signature) {
		log.Printf("[payment][usecase] signature mismatch gateway_order_id=%s payment_id=%s", orderID, paymentID)
		return ErrPaymentVerificationFailed
	}
	log.Printf("[payment][usecase] payment verified gateway_order_id=%s payment_id=%s", orderID, paymentID)
	return nil
}
