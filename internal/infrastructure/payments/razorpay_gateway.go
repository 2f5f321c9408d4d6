package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"serving_u/internal/usecase/interfaces"

	razorpay "github.com/razorpay/razorpay-go"
)

var ErrMissingRazorpayCredentials = errors.New("missing RAZORPAY_KEY_ID or RAZORPAY_KEY_SECRET")
var ErrRazorpayGatewayNotConfigured = errors.New("razorpay gateway not configured")
var ErrUnexpectedGatewayResponse = errors.New("unexpected razorpay response")

// RazorpayGateway creates payment orders against the Razorpay Orders API and
// verifies payment signatures locally with the key secret. In mock mode no
// network calls happen and every signature verifies against the same HMAC.

type RazorpayGateway struct {
	client    *razorpay.Client
	keySecret string
	mockMode  bool
}

var _ interfaces.IPaymentGateway = (*RazorpayGateway)(nil)

func NewRazorpayGateway(keyID, keySecret string) (*RazorpayGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &RazorpayGateway{keySecret: "mock", mockMode: true}, nil
	}

	if keyID == "" || keySecret == "" {
		log.Printf("[payment][gateway] missing RAZORPAY_KEY_ID or RAZORPAY_KEY_SECRET")
		return nil, ErrMissingRazorpayCredentials
	}

	log.Printf("[payment][gateway] Razorpay client initialized")
	return &RazorpayGateway{
		client:    razorpay.NewClient(keyID, keySecret),
		keySecret: keySecret,
	}, nil
}

func (g *RazorpayGateway) CreateIntent(ctx context.Context, amountMinorUnits int64, currency string) (string, error) {
	if g != nil && g.mockMode {
		id := "order_mock_" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[payment][gateway] mock create success order_id=%s amount=%d currency=%s", id, amountMinorUnits, currency)
		return id, nil
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return "", ErrRazorpayGatewayNotConfigured
	}
	log.Printf("[payment][gateway] create start amount=%d currency=%s", amountMinorUnits, currency)

	data := map[string]interface{}{
		"amount":   amountMinorUnits,
		"currency": currency,
	}
	resp, err := g.client.Order.Create(data, nil)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed err=%v", err)
		return "", err
	}

	id, ok := resp["id"].(string)
	if !ok || id == "" {
		log.Printf("[payment][gateway] response missing order id")
		return "", ErrUnexpectedGatewayResponse
	}
	log.Printf("[payment][gateway] create success order_id=%s", id)
	return id, nil
}

// VerifySignature recomputes HMAC-SHA256(orderID + "|" + paymentID, keySecret)
// and compares it to the signature Razorpay handed the client.
func (g *RazorpayGateway) VerifySignature(orderID, paymentID, signature string) bool {
	if g == nil || g.keySecret == "" {
		return false
	}
	expected := signPayload(g.keySecret, orderID+"|"+paymentID)
	return hmac.Equal([]byte(expected), []byte(signature))
}

func signPayload(secret, payload string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "RAZORPAY_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
