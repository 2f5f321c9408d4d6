package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func signFor(t *testing.T, secret, orderID, paymentID string) string {
	t.Helper()
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestRazorpayGateway_VerifySignature(t *testing.T) {
	g := &RazorpayGateway{keySecret: "test_secret"}

	t.Run("valid signature", func(t *testing.T) {
		sig := signFor(t, "test_secret", "order_1", "pay_1")
		if !g.VerifySignature("order_1", "pay_1", sig) {
			t.Fatalf("expected signature to verify")
		}
	})

	t.Run("single character mutation fails", func(t *testing.T) {
		sig := signFor(t, "test_secret", "order_1", "pay_1")
		mutated := []byte(sig)
		if mutated[0] == 'a' {
			mutated[0] = 'b'
		} else {
			mutated[0] = 'a'
		}
		if g.VerifySignature("order_1", "pay_1", string(mutated)) {
			t.Fatalf("expected mutated signature to fail")
		}
	})

	t.Run("wrong secret fails", func(t *testing.T) {
		sig := signFor(t, "other_secret", "order_1", "pay_1")
		if g.VerifySignature("order_1", "pay_1", sig) {
			t.Fatalf("expected signature from wrong secret to fail")
		}
	})

	t.Run("swapped ids fail", func(t *testing.T) {
		sig := signFor(t, "test_secret", "pay_1", "order_1")
		if g.VerifySignature("order_1", "pay_1", sig) {
			t.Fatalf("expected swapped payload to fail")
		}
	})

	t.Run("unconfigured gateway never verifies", func(t *testing.T) {
		var empty RazorpayGateway
		sig := signFor(t, "", "order_1", "pay_1")
		if empty.VerifySignature("order_1", "pay_1", sig) {
			t.Fatalf("expected unconfigured gateway to reject")
		}
	})
}
