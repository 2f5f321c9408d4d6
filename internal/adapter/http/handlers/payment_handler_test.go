package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"serving_u/internal/adapter/http/handlers/mocks"
	"serving_u/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPaymentHandler_CreateIntent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing amount fails binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/api/razorpay/order", h.CreateIntent)

		req := httptest.NewRequest(http.MethodPost, "/api/razorpay/order", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success returns gateway order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/api/razorpay/order", h.CreateIntent)

		uc.EXPECT().CreateIntent(gomock.Any(), 500.0).
			Return(usecase.PaymentIntent{ID: "order_abc", Amount: 50000, Currency: "INR"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/razorpay/order", bytes.NewBufferString(`{"amount":500}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["orderId"] != "order_abc" || resp["amount"] != float64(50000) || resp["currency"] != "INR" {
			t.Fatalf("unexpected response: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_VerifyPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("mismatch maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/api/razorpay/verify-payment", h.VerifyPayment)

		uc.EXPECT().Verify(gomock.Any(), "order_1", "pay_1", "bad").Return(usecase.ErrPaymentVerificationFailed)

		body := `{"razorpay_order_id":"order_1","razorpay_payment_id":"pay_1","razorpay_signature":"bad"}`
		req := httptest.NewRequest(http.MethodPost, "/api/razorpay/verify-payment", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("verified", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/api/razorpay/verify-payment", h.VerifyPayment)

		uc.EXPECT().Verify(gomock.Any(), "order_1", "pay_1", "good").Return(nil)

		body := `{"razorpay_order_id":"order_1","razorpay_payment_id":"pay_1","razorpay_signature":"good"}`
		req := httptest.NewRequest(http.MethodPost, "/api/razorpay/verify-payment", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["verified"] != true {
			t.Fatalf("expected verified true, got %s", w.Body.String())
		}
	})
}
