package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"serving_u/internal/adapter/http/handlers/mocks"
	"serving_u/internal/domain/entities"
	"serving_u/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestOrderHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/api/orders", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation error maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/api/orders", h.Create)

		uc.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).Return(entities.Order{}, usecase.ErrNoOrderItems)

		body := `{"customer":{"name":"A","address":"B","phone":"1","email":"a@b.com"},"items":[{"name":"Kurta","quantity":1}],"total":10}`
		req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success exposes legacy projections", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.POST("/api/orders", h.Create)

		uc.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, in usecase.PlaceOrderInput) (entities.Order, error) {
				if in.Customer.Name != "A" || len(in.Items) != 1 || in.Items[0].LaundryType != "wash" {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Order{
					ID:                   "ord-1",
					Sequence:             7,
					LaundryStatus:        entities.OrderStatusPending,
					LaundryPaymentStatus: entities.PaymentStatusPending,
					Total:                10,
				}, nil
			})

		body := `{"customer":{"name":"A","address":"B","phone":"1","email":"a@b.com"},"items":[{"name":"Shirt","quantity":1,"price":10,"laundryType":"wash"}],"total":10}`
		req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["status"] != "Pending" {
			t.Fatalf("expected legacy status Pending, got %v", resp["status"])
		}
		if resp["paymentStatus"] != "Cash on Delivery" {
			t.Fatalf("expected legacy paymentStatus Cash on Delivery, got %v", resp["paymentStatus"])
		}
		if resp["orderNo"] != float64(7) {
			t.Fatalf("expected orderNo 7, got %v", resp["orderNo"])
		}
	})
}

func TestOrderHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.GET("/api/orders/:id", h.GetByID)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Order{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/orders/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid status maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.PATCH("/api/orders/:id/status", h.UpdateStatus)

		uc.EXPECT().UpdateGroupStatus(gomock.Any(), "ord-1", "laundry", "Shipped").Return(entities.Order{}, usecase.ErrInvalidOrderStatus)

		req := httptest.NewRequest(http.MethodPatch, "/api/orders/ord-1/status", bytes.NewBufferString(`{"group":"laundry","status":"Shipped"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.PATCH("/api/orders/:id/status", h.UpdateStatus)

		uc.EXPECT().UpdateGroupStatus(gomock.Any(), "ord-1", "laundry", "Accepted").
			Return(entities.Order{ID: "ord-1", LaundryStatus: entities.OrderStatusAccepted}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/api/orders/ord-1/status", bytes.NewBufferString(`{"group":"laundry","status":"Accepted"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestOrderHandler_UpdatePaymentStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("forwards gateway fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.PATCH("/api/orders/:id/payment-status", h.UpdatePaymentStatus)

		uc.EXPECT().
			UpdateGroupPaymentStatus(gomock.Any(), "ord-1", "readymade", usecase.PaymentStatusInput{
				Status:         "Paid",
				PaymentID:      "pay_1",
				GatewayOrderID: "order_1",
				Signature:      "sig",
			}).
			Return(entities.Order{ID: "ord-1"}, nil)

		body := `{"group":"readymade","paymentStatus":"Paid","paymentId":"pay_1","razorpayOrderId":"order_1","razorpaySignature":"sig"}`
		req := httptest.NewRequest(http.MethodPatch, "/api/orders/ord-1/payment-status", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestOrderHandler_SetTotal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("null clears override", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.PATCH("/api/orders/:id/total", h.SetTotal)

		uc.EXPECT().SetAdminTotal(gomock.Any(), "ord-1", nil).Return(entities.Order{ID: "ord-1"}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/api/orders/ord-1/total", bytes.NewBufferString(`{"total":null}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("laundry total endpoint", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		h := NewOrderHandler(uc)

		r := gin.New()
		r.PATCH("/api/orders/:id/laundry-total", h.SetLaundryTotal)

		uc.EXPECT().SetLaundryAdminTotal(gomock.Any(), "ord-1", gomock.Any()).DoAndReturn(
			func(_ any, id string, total *float64) (entities.Order, error) {
				if total == nil || *total != 150 {
					t.Fatalf("expected total 150, got %v", total)
				}
				return entities.Order{ID: id, LaundryAdminTotal: total}, nil
			})

		req := httptest.NewRequest(http.MethodPatch, "/api/orders/ord-1/laundry-total", bytes.NewBufferString(`{"total":150}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
