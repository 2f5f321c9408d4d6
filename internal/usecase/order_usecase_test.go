package usecase

import (
	"context"
	"errors"
	"testing"

	"serving_u/internal/domain/entities"
	mock_interfaces "serving_u/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validOrderCustomer() entities.Customer {
	return entities.Customer{
		Name:    "Asha Verma",
		Address: "12 MG Road, Pune",
		Phone:   "9876543210",
		Email:   "asha@example.com",
	}
}

func TestOrderUseCase_PlaceOrder_Validations(t *testing.T) {
	item := entities.OrderItem{Name: "Kurta", Price: 499, Quantity: 1}

	t.Run("missing customer field", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil)
		c := validOrderCustomer()
		c.Phone = "  "
		_, err := uc.PlaceOrder(context.Background(), PlaceOrderInput{Customer: c, Items: []entities.OrderItem{item}})
		if !errors.Is(err, ErrMissingCustomerField) {
			t.Fatalf("expected ErrMissingCustomerField, got %v", err)
		}
	})

	t.Run("no items", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil)
		_, err := uc.PlaceOrder(context.Background(), PlaceOrderInput{Customer: validOrderCustomer()})
		if !errors.Is(err, ErrNoOrderItems) {
			t.Fatalf("expected ErrNoOrderItems, got %v", err)
		}
	})

	t.Run("item with zero quantity", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil)
		bad := entities.OrderItem{Name: "Kurta", Price: 499, Quantity: 0}
		_, err := uc.PlaceOrder(context.Background(), PlaceOrderInput{Customer: validOrderCustomer(), Items: []entities.OrderItem{bad}})
		if !errors.Is(err, ErrInvalidOrderItem) {
			t.Fatalf("expected ErrInvalidOrderItem, got %v", err)
		}
	})

	t.Run("item with blank name", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil)
		bad := entities.OrderItem{Name: "   ", Price: 499, Quantity: 1}
		_, err := uc.PlaceOrder(context.Background(), PlaceOrderInput{Customer: validOrderCustomer(), Items: []entities.OrderItem{bad}})
		if !errors.Is(err, ErrInvalidOrderItem) {
			t.Fatalf("expected ErrInvalidOrderItem, got %v", err)
		}
	})

	t.Run("negative total", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil)
		_, err := uc.PlaceOrder(context.Background(), PlaceOrderInput{Customer: validOrderCustomer(), Items: []entities.OrderItem{item}, Total: -1})
		if !errors.Is(err, ErrInvalidOrderTotal) {
			t.Fatalf("expected ErrInvalidOrderTotal, got %v", err)
		}
	})

	t.Run("unknown declared payment status", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil)
		in := PlaceOrderInput{Customer: validOrderCustomer(), Items: []entities.OrderItem{item}, Total: 499, PaymentStatus: "Refunded"}
		_, err := uc.PlaceOrder(context.Background(), in)
		if !errors.Is(err, ErrInvalidPaymentStatus) {
			t.Fatalf("expected ErrInvalidPaymentStatus, got %v", err)
		}
	})
}

func TestOrderUseCase_PlaceOrder_GroupSeeding(t *testing.T) {
	t.Run("mixed order seeds both tracks", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		seq := mock_interfaces.NewMockISequenceRepository(ctrl)
		uc := NewOrderUseCase(repo, seq, nil)

		items := []entities.OrderItem{
			{Name: "Shirt", Price: 30, Quantity: 2, LaundryType: "dry-clean"},
			{Name: "Saree", Price: 1499, Quantity: 1, Category: "readymade"},
		}

		seq.EXPECT().Next(gomock.Any(), "orders").Return(int64(42), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.ID == "" {
					t.Fatalf("expected generated order id")
				}
				if o.Sequence != 42 {
					t.Fatalf("expected sequence 42, got %d", o.Sequence)
				}
				if o.LaundryStatus != entities.OrderStatusPending {
					t.Fatalf("expected laundry status Pending, got %q", o.LaundryStatus)
				}
				if o.ReadymadeStatus != entities.OrderStatusPending {
					t.Fatalf("expected readymade status Pending, got %q", o.ReadymadeStatus)
				}
				if o.LaundryPaymentStatus != entities.PaymentStatusPending {
					t.Fatalf("expected laundry payment Pending, got %q", o.LaundryPaymentStatus)
				}
				if o.ReadymadePaymentStatus != entities.PaymentStatusCOD {
					t.Fatalf("expected readymade payment COD, got %q", o.ReadymadePaymentStatus)
				}
				if o.ReadymadeTotal != 1499 {
					t.Fatalf("expected readymade total 1499, got %v", o.ReadymadeTotal)
				}
				return o, nil
			})

		_, err := uc.PlaceOrder(context.Background(), PlaceOrderInput{Customer: validOrderCustomer(), Items: items, Total: 1559})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("laundry-only order leaves readymade track unset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		seq := mock_interfaces.NewMockISequenceRepository(ctrl)
		uc := NewOrderUseCase(repo, seq, nil)

		items := []entities.OrderItem{{Name: "Shirt", Price: 30, Quantity: 1, Category: "laundry"}}

		seq.EXPECT().Next(gomock.Any(), "orders").Return(int64(7), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.ReadymadeStatus != "" || o.ReadymadePaymentStatus != "" {
					t.Fatalf("expected readymade track unset, got status=%q payment=%q", o.ReadymadeStatus, o.ReadymadePaymentStatus)
				}
				if o.ReadymadeTotal != 0 {
					t.Fatalf("expected readymade total 0, got %v", o.ReadymadeTotal)
				}
				return o, nil
			})

		_, err := uc.PlaceOrder(context.Background(), PlaceOrderInput{Customer: validOrderCustomer(), Items: items, Total: 30})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("zero total accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		seq := mock_interfaces.NewMockISequenceRepository(ctrl)
		uc := NewOrderUseCase(repo, seq, nil)

		items := []entities.OrderItem{{Name: "Shirt", Price: 0, Quantity: 1, LaundryType: "wash"}}

		seq.EXPECT().Next(gomock.Any(), "orders").Return(int64(1), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil })

		_, err := uc.PlaceOrder(context.Background(), PlaceOrderInput{Customer: validOrderCustomer(), Items: items, Total: 0})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("sequence failure aborts creation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		seq := mock_interfaces.NewMockISequenceRepository(ctrl)
		uc := NewOrderUseCase(repo, seq, nil)

		items := []entities.OrderItem{{Name: "Shirt", Price: 30, Quantity: 1, LaundryType: "wash"}}

		seq.EXPECT().Next(gomock.Any(), "orders").Return(int64(0), errors.New("counter down"))

		_, err := uc.PlaceOrder(context.Background(), PlaceOrderInput{Customer: validOrderCustomer(), Items: items, Total: 30})
		if err == nil || err.Error() != "counter down" {
			t.Fatalf("expected counter down error, got %v", err)
		}
	})
}

func TestOrderUseCase_GetByID(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("not found maps zero value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{}, nil)

		_, err := uc.GetByID(context.Background(), "ord-1")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1"}, nil)

		got, err := uc.GetByID(context.Background(), " ord-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "ord-1" {
			t.Fatalf("expected ord-1, got %q", got.ID)
		}
	})
}

func TestOrderUseCase_UpdateGroupStatus(t *testing.T) {
	t.Run("invalid group", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil)
		_, err := uc.UpdateGroupStatus(context.Background(), "ord-1", "stitched", "Accepted")
		if !errors.Is(err, ErrInvalidItemGroup) {
			t.Fatalf("expected ErrInvalidItemGroup, got %v", err)
		}
	})

	t.Run("invalid status never reaches repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil)

		_, err := uc.UpdateGroupStatus(context.Background(), "ord-1", "laundry", "Shipped")
		if !errors.Is(err, ErrInvalidOrderStatus) {
			t.Fatalf("expected ErrInvalidOrderStatus, got %v", err)
		}
	})

	t.Run("lowercase status rejected", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil)
		_, err := uc.UpdateGroupStatus(context.Background(), "ord-1", "laundry", "pending")
		if !errors.Is(err, ErrInvalidOrderStatus) {
			t.Fatalf("expected ErrInvalidOrderStatus, got %v", err)
		}
	})

	t.Run("valid transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil)

		repo.EXPECT().
			UpdateGroupStatus(gomock.Any(), "ord-1", entities.GroupLaundry, entities.OrderStatusAccepted).
			Return(entities.Order{ID: "ord-1", LaundryStatus: entities.OrderStatusAccepted}, nil)

		got, err := uc.UpdateGroupStatus(context.Background(), "ord-1", "laundry", "Accepted")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.LaundryStatus != entities.OrderStatusAccepted {
			t.Fatalf("expected Accepted, got %q", got.LaundryStatus)
		}
	})

	t.Run("unknown order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil)

		repo.EXPECT().
			UpdateGroupStatus(gomock.Any(), "missing", entities.GroupReadymade, entities.OrderStatusDelivered).
			Return(entities.Order{}, nil)

		_, err := uc.UpdateGroupStatus(context.Background(), "missing", "readymade", "Delivered")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}

func TestOrderUseCase_UpdateGroupPaymentStatus(t *testing.T) {
	t.Run("invalid payment status", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil)
		_, err := uc.UpdateGroupPaymentStatus(context.Background(), "ord-1", "laundry", PaymentStatusInput{Status: "Settled"})
		if !errors.Is(err, ErrInvalidPaymentStatus) {
			t.Fatalf("expected ErrInvalidPaymentStatus, got %v", err)
		}
	})

	t.Run("paid with gateway ids records them", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil)

		repo.EXPECT().
			UpdateGroupPayment(gomock.Any(), "ord-1", entities.GroupLaundry, gomock.Any()).
			DoAndReturn(func(_ context.Context, id string, g entities.ItemGroup, p entities.PaymentUpdate) (entities.Order, error) {
				if p.Status != entities.PaymentStatusPaid {
					t.Fatalf("expected Paid, got %q", p.Status)
				}
				if p.Record.PaymentID != "pay_123" || p.Record.GatewayOrderID != "order_456" || p.Record.Signature != "sig" {
					t.Fatalf("expected gateway record retained, got %+v", p.Record)
				}
				if p.UpdatedAt.IsZero() {
					t.Fatalf("expected payment timestamp stamped")
				}
				return entities.Order{ID: id, LaundryPaymentStatus: p.Status}, nil
			})

		in := PaymentStatusInput{Status: "Paid", PaymentID: " pay_123 ", GatewayOrderID: "order_456", Signature: "sig"}
		_, err := uc.UpdateGroupPaymentStatus(context.Background(), "ord-1", "laundry", in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("cash on delivery carries no gateway record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil)

		repo.EXPECT().
			UpdateGroupPayment(gomock.Any(), "ord-1", entities.GroupReadymade, gomock.Any()).
			DoAndReturn(func(_ context.Context, id string, g entities.ItemGroup, p entities.PaymentUpdate) (entities.Order, error) {
				if p.Record != (entities.PaymentRecord{}) {
					t.Fatalf("expected empty record, got %+v", p.Record)
				}
				return entities.Order{ID: id}, nil
			})

		in := PaymentStatusInput{Status: "Cash on Delivery", PaymentID: "pay_123"}
		_, err := uc.UpdateGroupPaymentStatus(context.Background(), "ord-1", "readymade", in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestOrderUseCase_SetAdminTotal(t *testing.T) {
	t.Run("negative override rejected", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil)
		total := -5.0
		_, err := uc.SetAdminTotal(context.Background(), "ord-1", &total)
		if !errors.Is(err, ErrInvalidOrderAdminTotal) {
			t.Fatalf("expected ErrInvalidOrderAdminTotal, got %v", err)
		}
	})

	t.Run("zero override accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil)

		total := 0.0
		repo.EXPECT().UpdateAdminTotal(gomock.Any(), "ord-1", &total).Return(entities.Order{ID: "ord-1", AdminTotal: &total}, nil)

		got, err := uc.SetAdminTotal(context.Background(), "ord-1", &total)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.AdminTotal == nil || *got.AdminTotal != 0 {
			t.Fatalf("expected zero admin total, got %v", got.AdminTotal)
		}
	})

	t.Run("nil clears override", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil)

		repo.EXPECT().UpdateAdminTotal(gomock.Any(), "ord-1", nil).Return(entities.Order{ID: "ord-1"}, nil)

		got, err := uc.SetAdminTotal(context.Background(), "ord-1", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.AdminTotal != nil {
			t.Fatalf("expected cleared admin total, got %v", *got.AdminTotal)
		}
	})

	t.Run("laundry admin total uses its own column", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil)

		total := 120.0
		repo.EXPECT().UpdateLaundryAdminTotal(gomock.Any(), "ord-1", &total).Return(entities.Order{ID: "ord-1", LaundryAdminTotal: &total}, nil)

		got, err := uc.SetLaundryAdminTotal(context.Background(), "ord-1", &total)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.LaundryAdminTotal == nil || *got.LaundryAdminTotal != 120 {
			t.Fatalf("expected laundry admin total 120, got %v", got.LaundryAdminTotal)
		}
	})
}
