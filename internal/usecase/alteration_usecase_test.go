package usecase

import (
	"context"
	"errors"
	"testing"

	"serving_u/internal/domain/entities"
	mock_interfaces "serving_u/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAlterationUseCase_Create(t *testing.T) {
	t.Run("missing customer field", func(t *testing.T) {
		uc := NewAlterationUseCase(nil, nil)
		c := validOrderCustomer()
		c.Email = ""
		_, err := uc.Create(context.Background(), CreateAlterationInput{Customer: c, Note: "hem trousers"})
		if !errors.Is(err, ErrMissingAlterationFields) {
			t.Fatalf("expected ErrMissingAlterationFields, got %v", err)
		}
	})

	t.Run("blank note", func(t *testing.T) {
		uc := NewAlterationUseCase(nil, nil)
		_, err := uc.Create(context.Background(), CreateAlterationInput{Customer: validOrderCustomer(), Note: "   "})
		if !errors.Is(err, ErrMissingAlterationFields) {
			t.Fatalf("expected ErrMissingAlterationFields, got %v", err)
		}
	})

	t.Run("negative quantity", func(t *testing.T) {
		uc := NewAlterationUseCase(nil, nil)
		_, err := uc.Create(context.Background(), CreateAlterationInput{Customer: validOrderCustomer(), Note: "hem", Quantity: -2})
		if !errors.Is(err, ErrInvalidAlterationCount) {
			t.Fatalf("expected ErrInvalidAlterationCount, got %v", err)
		}
	})

	t.Run("quantity defaults to one", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAlterationRepository(ctrl)
		uc := NewAlterationUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.Alteration) (entities.Alteration, error) {
				if a.Quantity != 1 {
					t.Fatalf("expected quantity 1, got %d", a.Quantity)
				}
				if a.Status != entities.AlterationStatusPending {
					t.Fatalf("expected pending status, got %q", a.Status)
				}
				if a.PaymentStatus != entities.PaymentStatusPending {
					t.Fatalf("expected Pending payment, got %q", a.PaymentStatus)
				}
				return a, nil
			})

		_, err := uc.Create(context.Background(), CreateAlterationInput{Customer: validOrderCustomer(), Note: "hem trousers"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestAlterationUseCase_UpdateStatus(t *testing.T) {
	t.Run("capitalized status rejected", func(t *testing.T) {
		uc := NewAlterationUseCase(nil, nil)
		_, err := uc.UpdateStatus(context.Background(), "alt-1", "Accepted")
		if !errors.Is(err, ErrInvalidAlterationStatus) {
			t.Fatalf("expected ErrInvalidAlterationStatus, got %v", err)
		}
	})

	t.Run("plain transition carries no payment write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAlterationRepository(ctrl)
		uc := NewAlterationUseCase(repo, nil)

		repo.EXPECT().
			UpdateStatus(gomock.Any(), "alt-1", entities.AlterationStatusAccepted, nil).
			Return(entities.Alteration{ID: "alt-1", Status: entities.AlterationStatusAccepted}, nil)

		got, err := uc.UpdateStatus(context.Background(), "alt-1", "accepted")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.AlterationStatusAccepted {
			t.Fatalf("expected accepted, got %q", got.Status)
		}
	})

	t.Run("delivered implies paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAlterationRepository(ctrl)
		uc := NewAlterationUseCase(repo, nil)

		repo.EXPECT().
			UpdateStatus(gomock.Any(), "alt-1", entities.AlterationStatusDelivered, gomock.Any()).
			DoAndReturn(func(_ context.Context, id string, st entities.AlterationStatus, p *entities.PaymentUpdate) (entities.Alteration, error) {
				if p == nil {
					t.Fatalf("expected payment write alongside delivery")
				}
				if p.Status != entities.PaymentStatusPaid {
					t.Fatalf("expected Paid, got %q", p.Status)
				}
				if p.UpdatedAt.IsZero() {
					t.Fatalf("expected payment timestamp stamped")
				}
				return entities.Alteration{ID: id, Status: st, PaymentStatus: p.Status}, nil
			})

		got, err := uc.UpdateStatus(context.Background(), "alt-1", "delivered")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.PaymentStatus != entities.PaymentStatusPaid {
			t.Fatalf("expected Paid after delivery, got %q", got.PaymentStatus)
		}
	})

	t.Run("unknown alteration", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAlterationRepository(ctrl)
		uc := NewAlterationUseCase(repo, nil)

		repo.EXPECT().
			UpdateStatus(gomock.Any(), "missing", entities.AlterationStatusRejected, nil).
			Return(entities.Alteration{}, nil)

		_, err := uc.UpdateStatus(context.Background(), "missing", "rejected")
		if !errors.Is(err, ErrAlterationNotFound) {
			t.Fatalf("expected ErrAlterationNotFound, got %v", err)
		}
	})
}

func TestAlterationUseCase_UpdatePaymentStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewAlterationUseCase(nil, nil)
		_, err := uc.UpdatePaymentStatus(context.Background(), "alt-1", PaymentStatusInput{Status: "paid"})
		if !errors.Is(err, ErrInvalidPaymentStatus) {
			t.Fatalf("expected ErrInvalidPaymentStatus, got %v", err)
		}
	})

	t.Run("paid with gateway record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAlterationRepository(ctrl)
		uc := NewAlterationUseCase(repo, nil)

		repo.EXPECT().
			UpdatePayment(gomock.Any(), "alt-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, id string, p entities.PaymentUpdate) (entities.Alteration, error) {
				if p.Record.PaymentID != "pay_9" {
					t.Fatalf("expected payment id retained, got %+v", p.Record)
				}
				return entities.Alteration{ID: id, PaymentStatus: p.Status}, nil
			})

		in := PaymentStatusInput{Status: "Paid", PaymentID: "pay_9", GatewayOrderID: "order_9"}
		_, err := uc.UpdatePaymentStatus(context.Background(), "alt-1", in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestAlterationUseCase_SetAdminTotal(t *testing.T) {
	t.Run("zero total rejected", func(t *testing.T) {
		uc := NewAlterationUseCase(nil, nil)
		_, err := uc.SetAdminTotal(context.Background(), "alt-1", 0)
		if !errors.Is(err, ErrInvalidAlterationTotal) {
			t.Fatalf("expected ErrInvalidAlterationTotal, got %v", err)
		}
	})

	t.Run("positive total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAlterationRepository(ctrl)
		uc := NewAlterationUseCase(repo, nil)

		repo.EXPECT().UpdateAdminTotal(gomock.Any(), "alt-1", 250.0).Return(entities.Alteration{ID: "alt-1"}, nil)

		_, err := uc.SetAdminTotal(context.Background(), "alt-1", 250)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
