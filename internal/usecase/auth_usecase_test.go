package usecase

import (
	"context"
	"errors"
	"testing"

	"serving_u/internal/domain/entities"
	mock_interfaces "serving_u/internal/usecase/interfaces/mocks"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const testJWTSecret = "unit-test-secret"

func TestAuthUseCase_Register(t *testing.T) {
	t.Run("missing email", func(t *testing.T) {
		uc := NewAuthUseCase(nil, testJWTSecret)
		_, err := uc.Register(context.Background(), "   ", "pw", "")
		if !errors.Is(err, ErrMissingEmail) {
			t.Fatalf("expected ErrMissingEmail, got %v", err)
		}
	})

	t.Run("missing password", func(t *testing.T) {
		uc := NewAuthUseCase(nil, testJWTSecret)
		_, err := uc.Register(context.Background(), "a@b.com", " ", "")
		if !errors.Is(err, ErrMissingPassword) {
			t.Fatalf("expected ErrMissingPassword, got %v", err)
		}
	})

	t.Run("invalid role", func(t *testing.T) {
		uc := NewAuthUseCase(nil, testJWTSecret)
		_, err := uc.Register(context.Background(), "a@b.com", "pw", "superuser")
		if !errors.Is(err, ErrInvalidRole) {
			t.Fatalf("expected ErrInvalidRole, got %v", err)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, testJWTSecret)

		users.EXPECT().GetByEmail(gomock.Any(), "a@b.com").Return(entities.User{Email: "a@b.com"}, nil)

		_, err := uc.Register(context.Background(), "a@b.com", "pw", "")
		if !errors.Is(err, ErrUserAlreadyExists) {
			t.Fatalf("expected ErrUserAlreadyExists, got %v", err)
		}
	})

	t.Run("normalizes email and hashes password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, testJWTSecret)

		users.EXPECT().GetByEmail(gomock.Any(), "a@b.com").Return(entities.User{}, nil)
		users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.Email != "a@b.com" {
					t.Fatalf("expected lowercased email, got %q", u.Email)
				}
				if u.Role != entities.RoleCustomer {
					t.Fatalf("expected customer role, got %q", u.Role)
				}
				if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("pw12345")); err != nil {
					t.Fatalf("stored hash does not match password: %v", err)
				}
				return u, nil
			})

		_, err := uc.Register(context.Background(), " A@B.com ", "pw12345", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestAuthUseCase_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("pw12345"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}

	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, testJWTSecret)

		users.EXPECT().GetByEmail(gomock.Any(), "a@b.com").Return(entities.User{}, nil)

		_, err := uc.Login(context.Background(), "a@b.com", "pw12345")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("google-only account rejects password login", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, testJWTSecret)

		users.EXPECT().GetByEmail(gomock.Any(), "a@b.com").Return(entities.User{Email: "a@b.com"}, nil)

		_, err := uc.Login(context.Background(), "a@b.com", "pw12345")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, testJWTSecret)

		users.EXPECT().GetByEmail(gomock.Any(), "a@b.com").Return(entities.User{Email: "a@b.com", PasswordHash: string(hash)}, nil)

		_, err := uc.Login(context.Background(), "a@b.com", "nope")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("successful login issues signed token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, testJWTSecret)

		users.EXPECT().GetByEmail(gomock.Any(), "a@b.com").Return(entities.User{Email: "a@b.com", PasswordHash: string(hash), Role: entities.RoleAdmin}, nil)

		res, err := uc.Login(context.Background(), "A@B.com", "pw12345")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		tok, err := jwt.Parse(res.Token, func(tk *jwt.Token) (any, error) {
			return []byte(testJWTSecret), nil
		})
		if err != nil || !tok.Valid {
			t.Fatalf("expected valid token, err=%v", err)
		}
		claims := tok.Claims.(jwt.MapClaims)
		if claims["sub"] != "a@b.com" || claims["role"] != "admin" {
			t.Fatalf("unexpected claims: %+v", claims)
		}
	})
}

func TestAuthUseCase_GoogleSignIn(t *testing.T) {
	t.Run("creates missing account as customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, testJWTSecret)

		users.EXPECT().GetByEmail(gomock.Any(), "new@b.com").Return(entities.User{}, nil)
		users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.Role != entities.RoleCustomer {
					t.Fatalf("expected customer role, got %q", u.Role)
				}
				if u.PasswordHash != "" {
					t.Fatalf("expected no password hash for google account")
				}
				return u, nil
			})

		res, err := uc.GoogleSignIn(context.Background(), "new@b.com", "New User", "", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Token == "" {
			t.Fatalf("expected token issued")
		}
	})

	t.Run("does not overwrite a user-set name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, testJWTSecret)

		existing := entities.User{Email: "a@b.com", Name: "Asha", Role: entities.RoleCustomer}
		users.EXPECT().GetByEmail(gomock.Any(), "a@b.com").Return(existing, nil)
		users.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.Name != "Asha" {
					t.Fatalf("expected name preserved, got %q", u.Name)
				}
				if u.Phone != "111" {
					t.Fatalf("expected phone filled, got %q", u.Phone)
				}
				return u, nil
			})

		_, err := uc.GoogleSignIn(context.Background(), "a@b.com", "Google Name", "111", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("replaces a placeholder name equal to the email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, testJWTSecret)

		existing := entities.User{Email: "a@b.com", Name: "a@b.com", Role: entities.RoleCustomer}
		users.EXPECT().GetByEmail(gomock.Any(), "a@b.com").Return(existing, nil)
		users.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.Name != "Google Name" {
					t.Fatalf("expected placeholder replaced, got %q", u.Name)
				}
				return u, nil
			})

		_, err := uc.GoogleSignIn(context.Background(), "a@b.com", "Google Name", "", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestAuthUseCase_Profile(t *testing.T) {
	t.Run("profile of unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, testJWTSecret)

		users.EXPECT().GetByEmail(gomock.Any(), "a@b.com").Return(entities.User{}, nil)

		_, err := uc.GetProfile(context.Background(), "a@b.com")
		if !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("update overwrites profile fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, testJWTSecret)

		users.EXPECT().GetByEmail(gomock.Any(), "a@b.com").Return(entities.User{Email: "a@b.com", Name: "Old"}, nil)
		users.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.Name != "New" || u.Phone != "222" || u.Address != "addr" {
					t.Fatalf("unexpected profile write: %+v", u)
				}
				return u, nil
			})

		_, err := uc.UpdateProfile(context.Background(), "a@b.com", "New", "222", "addr")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
