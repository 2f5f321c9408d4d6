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

func TestAuthHandler_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing email fails binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		r := gin.New()
		r.POST("/api/auth/register", h.Register)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(`{"password":"secret"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		r := gin.New()
		r.POST("/api/auth/register", h.Register)

		uc.EXPECT().Register(gomock.Any(), "a@b.com", "secret", "customer").
			Return(entities.User{}, usecase.ErrUserAlreadyExists)

		body := `{"email":"a@b.com","password":"secret","role":"customer"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		r := gin.New()
		r.POST("/api/auth/register", h.Register)

		uc.EXPECT().Register(gomock.Any(), "a@b.com", "secret", "customer").
			Return(entities.User{Email: "a@b.com", Role: entities.RoleCustomer}, nil)

		body := `{"email":"a@b.com","password":"secret","role":"customer"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("bad credentials map to 401", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		r := gin.New()
		r.POST("/api/auth/login", h.Login)

		uc.EXPECT().Login(gomock.Any(), "a@b.com", "wrong").
			Return(usecase.AuthResult{}, usecase.ErrInvalidCredentials)

		body := `{"email":"a@b.com","password":"wrong"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("success returns token and role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		r := gin.New()
		r.POST("/api/auth/login", h.Login)

		uc.EXPECT().Login(gomock.Any(), "a@b.com", "secret").
			Return(usecase.AuthResult{
				Token: "jwt-token",
				User:  entities.User{Email: "a@b.com", Role: entities.RoleAdmin},
			}, nil)

		body := `{"email":"a@b.com","password":"secret"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["token"] != "jwt-token" || resp["role"] != "admin" {
			t.Fatalf("unexpected response: %s", w.Body.String())
		}
	})
}

func TestAuthHandler_Profile(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown email maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		r := gin.New()
		r.GET("/api/auth/profile", h.GetProfile)

		uc.EXPECT().GetProfile(gomock.Any(), "nobody@b.com").
			Return(entities.User{}, usecase.ErrUserNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/auth/profile?email=nobody@b.com", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("update forwards fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		r := gin.New()
		r.POST("/api/auth/profile", h.UpdateProfile)

		uc.EXPECT().UpdateProfile(gomock.Any(), "a@b.com", "Asha", "9999", "12 Lane").
			Return(entities.User{Email: "a@b.com", Name: "Asha", Phone: "9999", Address: "12 Lane"}, nil)

		body := `{"email":"a@b.com","name":"Asha","phone":"9999","address":"12 Lane"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/profile", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
