package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"serving_u/internal/domain/entities"
	"serving_u/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMissingEmail       = errors.New("email is required")
	ErrMissingPassword    = errors.New("password is required")
	ErrInvalidRole        = errors.New("invalid role")
)

const tokenTTL = time.Hour

// AuthResult is what a successful login hands back to the client.
type AuthResult struct {
	Token string
	User  entities.User
}

// IAuthUseCase covers registration, password and Google logins, and the
// profile read/update pair.

type IAuthUseCase interface {
	Register(ctx context.Context, email, password, role string) (entities.User, error)
	Login(ctx context.Context, email, password string) (AuthResult, error)
	GoogleSignIn(ctx context.Context, email, name, phone, address string) (AuthResult, error)
	GetProfile(ctx context.Context, email string) (entities.User, error)
	UpdateProfile(ctx context.Context, email, name, phone, address string) (entities.User, error)
}

type AuthUseCase struct {
	users     interfaces.IUserRepository
	jwtSecret []byte
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IUserRepository, jwtSecret string) *AuthUseCase {
	return &AuthUseCase{users: users, jwtSecret: []byte(jwtSecret)}
}

func (u *AuthUseCase) Register(ctx context.Context, email, password, role string) (entities.User, error) {
	email = normalizeEmail(email)
	if email == "" {
		return entities.User{}, ErrMissingEmail
	}
	if strings.TrimSpace(password) == "" {
		return entities.User{}, ErrMissingPassword
	}
	r := entities.RoleCustomer
	if strings.TrimSpace(role) != "" {
		parsed, ok := entities.ParseRole(role)
		if !ok {
			return entities.User{}, ErrInvalidRole
		}
		r = parsed
	}

	existing, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return entities.User{}, err
	}
	if existing.Email != "" {
		return entities.User{}, ErrUserAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return entities.User{}, err
	}

	created, err := u.users.Create(ctx, entities.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         r,
	})
	if err != nil {
		return entities.User{}, err
	}
	log.Printf("[auth][usecase] registered email=%s role=%s", created.Email, created.Role)
	return created, nil
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) (AuthResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return AuthResult{}, ErrInvalidCredentials
	}

	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return AuthResult{}, err
	}
	// Google-only accounts carry no hash and cannot use password login.
	if user.Email == "" || user.PasswordHash == "" {
		return AuthResult{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return AuthResult{}, ErrInvalidCredentials
	}

	token, err := u.issueToken(user)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{Token: token, User: user}, nil
}

// GoogleSignIn upserts an externally-authenticated account. Profile fields
// only fill blanks; in particular a name the user set themselves is never
// overwritten by the Google display name.
func (u *AuthUseCase) GoogleSignIn(ctx context.Context, email, name, phone, address string) (AuthResult, error) {
	email = normalizeEmail(email)
	if email == "" {
		return AuthResult{}, ErrMissingEmail
	}

	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return AuthResult{}, err
	}

	if user.Email == "" {
		user, err = u.users.Create(ctx, entities.User{
			Email:   email,
			Role:    entities.RoleCustomer,
			Name:    strings.TrimSpace(name),
			Phone:   strings.TrimSpace(phone),
			Address: strings.TrimSpace(address),
		})
		if err != nil {
			return AuthResult{}, err
		}
		log.Printf("[auth][usecase] google account created email=%s", email)
	} else {
		if n := strings.TrimSpace(name); n != "" && (user.Name == "" || user.Name == user.Email) {
			user.Name = n
		}
		if p := strings.TrimSpace(phone); p != "" {
			user.Phone = p
		}
		if a := strings.TrimSpace(address); a != "" {
			user.Address = a
		}
		user, err = u.users.Update(ctx, user)
		if err != nil {
			return AuthResult{}, err
		}
	}

	token, err := u.issueToken(user)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{Token: token, User: user}, nil
}

func (u *AuthUseCase) GetProfile(ctx context.Context, email string) (entities.User, error) {
	email = normalizeEmail(email)
	if email == "" {
		return entities.User{}, ErrMissingEmail
	}
	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return entities.User{}, err
	}
	if user.Email == "" {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}

func (u *AuthUseCase) UpdateProfile(ctx context.Context, email, name, phone, address string) (entities.User, error) {
	user, err := u.GetProfile(ctx, email)
	if err != nil {
		return entities.User{}, err
	}

	user.Name = strings.TrimSpace(name)
	user.Phone = strings.TrimSpace(phone)
	user.Address = strings.TrimSpace(address)
	return u.users.Update(ctx, user)
}

func (u *AuthUseCase) issueToken(user entities.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.Email,
		"role": string(user.Role),
		"exp":  time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(u.jwtSecret)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
