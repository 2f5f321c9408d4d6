package response

import "serving_u/internal/domain/entities"

type AuthResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

func FromAuth(token string, u entities.User) AuthResponse {
	return AuthResponse{
		Token: token,
		Role:  string(u.Role),
		Email: u.Email,
		Name:  u.Name,
	}
}
