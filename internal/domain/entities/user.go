package entities

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleCustomer:
		return Role(s), true
	}
	return "", false
}

// User is an account record. PasswordHash is empty for accounts created
// through Google sign-in; such accounts cannot log in with a password.
//
// Storage model:
//   - PK: email
type User struct {
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
	Name         string `json:"name,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Address      string `json:"address,omitempty"`
}
