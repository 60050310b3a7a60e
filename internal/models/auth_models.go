package models

// User roles.
const (
	RoleAdmin   = "admin"
	RoleCashier = "cashier"
)

// IsValidRole reports whether r is a known role.
func IsValidRole(r string) bool {
	return r == RoleAdmin || r == RoleCashier
}

// User is a till operator identified by a 4-digit PIN. PINs are unique
// across users and compared by exact string equality.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	PIN  string `json:"pin"`
	Role string `json:"role"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
