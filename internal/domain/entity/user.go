package entity

// Roles conocidos del marketplace. Solo RoleVendor puede usar el portal.
const (
	RoleVendor   = "vendor"
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// User identidad cacheada del usuario autenticado.
type User struct {
	ID    string
	Name  string
	Email string
	Role  string // vendor, customer, admin
}

// IsVendor indica si el usuario puede operar el portal.
func (u *User) IsVendor() bool {
	return u != nil && u.Role == RoleVendor
}
