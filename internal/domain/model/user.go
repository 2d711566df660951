package model

import "time"

// Role distinguishes the two marketplace parties.
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleVendor Role = "vendor"
)

// Valid reports whether the role is one of the known parties.
func (r Role) Valid() bool {
	return r == RoleBuyer || r == RoleVendor
}

// User represents a marketplace account. Vendor and buyer accounts share the
// struct; the role decides which of the profile fields are populated.
type User struct {
	ID           string
	Role         Role
	Email        string
	PasswordHash string

	// vendor profile
	Name        string
	Location    string
	ContactInfo string

	// buyer profile
	CompanyName string
	ContactName string
	Phone       string
	Address     string

	CreatedAt time.Time
}

// DisplayName returns the name shown on orders: the company name for buyers,
// the farm name for vendors.
func (u *User) DisplayName() string {
	if u.Role == RoleBuyer {
		return u.CompanyName
	}
	return u.Name
}
