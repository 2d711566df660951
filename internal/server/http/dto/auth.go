package dto

// RegisterRequest describes a signup payload. The profile fields are
// role-dependent: vendors fill name/location/contactInfo, buyers fill
// companyName/contactName/phone/address.
type RegisterRequest struct {
	Role     string `json:"role"`
	Email    string `json:"email"`
	Password string `json:"password"`

	Name        string `json:"name"`
	Location    string `json:"location"`
	ContactInfo string `json:"contactInfo"`

	CompanyName string `json:"companyName"`
	ContactName string `json:"contactName"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
}

// LoginRequest describes email/password payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID    string `json:"id"`
	Role  string `json:"role"`
	Email string `json:"email"`

	Name        string `json:"name,omitempty"`
	Location    string `json:"location,omitempty"`
	ContactInfo string `json:"contactInfo,omitempty"`

	CompanyName string `json:"companyName,omitempty"`
	ContactName string `json:"contactName,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
}

// AuthResponse carries the session token together with the account it grants.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
