package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User mirrors a platform account as returned by the platform API.
type User struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Role          string    `json:"role"`
	EmailVerified bool      `json:"emailVerified"`
	PhoneVerified bool      `json:"phoneVerified"`
	ReferralCode  string    `json:"referralCode,omitempty"`
	ReferredBy    string    `json:"referredBy,omitempty"`
	ReferredUsers []User    `json:"referredUsers,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// IsAdmin reports whether the user is eligible to be drawn as a winner.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Credentials is the payload for POST /auth/login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult is the data object returned by a successful login.
type AuthResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
