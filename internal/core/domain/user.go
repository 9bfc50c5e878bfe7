package domain

import "time"

// AuthProvider identifies how a user signs in.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "local"
	ProviderGoogle AuthProvider = "google"
)

// User is an authenticated owner of accounts and transactions.
// DisplayCurrency is a presentation preference only: stored amounts stay
// in their native currency plus the base-currency snapshot.
type User struct {
	UserID             string       `json:"userID"`
	Email              string       `json:"email"`
	Name               string       `json:"name"`
	PasswordHash       string       `json:"-"`
	AuthProvider       AuthProvider `json:"authProvider"`
	DisplayCurrency    string       `json:"displayCurrency"`
	RefreshTokenHash   string       `json:"-"`
	RefreshTokenExpiry *time.Time   `json:"-"`
	AuditFields
}

// GoogleUserInfo is the subset of a Google profile needed to create or
// match a local user after an OAuth code exchange.
type GoogleUserInfo struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
}
