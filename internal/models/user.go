package models

import "time"

// User represents a row of the users table.
type User struct {
	UserID             string     `db:"user_id"`
	Email              string     `db:"email"`
	Name               string     `db:"name"`
	PasswordHash       string     `db:"password_hash"`
	AuthProvider       string     `db:"auth_provider"`
	DisplayCurrency    string     `db:"display_currency"`
	RefreshTokenHash   string     `db:"refresh_token_hash"`
	RefreshTokenExpiry *time.Time `db:"refresh_token_expiry"`
	AuditFields
}
