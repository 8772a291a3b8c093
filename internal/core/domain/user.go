package domain

// User represents an authenticated owner of banks, bills and transactions.
type User struct {
	UserID       string `json:"userID"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	GoogleID     string `json:"-"` // set for Google sign-in users
	AuditFields
}
