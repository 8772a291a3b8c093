package models

// User is the DB-layer shape of a user row.
type User struct {
	UserID       string `db:"user_id"`
	Name         string `db:"name"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	GoogleID     string `db:"google_id"`
	AuditFields
}
