package models

import "time"

// User mirrors the users table row shape.
type User struct {
	UserID         string `db:"user_id"`
	Username       string `db:"username"`
	PasswordHash   string `db:"password_hash"`
	Name           string `db:"name"`
	Role           string `db:"role"`
	OrganizationID string `db:"organization_id"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
