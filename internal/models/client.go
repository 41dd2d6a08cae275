package models

import (
	"database/sql"
	"time"
)

// Client mirrors the clients table row shape. Status is kept as the raw
// string and decoded into the domain enum at the mapping boundary.
type Client struct {
	ClientID       string         `db:"client_id"`
	OrganizationID string         `db:"organization_id"`
	Name           string         `db:"name"`
	Email          string         `db:"email"`
	Phone          sql.NullString `db:"phone"`
	DateOfBirth    time.Time      `db:"dob"`
	Status         string         `db:"status"`
	Related        sql.NullString `db:"related"`
	Avatar         sql.NullString `db:"avatar"`
	AuditFields
}
