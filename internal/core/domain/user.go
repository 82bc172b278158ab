package domain

import "time"

// User represents a registered trader. BalanceCents is the only mutable
// aggregate; every change to it is paired with a ledger event in the same
// database transaction (except top-ups, which have no event).
type User struct {
	UserID       string `json:"userID"` // Primary key (UUID)
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	BalanceCents int64  `json:"balanceCents"` // Cash balance in minor units
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Soft delete
}
