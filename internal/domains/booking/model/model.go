package model

import (
	"strings"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID           = "id"
	FieldLocationID   = "location_id"
	FieldLocationName = "location_name"
	FieldDate         = "booking_date"
	FieldStartMin     = "start_min"
	FieldEndMin       = "end_min"
	FieldUsername     = "username"
	FieldUserType     = "user_type"
	FieldCreatedAt    = "created_at"
)

// Role is the requester's role, resolved once from its wire string.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
	RoleVisitor  Role = "visitor"
)

// ParseRole resolves a wire string case-insensitively. Unknown values report false.
func ParseRole(value string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(value))) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleEmployee:
		return RoleEmployee, true
	case RoleVisitor:
		return RoleVisitor, true
	default:
		return "", false
	}
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// CanBook reports whether the role may hold bookings at all.
func (r Role) CanBook() bool {
	return r == RoleAdmin || r == RoleEmployee
}

// Booking is an exclusive reservation of one location for [StartMin, EndMin) on Date.
// Bookings are never updated; rescheduling is delete + create.
type Booking struct {
	ID           string    `db:"id"`
	LocationID   string    `db:"location_id"`
	LocationName string    `db:"location_name"`
	Date         string    `db:"booking_date"`
	StartMin     int       `db:"start_min"`
	EndMin       int       `db:"end_min"`
	Username     string    `db:"username"`
	UserType     Role      `db:"user_type"`
	CreatedAt    time.Time `db:"created_at"`
}

// DisplayName is the label used in user-facing messages.
func (b Booking) DisplayName() string {
	if b.LocationName != "" {
		return b.LocationName
	}

	return b.LocationID
}
