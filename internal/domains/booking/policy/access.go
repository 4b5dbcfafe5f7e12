package policy

import "smartoffice/internal/domains/booking/model"

// Principal identifies who is asking, or who owns a booking.
type Principal struct {
	Username string
	Role     model.Role
}

// Owner returns the principal that created booking.
func Owner(booking model.Booking) Principal {
	return Principal{Username: booking.Username, Role: booking.UserType}
}

// CanDelete: owners may always cancel their own booking; admins may cancel any
// booking whose owner is not an admin.
func CanDelete(requester, owner Principal) bool {
	if requester.Username == owner.Username {
		return true
	}

	return requester.Role.IsAdmin() && !owner.Role.IsAdmin()
}

// Authorize returns a forbidden Rejection when requester may not delete booking.
func Authorize(requester Principal, booking model.Booking) error {
	if CanDelete(requester, Owner(booking)) {
		return nil
	}

	return reject(ErrForbidden, ReasonNotPermitted, "You do not have permission to remove this booking.")
}
