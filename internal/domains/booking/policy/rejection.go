package policy

import (
	"errors"
	"smartoffice/internal/domains/booking/model"
)

// Kinds of rejection. Match them with errors.Is.
var (
	ErrInvalid       = errors.New("invalid booking")
	ErrQuotaExceeded = errors.New("booking quota exceeded")
	ErrConflict      = errors.New("booking conflict")
	ErrForbidden     = errors.New("booking mutation forbidden")
)

type Reason string

const (
	ReasonMissingFields   Reason = "missing_fields"
	ReasonInvalidDate     Reason = "invalid_date"
	ReasonRoleNotAllowed  Reason = "role_not_allowed"
	ReasonOutsideHours    Reason = "outside_business_hours"
	ReasonQuota           Reason = "quota"
	ReasonSelfOverlap     Reason = "self_overlap"
	ReasonResourceOverlap Reason = "resource_overlap"
	ReasonNotPermitted    Reason = "not_permitted"
)

// Rejection explains why a policy refused a request. Message is safe to show to users.
type Rejection struct {
	Kind        error
	Reason      Reason
	Message     string
	Conflicting *model.Booking
	Limit       int
}

func (r *Rejection) Error() string {
	return r.Message
}

func (r *Rejection) Unwrap() error {
	return r.Kind
}

func reject(kind error, reason Reason, message string) *Rejection {
	return &Rejection{Kind: kind, Reason: reason, Message: message}
}
