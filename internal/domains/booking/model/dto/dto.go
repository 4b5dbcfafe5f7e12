package dto

import (
	"smartoffice/internal/domains/booking/availability"
	"smartoffice/internal/domains/booking/model"
	"smartoffice/internal/domains/booking/policy"
	"smartoffice/internal/domains/booking/timeslot"
	"smartoffice/shared/constant"
	"smartoffice/shared/failure"
	"smartoffice/shared/timezone"
)

const (
	msgMissingFields   = "Missing required fields."
	msgMissingIdentity = "username and userType are required."
	msgUnknownRole     = "userType must be one of admin, employee, visitor."
)

// CreateBookingRequest is the POST body. Presence is checked by ToModel so that every
// missing field yields the same message; the tags only bound sizes.
type CreateBookingRequest struct {
	LocationID   string `json:"locationId"   validate:"omitempty,max=128,nospace"`
	LocationName string `json:"locationName" validate:"omitempty,max=256"`
	StartMin     *int   `json:"startMin"     validate:"omitempty,gte=0,lte=1440"`
	EndMin       *int   `json:"endMin"       validate:"omitempty,gte=0,lte=1440"`
	Date         string `json:"date"         validate:"omitempty,max=10"`
	Username     string `json:"username"     validate:"omitempty,max=128,nospace"`
	UserType     string `json:"userType"     validate:"omitempty,max=32"`
}

// ToModel resolves the role and builds the candidate. ID and CreatedAt stay empty until
// the booking is admitted.
func (c *CreateBookingRequest) ToModel() (model.Booking, error) {
	if c.LocationID == "" || c.StartMin == nil || c.EndMin == nil || c.Date == "" || c.Username == "" || c.UserType == "" {
		return model.Booking{}, failure.BadRequestFromString(msgMissingFields)
	}

	role, ok := model.ParseRole(c.UserType)
	if !ok {
		return model.Booking{}, failure.BadRequestFromString(msgUnknownRole)
	}

	return model.Booking{
		LocationID:   c.LocationID,
		LocationName: c.LocationName,
		Date:         c.Date,
		StartMin:     *c.StartMin,
		EndMin:       *c.EndMin,
		Username:     c.Username,
		UserType:     role,
	}, nil
}

type DeleteBookingRequest struct {
	ID       string
	Username string
	UserType string
}

// Principal resolves the requester identity carried by the delete request.
func (d *DeleteBookingRequest) Principal() (policy.Principal, error) {
	if d.Username == "" || d.UserType == "" {
		return policy.Principal{}, failure.BadRequestFromString(msgMissingIdentity)
	}

	role, ok := model.ParseRole(d.UserType)
	if !ok {
		return policy.Principal{}, failure.BadRequestFromString(msgUnknownRole)
	}

	return policy.Principal{Username: d.Username, Role: role}, nil
}

type BookingResponse struct {
	ID           string `json:"id"`
	LocationID   string `json:"locationId"`
	LocationName string `json:"locationName"`
	StartMin     int    `json:"startMin"`
	EndMin       int    `json:"endMin"`
	Date         string `json:"date"`
	Username     string `json:"username"`
	UserType     string `json:"userType"`
	CreatedAt    string `json:"createdAt"`
}

func (b *BookingResponse) FromModel(booking model.Booking) {
	b.ID = booking.ID
	b.LocationID = booking.LocationID
	b.LocationName = booking.LocationName
	b.StartMin = booking.StartMin
	b.EndMin = booking.EndMin
	b.Date = booking.Date
	b.Username = booking.Username
	b.UserType = string(booking.UserType)
	b.CreatedAt = timezone.Format(booking.CreatedAt, constant.DateFormat)
}

type ListBookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

func (l *ListBookingsResponse) FromModels(bookings []model.Booking) {
	l.Bookings = make([]BookingResponse, len(bookings))

	for i, booking := range bookings {
		l.Bookings[i].FromModel(booking)
	}
}

type CreateBookingResponse struct {
	Booking BookingResponse `json:"booking"`
}

type DeleteBookingResponse struct {
	OK bool `json:"ok"`
}

// AvailabilityRequest selects a moment: Date and At default to the current day and minute.
type AvailabilityRequest struct {
	LocationIDs []string
	Date        string
	At          string
}

type AvailabilityResponse struct {
	LocationID string  `json:"locationId"`
	Date       string  `json:"date"`
	At         string  `json:"at"`
	Status     string  `json:"status"`
	Label      string  `json:"label"`
	Until      *string `json:"until,omitempty"`
	UntilMin   *int    `json:"untilMin,omitempty"`
}

func (a *AvailabilityResponse) FromStatus(status availability.Status, date string, at int) {
	a.LocationID = status.LocationID
	a.Date = date
	a.At = timeslot.FormatClock(at)
	a.Status = string(status.State)
	a.Label = status.Label
	a.Until = nil
	a.UntilMin = nil

	if status.Until != nil {
		until := timeslot.FormatClock(*status.Until)
		untilMin := *status.Until
		a.Until = &until
		a.UntilMin = &untilMin
	}
}

type AvailabilityOverviewResponse struct {
	Date      string                 `json:"date"`
	At        string                 `json:"at"`
	Locations []AvailabilityResponse `json:"locations"`
}

type SlotsResponse struct {
	DayStart int      `json:"dayStart"`
	DayEnd   int      `json:"dayEnd"`
	Step     int      `json:"step"`
	Slots    []string `json:"slots"`
}
