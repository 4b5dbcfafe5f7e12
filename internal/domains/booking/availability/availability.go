// Package availability derives a location's current status from the live bookings.
// Nothing here is cached; every call is a fresh scan of the bookings it is given.
package availability

import (
	"smartoffice/internal/domains/booking/model"
	"smartoffice/internal/domains/booking/timeslot"
)

type State string

const (
	StateBooked    State = "booked"
	StateAvailable State = "available"
)

// Status is the verdict for one location at one minute of the day.
// Until is the end of the current booking when booked, or the start of the next
// booking when available; it is nil when the location is free for the rest of the day.
type Status struct {
	LocationID string
	State      State
	Label      string
	Until      *int
}

// Compute scans bookings for locationID at minute now. Callers pass the bookings of a
// single date; bookings of other locations are ignored.
func Compute(locationID string, now int, bookings []model.Booking) Status {
	var next *model.Booking

	for i := range bookings {
		booking := bookings[i]
		if booking.LocationID != locationID {
			continue
		}

		slot := timeslot.Interval{Start: booking.StartMin, End: booking.EndMin}
		if slot.Contains(now) {
			until := booking.EndMin

			return Status{
				LocationID: locationID,
				State:      StateBooked,
				Label:      "Booked until " + timeslot.FormatClock(until),
				Until:      &until,
			}
		}

		if booking.StartMin > now && (next == nil || booking.StartMin < next.StartMin) {
			next = &bookings[i]
		}
	}

	if next != nil {
		until := next.StartMin

		return Status{
			LocationID: locationID,
			State:      StateAvailable,
			Label:      "Available until " + timeslot.FormatClock(until),
			Until:      &until,
		}
	}

	return Status{LocationID: locationID, State: StateAvailable, Label: "Available"}
}

// ComputeAll returns a status for each requested location, plus every location that
// appears in bookings, keyed by location id.
func ComputeAll(locationIDs []string, now int, bookings []model.Booking) map[string]Status {
	byLocation := map[string][]model.Booking{}
	for _, booking := range bookings {
		byLocation[booking.LocationID] = append(byLocation[booking.LocationID], booking)
	}

	for _, id := range locationIDs {
		if _, ok := byLocation[id]; !ok {
			byLocation[id] = nil
		}
	}

	statuses := make(map[string]Status, len(byLocation))
	for id, locationBookings := range byLocation {
		statuses[id] = Compute(id, now, locationBookings)
	}

	return statuses
}
