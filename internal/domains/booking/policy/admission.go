// Package policy decides whether bookings may be created or deleted.
// Every function here is pure: it reads its arguments and nothing else.
package policy

import (
	"fmt"
	"smartoffice/config"
	"smartoffice/internal/domains/booking/model"
	"smartoffice/internal/domains/booking/timeslot"
	"smartoffice/shared/constant"
	"time"
)

const DefaultMaxActive = 5

type Rules struct {
	Day       timeslot.Day
	MaxActive int
}

func DefaultRules() Rules {
	return Rules{Day: timeslot.DefaultDay(), MaxActive: DefaultMaxActive}
}

// RulesFromConfig reads the booking section, keeping defaults for unset values.
func RulesFromConfig(cfg *config.Config) Rules {
	rules := DefaultRules()
	if cfg == nil {
		return rules
	}

	if cfg.Booking.DayStartMin != 0 || cfg.Booking.DayEndMin != 0 {
		rules.Day = timeslot.Day{Start: cfg.Booking.DayStartMin, End: cfg.Booking.DayEndMin}
	}

	if cfg.Booking.MaxActive > 0 {
		rules.MaxActive = cfg.Booking.MaxActive
	}

	return rules
}

// Admit checks candidate against the full set of live bookings. Checks run in a fixed
// order and the first failure is returned: fields, quota, own overlap, location overlap.
func Admit(candidate model.Booking, existing []model.Booking, rules Rules) error {
	if rejection := validate(candidate, rules); rejection != nil {
		return rejection
	}

	active := 0
	for _, booking := range existing {
		if booking.Username == candidate.Username {
			active++
		}
	}

	if active >= rules.MaxActive {
		rejection := reject(ErrQuotaExceeded, ReasonQuota, fmt.Sprintf("You can have at most %d active bookings.", rules.MaxActive))
		rejection.Limit = rules.MaxActive

		return rejection
	}

	slot := interval(candidate)

	for _, booking := range existing {
		if booking.Date != candidate.Date || booking.Username != candidate.Username {
			continue
		}

		if timeslot.Overlaps(slot, interval(booking)) {
			rejection := reject(ErrConflict, ReasonSelfOverlap,
				fmt.Sprintf("This overlaps with your existing booking: %s (%s).", booking.DisplayName(), interval(booking)))
			rejection.Conflicting = &booking

			return rejection
		}
	}

	for _, booking := range existing {
		if booking.Date != candidate.Date || booking.LocationID != candidate.LocationID {
			continue
		}

		if timeslot.Overlaps(slot, interval(booking)) {
			rejection := reject(ErrConflict, ReasonResourceOverlap, "This time overlaps with an existing booking.")
			rejection.Conflicting = &booking

			return rejection
		}
	}

	return nil
}

func validate(candidate model.Booking, rules Rules) *Rejection {
	if candidate.LocationID == "" || candidate.Date == "" || candidate.Username == "" || candidate.UserType == "" {
		return reject(ErrInvalid, ReasonMissingFields, "Missing required fields.")
	}

	if _, err := time.Parse(constant.DayFormat, candidate.Date); err != nil {
		return reject(ErrInvalid, ReasonInvalidDate, "date must be formatted as YYYY-MM-DD.")
	}

	if !candidate.UserType.CanBook() {
		return reject(ErrInvalid, ReasonRoleNotAllowed, fmt.Sprintf("Users of type %q cannot book locations.", candidate.UserType))
	}

	if !rules.Day.Admits(interval(candidate)) {
		return reject(ErrInvalid, ReasonOutsideHours, fmt.Sprintf("Booking must be between %s and %s.",
			timeslot.FormatClock(rules.Day.Start), timeslot.FormatClock(rules.Day.End)))
	}

	return nil
}

func interval(booking model.Booking) timeslot.Interval {
	return timeslot.Interval{Start: booking.StartMin, End: booking.EndMin}
}
