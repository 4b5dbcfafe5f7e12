package timezone

import (
	"smartoffice/config"
	"smartoffice/shared/constant"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	appLocation *time.Location
)

func init() {
	appLocation = Load(config.Get().App.Timezone)
}

// Load resolves name to a location. The business day follows local machine time
// unless a timezone is configured.
func Load(name string) *time.Location {
	if name == "" {
		log.Info().Msg("No timezone configured, using local machine time")

		return time.Local
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", name).
			Msg("Failed to load timezone, falling back to local machine time")

		return time.Local
	}

	log.Info().Str("timezone", name).Msg("Application timezone initialized")

	return loc
}

// Clock reports the current instant. Services take a Clock so tests can pin "now".
type Clock interface {
	Now() time.Time
}

type appClock struct{}

// NewClock returns a Clock backed by the application timezone.
func NewClock() Clock {
	return appClock{}
}

func (appClock) Now() time.Time {
	return Now()
}

// FixedClock always reports the same instant.
type FixedClock time.Time

func (c FixedClock) Now() time.Time {
	return time.Time(c)
}

// Now returns the current time in the application timezone
func Now() time.Time {
	return time.Now().In(GetLocation())
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	if appLocation == nil {
		return time.Local
	}

	return appLocation
}

// ToAppTime converts a time to the application timezone
func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// Today returns the current calendar day as YYYY-MM-DD.
func Today() string {
	return Now().Format(constant.DayFormat)
}

// DayOf returns the calendar day of t in the application timezone.
func DayOf(t time.Time) string {
	return Format(t, constant.DayFormat)
}

// MinuteOfDay returns the minutes elapsed since midnight of t in the application timezone.
func MinuteOfDay(t time.Time) int {
	local := ToAppTime(t)

	return local.Hour()*constant.MinutesPerHour + local.Minute()
}

// ParseDay parses a YYYY-MM-DD calendar day.
func ParseDay(value string) (time.Time, error) {
	return time.ParseInLocation(constant.DayFormat, value, GetLocation())
}
