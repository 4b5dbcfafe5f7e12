// Package timezone holds the single business-day clock of the application.
//
// All "today" and "now" questions are answered in one configured location:
//
//	now := timezone.Now()                 // current time in the app timezone
//	day := timezone.Today()               // "2024-05-01"
//	min := timezone.MinuteOfDay(now)      // 0..1439
//
// The location comes from the APP_TIMEZONE environment variable and is loaded
// when the package is imported. Use IANA names such as "UTC" or "America/Chicago".
// An empty or unknown name falls back to the machine's local time.
package timezone
