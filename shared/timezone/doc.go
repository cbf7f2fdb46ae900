// Package timezone pins every local date and time of day to one application
// timezone, configured through APP_TIMEZONE (standard names such as "UTC" or
// "Europe/Lisbon"). Bookings carry a calendar date and wall clock times with no
// zone of their own, so comparisons against "now" must happen here.
//
//	now := timezone.Now()
//	today := timezone.Today()
//	start := timezone.Combine(bookingDate, startTime)
package timezone
