// Package timezone pins every user-facing date and time to the business's
// civil timezone, independent of the server's locale or the caller's device.
//
// Booking notice windows are computed on the civil calendar: CivilDate and
// Today normalize to midnight UTC so that day arithmetic never shifts by an
// hour across daylight-saving transitions, and ToZonedISOString renders civil
// dates with the UTC offset actually in force on that date.
//
// The timezone is configured via the APP_TIMEZONE environment variable
// (default America/Toronto) and is initialized when the package is imported.
// Use standard IANA timezone database names.
package timezone
