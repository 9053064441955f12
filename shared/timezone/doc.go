// Package timezone keeps every calendar computation in the property's local time.
//
// A stay belongs to the local day its check-in falls on, so availability, receipt prefixes and
// monthly reports are all derived from StartOfDay and StartOfMonth instead of UTC midnights.
//
// The zone is read from APP_TIMEZONE when the package is first imported and defaults to
// Asia/Kolkata. Tests may swap it with SetLocation.
package timezone
