// Package timeutil renders UTC timestamps from raw epoch seconds.
//
// The dashboard's timestamp fields are plain UTC strings computed directly
// from an epoch second count, with no timezone database or leap-second
// handling involved.
package timeutil

import "fmt"

// FormatEpoch renders epoch seconds as "YYYY-MM-DDTHH:MM:SSZ".
func FormatEpoch(secs int64) string {
	days := secs / 86400
	rem := secs % 86400
	hours := rem / 3600
	minutes := (rem % 3600) / 60
	seconds := rem % 60

	year, month, day := civilFromDays(days)

	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02dZ",
		year, month, day, hours, minutes, seconds)
}

// FormatClockUTC renders the time-of-day portion of epoch seconds as
// "HH:MM:SS UTC". Used for rate-limit reset hints.
func FormatClockUTC(secs int64) string {
	hours := (secs % 86400) / 3600
	minutes := (secs % 3600) / 60
	seconds := secs % 60
	return fmt.Sprintf("%02d:%02d:%02d UTC", hours, minutes, seconds)
}

// civilFromDays converts days since 1970-01-01 to a proleptic Gregorian
// (year, month, day). Howard Hinnant's civil-from-days algorithm.
func civilFromDays(days int64) (int64, int64, int64) {
	z := days + 719468
	era := z / 146097
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	d := doy - (153*mp+2)/5 + 1
	m := mp + 3
	if mp >= 10 {
		m = mp - 9
	}
	if m <= 2 {
		y++
	}
	return y, m, d
}
