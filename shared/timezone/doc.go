// Package timezone pins wall clock time to the villa's location, configured
// through APP_TIMEZONE with IANA names such as "Asia/Kolkata". Check-in dates
// are calendar days, so callers compare against Today rather than time.Now.
package timezone
