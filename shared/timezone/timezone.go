package timezone

import (
	"sync"
	"time"

	"villa/config"

	"github.com/rs/zerolog/log"
)

const fallbackTimezone = "Asia/Kolkata"

var (
	location     *time.Location
	locationOnce sync.Once
)

func load() {
	name := config.Get().App.Timezone
	if name == "" {
		name = fallbackTimezone
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("failed to load timezone, using UTC")

		location = time.UTC

		return
	}

	location = loc
}

// Location is where the villa is, so "today" rolls over at local midnight
// rather than at the server's.
func Location() *time.Location {
	locationOnce.Do(load)

	return location
}

func Now() time.Time {
	return time.Now().In(Location())
}

// Today is the current calendar day as a UTC midnight, which is how stay
// dates are compared everywhere else.
func Today() time.Time {
	return DayOf(Now())
}

// DayOf drops the clock from t after moving it to the villa's timezone.
func DayOf(t time.Time) time.Time {
	local := t.In(Location())

	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}
