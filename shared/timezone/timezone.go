package timezone

import (
	"regexp"
	"time"

	"flavours/config"
	"flavours/shared/constant"
	"flavours/shared/failure"

	"github.com/rs/zerolog/log"
)

var (
	appLocation *time.Location

	civilDateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

func init() {
	cfg := config.Get()

	if cfg.App.Timezone == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")
		cfg.App.Timezone = "UTC"
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", cfg.App.Timezone).
			Msg("Failed to load timezone, falling back to UTC. Please use standard timezone names like 'America/Toronto', 'UTC'")
		appLocation = time.UTC
		return
	}

	appLocation = loc
	log.Info().
		Str("timezone", cfg.App.Timezone).
		Str("location", loc.String()).
		Msg("Application timezone initialized")
}

// Now returns the current time in the application timezone
func Now() time.Time {
	if appLocation == nil {
		log.Warn().Msg("Timezone not initialized, using UTC")
		return time.Now().UTC()
	}
	return time.Now().In(appLocation)
}

// ToAppTime converts a time to the application timezone
func ToAppTime(t time.Time) time.Time {
	if appLocation == nil {
		log.Warn().Msg("Timezone not initialized, using UTC")
		return t.UTC()
	}
	return t.In(appLocation)
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	if appLocation == nil {
		log.Warn().Msg("Timezone not initialized, returning UTC")
		return time.UTC
	}
	return appLocation
}

// Parse parses a time string in the application timezone
func Parse(layout, value string) (time.Time, error) {
	if appLocation == nil {
		log.Warn().Msg("Timezone not initialized, parsing in UTC")
		return time.Parse(layout, value)
	}
	return time.ParseInLocation(layout, value, appLocation)
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// CivilDate returns the calendar date of the given instant as observed in the
// application timezone, normalized to midnight UTC. Keeping civil dates on the
// UTC timeline makes day arithmetic immune to DST transitions.
func CivilDate(t time.Time) time.Time {
	local := ToAppTime(t)

	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar date in the application timezone,
// normalized to midnight UTC.
func Today() time.Time {
	return CivilDate(Now())
}

// IsSelectableDate reports whether candidate satisfies the minimum advance
// notice window, counted in civil calendar days from today.
func IsSelectableDate(candidate time.Time, minimumNoticeDays int) bool {
	return IsSelectableDateAt(candidate, Now(), minimumNoticeDays)
}

// IsSelectableDateAt is IsSelectableDate evaluated against an explicit current
// instant. The candidate's civil date is taken from its UTC components, so a
// zoned midnight like 2026-05-01T00:00:00-04:00 counts as May 1st.
func IsSelectableDateAt(candidate, now time.Time, minimumNoticeDays int) bool {
	if candidate.IsZero() {
		return false
	}

	u := candidate.UTC()
	normalized := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)

	minimumSelectable := CivilDate(now).AddDate(0, 0, minimumNoticeDays)

	return !normalized.Before(minimumSelectable)
}

// ToZonedISOString converts a YYYY-MM-DD civil date string to an ISO-8601
// timestamp at midnight with the UTC offset in force on that date in the
// application timezone (for Toronto: -04:00 in summer, -05:00 in winter).
func ToZonedISOString(dateString string) (string, error) {
	if !civilDateRegex.MatchString(dateString) {
		return constant.Empty, failure.BadRequestFromString("date must use the YYYY-MM-DD format")
	}

	parsed, err := time.Parse(constant.CivilDateFormat, dateString)
	if err != nil {
		return constant.Empty, failure.BadRequest(err)
	}

	midnight := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, GetLocation())

	return midnight.Format(constant.ZonedISOFormat), nil
}

// OffsetVariants returns the distinct UTC offset suffixes the application
// timezone produces across a year (for America/Toronto: "-05:00" and
// "-04:00"; a single entry for zones without daylight saving).
func OffsetVariants() []string {
	year := Now().Year()
	loc := GetLocation()

	variants := make([]string, 0, 2)
	seen := make(map[string]bool, 2)

	for _, month := range []time.Month{time.January, time.July} {
		offset := time.Date(year, month, 1, 0, 0, 0, 0, loc).Format("-07:00")
		if !seen[offset] {
			seen[offset] = true
			variants = append(variants, offset)
		}
	}

	return variants
}

// NowISOString formats the current instant as civil local time with the
// correct offset suffix.
func NowISOString() string {
	return Now().Format(constant.ZonedISOFormat)
}
