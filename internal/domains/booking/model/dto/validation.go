package dto

import (
	"regexp"
	"slices"
	"strings"
	"time"

	"flavours/shared/constant"
	"flavours/shared/timezone"
	"flavours/shared/validator"

	val "github.com/go-playground/validator/v10"
)

var (
	zonedDateRegex = buildZonedDateRegex()
	clockTimeRegex = regexp.MustCompile(`^(?:[01]\d|2[0-3]):[0-5]\d$`)
)

// buildZonedDateRegex accepts midnight-anchored civil timestamps carrying any
// UTC offset the configured business timezone uses across the year, so dates
// produced by timezone.ToZonedISOString always pass.
func buildZonedDateRegex() *regexp.Regexp {
	variants := timezone.OffsetVariants()

	quoted := make([]string, len(variants))
	for i, variant := range variants {
		quoted[i] = regexp.QuoteMeta(variant)
	}

	return regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(?:\.\d{3})?(?:` + strings.Join(quoted, "|") + `)$`)
}

func init() {
	validator.RegisterValidation("zoneddate", func(fl val.FieldLevel) bool {
		return zonedDateRegex.MatchString(fl.Field().String())
	})

	validator.RegisterValidation("clocktime", func(fl val.FieldLevel) bool {
		return clockTimeRegex.MatchString(fl.Field().String())
	})

	validator.RegisterValidation("neighborhood", func(fl val.FieldLevel) bool {
		return slices.Contains(constant.Neighbourhoods, fl.Field().String())
	})

	validator.RegisterValidation("vibe", func(fl val.FieldLevel) bool {
		return slices.Contains(constant.Vibes, fl.Field().String())
	})

	validator.RegisterStructValidation(bookingCrossFieldValidation, BookingRequest{})

	validator.RegisterMessages(fieldMessages)
}

// bookingCrossFieldValidation holds the rules that span more than one field:
// the booking date must be a real calendar date inside the notice window, the
// group must share enough phone numbers to coordinate every guest, and wine
// pairings need a budget once included.
func bookingCrossFieldValidation(sl val.StructLevel) {
	req, ok := sl.Current().Interface().(BookingRequest)
	if !ok {
		return
	}

	if zonedDateRegex.MatchString(req.Contact.Date) {
		parsed, err := time.Parse(constant.ZonedISOFormat, req.Contact.Date)
		if err != nil {
			sl.ReportError(req.Contact.Date, "contact.date", "Contact.Date", "realdate", "")
		} else if !timezone.IsSelectableDate(parsed, constant.MinimumNoticeDays) {
			sl.ReportError(req.Contact.Date, "contact.date", "Contact.Date", "noticewindow", "")
		}
	}

	if len(req.Contact.PartyPhoneNumbers) < req.Party.PartySize {
		sl.ReportError(req.Contact.PartyPhoneNumbers, "contact.partyPhoneNumbers", "Contact.PartyPhoneNumbers", "phoneperguest", "")
	}

	if req.Pricing.WinePairings.Include && req.Pricing.WinePairings.BudgetPerPersonMax == nil {
		sl.ReportError(req.Pricing.WinePairings.BudgetPerPersonMax, "pricing.winePairings.budgetPerPersonMax", "Pricing.WinePairings.BudgetPerPersonMax", "winebudget", "")
	}
}

// fieldMessages carries the site's user-facing copy, keyed by field path and
// violated rule. Array indices are normalized to "[]".
var fieldMessages = map[string]string{
	"contact.bookerName|min": "Share the primary guest’s full name.",

	"contact.bookerEmail|required": "We need a valid email to confirm details.",
	"contact.bookerEmail|email":    "We need a valid email to confirm details.",

	"contact.partyPhoneNumbers|min":           "Add at least one mobile number for day-of updates.",
	"contact.partyPhoneNumbers|max":           "We only need up to six contact numbers.",
	"contact.partyPhoneNumbers[]|min":         "Phone numbers should be at least 10 digits.",
	"contact.partyPhoneNumbers[]|max":         "That phone number looks a little long.",
	"contact.partyPhoneNumbers|phoneperguest": "Share a phone number for each guest so we can coordinate day-of.",

	"contact.neighborhood|neighborhood": "Pick a neighbourhood.",

	"contact.date|zoneddate":    "Dates should use the Toronto timezone format (e.g. 2024-05-01T00:00:00-04:00).",
	"contact.date|realdate":     "Choose a valid date.",
	"contact.date|noticewindow": "Bookings require at least three weeks’ notice.",

	"contact.time|clocktime": "Choose a start time in 24-hour format (e.g. 19:30).",

	"party.partySize|min":          "We host a minimum of 2 guests.",
	"party.partySize|max":          "Let’s keep it intimate at 6 guests max.",
	"party.accessibilityNotes|max": "Keep accessibility notes under 1000 characters.",

	"preferences.vibe|vibe":                 "Pick the vibe you’re leaning toward.",
	"preferences.cuisinesLiked|min":         "Tell us at least one cuisine you love.",
	"preferences.cuisinesLiked[]|min":       "Share a short cuisine keyword.",
	"preferences.cuisinesLiked[]|max":       "Keep cuisine notes short and sweet.",
	"preferences.cuisinesAvoid[]|min":       "Share a short cuisine keyword.",
	"preferences.cuisinesAvoid[]|max":       "Keep cuisine notes short and sweet.",
	"preferences.likesAboutRestaurants|min": "Tell us what excites you about dining out.",
	"preferences.likesAboutRestaurants|max": "Keep it under 1500 characters.",
	"preferences.dietaryRestrictions|min":   "Share any shared dietary notes or write ‘None’.",
	"preferences.dietaryRestrictions|max":   "Keep dietary notes under 1500 characters.",

	"pricing.mealBudgetPerPersonMax|min":                 "Minimum is $50 per person.",
	"pricing.winePairings.budgetPerPersonMax|min":        "Wine pairings start at $75 per guest.",
	"pricing.winePairings.budgetPerPersonMax|winebudget": "Wine pairings start at $75 per guest.",

	"policyAcknowledgements.acceptsTerms|eq":              "Please acknowledge the booking terms.",
	"policyAcknowledgements.acknowledgesFamilyStyle|eq":   "Confirm that one dietary restriction applies to all guests.",
	"policyAcknowledgements.acknowledgesAlcoholPolicy|eq": "Confirm you understand the alcohol service policy.",

	"misc.notes|max": "Keep additional notes under 1500 characters.",
}
