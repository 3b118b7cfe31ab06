package dto

import (
	"fmt"
	"strconv"
	"strings"

	"flavours/internal/domains/booking/model"
	"flavours/shared/timezone"

	"github.com/google/uuid"
)

// BookingRequest is the intake shape of a booking submission. Field paths in
// validation errors follow the json tags, so these must stay aligned with the
// public API contract.
type BookingRequest struct {
	Contact                ContactRequest                `json:"contact"`
	Party                  PartyRequest                  `json:"party"`
	Preferences            PreferencesRequest            `json:"preferences"`
	Pricing                PricingRequest                `json:"pricing"`
	PolicyAcknowledgements PolicyAcknowledgementsRequest `json:"policyAcknowledgements"`
	Misc                   MiscRequest                   `json:"misc"`
}

type ContactRequest struct {
	BookerName        string   `json:"bookerName"        validate:"min=2"`
	BookerEmail       string   `json:"bookerEmail"       validate:"required,email"`
	PartyPhoneNumbers []string `json:"partyPhoneNumbers" validate:"min=1,max=6,dive,min=10,max=20"`
	Neighborhood      string   `json:"neighborhood"      validate:"neighborhood"`
	Date              string   `json:"date"              validate:"zoneddate"`
	Time              string   `json:"time"              validate:"clocktime"`
}

type PartyRequest struct {
	PartySize          int    `json:"partySize"          validate:"min=2,max=6"`
	MobilityNeeds      bool   `json:"mobilityNeeds"`
	AccessibilityNotes string `json:"accessibilityNotes" validate:"omitempty,max=1000"`
}

type PreferencesRequest struct {
	Vibe                  string   `json:"vibe"                  validate:"vibe"`
	CuisinesLiked         []string `json:"cuisinesLiked"         validate:"min=1,dive,min=2,max=60"`
	CuisinesAvoid         []string `json:"cuisinesAvoid"         validate:"omitempty,dive,min=2,max=60"`
	LikesAboutRestaurants string   `json:"likesAboutRestaurants" validate:"min=10,max=1500"`
	DietaryRestrictions   string   `json:"dietaryRestrictions"   validate:"min=1,max=1500"`
}

type PricingRequest struct {
	MealBudgetPerPersonMax float64             `json:"mealBudgetPerPersonMax" validate:"min=50"`
	WinePairings           WinePairingsRequest `json:"winePairings"`
}

type WinePairingsRequest struct {
	Include            bool     `json:"include"`
	BudgetPerPersonMax *float64 `json:"budgetPerPersonMax" validate:"omitempty,min=75"`
}

type PolicyAcknowledgementsRequest struct {
	AcceptsTerms              bool `json:"acceptsTerms"              validate:"eq=true"`
	AcknowledgesFamilyStyle   bool `json:"acknowledgesFamilyStyle"   validate:"eq=true"`
	AcknowledgesAlcoholPolicy bool `json:"acknowledgesAlcoholPolicy" validate:"eq=true"`
}

type MiscRequest struct {
	Notes string `json:"notes" validate:"omitempty,max=1500"`
}

// BookingRequestFromPayload coerces a loosely-typed JSON payload into a
// BookingRequest. Wrong types never raise an error here; they collapse to
// deterministic zero values so the schema rules, not the coercion, produce the
// user-facing message.
func BookingRequestFromPayload(payload map[string]any) BookingRequest {
	contact := childObject(payload, "contact")
	party := childObject(payload, "party")
	preferences := childObject(payload, "preferences")
	pricing := childObject(payload, "pricing")
	winePairings := childObject(pricing, "winePairings")
	policies := childObject(payload, "policyAcknowledgements")
	misc := childObject(payload, "misc")

	return BookingRequest{
		Contact: ContactRequest{
			BookerName:        trimmedString(contact, "bookerName"),
			BookerEmail:       stringValue(contact, "bookerEmail"),
			PartyPhoneNumbers: trimmedStringSlice(contact, "partyPhoneNumbers"),
			Neighborhood:      stringValue(contact, "neighborhood"),
			Date:              stringValue(contact, "date"),
			Time:              stringValue(contact, "time"),
		},
		Party: PartyRequest{
			PartySize:          intValue(party, "partySize"),
			MobilityNeeds:      boolValue(party, "mobilityNeeds"),
			AccessibilityNotes: trimmedString(party, "accessibilityNotes"),
		},
		Preferences: PreferencesRequest{
			Vibe:                  stringValue(preferences, "vibe"),
			CuisinesLiked:         trimmedStringSlice(preferences, "cuisinesLiked"),
			CuisinesAvoid:         trimmedStringSlice(preferences, "cuisinesAvoid"),
			LikesAboutRestaurants: trimmedString(preferences, "likesAboutRestaurants"),
			DietaryRestrictions:   trimmedString(preferences, "dietaryRestrictions"),
		},
		Pricing: PricingRequest{
			MealBudgetPerPersonMax: numberValue(pricing, "mealBudgetPerPersonMax"),
			WinePairings: WinePairingsRequest{
				Include:            boolValue(winePairings, "include"),
				BudgetPerPersonMax: optionalNumber(winePairings, "budgetPerPersonMax"),
			},
		},
		PolicyAcknowledgements: PolicyAcknowledgementsRequest{
			AcceptsTerms:              boolValue(policies, "acceptsTerms"),
			AcknowledgesFamilyStyle:   boolValue(policies, "acknowledgesFamilyStyle"),
			AcknowledgesAlcoholPolicy: boolValue(policies, "acknowledgesAlcoholPolicy"),
		},
		Misc: MiscRequest{
			Notes: trimmedString(misc, "notes"),
		},
	}
}

// Sanitize normalizes a validated request before pricing and persistence:
// free text is trimmed, empty optional fields drop to absent, empty cuisine
// entries are removed, and the wine sub-budget is cleared unless wine is
// included.
func (r *BookingRequest) Sanitize() {
	r.Contact.BookerName = strings.TrimSpace(r.Contact.BookerName)

	for i, phone := range r.Contact.PartyPhoneNumbers {
		r.Contact.PartyPhoneNumbers[i] = strings.TrimSpace(phone)
	}

	r.Preferences.CuisinesLiked = trimNonEmpty(r.Preferences.CuisinesLiked)
	r.Preferences.CuisinesAvoid = trimNonEmpty(r.Preferences.CuisinesAvoid)
	r.Preferences.LikesAboutRestaurants = strings.TrimSpace(r.Preferences.LikesAboutRestaurants)
	r.Preferences.DietaryRestrictions = strings.TrimSpace(r.Preferences.DietaryRestrictions)

	if !r.Pricing.WinePairings.Include {
		r.Pricing.WinePairings.BudgetPerPersonMax = nil
	}

	r.Party.AccessibilityNotes = strings.TrimSpace(r.Party.AccessibilityNotes)
	r.Misc.Notes = strings.TrimSpace(r.Misc.Notes)
}

// ToModel builds the persistent record, assigning a fresh reference and the
// creation timestamp in the business timezone. Totals are computed by the
// caller and stored verbatim.
func (r *BookingRequest) ToModel(totals model.Totals) model.Booking {
	return model.Booking{
		ID:        uuid.NewString(),
		CreatedAt: timezone.NowISOString(),
		Contact: model.Contact{
			BookerName:        r.Contact.BookerName,
			BookerEmail:       r.Contact.BookerEmail,
			PartyPhoneNumbers: r.Contact.PartyPhoneNumbers,
			Neighborhood:      r.Contact.Neighborhood,
			Date:              r.Contact.Date,
			Time:              r.Contact.Time,
		},
		Party: model.Party{
			PartySize:          r.Party.PartySize,
			MobilityNeeds:      r.Party.MobilityNeeds,
			AccessibilityNotes: r.Party.AccessibilityNotes,
		},
		Preferences: model.Preferences{
			Vibe:                  r.Preferences.Vibe,
			CuisinesLiked:         r.Preferences.CuisinesLiked,
			CuisinesAvoid:         r.Preferences.CuisinesAvoid,
			LikesAboutRestaurants: r.Preferences.LikesAboutRestaurants,
			DietaryRestrictions:   r.Preferences.DietaryRestrictions,
		},
		Pricing: model.Pricing{
			MealBudgetPerPersonMax: r.Pricing.MealBudgetPerPersonMax,
			WinePairings: model.WinePairings{
				Include:            r.Pricing.WinePairings.Include,
				BudgetPerPersonMax: r.Pricing.WinePairings.BudgetPerPersonMax,
			},
		},
		PolicyAcknowledgements: model.PolicyAcknowledgements{
			AcceptsTerms:              r.PolicyAcknowledgements.AcceptsTerms,
			AcknowledgesFamilyStyle:   r.PolicyAcknowledgements.AcknowledgesFamilyStyle,
			AcknowledgesAlcoholPolicy: r.PolicyAcknowledgements.AcknowledgesAlcoholPolicy,
		},
		Misc: model.Misc{
			Notes: r.Misc.Notes,
		},
		Totals: totals,
	}
}

func childObject(parent map[string]any, key string) map[string]any {
	if parent == nil {
		return nil
	}

	child, _ := parent[key].(map[string]any)

	return child
}

func stringValue(obj map[string]any, key string) string {
	if obj == nil {
		return ""
	}

	value, _ := obj[key].(string)

	return value
}

func trimmedString(obj map[string]any, key string) string {
	return strings.TrimSpace(stringValue(obj, key))
}

func trimmedStringSlice(obj map[string]any, key string) []string {
	if obj == nil {
		return []string{}
	}

	raw, ok := obj[key].([]any)
	if !ok {
		return []string{}
	}

	items := make([]string, 0, len(raw))
	for _, entry := range raw {
		switch v := entry.(type) {
		case string:
			items = append(items, strings.TrimSpace(v))
		case float64:
			// JSON numbers arrive as float64; render them as plain decimal
			// digits, never scientific notation.
			items = append(items, strconv.FormatFloat(v, 'f', -1, 64))
		default:
			items = append(items, strings.TrimSpace(fmt.Sprint(entry)))
		}
	}

	return items
}

func numberValue(obj map[string]any, key string) float64 {
	value := optionalNumber(obj, key)
	if value == nil {
		return 0
	}

	return *value
}

func optionalNumber(obj map[string]any, key string) *float64 {
	if obj == nil {
		return nil
	}

	raw, ok := obj[key]
	if !ok || raw == nil {
		return nil
	}

	switch v := raw.(type) {
	case float64:
		return &v
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			zero := 0.0
			return &zero
		}
		return &parsed
	default:
		zero := 0.0
		return &zero
	}
}

func intValue(obj map[string]any, key string) int {
	return int(numberValue(obj, key))
}

func boolValue(obj map[string]any, key string) bool {
	if obj == nil {
		return false
	}

	switch v := obj[key].(type) {
	case bool:
		return v
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(v))
		return err == nil && parsed
	default:
		return false
	}
}

func trimNonEmpty(items []string) []string {
	kept := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			kept = append(kept, item)
		}
	}

	return kept
}
