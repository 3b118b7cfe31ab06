package dto_test

import (
	"testing"

	"flavours/internal/domains/booking/model"
	"flavours/internal/domains/booking/model/dto"
	"flavours/shared/constant"
	"flavours/shared/failure"
	"flavours/shared/timezone"
	"flavours/shared/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func selectableDate(t *testing.T, daysOut int) string {
	t.Helper()

	civil := timezone.Today().AddDate(0, 0, daysOut).Format(constant.CivilDateFormat)

	iso, err := timezone.ToZonedISOString(civil)
	require.NoError(t, err)

	return iso
}

func validPayload(t *testing.T) map[string]any {
	t.Helper()

	return map[string]any{
		"contact": map[string]any{
			"bookerName":        "Alex Meridian",
			"bookerEmail":       "alex@example.com",
			"partyPhoneNumbers": []any{"4165550100", "4165550101"},
			"neighborhood":      "Queen West",
			"date":              selectableDate(t, 25),
			"time":              "19:30",
		},
		"party": map[string]any{
			"partySize":     2,
			"mobilityNeeds": false,
		},
		"preferences": map[string]any{
			"vibe":                  "Lively & social",
			"cuisinesLiked":         []any{"Sushi omakase", "Modern Italian"},
			"cuisinesAvoid":         []any{},
			"likesAboutRestaurants": "Cozy rooms, shareable plates, storytelling from the staff.",
			"dietaryRestrictions":   "None",
		},
		"pricing": map[string]any{
			"mealBudgetPerPersonMax": 80,
			"winePairings": map[string]any{
				"include": false,
			},
		},
		"policyAcknowledgements": map[string]any{
			"acceptsTerms":              true,
			"acknowledgesFamilyStyle":   true,
			"acknowledgesAlcoholPolicy": true,
		},
		"misc": map[string]any{},
	}
}

func TestBookingRequestFromPayload_Coercion(t *testing.T) {
	payload := validPayload(t)
	payload["contact"].(map[string]any)["bookerName"] = "  Alex Meridian  "
	payload["contact"].(map[string]any)["partyPhoneNumbers"] = []any{4165550100.0, " 4165550101 "}
	payload["party"].(map[string]any)["partySize"] = "2"
	payload["pricing"].(map[string]any)["mealBudgetPerPersonMax"] = "80"
	payload["policyAcknowledgements"].(map[string]any)["acceptsTerms"] = "true"

	req := dto.BookingRequestFromPayload(payload)

	assert.Equal(t, "Alex Meridian", req.Contact.BookerName)
	assert.Equal(t, []string{"4165550100", "4165550101"}, req.Contact.PartyPhoneNumbers)
	assert.Equal(t, 2, req.Party.PartySize)
	assert.Equal(t, 80.0, req.Pricing.MealBudgetPerPersonMax)
	assert.True(t, req.PolicyAcknowledgements.AcceptsTerms)
}

func TestBookingRequestFromPayload_NumericPhoneKeepsDigits(t *testing.T) {
	payload := validPayload(t)
	payload["contact"].(map[string]any)["partyPhoneNumbers"] = []any{4165550100.0, 4165550101.0}

	req := dto.BookingRequestFromPayload(payload)

	assert.Equal(t, []string{"4165550100", "4165550101"}, req.Contact.PartyPhoneNumbers)
	assert.NoError(t, validator.ValidateStruct(&req))
}

func TestBookingRequestFromPayload_WrongTypesCollapseToDefaults(t *testing.T) {
	req := dto.BookingRequestFromPayload(map[string]any{
		"contact": map[string]any{
			"bookerName":        42,
			"partyPhoneNumbers": "not-an-array",
			"date":              []any{"nested"},
		},
		"party": map[string]any{
			"partySize": "many",
		},
		"pricing": "broken",
	})

	assert.Equal(t, "", req.Contact.BookerName)
	assert.Empty(t, req.Contact.PartyPhoneNumbers)
	assert.Equal(t, "", req.Contact.Date)
	assert.Equal(t, 0, req.Party.PartySize)
	assert.Equal(t, 0.0, req.Pricing.MealBudgetPerPersonMax)
	assert.False(t, req.Pricing.WinePairings.Include)
	assert.Nil(t, req.Pricing.WinePairings.BudgetPerPersonMax)
}

func TestValidateStruct_ValidRequest(t *testing.T) {
	req := dto.BookingRequestFromPayload(validPayload(t))

	assert.NoError(t, validator.ValidateStruct(&req))
}

func TestValidateStruct_FieldErrors(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(payload map[string]any)
		wantPath string
		wantMsg  string
	}{
		{
			name: "date inside the notice window",
			mutate: func(payload map[string]any) {
				payload["contact"].(map[string]any)["date"] = selectableDate(t, 10)
			},
			wantPath: "contact.date",
			wantMsg:  "Bookings require at least three weeks’ notice.",
		},
		{
			name: "date in the wrong format",
			mutate: func(payload map[string]any) {
				payload["contact"].(map[string]any)["date"] = "2026-05-01"
			},
			wantPath: "contact.date",
			wantMsg:  "Dates should use the Toronto timezone format (e.g. 2024-05-01T00:00:00-04:00).",
		},
		{
			name: "date that is not a real calendar day",
			mutate: func(payload map[string]any) {
				payload["contact"].(map[string]any)["date"] = "2026-02-31T00:00:00-05:00"
			},
			wantPath: "contact.date",
			wantMsg:  "Choose a valid date.",
		},
		{
			name: "fewer phone numbers than guests",
			mutate: func(payload map[string]any) {
				payload["party"].(map[string]any)["partySize"] = 3
				payload["contact"].(map[string]any)["partyPhoneNumbers"] = []any{"4165550100"}
			},
			wantPath: "contact.partyPhoneNumbers",
			wantMsg:  "Share a phone number for each guest so we can coordinate day-of.",
		},
		{
			name: "missing email",
			mutate: func(payload map[string]any) {
				delete(payload["contact"].(map[string]any), "bookerEmail")
			},
			wantPath: "contact.bookerEmail",
			wantMsg:  "We need a valid email to confirm details.",
		},
		{
			name: "unknown neighbourhood",
			mutate: func(payload map[string]any) {
				payload["contact"].(map[string]any)["neighborhood"] = "The Moon"
			},
			wantPath: "contact.neighborhood",
			wantMsg:  "Pick a neighbourhood.",
		},
		{
			name: "party too large",
			mutate: func(payload map[string]any) {
				payload["party"].(map[string]any)["partySize"] = 9
				payload["contact"].(map[string]any)["partyPhoneNumbers"] = []any{
					"4165550100", "4165550101", "4165550102", "4165550103", "4165550104", "4165550105",
				}
			},
			wantPath: "party.partySize",
			wantMsg:  "Let’s keep it intimate at 6 guests max.",
		},
		{
			name: "no liked cuisines",
			mutate: func(payload map[string]any) {
				payload["preferences"].(map[string]any)["cuisinesLiked"] = []any{}
			},
			wantPath: "preferences.cuisinesLiked",
			wantMsg:  "Tell us at least one cuisine you love.",
		},
		{
			name: "meal budget below the minimum",
			mutate: func(payload map[string]any) {
				payload["pricing"].(map[string]any)["mealBudgetPerPersonMax"] = 20
			},
			wantPath: "pricing.mealBudgetPerPersonMax",
			wantMsg:  "Minimum is $50 per person.",
		},
		{
			name: "wine included without a budget",
			mutate: func(payload map[string]any) {
				payload["pricing"].(map[string]any)["winePairings"] = map[string]any{"include": true}
			},
			wantPath: "pricing.winePairings.budgetPerPersonMax",
			wantMsg:  "Wine pairings start at $75 per guest.",
		},
		{
			name: "wine budget below the minimum",
			mutate: func(payload map[string]any) {
				payload["pricing"].(map[string]any)["winePairings"] = map[string]any{
					"include":            true,
					"budgetPerPersonMax": 40,
				}
			},
			wantPath: "pricing.winePairings.budgetPerPersonMax",
			wantMsg:  "Wine pairings start at $75 per guest.",
		},
		{
			name: "terms not acknowledged",
			mutate: func(payload map[string]any) {
				payload["policyAcknowledgements"].(map[string]any)["acceptsTerms"] = false
			},
			wantPath: "policyAcknowledgements.acceptsTerms",
			wantMsg:  "Please acknowledge the booking terms.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validPayload(t)
			tt.mutate(payload)

			req := dto.BookingRequestFromPayload(payload)
			err := validator.ValidateStruct(&req)

			require.Error(t, err)

			fields := failure.GetFields(err)
			require.NotNil(t, fields)
			require.Contains(t, fields, tt.wantPath)
			assert.Contains(t, fields[tt.wantPath], tt.wantMsg)
		})
	}
}

func TestValidateStruct_ArrayItemErrorsGroupUnderOnePath(t *testing.T) {
	payload := validPayload(t)
	payload["contact"].(map[string]any)["partyPhoneNumbers"] = []any{"123", "456"}

	req := dto.BookingRequestFromPayload(payload)
	err := validator.ValidateStruct(&req)

	require.Error(t, err)

	fields := failure.GetFields(err)
	require.Contains(t, fields, "contact.partyPhoneNumbers")
	assert.Len(t, fields["contact.partyPhoneNumbers"], 2)
	assert.Contains(t, fields["contact.partyPhoneNumbers"], "Phone numbers should be at least 10 digits.")
}

func TestBookingRequest_Sanitize(t *testing.T) {
	budget := 90.0
	req := dto.BookingRequestFromPayload(validPayload(t))
	req.Preferences.CuisinesLiked = []string{" Thai ", "", "tapas"}
	req.Pricing.WinePairings.Include = false
	req.Pricing.WinePairings.BudgetPerPersonMax = &budget
	req.Misc.Notes = "  window seat please  "

	req.Sanitize()

	assert.Equal(t, []string{"Thai", "tapas"}, req.Preferences.CuisinesLiked)
	assert.Nil(t, req.Pricing.WinePairings.BudgetPerPersonMax)
	assert.Equal(t, "window seat please", req.Misc.Notes)
}

func TestBookingRequest_ToModel(t *testing.T) {
	req := dto.BookingRequestFromPayload(validPayload(t))
	totals := model.Totals{
		PerPersonFood:  80,
		PerPersonTotal: 80,
		EstimatedTotal: 160,
		DepositDue:     75,
		BalanceDue:     85,
	}

	booking := req.ToModel(totals)

	assert.NoError(t, uuid.Validate(booking.ID))
	assert.NotEmpty(t, booking.CreatedAt)
	assert.Equal(t, req.Contact.BookerName, booking.Contact.BookerName)
	assert.Equal(t, req.Party.PartySize, booking.Party.PartySize)
	assert.Equal(t, totals, booking.Totals)

	second := req.ToModel(totals)
	assert.NotEqual(t, booking.ID, second.ID, "expected a fresh reference per record")
}
