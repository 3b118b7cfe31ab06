package model

const (
	EntityName = "booking"
)

// Booking is the sole persistent entity: one customer request for a curated
// restaurant crawl. Records are created once through the intake pipeline and
// never mutated. JSON field names are the on-disk storage contract and must
// not change while existing data directories are in service.
type Booking struct {
	ID        string  `json:"id"`
	CreatedAt string  `json:"createdAt"`
	Contact   Contact `json:"contact"`
	Party     Party   `json:"party"`

	Preferences            Preferences            `json:"preferences"`
	Pricing                Pricing                `json:"pricing"`
	PolicyAcknowledgements PolicyAcknowledgements `json:"policyAcknowledgements"`
	Misc                   Misc                   `json:"misc"`
	Totals                 Totals                 `json:"totals"`
}

type Contact struct {
	BookerName        string   `json:"bookerName"`
	BookerEmail       string   `json:"bookerEmail"`
	PartyPhoneNumbers []string `json:"partyPhoneNumbers"`
	Neighborhood      string   `json:"neighborhood"`
	Date              string   `json:"date"`
	Time              string   `json:"time"`
}

type Party struct {
	PartySize          int    `json:"partySize"`
	MobilityNeeds      bool   `json:"mobilityNeeds"`
	AccessibilityNotes string `json:"accessibilityNotes,omitempty"`
}

type Preferences struct {
	Vibe                  string   `json:"vibe"`
	CuisinesLiked         []string `json:"cuisinesLiked"`
	CuisinesAvoid         []string `json:"cuisinesAvoid"`
	LikesAboutRestaurants string   `json:"likesAboutRestaurants"`
	DietaryRestrictions   string   `json:"dietaryRestrictions"`
}

type Pricing struct {
	MealBudgetPerPersonMax float64      `json:"mealBudgetPerPersonMax"`
	WinePairings           WinePairings `json:"winePairings"`
}

type WinePairings struct {
	Include            bool     `json:"include"`
	BudgetPerPersonMax *float64 `json:"budgetPerPersonMax,omitempty"`
}

type PolicyAcknowledgements struct {
	AcceptsTerms              bool `json:"acceptsTerms"`
	AcknowledgesFamilyStyle   bool `json:"acknowledgesFamilyStyle"`
	AcknowledgesAlcoholPolicy bool `json:"acknowledgesAlcoholPolicy"`
}

type Misc struct {
	Notes string `json:"notes,omitempty"`
}

// Totals is derived from pricing and party size exactly once at creation and
// stored verbatim; it is never recomputed.
type Totals struct {
	PerPersonFood  float64 `json:"perPersonFood"`
	PerPersonWine  float64 `json:"perPersonWine"`
	PerPersonTotal float64 `json:"perPersonTotal"`
	EstimatedTotal float64 `json:"estimatedTotal"`
	DepositDue     float64 `json:"depositDue"`
	BalanceDue     float64 `json:"balanceDue"`
}
