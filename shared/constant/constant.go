package constant

// Booking business rules. These mirror the numbers quoted on the marketing
// site; change them together with the site copy.
const (
	MinGuests = 2
	MaxGuests = 6

	MinPhoneNumbers = 1
	MaxPhoneNumbers = 6

	MinMealBudget = 50.0
	MinWineBudget = 75.0
	Deposit       = 75.0

	MinimumNoticeDays = 21
)

var (
	Neighbourhoods = []string{"Queen West", "King West", "Yorkville", "Harbourfront"}
	Vibes          = []string{"Lively & social", "Chill & conversational", "Romantic date night", "Full foodie focus"}
)

const (
	CivilDateFormat = "2006-01-02"
	ClockTimeFormat = "15:04"
	ZonedISOFormat  = "2006-01-02T15:04:05-07:00"
)

const (
	RequestParamID = "id"

	RequestHeaderContentType        = "Content-Type"
	RequestHeaderContentDisposition = "Content-Disposition"
	RequestHeaderAdminAPIKey        = "X-Api-Key"

	ContentTypeJSON = "application/json"
	ContentTypeCSV  = "text/csv; charset=utf-8"
)

const (
	ExportFilename = "bookings-export.csv"

	LegacyStoreFilename = "bookings.json"
	StoreDirName        = "bookings"
	StoreFileExt        = ".json"
)

const (
	ResponseErrorRequestLimitExceeded = "Request limit exceeded. Please try again later."
	ResponseErrorPrepareShutdown      = "Server is preparing to shut down."
	ResponseErrorInternal             = "Unable to process booking."
	ResponseErrorExport               = "Unable to export bookings."
)

const (
	Empty = ""
)

const (
	OtelHandlerScopeName = "handler"
	OtelServiceScopeName = "service"
)
