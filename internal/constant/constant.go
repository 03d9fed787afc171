package constant

const (
	RequestIDHeaderKey = "X-Request-ID"

	// MaxRunCharacters caps a run's roster.
	MaxRunCharacters = 4

	DefaultPageSize = 20

	// MaxUploadSize in bytes (2MB)
	MaxUploadSize = 2 << 20
)

const (
	StatusToGet      = "TO_GET"
	StatusInProgress = "IN_PROGRESS"
	StatusObtained   = "OBTAINED"
)

const (
	SourceTypeMerchant = "MERCHANT"
	SourceTypeQuest    = "QUEST"
	SourceTypePoi      = "POI"
)
