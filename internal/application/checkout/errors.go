package checkout

import "github.com/morvy/kybernaut-ic-dic/internal/domain/shared"

var (
	// ErrLookupDisabled is returned when the registry lookup feature is
	// switched off in configuration.
	ErrLookupDisabled = shared.NewDomainError("LOOKUP_DISABLED", "Business registry lookup is disabled")

	// ErrInvalidBusinessID is returned for inputs that fail the local
	// checksum before any registry call is made.
	ErrInvalidBusinessID = shared.NewDomainError("INVALID_INPUT", "Business ID (IČO) is not valid")
)
