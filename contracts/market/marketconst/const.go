package marketconst

// Listing.Currency values, symbolic settlement units of a listing.
const (
	CurrencySTX = 0
	CurrencyUSD = 1
	CurrencyBTC = 2
)

// Listing.ListingType values.
const (
	ListingFixed   = 0
	ListingAuction = 1
)

// Field constraints of a listing.
const (
	// MaxDiscount is the maximum discount percentage of a listing.
	MaxDiscount = 100
)

// Error messages thrown by the marketplace contract.
const (
	// ErrNotFound is returned if the referenced listing is missing.
	ErrNotFound = "listing does not exist"
	// ErrListingExists is returned on an attempt to list a token which
	// already has an active listing.
	ErrListingExists = "token already has an active listing"
	// ErrInactive is returned on operations over a cancelled or sold
	// listing.
	ErrInactive = "listing is not active"
	// ErrExpired is returned on an attempt to purchase a stale listing.
	ErrExpired = "listing has expired"

	ErrPrice       = "price must be positive"
	ErrCurrency    = "unknown currency"
	ErrListingType = "unknown listing type"
	ErrExpiry      = "expiry must be in the future"
	ErrDiscount    = "discount exceeds maximum"
)
