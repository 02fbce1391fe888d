package royaltyconst

// Royalty contract errors.
const (
	// ErrNotMarket is returned when a settlement method is invoked by
	// anything other than the marketplace contract.
	ErrNotMarket = "method must be invoked by the marketplace contract"
	// ErrAmount is returned on a non-positive payment amount.
	ErrAmount = "amount must be positive"
)
