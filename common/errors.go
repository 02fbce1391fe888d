package common

// Failure kinds shared by all provenance contracts. Entity-specific messages
// live in the respective <contract>const packages.
const (
	// ErrCapacityExceeded appears when a component has reached its
	// configured maximum number of entries.
	ErrCapacityExceeded = "capacity exceeded"
	// ErrAuthorityNotSet appears when an operation requires the authority
	// delegate which has not been configured yet.
	ErrAuthorityNotSet = "authority delegate not configured"
	// ErrAuthoritySet appears on an attempt to configure the authority
	// delegate for the second time.
	ErrAuthoritySet = "authority delegate already configured"
	// ErrBurnAddress appears on an attempt to use the designated burn
	// address where a live account is required.
	ErrBurnAddress = "burn address is not allowed"
)
