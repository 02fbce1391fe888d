package tokenconst

// Field constraints of an ownership token.
const (
	// MaxRoyaltyRate is the maximum royalty percentage a token can carry.
	MaxRoyaltyRate = 20
	// MaxMetadataURILength limits the token metadata URI, which also must
	// not be empty.
	MaxMetadataURILength = 256
)

// Error messages thrown by the token contract.
const (
	// ErrNotFound is returned if the referenced token is missing.
	ErrNotFound = "token does not exist"
	// ErrContentNotFound is returned if the referenced content is not
	// registered in the registry contract.
	ErrContentNotFound = "content does not exist"
	// ErrContentBound is returned on an attempt to mint a second token
	// against the same content.
	ErrContentBound = "content already has a token"
	// ErrNotContentOwner is returned when the minter is not the current
	// owner of the referenced content.
	ErrNotContentOwner = "minter is not the content owner"
	// ErrNotMarket is returned when a managed transfer is attempted by
	// anyone but the marketplace contract.
	ErrNotMarket = "method must be invoked by the marketplace contract"

	ErrRoyaltyRate       = "royalty rate out of range"
	ErrMetadataURILength = "invalid metadata URI length"
	ErrReceiver          = "invalid receiver address"
)
