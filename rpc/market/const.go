// Package market contains RPC-level constants of the Provenance Marketplace contract.
package market

import (
	"github.com/provenet/provenance-contract/contracts/market/marketconst"
)

const (
	// NotFoundError is returned if listing is missing.
	NotFoundError = marketconst.ErrNotFound

	// ListingExistsError is returned on an attempt to list an already
	// listed token.
	ListingExistsError = marketconst.ErrListingExists

	// ExpiredError is returned on a purchase of an expired listing.
	ExpiredError = marketconst.ErrExpired
)
