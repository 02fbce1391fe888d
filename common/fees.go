package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
)

var (
	registrationFeePrefix = []byte{0x10}
	mintFeePrefix         = []byte{0x11}
	listingFeePrefix      = []byte{0x12}
	royaltyPrefix         = []byte{0x20}
	salePrefix            = []byte{0x21}
	accessPrefix          = []byte{0x22}
	mintPrefix            = []byte{0x30}
	burnPrefix            = []byte{0x31}
)

// RegistrationFeeDetails marks a credits transfer as a content registration
// fee for the content with the given hash.
func RegistrationFeeDetails(contentHash []byte) []byte {
	return append(registrationFeePrefix, contentHash...)
}

// MintFeeDetails marks a credits transfer as a token mint fee.
func MintFeeDetails(contentID int) []byte {
	return append(mintFeePrefix, convert.ToBytes(contentID)...)
}

// ListingFeeDetails marks a credits transfer as a marketplace listing fee.
func ListingFeeDetails(tokenID int) []byte {
	return append(listingFeePrefix, convert.ToBytes(tokenID)...)
}

// RoyaltyDetails marks a credits transfer as a royalty payout.
func RoyaltyDetails(tokenID int) []byte {
	return append(royaltyPrefix, convert.ToBytes(tokenID)...)
}

// SaleDetails marks a credits transfer as the seller part of a sale.
func SaleDetails(tokenID int) []byte {
	return append(salePrefix, convert.ToBytes(tokenID)...)
}

// AccessDetails marks a credits transfer as a paid content access.
func AccessDetails(tokenID int) []byte {
	return append(accessPrefix, convert.ToBytes(tokenID)...)
}

// MintDetails marks a credits transfer as a committee credits issue.
func MintDetails(txDetails []byte) []byte {
	return append(mintPrefix, txDetails...)
}

// BurnDetails marks a credits transfer as a committee credits burn.
func BurnDetails(txDetails []byte) []byte {
	return append(burnPrefix, txDetails...)
}

// Pay moves amount of credits from one account to another via the credits
// contract. Zero amount is a no-op. The credits contract panics if the
// transfer can't be completed, aborting the whole carrier transaction, so a
// caller never observes a half-applied operation.
func Pay(credits interop.Hash160, from, to interop.Hash160, amount int, details []byte) {
	if amount <= 0 {
		return
	}

	contract.Call(credits, "transferX", contract.All, from, to, amount, details)
}
