package tests

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

// mintAndList registers content, mints a token with the given royalty rate
// and lists it at the given price, all on behalf of the same owner.
func mintAndList(t *testing.T, s *system, owner neotest.Signer, rate, price int64) (int64, int64) {
	contentID, _ := s.register(t, owner)
	tokenID := s.mint(t, owner, contentID, rate)
	listingID := s.list(t, owner, tokenID, price)
	return tokenID, listingID
}

func TestMarketCreateListing(t *testing.T) {
	s := newSystem(t)
	acc := s.executor.NewAccount(t)

	tokenID, listingID := mintAndList(t, s, acc, 10, 5_000)
	require.EqualValues(t, 0, listingID)

	require.EqualValues(t, 1, intResult(t, s.market, "listingCount"))
	require.EqualValues(t, listingID, intResult(t, s.market, "listingByToken", tokenID))

	res, err := s.market.TestInvoke(t, "listingsOf", acc.ScriptHash())
	require.NoError(t, err)
	require.Len(t, res.Pop().Array(), 1)

	t.Run("double listing", func(t *testing.T) {
		s.market.WithSigners(acc).InvokeFail(t, "token already has an active listing",
			"createListing", acc.ScriptHash(), tokenID, 1_000, 0, 0, 1_000, 0)
	})
}

func TestMarketListingValidation(t *testing.T) {
	s := newSystem(t)
	acc := s.executor.NewAccount(t)
	stranger := s.executor.NewAccount(t)

	contentID, _ := s.register(t, acc)
	tokenID := s.mint(t, acc, contentID, 10)
	c := s.market.WithSigners(acc)

	c.InvokeFail(t, "price must be positive", "createListing",
		acc.ScriptHash(), tokenID, 0, 0, 0, 1_000, 0)
	c.InvokeFail(t, "unknown currency", "createListing",
		acc.ScriptHash(), tokenID, 100, 9, 0, 1_000, 0)
	c.InvokeFail(t, "unknown listing type", "createListing",
		acc.ScriptHash(), tokenID, 100, 0, 9, 1_000, 0)
	c.InvokeFail(t, "expiry must be in the future", "createListing",
		acc.ScriptHash(), tokenID, 100, 0, 0, 0, 0)
	c.InvokeFail(t, "discount exceeds maximum", "createListing",
		acc.ScriptHash(), tokenID, 100, 0, 0, 1_000, 101)

	s.market.WithSigners(stranger).InvokeFail(t, "owner witness check failed",
		"createListing", stranger.ScriptHash(), tokenID, 100, 0, 0, 1_000, 0)
}

func TestMarketCancelListing(t *testing.T) {
	s := newSystem(t)
	acc := s.executor.NewAccount(t)
	stranger := s.executor.NewAccount(t)

	tokenID, listingID := mintAndList(t, s, acc, 10, 5_000)

	s.market.WithSigners(stranger).InvokeFail(t, "owner witness check failed",
		"cancelListing", listingID)

	s.market.WithSigners(acc).Invoke(t, true, "cancelListing", listingID)
	require.EqualValues(t, -1, intResult(t, s.market, "listingByToken", tokenID))

	res, err := s.market.TestInvoke(t, "listingsOf", acc.ScriptHash())
	require.NoError(t, err)
	require.Len(t, res.Pop().Array(), 0)

	s.market.WithSigners(acc).InvokeFail(t, "listing is not active", "cancelListing", listingID)
	s.market.WithSigners(acc).InvokeFail(t, "listing does not exist", "cancelListing", 42)

	// A cancelled listing frees the token for a new one.
	newID := s.list(t, acc, tokenID, 7_000)
	require.EqualValues(t, 1, newID)
}

func TestMarketUpdatePrice(t *testing.T) {
	s := newSystem(t)
	acc := s.executor.NewAccount(t)

	_, listingID := mintAndList(t, s, acc, 10, 5_000)

	s.market.WithSigners(acc).InvokeFail(t, "price must be positive",
		"updatePrice", listingID, 0)
	s.market.WithSigners(acc).Invoke(t, true, "updatePrice", listingID, 6_000)
}

func TestMarketListingFee(t *testing.T) {
	s := newSystem(t)
	acc := s.executor.NewAccount(t)

	s.market.WithSigners(s.delegate).Invoke(t, stackitem.Null{}, "setListingFee", 100)

	contentID, _ := s.register(t, acc)
	tokenID := s.mint(t, acc, contentID, 10)

	s.market.WithSigners(acc).InvokeFail(t, "can't transfer credits",
		"createListing", acc.ScriptHash(), tokenID, 5_000, 0, 0, 1_000, 0)
	require.EqualValues(t, 0, intResult(t, s.market, "listingCount"))
	require.EqualValues(t, -1, intResult(t, s.market, "listingByToken", tokenID))

	s.fund(t, acc, 100)
	s.list(t, acc, tokenID, 5_000)

	require.EqualValues(t, 100, balanceOf(t, s.credits, s.delegate.ScriptHash()))
}

func TestMarketPurchase(t *testing.T) {
	s := newSystem(t)
	seller := s.executor.NewAccount(t)
	buyer := s.executor.NewAccount(t)

	tokenID, listingID := mintAndList(t, s, seller, 10, 5_000)
	s.fund(t, buyer, 10_000)

	s.market.WithSigners(buyer).Invoke(t, true, "purchase", buyer.ScriptHash(), listingID)

	// The seller still is the original owner here, so no royalty split.
	require.EqualValues(t, 5_000, balanceOf(t, s.credits, seller.ScriptHash()))
	require.EqualValues(t, 5_000, balanceOf(t, s.credits, buyer.ScriptHash()))
	require.EqualValues(t, 0, intResult(t, s.royalty, "royaltiesPaid", tokenID))

	res, err := s.token.TestInvoke(t, "ownerOf", tokenID)
	require.NoError(t, err)
	require.Equal(t, buyer.ScriptHash().BytesBE(), res.Pop().Bytes())
	require.EqualValues(t, -1, intResult(t, s.market, "listingByToken", tokenID))

	t.Run("royalty split on resale", func(t *testing.T) {
		reseller := buyer
		secondBuyer := s.executor.NewAccount(t)
		s.fund(t, secondBuyer, 1_000)

		resaleID := s.list(t, reseller, tokenID, 1_000)
		s.market.WithSigners(secondBuyer).Invoke(t, true, "purchase",
			secondBuyer.ScriptHash(), resaleID)

		require.EqualValues(t, 5_100, balanceOf(t, s.credits, seller.ScriptHash()))
		require.EqualValues(t, 5_900, balanceOf(t, s.credits, reseller.ScriptHash()))
		require.EqualValues(t, 0, balanceOf(t, s.credits, secondBuyer.ScriptHash()))
		require.EqualValues(t, 100, intResult(t, s.royalty, "royaltiesPaid", tokenID))
	})
}

func TestMarketPurchaseDiscount(t *testing.T) {
	s := newSystem(t)
	seller := s.executor.NewAccount(t)
	buyer := s.executor.NewAccount(t)

	contentID, _ := s.register(t, seller)
	tokenID := s.mint(t, seller, contentID, 0)

	listingID := intResult(t, s.market, "listingCount")
	s.market.WithSigners(seller).Invoke(t, listingID, "createListing",
		seller.ScriptHash(), tokenID, 1_000, 0, 0, 1_000, 25)

	s.fund(t, buyer, 1_000)
	s.market.WithSigners(buyer).Invoke(t, true, "purchase", buyer.ScriptHash(), listingID)

	require.EqualValues(t, 750, balanceOf(t, s.credits, seller.ScriptHash()))
	require.EqualValues(t, 250, balanceOf(t, s.credits, buyer.ScriptHash()))
}

func TestMarketPurchaseAtomicity(t *testing.T) {
	s := newSystem(t)
	seller := s.executor.NewAccount(t)
	buyer := s.executor.NewAccount(t)

	tokenID, listingID := mintAndList(t, s, seller, 10, 5_000)

	// The buyer can't pay, the whole purchase must leave no trace.
	s.market.WithSigners(buyer).InvokeFail(t, "can't transfer credits",
		"purchase", buyer.ScriptHash(), listingID)

	require.EqualValues(t, listingID, intResult(t, s.market, "listingByToken", tokenID))
	res, err := s.token.TestInvoke(t, "ownerOf", tokenID)
	require.NoError(t, err)
	require.Equal(t, seller.ScriptHash().BytesBE(), res.Pop().Bytes())
	require.EqualValues(t, 0, balanceOf(t, s.credits, seller.ScriptHash()))
}

func TestMarketPurchaseExpired(t *testing.T) {
	s := newSystem(t)
	seller := s.executor.NewAccount(t)
	buyer := s.executor.NewAccount(t)

	contentID, _ := s.register(t, seller)
	tokenID := s.mint(t, seller, contentID, 10)

	expiry := int64(s.executor.Chain.BlockHeight()) + 3
	listingID := intResult(t, s.market, "listingCount")
	s.market.WithSigners(seller).Invoke(t, listingID, "createListing",
		seller.ScriptHash(), tokenID, 1_000, 0, 0, expiry, 0)

	s.fund(t, buyer, 1_000)
	s.executor.GenerateNewBlocks(t, 10)

	s.market.WithSigners(buyer).InvokeFail(t, "listing has expired",
		"purchase", buyer.ScriptHash(), listingID)
}

func TestMarketPurchaseStaleListing(t *testing.T) {
	s := newSystem(t)
	seller := s.executor.NewAccount(t)
	buyer := s.executor.NewAccount(t)
	friend := s.executor.NewAccount(t)

	tokenID, listingID := mintAndList(t, s, seller, 10, 5_000)

	// The token leaves the seller outside the marketplace, the listing
	// must not be purchasable anymore.
	s.token.WithSigners(seller).Invoke(t, true, "transfer",
		friend.ScriptHash(), tokenID, nil)

	s.fund(t, buyer, 10_000)
	s.market.WithSigners(buyer).InvokeFail(t, "listing is not active",
		"purchase", buyer.ScriptHash(), listingID)
}

func TestMarketPurchaseInactive(t *testing.T) {
	s := newSystem(t)
	seller := s.executor.NewAccount(t)
	buyer := s.executor.NewAccount(t)

	_, listingID := mintAndList(t, s, seller, 10, 5_000)
	s.market.WithSigners(seller).Invoke(t, true, "cancelListing", listingID)

	s.fund(t, buyer, 10_000)
	s.market.WithSigners(buyer).InvokeFail(t, "listing is not active",
		"purchase", buyer.ScriptHash(), listingID)
	s.market.WithSigners(buyer).InvokeFail(t, "listing does not exist",
		"purchase", buyer.ScriptHash(), 42)
}
