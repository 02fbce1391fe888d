package market

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/ledger"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/provenet/provenance-contract/common"
	cst "github.com/provenet/provenance-contract/contracts/market/marketconst"
)

// Listing is a marketplace offer to sell an ownership token under the stated
// terms. At most one active listing may exist per token at any time.
type Listing struct {
	ID          int
	TokenID     int
	Owner       interop.Hash160
	Price       int
	Currency    int
	ListingType int
	Expiry      int
	Discount    int
	Active      bool
	CreatedAt   int
}

const (
	tokenContractKey   = "tokenScriptHash"
	creditsContractKey = "creditsScriptHash"
	royaltyContractKey = "royaltyScriptHash"

	maxListingsKey    = "maxListings"
	listingFeeKey     = "listingFee"
	listingCounterKey = "listingCounter"

	listingKeyPrefix = 'g'
	tokenKeyPrefix   = 'b'
	ownerKeyPrefix   = 'o'

	defaultMaxListings = 100_000
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()
	args := data.([]any)
	if isUpdate {
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	addrToken := args[0].(interop.Hash160)
	addrCredits := args[1].(interop.Hash160)
	addrRoyalty := args[2].(interop.Hash160)
	if len(addrToken) != interop.Hash160Len ||
		len(addrCredits) != interop.Hash160Len ||
		len(addrRoyalty) != interop.Hash160Len {
		panic("incorrect length of contract script hash")
	}

	storage.Put(ctx, tokenContractKey, addrToken)
	storage.Put(ctx, creditsContractKey, addrCredits)
	storage.Put(ctx, royaltyContractKey, addrRoyalty)
	storage.Put(ctx, listingCounterKey, 0)
	storage.Put(ctx, maxListingsKey, defaultMaxListings)
	storage.Put(ctx, listingFeeKey, 0)

	runtime.Log("market contract initialized")
}

// Update updates the market contract. Can be invoked only by committee.
func Update(nef []byte, manifest string, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nef, manifest, common.AppendVersion(data))
	runtime.Log("market contract updated")
}

// CreateListing creates a new listing for the ownership token and assigns
// the next sequential listing ID to it. The seller must be the current token
// owner and the token must have no other active listing. Charges the listing
// fee from the seller to the authority delegate.
func CreateListing(seller interop.Hash160, tokenID int, price int, currency int,
	listingType int, expiry int, discount int) int {
	ctx := storage.GetContext()

	id := storage.Get(ctx, listingCounterKey).(int)
	if id >= storage.Get(ctx, maxListingsKey).(int) {
		panic(common.ErrCapacityExceeded)
	}
	if price <= 0 {
		panic(cst.ErrPrice)
	}
	if currency < cst.CurrencySTX || currency > cst.CurrencyBTC {
		panic(cst.ErrCurrency)
	}
	if listingType < cst.ListingFixed || listingType > cst.ListingAuction {
		panic(cst.ErrListingType)
	}

	epoch := ledger.CurrentIndex()
	if expiry <= epoch {
		panic(cst.ErrExpiry)
	}
	if discount < 0 || discount > cst.MaxDiscount {
		panic(cst.ErrDiscount)
	}

	tokenContract := storage.Get(ctx, tokenContractKey).(interop.Hash160)
	tokenOwner := contract.Call(tokenContract, "ownerOf", contract.ReadOnly, tokenID).(interop.Hash160)
	if !common.BytesEqual(seller, tokenOwner) {
		panic(common.ErrOwnerWitnessFailed)
	}
	if storage.Get(ctx, tokenIndexKey(tokenID)) != nil {
		panic(cst.ErrListingExists)
	}

	authority := common.RequireAuthority(ctx)
	common.CheckOwnerWitness(seller)

	credits := storage.Get(ctx, creditsContractKey).(interop.Hash160)
	fee := storage.Get(ctx, listingFeeKey).(int)
	common.Pay(credits, seller, authority, fee, common.ListingFeeDetails(tokenID))

	lst := Listing{
		ID:          id,
		TokenID:     tokenID,
		Owner:       seller,
		Price:       price,
		Currency:    currency,
		ListingType: listingType,
		Expiry:      expiry,
		Discount:    discount,
		Active:      true,
		CreatedAt:   epoch,
	}
	common.SetSerialized(ctx, listingKey(id), lst)
	storage.Put(ctx, tokenIndexKey(tokenID), id)
	common.AppendToList(ctx, ownerKey(seller), convert.ToBytes(id))
	storage.Put(ctx, listingCounterKey, id+1)

	runtime.Notify("ListingCreated", id, tokenID, seller, price)
	runtime.Log("market: created listing " + std.Itoa(id, 10))

	return id
}

// CancelListing deactivates the listing and removes it from the token and
// owner indices. Only the listing owner may cancel.
func CancelListing(listingID int) bool {
	ctx := storage.GetContext()

	if !wasStored(ctx, listingID) {
		panic(cst.ErrNotFound)
	}
	lst := getListing(ctx, listingID)

	common.CheckOwnerWitness(lst.Owner)

	if !lst.Active {
		panic(cst.ErrInactive)
	}

	deactivate(ctx, lst)
	runtime.Notify("ListingCancelled", listingID)

	return true
}

// UpdatePrice replaces the price of an active listing leaving every other
// term and the creation epoch intact. Only the listing owner may update.
func UpdatePrice(listingID int, newPrice int) bool {
	ctx := storage.GetContext()

	if !wasStored(ctx, listingID) {
		panic(cst.ErrNotFound)
	}
	lst := getListing(ctx, listingID)

	common.CheckOwnerWitness(lst.Owner)

	if !lst.Active {
		panic(cst.ErrInactive)
	}
	if newPrice <= 0 {
		panic(cst.ErrPrice)
	}

	lst.Price = newPrice
	common.SetSerialized(ctx, listingKey(listingID), lst)

	runtime.Notify("PriceUpdated", listingID, newPrice)

	return true
}

// Purchase completes a sale of an active listing to the buyer. The sale
// amount is the listing price reduced by its discount percentage. Settlement
// goes through the royalty contract, which routes the original owner's
// royalty share and pays the remainder to the seller; the token then moves
// to the buyer via a managed transfer. Everything happens in one
// transaction, a failed payment leaves the listing and the token untouched.
func Purchase(buyer interop.Hash160, listingID int) bool {
	ctx := storage.GetContext()

	if !wasStored(ctx, listingID) {
		panic(cst.ErrNotFound)
	}
	lst := getListing(ctx, listingID)
	if !lst.Active {
		panic(cst.ErrInactive)
	}

	epoch := ledger.CurrentIndex()
	if epoch >= lst.Expiry {
		panic(cst.ErrExpired)
	}

	// A token moved outside the marketplace makes its listing stale.
	tokenContract := storage.Get(ctx, tokenContractKey).(interop.Hash160)
	tokenOwner := contract.Call(tokenContract, "ownerOf", contract.ReadOnly, lst.TokenID).(interop.Hash160)
	if !common.BytesEqual(tokenOwner, lst.Owner) {
		panic(cst.ErrInactive)
	}

	common.CheckWitness(buyer)

	amount := lst.Price - lst.Price*lst.Discount/100

	royalty := storage.Get(ctx, royaltyContractKey).(interop.Hash160)
	contract.Call(royalty, "settle", contract.All, lst.TokenID, amount, lst.Owner, buyer)

	contract.Call(tokenContract, "transferManaged", contract.All, buyer, lst.TokenID)

	deactivate(ctx, lst)
	runtime.Notify("Sale", listingID, lst.TokenID, lst.Owner, buyer, amount)
	runtime.Log("market: completed sale of listing " + std.Itoa(listingID, 10))

	return true
}

// ListingCount returns the overall number of listings ever created.
func ListingCount() int {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, listingCounterKey).(int)
}

// GetListing returns the listing with the given ID. A zero listing (empty
// Owner) is returned for an unknown ID.
func GetListing(listingID int) Listing {
	ctx := storage.GetReadOnlyContext()
	return getListing(ctx, listingID)
}

// ListingByToken returns the ID of the active listing of the token or -1 if
// the token is not listed.
func ListingByToken(tokenID int) int {
	ctx := storage.GetReadOnlyContext()

	data := storage.Get(ctx, tokenIndexKey(tokenID))
	if data == nil {
		return -1
	}

	return data.(int)
}

// ListingsOf returns IDs of the currently active listings of the owner.
func ListingsOf(owner interop.Hash160) []int {
	ctx := storage.GetReadOnlyContext()

	result := []int{}
	list := common.GetList(ctx, ownerKey(owner))
	for i := 0; i < len(list); i++ {
		result = append(result, convert.ToInteger(list[i]))
	}

	return result
}

// SetAuthorityDelegate configures the authority delegate of the marketplace.
// Can be invoked only by committee and only once; the burn address is
// rejected.
func SetAuthorityDelegate(addr interop.Hash160) {
	ctx := storage.GetContext()
	common.SetAuthority(ctx, addr)
	runtime.Log("market: authority delegate configured")
}

// SetMaxListings sets the marketplace capacity. Requires the authority
// delegate to be configured and to witness the transaction.
func SetMaxListings(n int) {
	ctx := storage.GetContext()
	common.CheckAuthorityWitness(ctx)

	if n <= 0 {
		panic("max listings must be positive")
	}

	storage.Put(ctx, maxListingsKey, n)
}

// SetListingFee sets the fee charged on listing creation. Requires the
// authority delegate to be configured and to witness the transaction.
func SetListingFee(amount int) {
	ctx := storage.GetContext()
	common.CheckAuthorityWitness(ctx)

	if amount < 0 {
		panic("fee must not be negative")
	}

	storage.Put(ctx, listingFeeKey, amount)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// deactivate marks the listing inactive and drops it from the token index
// and the owner's active list. The owner index never contains a deactivated
// listing ID.
func deactivate(ctx storage.Context, lst Listing) {
	lst.Active = false
	common.SetSerialized(ctx, listingKey(lst.ID), lst)
	storage.Delete(ctx, tokenIndexKey(lst.TokenID))
	common.RemoveFromList(ctx, ownerKey(lst.Owner), convert.ToBytes(lst.ID))
}

func getListing(ctx storage.Context, id int) Listing {
	data := storage.Get(ctx, listingKey(id))
	if data == nil {
		return Listing{}
	}

	return std.Deserialize(data.([]byte)).(Listing)
}

func wasStored(ctx storage.Context, id int) bool {
	return storage.Get(ctx, listingKey(id)) != nil
}

func listingKey(id int) []byte {
	return append([]byte{listingKeyPrefix}, convert.ToBytes(id)...)
}

func tokenIndexKey(tokenID int) []byte {
	return append([]byte{tokenKeyPrefix}, convert.ToBytes(tokenID)...)
}

func ownerKey(owner interop.Hash160) []byte {
	return append([]byte{ownerKeyPrefix}, owner...)
}
