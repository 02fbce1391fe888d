package royalty

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
	cst "github.com/provenet/provenance-contract/contracts/royalty/royaltyconst"
)

// RoyaltyRecord accumulates the royalty payouts routed to the original owner
// of a token over its lifetime.
type RoyaltyRecord struct {
	TokenID    int
	Recipient  interop.Hash160
	TotalPaid  int
	LastPayout int
}

const (
	tokenContractKey   = "tokenScriptHash"
	creditsContractKey = "creditsScriptHash"
	marketContractKey  = "marketScriptHash"

	recordKeyPrefix = 'r'
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
	addrMarket := args[2].(interop.Hash160)
	if len(addrToken) != interop.Hash160Len ||
		len(addrCredits) != interop.Hash160Len ||
		len(addrMarket) != interop.Hash160Len {
		panic("incorrect length of contract script hash")
	}

	storage.Put(ctx, tokenContractKey, addrToken)
	storage.Put(ctx, creditsContractKey, addrCredits)
	storage.Put(ctx, marketContractKey, addrMarket)

	runtime.Log("royalty contract initialized")
}

// Update updates the royalty contract. Can be invoked only by committee.
func Update(nef []byte, manifest string, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nef, manifest, common.AppendVersion(data))
	runtime.Log("royalty contract updated")
}

// Settle distributes the sale amount between the token's original owner and
// the seller. The original owner receives the royalty share of the amount
// according to the rate fixed at mint time, the seller receives the
// remainder. When the seller still is the original owner the whole amount
// goes to them in a single payment. Can be invoked only by the marketplace
// contract.
func Settle(tokenID int, amount int, seller interop.Hash160, buyer interop.Hash160) {
	ctx := storage.GetContext()

	market := storage.Get(ctx, marketContractKey).(interop.Hash160)
	if !common.BytesEqual(market, runtime.GetCallingScriptHash()) {
		panic(cst.ErrNotMarket)
	}
	if amount <= 0 {
		panic(cst.ErrAmount)
	}

	distribute(ctx, tokenID, amount, seller, buyer)
}

// PayAccess pays the given amount for accessing the content behind the
// token. The payer covers the original owner's royalty share, the remainder
// goes to the current token owner. Requires the payer's witness.
func PayAccess(payer interop.Hash160, tokenID int, amount int) bool {
	ctx := storage.GetContext()

	if amount <= 0 {
		panic(cst.ErrAmount)
	}

	// ownerOf faults for an unknown token, no separate existence check.
	tokenContract := storage.Get(ctx, tokenContractKey).(interop.Hash160)
	owner := contract.Call(tokenContract, "ownerOf", contract.ReadOnly, tokenID).(interop.Hash160)

	common.CheckWitness(payer)

	distribute(ctx, tokenID, amount, owner, payer)

	return true
}

// RoyaltiesPaid returns the total amount of royalties ever routed to the
// original owner of the token.
func RoyaltiesPaid(tokenID int) int {
	ctx := storage.GetReadOnlyContext()
	return getRecord(ctx, tokenID).TotalPaid
}

// LastPayout returns the epoch of the latest royalty payout for the token or
// 0 if no royalty was ever paid.
func LastPayout(tokenID int) int {
	ctx := storage.GetReadOnlyContext()
	return getRecord(ctx, tokenID).LastPayout
}

// GetRecord returns the accumulated royalty record of the token. A zero
// record (empty Recipient) is returned for a token without payouts.
func GetRecord(tokenID int) RoyaltyRecord {
	ctx := storage.GetReadOnlyContext()
	return getRecord(ctx, tokenID)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// distribute routes the payment: the original owner takes
// amount*rate/100 rounded down, the payee takes the rest. The payer for
// the whole operation is the buyer.
func distribute(ctx storage.Context, tokenID int, amount int, payee interop.Hash160, payer interop.Hash160) {
	tokenContract := storage.Get(ctx, tokenContractKey).(interop.Hash160)
	rate := contract.Call(tokenContract, "royaltyRate", contract.ReadOnly, tokenID).(int)
	origOwner := contract.Call(tokenContract, "originalOwner", contract.ReadOnly, tokenID).(interop.Hash160)

	credits := storage.Get(ctx, creditsContractKey).(interop.Hash160)

	royaltyAmount := amount * rate / 100
	if common.BytesEqual(origOwner, payee) {
		// No split when the payee still is the original owner.
		royaltyAmount = 0
		common.Pay(credits, payer, payee, amount, common.SaleDetails(tokenID))
	} else {
		common.Pay(credits, payer, origOwner, royaltyAmount, common.RoyaltyDetails(tokenID))
		common.Pay(credits, payer, payee, amount-royaltyAmount, common.SaleDetails(tokenID))
	}

	if royaltyAmount > 0 {
		rec := getRecord(ctx, tokenID)
		rec.TokenID = tokenID
		rec.Recipient = origOwner
		rec.TotalPaid += royaltyAmount
		rec.LastPayout = ledger.CurrentIndex()
		common.SetSerialized(ctx, recordKey(tokenID), rec)

		runtime.Notify("RoyaltyPaid", tokenID, origOwner, royaltyAmount)
		runtime.Log("royalty: paid out for token " + std.Itoa(tokenID, 10))
	}
}

func getRecord(ctx storage.Context, tokenID int) RoyaltyRecord {
	data := storage.Get(ctx, recordKey(tokenID))
	if data == nil {
		return RoyaltyRecord{}
	}

	return std.Deserialize(data.([]byte)).(RoyaltyRecord)
}

func recordKey(tokenID int) []byte {
	return append([]byte{recordKeyPrefix}, convert.ToBytes(tokenID)...)
}
