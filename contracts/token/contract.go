package token

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/ledger"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/provenet/provenance-contract/common"
	cst "github.com/provenet/provenance-contract/contracts/token/tokenconst"
)

// OwnershipToken is a non-divisible token binding exactly one registered
// content item to its current owner. OriginalOwner is the minter captured
// once at mint time; it never changes and is the royalty recipient for all
// future paid events.
type OwnershipToken struct {
	ID            int
	ContentID     int
	Owner         interop.Hash160
	OriginalOwner interop.Hash160
	RoyaltyRate   int
	MetadataURI   string
	MintedAt      int
	Active        bool
}

const (
	registryContractKey = "registryScriptHash"
	creditsContractKey  = "creditsScriptHash"
	marketContractKey   = "marketScriptHash"

	maxTokensKey    = "maxTokens"
	mintFeeKey      = "mintFee"
	tokenCounterKey = "tokenCounter"

	tokenKeyPrefix        = 't'
	contentKeyPrefix      = 'b'
	balanceKeyPrefix      = 'l'
	accountTokenKeyPrefix = 'k'

	defaultMaxTokens = 100_000
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()
	args := data.([]any)
	if isUpdate {
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	addrRegistry := args[0].(interop.Hash160)
	addrCredits := args[1].(interop.Hash160)
	addrMarket := args[2].(interop.Hash160)
	if len(addrRegistry) != interop.Hash160Len ||
		len(addrCredits) != interop.Hash160Len ||
		len(addrMarket) != interop.Hash160Len {
		panic("incorrect length of contract script hash")
	}

	storage.Put(ctx, registryContractKey, addrRegistry)
	storage.Put(ctx, creditsContractKey, addrCredits)
	storage.Put(ctx, marketContractKey, addrMarket)
	storage.Put(ctx, tokenCounterKey, 0)
	storage.Put(ctx, maxTokensKey, defaultMaxTokens)
	storage.Put(ctx, mintFeeKey, 0)

	runtime.Log("token contract initialized")
}

// Update updates the token contract. Can be invoked only by committee.
func Update(nef []byte, manifest string, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nef, manifest, common.AppendVersion(data))
	runtime.Log("token contract updated")
}

// Symbol returns the ownership token symbol.
func Symbol() string {
	return "PVT"
}

// Decimals returns the ownership token decimals. Tokens are non-divisible.
func Decimals() int {
	return 0
}

// TotalSupply returns the overall number of minted ownership tokens.
func TotalSupply() int {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, tokenCounterKey).(int)
}

// Mint creates a new ownership token bound to the registered content.
// The minter must be the current owner of the content in the registry
// contract, a content item can be bound to at most one token, ever.
// Charges the mint fee from the minter to the authority delegate.
func Mint(minter interop.Hash160, contentID int, royaltyRate int, metadataURI string) int {
	ctx := storage.GetContext()

	id := storage.Get(ctx, tokenCounterKey).(int)
	if id >= storage.Get(ctx, maxTokensKey).(int) {
		panic(common.ErrCapacityExceeded)
	}
	if royaltyRate < 0 || royaltyRate > cst.MaxRoyaltyRate {
		panic(cst.ErrRoyaltyRate)
	}
	if len(metadataURI) == 0 || len(metadataURI) > cst.MaxMetadataURILength {
		panic(cst.ErrMetadataURILength)
	}

	registry := storage.Get(ctx, registryContractKey).(interop.Hash160)
	contentOwner := contract.Call(registry, "owner", contract.ReadOnly, contentID).(interop.Hash160)
	if len(contentOwner) == 0 {
		panic(cst.ErrContentNotFound)
	}
	if !common.BytesEqual(minter, contentOwner) {
		panic(cst.ErrNotContentOwner)
	}
	if storage.Get(ctx, contentKey(contentID)) != nil {
		panic(cst.ErrContentBound)
	}

	authority := common.RequireAuthority(ctx)
	common.CheckOwnerWitness(minter)

	credits := storage.Get(ctx, creditsContractKey).(interop.Hash160)
	fee := storage.Get(ctx, mintFeeKey).(int)
	common.Pay(credits, minter, authority, fee, common.MintFeeDetails(contentID))

	tok := OwnershipToken{
		ID:            id,
		ContentID:     contentID,
		Owner:         minter,
		OriginalOwner: minter,
		RoyaltyRate:   royaltyRate,
		MetadataURI:   metadataURI,
		MintedAt:      ledger.CurrentIndex(),
		Active:        true,
	}
	common.SetSerialized(ctx, tokenKey(id), tok)
	storage.Put(ctx, contentKey(contentID), id)
	updateBalance(ctx, id, minter, +1)
	storage.Put(ctx, tokenCounterKey, id+1)

	runtime.Notify("Mint", id, contentID, minter)
	postTransfer(nil, minter, id)
	runtime.Log("token: minted token " + std.Itoa(id, 10))

	return id
}

// Transfer transfers the token to a new owner. Returns false without changes
// when the transaction is not witnessed by the current owner. A plain
// transfer carries no payment and therefore triggers no royalty
// distribution; paid movements go through the marketplace.
func Transfer(to interop.Hash160, tokenID int, data any) bool {
	if len(to) != interop.Hash160Len {
		panic(cst.ErrReceiver)
	}

	ctx := storage.GetContext()
	tok := getToken(ctx, tokenID)
	from := tok.Owner
	if !runtime.CheckWitness(from) {
		return false
	}

	if !common.BytesEqual(from, to) {
		tok.Owner = to
		common.SetSerialized(ctx, tokenKey(tokenID), tok)
		updateBalance(ctx, tokenID, from, -1)
		updateBalance(ctx, tokenID, to, +1)
	}
	postTransfer(from, to, tokenID)

	return true
}

// TransferManaged moves the token to a new owner on behalf of the
// marketplace during a sale. Can be invoked only by the marketplace
// contract; the marketplace has already verified the buyer's payment within
// the same transaction.
func TransferManaged(to interop.Hash160, tokenID int) {
	ctx := storage.GetContext()

	market := storage.Get(ctx, marketContractKey).(interop.Hash160)
	if !common.BytesEqual(runtime.GetCallingScriptHash(), market) {
		panic(cst.ErrNotMarket)
	}
	if len(to) != interop.Hash160Len {
		panic(cst.ErrReceiver)
	}

	tok := getToken(ctx, tokenID)
	from := tok.Owner
	if !common.BytesEqual(from, to) {
		tok.Owner = to
		common.SetSerialized(ctx, tokenKey(tokenID), tok)
		updateBalance(ctx, tokenID, from, -1)
		updateBalance(ctx, tokenID, to, +1)
	}
	postTransfer(from, to, tokenID)
}

// OwnerOf returns the current owner of the token. Panics for an unknown
// token.
func OwnerOf(tokenID int) interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return getToken(ctx, tokenID).Owner
}

// IsOwner checks whether the account is the current owner of the token.
// Consumed by external access gates before releasing off-chain payload
// pointers.
func IsOwner(acc interop.Hash160, tokenID int) bool {
	ctx := storage.GetReadOnlyContext()
	return common.BytesEqual(getToken(ctx, tokenID).Owner, acc)
}

// Get returns all the token info. Panics for an unknown token.
func Get(tokenID int) OwnershipToken {
	ctx := storage.GetReadOnlyContext()
	return getToken(ctx, tokenID)
}

// Properties returns a map of token properties.
func Properties(tokenID int) map[string]any {
	ctx := storage.GetReadOnlyContext()
	tok := getToken(ctx, tokenID)
	return map[string]any{
		"contentId":   tok.ContentID,
		"owner":       tok.Owner,
		"royaltyRate": tok.RoyaltyRate,
		"metadataUri": tok.MetadataURI,
		"mintedAt":    tok.MintedAt,
	}
}

// TokenByContent returns the ID of the token bound to the content or -1 if
// the content has no token.
func TokenByContent(contentID int) int {
	ctx := storage.GetReadOnlyContext()

	data := storage.Get(ctx, contentKey(contentID))
	if data == nil {
		return -1
	}

	return data.(int)
}

// IsMinted checks whether the content already has a token bound to it.
func IsMinted(contentID int) bool {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, contentKey(contentID)) != nil
}

// RoyaltyRate returns the royalty percentage of the token. Consumed by the
// royalty contract. Panics for an unknown token.
func RoyaltyRate(tokenID int) int {
	ctx := storage.GetReadOnlyContext()
	return getToken(ctx, tokenID).RoyaltyRate
}

// OriginalOwner returns the address the token royalties are routed to, that
// is the minter captured at mint time. Consumed by the royalty contract.
// Panics for an unknown token.
func OriginalOwner(tokenID int) interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	return getToken(ctx, tokenID).OriginalOwner
}

// BalanceOf returns the number of tokens owned by the account.
func BalanceOf(owner interop.Hash160) int {
	if len(owner) != interop.Hash160Len {
		panic("invalid owner")
	}

	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, balanceKey(owner), 0)
}

// TokensOf returns an iterator over IDs of the tokens owned by the account.
func TokensOf(owner interop.Hash160) iterator.Iterator {
	if len(owner) != interop.Hash160Len {
		panic("invalid owner")
	}

	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, accountPrefix(owner), storage.ValuesOnly)
}

// SetAuthorityDelegate configures the authority delegate of the token
// contract. Can be invoked only by committee and only once; the burn address
// is rejected.
func SetAuthorityDelegate(addr interop.Hash160) {
	ctx := storage.GetContext()
	common.SetAuthority(ctx, addr)
	runtime.Log("token: authority delegate configured")
}

// SetMaxTokens sets the token cap. Requires the authority delegate to be
// configured and to witness the transaction.
func SetMaxTokens(n int) {
	ctx := storage.GetContext()
	common.CheckAuthorityWitness(ctx)

	if n <= 0 {
		panic("max tokens must be positive")
	}

	storage.Put(ctx, maxTokensKey, n)
}

// SetMintFee sets the fee charged on token minting. Requires the authority
// delegate to be configured and to witness the transaction.
func SetMintFee(amount int) {
	ctx := storage.GetContext()
	common.CheckAuthorityWitness(ctx)

	if amount < 0 {
		panic("fee must not be negative")
	}

	storage.Put(ctx, mintFeeKey, amount)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func getToken(ctx storage.Context, id int) OwnershipToken {
	data := storage.Get(ctx, tokenKey(id))
	if data == nil {
		panic(cst.ErrNotFound)
	}

	return std.Deserialize(data.([]byte)).(OwnershipToken)
}

// updateBalance maintains the owner balance counter and the account-token
// index the TokensOf iterator walks.
func updateBalance(ctx storage.Context, tokenID int, acc interop.Hash160, diff int) {
	key := balanceKey(acc)
	balance := common.GetInt(ctx, key, 0) + diff
	if balance == 0 {
		storage.Delete(ctx, key)
	} else {
		storage.Put(ctx, key, balance)
	}

	accountTokenKey := append(accountPrefix(acc), convert.ToBytes(tokenID)...)
	if diff < 0 {
		storage.Delete(ctx, accountTokenKey)
	} else {
		storage.Put(ctx, accountTokenKey, tokenID)
	}
}

func postTransfer(from, to interop.Hash160, tokenID int) {
	runtime.Notify("Transfer", from, to, 1, convert.ToBytes(tokenID))
}

func tokenKey(id int) []byte {
	return append([]byte{tokenKeyPrefix}, convert.ToBytes(id)...)
}

func contentKey(contentID int) []byte {
	return append([]byte{contentKeyPrefix}, convert.ToBytes(contentID)...)
}

func balanceKey(acc interop.Hash160) []byte {
	return append([]byte{balanceKeyPrefix}, acc...)
}

func accountPrefix(acc interop.Hash160) []byte {
	return append([]byte{accountTokenKeyPrefix}, acc...)
}
