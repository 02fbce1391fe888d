package registry

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
	cst "github.com/provenet/provenance-contract/contracts/registry/registryconst"
)

type (
	// ContentRecord describes a single registered content item.
	ContentRecord struct {
		ID           int
		Owner        interop.Hash160
		ContentHash  []byte
		ExternalLink string
		Metadata     string
		SequenceType int
		Visibility   int
		Expiry       int
		Category     string
		Tags         []string
		Description  string
		RegisteredAt int
		Active       bool
	}

	// UpdateLog keeps the last metadata revision of a content item. There is
	// at most one live entry per content, it is overwritten, not appended.
	UpdateLog struct {
		Updater      interop.Hash160
		Epoch        int
		Metadata     string
		ExternalLink string
	}

	// AccessEntry is a single record of the per-content access log.
	AccessEntry struct {
		Accessor interop.Hash160
		Epoch    int
	}
)

const (
	creditsContractKey = "creditsScriptHash"

	maxEntriesKey      = "maxEntries"
	registrationFeeKey = "registrationFee"
	contentCounterKey  = "contentCounter"

	contentKeyPrefix = 'x'
	hashKeyPrefix    = 'h'
	updateKeyPrefix  = 'u'
	accessKeyPrefix  = 'a'

	defaultMaxEntries = 100_000
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()
	args := data.([]any)
	if isUpdate {
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	addrCredits := args[0].(interop.Hash160)
	if len(addrCredits) != interop.Hash160Len {
		panic("incorrect length of credits contract script hash")
	}

	storage.Put(ctx, creditsContractKey, addrCredits)
	storage.Put(ctx, contentCounterKey, 0)
	storage.Put(ctx, maxEntriesKey, defaultMaxEntries)
	storage.Put(ctx, registrationFeeKey, 0)

	runtime.Log("registry contract initialized")
}

// Update updates the registry contract. Can be invoked only by committee.
func Update(nef []byte, manifest string, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nef, manifest, common.AppendVersion(data))
	runtime.Log("registry contract updated")
}

// RegisterContent registers a new content fingerprint together with its
// metadata and assigns the next sequential content ID to it. The caller
// becomes the owner of the record. Requires owner witness and a configured
// authority delegate; charges the registration fee from the owner to the
// delegate through the credits contract. The fee transfer and the record
// creation happen in one transaction, a failed transfer aborts the whole
// registration.
func RegisterContent(owner interop.Hash160, contentHash []byte, externalLink string,
	metadata string, sequenceType int, visibility int, expiry int,
	category string, tags []string, description string) int {
	ctx := storage.GetContext()

	id := storage.Get(ctx, contentCounterKey).(int)
	if id >= storage.Get(ctx, maxEntriesKey).(int) {
		panic(common.ErrCapacityExceeded)
	}
	if len(contentHash) != cst.ContentHashSize {
		panic(cst.ErrInvalidHash)
	}
	if len(metadata) == 0 || len(metadata) > cst.MaxMetadataLength {
		panic(cst.ErrMetadataLength)
	}
	if len(externalLink) > cst.MaxLinkLength {
		panic(cst.ErrLinkLength)
	}
	if sequenceType < cst.SequenceWholeGenome || sequenceType > cst.SequenceTargeted {
		panic(cst.ErrSequenceType)
	}
	if visibility < cst.VisibilityPublic || visibility > cst.VisibilityRestricted {
		panic(cst.ErrVisibility)
	}

	epoch := ledger.CurrentIndex()
	if expiry <= epoch {
		panic(cst.ErrExpiry)
	}
	if len(category) == 0 || len(category) > cst.MaxCategoryLength {
		panic(cst.ErrCategoryLength)
	}
	if len(tags) > cst.MaxTags {
		panic(cst.ErrTagsCount)
	}
	for i := 0; i < len(tags); i++ {
		if len(tags[i]) == 0 || len(tags[i]) > cst.MaxTagLength {
			panic(cst.ErrTagLength)
		}
	}
	if len(description) > cst.MaxDescriptionLength {
		panic(cst.ErrDescriptionLength)
	}

	hKey := hashKey(contentHash)
	if storage.Get(ctx, hKey) != nil {
		panic(cst.ErrHashExists)
	}

	authority := common.RequireAuthority(ctx)
	common.CheckOwnerWitness(owner)

	credits := storage.Get(ctx, creditsContractKey).(interop.Hash160)
	fee := storage.Get(ctx, registrationFeeKey).(int)
	common.Pay(credits, owner, authority, fee, common.RegistrationFeeDetails(contentHash))

	rec := ContentRecord{
		ID:           id,
		Owner:        owner,
		ContentHash:  contentHash,
		ExternalLink: externalLink,
		Metadata:     metadata,
		SequenceType: sequenceType,
		Visibility:   visibility,
		Expiry:       expiry,
		Category:     category,
		Tags:         tags,
		Description:  description,
		RegisteredAt: epoch,
		Active:       true,
	}
	common.SetSerialized(ctx, contentKey(id), rec)
	storage.Put(ctx, hKey, id)
	storage.Put(ctx, contentCounterKey, id+1)

	runtime.Notify("ContentRegistered", id, owner, contentHash)
	runtime.Log("registry: registered new content " + std.Itoa(id, 10))

	return id
}

// UpdateContent replaces the metadata and, if newLink is not empty, the
// external link of the content. Only the current owner may update. The single
// update log slot of the content is overwritten with this revision.
func UpdateContent(id int, newMetadata string, newLink string) bool {
	ctx := storage.GetContext()

	rec := getContent(ctx, id)
	if len(rec.ContentHash) == 0 {
		panic(cst.ErrNotFound)
	}
	if len(newMetadata) == 0 || len(newMetadata) > cst.MaxMetadataLength {
		panic(cst.ErrMetadataLength)
	}
	if len(newLink) > cst.MaxLinkLength {
		panic(cst.ErrLinkLength)
	}

	common.CheckOwnerWitness(rec.Owner)

	epoch := ledger.CurrentIndex()
	rec.Metadata = newMetadata
	if len(newLink) != 0 {
		rec.ExternalLink = newLink
	}
	common.SetSerialized(ctx, contentKey(id), rec)

	log := UpdateLog{
		Updater:      rec.Owner,
		Epoch:        epoch,
		Metadata:     newMetadata,
		ExternalLink: newLink,
	}
	common.SetSerialized(ctx, updateKey(id), log)

	runtime.Notify("ContentUpdated", id)

	return true
}

// DeactivateContent marks the content as inactive. Only the current owner may
// deactivate. The record and its hash index entry are kept, so the
// fingerprint stays unavailable for re-registration.
func DeactivateContent(id int) bool {
	ctx := storage.GetContext()

	rec := getContent(ctx, id)
	if len(rec.ContentHash) == 0 {
		panic(cst.ErrNotFound)
	}

	common.CheckOwnerWitness(rec.Owner)

	rec.Active = false
	common.SetSerialized(ctx, contentKey(id), rec)

	runtime.Notify("ContentDeactivated", id)

	return true
}

// LogAccess appends an access entry for the accessor at the current epoch.
// Fails for private content; restricted and public content both permit
// logging, actual data release gating is out of this contract's scope. The
// log is a ring of AccessLogCapacity entries, the oldest entry is evicted
// once the ring is full.
func LogAccess(id int, accessor interop.Hash160) bool {
	ctx := storage.GetContext()

	rec := getContent(ctx, id)
	if len(rec.ContentHash) == 0 {
		panic(cst.ErrNotFound)
	}
	if rec.Visibility == cst.VisibilityPrivate {
		panic(cst.ErrPrivateContent)
	}

	common.CheckWitness(accessor)

	epoch := ledger.CurrentIndex()
	entries := getAccessLog(ctx, id)
	if len(entries) == cst.AccessLogCapacity {
		trimmed := []AccessEntry{}
		for i := 1; i < len(entries); i++ {
			trimmed = append(trimmed, entries[i])
		}
		entries = trimmed
	}
	entries = append(entries, AccessEntry{Accessor: accessor, Epoch: epoch})
	common.SetSerialized(ctx, accessKey(id), entries)

	runtime.Notify("AccessLogged", id, accessor, epoch)

	return true
}

// GetContent returns the content record with the given ID. An empty record
// (zero-length ContentHash) is returned for an unknown ID.
func GetContent(id int) ContentRecord {
	ctx := storage.GetReadOnlyContext()
	return getContent(ctx, id)
}

// Owner returns the current owner of the content or an empty address for an
// unknown ID. This is the read contract consumed by the token contract when
// it authorizes minting.
func Owner(id int) interop.Hash160 {
	ctx := storage.GetReadOnlyContext()

	rec := getContent(ctx, id)
	if len(rec.ContentHash) == 0 {
		return interop.Hash160(nil)
	}

	return rec.Owner
}

// GetHash returns the stored content fingerprint or an empty slice for an
// unknown ID. Consumed by external integrity verifiers.
func GetHash(id int) []byte {
	ctx := storage.GetReadOnlyContext()
	return getContent(ctx, id).ContentHash
}

// HashExists checks whether the content fingerprint is already registered.
func HashExists(contentHash []byte) bool {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, hashKey(contentHash)) != nil
}

// ContentCount returns the overall number of registered content records.
func ContentCount() int {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, contentCounterKey).(int)
}

// GetUpdateLog returns the last update revision of the content. A zero entry
// (empty Updater) is returned if the content has never been updated.
func GetUpdateLog(id int) UpdateLog {
	ctx := storage.GetReadOnlyContext()

	data := storage.Get(ctx, updateKey(id))
	if data == nil {
		return UpdateLog{}
	}

	return std.Deserialize(data.([]byte)).(UpdateLog)
}

// ListAccesses returns the access log of the content, oldest entry first.
func ListAccesses(id int) []AccessEntry {
	ctx := storage.GetReadOnlyContext()
	return getAccessLog(ctx, id)
}

// SetAuthorityDelegate configures the authority delegate of the registry.
// Can be invoked only by committee and only once; the burn address is
// rejected.
func SetAuthorityDelegate(addr interop.Hash160) {
	ctx := storage.GetContext()
	common.SetAuthority(ctx, addr)
	runtime.Log("registry: authority delegate configured")
}

// SetMaxEntries sets the registry capacity. Requires the authority delegate
// to be configured and to witness the transaction.
func SetMaxEntries(n int) {
	ctx := storage.GetContext()
	common.CheckAuthorityWitness(ctx)

	if n <= 0 {
		panic("max entries must be positive")
	}

	storage.Put(ctx, maxEntriesKey, n)
}

// SetRegistrationFee sets the fee charged on content registration. Requires
// the authority delegate to be configured and to witness the transaction.
func SetRegistrationFee(amount int) {
	ctx := storage.GetContext()
	common.CheckAuthorityWitness(ctx)

	if amount < 0 {
		panic("fee must not be negative")
	}

	storage.Put(ctx, registrationFeeKey, amount)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func getContent(ctx storage.Context, id int) ContentRecord {
	data := storage.Get(ctx, contentKey(id))
	if data == nil {
		return ContentRecord{
			ContentHash: []byte{},
			Tags:        []string{},
		}
	}

	return std.Deserialize(data.([]byte)).(ContentRecord)
}

func getAccessLog(ctx storage.Context, id int) []AccessEntry {
	data := storage.Get(ctx, accessKey(id))
	if data == nil {
		return []AccessEntry{}
	}

	return std.Deserialize(data.([]byte)).([]AccessEntry)
}

func contentKey(id int) []byte {
	return append([]byte{contentKeyPrefix}, convert.ToBytes(id)...)
}

func hashKey(contentHash []byte) []byte {
	return append([]byte{hashKeyPrefix}, contentHash...)
}

func updateKey(id int) []byte {
	return append([]byte{updateKeyPrefix}, convert.ToBytes(id)...)
}

func accessKey(id int) []byte {
	return append([]byte{accessKeyPrefix}, convert.ToBytes(id)...)
}
