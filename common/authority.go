package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// authorityKey is the storage key of the authority delegate address. Every
// provenance contract keeps its own delegate in its own storage context.
const authorityKey = "authorityDelegate"

// SetAuthority configures the authority delegate of the calling contract.
// The delegate can be set exactly once and never reset. Requires committee
// witness, rejects the burn address.
func SetAuthority(ctx storage.Context, addr interop.Hash160) {
	CheckCommitteeWitness()

	if len(addr) != interop.Hash160Len {
		panic("incorrect length of delegate address")
	}
	if isBurnAddress(addr) {
		panic(ErrBurnAddress)
	}
	if storage.Get(ctx, authorityKey) != nil {
		panic(ErrAuthoritySet)
	}

	storage.Put(ctx, authorityKey, addr)
}

// Authority returns the configured authority delegate or an empty address if
// it has not been set.
func Authority(ctx storage.Context) interop.Hash160 {
	data := storage.Get(ctx, authorityKey)
	if data == nil {
		return interop.Hash160(nil)
	}

	return data.(interop.Hash160)
}

// RequireAuthority returns the configured authority delegate and panics with
// ErrAuthorityNotSet if it has not been set yet.
func RequireAuthority(ctx storage.Context) interop.Hash160 {
	addr := Authority(ctx)
	if len(addr) == 0 {
		panic(ErrAuthorityNotSet)
	}

	return addr
}

// CheckAuthorityWitness checks that the transaction is witnessed by the
// configured authority delegate. Used by operational parameter setters.
func CheckAuthorityWitness(ctx storage.Context) {
	CheckWitness(RequireAuthority(ctx))
}

func isBurnAddress(addr interop.Hash160) bool {
	for i := 0; i < len(addr); i++ {
		if addr[i] != 0 {
			return false
		}
	}

	return true
}
