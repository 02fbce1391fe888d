package tests

import (
	"path"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

const (
	creditsPath  = "../contracts/credits"
	registryPath = "../contracts/registry"
	tokenPath    = "../contracts/token"
	marketPath   = "../contracts/market"
	royaltyPath  = "../contracts/royalty"
)

// contractSet holds compiled artifacts of the whole system. Contract hashes
// are known before deployment, which allows to wire mutually dependent
// contracts in any order.
type contractSet struct {
	credits  *neotest.Contract
	registry *neotest.Contract
	token    *neotest.Contract
	market   *neotest.Contract
	royalty  *neotest.Contract
}

func compileSet(t *testing.T, e *neotest.Executor) contractSet {
	compile := func(p string) *neotest.Contract {
		return neotest.CompileFile(t, e.CommitteeHash, p, path.Join(p, "config.yml"))
	}

	return contractSet{
		credits:  compile(creditsPath),
		registry: compile(registryPath),
		token:    compile(tokenPath),
		market:   compile(marketPath),
		royalty:  compile(royaltyPath),
	}
}

func deploySet(t *testing.T, e *neotest.Executor) contractSet {
	s := compileSet(t, e)

	e.DeployContract(t, s.credits, []any{s.registry.Hash, s.token.Hash, s.market.Hash, s.royalty.Hash})
	e.DeployContract(t, s.registry, []any{s.credits.Hash})
	e.DeployContract(t, s.token, []any{s.registry.Hash, s.credits.Hash, s.market.Hash})
	e.DeployContract(t, s.market, []any{s.token.Hash, s.credits.Hash, s.royalty.Hash})
	e.DeployContract(t, s.royalty, []any{s.token.Hash, s.credits.Hash, s.market.Hash})

	return s
}

// system aggregates committee invokers of all deployed contracts and the
// configured authority delegate account.
type system struct {
	executor *neotest.Executor

	credits  *neotest.ContractInvoker
	registry *neotest.ContractInvoker
	token    *neotest.ContractInvoker
	market   *neotest.ContractInvoker
	royalty  *neotest.ContractInvoker

	delegate neotest.Signer
}

// newSystem deploys the five contracts and configures the same authority
// delegate for registry, token and market.
func newSystem(t *testing.T) *system {
	e := newExecutor(t)
	s := deploySet(t, e)

	sys := &system{
		executor: e,
		credits:  e.CommitteeInvoker(s.credits.Hash),
		registry: e.CommitteeInvoker(s.registry.Hash),
		token:    e.CommitteeInvoker(s.token.Hash),
		market:   e.CommitteeInvoker(s.market.Hash),
		royalty:  e.CommitteeInvoker(s.royalty.Hash),
	}
	sys.delegate = e.NewAccount(t)

	sys.registry.Invoke(t, stackitem.Null{}, "setAuthorityDelegate", sys.delegate.ScriptHash())
	sys.token.Invoke(t, stackitem.Null{}, "setAuthorityDelegate", sys.delegate.ScriptHash())
	sys.market.Invoke(t, stackitem.Null{}, "setAuthorityDelegate", sys.delegate.ScriptHash())

	return sys
}

// fund issues the given amount of credits to the account. Committee only.
func (s *system) fund(t *testing.T, to neotest.Signer, amount int64) {
	s.credits.Invoke(t, stackitem.Null{}, "mint", to.ScriptHash(), amount, []byte{})
}

// register registers fresh random content on behalf of the owner and returns
// its ID together with the content hash.
func (s *system) register(t *testing.T, owner neotest.Signer) (int64, []byte) {
	hash := randomBytes(32)
	id := s.registerHash(t, owner, hash)
	return id, hash
}

func (s *system) registerHash(t *testing.T, owner neotest.Signer, hash []byte) int64 {
	id := intResult(t, s.registry, "contentCount")
	s.registry.WithSigners(owner).Invoke(t, id, "registerContent",
		owner.ScriptHash(), hash, "https://example.org/content", "metadata",
		0, 0, 1_000, "genomics", []any{"tag1"}, "description")
	return id
}

// mint mints an ownership token for the content on behalf of its owner.
func (s *system) mint(t *testing.T, owner neotest.Signer, contentID int64, rate int64) int64 {
	id := intResult(t, s.token, "totalSupply")
	s.token.WithSigners(owner).Invoke(t, id, "mint",
		owner.ScriptHash(), contentID, rate, "ipfs://token-meta")
	return id
}

// list creates a fixed-price listing of the token on behalf of its owner.
func (s *system) list(t *testing.T, owner neotest.Signer, tokenID int64, price int64) int64 {
	id := intResult(t, s.market, "listingCount")
	s.market.WithSigners(owner).Invoke(t, id, "createListing",
		owner.ScriptHash(), tokenID, price, 0, 0, 1_000, 0)
	return id
}
