package tests

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoyaltySettleDirect(t *testing.T) {
	s := newSystem(t)
	acc := s.executor.NewAccount(t)

	contentID, _ := s.register(t, acc)
	tokenID := s.mint(t, acc, contentID, 10)

	// Settle is wired for the marketplace contract, a direct call faults.
	s.royalty.WithSigners(acc).InvokeFail(t, "must be invoked by the marketplace contract",
		"settle", tokenID, 1_000, acc.ScriptHash(), acc.ScriptHash())
}

func TestRoyaltyPayAccess(t *testing.T) {
	s := newSystem(t)
	owner := s.executor.NewAccount(t)
	payer := s.executor.NewAccount(t)

	contentID, _ := s.register(t, owner)
	tokenID := s.mint(t, owner, contentID, 10)
	s.fund(t, payer, 1_000)

	// The current owner still is the original one, the whole amount goes
	// to them in a single payment and no royalty is recorded.
	s.royalty.WithSigners(payer).Invoke(t, true, "payAccess",
		payer.ScriptHash(), tokenID, 200)
	require.EqualValues(t, 200, balanceOf(t, s.credits, owner.ScriptHash()))
	require.EqualValues(t, 0, intResult(t, s.royalty, "royaltiesPaid", tokenID))
	require.EqualValues(t, 0, intResult(t, s.royalty, "lastPayout", tokenID))

	holder := s.executor.NewAccount(t)
	s.token.WithSigners(owner).Invoke(t, true, "transfer",
		holder.ScriptHash(), tokenID, nil)

	s.royalty.WithSigners(payer).Invoke(t, true, "payAccess",
		payer.ScriptHash(), tokenID, 200)
	require.EqualValues(t, 220, balanceOf(t, s.credits, owner.ScriptHash()))
	require.EqualValues(t, 180, balanceOf(t, s.credits, holder.ScriptHash()))
	require.EqualValues(t, 20, intResult(t, s.royalty, "royaltiesPaid", tokenID))
	require.NotZero(t, intResult(t, s.royalty, "lastPayout", tokenID))
}

func TestRoyaltyPayAccessValidation(t *testing.T) {
	s := newSystem(t)
	owner := s.executor.NewAccount(t)
	payer := s.executor.NewAccount(t)

	contentID, _ := s.register(t, owner)
	tokenID := s.mint(t, owner, contentID, 10)

	s.royalty.WithSigners(payer).InvokeFail(t, "amount must be positive",
		"payAccess", payer.ScriptHash(), tokenID, 0)
	s.royalty.WithSigners(payer).InvokeFail(t, "token does not exist",
		"payAccess", payer.ScriptHash(), 42, 100)

	// Unpayable access leaves no royalty record behind.
	s.royalty.WithSigners(payer).InvokeFail(t, "can't transfer credits",
		"payAccess", payer.ScriptHash(), tokenID, 100)
	require.EqualValues(t, 0, intResult(t, s.royalty, "royaltiesPaid", tokenID))
}

func TestRoyaltyPayAccessTokenContentMismatch(t *testing.T) {
	s := newSystem(t)
	owner := s.executor.NewAccount(t)
	payer := s.executor.NewAccount(t)

	// Token and content IDs are independent sequences: content 0 stays
	// unminted, token 0 is bound to content 1. Payment addresses the token,
	// not the content.
	s.register(t, owner)
	contentID, _ := s.register(t, owner)
	tokenID := s.mint(t, owner, contentID, 10)
	require.EqualValues(t, 0, tokenID)
	require.EqualValues(t, 1, contentID)

	s.fund(t, payer, 500)
	s.royalty.WithSigners(payer).Invoke(t, true, "payAccess",
		payer.ScriptHash(), tokenID, 200)
	require.EqualValues(t, 200, balanceOf(t, s.credits, owner.ScriptHash()))
}

func TestRoyaltyAccumulation(t *testing.T) {
	s := newSystem(t)
	owner := s.executor.NewAccount(t)
	holder := s.executor.NewAccount(t)
	payer := s.executor.NewAccount(t)

	contentID, _ := s.register(t, owner)
	tokenID := s.mint(t, owner, contentID, 20)
	s.token.WithSigners(owner).Invoke(t, true, "transfer",
		holder.ScriptHash(), tokenID, nil)

	s.fund(t, payer, 10_000)
	for i := 0; i < 3; i++ {
		s.royalty.WithSigners(payer).Invoke(t, true, "payAccess",
			payer.ScriptHash(), tokenID, 100)
	}

	// 20% of every 100 paid, rounded down, accumulated over three payments.
	require.EqualValues(t, 60, intResult(t, s.royalty, "royaltiesPaid", tokenID))
	require.EqualValues(t, 60, balanceOf(t, s.credits, owner.ScriptHash()))
	require.EqualValues(t, 240, balanceOf(t, s.credits, holder.ScriptHash()))
}
