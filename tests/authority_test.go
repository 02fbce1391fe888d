package tests

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

func TestAuthorityDelegate(t *testing.T) {
	e := newExecutor(t)
	set := deploySet(t, e)

	reg := e.CommitteeInvoker(set.registry.Hash)
	delegate := e.NewAccount(t)
	stranger := e.NewAccount(t)

	t.Run("non-committee", func(t *testing.T) {
		reg.WithSigners(stranger).InvokeFail(t, "committee witness check failed",
			"setAuthorityDelegate", delegate.ScriptHash())
	})

	t.Run("burn address", func(t *testing.T) {
		reg.InvokeFail(t, "burn address is not allowed",
			"setAuthorityDelegate", util.Uint160{})
	})

	reg.Invoke(t, stackitem.Null{}, "setAuthorityDelegate", delegate.ScriptHash())

	t.Run("second configuration", func(t *testing.T) {
		reg.InvokeFail(t, "authority delegate already configured",
			"setAuthorityDelegate", stranger.ScriptHash())
	})

	t.Run("delegate-gated setters", func(t *testing.T) {
		reg.WithSigners(stranger).InvokeFail(t, "witness check failed",
			"setRegistrationFee", 100)
		reg.WithSigners(delegate).Invoke(t, stackitem.Null{}, "setRegistrationFee", 100)
	})

	t.Run("unconfigured contract", func(t *testing.T) {
		market := e.CommitteeInvoker(set.market.Hash)
		market.WithSigners(delegate).InvokeFail(t, "authority delegate not configured",
			"setListingFee", 100)
	})
}
