package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
)

// HasUpdateAccess returns true if the contract can be updated, that is when
// the carrier transaction is witnessed by the committee.
func HasUpdateAccess() bool {
	return runtime.CheckWitness(CommitteeAddress())
}
