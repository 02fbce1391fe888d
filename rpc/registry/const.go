package registry

import (
	"github.com/provenet/provenance-contract/contracts/registry/registryconst"
)

const (
	// NotFoundError is returned if content is missing.
	NotFoundError = registryconst.ErrNotFound

	// HashExistsError is returned on an attempt to register already
	// registered content hash.
	HashExistsError = registryconst.ErrHashExists
)
