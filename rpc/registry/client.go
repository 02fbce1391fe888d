// Package registry contains RPC wrappers for the Provenance Registry contract.
package registry

import (
	"errors"
	"fmt"
	"math/big"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// ContentRecord is a contract-specific registry.ContentRecord type used by its methods.
type ContentRecord struct {
	ID           *big.Int
	Owner        util.Uint160
	ContentHash  []byte
	ExternalLink string
	Metadata     string
	SequenceType *big.Int
	Visibility   *big.Int
	Expiry       *big.Int
	Category     string
	Tags         []string
	Description  string
	RegisteredAt *big.Int
	Active       bool
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, operation string, maxItems int, params ...any) (*result.Invoke, error)
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
	TerminateSession(sessionID uuid.UUID) error
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash    util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// ContentCount invokes `contentCount` method of contract.
func (c *ContractReader) ContentCount() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "contentCount"))
}

// Owner invokes `owner` method of contract.
func (c *ContractReader) Owner(contentID *big.Int) (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "owner", contentID))
}

// HashExists invokes `hashExists` method of contract.
func (c *ContractReader) HashExists(contentHash []byte) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "hashExists", contentHash))
}

// GetContent invokes `getContent` method of contract.
func (c *ContractReader) GetContent(contentID *big.Int) (*ContentRecord, error) {
	return itemToContentRecord(unwrap.Item(c.invoker.Call(c.hash, "getContent", contentID)))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// itemToContentRecord converts stack item into *ContentRecord.
func itemToContentRecord(item stackitem.Item, err error) (*ContentRecord, error) {
	if err != nil {
		return nil, err
	}
	var res = new(ContentRecord)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of ContentRecord from the given
// [stackitem.Item] or returns an error if it's not possible to do to due to
// type mismatch.
func (res *ContentRecord) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 13 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	res.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	res.Owner, err = func(item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	res.ContentHash, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field ContentHash: %w", err)
	}

	index++
	res.ExternalLink, err = tryString(arr[index])
	if err != nil {
		return fmt.Errorf("field ExternalLink: %w", err)
	}

	index++
	res.Metadata, err = tryString(arr[index])
	if err != nil {
		return fmt.Errorf("field Metadata: %w", err)
	}

	index++
	res.SequenceType, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field SequenceType: %w", err)
	}

	index++
	res.Visibility, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Visibility: %w", err)
	}

	index++
	res.Expiry, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Expiry: %w", err)
	}

	index++
	res.Category, err = tryString(arr[index])
	if err != nil {
		return fmt.Errorf("field Category: %w", err)
	}

	index++
	res.Tags, err = func(item stackitem.Item) ([]string, error) {
		arr, ok := item.Value().([]stackitem.Item)
		if !ok {
			return nil, errors.New("not an array")
		}
		res := make([]string, len(arr))
		for i := range arr {
			res[i], err = tryString(arr[i])
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		return res, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field Tags: %w", err)
	}

	index++
	res.Description, err = tryString(arr[index])
	if err != nil {
		return fmt.Errorf("field Description: %w", err)
	}

	index++
	res.RegisteredAt, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field RegisteredAt: %w", err)
	}

	index++
	res.Active, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Active: %w", err)
	}

	return nil
}

func tryString(item stackitem.Item) (string, error) {
	b, err := item.TryBytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", errors.New("not a UTF-8 string")
	}
	return string(b), nil
}
