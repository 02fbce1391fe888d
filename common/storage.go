package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/interop/util"
)

// GetList returns the deserialized list kept under key or an empty list if
// nothing is stored there.
func GetList(ctx storage.Context, key any) [][]byte {
	data := storage.Get(ctx, key)
	if data != nil {
		return std.Deserialize(data.([]byte)).([][]byte)
	}

	return [][]byte{}
}

// SetSerialized serializes data and puts it into contract storage.
func SetSerialized(ctx storage.Context, key any, value any) {
	data := std.Serialize(value)
	storage.Put(ctx, key, data)
}

// GetInt returns the integer kept under key or def if nothing is stored there.
func GetInt(ctx storage.Context, key any, def int) int {
	data := storage.Get(ctx, key)
	if data == nil {
		return def
	}

	return data.(int)
}

// AppendToList adds value to the list kept under key unless an equal element
// is already present.
func AppendToList(ctx storage.Context, key any, value []byte) {
	list := GetList(ctx, key)
	for i := 0; i < len(list); i++ {
		if BytesEqual(list[i], value) {
			return
		}
	}

	list = append(list, value)
	SetSerialized(ctx, key, list)
}

// RemoveFromList removes exact matches of value from the list kept under key
// and returns the number of elements left. An emptied list is deleted from
// storage.
func RemoveFromList(ctx storage.Context, key any, value []byte) int {
	var (
		list    = GetList(ctx, key)
		newList = [][]byte{}
	)

	for i := 0; i < len(list); i++ {
		if !BytesEqual(list[i], value) {
			newList = append(newList, list[i])
		}
	}

	ln := len(newList)
	if ln == 0 {
		storage.Delete(ctx, key)
	} else {
		SetSerialized(ctx, key, newList)
	}

	return ln
}

// BytesEqual compares two slices of bytes by wrapping them into strings,
// which is necessary with new util.Equals interop behaviour, see neo-go#1176.
func BytesEqual(a []byte, b []byte) bool {
	return util.Equals(string(a), string(b))
}
