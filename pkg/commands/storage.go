package commands

import (
	"encoding/json"

	"github.com/otomatty/shinsei/pkg/types"
)

// storageArgs is the argument object shared by the storage commands.
// Value is only consulted by the put variants; JSON encodes it as
// base64 for the binary commands.
type storageArgs struct {
	Datastore string `json:"datastore"`
	Key       string `json:"key"`
	Value     []byte `json:"value"`
}

type storageStringArgs struct {
	Datastore string `json:"datastore"`
	Key       string `json:"key"`
	Value     string `json:"value"`
}

// RegisterStorage registers the storage_* commands against the given
// store. Result conventions follow the storage contract: absent reads
// yield a null result, deletes of missing entries succeed.
func RegisterStorage(r *Registry, store types.Store) {
	r.Register("storage_list", func(raw json.RawMessage) (interface{}, error) {
		var args storageArgs
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		return store.List(args.Datastore)
	})

	r.Register("storage_all", func(raw json.RawMessage) (interface{}, error) {
		var args storageArgs
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		return store.All(args.Datastore)
	})

	r.Register("storage_get", func(raw json.RawMessage) (interface{}, error) {
		var args storageArgs
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		value, ok, err := store.Get(args.Datastore, args.Key)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, nil
		}
		return value, nil
	})

	r.Register("storage_get_string", func(raw json.RawMessage) (interface{}, error) {
		var args storageArgs
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		value, ok, err := store.GetString(args.Datastore, args.Key)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, nil
		}
		return value, nil
	})

	r.Register("storage_put", func(raw json.RawMessage) (interface{}, error) {
		var args storageArgs
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		return nil, store.Put(args.Datastore, args.Key, args.Value)
	})

	r.Register("storage_put_string", func(raw json.RawMessage) (interface{}, error) {
		var args storageStringArgs
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		return nil, store.PutString(args.Datastore, args.Key, args.Value)
	})

	r.Register("storage_delete", func(raw json.RawMessage) (interface{}, error) {
		var args storageArgs
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		return nil, store.Delete(args.Datastore, args.Key)
	})

	r.Register("storage_exists", func(raw json.RawMessage) (interface{}, error) {
		var args storageArgs
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		return store.Exists(args.Datastore, args.Key)
	})
}
