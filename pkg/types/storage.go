package types

// Store manages Shinsei's sandboxed datastores on the filesystem.
// Datastores are lazily created directories under the application data
// root; entries are plain files whose contents are the stored value.
type Store interface {
	// List enumerates the entry keys of a datastore. Order follows the
	// filesystem's enumeration order and is not guaranteed stable.
	// Entries whose names are not valid keys are skipped.
	List(datastore string) ([]string, error)

	// All returns the raw contents of every regular file in the
	// datastore, in filesystem enumeration order. The order is
	// independent of List's order; no keys are returned. Unreadable
	// entries are skipped.
	All(datastore string) ([][]byte, error)

	// Get returns the bytes stored under key. ok is false when the
	// entry does not exist; absence is not an error.
	Get(datastore, key string) (value []byte, ok bool, err error)

	// GetString returns the entry decoded as UTF-8 text. Invalid UTF-8
	// is a DECODE error. ok is false when the entry does not exist.
	GetString(datastore, key string) (value string, ok bool, err error)

	// Put writes value under key, unconditionally replacing any
	// existing entry.
	Put(datastore, key string, value []byte) error

	// PutString writes the UTF-8 encoding of value under key.
	PutString(datastore, key, value string) error

	// Delete removes the entry. Deleting a missing entry is success.
	Delete(datastore, key string) error

	// Exists reports whether the entry's file is present.
	Exists(datastore, key string) (bool, error)
}
