package storage

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"syscall"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/otomatty/shinsei/pkg/errors"
	"github.com/otomatty/shinsei/pkg/logging"
	"github.com/otomatty/shinsei/pkg/paths"
	"github.com/otomatty/shinsei/pkg/types"
)

type filesystemStore struct {
	fs     types.FS
	paths  paths.Paths
	logger zerolog.Logger
}

// New creates a new Store instance that persists entries on the
// filesystem reachable through fs, rooted at the data directory
// resolved by p.
func New(fs types.FS, p paths.Paths) types.Store {
	return &filesystemStore{
		fs:     fs,
		paths:  p,
		logger: logging.GetLogger("storage"),
	}
}

// ensureDatastoreDir validates the datastore name and creates its
// directory chain if missing. Creation is idempotent.
func (s *filesystemStore) ensureDatastoreDir(datastore string) (string, error) {
	dir, err := s.paths.DatastoreDir(datastore)
	if err != nil {
		return "", err
	}
	if err := s.fs.MkdirAll(dir, 0755); err != nil {
		return "", wrapIO(err, "failed to create datastore directory")
	}
	return dir, nil
}

// entryPath validates both names, ensures the datastore directory
// exists, and returns the entry's file path. The key is checked before
// any directory is created so an invalid key never leaves a new
// datastore directory behind.
func (s *filesystemStore) entryPath(datastore, key string) (string, error) {
	if err := paths.ValidateName(key, paths.RoleKey); err != nil {
		return "", err
	}
	if _, err := s.ensureDatastoreDir(datastore); err != nil {
		return "", err
	}
	return s.paths.EntryPath(datastore, key)
}

func (s *filesystemStore) Get(datastore, key string) ([]byte, bool, error) {
	path, err := s.entryPath(datastore, key)
	if err != nil {
		return nil, false, err
	}

	data, err := s.fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, wrapIO(err, "failed to read entry")
	}
	return data, true, nil
}

func (s *filesystemStore) GetString(datastore, key string) (string, bool, error) {
	data, ok, err := s.Get(datastore, key)
	if err != nil || !ok {
		return "", ok, err
	}
	if !utf8.Valid(data) {
		return "", false, errors.Newf(errors.ErrDecode,
			"entry %s/%s is not valid UTF-8", datastore, key).
			WithDetail("datastore", datastore).
			WithDetail("key", key)
	}
	return string(data), true, nil
}

func (s *filesystemStore) Put(datastore, key string, value []byte) error {
	path, err := s.entryPath(datastore, key)
	if err != nil {
		return err
	}
	if err := s.fs.WriteFile(path, value, 0644); err != nil {
		return wrapIO(err, "failed to write entry")
	}
	s.logger.Debug().
		Str("datastore", datastore).
		Str("key", key).
		Int("bytes", len(value)).
		Msg("Entry written")
	return nil
}

func (s *filesystemStore) PutString(datastore, key, value string) error {
	return s.Put(datastore, key, []byte(value))
}

func (s *filesystemStore) Delete(datastore, key string) error {
	path, err := s.entryPath(datastore, key)
	if err != nil {
		return err
	}

	if err := s.fs.Remove(path); err != nil {
		// Deleting a missing entry is already satisfied
		if os.IsNotExist(err) {
			return nil
		}
		return wrapIO(err, "failed to delete entry")
	}
	s.logger.Debug().
		Str("datastore", datastore).
		Str("key", key).
		Msg("Entry deleted")
	return nil
}

func (s *filesystemStore) Exists(datastore, key string) (bool, error) {
	path, err := s.entryPath(datastore, key)
	if err != nil {
		return false, err
	}

	if _, err := s.fs.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, wrapIO(err, "failed to stat entry")
	}
	return true, nil
}

func (s *filesystemStore) List(datastore string) ([]string, error) {
	dir, err := s.ensureDatastoreDir(datastore)
	if err != nil {
		return nil, err
	}

	entries, err := s.fs.ReadDir(dir)
	if err != nil {
		return nil, wrapIO(err, "failed to read datastore directory")
	}

	keys := make([]string, 0, len(entries))
	for _, entry := range entries {
		// Names that the validator rejects cannot have been written
		// by this layer; skip them rather than failing the call
		if err := paths.ValidateName(entry.Name(), paths.RoleKey); err != nil {
			continue
		}
		keys = append(keys, entry.Name())
	}
	return keys, nil
}

func (s *filesystemStore) All(datastore string) ([][]byte, error) {
	dir, err := s.ensureDatastoreDir(datastore)
	if err != nil {
		return nil, err
	}

	entries, err := s.fs.ReadDir(dir)
	if err != nil {
		return nil, wrapIO(err, "failed to read datastore directory")
	}

	values := make([][]byte, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		data, err := s.fs.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			// A single unreadable entry must not fail the traversal
			continue
		}
		values = append(values, data)
	}
	return values, nil
}

// wrapIO converts a filesystem error into a structured IO error,
// recording the OS error number when one is available.
func wrapIO(err error, message string) *errors.ShinseiError {
	wrapped := errors.Wrap(err, errors.ErrIO, message)
	var errno syscall.Errno
	if stderrors.As(err, &errno) {
		wrapped = wrapped.WithDetail("os_code", int(errno))
	}
	return wrapped
}
