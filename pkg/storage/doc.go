// Package storage implements Shinsei's sandboxed datastore layer: named
// byte/string blobs grouped into named datastores, persisted as plain
// files under <app data dir>/studio-datastores/<datastore>/<key>.
//
// Every operation validates names before touching the filesystem and
// creates the datastore directory on demand. Missing entries are a
// normal outcome for reads and deletes, never an error. The layer adds
// no locking and no write-then-rename atomicity: concurrent calls race
// at whatever granularity the host filesystem provides, and callers
// needing stronger consistency must serialize their own calls.
package storage
