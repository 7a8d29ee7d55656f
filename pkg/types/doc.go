// Package types defines the shared interfaces of the storage layer:
// the filesystem abstraction used by all components and the Store
// contract consumed by the host boundary.
package types
