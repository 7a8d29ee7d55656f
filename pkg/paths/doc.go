// Package paths provides centralized path handling for the Shinsei
// storage layer. It resolves the application data root (explicit value,
// environment override, or XDG data home), computes datastore and entry
// paths under the studio-datastores tree, and validates the names used
// to build them. All functions here are pure with respect to the
// filesystem; directory creation belongs to the storage layer.
package paths
