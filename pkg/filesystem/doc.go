// Package filesystem provides implementations of the types.FS interface.
// The OS implementation backs production use; the afero implementation
// lets tests run against an in-memory filesystem.
package filesystem
