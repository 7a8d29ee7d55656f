// Package commands exposes the storage layer and host queries to the
// UI boundary as named operations with JSON-encoded structured
// arguments and results. The transport envelope itself (webview IPC,
// test harness, CLI) is owned by the caller; this package only maps
// names to handlers and errors to structured payloads.
package commands
