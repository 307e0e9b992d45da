// Package store keeps a local history of received messages in SQLite.
//
// History is optional. When no DSN is configured [NewClientStorages] returns
// storages without a message repository and the client runs without one.
package store
