// Package kvstore provides a small key-value store with pluggable backends.
// Values are opaque strings; callers decide the encoding.
package kvstore

import "fmt"

// Driver identifies a storage backend.
type Driver string

const (
	// DriverMemory keeps entries in process memory. Intended for tests.
	DriverMemory Driver = "memory"
	// DriverFS stores each entry as a file under a root directory.
	DriverFS Driver = "fs"
	// DriverSQLite stores entries in a single-table SQLite database.
	DriverSQLite Driver = "sqlite"
)

// Store is the contract all key-value backends implement.
type Store interface {
	// Get returns the value stored under key and whether the key exists.
	Get(key string) (string, bool, error)
	// Set stores value under key, overwriting any previous value.
	Set(key, value string) error
	// Delete removes key, returning true if it existed.
	Delete(key string) (bool, error)
	// Clear removes all entries.
	Clear() error
	// Driver reports the backend identifier.
	Driver() Driver
	// Close releases backend resources.
	Close() error
}

// Open selects a Store implementation for the given driver. An empty driver
// defaults to fs. For the fs backend path is the root directory, for sqlite
// it is the database file; each backend applies its own default when empty.
func Open(driver Driver, path string) (Store, error) {
	if driver == "" {
		driver = DriverFS
	}
	switch driver {
	case DriverMemory:
		return NewMemory(), nil
	case DriverFS:
		return NewFS(path)
	case DriverSQLite:
		return NewSQLite(path)
	default:
		return nil, fmt.Errorf("unknown kvstore driver %q", driver)
	}
}
