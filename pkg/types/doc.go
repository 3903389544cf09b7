// Package types defines the navigation entities persisted by navdb, the
// standard table names, and the sentinel errors shared by the store, the
// seeders and the CLI.
package types
