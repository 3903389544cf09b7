// Package navdb holds build metadata shared by the navdb binary.
package navdb

// Version is the navdb release version.
const Version = "0.1.0"

// ModulePath is the Go module path of navdb.
const ModulePath = "github.com/mesh-intelligence/navdb"
