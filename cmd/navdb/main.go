// Command navdb creates and seeds the navigation homepage database.
package main

import "github.com/mesh-intelligence/navdb/internal/cli"

func main() {
	cli.Execute()
}
