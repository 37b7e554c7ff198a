// Command repoxml writes a directory tree to repository.xml.
package main

import (
	"os"

	"github.com/custodia-labs/repoxml/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
