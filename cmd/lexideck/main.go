// Command lexideck extracts vocabulary flashcards from a text using a
// text-generation API and assembles them into deck packages.
package main

import (
	"fmt"
	"os"

	"github.com/phrazzld/lexideck/internal/cli"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	if err := cli.NewRootCmd(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
