// storysync exports the stories of one tracker project as a single
// normalised JSON document.
package main

import (
	"fmt"
	"os"

	"github.com/clearlake-labs/storysync-cli/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
