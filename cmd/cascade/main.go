// Command cascade inspects style sheets with the cascade engine.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/cascade/cmd/cascade/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
