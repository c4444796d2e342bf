// Command oxygenc drives the Oxygen lexer and parser from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/oxygen-lang/oxygenc/cmd/oxygenc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
