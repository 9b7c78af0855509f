// imectl drives and inspects the input method core.
package main

import (
	"fmt"
	"os"

	"imecore/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "imectl: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
