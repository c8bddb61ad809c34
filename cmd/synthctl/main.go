// Command synthctl runs maintenance tasks against the Synth database: schema
// migrations, provider syncs and bulk recomputations.
package main

import (
	"fmt"
	"os"

	_ "github.com/lib/pq"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
