package core_test

import (
	"fmt"
	"os"

	"github.com/apigraveyard/apigraveyard/pkg/core"
)

// ExampleScan demonstrates how to scan a directory for API keys.
func ExampleScan() {
	res := core.Scan(core.Options{
		Root:      ".",
		Recursive: true,
	})
	if res.Err != nil {
		fmt.Fprintf(os.Stderr, "Scan failed: %v\n", res.Err)
		return
	}

	if len(res.Keys) == 0 {
		fmt.Println("No API keys found.")
	} else {
		fmt.Printf("Found %d keys.\n", len(res.Keys))
		_ = core.MarshalKeys(os.Stdout, res.Keys)
	}
}
