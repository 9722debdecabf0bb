// Package main provides the CLI entrypoint for mapper-gen.
//
// mapper-gen writes the adapters that let mapperkit hand out mapper proxies:
//   - Loads Go packages (go/types) and finds exported interfaces
//   - Reports method shapes an adapter cannot serve
//   - Generates one <package>_mapper.gen.go per package, registering every
//     adapter with the binding catalog from init()
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
