// Package main provides the confmgr CLI application.
// confmgr merges layered YAML configuration documents and validates
// them for a deployment domain.
package main

import (
	"os"
)

var (
	// Version is set by build flags
	Version = "dev"
)

func main() {
	if err := getRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
