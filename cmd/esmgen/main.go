// Package main provides the esmgen command.
package main

import (
	"os"

	"github.com/leapstack-labs/esmgen/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
