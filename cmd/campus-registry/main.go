// Package main is the entry point for the campus registry server.
package main

import (
	"fmt"
	"os"

	"github.com/bissquit/campus-registry/internal/version"
)

func main() {
	cmd := NewRootCmd()
	cmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.GitCommit, version.BuildDate)

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
