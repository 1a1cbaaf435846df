package main

import (
	"os"

	"github.com/saverctl/saverctl/pkg/saver"
	"github.com/saverctl/saverctl/pkg/types"
)

var version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !jsonOut {
			printError("%s: %v", saver.Classify(err), err)
		}
		os.Exit(exitCode(err))
	}
}

// exitCode distinguishes caller-correctable failures (pick a backend, pick a
// supported operation) from execution and parse failures.
func exitCode(err error) int {
	switch saver.Classify(err) {
	case types.StatusNotDetected, types.StatusUnknownBackend, types.StatusUnsupported:
		return 2
	default:
		return 1
	}
}
