package main

import (
	"fmt"
	"strings"
)

type CheckDepsCommand struct{}

func (c *CheckDepsCommand) Name() string {
	return "check-deps"
}

func (c *CheckDepsCommand) Description() string {
	return "Check for required dependencies"
}

func (c *CheckDepsCommand) Run(args []string) error {
	PrintHeader("Checking dependencies...")

	missing := 0

	// Output: go version go1.24.0 linux/amd64
	if version, err := getCommandOutput("go", "version"); err == nil {
		PrintSuccess("Go installed: %s", fieldOr(version, 2))
	} else {
		PrintError("Go not found! Install from: https://go.dev/dl/")
		missing++
	}

	// Output: Docker version 27.1.1, build 6312585
	if version, err := getCommandOutput("docker", "--version"); err == nil {
		PrintSuccess("Docker installed: %s", strings.TrimRight(fieldOr(version, 2), ","))
	} else {
		PrintWarning("Docker not found (needed for postgres storage and integration tests)")
	}

	if version, err := getCommandOutput("docker", "compose", "version"); err == nil {
		PrintSuccess("Docker Compose installed: %s", fieldOr(version, 3))
	} else {
		PrintWarning("Docker Compose not found (optional)")
	}

	if missing > 0 {
		return fmt.Errorf("%d required dependencies missing", missing)
	}
	PrintSuccess("Environment check complete")
	return nil
}

// fieldOr returns the i-th whitespace separated field, or s when it has fewer fields.
func fieldOr(s string, i int) string {
	parts := strings.Fields(s)
	if len(parts) > i {
		return parts[i]
	}
	return s
}
