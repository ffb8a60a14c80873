//go:build mage

package main

import (
	"fmt"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target - build the binary
var Default = Build

// Build builds the numdiff binary into bin/ with version metadata.
func Build() error {
	commit, err := sh.Output("git", "rev-parse", "--short", "HEAD")
	if err != nil {
		commit = "unknown"
	}
	ldflags := fmt.Sprintf(
		"-X github.com/dkoosis/numdiff/internal/version.CommitHash=%s -X github.com/dkoosis/numdiff/internal/version.BuildDate=%s",
		commit, time.Now().UTC().Format("2006-01-02"))
	return sh.RunV("go", "build", "-ldflags", ldflags, "-o", "bin/numdiff", "./cmd/numdiff")
}

// Test runs all tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	return sh.Rm("bin")
}

// All runs vet, tests, and the build in order.
func All() {
	mg.SerialDeps(Vet, Test, Build)
}
