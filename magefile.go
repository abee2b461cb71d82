//go:build mage

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/magefile/mage/sh"
)

// Default target - build the binary
var Default = Build

const binary = "bin/pick"

func ldflags() string {
	commit, _ := sh.Output("git", "rev-parse", "--short", "HEAD")
	if commit == "" {
		commit = "unknown"
	}
	version, _ := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if version == "" {
		version = "dev"
	}
	date := time.Now().UTC().Format(time.RFC3339)
	return fmt.Sprintf(
		"-X github.com/dkoosis/pick/internal/version.Version=%s "+
			"-X github.com/dkoosis/pick/internal/version.CommitHash=%s "+
			"-X github.com/dkoosis/pick/internal/version.BuildDate=%s",
		version, commit, date)
}

// Build builds the pick binary
func Build() error {
	return sh.RunV("go", "build", "-ldflags", ldflags(), "-o", binary, "./cmd/pick")
}

// Install installs pick into GOPATH/bin
func Install() error {
	return sh.RunV("go", "install", "-ldflags", ldflags(), "./cmd/pick")
}

// Test runs the test suite with race detection
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Lint runs format and vet checks
func Lint() error {
	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return fmt.Errorf("vet failed: %w", err)
	}
	out, err := sh.Output("gofmt", "-l", ".")
	if err != nil {
		return fmt.Errorf("gofmt failed: %w", err)
	}
	if out != "" {
		return fmt.Errorf("gofmt needed:\n%s", out)
	}
	return nil
}

// Clean removes build artifacts
func Clean() error {
	return os.RemoveAll("bin")
}
