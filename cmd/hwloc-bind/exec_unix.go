//go:build !windows

package main

import (
	"os"
	"os/exec"

	"golang.org/x/sys/unix"
)

// runCommand replaces the current process image so the binding carries
// over without a lingering parent.
func runCommand(args []string) error {
	path, err := exec.LookPath(args[0])
	if err != nil {
		return err
	}
	return unix.Exec(path, args, os.Environ())
}
