//go:build windows

package main

import (
	"os"
	"os/exec"
)

// runCommand spawns the command as a child; it inherits the process
// binding applied before the call.
func runCommand(args []string) error {
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
