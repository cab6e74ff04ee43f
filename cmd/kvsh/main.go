// Package main is the entry point of the kvsh key/value shell.
package main

import (
	"fmt"
	"os"

	"Kvsh/internal/kvsh"
)

// main runs the shell and exits non-zero on a fatal I/O error.
func main() {
	if err := kvsh.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
