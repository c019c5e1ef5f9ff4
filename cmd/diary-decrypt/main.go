// Command diary-decrypt decrypts a diary container file offline, without a
// running server or database.
//
//	diary-decrypt [flags] <file.dat>
//
// Text entries are printed to stdout. Media containers are written next to
// the input as <file>.<ext>, where ext is the extension stored in the header.
package main

import (
	"os"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := newRootCommand(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
