// Command coreint parses and scans unsigned decimal integers.
//
// Usage:
//
//	coreint parse 8080 000123 18446744073709551616
//	coreint scan access.log
//	coreint scan --key latency_ms= --key bytes= app.log
//	coreint cpu
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
