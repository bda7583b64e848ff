// Package main provides the tstamp CLI, which converts between Unix
// timestamps and human-readable dates.
//
// Usage:
//
//	tstamp                              # Current time in Unix seconds
//	tstamp -m                           # Current time in Unix milliseconds
//	tstamp --from secs 1627497005 --rfc2822
//	tstamp -f millis 1627497005123 --rfc3339
//	tstamp --from-nanos=1627497005123456789 -m
//	tstamp completion bash              # Shell completion script
package main

import (
	"os"

	"github.com/hlop3z/tstamp/internal/timestamp"
)

// version is set via ldflags during build: -ldflags="-X main.version=v1.0.0"
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, timestamp.SystemClock{}))
}
