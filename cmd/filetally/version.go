package main

import (
	"fmt"
	"io"
	"runtime"
)

// Build-time variables set by go build -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// printVersion writes the version, commit hash and build date of filetally.
func printVersion(out io.Writer) error {
	_, err := fmt.Fprintf(out, "filetally %s\n  commit:  %s\n  built:   %s\n  go:      %s\n  os/arch: %s/%s\n",
		version, commit, date, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	return err
}
