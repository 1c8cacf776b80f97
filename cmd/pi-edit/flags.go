// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --config, --log-file, --verbose, --version, --list-keys

package main

import (
	"flag"
	"io"
)

type cliArgs struct {
	config   string
	logFile  string
	verbose  bool
	version  bool
	listKeys bool
}

// parseFlags parses args (without the program name). Usage and parse
// errors are written to stderr.
func parseFlags(args []string, stderr io.Writer) (cliArgs, error) {
	var a cliArgs

	fs := flag.NewFlagSet("pi-edit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&a.config, "config", "", "Read settings from this file instead of ~/.pi-edit and .pi-edit")
	fs.StringVar(&a.logFile, "log-file", "", "Append log output to this file")
	fs.BoolVar(&a.verbose, "verbose", false, "Log at debug level")
	fs.BoolVar(&a.version, "version", false, "Show version and exit")
	fs.BoolVar(&a.listKeys, "list-keys", false, "Print the effective keybindings and exit")

	if err := fs.Parse(args); err != nil {
		return cliArgs{}, err
	}
	return a, nil
}
