// Command recordkit validates record batches from files or over HTTP.
//
// Usage:
//
//	recordkit check [-input records.json|records.yaml] [-format text|json] [-tables tables.yaml]
//	recordkit serve
//
// Configuration is read from the environment (and an optional .env file);
// see Config for the variables.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return exitUsage
	}

	switch args[0] {
	case "check":
		return checkCmd(ctx, args[1:], stdout, stderr)
	case "serve":
		return serveCmd(ctx, args[1:], stderr)
	case "-h", "-help", "--help", "help":
		usage(stdout)
		return exitOK
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
		usage(stderr)
		return exitUsage
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, `recordkit validates batches of records.

Usage:
  recordkit check [-input file] [-format text|json] [-tables file]
  recordkit serve

Without -input, check validates the built-in demo batch.`)
}
