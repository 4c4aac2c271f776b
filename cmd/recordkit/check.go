package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/dmitrymomot/recordkit/pkg/logger"
	"github.com/dmitrymomot/recordkit/pkg/report"
	"github.com/dmitrymomot/recordkit/pkg/source"
)

// checkCmd validates one batch and prints the report. Rejected records do not
// change the exit code.
func checkCmd(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var input, format, tablesFile string
	fs.StringVar(&input, "input", "", "records file (.json, .yaml, .yml); the demo batch when empty")
	fs.StringVar(&format, "format", "text", "report format: text or json")
	fs.StringVar(&tablesFile, "tables", "", "reference tables file; overrides REFERENCE_TABLES_FILE")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	write := report.Text
	switch format {
	case "text":
	case "json":
		write = report.JSON
	default:
		fmt.Fprintf(stderr, "unsupported format %q: use text or json\n", format)
		return exitUsage
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return exitError
	}
	log := newLogger(cfg, stderr)

	if tablesFile == "" {
		tablesFile = cfg.TablesFile
	}
	tables, err := loadTables(tablesFile)
	if err != nil {
		log.ErrorContext(ctx, "failed to load reference tables", logger.Error(err))
		return exitError
	}

	records := source.Demo()
	if input != "" {
		records, err = source.ReadFile(input)
		if err != nil {
			log.ErrorContext(ctx, "failed to read records", logger.Error(err))
			return exitError
		}
	}

	res := newProcessor(cfg, tables, log).Process(ctx, records)
	if err := write(stdout, res); err != nil {
		log.ErrorContext(ctx, "failed to write report", logger.Error(err))
		return exitError
	}
	return exitOK
}

