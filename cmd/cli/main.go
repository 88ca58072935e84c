// Command cli analyses a tabular file and prints the report as JSON.
//
// Usage: cli [-summary] <file.csv|file.tsv|file.xlsx|file.xlsm>
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"datalens/adapters/ingest"
	"datalens/internal/analyze"
	"datalens/internal/config"
	"datalens/internal/summary"
)

func main() {
	summaryFlag := flag.Bool("summary", false, "print a markdown summary instead of JSON")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: cli [-summary] <file>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	ds, err := ingest.NewFileReader().Read(ctx, path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read %s: %v\n", path, err)
		os.Exit(1)
	}

	result, err := analyze.NewOrchestrator(cfg.Analysis.Workers).Analyze(ctx, ds)
	if err != nil {
		fmt.Fprintf(os.Stderr, "analysis failed: %v\n", err)
		os.Exit(1)
	}

	if *summaryFlag {
		fmt.Print(summary.Markdown(filepath.Base(path), result))
		return
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to encode result: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
