package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/gommon/log"

	"github.com/SemiAutomat1c/GCashReceiptVerifier/internal/api"
	"github.com/SemiAutomat1c/GCashReceiptVerifier/internal/extractor"
	"github.com/SemiAutomat1c/GCashReceiptVerifier/internal/parser"
	"github.com/SemiAutomat1c/GCashReceiptVerifier/internal/sheet"
	"github.com/SemiAutomat1c/GCashReceiptVerifier/internal/verify"
	"github.com/SemiAutomat1c/GCashReceiptVerifier/internal/writer"
)

const version = "1.0.0"

func main() {
	receiptsFlag := flag.String("receipts", "", "Receipt spreadsheet CSV to verify against the statement")
	outputFlag := flag.String("output", "", "Output CSV file path (defaults to input filename with .verified.csv extension)")
	summaryFlag := flag.Bool("summary", true, "Include summary count rows in the output CSV")
	serveFlag := flag.Bool("serve", false, "Run the HTTP API instead of the CLI pipeline")
	portFlag := flag.Int("port", 8080, "Port for the HTTP API (with -serve)")
	versionFlag := flag.Bool("version", false, "Print version and exit")
	helpFlag := flag.Bool("help", false, "Show usage help")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `GCash Receipt Verifier

Extracts transactions from GCash statement PDFs and verifies
submitted receipt spreadsheets against them.

Usage:
  gcash-receipt-verifier [flags] <statement.pdf> [statement2.pdf ...]

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Verify a receipt sheet against a statement
  gcash-receipt-verifier --receipts=receipts.csv statement.pdf

  # Custom output path
  gcash-receipt-verifier --receipts=receipts.csv --output=report.csv statement.pdf

  # Run the HTTP API
  gcash-receipt-verifier --serve --port=8080
`)
	}

	flag.Parse()

	if *versionFlag {
		fmt.Printf("gcash-receipt-verifier v%s\n", version)
		os.Exit(0)
	}

	if *serveFlag {
		app := api.NewApp()
		log.Infof("[Server] Listening on port %d", *portFlag)
		if err := app.Listen(fmt.Sprintf(":%d", *portFlag)); err != nil {
			log.Fatalf("[Server] %v", err)
		}
		return
	}

	if *helpFlag || flag.NArg() == 0 {
		flag.Usage()
		os.Exit(0)
	}

	if *receiptsFlag == "" {
		fatalf("A receipt spreadsheet is required. Pass it with --receipts.\n")
	}

	for _, inputPath := range flag.Args() {
		if err := processFile(inputPath, *receiptsFlag, *outputFlag, *summaryFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", inputPath, err)
			os.Exit(1)
		}
	}
}

func processFile(inputPath, receiptsPath, outputPath string, includeSummary bool) error {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("input file not found: %s", inputPath)
	}

	ext := strings.ToLower(filepath.Ext(inputPath))
	if ext != ".pdf" {
		return fmt.Errorf("expected .pdf file, got %q", ext)
	}

	log.Infof("[Pipeline] Processing %s", inputPath)

	lines, err := extractor.ExtractLines(inputPath)
	if err != nil {
		return fmt.Errorf("PDF extraction failed: %w", err)
	}
	log.Infof("[Pipeline] Reconstructed %d line(s)", len(lines))

	transactions, strategy, err := parser.Extract(lines)
	if err != nil {
		return err
	}
	log.Infof("[Pipeline] Found %d transaction(s) via %s strategy", len(transactions), strategy)

	rf, err := os.Open(receiptsPath)
	if err != nil {
		return fmt.Errorf("failed to open receipt spreadsheet: %w", err)
	}
	rows, readErr := sheet.ReadCSV(rf)
	rf.Close()
	if readErr != nil {
		return fmt.Errorf("spreadsheet parsing failed: %w", readErr)
	}
	log.Infof("[Pipeline] Loaded %d receipt row(s)", len(rows))

	report := verify.Run(rows, transactions)
	log.Infof("[Pipeline] Report %s: %d verified, %d not found, %d mismatched, %d duplicate(s)",
		report.ID, report.Summary.Verified, report.Summary.NotFound,
		report.Summary.AmountMismatch+report.Summary.DateMismatch, report.Summary.Duplicate)

	outPath := outputPath
	if outPath == "" {
		base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
		outPath = base + ".verified.csv"
	}

	w := &writer.CSVWriter{IncludeSummary: includeSummary}
	if err := w.WriteToFile(outPath, report); err != nil {
		return fmt.Errorf("CSV write failed: %w", err)
	}

	log.Infof("[Pipeline] Output written to %s", outPath)
	return nil
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}
