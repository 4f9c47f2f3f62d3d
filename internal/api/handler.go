// Package api exposes the verification pipeline over HTTP.
package api

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/labstack/gommon/log"

	"github.com/SemiAutomat1c/GCashReceiptVerifier/internal/extractor"
	"github.com/SemiAutomat1c/GCashReceiptVerifier/internal/models"
	"github.com/SemiAutomat1c/GCashReceiptVerifier/internal/parser"
	"github.com/SemiAutomat1c/GCashReceiptVerifier/internal/sheet"
	"github.com/SemiAutomat1c/GCashReceiptVerifier/internal/verify"
	"github.com/SemiAutomat1c/GCashReceiptVerifier/internal/writer"
)

const version = "1.0.0"

// VerifyResponse is the JSON response from the /api/verify endpoint.
type VerifyResponse struct {
	Success      bool                        `json:"success"`
	Error        string                      `json:"error,omitempty"`
	ReportID     string                      `json:"reportId,omitempty"`
	Strategy     string                      `json:"strategy,omitempty"`
	Transactions []models.Transaction        `json:"transactions"`
	Results      []models.VerificationResult `json:"results"`
	Summary      models.Summary              `json:"summary"`
	CSV          string                      `json:"csv,omitempty"`
	Version      string                      `json:"version,omitempty"`
}

// NewApp builds the fiber application with all routes registered.
func NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit: 32 << 20,
		AppName:   "gcash-receipt-verifier",
	})
	app.Get("/api/health", HandleHealth)
	app.Post("/api/verify", HandleVerify)
	return app
}

// HandleHealth reports service liveness.
func HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"engine":  "fiber",
		"version": version,
	})
}

// HandleVerify accepts a GCash statement PDF (form field "ledger") and a
// receipt spreadsheet CSV (form field "receipts"), runs the pipeline, and
// returns the verification report. Pass csv=true to inline a CSV rendering
// of the report.
func HandleVerify(c *fiber.Ctx) error {
	ledger, err := c.FormFile("ledger")
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "No statement uploaded. Use form field 'ledger'.")
	}
	if !strings.HasSuffix(strings.ToLower(ledger.Filename), ".pdf") {
		return writeError(c, fiber.StatusBadRequest, "Only PDF statements are supported.")
	}

	receipts, err := c.FormFile("receipts")
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "No spreadsheet uploaded. Use form field 'receipts'.")
	}

	tmp, err := os.CreateTemp("", "statement-*.pdf")
	if err != nil {
		return writeError(c, fiber.StatusInternalServerError, "Failed to create temp file.")
	}
	defer os.Remove(tmp.Name())

	src, err := ledger.Open()
	if err != nil {
		tmp.Close()
		return writeError(c, fiber.StatusInternalServerError, "Failed to read uploaded statement.")
	}
	_, err = io.Copy(tmp, src)
	src.Close()
	tmp.Close()
	if err != nil {
		return writeError(c, fiber.StatusInternalServerError, "Failed to save uploaded statement.")
	}

	lines, err := extractor.ExtractLines(tmp.Name())
	if err != nil {
		return writeError(c, fiber.StatusUnprocessableEntity, fmt.Sprintf("PDF extraction failed: %v", err))
	}

	transactions, strategy, err := parser.Extract(lines)
	if err != nil {
		return writeError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	rf, err := receipts.Open()
	if err != nil {
		return writeError(c, fiber.StatusInternalServerError, "Failed to read uploaded spreadsheet.")
	}
	rows, err := sheet.ReadCSV(rf)
	rf.Close()
	if err != nil {
		return writeError(c, fiber.StatusUnprocessableEntity, fmt.Sprintf("Spreadsheet parsing failed: %v", err))
	}

	report := verify.Run(rows, transactions)
	log.Infof("[API] Report %s: %d receipt(s) against %d transaction(s) via %s",
		report.ID, len(rows), len(transactions), strategy)

	resp := VerifyResponse{
		Success:      true,
		ReportID:     report.ID,
		Strategy:     strategy,
		Transactions: transactions,
		Results:      report.Results,
		Summary:      report.Summary,
		Version:      version,
	}

	if c.FormValue("csv") == "true" {
		var buf bytes.Buffer
		w := &writer.CSVWriter{IncludeSummary: true}
		if err := w.Write(&buf, report); err != nil {
			return writeError(c, fiber.StatusInternalServerError, fmt.Sprintf("CSV generation failed: %v", err))
		}
		resp.CSV = buf.String()
	}

	return c.JSON(resp)
}

func writeError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(VerifyResponse{
		Success: false,
		Error:   msg,
	})
}
