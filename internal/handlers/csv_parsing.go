package handlers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/epeers/rsiv/internal/models"
)

// ParseHoldingsCSV parses a holdings CSV into HoldingRequests, in file order.
// Required columns: strength_score, invested_amount (case-insensitive, any order).
// Rows where every cell is blank are skipped and counted in the second return value.
func ParseHoldingsCSV(r io.Reader) ([]models.HoldingRequest, int, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	// Read header row
	header, err := reader.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read CSV header: %w", err)
	}

	// Build column index map (case-insensitive, trimmed)
	colIdx := make(map[string]int)
	for i, col := range header {
		colIdx[strings.ToLower(strings.TrimSpace(col))] = i
	}

	requiredCols := []string{"strength_score", "invested_amount"}
	for _, col := range requiredCols {
		if _, ok := colIdx[col]; !ok {
			return nil, 0, fmt.Errorf("missing required column: %s", col)
		}
	}

	cell := func(record []string, col string) string {
		idx := colIdx[col]
		if idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	var holdings []models.HoldingRequest
	skipped := 0
	rowNum := 1 // header is row 1, data starts at row 2
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("row %d: failed to read CSV record: %w", rowNum+1, err)
		}
		rowNum++

		if blankRecord(record) {
			skipped++
			continue
		}

		var h models.HoldingRequest
		for _, col := range requiredCols {
			raw := cell(record, col)
			if raw == "" {
				return nil, 0, fmt.Errorf("row %d: %s is empty", rowNum, col)
			}
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, 0, fmt.Errorf("row %d: invalid %s %q", rowNum, col, raw)
			}
			if col == "strength_score" {
				h.StrengthScore = &v
			} else {
				h.InvestedAmount = &v
			}
		}
		holdings = append(holdings, h)
	}

	return holdings, skipped, nil
}

func blankRecord(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
