package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// QuoteExportRow is one stored quote flattened for the history export.
type QuoteExportRow struct {
	Date         string
	CustomerName string
	Phone        string
	Location     string
	KWp          float64
	Phase        int
	Salesperson  string
	Channel      string
	Subtotal     float64
	GSTAmount    float64
	Total        float64
	Discount     float64
	GrandTotal   float64
}

// GenerateQuotesExcel creates an Excel workbook of the stored quote history
// and returns the file contents as a byte slice.
func GenerateQuotesExcel(rows []QuoteExportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Quotations"
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	// Column references (A through M).
	columns := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M"}
	lastCol := columns[len(columns)-1]

	widths := []float64{12, 24, 14, 14, 8, 7, 16, 14, 14, 12, 14, 12, 14}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 16,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Color: "#FFFFFF",
			Size:  11,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#333333"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	bodyStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Size: 10,
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create body style: %w", err)
	}

	// ── Title and header rows ───────────────────────────────────────────

	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", "Quotation History")
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	headers := []string{
		"Date", "Customer", "Phone", "Location", "kWp", "Phase",
		"Salesperson", "Channel", "Subtotal", "GST", "Total", "Discount", "Grand Total",
	}
	for i, h := range headers {
		cell := fmt.Sprintf("%s3", columns[i])
		f.SetCellValue(sheetName, cell, h)
	}
	f.SetCellStyle(sheetName, "A3", lastCol+"3", headerStyle)

	// ── Data rows (starting row 4) ──────────────────────────────────────

	row := 4
	for _, r := range rows {
		rowStr := fmt.Sprintf("%d", row)

		f.SetCellValue(sheetName, "A"+rowStr, sanitizeExcelCell(r.Date))
		f.SetCellValue(sheetName, "B"+rowStr, sanitizeExcelCell(r.CustomerName))
		f.SetCellValue(sheetName, "C"+rowStr, sanitizeExcelCell(r.Phone))
		f.SetCellValue(sheetName, "D"+rowStr, sanitizeExcelCell(r.Location))
		f.SetCellValue(sheetName, "E"+rowStr, r.KWp)
		f.SetCellValue(sheetName, "F"+rowStr, r.Phase)
		f.SetCellValue(sheetName, "G"+rowStr, sanitizeExcelCell(r.Salesperson))
		f.SetCellValue(sheetName, "H"+rowStr, sanitizeExcelCell(r.Channel))
		f.SetCellValue(sheetName, "I"+rowStr, FormatINR(r.Subtotal))
		f.SetCellValue(sheetName, "J"+rowStr, FormatINR(r.GSTAmount))
		f.SetCellValue(sheetName, "K"+rowStr, FormatINR(r.Total))
		f.SetCellValue(sheetName, "L"+rowStr, FormatINR(r.Discount))
		f.SetCellValue(sheetName, "M"+rowStr, FormatINR(r.GrandTotal))

		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, bodyStyle)

		row++
	}

	// ── Write to buffer ─────────────────────────────────────────────────

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns thin borders for all four cell sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1,
		}
	}
	return borders
}
