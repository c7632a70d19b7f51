package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// ReportSheetName is the single sheet every store report carries.
const ReportSheetName = "Stores"

// ReportHeaders holds the 18 column labels of a store report, in column order.
type ReportHeaders [18]string

// BeforeExecutionHeaders label the columns of a before-execution report.
var BeforeExecutionHeaders = ReportHeaders{
	"Sr No", "Recce By", "Vendor Name", "Store Name", "Address", "GPS Location",
	"Contact No", "Board Type", "Width (Ft)", "Width (In)", "Height (Ft)", "Height (In)",
	"Quantity", "Total Area (Sq Ft)", "Rate", "Amount", "GST 18%", "Net Amount",
}

// AfterExecutionHeaders label the columns of an after-execution report.
var AfterExecutionHeaders = ReportHeaders{
	"Sr No", "Installed By", "Vendor Name", "Store Name", "Address", "GPS Location",
	"Contact No", "Board Type", "Width (Ft)", "Width (In)", "Height (Ft)", "Height (In)",
	"Quantity", "Total Area (Sq Ft)", "Rate", "Amount", "GST 18%", "Net Amount",
}

// HeadersFor returns the header preset for a track.
func HeadersFor(t Track) ReportHeaders {
	if t == TrackAfter {
		return AfterExecutionHeaders
	}
	return BeforeExecutionHeaders
}

// ReportData is everything GenerateStoreReport needs.
type ReportData struct {
	Headers ReportHeaders
	Rows    []ReportRow
}

var reportColumnWidths = [18]float64{6, 18, 18, 30, 40, 22, 14, 14, 10, 10, 10, 10, 10, 16, 10, 14, 12, 14}

// GenerateStoreReport builds the store report workbook and returns the file
// contents.
func GenerateStoreReport(data ReportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, ReportSheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	for i, w := range reportColumnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, fmt.Errorf("column name %d: %w", i+1, err)
		}
		if err := f.SetColWidth(ReportSheetName, col, col, w); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	// ── Styles ──────────────────────────────────────────────────────────

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
			WrapText:   true,
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	textStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create text style: %w", err)
	}

	// NumFmt 2 is the built-in "0.00".
	amountStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
		NumFmt: 2,
	})
	if err != nil {
		return nil, fmt.Errorf("create amount style: %w", err)
	}

	linkStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Size:      10,
			Color:     "#1265BE",
			Underline: "single",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create link style: %w", err)
	}

	// ── Row 1: Column Headers ───────────────────────────────────────────

	for i, h := range data.Headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("header cell %d: %w", i+1, err)
		}
		f.SetCellValue(ReportSheetName, cell, h)
	}
	f.SetCellStyle(ReportSheetName, "A1", "R1", headerStyle)

	// ── Data Rows (starting row 2) ──────────────────────────────────────

	// Text columns are written as plain strings so values such as "+91 ..."
	// or "-Near bus stand" are stored exactly as captured.
	for i, r := range data.Rows {
		n := i + 2
		rowStr := fmt.Sprintf("%d", n)

		f.SetCellValue(ReportSheetName, "A"+rowStr, r.SerialNo)
		f.SetCellStr(ReportSheetName, "B"+rowStr, r.OperatorName)
		f.SetCellStr(ReportSheetName, "C"+rowStr, r.SecondaryOperator)
		f.SetCellStr(ReportSheetName, "D"+rowStr, r.StoreLabel)
		f.SetCellStr(ReportSheetName, "E"+rowStr, r.Address)

		if r.Location.IsLink() {
			if err := f.SetCellFormula(ReportSheetName, "F"+rowStr, hyperlinkFormula(r.Location)); err != nil {
				return nil, fmt.Errorf("set location formula row %d: %w", n, err)
			}
		} else {
			f.SetCellStr(ReportSheetName, "F"+rowStr, r.Location.Text)
		}

		f.SetCellStr(ReportSheetName, "G"+rowStr, r.Phone)
		f.SetCellStr(ReportSheetName, "H"+rowStr, r.BoardType)
		f.SetCellValue(ReportSheetName, "I"+rowStr, r.WidthFeet)
		f.SetCellValue(ReportSheetName, "J"+rowStr, r.WidthInches)
		f.SetCellValue(ReportSheetName, "K"+rowStr, r.HeightFeet)
		f.SetCellValue(ReportSheetName, "L"+rowStr, r.HeightInches)
		f.SetCellValue(ReportSheetName, "M"+rowStr, r.Quantity)
		f.SetCellValue(ReportSheetName, "N"+rowStr, r.TotalArea)
		f.SetCellValue(ReportSheetName, "O"+rowStr, r.Rate)
		f.SetCellValue(ReportSheetName, "P"+rowStr, r.Gross)
		f.SetCellValue(ReportSheetName, "Q"+rowStr, r.Tax)
		f.SetCellValue(ReportSheetName, "R"+rowStr, r.Net)

		f.SetCellStyle(ReportSheetName, "A"+rowStr, "H"+rowStr, textStyle)
		f.SetCellStyle(ReportSheetName, "I"+rowStr, "R"+rowStr, amountStyle)
		if r.Location.IsLink() {
			f.SetCellStyle(ReportSheetName, "F"+rowStr, "F"+rowStr, linkStyle)
		}
	}

	if err := f.SetPanes(ReportSheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("freeze header: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

// ReportFilename names a downloaded report
// "<brand>[_<distributor>]_<YYYYMMDD>.xlsx". The distributor part is only
// present when exactly one distributor is included.
func ReportFilename(brand string, distributors []string, now time.Time) string {
	parts := []string{brand}
	if len(distributors) == 1 {
		parts = append(parts, distributors[0])
	}
	parts = append(parts, now.Format("20060102"))
	return strings.Join(parts, "_") + ".xlsx"
}

func hyperlinkFormula(l LocationRef) string {
	return fmt.Sprintf(`HYPERLINK("%s","%s")`, escapeFormulaString(l.URL), escapeFormulaString(l.Label))
}

// escapeFormulaString doubles quotes so the value stays a string literal
// inside a formula.
func escapeFormulaString(s string) string {
	return strings.ReplaceAll(s, `"`, `""`)
}

// thinBorders returns thin borders on all four sides.
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
