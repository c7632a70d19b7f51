package services

import (
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

func sampleReportData(t Track) ReportData {
	stores := []StoreRecord{
		{
			SerialNo:        "1",
			Name:            "Sai Kirana",
			DistributorName: "Metro Traders",
			Address:         "12 MG Road, Pune",
			GPS:             "Sai Kirana|18.5204|73.8567",
			Phone:           "9876543210",
			BoardType:       "Flex",
			BoardSize:       "24x36",
			Quantity:        "2",
			Rate:            "100",
		},
		{
			SerialNo:        "2",
			Name:            "Om Stores",
			DistributorName: "Metro Traders",
			Address:         "4 FC Road, Pune",
			BoardType:       "Sunboard",
			BoardSize:       "12x12",
			Quantity:        "1",
			Rate:            "=cmd",
		},
	}
	return ReportData{
		Headers: HeadersFor(t),
		Rows:    BuildReportRows(stores, "Ravi", "Brightline"),
	}
}

func openReport(t *testing.T, data []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytesReader(data))
	if err != nil {
		t.Fatalf("failed to open generated report: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func TestGenerateStoreReport_SheetAndHeaders(t *testing.T) {
	data, err := GenerateStoreReport(sampleReportData(TrackBefore))
	if err != nil {
		t.Fatalf("GenerateStoreReport returned error: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("GenerateStoreReport returned empty bytes")
	}

	f := openReport(t, data)

	sheets := f.GetSheetList()
	if len(sheets) != 1 || sheets[0] != ReportSheetName {
		t.Fatalf("sheets = %v, want [%s]", sheets, ReportSheetName)
	}

	for i, want := range BeforeExecutionHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		got, _ := f.GetCellValue(ReportSheetName, cell)
		if got != want {
			t.Errorf("header %s = %q, want %q", cell, got, want)
		}
	}
}

func TestGenerateStoreReport_AfterHeaders(t *testing.T) {
	data, err := GenerateStoreReport(sampleReportData(TrackAfter))
	if err != nil {
		t.Fatalf("GenerateStoreReport returned error: %v", err)
	}

	f := openReport(t, data)

	got, _ := f.GetCellValue(ReportSheetName, "B1")
	if got != "Installed By" {
		t.Errorf("B1 = %q, want %q", got, "Installed By")
	}
}

func TestGenerateStoreReport_DataRows(t *testing.T) {
	data, err := GenerateStoreReport(sampleReportData(TrackBefore))
	if err != nil {
		t.Fatalf("GenerateStoreReport returned error: %v", err)
	}

	f := openReport(t, data)

	expect := map[string]string{
		"A2": "1",
		"B2": "Ravi",
		"C2": "Brightline",
		"D2": "Metro Traders - Sai Kirana",
		"E2": "12 MG Road, Pune",
		"H2": "Flex",
		"N2": "12.00",
		"P2": "1200.00",
		"Q2": "216.00",
		"R2": "1416.00",
		"A3": "2",
		"F3": "4 FC Road, Pune",
		"O3": "0.00",
	}
	for cell, want := range expect {
		got, err := f.GetCellValue(ReportSheetName, cell)
		if err != nil {
			t.Errorf("GetCellValue(%s): %v", cell, err)
			continue
		}
		if got != want {
			t.Errorf("%s = %q, want %q", cell, got, want)
		}
	}

	rows, err := f.GetRows(ReportSheetName)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 3 {
		t.Errorf("expected 3 rows (header + 2 stores), got %d", len(rows))
	}
}

func TestGenerateStoreReport_LocationHyperlinkFormula(t *testing.T) {
	data, err := GenerateStoreReport(sampleReportData(TrackBefore))
	if err != nil {
		t.Fatalf("GenerateStoreReport returned error: %v", err)
	}

	f := openReport(t, data)

	formula, err := f.GetCellFormula(ReportSheetName, "F2")
	if err != nil {
		t.Fatalf("GetCellFormula: %v", err)
	}
	if !strings.Contains(formula, "HYPERLINK(") {
		t.Errorf("F2 formula = %q, want a HYPERLINK formula", formula)
	}
	if !strings.Contains(formula, "https://www.google.com/maps?q=18.5204,73.8567") {
		t.Errorf("F2 formula = %q, missing map URL", formula)
	}
	if !strings.Contains(formula, `"Sai Kirana"`) {
		t.Errorf("F2 formula = %q, missing label", formula)
	}

	plain, _ := f.GetCellFormula(ReportSheetName, "F3")
	if plain != "" {
		t.Errorf("F3 should hold plain text, got formula %q", plain)
	}
}

func TestGenerateStoreReport_EmptyRows(t *testing.T) {
	data, err := GenerateStoreReport(ReportData{Headers: BeforeExecutionHeaders})
	if err != nil {
		t.Fatalf("GenerateStoreReport returned error: %v", err)
	}

	f := openReport(t, data)
	rows, _ := f.GetRows(ReportSheetName)
	if len(rows) != 1 {
		t.Errorf("expected only the header row, got %d rows", len(rows))
	}
}

func TestGenerateStoreReport_TextCellsStoredVerbatim(t *testing.T) {
	rows := []ReportRow{{
		SerialNo:     1,
		OperatorName: "=HYPERLINK(\"evil\")",
		StoreLabel:   "+1",
		Address:      "-Near bus stand",
		Location:     LocationRef{Text: "@ market"},
		Phone:        "+91 9876543210",
	}}
	data, err := GenerateStoreReport(ReportData{Headers: BeforeExecutionHeaders, Rows: rows})
	if err != nil {
		t.Fatalf("GenerateStoreReport returned error: %v", err)
	}

	f := openReport(t, data)
	for cell, want := range map[string]string{
		"B2": "=HYPERLINK(\"evil\")",
		"D2": "+1",
		"E2": "-Near bus stand",
		"F2": "@ market",
		"G2": "+91 9876543210",
	} {
		got, _ := f.GetCellValue(ReportSheetName, cell)
		if got != want {
			t.Errorf("%s = %q, want %q", cell, got, want)
		}
		formula, _ := f.GetCellFormula(ReportSheetName, cell)
		if formula != "" {
			t.Errorf("%s must not be a formula, got %q", cell, formula)
		}
	}
}

func TestReportFilename(t *testing.T) {
	now := time.Date(2026, 3, 9, 15, 4, 0, 0, time.UTC)

	tests := []struct {
		name         string
		brand        string
		distributors []string
		want         string
	}{
		{"all distributors", "Acme", nil, "Acme_20260309.xlsx"},
		{"one distributor", "Acme", []string{"Metro"}, "Acme_Metro_20260309.xlsx"},
		{"many distributors", "Acme", []string{"Metro", "City"}, "Acme_20260309.xlsx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReportFilename(tt.brand, tt.distributors, now); got != tt.want {
				t.Errorf("ReportFilename() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEscapeFormulaString(t *testing.T) {
	if got := escapeFormulaString(`Joe's "Best"`); got != `Joe's ""Best""` {
		t.Errorf("escapeFormulaString = %q", got)
	}
}
