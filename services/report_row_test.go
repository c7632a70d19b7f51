package services

import "testing"

func TestCalcReportRow_WorkedExample(t *testing.T) {
	store := StoreRecord{
		SerialNo:        "1",
		Name:            "Sai Kirana",
		DistributorName: "Metro Traders",
		Address:         "12 MG Road, Pune",
		BoardSize:       "24x36",
		Quantity:        "2",
		Rate:            "100",
	}

	r := CalcReportRow(1, store, "Ravi", "Brightline")

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"HeightInches", r.HeightInches, 24},
		{"WidthInches", r.WidthInches, 36},
		{"HeightFeet", r.HeightFeet, 2.00},
		{"WidthFeet", r.WidthFeet, 3.00},
		{"Quantity", r.Quantity, 2},
		{"TotalArea", r.TotalArea, 12.00},
		{"Rate", r.Rate, 100},
		{"Gross", r.Gross, 1200},
		{"Tax", r.Tax, 216},
		{"Net", r.Net, 1416},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}

	if r.SerialNo != 1 {
		t.Errorf("SerialNo = %d, want 1", r.SerialNo)
	}
	if r.StoreLabel != "Metro Traders - Sai Kirana" {
		t.Errorf("StoreLabel = %q", r.StoreLabel)
	}
	if r.OperatorName != "Ravi" || r.SecondaryOperator != "Brightline" {
		t.Errorf("operators = %q / %q", r.OperatorName, r.SecondaryOperator)
	}
}

func TestCalcReportRow_ChainedRounding(t *testing.T) {
	// 30 / 12 = 2.5 and 40 / 12 = 3.333.. -> 3.33; area uses the rounded feet.
	store := StoreRecord{BoardSize: "30x40", Quantity: "3", Rate: "45.5"}

	r := CalcReportRow(1, store, "", "")

	if r.HeightFeet != 2.5 {
		t.Errorf("HeightFeet = %v, want 2.5", r.HeightFeet)
	}
	if r.WidthFeet != 3.33 {
		t.Errorf("WidthFeet = %v, want 3.33", r.WidthFeet)
	}
	// Area is computed from the rounded feet, not from the raw inches.
	qty, h, w := 3.0, 2.5, 3.33
	if want := round2(qty * h * w); r.TotalArea != want {
		t.Errorf("TotalArea = %v, want %v", r.TotalArea, want)
	}
	if unchained := round2(3 * (30.0 / 12) * (40.0 / 12)); r.TotalArea == unchained {
		t.Errorf("TotalArea = %v matches the unchained result", r.TotalArea)
	}
	if r.Gross != round2(r.TotalArea*45.5) {
		t.Errorf("Gross = %v, want %v", r.Gross, round2(r.TotalArea*45.5))
	}
	if r.Tax != round2(r.Gross*GSTRate) {
		t.Errorf("Tax = %v, want %v", r.Tax, round2(r.Gross*GSTRate))
	}
	if r.Net != round2(r.Gross+r.Tax) {
		t.Errorf("Net = %v, want %v", r.Net, round2(r.Gross+r.Tax))
	}
}

func TestCalcReportRow_UnparsableTokensCountAsZero(t *testing.T) {
	tests := []struct {
		name      string
		store     StoreRecord
		wantH     float64
		wantW     float64
		wantQty   float64
		wantRate  float64
		wantGross float64
	}{
		{
			name:      "bad height",
			store:     StoreRecord{BoardSize: "abcx12", Quantity: "2", Rate: "100"},
			wantH:     0,
			wantW:     12,
			wantQty:   2,
			wantRate:  100,
			wantGross: 0,
		},
		{
			name:      "missing width",
			store:     StoreRecord{BoardSize: "24", Quantity: "2", Rate: "100"},
			wantH:     24,
			wantW:     0,
			wantQty:   2,
			wantRate:  100,
			wantGross: 0,
		},
		{
			name:      "empty size",
			store:     StoreRecord{BoardSize: "", Quantity: "1", Rate: "10"},
			wantQty:   1,
			wantRate:  10,
			wantGross: 0,
		},
		{
			name:      "bad quantity",
			store:     StoreRecord{BoardSize: "24x36", Quantity: "two", Rate: "100"},
			wantH:     24,
			wantW:     36,
			wantRate:  100,
			wantGross: 0,
		},
		{
			name:      "missing rate",
			store:     StoreRecord{BoardSize: "24x36", Quantity: "2", Rate: ""},
			wantH:     24,
			wantW:     36,
			wantQty:   2,
			wantGross: 0,
		},
		{
			name:      "bad rate",
			store:     StoreRecord{BoardSize: "24x36", Quantity: "2", Rate: "n/a"},
			wantH:     24,
			wantW:     36,
			wantQty:   2,
			wantGross: 0,
		},
		{
			name:      "padded tokens",
			store:     StoreRecord{BoardSize: " 24 x 36 ", Quantity: " 2 ", Rate: " 100 "},
			wantH:     24,
			wantW:     36,
			wantQty:   2,
			wantRate:  100,
			wantGross: 1200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := CalcReportRow(1, tt.store, "", "")
			if r.HeightInches != tt.wantH {
				t.Errorf("HeightInches = %v, want %v", r.HeightInches, tt.wantH)
			}
			if r.WidthInches != tt.wantW {
				t.Errorf("WidthInches = %v, want %v", r.WidthInches, tt.wantW)
			}
			if r.Quantity != tt.wantQty {
				t.Errorf("Quantity = %v, want %v", r.Quantity, tt.wantQty)
			}
			if r.Rate != tt.wantRate {
				t.Errorf("Rate = %v, want %v", r.Rate, tt.wantRate)
			}
			if r.Gross != tt.wantGross {
				t.Errorf("Gross = %v, want %v", r.Gross, tt.wantGross)
			}
		})
	}
}

func TestCalcReportRow_NegativeValuesPropagate(t *testing.T) {
	store := StoreRecord{BoardSize: "24x36", Quantity: "-2", Rate: "100"}

	r := CalcReportRow(1, store, "", "")

	if r.TotalArea != -12 {
		t.Errorf("TotalArea = %v, want -12", r.TotalArea)
	}
	if r.Gross != -1200 {
		t.Errorf("Gross = %v, want -1200", r.Gross)
	}
	if r.Tax != -216 {
		t.Errorf("Tax = %v, want -216", r.Tax)
	}
	if r.Net != -1416 {
		t.Errorf("Net = %v, want -1416", r.Net)
	}
}

func TestCalcReportRow_Location(t *testing.T) {
	tests := []struct {
		name     string
		gps      string
		address  string
		wantLink bool
		want     LocationRef
	}{
		{
			name:     "full gps",
			gps:      "Sai Kirana|18.5204|73.8567",
			address:  "12 MG Road",
			wantLink: true,
			want: LocationRef{
				Label: "Sai Kirana",
				URL:   "https://www.google.com/maps?q=18.5204,73.8567",
			},
		},
		{
			name:    "too few fields",
			gps:     "18.5204|73.8567",
			address: "12 MG Road",
			want:    LocationRef{Text: "12 MG Road"},
		},
		{
			name:    "no gps",
			gps:     "",
			address: "12 MG Road",
			want:    LocationRef{Text: "12 MG Road"},
		},
		{
			name:    "gps without address",
			gps:     "Sai Kirana|18.5204|73.8567",
			address: "",
			want:    LocationRef{Text: ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := CalcReportRow(1, StoreRecord{GPS: tt.gps, Address: tt.address}, "", "")
			if r.Location.IsLink() != tt.wantLink {
				t.Errorf("IsLink() = %v, want %v", r.Location.IsLink(), tt.wantLink)
			}
			if r.Location != tt.want {
				t.Errorf("Location = %+v, want %+v", r.Location, tt.want)
			}
		})
	}
}

func TestStoreLabel_WithoutDistributor(t *testing.T) {
	r := CalcReportRow(1, StoreRecord{Name: "Sai Kirana"}, "", "")
	if r.StoreLabel != "Sai Kirana" {
		t.Errorf("StoreLabel = %q, want %q", r.StoreLabel, "Sai Kirana")
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		input float64
		want  float64
	}{
		{0, 0},
		{2, 2},
		{1.234, 1.23},
		{1.236, 1.24},
		{0.125, 0.13},
		{-0.125, -0.13},
		{1.115, 1.12},
		{-1.115, -1.12},
		{0.375, 0.38},
		{2.5, 2.5},
		{3.3333333, 3.33},
		{1416.004, 1416},
	}

	for _, tt := range tests {
		if got := round2(tt.input); got != tt.want {
			t.Errorf("round2(%v) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestBuildReportRows_NumbersFromOne(t *testing.T) {
	stores := []StoreRecord{
		{SerialNo: "7", Name: "A"},
		{SerialNo: "9", Name: "B"},
		{SerialNo: "12", Name: "C"},
	}

	rows := BuildReportRows(stores, "Ravi", "")

	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	for i, r := range rows {
		if r.SerialNo != i+1 {
			t.Errorf("row %d SerialNo = %d, want %d", i, r.SerialNo, i+1)
		}
		if r.OperatorName != "Ravi" {
			t.Errorf("row %d OperatorName = %q", i, r.OperatorName)
		}
	}
}
