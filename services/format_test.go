package services

import "testing"

func TestFormatINR_Values(t *testing.T) {
	tests := []struct {
		name   string
		input  float64
		expect string
	}{
		{"zero", 0, "₹0.00"},
		{"board rate", 100, "₹100.00"},
		{"net amount", 1416, "₹1,416.00"},
		{"with decimals", 42.5, "₹42.50"},
		{"ten thousands", 12345, "₹12,345.00"},
		{"lakhs", 123456.78, "₹1,23,456.78"},
		{"ten lakhs", 1234567.89, "₹12,34,567.89"},
		{"crores", 12345678.9, "₹1,23,45,678.90"},
		{"exact lakh boundary", 100000, "₹1,00,000.00"},
		{"negative net", -1416, "-₹1,416.00"},
		{"negative lakhs", -250000.5, "-₹2,50,000.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatINR(tt.input); got != tt.expect {
				t.Errorf("FormatINR(%v) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestApplyIndianGrouping(t *testing.T) {
	tests := []struct {
		input  string
		expect string
	}{
		{"5", "5"},
		{"999", "999"},
		{"1234", "1,234"},
		{"123456", "1,23,456"},
		{"1234567", "12,34,567"},
		{"1234567890", "1,23,45,67,890"},
	}

	for _, tt := range tests {
		if got := applyIndianGrouping(tt.input); got != tt.expect {
			t.Errorf("applyIndianGrouping(%q) = %q, want %q", tt.input, got, tt.expect)
		}
	}
}

func TestAmountInWords(t *testing.T) {
	tests := []struct {
		amount float64
		expect string
	}{
		{0, "Zero Rupees Only"},
		{0.4, "Zero Rupees Only"},
		{7, "Seven Rupees Only"},
		{1200, "One Thousand Two Hundred Rupees Only"},
		{1416, "One Thousand Four Hundred and Sixteen Rupees Only"},
		{4248, "Four Thousand Two Hundred and Forty Eight Rupees Only"},
		{100016, "One Lakh and Sixteen Rupees Only"},
		{250000, "Two Lakhs Fifty Thousand Rupees Only"},
		{12345678, "One Crore Twenty Three Lakhs Forty Five Thousand Six Hundred and Seventy Eight Rupees Only"},
		{-1416, "Minus One Thousand Four Hundred and Sixteen Rupees Only"},
		{1999_00_00_000, "One Thousand Nine Hundred and Ninety Nine Crores Rupees Only"},
		{2500_00_00_000, "Two Thousand Five Hundred Crores Rupees Only"},
		{2500_00_00_016, "Two Thousand Five Hundred Crores and Sixteen Rupees Only"},
		{1.18e11, "Eleven Thousand Eight Hundred Crores Rupees Only"},
		{12_34_567_00_00_000, "Twelve Lakhs Thirty Four Thousand Five Hundred and Sixty Seven Crores Rupees Only"},
		{99.6, "One Hundred Rupees Only"},
	}

	for _, tt := range tests {
		if got := AmountInWords(tt.amount); got != tt.expect {
			t.Errorf("AmountInWords(%v) = %q, want %q", tt.amount, got, tt.expect)
		}
	}
}

func TestAmountInWords_OutOfRange(t *testing.T) {
	if got := AmountInWords(1e20); got != "100000000000000000000 Rupees Only" {
		t.Errorf("AmountInWords(1e20) = %q", got)
	}
	if got := AmountInWords(-1e20); got != "Minus 100000000000000000000 Rupees Only" {
		t.Errorf("AmountInWords(-1e20) = %q", got)
	}
}
