package services

import (
	"slices"
	"testing"
)

func serials(stores []StoreRecord) []string {
	out := make([]string, len(stores))
	for i, s := range stores {
		out[i] = s.SerialNo
	}
	return out
}

func storesWithSerials(serials ...string) []StoreRecord {
	out := make([]StoreRecord, len(serials))
	for i, s := range serials {
		out[i] = StoreRecord{SerialNo: s}
	}
	return out
}

func TestSortBySerial(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{"numeric", []string{"10", "2", "1"}, []string{"1", "2", "10"}},
		{"mixed", []string{"10", "2", "abc", "1"}, []string{"1", "2", "10", "abc"}},
		{"strings", []string{"b", "a", "c"}, []string{"a", "b", "c"}},
		{"empty", nil, []string{}},
		{"single", []string{"5"}, []string{"5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stores := storesWithSerials(tt.input...)
			SortBySerial(stores)
			if got := serials(stores); !slices.Equal(got, tt.want) {
				t.Errorf("SortBySerial(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSortBySerial_StableForEqualSerials(t *testing.T) {
	stores := []StoreRecord{
		{SerialNo: "2", Name: "first"},
		{SerialNo: "1", Name: "x"},
		{SerialNo: "2", Name: "second"},
	}

	SortBySerial(stores)

	if stores[1].Name != "first" || stores[2].Name != "second" {
		t.Errorf("equal serials reordered: %q, %q", stores[1].Name, stores[2].Name)
	}
}

func TestCompareSerial(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"2", "10", -1},
		{"10", "2", 1},
		{"7", "7", 0},
		{"10", "abc", -1},
		{"abc", "10", 1},
		{"a", "b", -1},
		{"", "1", -1},
	}

	for _, tt := range tests {
		if got := compareSerial(tt.a, tt.b); got != tt.want {
			t.Errorf("compareSerial(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
