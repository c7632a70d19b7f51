package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// GSTRate is the tax applied to every board's gross amount.
const GSTRate = 0.18

const mapsBaseURL = "https://www.google.com/maps?q="

// LocationRef is either a map link (URL set) or plain address text.
type LocationRef struct {
	Label string
	URL   string
	Text  string
}

// IsLink reports whether the reference should render as a hyperlink.
func (l LocationRef) IsLink() bool { return l.URL != "" }

// ReportRow is one fully computed spreadsheet row. Every amount is already
// rounded to two decimals at the stage that produced it.
type ReportRow struct {
	SerialNo          int
	OperatorName      string
	SecondaryOperator string
	StoreLabel        string
	Address           string
	Location          LocationRef
	Phone             string
	BoardType         string
	WidthFeet         float64
	WidthInches       float64
	HeightFeet        float64
	HeightInches      float64
	Quantity          float64
	TotalArea         float64
	Rate              float64
	Gross             float64
	Tax               float64
	Net               float64
}

// CalcReportRow derives a report row from a store. It never fails: any
// token that does not parse counts as zero.
//
// Rounding is chained: each stage is rounded to two decimals and the rounded
// value feeds the next stage. Exported reports must match earlier exports
// figure for figure, so do not collapse this into one final rounding.
func CalcReportRow(seq int, store StoreRecord, operator, secondary string) ReportRow {
	heightIn, widthIn := parseBoardSize(store.BoardSize)
	heightFt := round2(heightIn / 12)
	widthFt := round2(widthIn / 12)

	qty := parseNumber(store.Quantity)
	totalArea := round2(qty * heightFt * widthFt)

	rate := 0.0
	if strings.TrimSpace(store.Rate) != "" {
		rate = round2(parseNumber(store.Rate))
	}

	gross := round2(totalArea * rate)
	tax := round2(gross * GSTRate)
	net := round2(gross + tax)

	return ReportRow{
		SerialNo:          seq,
		OperatorName:      operator,
		SecondaryOperator: secondary,
		StoreLabel:        storeLabel(store),
		Address:           store.Address,
		Location:          locationRef(store.GPS, store.Address),
		Phone:             store.Phone,
		BoardType:         store.BoardType,
		WidthFeet:         widthFt,
		WidthInches:       widthIn,
		HeightFeet:        heightFt,
		HeightInches:      heightIn,
		Quantity:          qty,
		TotalArea:         totalArea,
		Rate:              rate,
		Gross:             gross,
		Tax:               tax,
		Net:               net,
	}
}

// BuildReportRows applies CalcReportRow to every store, numbering from 1.
func BuildReportRows(stores []StoreRecord, operator, secondary string) []ReportRow {
	rows := make([]ReportRow, 0, len(stores))
	for i, s := range stores {
		rows = append(rows, CalcReportRow(i+1, s, operator, secondary))
	}
	return rows
}

// parseBoardSize splits "<height>x<width>".
func parseBoardSize(size string) (height, width float64) {
	parts := strings.Split(size, "x")
	if len(parts) > 0 {
		height = parseNumber(parts[0])
	}
	if len(parts) > 1 {
		width = parseNumber(parts[1])
	}
	return height, width
}

func parseNumber(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// round2 rounds to two decimals by scaling by 100 in float64 and rounding
// half away from zero. A value whose scaled product lands on .5 rounds away
// from zero even when its binary form sits just below the tie, so 1.115
// becomes 1.12 the way it reads.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func storeLabel(s StoreRecord) string {
	if s.DistributorName == "" {
		return s.Name
	}
	return fmt.Sprintf("%s - %s", s.DistributorName, s.Name)
}

func locationRef(gps, address string) LocationRef {
	if gps != "" && address != "" {
		fields := strings.Split(gps, "|")
		if len(fields) >= 3 {
			return LocationRef{
				Label: fields[0],
				URL:   mapsBaseURL + fields[1] + "," + fields[2],
			}
		}
	}
	return LocationRef{Text: address}
}
