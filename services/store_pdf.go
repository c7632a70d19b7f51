package services

import (
	"context"
	"fmt"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// DocumentComposer turns a sorted store list into a submission document.
type DocumentComposer interface {
	ComposeDocument(ctx context.Context, stores []StoreRecord, includeAfterImage bool) ([]byte, error)
}

// MarotoComposer renders the store document as a landscape A4 PDF.
type MarotoComposer struct {
	CompanyName string
	Now         func() time.Time
}

// NewMarotoComposer returns a composer stamping documents with companyName.
func NewMarotoComposer(companyName string) *MarotoComposer {
	return &MarotoComposer{CompanyName: companyName, Now: time.Now}
}

// ComposeDocument implements DocumentComposer.
func (c *MarotoComposer) ComposeDocument(ctx context.Context, stores []StoreRecord, includeAfterImage bool) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := config.NewBuilder().
		WithOrientation(orientation.Horizontal).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	now := time.Now
	if c.Now != nil {
		now = c.Now
	}

	addDocumentHeader(m, c.CompanyName, stores, includeAfterImage, now())

	var totalNet float64
	for i, s := range stores {
		r := CalcReportRow(i+1, s, s.SubmittedBy, "")
		totalNet += r.Net
		addStoreBlock(m, s, r, includeAfterImage)
	}

	addDocumentSummary(m, len(stores), totalNet)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate store PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addDocumentHeader adds the company, brand/distributor and submitter lines.
func addDocumentHeader(m core.Maroto, company string, stores []StoreRecord, includeAfterImage bool, now time.Time) {
	title := "BEFORE EXECUTION"
	if includeAfterImage {
		title = "AFTER EXECUTION"
	}

	var brand, distributor, submittedBy string
	if len(stores) > 0 {
		brand = stores[0].BrandName
		distributor = stores[0].DistributorName
		submittedBy = stores[0].SubmittedBy
	}

	grey := &props.Color{Red: 80, Green: 80, Blue: 80}

	m.AddRows(
		row.New(12).Add(
			col.New(6).Add(
				text.New(company, props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
			col.New(6).Add(
				text.New(title, props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Right,
					Color: &props.Color{Red: 33, Green: 37, Blue: 41},
				}),
			),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(4).Add(
				text.New(fmt.Sprintf("Brand: %s", brand), props.Text{Size: 9, Align: align.Left, Color: grey}),
			),
			col.New(4).Add(
				text.New(fmt.Sprintf("Distributor: %s", distributor), props.Text{Size: 9, Align: align.Center, Color: grey}),
			),
			col.New(4).Add(
				text.New(fmt.Sprintf("Date: %s", now.Format("02 Jan 2006")), props.Text{Size: 9, Align: align.Right, Color: grey}),
			),
		),
	)

	if submittedBy != "" {
		m.AddRows(
			row.New(6).Add(
				col.New(12).Add(
					text.New(fmt.Sprintf("Submitted by: %s", submittedBy), props.Text{Size: 8, Align: align.Left, Color: grey}),
				),
			),
		)
	}

	m.AddRows(row.New(4))
}

// addStoreBlock adds one store: an identifying bar, the board details, and
// the image references.
func addStoreBlock(m core.Maroto, s StoreRecord, r ReportRow, includeAfterImage bool) {
	barBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	barText := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	barCell := props.Cell{BackgroundColor: barBg}

	label := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}
	value := props.Text{Size: 8, Align: align.Left}
	rightValue := props.Text{Size: 8, Align: align.Right}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(text.New(s.SerialNo, barText)).WithStyle(&barCell),
			col.New(11).Add(text.New(s.Name, barText)).WithStyle(&barCell),
		),
	)

	location := r.Location.Text
	if r.Location.IsLink() {
		location = fmt.Sprintf("%s (%s)", r.Location.Label, r.Location.URL)
	}

	m.AddRows(
		row.New(7).Add(
			col.New(2).Add(text.New("Address", label)),
			col.New(10).Add(text.New(s.Address, value)),
		),
		row.New(7).Add(
			col.New(2).Add(text.New("Location", label)),
			col.New(10).Add(text.New(location, value)),
		),
		row.New(7).Add(
			col.New(2).Add(text.New("Board", label)),
			col.New(4).Add(text.New(fmt.Sprintf("%s  %s in", s.BoardType, s.BoardSize), value)),
			col.New(2).Add(text.New("Qty / Area", label)),
			col.New(4).Add(text.New(fmt.Sprintf("%s / %.2f sq ft", formatQty(r.Quantity), r.TotalArea), rightValue)),
		),
		row.New(7).Add(
			col.New(2).Add(text.New("Rate", label)),
			col.New(4).Add(text.New(FormatINR(r.Rate), value)),
			col.New(2).Add(text.New("Net Amount", label)),
			col.New(4).Add(text.New(FormatINR(r.Net), rightValue)),
		),
	)

	m.AddRows(
		row.New(7).Add(
			col.New(2).Add(text.New("Before Image", label)),
			col.New(10).Add(text.New(orDash(s.BeforeImage), value)),
		),
	)
	if includeAfterImage {
		m.AddRows(
			row.New(7).Add(
				col.New(2).Add(text.New("After Image", label)),
				col.New(10).Add(text.New(orDash(s.AfterImage), value)),
			),
		)
	}

	m.AddRows(row.New(4))
}

// addDocumentSummary adds the store count and the total net amount in
// figures and words.
func addDocumentSummary(m core.Maroto, count int, totalNet float64) {
	summaryCell := &props.Cell{BackgroundColor: &props.Color{Red: 240, Green: 240, Blue: 240}}
	style := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
	}

	m.AddRows(
		row.New(8).Add(
			col.New(8).Add(text.New(fmt.Sprintf("Stores: %d    Total Net Amount", count), style)).WithStyle(summaryCell),
			col.New(4).Add(text.New(FormatINR(totalNet), style)).WithStyle(summaryCell),
		),
		row.New(6).Add(
			col.New(12).Add(text.New(AmountInWords(totalNet), props.Text{
				Size:  8,
				Style: fontstyle.Italic,
				Align: align.Right,
			})),
		),
	)
}

// formatQty prints whole quantities without decimals.
func formatQty(qty float64) string {
	if qty == float64(int64(qty)) {
		return fmt.Sprintf("%.0f", qty)
	}
	return fmt.Sprintf("%.2f", qty)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
