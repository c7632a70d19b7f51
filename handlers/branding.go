package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase/core"
	"github.com/rs/zerolog/log"

	"storebranding/services"
	"storebranding/templates"
)

const timestampLayout = "02 Jan 2006 15:04"

// HandleBrandingPage renders the store table and the approval status of every
// distributor of the selected brand.
func HandleBrandingPage(data services.DataService, approvals *services.ApprovalService, companyName string) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		ctx := e.Request.Context()
		q := e.Request.URL.Query()
		brandID := strings.TrimSpace(q.Get("brand"))
		distributorID := strings.TrimSpace(q.Get("distributor"))

		user, hasUser := GetCurrentVendor(e.Request)

		page := templates.BrandingPageData{
			CompanyName:         companyName,
			VendorName:          user.DisplayName,
			SelectedBrand:       brandID,
			SelectedDistributor: distributorID,
		}

		brands, err := data.ListBrands(ctx)
		if err != nil {
			log.Error().Err(err).Msg("branding: could not list brands")
		}
		for _, b := range brands {
			page.Brands = append(page.Brands, templates.Option{ID: b.ID, Label: b.Name, Selected: b.ID == brandID})
		}

		if brandID != "" {
			distributors, err := data.ListDistributors(ctx, brandID)
			if err != nil {
				log.Error().Err(err).Str("brand", brandID).Msg("branding: could not list distributors")
			}
			page.Distributors = distributorOptions(distributors, distributorID)

			if hasUser {
				page.Stores, page.TotalNet = storeRows(ctx, data, user.ID, brandID, distributorID)

				if err := approvals.Refresh(ctx, user.ID); err != nil {
					log.Error().Err(err).Str("vendor", user.ID).Msg("branding: could not refresh approvals")
				}
				page.Approvals = approvalRows(approvals.Board(), user.ID, brandID, distributorID, distributors)
			}
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.BrandingContent(page)
		} else {
			component = templates.BrandingPage(page)
		}
		return component.Render(ctx, e.Response)
	}
}

// HandleDistributorOptions returns the distributor <option> list for a brand.
func HandleDistributorOptions(data services.DataService) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		brandID := strings.TrimSpace(e.Request.URL.Query().Get("brand"))

		var distributors []services.Distributor
		if brandID != "" {
			var err error
			distributors, err = data.ListDistributors(e.Request.Context(), brandID)
			if err != nil {
				log.Error().Err(err).Str("brand", brandID).Msg("branding: could not list distributors")
				return ErrorToast(e, http.StatusInternalServerError, "Could not load distributors")
			}
		}

		return templates.DistributorOptions(distributorOptions(distributors, "")).Render(e.Request.Context(), e.Response)
	}
}

func distributorOptions(distributors []services.Distributor, selected string) []templates.Option {
	opts := make([]templates.Option, 0, len(distributors))
	for _, d := range distributors {
		label := d.Name
		if d.City != "" {
			label = fmt.Sprintf("%s (%s)", d.Name, d.City)
		}
		opts = append(opts, templates.Option{ID: d.ID, Label: label, Selected: d.ID == selected})
	}
	return opts
}

func storeRows(ctx context.Context, data services.DataService, vendorID, brandID, distributorID string) ([]templates.StoreRowView, string) {
	stores, err := data.ListStores(ctx, vendorID, brandID, distributorID)
	if err != nil {
		log.Error().Err(err).Str("brand", brandID).Msg("branding: could not list stores")
		return nil, services.FormatINR(0)
	}
	services.SortBySerial(stores)

	var total float64
	rows := make([]templates.StoreRowView, 0, len(stores))
	for i, s := range stores {
		r := services.CalcReportRow(i+1, s, "", "")
		total += r.Net
		rows = append(rows, templates.StoreRowView{
			SerialNo:       s.SerialNo,
			Name:           s.Name,
			Distributor:    s.DistributorName,
			Address:        s.Address,
			BoardType:      s.BoardType,
			BoardSize:      s.BoardSize,
			NetAmount:      services.FormatINR(r.Net),
			MapURL:         r.Location.URL,
			MapLabel:       r.Location.Label,
			HasBeforeImage: strings.TrimSpace(s.BeforeImage) != "",
			HasAfterImage:  strings.TrimSpace(s.AfterImage) != "",
		})
	}
	return rows, services.FormatINR(total)
}

func approvalRows(board *services.ApprovalBoard, vendorID, brandID, distributorID string, distributors []services.Distributor) []templates.ApprovalRowView {
	var rows []templates.ApprovalRowView
	for _, d := range distributors {
		if distributorID != "" && d.ID != distributorID {
			continue
		}
		key := services.PairKey{VendorID: vendorID, BrandID: brandID, DistributorID: d.ID}
		result, _ := board.Result(key)
		rows = append(rows, templates.ApprovalRowView{
			DistributorID:   d.ID,
			DistributorName: d.Name,
			Before:          trackView(result.Before, board.IsSubmitting(key, services.TrackBefore)),
			After:           trackView(result.After, board.IsSubmitting(key, services.TrackAfter)),
		})
	}
	return rows
}

func trackView(s services.TrackState, submitting bool) templates.TrackView {
	v := templates.TrackView{
		Status:     s.Status,
		Comments:   s.Comments,
		Submitting: submitting,
	}
	if !s.SubmittedAt.IsZero() {
		v.SubmittedAt = s.SubmittedAt.Local().Format(timestampLayout)
	}
	if !s.LastActionAt.IsZero() {
		v.LastActionAt = s.LastActionAt.Local().Format(timestampLayout)
	}
	return v
}
