package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase/core"
	"github.com/rs/zerolog/log"

	"storebranding/services"
)

// HandleReportExcel returns a handler that downloads the store report of a
// brand, optionally narrowed to a comma separated list of distributors.
func HandleReportExcel(data services.DataService, now func() time.Time) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		q := e.Request.URL.Query()
		brandID := strings.TrimSpace(q.Get("brand"))
		if brandID == "" {
			return e.String(http.StatusBadRequest, "Missing brand")
		}

		user, ok := GetCurrentVendor(e.Request)
		if !ok {
			return e.String(http.StatusUnauthorized, "Select a vendor first")
		}

		distributorCSV := q.Get("distributors")
		stores, err := data.ListStoresForReport(e.Request.Context(), user.ID, brandID, distributorCSV)
		if err != nil {
			log.Error().Err(err).Str("brand", brandID).Msg("report_export: could not list stores")
			return e.String(http.StatusInternalServerError, "Failed to load stores")
		}
		if len(stores) == 0 {
			return e.String(http.StatusNotFound, "No stores found")
		}
		services.SortBySerial(stores)

		track := services.TrackBefore
		if isTruthy(q.Get("after")) {
			track = services.TrackAfter
		}

		operator := q.Get("operator")
		if operator == "" {
			operator = user.DisplayName
		}
		rows := services.BuildReportRows(stores, operator, q.Get("secondary"))

		xlsx, err := services.GenerateStoreReport(services.ReportData{
			Headers: services.HeadersFor(track),
			Rows:    rows,
		})
		if err != nil {
			log.Error().Err(err).Str("brand", brandID).Msg("report_export: failed to generate Excel")
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}

		var distributors []string
		if len(services.SplitIDs(distributorCSV)) == 1 {
			distributors = []string{stores[0].DistributorName}
		}
		filename := sanitizeFilename(services.ReportFilename(stores[0].BrandName, distributors, now()))

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsx)
		return nil
	}
}

// HandleDocumentPDF returns a handler that renders the approval document of
// one brand and distributor inline, for preview before submitting.
func HandleDocumentPDF(data services.DataService, docs services.DocumentComposer) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		q := e.Request.URL.Query()
		brandID := strings.TrimSpace(q.Get("brand"))
		distributorID := strings.TrimSpace(q.Get("distributor"))
		if brandID == "" || distributorID == "" {
			return e.String(http.StatusBadRequest, "Missing brand or distributor")
		}

		user, ok := GetCurrentVendor(e.Request)
		if !ok {
			return e.String(http.StatusUnauthorized, "Select a vendor first")
		}

		stores, err := data.ListStores(e.Request.Context(), user.ID, brandID, distributorID)
		if err != nil {
			log.Error().Err(err).Str("brand", brandID).Msg("report_export: could not list stores")
			return e.String(http.StatusInternalServerError, "Failed to load stores")
		}

		after := isTruthy(q.Get("after"))
		if after {
			stores = services.StoresWithAfterImage(stores)
		}
		if len(stores) == 0 {
			return e.String(http.StatusNotFound, services.UserMessage(services.ErrNoStoresFound))
		}

		services.SortBySerial(stores)
		for i := range stores {
			stores[i].SubmittedBy = user.DisplayName
		}

		pdf, err := docs.ComposeDocument(e.Request.Context(), stores, after)
		if err != nil {
			log.Error().Err(err).Str("brand", brandID).Msg("report_export: failed to generate PDF")
			return e.String(http.StatusInternalServerError, "Failed to generate PDF")
		}

		kind := "before"
		if after {
			kind = "after"
		}
		filename := sanitizeFilename(fmt.Sprintf("%s_%s_%s.pdf", stores[0].BrandName, stores[0].DistributorName, kind))

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`inline; filename="%s"`, filename))
		e.Response.Write(pdf)
		return nil
	}
}

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	return strings.NewReplacer(" ", "-", "/", "-", "\\", "-", ":", "-", `"`, "").Replace(s)
}

func isTruthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
