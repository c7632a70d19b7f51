package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pocketbase/pocketbase"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"storebranding/collections"
	"storebranding/services"
)

// newReportCommand builds "report", which writes a vendor's store report for
// one brand to disk without starting the server.
func newReportCommand(app *pocketbase.PocketBase, data services.DataService) *cobra.Command {
	var (
		vendorID     string
		brandID      string
		distributors string
		out          string
		after        bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write the store report spreadsheet of a brand",
		RunE: func(cmd *cobra.Command, args []string) error {
			collections.Setup(app)

			vendor, err := app.FindRecordById("vendors", vendorID)
			if err != nil {
				return fmt.Errorf("vendor %q: %w", vendorID, err)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()

			stores, err := data.ListStoresForReport(ctx, vendor.Id, brandID, distributors)
			if err != nil {
				return fmt.Errorf("list stores: %w", err)
			}
			if len(stores) == 0 {
				return services.ErrNoStoresFound
			}
			services.SortBySerial(stores)

			track := services.TrackBefore
			if after {
				track = services.TrackAfter
			}
			xlsx, err := services.GenerateStoreReport(services.ReportData{
				Headers: services.HeadersFor(track),
				Rows:    services.BuildReportRows(stores, vendor.GetString("name"), ""),
			})
			if err != nil {
				return fmt.Errorf("%w: %w", services.ErrSpreadsheetGenerationFailed, err)
			}

			var names []string
			if len(services.SplitIDs(distributors)) == 1 {
				names = []string{stores[0].DistributorName}
			}
			path, err := reportPath(out, services.ReportFilename(stores[0].BrandName, names, time.Now()))
			if err != nil {
				return err
			}

			if err := os.WriteFile(path, xlsx, 0o644); err != nil {
				return fmt.Errorf("write report: %w", err)
			}

			log.Info().
				Str("path", path).
				Int("stores", len(stores)).
				Str("size", humanize.Bytes(uint64(len(xlsx)))).
				Msg("report written")
			return nil
		},
	}

	cmd.Flags().StringVar(&vendorID, "vendor", "", "vendor id (required)")
	cmd.Flags().StringVar(&brandID, "brand", "", "brand id (required)")
	cmd.Flags().StringVar(&distributors, "distributors", "", "comma separated distributor ids; empty means all")
	cmd.Flags().StringVar(&out, "out", ".", "output file or directory")
	cmd.Flags().BoolVar(&after, "after", false, "use the after-execution column labels")
	_ = cmd.MarkFlagRequired("vendor")
	_ = cmd.MarkFlagRequired("brand")

	return cmd
}

// reportPath resolves out to a file path. A directory gets the generated
// file name appended.
func reportPath(out, filename string) (string, error) {
	info, err := os.Stat(out)
	switch {
	case err == nil && info.IsDir():
		return filepath.Join(out, filename), nil
	case err == nil || errors.Is(err, os.ErrNotExist):
		return out, nil
	}
	return "", fmt.Errorf("output path %q: %w", out, err)
}
