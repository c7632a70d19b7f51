package main

import (
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/rs/zerolog/log"

	"storebranding/collections"
	"storebranding/config"
	"storebranding/handlers"
	"storebranding/logger"
	"storebranding/services"
)

func main() {
	cfg := config.Load()
	appLogger := logger.Initialize(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	app := pocketbase.New()

	data := services.NewPocketBaseStore(app)
	docs := services.NewMarotoComposer(cfg.App.CompanyName)
	approvals := services.NewApprovalService(data, docs, services.NewApprovalBoard(),
		services.WithLogger(appLogger.With().Str("component", "approvals").Logger()),
	)

	app.RootCmd.AddCommand(newReportCommand(app, data))

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if cfg.App.SeedDemoData {
			if err := collections.Seed(app); err != nil {
				log.Warn().Err(err).Msg("seed data failed")
			}
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Resolve the signed-in vendor for every request
		se.Router.BindFunc(handlers.VendorSessionMiddleware(app))

		// ── Vendor session ───────────────────────────────────────
		se.Router.POST("/vendors/{id}/activate", handlers.HandleVendorActivate(app))

		// ── Branding screen ──────────────────────────────────────
		se.Router.GET("/branding", handlers.HandleBrandingPage(data, approvals, cfg.App.CompanyName))
		se.Router.GET("/branding/distributors", handlers.HandleDistributorOptions(data))
		se.Router.POST("/branding/approvals/{track}", handlers.HandleSubmitApproval(approvals, cfg.App.SubmitTimeout))

		// ── Exports ──────────────────────────────────────────────
		se.Router.GET("/branding/report.xlsx", handlers.HandleReportExcel(data, time.Now))
		se.Router.GET("/branding/document.pdf", handlers.HandleDocumentPDF(data, docs))

		// Redirect home to the branding screen
		se.Router.GET("/", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/branding")
		})

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal().Err(err).Msg("app stopped")
	}
}
