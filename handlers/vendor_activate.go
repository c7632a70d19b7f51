package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleVendorActivate sets the active vendor cookie and returns a full page
// redirect via HX-Redirect so the branding screen reloads for that vendor.
func HandleVendorActivate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		vendorID := e.Request.PathValue("id")

		vendor, err := app.FindRecordById("vendors", vendorID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Vendor not found")
		}

		// 30-day expiry
		http.SetCookie(e.Response, &http.Cookie{
			Name:     VendorCookie,
			Value:    vendor.Id,
			Path:     "/",
			MaxAge:   60 * 60 * 24 * 30,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		SetToast(e, ToastSuccess, "Signed in as "+vendor.GetString("name"))

		e.Response.Header().Set("HX-Redirect", "/branding")
		return e.String(http.StatusOK, "OK")
	}
}
