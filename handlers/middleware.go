package handlers

import (
	"context"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/rs/zerolog/log"

	"storebranding/services"
)

type contextKey string

const CurrentVendorKey contextKey = "currentVendor"

// VendorCookie names the cookie holding the active vendor id.
const VendorCookie = "active_vendor"

// GetCurrentVendor extracts the signed-in vendor from the request context.
func GetCurrentVendor(r *http.Request) (services.CurrentUser, bool) {
	if val, ok := r.Context().Value(CurrentVendorKey).(services.CurrentUser); ok {
		return val, true
	}
	return services.CurrentUser{}, false
}

// VendorSessionMiddleware reads the "active_vendor" cookie, resolves the
// vendor record and stores it in the request context. Without a usable
// cookie the first vendor by name is used, so a fresh install still shows
// the demo vendor's stores.
func VendorSessionMiddleware(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var rec *core.Record

		cookie, err := e.Request.Cookie(VendorCookie)
		if err == nil && cookie.Value != "" {
			rec, err = app.FindRecordById("vendors", cookie.Value)
			if err != nil {
				log.Warn().Str("vendor", cookie.Value).Msg("middleware: active vendor not found, clearing cookie")
				http.SetCookie(e.Response, &http.Cookie{
					Name:   VendorCookie,
					Value:  "",
					Path:   "/",
					MaxAge: -1,
				})
				rec = nil
			}
		}

		if rec == nil {
			records, _ := app.FindRecordsByFilter("vendors", "1=1", "name", 1, 0, nil)
			if len(records) > 0 {
				rec = records[0]
			}
		}

		if rec != nil {
			user := services.CurrentUser{ID: rec.Id, DisplayName: rec.GetString("name")}
			ctx := context.WithValue(e.Request.Context(), CurrentVendorKey, user)
			e.Request = e.Request.WithContext(ctx)
		}

		return e.Next()
	}
}
