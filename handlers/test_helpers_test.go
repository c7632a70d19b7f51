package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"storebranding/services"
	"storebranding/testhelpers"
)

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(app *pocketbase.PocketBase, req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.App = app
	e.Request = req
	e.Response = rec
	return e
}

// withVendor returns req carrying user as the signed-in vendor.
func withVendor(req *http.Request, user services.CurrentUser) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), CurrentVendorKey, user))
}

// brandingFixture is one vendor selling one brand through two distributors.
type brandingFixture struct {
	app    *pocketbase.PocketBase
	user   services.CurrentUser
	brand  *core.Record
	metro  *core.Record
	city   *core.Record
	stores []*core.Record
}

func newBrandingFixture(t *testing.T) brandingFixture {
	t.Helper()

	app := testhelpers.NewTestApp(t)
	vendor := testhelpers.CreateTestVendor(t, app, "Brightline Signage")
	brand := testhelpers.CreateTestBrand(t, app, "Acme Tea")
	metro := testhelpers.CreateTestDistributor(t, app, "Metro Traders", brand.Id)
	city := testhelpers.CreateTestDistributor(t, app, "City Agencies", brand.Id)

	f := brandingFixture{
		app:   app,
		user:  services.CurrentUser{ID: vendor.Id, DisplayName: "Brightline Signage"},
		brand: brand,
		metro: metro,
		city:  city,
	}
	f.stores = append(f.stores,
		testhelpers.CreateTestStore(t, app, vendor.Id, brand.Id, metro.Id, testhelpers.StoreFields{
			SerialNo: "10", Name: "Sai Kirana", GPS: "Sai Kirana|18.5204|73.8567", AfterImage: "after/10.jpg",
		}),
		testhelpers.CreateTestStore(t, app, vendor.Id, brand.Id, metro.Id, testhelpers.StoreFields{
			SerialNo: "2", Name: "Om Stores",
		}),
		testhelpers.CreateTestStore(t, app, vendor.Id, brand.Id, city.Id, testhelpers.StoreFields{
			SerialNo: "1", Name: "Laxmi General",
		}),
	)
	return f
}

func (f brandingFixture) service() *services.ApprovalService {
	return services.NewApprovalService(
		services.NewPocketBaseStore(f.app),
		services.NewMarotoComposer("Test Co"),
		services.NewApprovalBoard(),
	)
}
