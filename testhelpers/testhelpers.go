// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"storebranding/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestVendor creates a vendor record with the given name and returns it.
func CreateTestVendor(t *testing.T, app *pocketbase.PocketBase, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("vendors")
	if err != nil {
		t.Fatalf("failed to find vendors collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("contact_name", "Test Contact")
	record.Set("phone", "9876543210")
	record.Set("city", "Pune")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test vendor: %v", err)
	}

	return record
}

// CreateTestBrand creates a brand record and returns it.
func CreateTestBrand(t *testing.T, app *pocketbase.PocketBase, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("brands")
	if err != nil {
		t.Fatalf("failed to find brands collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test brand: %v", err)
	}

	return record
}

// CreateTestDistributor creates a distributor selling the given brands.
func CreateTestDistributor(t *testing.T, app *pocketbase.PocketBase, name string, brandIDs ...string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("distributors")
	if err != nil {
		t.Fatalf("failed to find distributors collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("city", "Pune")
	record.Set("brands", brandIDs)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test distributor: %v", err)
	}

	return record
}

// StoreFields overrides the defaults CreateTestStore uses.
type StoreFields struct {
	SerialNo   string
	Name       string
	GPS        string
	BoardSize  string
	Quantity   string
	Rate       string
	AfterImage string
}

// CreateTestStore creates a store owned by the vendor under a brand and
// distributor. Zero fields in f fall back to a 24x36 flex board, qty 2 at 100.
func CreateTestStore(t *testing.T, app *pocketbase.PocketBase, vendorID, brandID, distributorID string, f StoreFields) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("stores")
	if err != nil {
		t.Fatalf("failed to find stores collection: %v", err)
	}

	if f.Name == "" {
		f.Name = "Test Store " + f.SerialNo
	}
	if f.BoardSize == "" {
		f.BoardSize = "24x36"
	}
	if f.Quantity == "" {
		f.Quantity = "2"
	}
	if f.Rate == "" {
		f.Rate = "100"
	}

	record := core.NewRecord(col)
	record.Set("vendor", vendorID)
	record.Set("brand", brandID)
	record.Set("distributor", distributorID)
	record.Set("serial_no", f.SerialNo)
	record.Set("name", f.Name)
	record.Set("address", "12 Test Road, Pune")
	record.Set("phone", "9876543210")
	record.Set("gps", f.GPS)
	record.Set("board_type", "Flex")
	record.Set("board_size", f.BoardSize)
	record.Set("quantity", f.Quantity)
	record.Set("rate", f.Rate)
	record.Set("before_image", "before/"+f.SerialNo+".jpg")
	record.Set("after_image", f.AfterImage)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test store: %v", err)
	}

	return record
}

// CreateTestApproval creates an approval record with the given type and status.
func CreateTestApproval(t *testing.T, app *pocketbase.PocketBase, vendorID, brandID, distributorID, approvalType, status string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("approvals")
	if err != nil {
		t.Fatalf("failed to find approvals collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("vendor", vendorID)
	record.Set("brand", brandID)
	record.Set("distributor", distributorID)
	record.Set("approval_type", approvalType)
	record.Set("status", status)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test approval: %v", err)
	}

	return record
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

// AssertHXRedirect checks that the response has an HX-Redirect header with the expected URL.
func AssertHXRedirect(t *testing.T, headerVal, expectedURL string) {
	t.Helper()

	if headerVal != expectedURL {
		t.Errorf("expected HX-Redirect %q, got %q", expectedURL, headerVal)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
