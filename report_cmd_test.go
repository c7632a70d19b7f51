package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"storebranding/services"
	"storebranding/testhelpers"
)

func TestReportPath(t *testing.T) {
	dir := t.TempDir()

	got, err := reportPath(dir, "Acme_20260101.xlsx")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Acme_20260101.xlsx"), got)

	file := filepath.Join(dir, "custom.xlsx")
	got, err = reportPath(file, "Acme_20260101.xlsx")
	require.NoError(t, err)
	assert.Equal(t, file, got)
}

func TestReportCommand_WritesWorkbook(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	vendor := testhelpers.CreateTestVendor(t, app, "Brightline Signage")
	brand := testhelpers.CreateTestBrand(t, app, "Acme")
	dist := testhelpers.CreateTestDistributor(t, app, "Metro", brand.Id)
	testhelpers.CreateTestStore(t, app, vendor.Id, brand.Id, dist.Id, testhelpers.StoreFields{SerialNo: "1"})
	testhelpers.CreateTestStore(t, app, vendor.Id, brand.Id, dist.Id, testhelpers.StoreFields{SerialNo: "2"})

	out := filepath.Join(t.TempDir(), "report.xlsx")
	cmd := newReportCommand(app, services.NewPocketBaseStore(app))
	cmd.SetArgs([]string{"--vendor", vendor.Id, "--brand", brand.Id, "--out", out})

	require.NoError(t, cmd.Execute())

	raw, err := os.ReadFile(out)
	require.NoError(t, err)

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()
	assert.NotEmpty(t, raw)

	rows, err := f.GetRows(services.ReportSheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
	assert.Equal(t, "Brightline Signage", rows[1][1])
}

func TestReportCommand_NoStores(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	vendor := testhelpers.CreateTestVendor(t, app, "Brightline Signage")
	brand := testhelpers.CreateTestBrand(t, app, "Acme")

	cmd := newReportCommand(app, services.NewPocketBaseStore(app))
	cmd.SetArgs([]string{"--vendor", vendor.Id, "--brand", brand.Id, "--out", t.TempDir()})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	assert.ErrorIs(t, cmd.Execute(), services.ErrNoStoresFound)
}
