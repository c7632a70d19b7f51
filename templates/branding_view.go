// Package templates holds the HTML components of the branding screen.
package templates

import (
	"net/url"
	"strings"

	"github.com/a-h/templ"
)

// Option is one entry of a select box.
type Option struct {
	ID       string
	Label    string
	Selected bool
}

// StoreRowView is one store line of the store table.
type StoreRowView struct {
	SerialNo       string
	Name           string
	Distributor    string
	Address        string
	BoardType      string
	BoardSize      string
	NetAmount      string
	MapURL         string
	MapLabel       string
	HasAfterImage  bool
	HasBeforeImage bool
}

// TrackView is the approval state of one half for one distributor.
type TrackView struct {
	Status       string
	SubmittedAt  string
	LastActionAt string
	Comments     string
	Submitting   bool
}

// ApprovalRowView is one distributor line of the approvals table.
type ApprovalRowView struct {
	DistributorID   string
	DistributorName string
	Before          TrackView
	After           TrackView
}

// BrandingPageData is everything the branding screen renders.
type BrandingPageData struct {
	CompanyName         string
	VendorName          string
	Brands              []Option
	Distributors        []Option
	SelectedBrand       string
	SelectedDistributor string
	Stores              []StoreRowView
	Approvals           []ApprovalRowView
	TotalNet            string
}

func statusLabel(t TrackView) string {
	if t.Status == "" {
		return "not submitted"
	}
	return t.Status
}

func badgeClass(t TrackView) string {
	return "badge badge-" + strings.ReplaceAll(statusLabel(t), " ", "-")
}

func submitPath(track string) string {
	return "/branding/approvals/" + url.PathEscape(track)
}

func previewURL(brandID, distributorID, track string) templ.SafeURL {
	q := url.Values{"brand": {brandID}, "distributor": {distributorID}}
	if track == "after" {
		q.Set("after", "1")
	}
	return templ.URL("/branding/document.pdf?" + q.Encode())
}

func reportURL(data BrandingPageData) templ.SafeURL {
	q := url.Values{"brand": {data.SelectedBrand}}
	if data.SelectedDistributor != "" {
		q.Set("distributors", data.SelectedDistributor)
	}
	return templ.URL("/branding/report.xlsx?" + q.Encode())
}

func updatedSinceSubmit(t TrackView) bool {
	return t.LastActionAt != "" && t.LastActionAt != t.SubmittedAt
}
