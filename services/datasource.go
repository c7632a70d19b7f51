package services

import "context"

// DataService is the brand/distributor/store backend the screen reads from
// and submits approvals to.
type DataService interface {
	ListBrands(ctx context.Context) ([]Brand, error)
	ListDistributors(ctx context.Context, brandID string) ([]Distributor, error)
	// ListStores returns every store of the vendor for the brand. An empty
	// distributorID matches all distributors.
	ListStores(ctx context.Context, vendorID, brandID, distributorID string) ([]StoreRecord, error)
	// ListStoresForReport takes a comma separated list of distributor ids.
	ListStoresForReport(ctx context.Context, vendorID, brandID, distributorIDsCSV string) ([]StoreRecord, error)
	ListApprovals(ctx context.Context, vendorID string) ([]ApprovalRecord, error)
	SubmitApproval(ctx context.Context, req ApprovalRequest) (Ack, error)
}

// ApprovalRequest is sent once per successful submission and never kept
// locally.
type ApprovalRequest struct {
	RequestID       string
	BrandID         string
	DistributorID   string
	VendorID        string
	StoreID         string
	Type            string // "Before" | "After"
	PDFPayload      string // base64
	ExcelPayload    string // base64, empty when the spreadsheet failed
	BrandName       string
	DistributorName string
	SubmittedBy     string
}
