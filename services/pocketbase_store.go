package services

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/pocketbase/pocketbase/core"
)

// PocketBaseStore is the DataService backed by the app's own collections.
type PocketBaseStore struct {
	app core.App
}

// NewPocketBaseStore returns a DataService reading from app.
func NewPocketBaseStore(app core.App) *PocketBaseStore {
	return &PocketBaseStore{app: app}
}

var _ DataService = (*PocketBaseStore)(nil)

// ListBrands implements DataService.
func (s *PocketBaseStore) ListBrands(ctx context.Context) ([]Brand, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	records, err := s.app.FindAllRecords("brands")
	if err != nil {
		return nil, fmt.Errorf("find brands: %w", err)
	}
	brands := make([]Brand, 0, len(records))
	for _, rec := range records {
		brands = append(brands, Brand{ID: rec.Id, Name: rec.GetString("name")})
	}
	slices.SortFunc(brands, func(a, b Brand) int { return strings.Compare(a.Name, b.Name) })
	return brands, nil
}

// ListDistributors implements DataService.
func (s *PocketBaseStore) ListDistributors(ctx context.Context, brandID string) ([]Distributor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	records, err := s.app.FindRecordsByFilter(
		"distributors",
		"brands ?= {:brandId}",
		"name",
		0, 0,
		map[string]any{"brandId": brandID},
	)
	if err != nil {
		return nil, fmt.Errorf("find distributors: %w", err)
	}
	out := make([]Distributor, 0, len(records))
	for _, rec := range records {
		out = append(out, Distributor{
			ID:   rec.Id,
			Name: rec.GetString("name"),
			City: rec.GetString("city"),
		})
	}
	return out, nil
}

// ListStores implements DataService.
func (s *PocketBaseStore) ListStores(ctx context.Context, vendorID, brandID, distributorID string) ([]StoreRecord, error) {
	var ids []string
	if distributorID != "" {
		ids = []string{distributorID}
	}
	return s.findStores(ctx, vendorID, brandID, ids)
}

// ListStoresForReport implements DataService.
func (s *PocketBaseStore) ListStoresForReport(ctx context.Context, vendorID, brandID, distributorIDsCSV string) ([]StoreRecord, error) {
	return s.findStores(ctx, vendorID, brandID, SplitIDs(distributorIDsCSV))
}

func (s *PocketBaseStore) findStores(ctx context.Context, vendorID, brandID string, distributorIDs []string) ([]StoreRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	filter := "vendor = {:vendorId} && brand = {:brandId}"
	params := map[string]any{"vendorId": vendorID, "brandId": brandID}
	if len(distributorIDs) > 0 {
		clauses := make([]string, len(distributorIDs))
		for i, id := range distributorIDs {
			p := fmt.Sprintf("d%d", i)
			clauses[i] = "distributor = {:" + p + "}"
			params[p] = id
		}
		filter += " && (" + strings.Join(clauses, " || ") + ")"
	}

	records, err := s.app.FindRecordsByFilter("stores", filter, "", 0, 0, params)
	if err != nil {
		return nil, fmt.Errorf("find stores: %w", err)
	}

	names := newNameCache(s.app)
	stores := make([]StoreRecord, 0, len(records))
	for _, rec := range records {
		stores = append(stores, StoreRecord{
			ID:              rec.Id,
			SerialNo:        rec.GetString("serial_no"),
			Name:            rec.GetString("name"),
			BrandID:         rec.GetString("brand"),
			BrandName:       names.lookup("brands", rec.GetString("brand")),
			DistributorID:   rec.GetString("distributor"),
			DistributorName: names.lookup("distributors", rec.GetString("distributor")),
			Address:         rec.GetString("address"),
			Phone:           rec.GetString("phone"),
			GPS:             rec.GetString("gps"),
			BoardType:       rec.GetString("board_type"),
			BoardSize:       rec.GetString("board_size"),
			Quantity:        rec.GetString("quantity"),
			Rate:            rec.GetString("rate"),
			BeforeImage:     rec.GetString("before_image"),
			AfterImage:      rec.GetString("after_image"),
		})
	}
	return stores, nil
}

// ListApprovals implements DataService.
func (s *PocketBaseStore) ListApprovals(ctx context.Context, vendorID string) ([]ApprovalRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	records, err := s.app.FindRecordsByFilter(
		"approvals",
		"vendor = {:vendorId}",
		"created",
		0, 0,
		map[string]any{"vendorId": vendorID},
	)
	if err != nil {
		return nil, fmt.Errorf("find approvals: %w", err)
	}
	out := make([]ApprovalRecord, 0, len(records))
	for _, rec := range records {
		out = append(out, ApprovalRecord{
			ID:            rec.Id,
			BrandID:       rec.GetString("brand"),
			DistributorID: rec.GetString("distributor"),
			VendorID:      rec.GetString("vendor"),
			Type:          rec.GetString("approval_type"),
			Status:        rec.GetString("status"),
			Comments:      rec.GetString("comments"),
			Created:       rec.GetDateTime("created").Time(),
			Updated:       rec.GetDateTime("updated").Time(),
		})
	}
	return out, nil
}

// SubmitApproval implements DataService.
func (s *PocketBaseStore) SubmitApproval(ctx context.Context, req ApprovalRequest) (Ack, error) {
	if err := ctx.Err(); err != nil {
		return Ack{}, err
	}
	col, err := s.app.FindCollectionByNameOrId("approvals")
	if err != nil {
		return Ack{}, fmt.Errorf("approvals collection: %w", err)
	}

	rec := core.NewRecord(col)
	rec.Set("request_id", req.RequestID)
	rec.Set("vendor", req.VendorID)
	rec.Set("brand", req.BrandID)
	rec.Set("distributor", req.DistributorID)
	rec.Set("store", req.StoreID)
	rec.Set("approval_type", req.Type)
	rec.Set("status", StatusSubmitted)
	rec.Set("pdf_payload", req.PDFPayload)
	rec.Set("excel_payload", req.ExcelPayload)
	rec.Set("brand_name", req.BrandName)
	rec.Set("distributor_name", req.DistributorName)
	rec.Set("submitted_by", req.SubmittedBy)

	if err := s.app.Save(rec); err != nil {
		return Ack{}, fmt.Errorf("save approval: %w", err)
	}

	return Ack{ID: rec.Id, Created: rec.GetDateTime("created").Time()}, nil
}

// SplitIDs splits a comma separated id list, dropping blanks.
func SplitIDs(csv string) []string {
	var ids []string
	for _, part := range strings.Split(csv, ",") {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// nameCache resolves relation ids to display names once per query.
type nameCache struct {
	app   core.App
	names map[string]string
}

func newNameCache(app core.App) *nameCache {
	return &nameCache{app: app, names: make(map[string]string)}
}

func (c *nameCache) lookup(collection, id string) string {
	if id == "" {
		return ""
	}
	k := collection + "/" + id
	if name, ok := c.names[k]; ok {
		return name
	}
	name := ""
	if rec, err := c.app.FindRecordById(collection, id); err == nil {
		name = rec.GetString("name")
	}
	c.names[k] = name
	return name
}
