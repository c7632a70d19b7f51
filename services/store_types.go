package services

import "time"

// Track is one half of the board-installation workflow. Each half is
// submitted for approval independently.
type Track string

const (
	TrackBefore Track = "before"
	TrackAfter  Track = "after"
)

// ParseTrack maps a path or form value onto a Track.
func ParseTrack(s string) (Track, bool) {
	switch Track(s) {
	case TrackBefore:
		return TrackBefore, true
	case TrackAfter:
		return TrackAfter, true
	}
	return "", false
}

// ApprovalType returns the tag the data service stores on approval records.
func (t Track) ApprovalType() string {
	if t == TrackAfter {
		return "After"
	}
	return "Before"
}

// TrackFromApprovalType is the inverse of ApprovalType.
func TrackFromApprovalType(s string) (Track, bool) {
	switch s {
	case "Before":
		return TrackBefore, true
	case "After":
		return TrackAfter, true
	}
	return "", false
}

// StoreRecord is a physical retail location as returned by the data service.
// Quantity and Rate are kept as the raw text captured in the field survey.
type StoreRecord struct {
	ID              string
	SerialNo        string
	Name            string
	BrandID         string
	BrandName       string
	DistributorID   string
	DistributorName string
	Address         string
	Phone           string
	GPS             string // "label|lat|lng"
	BoardType       string
	BoardSize       string // "<height>x<width>" in inches
	Quantity        string
	Rate            string
	BeforeImage     string
	AfterImage      string

	// SubmittedBy is stamped in memory just before artifacts are generated.
	SubmittedBy string
}

// Brand is a product brand a vendor installs boards for.
type Brand struct {
	ID   string
	Name string
}

// Distributor sells one or more brands and owns stores.
type Distributor struct {
	ID   string
	Name string
	City string
}

// ApprovalRecord is one approval row as stored by the data service.
type ApprovalRecord struct {
	ID            string
	BrandID       string
	DistributorID string
	VendorID      string
	Type          string // "Before" | "After"
	Status        string
	Comments      string
	Created       time.Time
	Updated       time.Time
}

// Ack is the data service's acknowledgement of a submitted approval.
type Ack struct {
	ID      string
	Created time.Time
}

// CurrentUser is the signed-in vendor, resolved once per request.
type CurrentUser struct {
	ID          string
	DisplayName string
}
