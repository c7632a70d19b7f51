package services

import (
	"sort"
	"sync"
	"time"
)

// Approval statuses as tracked per half of the workflow. The empty status
// means nothing was submitted yet.
const (
	StatusAbsent    = ""
	StatusSubmitted = "submitted"
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
)

// PairKey identifies one (brand, distributor) pair as seen by one vendor.
type PairKey struct {
	VendorID      string
	BrandID       string
	DistributorID string
}

// TrackState is the approval state of one half of the workflow.
type TrackState struct {
	Status       string
	SubmittedAt  time.Time
	LastActionAt time.Time
	Comments     string
}

// ApprovalResult holds both halves for a pair.
type ApprovalResult struct {
	Key    PairKey
	Before TrackState
	After  TrackState
}

// Track returns the state of one half.
func (r ApprovalResult) Track(t Track) TrackState {
	if t == TrackAfter {
		return r.After
	}
	return r.Before
}

func (r *ApprovalResult) set(t Track, s TrackState) {
	if t == TrackAfter {
		r.After = s
		return
	}
	r.Before = s
}

type submittingKey struct {
	pair  PairKey
	track Track
}

// ApprovalBoard is the in-memory approval view model shared by all requests.
// It also guards against two concurrent submissions of the same pair and
// track.
type ApprovalBoard struct {
	mu         sync.Mutex
	results    map[PairKey]ApprovalResult
	submitting map[submittingKey]struct{}
}

// NewApprovalBoard returns an empty board.
func NewApprovalBoard() *ApprovalBoard {
	return &ApprovalBoard{
		results:    make(map[PairKey]ApprovalResult),
		submitting: make(map[submittingKey]struct{}),
	}
}

// TryBegin marks the pair and track as submitting. It returns false when a
// submission is already running.
func (b *ApprovalBoard) TryBegin(key PairKey, t Track) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	k := submittingKey{key, t}
	if _, busy := b.submitting[k]; busy {
		return false
	}
	b.submitting[k] = struct{}{}
	return true
}

// End clears the submitting flag.
func (b *ApprovalBoard) End(key PairKey, t Track) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.submitting, submittingKey{key, t})
}

// IsSubmitting reports whether a submission is running.
func (b *ApprovalBoard) IsSubmitting(key PairKey, t Track) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, busy := b.submitting[submittingKey{key, t}]
	return busy
}

// MarkSubmitted records a successful submission.
func (b *ApprovalBoard) MarkSubmitted(key PairKey, t Track, at time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	r := b.results[key]
	r.Key = key
	s := r.Track(t)
	s.Status = StatusSubmitted
	s.SubmittedAt = at
	s.LastActionAt = at
	r.set(t, s)
	b.results[key] = r
}

// Result returns the state of a pair; ok is false if nothing is known.
func (b *ApprovalBoard) Result(key PairKey) (ApprovalResult, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	r, ok := b.results[key]
	return r, ok
}

// Snapshot returns a copy of every known pair, ordered by vendor, brand and
// distributor.
func (b *ApprovalBoard) Snapshot() []ApprovalResult {
	b.mu.Lock()
	out := make([]ApprovalResult, 0, len(b.results))
	for _, r := range b.results {
		out = append(out, r)
	}
	b.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Key.VendorID != out[j].Key.VendorID {
			return out[i].Key.VendorID < out[j].Key.VendorID
		}
		if out[i].Key.BrandID != out[j].Key.BrandID {
			return out[i].Key.BrandID < out[j].Key.BrandID
		}
		return out[i].Key.DistributorID < out[j].Key.DistributorID
	})
	return out
}

// Load replaces the vendor's part of the board with the given approval
// records. Other vendors' pairs are left alone. When a pair has several
// records for one track the most recently created wins.
func (b *ApprovalBoard) Load(vendorID string, records []ApprovalRecord) {
	results := make(map[PairKey]ApprovalResult)
	created := make(map[submittingKey]time.Time)

	for _, rec := range records {
		t, ok := TrackFromApprovalType(rec.Type)
		if !ok {
			continue
		}
		key := PairKey{VendorID: vendorID, BrandID: rec.BrandID, DistributorID: rec.DistributorID}
		ck := submittingKey{key, t}
		if prev, seen := created[ck]; seen && prev.After(rec.Created) {
			continue
		}
		created[ck] = rec.Created

		r := results[key]
		r.Key = key
		r.set(t, TrackState{
			Status:       normalizeStatus(rec.Status),
			SubmittedAt:  rec.Created,
			LastActionAt: rec.Updated,
			Comments:     rec.Comments,
		})
		results[key] = r
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for key := range b.results {
		if key.VendorID == vendorID {
			delete(b.results, key)
		}
	}
	for key, r := range results {
		b.results[key] = r
	}
}

func normalizeStatus(s string) string {
	switch s {
	case StatusSubmitted, StatusPending, StatusApproved, StatusRejected:
		return s
	case "":
		return StatusSubmitted
	}
	return StatusPending
}
