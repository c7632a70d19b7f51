package services

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApprovalBoard_TryBeginGuardsPairAndTrack(t *testing.T) {
	b := NewApprovalBoard()
	key := PairKey{BrandID: "b1", DistributorID: "d1"}

	require.True(t, b.TryBegin(key, TrackBefore))
	assert.False(t, b.TryBegin(key, TrackBefore), "second begin on the same track must fail")
	assert.True(t, b.TryBegin(key, TrackAfter), "the other track is independent")
	assert.True(t, b.TryBegin(PairKey{BrandID: "b1", DistributorID: "d2"}, TrackBefore), "other pairs are independent")

	assert.True(t, b.IsSubmitting(key, TrackBefore))
	b.End(key, TrackBefore)
	assert.False(t, b.IsSubmitting(key, TrackBefore))
	assert.True(t, b.TryBegin(key, TrackBefore))
}

func TestApprovalBoard_TryBeginConcurrent(t *testing.T) {
	b := NewApprovalBoard()
	key := PairKey{BrandID: "b1", DistributorID: "d1"}

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if b.TryBegin(key, TrackAfter) {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
}

func TestApprovalBoard_MarkSubmitted(t *testing.T) {
	b := NewApprovalBoard()
	key := PairKey{BrandID: "b1", DistributorID: "d1"}
	at := time.Date(2026, 2, 1, 9, 30, 0, 0, time.UTC)

	_, ok := b.Result(key)
	require.False(t, ok)

	b.MarkSubmitted(key, TrackAfter, at)

	r, ok := b.Result(key)
	require.True(t, ok)
	assert.Equal(t, key, r.Key)
	assert.Equal(t, StatusSubmitted, r.After.Status)
	assert.Equal(t, at, r.After.SubmittedAt)
	assert.Equal(t, at, r.After.LastActionAt)
	assert.Equal(t, StatusAbsent, r.Before.Status, "the before track is untouched")
	assert.Equal(t, r.After, r.Track(TrackAfter))
}

func TestApprovalBoard_Load(t *testing.T) {
	b := NewApprovalBoard()
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	b.MarkSubmitted(PairKey{VendorID: "v1", BrandID: "stale", DistributorID: "x"}, TrackBefore, t0)

	b.Load("v1", []ApprovalRecord{
		{BrandID: "b1", DistributorID: "d1", Type: "Before", Status: "approved", Created: t0, Updated: t0.Add(time.Hour)},
		{BrandID: "b1", DistributorID: "d1", Type: "After", Status: "rejected", Comments: "board tilted", Created: t0.Add(2 * time.Hour), Updated: t0.Add(3 * time.Hour)},
		{BrandID: "b1", DistributorID: "d1", Type: "After", Status: "pending", Created: t0.Add(time.Hour)},
		{BrandID: "b1", DistributorID: "d2", Type: "Before", Status: "", Created: t0},
		{BrandID: "b2", DistributorID: "d1", Type: "Middle", Status: "approved", Created: t0},
		{BrandID: "b2", DistributorID: "d3", Type: "Before", Status: "escalated", Created: t0},
	})

	_, ok := b.Result(PairKey{VendorID: "v1", BrandID: "stale", DistributorID: "x"})
	assert.False(t, ok, "Load replaces the vendor's previous contents")

	r, ok := b.Result(PairKey{VendorID: "v1", BrandID: "b1", DistributorID: "d1"})
	require.True(t, ok)
	assert.Equal(t, StatusApproved, r.Before.Status)
	assert.Equal(t, t0.Add(time.Hour), r.Before.LastActionAt)
	assert.Equal(t, StatusRejected, r.After.Status, "most recently created record wins")
	assert.Equal(t, "board tilted", r.After.Comments)

	r, ok = b.Result(PairKey{VendorID: "v1", BrandID: "b1", DistributorID: "d2"})
	require.True(t, ok)
	assert.Equal(t, StatusSubmitted, r.Before.Status, "empty status reads as submitted")

	_, ok = b.Result(PairKey{VendorID: "v1", BrandID: "b2", DistributorID: "d1"})
	assert.False(t, ok, "unknown approval types are skipped")

	r, ok = b.Result(PairKey{VendorID: "v1", BrandID: "b2", DistributorID: "d3"})
	require.True(t, ok)
	assert.Equal(t, StatusPending, r.Before.Status, "unknown statuses read as pending")
}

func TestApprovalBoard_SnapshotOrdered(t *testing.T) {
	b := NewApprovalBoard()
	now := time.Now()
	b.MarkSubmitted(PairKey{BrandID: "b2", DistributorID: "d1"}, TrackBefore, now)
	b.MarkSubmitted(PairKey{BrandID: "b1", DistributorID: "d2"}, TrackBefore, now)
	b.MarkSubmitted(PairKey{BrandID: "b1", DistributorID: "d1"}, TrackBefore, now)

	snap := b.Snapshot()

	require.Len(t, snap, 3)
	assert.Equal(t, PairKey{BrandID: "b1", DistributorID: "d1"}, snap[0].Key)
	assert.Equal(t, PairKey{BrandID: "b1", DistributorID: "d2"}, snap[1].Key)
	assert.Equal(t, PairKey{BrandID: "b2", DistributorID: "d1"}, snap[2].Key)
}

func TestApprovalBoard_VendorsAreIsolated(t *testing.T) {
	b := NewApprovalBoard()
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	keyA := PairKey{VendorID: "vA", BrandID: "b1", DistributorID: "d1"}
	keyB := PairKey{VendorID: "vB", BrandID: "b1", DistributorID: "d1"}

	b.Load("vA", []ApprovalRecord{
		{BrandID: "b1", DistributorID: "d1", Type: "Before", Status: "approved", Comments: "vendor A ok", Created: t0},
	})
	b.Load("vB", []ApprovalRecord{
		{BrandID: "b1", DistributorID: "d1", Type: "Before", Status: "rejected", Comments: "vendor B redo", Created: t0},
	})

	a, ok := b.Result(keyA)
	require.True(t, ok, "a later load for another vendor keeps vendor A's pairs")
	assert.Equal(t, StatusApproved, a.Before.Status)
	assert.Equal(t, "vendor A ok", a.Before.Comments)

	bb, ok := b.Result(keyB)
	require.True(t, ok)
	assert.Equal(t, StatusRejected, bb.Before.Status)
	assert.Equal(t, "vendor B redo", bb.Before.Comments)

	require.True(t, b.TryBegin(keyA, TrackBefore))
	assert.True(t, b.TryBegin(keyB, TrackBefore), "a submission by vendor A does not block vendor B")
	assert.False(t, b.IsSubmitting(PairKey{VendorID: "vC", BrandID: "b1", DistributorID: "d1"}, TrackBefore))

	b.Load("vA", nil)
	_, ok = b.Result(keyA)
	assert.False(t, ok)
	_, ok = b.Result(keyB)
	assert.True(t, ok, "reloading vendor A leaves vendor B untouched")
}
