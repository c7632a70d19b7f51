package services

import (
	"sort"
	"strconv"
	"strings"
)

// SortBySerial orders stores by serial number in place. Two serials that
// both parse as integers compare numerically; any other pair compares as
// strings.
func SortBySerial(stores []StoreRecord) {
	sort.SliceStable(stores, func(i, j int) bool {
		return compareSerial(stores[i].SerialNo, stores[j].SerialNo) < 0
	})
}

func compareSerial(a, b string) int {
	ai, aErr := strconv.Atoi(strings.TrimSpace(a))
	bi, bErr := strconv.Atoi(strings.TrimSpace(b))
	if aErr == nil && bErr == nil {
		switch {
		case ai < bi:
			return -1
		case ai > bi:
			return 1
		}
		return 0
	}
	return strings.Compare(a, b)
}
