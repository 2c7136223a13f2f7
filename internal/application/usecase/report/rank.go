// Package report contains the reporting and budget-evaluation use cases.
package report

import "sort"

// DefaultTopLimit is the number of categories returned when no limit is given.
const DefaultTopLimit = 5

// rankBuckets orders buckets by total descending and truncates to the first
// limit entries. The sort is stable, so ties keep their first-seen encounter
// order, which is deterministic. A non-positive limit yields an empty result.
func rankBuckets(buckets []CategoryBucket, limit int) []CategoryBucket {
	if limit <= 0 {
		return []CategoryBucket{}
	}

	ranked := make([]CategoryBucket, len(buckets))
	copy(ranked, buckets)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Total.GreaterThan(ranked[j].Total)
	})

	if limit < len(ranked) {
		ranked = ranked[:limit]
	}

	return ranked
}
