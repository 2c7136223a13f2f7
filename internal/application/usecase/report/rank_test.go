// Package report contains the reporting and budget-evaluation use cases.
package report

import (
	"testing"

	"github.com/shopspring/decimal"
)

func rankInput() []CategoryBucket {
	return []CategoryBucket{
		{Category: "Food", Total: decimal.NewFromInt(150)},
		{Category: "Travel", Total: decimal.NewFromInt(200)},
		{Category: "Utilities", Total: decimal.NewFromInt(80)},
		{Category: "Fun", Total: decimal.NewFromInt(150)},
	}
}

func TestRankBuckets(t *testing.T) {
	t.Run("sorts descending by total", func(t *testing.T) {
		ranked := rankBuckets(rankInput(), 10)

		if len(ranked) != 4 {
			t.Fatalf("expected 4 buckets, got %d", len(ranked))
		}
		for i := 1; i < len(ranked); i++ {
			if ranked[i-1].Total.LessThan(ranked[i].Total) {
				t.Errorf("bucket %d (%s) out of order after %d (%s)",
					i, ranked[i].Category, i-1, ranked[i-1].Category)
			}
		}
		if ranked[0].Category != "Travel" {
			t.Errorf("expected Travel first, got %s", ranked[0].Category)
		}
	})

	t.Run("ties keep encounter order", func(t *testing.T) {
		ranked := rankBuckets(rankInput(), 10)

		// Food and Fun both total 150; Food was encountered first.
		if ranked[1].Category != "Food" || ranked[2].Category != "Fun" {
			t.Errorf("expected tie order [Food Fun], got [%s %s]",
				ranked[1].Category, ranked[2].Category)
		}
	})

	t.Run("truncates to limit", func(t *testing.T) {
		ranked := rankBuckets(rankInput(), 2)

		if len(ranked) != 2 {
			t.Fatalf("expected 2 buckets, got %d", len(ranked))
		}
		if ranked[0].Category != "Travel" || ranked[1].Category != "Food" {
			t.Errorf("expected [Travel Food], got [%s %s]",
				ranked[0].Category, ranked[1].Category)
		}
	})

	t.Run("limit beyond available yields all buckets", func(t *testing.T) {
		if got := len(rankBuckets(rankInput(), 99)); got != 4 {
			t.Errorf("expected 4 buckets, got %d", got)
		}
	})

	t.Run("non-positive limit yields empty result", func(t *testing.T) {
		if got := len(rankBuckets(rankInput(), 0)); got != 0 {
			t.Errorf("expected empty result for limit 0, got %d", got)
		}
		if got := len(rankBuckets(rankInput(), -3)); got != 0 {
			t.Errorf("expected empty result for negative limit, got %d", got)
		}
	})

	t.Run("does not mutate the input slice", func(t *testing.T) {
		buckets := rankInput()
		rankBuckets(buckets, 10)

		if buckets[0].Category != "Food" {
			t.Errorf("input slice was reordered, first is now %s", buckets[0].Category)
		}
	})
}
