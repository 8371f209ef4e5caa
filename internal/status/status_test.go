package status

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestClassifyStockBoundaries(t *testing.T) {
	require.Equal(t, StockOut, ClassifyStock(0, DefaultLowStockThreshold))
	require.Equal(t, StockOut, ClassifyStock(-1, DefaultLowStockThreshold))

	// Boundary is inclusive on the low side.
	require.Equal(t, StockLow, ClassifyStock(100, 100))
	require.Equal(t, StockIn, ClassifyStock(101, 100))
	require.Equal(t, StockLow, ClassifyStock(1, 100))

	// Threshold overrides apply.
	require.Equal(t, StockLow, ClassifyStock(500, 1000))
	require.Equal(t, StockIn, ClassifyStock(500, 100))
}

func TestClassifyStockZeroBeatsThreshold(t *testing.T) {
	// Out of Stock is terminal regardless of the configured threshold.
	require.Equal(t, StockOut, ClassifyStock(0, 0))
	require.Equal(t, StockOut, ClassifyStock(0, 100000))
}

func TestClassifyExpiry(t *testing.T) {
	ref := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	require.Equal(t, ExpiryExpired, ClassifyExpiry(ref.AddDate(0, 0, -1), ref, 90))
	require.Equal(t, ExpirySoon, ClassifyExpiry(ref.AddDate(0, 0, 30), ref, 90))
	require.Equal(t, ExpirySoon, ClassifyExpiry(ref.AddDate(0, 0, 90), ref, 90))
	require.Equal(t, ExpiryActive, ClassifyExpiry(ref.AddDate(0, 0, 91), ref, 90))
}

func TestClassifyExpiryMonotonic(t *testing.T) {
	expiry := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	prev := ClassifyExpiry(expiry, expiry.AddDate(0, 0, -120), 90)
	require.Equal(t, ExpiryActive, prev)

	rank := map[ExpiryStatus]int{ExpiryActive: 0, ExpirySoon: 1, ExpiryExpired: 2}
	for days := -119; days <= 30; days++ {
		got := ClassifyExpiry(expiry, expiry.AddDate(0, 0, days), 90)
		require.GreaterOrEqual(t, rank[got], rank[prev], "reference %+d days", days)
		prev = got
	}
}

func TestBadgeTablesAreClosed(t *testing.T) {
	for _, s := range []StockStatus{StockIn, StockLow, StockOut} {
		require.True(t, s.Valid())
		require.NotEmpty(t, s.Badge())
	}
	for _, s := range []ExpiryStatus{ExpiryActive, ExpirySoon, ExpiryExpired} {
		require.True(t, s.Valid())
		require.NotEmpty(t, s.Badge())
	}
	require.False(t, StockStatus("Backordered").Valid())
}
