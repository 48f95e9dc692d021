package analytics

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/spendlens/spendlens/internal/entity"
)

func receipt(vendor string, y int, m time.Month, d int, amount float64, category string) *entity.Receipt {
	return &entity.Receipt{
		ID:       uuid.New(),
		Vendor:   vendor,
		TxDate:   time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		Amount:   amount,
		Category: category,
	}
}

func sampleReceipts() []*entity.Receipt {
	return []*entity.Receipt{
		receipt("Global Supermart", 2025, 1, 10, 120.50, "Groceries"),
		receipt("City Electronics", 2025, 2, 5, 899.99, "Electronics"),
		receipt("Corner Cafe", 2025, 2, 20, 14.25, "Restaurant"),
		receipt("Global Supermart", 2025, 3, 1, 85.00, "Groceries"),
	}
}

func TestSearchVendorSubstring(t *testing.T) {
	got := Search(sampleReceipts(), SearchQuery{Vendor: "supermart"})
	require.Len(t, got, 2)
	for _, r := range got {
		require.Equal(t, "Global Supermart", r.Vendor)
	}
}

func TestSearchDateRange(t *testing.T) {
	start := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)
	got := Search(sampleReceipts(), SearchQuery{StartDate: &start, EndDate: &end})
	require.Len(t, got, 2)
}

func TestSearchAmountBounds(t *testing.T) {
	min, max := 50.0, 200.0
	got := Search(sampleReceipts(), SearchQuery{MinAmount: &min, MaxAmount: &max})
	require.Len(t, got, 2)
}

func TestSearchCombined(t *testing.T) {
	min := 100.0
	got := Search(sampleReceipts(), SearchQuery{Category: "groceries", MinAmount: &min})
	require.Len(t, got, 1)
	require.InDelta(t, 120.50, got[0].Amount, 1e-9)
}

func TestSearchZeroDateNeverMatchesDateBound(t *testing.T) {
	recs := []*entity.Receipt{{Vendor: "Nowhere"}}
	start := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	require.Empty(t, Search(recs, SearchQuery{StartDate: &start}))
	require.Len(t, Search(recs, SearchQuery{}), 1)
}

func TestSortByAmount(t *testing.T) {
	got := Sort(sampleReceipts(), SortByAmount, false)
	require.InDelta(t, 14.25, got[0].Amount, 1e-9)
	require.InDelta(t, 899.99, got[3].Amount, 1e-9)

	desc := Sort(sampleReceipts(), SortByAmount, true)
	require.InDelta(t, 899.99, desc[0].Amount, 1e-9)
}

func TestSortByVendorCaseInsensitive(t *testing.T) {
	recs := []*entity.Receipt{
		receipt("beta", 2025, 1, 1, 1, "Groceries"),
		receipt("Alpha", 2025, 1, 2, 2, "Groceries"),
	}
	got := Sort(recs, SortByVendor, false)
	require.Equal(t, "Alpha", got[0].Vendor)
}

func TestSortZeroDatesLast(t *testing.T) {
	recs := []*entity.Receipt{
		{Vendor: "Undated"},
		receipt("Dated", 2025, 1, 1, 1, "Groceries"),
	}
	asc := Sort(recs, SortByTxDate, false)
	require.Equal(t, "Dated", asc[0].Vendor)
	desc := Sort(recs, SortByTxDate, true)
	require.Equal(t, "Dated", desc[0].Vendor)
}

func TestSortDoesNotMutateInput(t *testing.T) {
	recs := sampleReceipts()
	first := recs[0].Vendor
	_ = Sort(recs, SortByAmount, false)
	require.Equal(t, first, recs[0].Vendor)
}
