package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAggregateEmpty(t *testing.T) {
	got := Aggregate(nil)
	require.Zero(t, got.Total)
	require.Zero(t, got.Mean)
	require.Zero(t, got.Median)
	require.Empty(t, got.Modes)
	require.NotNil(t, got.Modes)
}

func TestAggregate(t *testing.T) {
	got := Aggregate([]float64{100, 100, 50})
	require.InDelta(t, 250, got.Total, 1e-9)
	require.InDelta(t, 83.33, got.Mean, 1e-9)
	require.InDelta(t, 100, got.Median, 1e-9)
	require.Equal(t, []float64{100}, got.Modes)
}

func TestAggregateEvenCountMedian(t *testing.T) {
	got := Aggregate([]float64{10, 20, 30, 40})
	require.InDelta(t, 25, got.Median, 1e-9)
}

// With no repeated value every value is a mode, sorted ascending.
func TestAggregateAllUniqueModes(t *testing.T) {
	got := Aggregate([]float64{30, 10, 20})
	require.Equal(t, []float64{10, 20, 30}, got.Modes)
}

func TestVendorFrequency(t *testing.T) {
	got := VendorFrequency([]string{"Acme", "Acme", "Globex", "", "   "})
	require.Equal(t, map[string]int{"Acme": 2, "Globex": 1}, got)
}

func TestMonthlySpend(t *testing.T) {
	jan1 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	jan20 := time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)
	feb3 := time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC)
	amt := func(v float64) *float64 { return &v }

	got := MonthlySpend([]Entry{
		{TxDate: &jan1, Amount: amt(100)},
		{TxDate: &jan20, Amount: amt(50)},
		{TxDate: &feb3, Amount: amt(200)},
		{TxDate: nil, Amount: amt(999)},
		{TxDate: &feb3, Amount: nil},
	})
	require.Equal(t, map[string]float64{"2025-01": 150, "2025-02": 200}, got)
}
