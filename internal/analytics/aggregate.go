package analytics

import (
	"math"
	"sort"
	"strings"
	"time"
)

// Summary holds the statistical aggregates over a set of amounts, all
// rounded to 2 decimal places.
type Summary struct {
	Total  float64   `json:"total_spend"`
	Mean   float64   `json:"average_spend"`
	Median float64   `json:"median_spend"`
	Modes  []float64 `json:"mode_spend"`
}

// Entry is one (date, amount) pair for monthly bucketing. Either side may
// be absent; such entries are skipped.
type Entry struct {
	TxDate *time.Time
	Amount *float64
}

// Aggregate computes total, mean, median and multimode over the amounts.
// Empty input yields an all-zero summary with an empty mode set. The mode
// set follows the multimode definition: every value tied for the highest
// frequency, so an all-unique input returns all of its values.
func Aggregate(amounts []float64) Summary {
	if len(amounts) == 0 {
		return Summary{Modes: []float64{}}
	}

	var total float64
	freq := make(map[float64]int, len(amounts))
	for _, v := range amounts {
		total += v
		freq[v]++
	}
	mean := total / float64(len(amounts))

	sorted := make([]float64, len(amounts))
	copy(sorted, amounts)
	sort.Float64s(sorted)
	var median float64
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		median = (sorted[mid-1] + sorted[mid]) / 2
	} else {
		median = sorted[mid]
	}

	best := 0
	for _, n := range freq {
		if n > best {
			best = n
		}
	}
	modes := make([]float64, 0, len(freq))
	for v, n := range freq {
		if n == best {
			modes = append(modes, round2(v))
		}
	}
	sort.Float64s(modes)

	return Summary{
		Total:  round2(total),
		Mean:   round2(mean),
		Median: round2(median),
		Modes:  modes,
	}
}

// VendorFrequency counts vendor occurrences, silently skipping blank
// entries. Counting is case-sensitive on the normalized name as stored.
func VendorFrequency(vendors []string) map[string]int {
	hist := make(map[string]int)
	for _, v := range vendors {
		if strings.TrimSpace(v) == "" {
			continue
		}
		hist[v]++
	}
	return hist
}

// MonthlySpend sums amounts per calendar month ("YYYY-MM"). Entries with
// a missing date or amount are skipped; sums are rounded to 2 decimals.
func MonthlySpend(entries []Entry) map[string]float64 {
	sums := make(map[string]float64)
	for _, e := range entries {
		if e.TxDate == nil || e.Amount == nil {
			continue
		}
		sums[e.TxDate.Format("2006-01")] += *e.Amount
	}
	for month, v := range sums {
		sums[month] = round2(v)
	}
	return sums
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
