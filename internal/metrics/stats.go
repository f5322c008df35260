package metrics

import (
	"math"
	"sort"
)

// Stats holds descriptive statistics over a sample of durations.
type Stats struct {
	Count    int     `json:"count"`
	Mean     float64 `json:"mean"`
	Median   float64 `json:"median"`
	Std      float64 `json:"std"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Range    float64 `json:"range"`
	Q1       float64 `json:"q1"`
	Q3       float64 `json:"q3"`
	IQR      float64 `json:"iqr"`
	Skewness float64 `json:"skewness"`
	Kurtosis float64 `json:"kurtosis"`
}

// Statistics computes descriptive statistics over samples. An empty
// input yields a zero-valued Stats with Count 0, never an error.
// Skewness and excess kurtosis need at least 3 samples; with fewer,
// both are defined as 0. The standard deviation is the population
// standard deviation, and quartiles use linear interpolation between
// order statistics.
func Statistics(samples []float64) Stats {
	if len(samples) == 0 {
		return Stats{}
	}

	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)

	n := float64(len(sorted))
	mean := sum(sorted) / n

	// Central moments for std, skewness, and kurtosis.
	var m2, m3, m4 float64
	for _, v := range sorted {
		d := v - mean
		m2 += d * d
		m3 += d * d * d
		m4 += d * d * d * d
	}
	m2 /= n
	m3 /= n
	m4 /= n

	std := math.Sqrt(m2)

	var skewness, kurtosis float64
	if len(sorted) >= 3 && m2 > 0 {
		skewness = m3 / math.Pow(m2, 1.5)
		kurtosis = m4/(m2*m2) - 3
	}

	q1 := percentile(sorted, 25)
	q3 := percentile(sorted, 75)

	return Stats{
		Count:    len(sorted),
		Mean:     mean,
		Median:   percentile(sorted, 50),
		Std:      std,
		Min:      sorted[0],
		Max:      sorted[len(sorted)-1],
		Range:    sorted[len(sorted)-1] - sorted[0],
		Q1:       q1,
		Q3:       q3,
		IQR:      q3 - q1,
		Skewness: skewness,
		Kurtosis: kurtosis,
	}
}

// percentile computes the p-th percentile of sorted values using linear
// interpolation between order statistics.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	rank := p / 100 * float64(len(sorted)-1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))
	if lower == upper {
		return sorted[lower]
	}
	frac := rank - float64(lower)
	return sorted[lower] + frac*(sorted[upper]-sorted[lower])
}

// Trend fits a least-squares line through values at index positions
// 0..n-1 and returns its slope and intercept. Fewer than 2 points give
// (0, 0).
func Trend(values []float64) (slope, intercept float64) {
	if len(values) < 2 {
		return 0, 0
	}

	n := float64(len(values))
	var sumX, sumY, sumXY, sumXX float64
	for i, y := range values {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0, 0
	}
	slope = (n*sumXY - sumX*sumY) / denom
	intercept = (sumY - slope*sumX) / n
	return slope, intercept
}

func sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}
