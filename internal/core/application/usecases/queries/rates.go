// Package queries contains read-only operations in the CQRS architecture.
// Query handlers read the database directly with raw SQL, bypassing the
// domain aggregates; aggregation happens in SQL and the remaining rate
// arithmetic lives in small pure functions.
package queries

import "math"

// Round2 rounds to two decimal places, the precision all reported
// percentages and rates use.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// DefectRateFraction computes defects / (output + defects) as a fraction in
// [0, 1], defined as 0 when nothing was produced.
func DefectRateFraction(output, defects int64) float64 {
	total := output + defects
	if total == 0 {
		return 0.0
	}
	return float64(defects) / float64(total)
}

// DefectRatePercent computes the defect rate as a percentage rounded to two
// decimals. 2 defects out of 20 total yields 10.0.
func DefectRatePercent(output, defects int64) float64 {
	return Round2(DefectRateFraction(output, defects) * 100)
}

// ProgressPercent computes completed / total as a percentage rounded to two
// decimals, defined as 0 when total is zero.
func ProgressPercent(completed, total int64) float64 {
	if total == 0 {
		return 0.0
	}
	return Round2(float64(completed) / float64(total) * 100)
}

// QualityPercent computes output / (output + defects) as a percentage
// rounded to two decimals, defined as 0 when nothing was produced.
func QualityPercent(output, defects int64) float64 {
	total := output + defects
	if total == 0 {
		return 0.0
	}
	return Round2(float64(output) / float64(total) * 100)
}

// OEE combines availability, performance and quality percentages into the
// overall equipment effectiveness percentage, rounded to two decimals.
func OEE(availability, performance, quality float64) float64 {
	return Round2(availability * performance * quality / 10000)
}
