package services

import "math/rand"

// OEEEstimator supplies the availability and performance factors of the OEE
// figure. Real equipment runtime data is not collected by this system, so the
// production implementation simulates both factors inside fixed bands; the
// interface exists so the statistics fold stays deterministic under test.
// Callers report both figures as 0 when there is no production activity.
type OEEEstimator interface {
	// Availability returns the uptime factor as a percentage.
	Availability() float64

	// Performance returns the cycle time factor as a percentage.
	Performance() float64
}

// SimulatedOEEEstimator draws availability from [95,100) and performance from
// [85,95), the bands the real factors are expected to land in on a healthy
// line. Values are synthetic and non-deterministic; treat them as
// within-range, never as exact figures.
type SimulatedOEEEstimator struct {
	rand *rand.Rand
}

// NewSimulatedOEEEstimator creates a simulated estimator from the given
// source of randomness. Pass rand.New(rand.NewSource(...)) for reproducible
// draws.
func NewSimulatedOEEEstimator(r *rand.Rand) *SimulatedOEEEstimator {
	return &SimulatedOEEEstimator{rand: r}
}

// Availability returns a simulated uptime percentage in [95,100).
func (e *SimulatedOEEEstimator) Availability() float64 {
	return 95.0 + e.rand.Float64()*5.0
}

// Performance returns a simulated cycle time percentage in [85,95).
func (e *SimulatedOEEEstimator) Performance() float64 {
	return 85.0 + e.rand.Float64()*10.0
}

// FixedOEEEstimator returns constant factors; used by tests and available to
// deployments that measure the factors elsewhere.
type FixedOEEEstimator struct {
	AvailabilityValue float64
	PerformanceValue  float64
}

// Availability returns the fixed uptime percentage.
func (e FixedOEEEstimator) Availability() float64 {
	return e.AvailabilityValue
}

// Performance returns the fixed cycle time percentage.
func (e FixedOEEEstimator) Performance() float64 {
	return e.PerformanceValue
}
