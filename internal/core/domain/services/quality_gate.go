package services

import (
	"errors"
	"fmt"
)

// DefaultDefectRateThreshold is the system-wide defect rate limit: above 30%
// defective the quality gate rejects the work order. Deployments may override
// it through configuration; request payloads never can.
const DefaultDefectRateThreshold = 0.30

// ErrDefectRateExceeded is the sentinel for quality gate rejections,
// matchable via errors.Is.
var ErrDefectRateExceeded = errors.New("defect rate exceeded")

// DefectRateExceededError reports a quality gate rejection with the observed
// rate and the threshold it crossed. By the time the caller sees this error
// the work order has already been moved to REJECTED: the rejection is a
// recorded fact, not a rolled-back attempt.
type DefectRateExceededError struct {
	Rate      float64
	Threshold float64
}

func (e *DefectRateExceededError) Error() string {
	return fmt.Sprintf("%s: %.2f%% (threshold: %.2f%%)", ErrDefectRateExceeded, e.Rate*100, e.Threshold*100)
}

func (e *DefectRateExceededError) Unwrap() error {
	return ErrDefectRateExceeded
}

// QualityGate is a domain service that computes defect rates and decides
// accept/reject against a fixed threshold. It is pure and safe for
// concurrent use.
type QualityGate struct {
	threshold float64
}

// NewQualityGate creates a quality gate with the given defect rate threshold.
// A non-positive threshold falls back to DefaultDefectRateThreshold.
func NewQualityGate(threshold float64) QualityGate {
	if threshold <= 0 {
		threshold = DefaultDefectRateThreshold
	}
	return QualityGate{threshold: threshold}
}

// Threshold returns the configured defect rate threshold.
func (g QualityGate) Threshold() float64 {
	return g.threshold
}

// DefectRate computes badQty / (goodQty + badQty), defined as 0.0 when both
// quantities are zero. Zero total is an edge case callers must tolerate, not
// an error.
func (QualityGate) DefectRate(goodQty, badQty int) float64 {
	total := goodQty + badQty
	if total == 0 {
		return 0.0
	}
	return float64(badQty) / float64(total)
}

// Evaluate computes the defect rate and decides acceptance: accepted is true
// iff the rate does not exceed the threshold.
func (g QualityGate) Evaluate(goodQty, badQty int) (bool, float64) {
	rate := g.DefectRate(goodQty, badQty)
	return rate <= g.threshold, rate
}
